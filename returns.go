package nestegg

import (
	"fmt"
	"math"
)

// Ratio returns value/contribution.
//
// It fails with ErrInvalidReturn when the contribution is not positive or the ratio is not.
func Ratio(value, contribution Money) (float64, error) {
	if !contribution.IsPositive() {
		return 0, fmt.Errorf("contribution %v: %w", contribution, ErrInvalidReturn)
	}
	ratio := value.value.Div(contribution.value).InexactFloat64()
	if ratio <= 0 {
		return 0, fmt.Errorf("value %v for contribution %v: %w", value, contribution, ErrInvalidReturn)
	}
	return ratio, nil
}

// TotalReturn returns the simple return of 'contribution' grown into 'value'.
func TotalReturn(value, contribution Money) (Percent, error) {
	ratio, err := Ratio(value, contribution)
	if err != nil {
		return 0, err
	}
	return Percent((ratio - 1) * 100), nil
}

// AnnualizedReturn returns the year over year return of 'contribution' grown
// into 'value' over 'days' days.
//
// The daily geometric rate is scaled linearly to a 365 days year:
// (exp(ln(ratio)/days) - 1) × 365.
func AnnualizedReturn(value, contribution Money, days int) (Percent, error) {
	if days <= 0 {
		return 0, fmt.Errorf("%d days: %w", days, ErrInvalidReturn)
	}
	ratio, err := Ratio(value, contribution)
	if err != nil {
		return 0, err
	}
	daily := math.Exp(math.Log(ratio)/float64(days)) - 1
	return Percent(daily * 365 * 100), nil
}

// ExcessReturn returns terminal - actual: how much more a benchmark would be
// worth than the actual portfolio. It is negative when the actual portfolio did better.
func ExcessReturn(terminal, actual Money) Money {
	return terminal.Sub(actual)
}
