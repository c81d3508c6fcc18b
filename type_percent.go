package nestegg

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Percent is a rate expressed in percent: 12.5 means 12.5%.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	return math.Abs(float64(p-q)) < precision
}

// Round returns p rounded to 2 decimals.
func (p Percent) Round() Percent {
	return Percent(math.Round(float64(p)*100) / 100)
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" || res == "-0.00%" {
		return "-"
	}
	return res
}

// Fraction returns p as a plain ratio: 12.5% is 0.125.
//
// The division happens in decimal, so that 33.3% is exactly 0.333.
func (p Percent) Fraction() decimal.Decimal { return decimal.NewFromFloat(float64(p)).Div(hundred) }
