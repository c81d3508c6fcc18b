package nestegg

import "errors"

var (
	// ErrEmptyInput is returned when there are no transactions at all.
	ErrEmptyInput = errors.New("no transactions")
	// ErrInsufficientData is returned when fewer than two dates are common to
	// the contributions and the price series of an instrument.
	ErrInsufficientData = errors.New("insufficient overlapping data")
	// ErrInvalidPrice is returned when a price used for simulation is not strictly positive.
	ErrInvalidPrice = errors.New("invalid price")
	// ErrInvalidReturn is returned when a return cannot be computed (non positive
	// contribution or ratio, or no elapsed time).
	ErrInvalidReturn = errors.New("invalid return")
	// ErrNoContribution is returned when the total contribution is zero.
	ErrNoContribution = errors.New("no contribution")
	// ErrSourceUnavailable is returned when a transaction source has no data.
	ErrSourceUnavailable = errors.New("transaction source unavailable")
	// ErrInvalidAllocation is returned for allocations with negative weights or a zero total.
	ErrInvalidAllocation = errors.New("invalid allocation")
)
