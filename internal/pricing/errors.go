package pricing

import (
	"errors"
	"fmt"
)

// ErrorKind is the machine-readable discriminant of a calculation failure.
type ErrorKind string

const (
	KindInvalidRate   ErrorKind = "invalid_rate"
	KindInvalidPrice  ErrorKind = "invalid_price"
	KindMarginTooHigh ErrorKind = "margin_too_high"
)

var (
	ErrInvalidRate   = errors.New("invalid rate")
	ErrInvalidPrice  = errors.New("invalid price")
	ErrMarginTooHigh = errors.New("target margin too high")
)

// InvalidRateError is returned when a rate is NaN, infinite or negative.
type InvalidRateError struct {
	Rate float64
}

func (e *InvalidRateError) Error() string {
	return fmt.Sprintf("rate must be a finite number >= 0, got %v", e.Rate)
}

func (e *InvalidRateError) Is(target error) bool { return target == ErrInvalidRate }

// InvalidPriceError is returned when a price is NaN, infinite or negative.
// Field carries the name of the offending input; Reason overrides the
// default "must be a positive number".
type InvalidPriceError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InvalidPriceError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "must be a positive number"
	}
	return fmt.Sprintf("%s %s, got %v", e.Field, reason, e.Value)
}

func (e *InvalidPriceError) Is(target error) bool { return target == ErrInvalidPrice }

// MarginTooHighError is returned when the normalized target margin is >= 1.
type MarginTooHighError struct {
	Rate float64
}

func (e *MarginTooHighError) Error() string {
	return fmt.Sprintf("target margin rate must be below 100%%, got %v", e.Rate)
}

func (e *MarginTooHighError) Is(target error) bool { return target == ErrMarginTooHigh }

// KindOf returns the kind of a calculation error, or "" for any other error.
func KindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrInvalidRate):
		return KindInvalidRate
	case errors.Is(err, ErrInvalidPrice):
		return KindInvalidPrice
	case errors.Is(err, ErrMarginTooHigh):
		return KindMarginTooHigh
	default:
		return ""
	}
}
