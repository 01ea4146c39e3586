package savings

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrValidation        = errors.New("validation failed")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidOption     = errors.New("invalid option")
	ErrInvalidAmount     = errors.New("invalid amount")
)

// ValidationError reports malformed input. It matches ErrValidation.
type ValidationError struct {
	Reason string
	Err    error
}

func newValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// InsufficientFundsError reports a withdrawal larger than the balance. It matches ErrInsufficientFunds.
type InsufficientFundsError struct {
	Balance   decimal.Decimal
	Requested decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: balance %s, requested %s", e.Balance.StringFixed(2), e.Requested.StringFixed(2))
}

func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}
