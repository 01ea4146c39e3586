package console

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ormanli/savings-account/internal/app/savings"
)

// option is a menu selection.
type option int

const (
	optionDeposit option = iota + 1
	optionWithdraw
	optionBalance
	optionAccountInfo
	optionExit
)

// maxAmountPlaces is the number of decimal places an entered amount may carry.
const maxAmountPlaces = 2

// plainAmount matches amounts written without exponent notation.
var plainAmount = regexp.MustCompile(`^[-+]?\d+(\.\d+)?$`)

// parseOption parses a menu selection.
func parseOption(s string) (option, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < int(optionDeposit) || n > int(optionExit) {
		return 0, savings.ErrInvalidOption
	}

	return option(n), nil
}

// parseAmount parses an amount entered by the user. Anything that is not a plain number
// with at most two decimal places is a validation error.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if !plainAmount.MatchString(s) {
		return decimal.Decimal{}, &savings.ValidationError{
			Reason: "invalid amount, please enter a valid number",
			Err:    savings.ErrInvalidAmount,
		}
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, &savings.ValidationError{
			Reason: "invalid amount, please enter a valid number",
			Err:    savings.ErrInvalidAmount,
		}
	}

	if amount.Exponent() < -maxAmountPlaces && !amount.Equal(amount.Truncate(maxAmountPlaces)) {
		return decimal.Decimal{}, &savings.ValidationError{
			Reason: "invalid amount, at most two decimal places are allowed",
			Err:    savings.ErrInvalidAmount,
		}
	}

	return amount, nil
}
