// Package scenarios runs a fixed set of account scenarios and reports each check as it goes.
package scenarios

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ormanli/savings-account/internal/app/savings"
)

// ErrScenarioFailed is returned by Run when at least one check didn't hold.
var ErrScenarioFailed = errors.New("scenario failed")

type scenario struct {
	name string
	run  func(*report) error
}

var all = []scenario{
	{name: "Creating account", run: createAccount},
	{name: "Successful deposit", run: successfulDeposit},
	{name: "Successful withdrawal", run: successfulWithdrawal},
	{name: "Withdrawal with insufficient funds", run: insufficientFunds},
	{name: "Invalid operations", run: invalidOperations},
	{name: "Multiple operations sequence", run: multipleOperations},
}

// report writes check results of a single scenario and remembers whether any failed.
type report struct {
	w      io.Writer
	failed bool
}

func (r *report) pass(format string, args ...any) {
	fmt.Fprintf(r.w, "✓ "+format+"\n", args...)
}

func (r *report) fail(format string, args ...any) {
	r.failed = true
	fmt.Fprintf(r.w, "✗ "+format+"\n", args...)
}

func (r *report) detail(format string, args ...any) {
	fmt.Fprintf(r.w, "  "+format+"\n", args...)
}

// expectBalance passes when actual equals expected, otherwise fails.
func (r *report) expectBalance(name string, expected string, actual decimal.Decimal) {
	if !actual.Equal(decimal.RequireFromString(expected)) {
		r.fail("Balance mismatch! Expected: $%s Actual: $%s", expected, actual.StringFixed(2))
		return
	}
	r.pass("%s test passed", name)
	r.detail("Expected: $%s", expected)
	r.detail("Actual: $%s", actual.StringFixed(2))
}

// Run executes all scenarios writing results to w.
func Run(w io.Writer) error {
	fmt.Fprint(w, "SAVINGS ACCOUNT SYSTEM - AUTOMATED TESTS\n\n")

	var failed []string
	for i, s := range all {
		fmt.Fprintf(w, "TEST %d: %s...\n", i+1, s.name)

		r := &report{w: w}
		if err := s.run(r); err != nil {
			r.fail("Test failed: %s", err)
		}
		fmt.Fprintln(w)

		if r.failed {
			slog.Debug("Scenario failed", "scenario", s.name)
			failed = append(failed, s.name)
		}
	}

	if len(failed) > 0 {
		fmt.Fprintf(w, "%d OF %d TESTS FAILED\n", len(failed), len(all))
		return fmt.Errorf("%w: %s", ErrScenarioFailed, strings.Join(failed, ", "))
	}

	fmt.Fprint(w, "ALL TESTS COMPLETED SUCCESSFULLY\n")

	return nil
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func createAccount(r *report) error {
	a, err := savings.NewAccount("ACC-001", "John Doe")
	if err != nil {
		return err
	}

	if !a.Balance().IsZero() {
		r.fail("Initial balance is $%s", a.Balance().StringFixed(2))
		return nil
	}

	r.pass("Account created successfully")
	r.detail("Account Number: %s", a.AccountNumber())
	r.detail("Owner: %s", a.OwnerName())
	r.detail("Initial Balance: $%s", a.Balance().StringFixed(2))

	return nil
}

func successfulDeposit(r *report) error {
	a, err := savings.NewAccount("ACC-002", "Jane Smith")
	if err != nil {
		return err
	}

	balance, err := a.Deposit(amount("1000.00"))
	if err != nil {
		return err
	}

	r.expectBalance("Deposit", "1000.00", balance)

	return nil
}

func successfulWithdrawal(r *report) error {
	a, err := savings.NewAccount("ACC-003", "Bob Johnson")
	if err != nil {
		return err
	}

	if _, err = a.Deposit(amount("5000.00")); err != nil {
		return err
	}

	balance, err := a.Withdraw(amount("2000.00"))
	if err != nil {
		return err
	}

	r.expectBalance("Withdrawal", "3000.00", balance)

	return nil
}

func insufficientFunds(r *report) error {
	a, err := savings.NewAccount("ACC-004", "Alice Brown")
	if err != nil {
		return err
	}

	if _, err = a.Deposit(amount("100.00")); err != nil {
		return err
	}

	_, err = a.Withdraw(amount("200.00"))

	var insufficient *savings.InsufficientFundsError
	if !errors.As(err, &insufficient) {
		r.fail("Should have been rejected for insufficient funds, got: %v", err)
		return nil
	}

	r.pass("Insufficient funds rejected correctly")
	r.detail("Message: %s", err)

	if !insufficient.Balance.Equal(amount("100.00")) || !insufficient.Requested.Equal(amount("200.00")) {
		r.fail("Unexpected error values: balance $%s, requested $%s",
			insufficient.Balance.StringFixed(2), insufficient.Requested.StringFixed(2))
	}

	if !a.Balance().Equal(amount("100.00")) {
		r.fail("Balance changed after rejected withdrawal: $%s", a.Balance().StringFixed(2))
	}

	return nil
}

func invalidOperations(r *report) error {
	a, err := savings.NewAccount("ACC-005", "Charlie Wilson")
	if err != nil {
		return err
	}

	if _, err = a.Deposit(amount("-100.00")); errors.Is(err, savings.ErrValidation) {
		r.pass("Negative deposit rejected correctly")
	} else {
		r.fail("Should have rejected negative deposit")
	}

	if _, err = a.Withdraw(amount("0.00")); errors.Is(err, savings.ErrValidation) {
		r.pass("Zero withdrawal rejected correctly")
	} else {
		r.fail("Should have rejected zero withdrawal")
	}

	if _, err = savings.NewAccount("", "Test User"); errors.Is(err, savings.ErrValidation) {
		r.pass("Empty account number rejected correctly")
	} else {
		r.fail("Should have rejected empty account number")
	}

	return nil
}

func multipleOperations(r *report) error {
	a, err := savings.NewAccount("ACC-006", "David Martinez")
	if err != nil {
		return err
	}

	r.detail("Starting balance: $%s", a.Balance().StringFixed(2))

	steps := []struct {
		label string
		op    func(decimal.Decimal) (decimal.Decimal, error)
		value string
	}{
		{label: "deposit", op: a.Deposit, value: "1000.00"},
		{label: "withdrawal", op: a.Withdraw, value: "300.00"},
		{label: "deposit", op: a.Deposit, value: "500.00"},
		{label: "withdrawal", op: a.Withdraw, value: "200.00"},
	}
	for _, step := range steps {
		balance, err := step.op(amount(step.value))
		if err != nil {
			return err
		}
		r.detail("After %s $%s: $%s", step.label, step.value, balance.StringFixed(2))
	}

	if !a.Balance().Equal(amount("1000.00")) {
		r.fail("Final balance mismatch! Expected: $1000.00 Actual: $%s", a.Balance().StringFixed(2))
		return nil
	}

	r.pass("Multiple operations test passed")
	r.detail("Final balance: $%s", a.Balance().StringFixed(2))

	return nil
}
