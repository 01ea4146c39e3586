package savings

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Account is a single savings account. It is not safe for concurrent use.
type Account struct {
	accountNumber string
	ownerName     string
	balance       decimal.Decimal
}

// Snapshot is a read-only view of an account.
type Snapshot struct {
	AccountNumber string
	OwnerName     string
	Balance       decimal.Decimal
}

// NewAccount opens an account with a zero balance.
// Identity fields are trimmed and must not be empty; the account number is checked first.
func NewAccount(accountNumber, ownerName string) (*Account, error) {
	accountNumber = strings.TrimSpace(accountNumber)
	if accountNumber == "" {
		return nil, newValidationError("account number empty")
	}

	ownerName = strings.TrimSpace(ownerName)
	if ownerName == "" {
		return nil, newValidationError("owner name empty")
	}

	return &Account{
		accountNumber: accountNumber,
		ownerName:     ownerName,
		balance:       decimal.Zero,
	}, nil
}

// Deposit adds amount to the balance and returns the new balance.
func (a *Account) Deposit(amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return a.balance, newValidationError("deposit amount must be positive")
	}

	a.balance = a.balance.Add(amount)

	return a.balance, nil
}

// Withdraw subtracts amount from the balance and returns the new balance.
// Positivity is checked before sufficiency.
func (a *Account) Withdraw(amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return a.balance, newValidationError("withdrawal amount must be positive")
	}

	if amount.GreaterThan(a.balance) {
		return a.balance, &InsufficientFundsError{
			Balance:   a.balance,
			Requested: amount,
		}
	}

	a.balance = a.balance.Sub(amount)

	return a.balance, nil
}

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// AccountNumber returns the trimmed account number given at creation.
func (a *Account) AccountNumber() string {
	return a.accountNumber
}

// OwnerName returns the trimmed owner name given at creation.
func (a *Account) OwnerName() string {
	return a.ownerName
}

// Describe returns a snapshot of the account for display.
func (a *Account) Describe() Snapshot {
	return Snapshot{
		AccountNumber: a.accountNumber,
		OwnerName:     a.ownerName,
		Balance:       a.balance,
	}
}
