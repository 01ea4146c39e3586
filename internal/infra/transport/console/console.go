package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ormanli/savings-account/internal/app/savings"
)

// Account defines the operations the shell performs on an account.
type Account interface {
	Deposit(amount decimal.Decimal) (decimal.Decimal, error)
	Withdraw(amount decimal.Decimal) (decimal.Decimal, error)
	Balance() decimal.Decimal
	Describe() savings.Snapshot
}

const (
	welcomeBanner = `
╔════════════════════════════════════════╗
║        SAVINGS ACCOUNT MANAGEMENT      ║
╚════════════════════════════════════════╝

`
	goodbyeBanner = `
╔════════════════════════════════════════╗
║   Thank you for using our system!      ║
║            See you soon!               ║
╚════════════════════════════════════════╝

`
	menu = `┌────────────────────────────────────┐
│             MAIN MENU              │
├────────────────────────────────────┤
│ 1. Deposit money                   │
│ 2. Withdraw money                  │
│ 3. Check balance                   │
│ 4. Show account information        │
│ 5. Exit                            │
└────────────────────────────────────┘

Select an option: `
	infoSeparator = "════════════════════════════════════"
)

// Shell is an interactive text interface over a single savings account.
type Shell struct {
	cfg   savings.Config
	in    io.Reader
	out   io.Writer
	clock clock.Clock
}

// NewShell creates a new Shell instance reading commands from in and writing to out.
func NewShell(cfg savings.Config, in io.Reader, out io.Writer, clock clock.Clock) *Shell {
	return &Shell{
		cfg:   cfg,
		in:    in,
		out:   out,
		clock: clock,
	}
}

// Run opens an account and serves the menu until the user exits, input ends or context is cancelled.
// It returns an error if the account can't be opened.
func (s *Shell) Run(ctx context.Context) error {
	session := uuid.NewString()

	slog.Info("Session started", "session", session)
	defer slog.Info("Session finished", "session", session)

	lines := newLineReader(s.in)
	defer lines.stop()

	s.print(welcomeBanner)

	account, err := s.openAccount(ctx, lines)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			s.print(goodbyeBanner)
			return nil
		}
		return err
	}

	slog.Debug("Account opened", "session", session, "account", account.AccountNumber())

	return s.serve(ctx, session, lines, account)
}

// openAccount creates the account from configured values, prompting for the ones that are missing.
func (s *Shell) openAccount(ctx context.Context, lines *lineReader) (*savings.Account, error) {
	s.print("Let's open your savings account\n\n")

	accountNumber, err := s.prompt(ctx, lines, s.cfg.AccountNumber, "Enter the account number: ")
	if err != nil {
		return nil, fmt.Errorf("read account number: %w", err)
	}

	ownerName, err := s.prompt(ctx, lines, s.cfg.OwnerName, "Enter the owner name: ")
	if err != nil {
		return nil, fmt.Errorf("read owner name: %w", err)
	}

	account, err := savings.NewAccount(accountNumber, ownerName)
	if err != nil {
		s.writeResponse(response{status: Rejected, reason: err.Error()})
		s.print("Please restart the application.\n\n")
		return nil, err
	}

	s.writeResponse(response{status: Accepted, reason: "account created successfully!"})
	s.print("\n")

	return account, nil
}

// prompt returns preset when it is set, otherwise asks the user.
func (s *Shell) prompt(ctx context.Context, lines *lineReader, preset, question string) (string, error) {
	if preset != "" {
		return preset, nil
	}

	s.print(question)

	return lines.next(ctx)
}

// serve runs the menu loop against account.
func (s *Shell) serve(ctx context.Context, session string, lines *lineReader, account Account) error {
	for {
		s.print(menu)

		line, err := lines.next(ctx)
		if err != nil {
			return s.finish(err)
		}

		o, err := parseOption(line)
		if err != nil {
			slog.Debug("Invalid option", "session", session, "input", line)
			s.writeResponse(response{status: Rejected, reason: err.Error() + ". Please try again."})
			s.print("\n")
			continue
		}

		switch o {
		case optionDeposit:
			err = s.transact(ctx, session, lines, "\n─── DEPOSIT MONEY ───\nEnter the amount to deposit: ", func(amount decimal.Decimal) response {
				return s.handleDeposit(account, amount)
			})
		case optionWithdraw:
			err = s.transact(ctx, session, lines, "\n─── WITHDRAW MONEY ───\nEnter the amount to withdraw: ", func(amount decimal.Decimal) response {
				return s.handleWithdraw(account, amount)
			})
		case optionBalance:
			s.print("\n─── ACCOUNT BALANCE ───\nCurrent balance: %s\n\n", s.money(account.Balance()))
		case optionAccountInfo:
			s.printAccountInfo(account.Describe())
		case optionExit:
			s.print(goodbyeBanner)
			return nil
		}

		if err != nil {
			return s.finish(err)
		}
	}
}

// finish ends the session when input is exhausted or context is cancelled, other errors are returned.
func (s *Shell) finish(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		s.print(goodbyeBanner)
		return nil
	}

	return err
}

// transact asks for an amount and hands it over to handle.
func (s *Shell) transact(ctx context.Context, session string, lines *lineReader, question string, handle func(decimal.Decimal) response) error {
	s.print("%s%s", question, s.cfg.CurrencySymbol)

	line, err := lines.next(ctx)
	if err != nil {
		return err
	}

	var r response

	amount, err := parseAmount(line)
	if err != nil {
		r = response{status: Rejected, reason: err.Error()}
	} else {
		r = handle(amount)
	}

	slog.Debug("Handling request", "session", session, "input", line, "status", r.status, "reason", r.reason)

	s.writeResponse(r)
	s.print("\n")

	return nil
}

// handleDeposit deposits amount into account and returns a corresponding response.
func (s *Shell) handleDeposit(account Account, amount decimal.Decimal) response {
	balance, err := account.Deposit(amount)
	if err != nil {
		return errorResponse(err)
	}

	return s.receipt("deposit successful: "+s.money(amount), balance)
}

// handleWithdraw withdraws amount from account and returns a corresponding response.
func (s *Shell) handleWithdraw(account Account, amount decimal.Decimal) response {
	balance, err := account.Withdraw(amount)
	if err != nil {
		var insufficient *savings.InsufficientFundsError
		if errors.As(err, &insufficient) {
			return response{
				status: Rejected,
				reason: fmt.Sprintf("insufficient funds. Current balance: %s, Requested: %s",
					s.money(insufficient.Balance), s.money(insufficient.Requested)),
			}
		}
		return errorResponse(err)
	}

	return s.receipt("withdrawal successful: "+s.money(amount), balance)
}

func (s *Shell) receipt(reason string, balance decimal.Decimal) response {
	return response{
		status: Accepted,
		reason: reason,
		details: []string{
			"New balance: " + s.money(balance),
			"Time: " + s.clock.Now().UTC().Format(time.DateTime),
		},
	}
}

// errorResponse maps domain errors to rejections, anything else is unexpected.
func errorResponse(err error) response {
	if errors.Is(err, savings.ErrValidation) || errors.Is(err, savings.ErrInsufficientFunds) {
		return response{status: Rejected, reason: err.Error()}
	}

	slog.Error("Unexpected account failure", "error", err)

	return response{status: Failed, reason: err.Error()}
}

func (s *Shell) printAccountInfo(snapshot savings.Snapshot) {
	s.print("\n%s\n       ACCOUNT INFORMATION\n%s\n", infoSeparator, infoSeparator)
	s.print("Account number: %s\n", snapshot.AccountNumber)
	s.print("Owner: %s\n", snapshot.OwnerName)
	s.print("Current balance: %s\n", s.money(snapshot.Balance))
	s.print("%s\n\n", infoSeparator)
}

func (s *Shell) money(d decimal.Decimal) string {
	return s.cfg.CurrencySymbol + d.StringFixed(2)
}

func (s *Shell) writeResponse(r response) {
	s.print("%s\n", r)
}

func (s *Shell) print(format string, args ...any) {
	_, err := fmt.Fprintf(s.out, format, args...)
	if err != nil {
		slog.Error("Failed to write output", "error", err)
	}
}

// lineReader reads lines from an io.Reader in the background so a blocked read doesn't hold up cancellation.
type lineReader struct {
	lines chan string
	done  chan struct{}
	err   error
}

func newLineReader(r io.Reader) *lineReader {
	l := &lineReader{
		lines: make(chan string),
		done:  make(chan struct{}),
	}

	go l.read(r)

	return l
}

func (l *lineReader) read(r io.Reader) {
	defer close(l.lines)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		select {
		case <-l.done:
			return
		case l.lines <- scanner.Text():
		}
	}

	l.err = scanner.Err()
}

// next returns the next line. It returns io.EOF once input is exhausted.
func (l *lineReader) next(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-l.lines:
		if !ok {
			if l.err != nil {
				return "", l.err
			}
			return "", io.EOF
		}
		return line, nil
	}
}

// stop releases the reading goroutine. Reads already blocked on the underlying reader finish when it is closed.
func (l *lineReader) stop() {
	close(l.done)
}
