//go:generate enumer -type=status -transform=upper

package console

import (
	"strings"
)

// response is the outcome of a single menu operation as shown to the user.
type response struct {
	status  status
	reason  string
	details []string
}

func (r response) String() string {
	var b strings.Builder

	switch r.status {
	case Accepted:
		b.WriteString("✓ ")
	case Rejected:
		b.WriteString("✗ Error: ")
	case Failed:
		b.WriteString("✗ Unexpected error: ")
	}
	b.WriteString(capitalizeFirst(r.reason))

	for _, d := range r.details {
		b.WriteString("\n  ")
		b.WriteString(d)
	}

	return b.String()
}

type status int

const (
	Accepted status = iota
	Rejected
	Failed
)

func capitalizeFirst(s string) string {
	if len(s) == 0 {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}
