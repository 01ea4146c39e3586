package internal

import (
	"context"
	"io"
	"os"

	"github.com/benbjohnson/clock"

	"github.com/ormanli/savings-account/internal/app/savings"
	"github.com/ormanli/savings-account/internal/infra/logging"
	"github.com/ormanli/savings-account/internal/infra/transport/console"
)

// Run starts an interactive session with the passed configuration.
func Run(ctx context.Context, cfg savings.Config, in io.Reader, out io.Writer) error {
	logging.Setup(cfg, os.Stderr)

	shell := console.NewShell(cfg, in, out, clock.New())

	return shell.Run(ctx)
}
