package main

import (
	"log/slog"
	"os"

	"github.com/kelseyhightower/envconfig"

	"github.com/ormanli/savings-account/internal/app/savings"
	"github.com/ormanli/savings-account/internal/app/scenarios"
	"github.com/ormanli/savings-account/internal/infra/logging"
)

func main() {
	code := 0
	defer func() {
		os.Exit(code)
	}()

	var c savings.Config

	err := envconfig.Process("app", &c)
	if err != nil {
		slog.Error("Can't process configuration", "error", err.Error())
		code = 1
		return
	}

	logging.Setup(c, os.Stderr)

	err = scenarios.Run(os.Stdout)
	if err != nil {
		slog.Error("Scenarios failed", "error", err.Error())
		code = 1
		return
	}
}
