// Command ngxtree is the CLI surface over the parser/builder library: it
// parses nginx configuration to JSON, builds JSON back to configuration
// text, exposes the raw token stream for tooling, and runs a couple of
// additive lints borrowed from the reference implementation's audit
// scripts.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	lg, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "ngxtree: failed to initialize logger:", err)
		os.Exit(2)
	}
	defer lg.Sync()

	app := &cli.App{
		Name:  "ngxtree",
		Usage: "parse, build, and lint nginx configuration trees",
		Commands: []*cli.Command{
			parseCommand(lg),
			buildCommand(lg),
			lexCommand(lg),
			lexServerCommand(lg),
			formatCommand(lg),
			minifyCommand(lg),
			lintCommand(lg),
		},
	}

	if err := app.Run(os.Args); err != nil {
		lg.Error("command failed", zap.Error(err))
		os.Exit(exitCodeFor(err))
	}
}

// exitCodeFor maps an error to the CLI's documented exit codes: 1 strict
// parse failure, 2 I/O error, 3 usage error.
func exitCodeFor(err error) int {
	switch err.(type) {
	case usageError:
		return 3
	case ioError:
		return 2
	default:
		return 1
	}
}

type usageError struct{ error }
type ioError struct{ error }

func newUsageError(format string, a ...interface{}) error {
	return usageError{fmt.Errorf(format, a...)}
}

func newIOError(err error) error {
	return ioError{err}
}
