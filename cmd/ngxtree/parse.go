package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"code.cloudfoundry.org/bytefmt"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/ergongate/ngxtree/ast"
	"github.com/ergongate/ngxtree/luaext"
	"github.com/ergongate/ngxtree/parser"
)

func parseCommand(lg *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "parse",
		Usage: "parse a configuration tree and write its Payload as JSON",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "include-comments"},
			&cli.BoolFlag{Name: "no-catch"},
			&cli.StringFlag{Name: "ignore", Usage: "comma-separated directive names"},
			&cli.BoolFlag{Name: "single-file"},
			&cli.StringFlag{Name: "tb-onerror", Usage: "shell command to pipe each error's JSON into"},
			&cli.BoolFlag{Name: "combine"},
			&cli.BoolFlag{Name: "strict"},
			&cli.BoolFlag{Name: "no-check-ctx"},
			&cli.BoolFlag{Name: "no-check-args"},
			&cli.StringFlag{Name: "metrics-addr", Usage: "expose Prometheus metrics on this address while parsing"},
		},
		Action: func(c *cli.Context) error {
			path := c.Args().First()
			if path == "" {
				return newUsageError("parse: missing PATH")
			}
			if addr := c.String("metrics-addr"); addr != "" {
				serveMetrics(addr)
			}

			opts := parser.DefaultOptions()
			opts.Comments = c.Bool("include-comments")
			opts.CatchErrors = !c.Bool("no-catch")
			opts.Single = c.Bool("single-file")
			opts.Combine = c.Bool("combine")
			opts.Strict = c.Bool("strict")
			opts.CheckCtx = !c.Bool("no-check-ctx")
			opts.CheckArgs = !c.Bool("no-check-args")
			if ig := c.String("ignore"); ig != "" {
				opts.Ignore = map[string]bool{}
				for _, name := range strings.Split(ig, ",") {
					opts.Ignore[name] = true
				}
			}
			luaext.Register(opts.LexRegistry, nil)

			if hook := c.String("tb-onerror"); hook != "" {
				opts.OnError = onErrorHook(lg, hook)
			}

			start := time.Now()
			payload, err := parser.Parse(path, opts)
			parseDuration.Observe(time.Since(start).Seconds())
			if err != nil {
				return newIOError(err)
			}

			parseFilesTotal.WithLabelValues(payload.Status).Add(float64(len(payload.Config)))
			for _, fc := range payload.Config {
				if fi, statErr := os.Stat(fc.File); statErr == nil {
					lg.Debug("parsed file", zap.String("file", fc.File), zap.String("size", bytefmt.ByteSize(uint64(fi.Size()))))
				}
				for range fc.Errors {
					parseErrorsTotal.WithLabelValues("recorded").Inc()
				}
			}
			total := sessionFileCount.Add(int64(len(payload.Config)))
			lg.Info("session totals", zap.Int64("files_parsed", total))
			for _, pe := range payload.Errors {
				lg.Warn("parse error", zap.String("file", pe.File), zap.Int("line", pe.Line), zap.String("reason", pe.Err))
			}

			enc := json.NewEncoder(os.Stdout)
			if err := enc.Encode(payload); err != nil {
				return newIOError(err)
			}

			if opts.Strict && payload.Status == ast.StatusFailed {
				return fmt.Errorf("strict mode: parse completed with errors")
			}
			return nil
		},
	}
}

// onErrorHook implements --tb-onerror: each recorded error's JSON is piped
// into the named shell command's stdin, best-effort. Failure to run the
// hook is logged, never fatal to the parse itself.
func onErrorHook(lg *zap.Logger, command string) func(error) {
	return func(err error) {
		le, ok := err.(ast.Located)
		if !ok {
			return
		}
		payload, merr := json.Marshal(le.AsParseError())
		if merr != nil {
			return
		}
		cmd := exec.Command("sh", "-c", command)
		cmd.Stdin = strings.NewReader(string(payload))
		if out, runErr := cmd.CombinedOutput(); runErr != nil {
			lg.Warn("on-error hook failed", zap.Error(runErr), zap.ByteString("output", out))
		}
	}
}
