package main

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/ergongate/ngxtree/ast"
	"github.com/ergongate/ngxtree/builder"
	"github.com/ergongate/ngxtree/luaext"
)

const defaultHeader = "# This config was built from JSON using ngxtree.\n"

func buildCommand(lg *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "build",
		Usage: "read a Payload as JSON on stdin and write configuration text",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "dir", Usage: "write one output file per FileConfig into this directory"},
			&cli.IntFlag{Name: "indent", Value: 4},
			&cli.BoolFlag{Name: "tabs"},
			&cli.BoolFlag{Name: "no-headers"},
			&cli.BoolFlag{Name: "stdout"},
		},
		Action: func(c *cli.Context) error {
			var payload ast.Payload
			if err := json.NewDecoder(os.Stdin).Decode(&payload); err != nil {
				return newIOError(err)
			}
			if len(payload.Config) == 0 {
				return newUsageError("build: payload has no config entries")
			}

			br := builder.NewRegistry()
			luaext.Register(nil, br)
			opts := &builder.Options{Indent: c.Int("indent"), Tabs: c.Bool("tabs"), Registry: br}
			if !c.Bool("no-headers") {
				opts.Header = defaultHeader
			}

			dir := c.String("dir")
			if dir != "" {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return newIOError(err)
				}
				for _, fc := range payload.Config {
					out := builder.Build(fc, opts)
					dest := filepath.Join(dir, filepath.Base(fc.File))
					if err := ioutil.WriteFile(dest, []byte(out), 0o644); err != nil {
						return newIOError(err)
					}
					lg.Info("wrote file", zap.String("file", dest))
				}
				return nil
			}

			out := builder.Build(payload.Config[0], opts)
			_, err := os.Stdout.WriteString(out)
			if err != nil {
				return newIOError(err)
			}
			return nil
		},
	}
}
