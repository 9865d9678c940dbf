package main

import (
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/ergongate/ngxtree/builder"
	"github.com/ergongate/ngxtree/luaext"
	"github.com/ergongate/ngxtree/parser"
)

func parseSingleFile(path string) (*parser.Options, error) {
	opts := parser.DefaultOptions()
	opts.Comments = true
	luaext.Register(opts.LexRegistry, nil)
	return opts, nil
}

func formatCommand(lg *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "format",
		Usage: "parse then build a single file, writing the result to stdout",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "indent", Value: 4},
			&cli.BoolFlag{Name: "tabs"},
		},
		Action: func(c *cli.Context) error {
			path := c.Args().First()
			if path == "" {
				return newUsageError("format: missing PATH")
			}
			opts, _ := parseSingleFile(path)
			payload, err := parser.Parse(path, opts)
			if err != nil {
				return newIOError(err)
			}
			if len(payload.Errors) > 0 {
				return payload.Errors[0]
			}

			br := builder.NewRegistry()
			luaext.Register(nil, br)
			out := builder.Build(payload.Config[0], &builder.Options{
				Indent:   c.Int("indent"),
				Tabs:     c.Bool("tabs"),
				Registry: br,
			})
			_, werr := os.Stdout.WriteString(out)
			return werr
		},
	}
}

func minifyCommand(lg *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "minify",
		Usage: "build with indent 0 and no newlines between statements",
		Action: func(c *cli.Context) error {
			path := c.Args().First()
			if path == "" {
				return newUsageError("minify: missing PATH")
			}
			opts, _ := parseSingleFile(path)
			payload, err := parser.Parse(path, opts)
			if err != nil {
				return newIOError(err)
			}
			if len(payload.Errors) > 0 {
				return payload.Errors[0]
			}

			br := builder.NewRegistry()
			luaext.Register(nil, br)
			out := builder.Build(payload.Config[0], &builder.Options{Compact: true, Registry: br})
			_, werr := os.Stdout.WriteString(out)
			return werr
		},
	}
}
