package main

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/ergongate/ngxtree/ast"
	"github.com/ergongate/ngxtree/parser"
)

// ipLiteralRE matches a string that is exactly a dotted quad of one- to
// three-digit groups, mirroring check_hardcoded_ips.py's IP_RE.
var ipLiteralRE = regexp.MustCompile(`^\d{1,3}(\.\d{1,3}){3}$`)

// absolutePathDirectives are the directives whose first argument names a
// filesystem path that check_absolute_paths.py's authors would expect to
// be absolute in a production tree.
var absolutePathDirectives = map[string]bool{
	"root":  true,
	"alias": true,
}

// lintFinding is one informational result surfaced by the lint subcommand.
// Findings never affect a Payload's Status; they are advisory only.
type lintFinding struct {
	File    string `json:"file"`
	Line    int    `json:"line"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

func isValidIPv4(candidate string) bool {
	parts := strings.Split(candidate, ".")
	if len(parts) != 4 {
		return false
	}
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || n > 255 {
			return false
		}
	}
	return true
}

// lintHardcodedIPs flags directive arguments that are themselves a bare,
// valid dotted-quad IPv4 literal. Grounded on check_hardcoded_ips.py, which
// scans line text with a regex; here the tree is already tokenized so each
// argument is checked directly rather than re-scanning raw text.
func lintHardcodedIPs(file string, d *ast.Directive, out *[]lintFinding) {
	for _, arg := range d.Args {
		host := arg
		if idx := strings.IndexByte(host, ':'); idx >= 0 {
			host = host[:idx]
		}
		if ipLiteralRE.MatchString(host) && isValidIPv4(host) {
			*out = append(*out, lintFinding{
				File:    file,
				Line:    d.Line,
				Rule:    "hardcoded-ip",
				Message: fmt.Sprintf("directive %q has hardcoded IP %s", d.Name, host),
			})
		}
	}
}

// lintAbsolutePaths flags root/alias directives whose path argument is not
// absolute. Grounded on check_absolute_paths.py, generalized from that
// script's literal "/Users/..." pattern to the broader nginx-specific case
// of a path directive that isn't rooted at all.
func lintAbsolutePaths(file string, d *ast.Directive, out *[]lintFinding) {
	if !absolutePathDirectives[d.Name] || len(d.Args) == 0 {
		return
	}
	path := d.Args[0]
	if strings.HasPrefix(path, "$") {
		return
	}
	if !strings.HasPrefix(path, "/") {
		*out = append(*out, lintFinding{
			File:    file,
			Line:    d.Line,
			Rule:    "non-absolute-path",
			Message: fmt.Sprintf("directive %q argument %q is not an absolute path", d.Name, path),
		})
	}
}

func lintWalk(file string, directives []*ast.Directive, out *[]lintFinding) {
	for _, d := range directives {
		if d.IsComment() {
			continue
		}
		lintHardcodedIPs(file, d, out)
		lintAbsolutePaths(file, d, out)
		if d.IsBlock() {
			lintWalk(file, d.Block, out)
		}
	}
}

func lintCommand(lg *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "lint",
		Usage: "run additive checks (hardcoded IPs, non-absolute root/alias paths) over a parsed tree",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "write findings as a JSON array instead of text"},
		},
		Action: func(c *cli.Context) error {
			path := c.Args().First()
			if path == "" {
				return newUsageError("lint: missing PATH")
			}
			opts, _ := parseSingleFile(path)
			payload, err := parser.Parse(path, opts)
			if err != nil {
				return newIOError(err)
			}

			var findings []lintFinding
			for _, fc := range payload.Config {
				lintWalk(fc.File, fc.Parsed, &findings)
			}

			if c.Bool("json") {
				if err := json.NewEncoder(os.Stdout).Encode(findings); err != nil {
					return newIOError(err)
				}
			} else {
				for _, f := range findings {
					fmt.Fprintf(os.Stdout, "%s:%d: [%s] %s\n", f.File, f.Line, f.Rule, f.Message)
				}
			}

			lg.Info("lint complete", zap.Int("findings", len(findings)))
			return nil
		},
	}
}
