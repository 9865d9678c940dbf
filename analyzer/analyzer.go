// Package analyzer validates a single directive against the directive
// catalog, given the context stack it was found in.
package analyzer

import (
	"strings"

	"github.com/ergongate/ngxtree/ast"
	"github.com/ergongate/ngxtree/catalog"
)

// Options controls which checks Analyze performs; it mirrors the parser's
// strict/check_ctx/check_args flags one-to-one.
type Options struct {
	Strict    bool
	CheckCtx  bool
	CheckArgs bool
}

// Analyze validates one directive occurrence. term is "{" if the statement
// was followed by a block, ";" if it was a simple statement. ctx is the
// context stack the directive appears in (e.g. []string{"http","server"}).
func Analyze(cat *catalog.Catalog, file string, d *ast.Directive, term string, ctx []string, opts Options) error {
	variants, known := cat.Lookup(d.Name)
	if opts.Strict && !known {
		return ast.NewDirectiveError(file, d.Line, "unknown directive %q", d.Name)
	}

	ctxKey, ctxKnown := cat.ContextKey(ctx)
	if !ctxKnown || !known {
		// Either we don't recognize the nesting path (e.g. inside an
		// unregistered extension block) or we don't recognize the
		// directive (and strict is off): nothing more to check.
		return nil
	}

	if opts.CheckCtx {
		allowed := false
		for _, v := range variants {
			if catalog.Variant(ctxKey)&v != 0 {
				allowed = true
				break
			}
		}
		if !allowed {
			return ast.NewDirectiveError(file, d.Line, "%q directive is not allowed here", d.Name)
		}
	}

	if !opts.CheckArgs {
		return nil
	}

	n := len(d.Args)
	var reasons []string
	for i := len(variants) - 1; i >= 0; i-- {
		v := variants[i]
		if v&catalog.Block != 0 && term != "{" {
			reasons = append(reasons, `directive %q has no opening "{"`)
			continue
		}
		if v&catalog.Block == 0 && term != ";" {
			reasons = append(reasons, `directive %q is not terminated by ";"`)
			continue
		}
		switch {
		case n <= 7 && takesExactly(v, n):
			return nil
		case v&catalog.Flag != 0 && n == 1 && validFlag(d.Args[0]):
			return nil
		case v&catalog.Any != 0:
			return nil
		case v&catalog.OneMore != 0 && n >= 1:
			return nil
		case v&catalog.TwoMore != 0 && n >= 2:
			return nil
		case v&catalog.Flag != 0 && n == 1 && !validFlag(d.Args[0]):
			reasons = append(reasons, `invalid value "`+d.Args[0]+`" in %q directive, it must be "on" or "off"`)
		default:
			reasons = append(reasons, "invalid number of arguments in %q directive")
		}
	}

	if len(reasons) > 0 {
		msg := reasons[0]
		return ast.NewDirectiveError(file, d.Line, msg, d.Name)
	}
	return nil
}

func takesExactly(v catalog.Variant, n int) bool {
	takeBits := []catalog.Variant{catalog.Take0, catalog.Take1, catalog.Take2, catalog.Take3, catalog.Take4, catalog.Take5, catalog.Take6, catalog.Take7}
	return n >= 0 && n < len(takeBits) && v&takeBits[n] != 0
}

func validFlag(s string) bool {
	switch strings.ToLower(s) {
	case "on", "off":
		return true
	default:
		return false
	}
}
