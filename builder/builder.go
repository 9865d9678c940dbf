// Package builder renders an ast.Payload/Directive tree back into nginx
// configuration text, the inverse of lexer+parser.
package builder

import (
	"strings"

	"github.com/ergongate/ngxtree/ast"
	"github.com/ergongate/ngxtree/buffers"
)

// Options controls a single Build call. The zero value is pretty-printing
// with a 4-space indent and no header.
type Options struct {
	// Indent is the number of spaces per nesting level (ignored if Tabs).
	Indent int
	// Tabs indents with one tab per level instead of spaces.
	Tabs bool
	// Header, if non-empty, is emitted verbatim before the first directive.
	Header string
	// Compact renders with zero indentation and no newlines between
	// statements, matching the CLI's "minify" mode.
	Compact bool
	// Registry supplies CustomBuilders for special-form directives, e.g.
	// the Lua *_by_lua_block family. Nil is treated as an empty registry.
	Registry *Registry
}

func (o *Options) margin(depth int) string {
	if o.Compact {
		return ""
	}
	if o.Tabs {
		return strings.Repeat("\t", depth)
	}
	indent := o.Indent
	if indent == 0 {
		indent = 4
	}
	return strings.Repeat(" ", indent*depth)
}

func (o *Options) newline() string {
	if o.Compact {
		return " "
	}
	return "\n"
}

// Build renders the directives of one FileConfig as configuration text.
// Callers with several FileConfigs call it once per file (the CLI's
// "build --dir" mode writes one output file per FileConfig).
func Build(fc *ast.FileConfig, opts *Options) string {
	if opts == nil {
		opts = &Options{Indent: 4}
	}
	buf := buffers.GetString()
	if opts.Header != "" {
		buf.WriteString(opts.Header)
		if !strings.HasSuffix(opts.Header, "\n") {
			buf.WriteByte('\n')
		}
	}
	buildBlock(buf, fc.Parsed, 0, -1, opts)

	// strings.Builder.String() aliases the builder's internal byte slice, and
	// PutString resets-and-recycles that same slice for the next borrower —
	// copy the result out before returning buf to the pool.
	out := buf.String()
	result := make([]byte, len(out))
	copy(result, out)
	buffers.PutString(buf)
	return string(result)
}

// buildBlock writes every directive in block into buf, in order, at the
// given nesting depth. It writes straight into the shared builder instead of
// assembling and concatenating per-statement strings, so a block with many
// sibling statements costs linear time rather than the quadratic blowup
// repeated string "+=" concatenation would produce.
func buildBlock(buf *strings.Builder, block []*ast.Directive, depth, lastLine int, opts *Options) {
	m := opts.margin(depth)
	wrote := false
	for _, d := range block {
		if d.IsComment() && d.Line == lastLine && wrote {
			buf.WriteString(" #")
			buf.WriteString(d.Comment)
			lastLine = d.Line
			continue
		}

		if wrote {
			buf.WriteString(opts.newline())
		}
		buf.WriteString(m)

		switch {
		case d.IsComment():
			buf.WriteString("#")
			buf.WriteString(d.Comment)
		default:
			if cb, ok := opts.Registry.lookup(d.Name); ok {
				buf.WriteString(cb.Build(d, depth, opts))
			} else {
				buildStatement(buf, d, depth, opts)
			}
		}
		wrote = true
		lastLine = d.Line
	}
}

func buildStatement(buf *strings.Builder, d *ast.Directive, depth int, opts *Options) {
	if d.Name == "if" {
		// The parser merges "if"'s parenthesized expression into a single
		// logical argument with the parens already included (see
		// parser.prepareIfArgs); re-quoting it here the way an ordinary
		// argument is quoted would wrap the whole expression in quotes the
		// moment it contains a space, which is every non-trivial
		// expression. Render it back verbatim instead.
		buf.WriteString("if ")
		buf.WriteString(strings.Join(d.Args, " "))
		finishStatement(buf, d, depth, opts)
		return
	}

	buf.WriteString(enquote(d.Name, false))
	if args := renderArgs(d); len(args) > 0 {
		buf.WriteString(" ")
		buf.WriteString(strings.Join(args, " "))
	}
	finishStatement(buf, d, depth, opts)
}

// finishStatement writes either the ";" terminator or the rendered block,
// shared by the generic path and the "if" special case above.
func finishStatement(buf *strings.Builder, d *ast.Directive, depth int, opts *Options) {
	if !d.IsBlock() {
		buf.WriteString(";")
		return
	}
	if len(d.Block) == 0 {
		buf.WriteString(" {")
		buf.WriteString(opts.margin(depth))
		buf.WriteString("}")
		return
	}
	buf.WriteString(" {")
	buf.WriteString(opts.newline())
	buildBlock(buf, d.Block, depth+1, d.Line, opts)
	buf.WriteString(opts.newline())
	buf.WriteString(opts.margin(depth))
	buf.WriteString("}")
}

func renderArgs(d *ast.Directive) []string {
	args := make([]string, len(d.Args))
	for i, a := range d.Args {
		wasQuoted := i < len(d.ArgsQuoted) && d.ArgsQuoted[i]
		args[i] = enquote(a, wasQuoted)
	}
	return args
}
