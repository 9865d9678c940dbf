package builder

import "github.com/ergongate/ngxtree/ast"

// CustomBuilder is implemented by directives that need to render their own
// statement instead of the generic "name arg arg...;" / "name arg... {"
// grammar, e.g. a Lua block rewriting its opaque argument back into braces.
// It mirrors the lexer's SubLexer hook: a directive name claims the whole
// rendering of its statement rather than patching the core builder loop.
type CustomBuilder interface {
	// Build returns the full rendered statement for d at the given
	// indentation depth, including its own trailing terminator. buildBlock
	// writes the separating newline and the indentation margin before it
	// and then writes the returned text as-is.
	Build(d *ast.Directive, depth int, opts *Options) string
}

// CustomBuilderFunc adapts a function to the CustomBuilder interface.
type CustomBuilderFunc func(d *ast.Directive, depth int, opts *Options) string

func (f CustomBuilderFunc) Build(d *ast.Directive, depth int, opts *Options) string { return f(d, depth, opts) }

// Registry maps directive names to the CustomBuilder responsible for their
// statement. The zero value is an empty, usable registry.
type Registry struct {
	byName map[string]CustomBuilder
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry { return &Registry{byName: map[string]CustomBuilder{}} }

// Register installs cb as the handler for each of names.
func (r *Registry) Register(cb CustomBuilder, names ...string) {
	if r.byName == nil {
		r.byName = map[string]CustomBuilder{}
	}
	for _, n := range names {
		r.byName[n] = cb
	}
}

func (r *Registry) lookup(name string) (CustomBuilder, bool) {
	if r == nil || r.byName == nil {
		return nil, false
	}
	cb, ok := r.byName[name]
	return cb, ok
}
