package parser

import (
	"io"
	"os"
	"path/filepath"

	"github.com/ergongate/ngxtree/analyzer"
	"github.com/ergongate/ngxtree/catalog"
	"github.com/ergongate/ngxtree/lexer"
)

// FileOpener opens a configuration file for reading, given its resolved
// path. The default wraps os.Open; tests substitute an in-memory one.
type FileOpener func(path string) (io.ReadCloser, error)

// GlobFunc resolves an include glob pattern to a sorted list of matching
// paths. The default wraps filepath.Glob.
type GlobFunc func(pattern string) ([]string, error)

func osOpen(path string) (io.ReadCloser, error) { return os.Open(path) }

// Options controls a single parse session. The zero value is not ready to
// use; start from DefaultOptions().
type Options struct {
	// CatchErrors: record errors and resume at the next statement
	// boundary instead of aborting on the first one.
	CatchErrors bool
	// Ignore names directives dropped from the output tree before any
	// validation runs.
	Ignore map[string]bool
	// Single disables include expansion; include arguments are kept
	// verbatim and no other files are opened.
	Single bool
	// Strict makes an unknown directive an error.
	Strict bool
	// Combine post-processes the result into one synthetic file.
	Combine bool
	// CheckCtx enables context-legality checking.
	CheckCtx bool
	// CheckArgs enables arity checking.
	CheckArgs bool
	// Comments emits "#" directives for preserved comments.
	Comments bool
	// MaxDepth bounds block nesting; 0 uses the package default (256).
	MaxDepth int

	Catalog     *catalog.Catalog
	LexRegistry *lexer.Registry

	Open FileOpener
	Glob GlobFunc

	// OnError, if set, is invoked for every recorded error in addition to
	// it being appended to the Payload (the parse subcommand's --tb-onerror
	// hook).
	OnError func(error)
}

// DefaultMaxDepth is the recursion-depth bound used when Options.MaxDepth
// is left at zero.
const DefaultMaxDepth = 256

// DefaultOptions returns the spec's documented defaults: catch_errors=true,
// check_ctx=true, check_args=true, everything else false/empty.
func DefaultOptions() *Options {
	return &Options{
		CatchErrors: true,
		CheckCtx:    true,
		CheckArgs:   true,
		MaxDepth:    DefaultMaxDepth,
		Catalog:     catalog.Default(),
		LexRegistry: lexer.NewRegistry(),
		Open:        osOpen,
		Glob:        filepath.Glob,
	}
}

func (o *Options) fill() {
	if o.Catalog == nil {
		o.Catalog = catalog.Default()
	}
	if o.Open == nil {
		o.Open = osOpen
	}
	if o.Glob == nil {
		o.Glob = filepath.Glob
	}
	if o.MaxDepth == 0 {
		o.MaxDepth = DefaultMaxDepth
	}
}

func (o *Options) analyzerOptions() analyzer.Options {
	return analyzer.Options{Strict: o.Strict, CheckCtx: o.CheckCtx, CheckArgs: o.CheckArgs}
}
