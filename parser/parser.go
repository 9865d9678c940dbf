// Package parser turns a lexer.Tokenize token stream into the ast.Payload
// tree, resolving include directives, invoking the analyzer, and
// implementing the small set of special-form directives the generic
// argument grammar cannot handle on its own.
package parser

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/ergongate/ngxtree/analyzer"
	"github.com/ergongate/ngxtree/ast"
	"github.com/ergongate/ngxtree/catalog"
	"github.com/ergongate/ngxtree/lexer"
)

// job is one file queued for parsing. Its index in session.jobs is the
// Payload.Config index an "include" directive referencing it records in
// its Includes slice — reserved at enqueue time, the same way the
// teacher's opts.included map worked, so forward references are stable
// even though the file itself parses later.
type job struct {
	path string
	ctx  []string
	root bool
}

type session struct {
	opts *Options
	cat  *catalog.Catalog

	jobs    []job
	seen    map[string]int
	aborted bool
}

// Parse reads rootPath and every file it transitively includes, returning
// the combined Payload. opts may be nil to take DefaultOptions().
func Parse(rootPath string, opts *Options) (*ast.Payload, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	o := *opts
	o.fill()

	abs, err := filepath.Abs(rootPath)
	if err != nil {
		abs = rootPath
	}

	s := &session{opts: &o, cat: o.Catalog, seen: map[string]int{abs: 0}}
	// The main context is the empty path (catalog.ContextKey(nil) ==
	// catalog.CtxMain): nothing is pushed onto the stack until the first
	// block-opening directive (http, events, ...) is entered.
	s.jobs = []job{{path: abs, ctx: nil, root: true}}

	payload := ast.NewPayload()
	for i := 0; i < len(s.jobs); i++ {
		if s.aborted {
			break
		}
		j := s.jobs[i]
		fc := s.parseFile(j)
		payload.Config = append(payload.Config, fc)
		if fc.Status == ast.StatusFailed {
			payload.Status = ast.StatusFailed
		}
	}
	// Errors were recorded against each file's FileConfig (s.record only has
	// the per-file FileConfig in scope at the time); mirror them onto the
	// top level here in file-processing order.
	for _, fc := range payload.Config {
		payload.Errors = append(payload.Errors, fc.Errors...)
	}

	if o.Combine {
		payload = combine(payload)
	}
	return payload, nil
}

// record appends err to fc, marks fc failed, passes err to OnError, and
// sets s.aborted when catch_errors is false so the session stops after the
// first error (root I/O failures are recorded by parseFile directly, and
// recursion overflow sets s.aborted in its caller regardless of
// catch_errors).
func (s *session) record(fc *ast.FileConfig, err ast.Located) {
	fc.Status = ast.StatusFailed
	fc.Errors = append(fc.Errors, err.AsParseError())
	if s.opts.OnError != nil {
		s.opts.OnError(err)
	}
	if !s.opts.CatchErrors {
		s.aborted = true
	}
}

func (s *session) parseFile(j job) *ast.FileConfig {
	fc := &ast.FileConfig{File: j.path, Status: ast.StatusOK}

	r, err := s.opts.Open(j.path)
	if err != nil {
		ierr := ast.NewIncludeError(j.path, 0, "failed to open %q: %v", j.path, err)
		fc.Status = ast.StatusFailed
		fc.Errors = append(fc.Errors, ierr.AsParseError())
		if s.opts.OnError != nil {
			s.opts.OnError(ierr)
		}
		if j.root {
			// A root file I/O failure is always fatal, regardless of
			// catch_errors.
			s.aborted = true
		} else if !s.opts.CatchErrors {
			s.aborted = true
		}
		return fc
	}
	defer r.Close()

	tokens, err := lexer.Tokenize(j.path, r, s.opts.LexRegistry)
	if err != nil {
		le, ok := err.(ast.Located)
		if !ok {
			le = ast.NewLexError(j.path, 0, "%v", err)
		}
		fc.Status = ast.StatusFailed
		fc.Errors = append(fc.Errors, le.AsParseError())
		if s.opts.OnError != nil {
			s.opts.OnError(le)
		}
		if j.root || !s.opts.CatchErrors {
			s.aborted = true
		}
		return fc
	}

	cur := &tokenCursor{tokens: tokens}
	fc.Parsed = s.parseBlock(fc, cur, j.ctx, filepath.Dir(j.path), 0)
	return fc
}

// parseBlock consumes statements until the cursor is exhausted or a "}" is
// read in head position (the latter signals the end of the block this
// call is parsing; brace balance was already validated by the lexer, so
// every "}" seen here is the one matching the "{" that caused this call).
func (s *session) parseBlock(fc *ast.FileConfig, cur *tokenCursor, ctx []string, baseDir string, depth int) []*ast.Directive {
	var parsed []*ast.Directive
	for {
		if s.aborted {
			return parsed
		}
		head, ok := cur.next()
		if !ok {
			return parsed
		}
		if head.Value == "}" && !head.Quote {
			return parsed
		}

		if strings.HasPrefix(head.Value, "#") && !head.Quote {
			if s.opts.Comments {
				parsed = append(parsed, &ast.Directive{Name: "#", Line: head.Line, Comment: head.Value[1:]})
			}
			continue
		}

		d := &ast.Directive{Name: head.Value, Line: head.Line}
		var commentArgs []*ast.Directive
		var term ast.Token
		eof := false
		for {
			t, ok := cur.next()
			if !ok {
				eof = true
				break
			}
			if isTerminator(t) {
				term = t
				break
			}
			if strings.HasPrefix(t.Value, "#") && !t.Quote {
				if s.opts.Comments {
					commentArgs = append(commentArgs, &ast.Directive{Name: "#", Line: t.Line, Comment: t.Value[1:]})
				}
				continue
			}
			d.Args = append(d.Args, t.Value)
			d.ArgsQuoted = append(d.ArgsQuoted, t.Quote)
		}
		if eof {
			s.record(fc, ast.NewStructureError(fc.File, head.Line, `unexpected end of file, expecting ";"`))
			parsed = append(parsed, commentArgs...)
			return parsed
		}
		if term.Value == "}" {
			// The directive ran straight into the block's closing brace
			// with no terminator of its own: malformed, but recoverable by
			// treating the brace as the enclosing block's terminator.
			s.record(fc, ast.NewDirectiveError(fc.File, d.Line, `directive %q is not terminated by ";"`, d.Name))
			cur.idx--
			parsed = append(parsed, commentArgs...)
			continue
		}

		if s.opts.Ignore[d.Name] {
			if term.Value == "{" {
				skipBlock(cur)
			}
			continue
		}

		switch d.Name {
		case "if":
			d.Args = prepareIfArgs(d.Args)
		case "set":
			d.Args = prepareSetArgs(d.Args)
		}

		if err := analyzer.Analyze(s.cat, fc.File, d, term.Value, ctx, s.opts.analyzerOptions()); err != nil {
			s.record(fc, err.(ast.Located))
			if term.Value == "{" {
				// Recover from a directive that got an unexpected block: the
				// block itself may be well-formed, only misplaced, so
				// consume it whole rather than letting a cascade of bogus
				// child-directive errors follow.
				skipBlock(cur)
				parsed = append(parsed, d)
				parsed = append(parsed, commentArgs...)
				continue
			}
		}

		if d.Name == "include" {
			s.expandInclude(fc, d, baseDir, ctx)
		}

		if term.Value == "{" {
			if depth+1 > s.opts.MaxDepth {
				s.record(fc, ast.NewRecursionError(fc.File, d.Line, "too many nested block levels, max is %d", s.opts.MaxDepth))
				s.aborted = true
				parsed = append(parsed, commentArgs...)
				return parsed
			}
			childCtx := catalog.EnterBlock(d.Name, ctx)
			d.Block = s.parseBlock(fc, cur, childCtx, baseDir, depth+1)
			if d.Block == nil {
				d.Block = []*ast.Directive{}
			}
		}

		parsed = append(parsed, d)
		parsed = append(parsed, commentArgs...)
	}
}

// prepareSetArgs implements "set $var value" (spec §4.3): the value is
// captured verbatim up to the statement terminator even if the generic
// word-splitting grammar broke it into several args, so anything past the
// variable name is rejoined into one.
func prepareSetArgs(args []string) []string {
	if len(args) <= 2 {
		return args
	}
	return []string{args[0], strings.Join(args[1:], " ")}
}

func skipBlock(cur *tokenCursor) {
	depth := 1
	for {
		t, ok := cur.next()
		if !ok {
			return
		}
		if t.Quote {
			continue
		}
		switch t.Value {
		case "{":
			depth++
		case "}":
			depth--
		}
		if depth == 0 {
			return
		}
	}
}

func (s *session) expandInclude(fc *ast.FileConfig, d *ast.Directive, baseDir string, ctx []string) {
	if s.opts.Single {
		return
	}
	if len(d.Args) != 1 {
		s.record(fc, ast.NewIncludeError(fc.File, d.Line, `invalid number of arguments in "include" directive`))
		return
	}

	pattern := d.Args[0]
	if !filepath.IsAbs(pattern) {
		pattern = filepath.Join(baseDir, pattern)
	}

	var matches []string
	if strings.ContainsAny(pattern, "*?[") {
		m, err := s.opts.Glob(pattern)
		if err != nil {
			s.record(fc, ast.NewIncludeError(fc.File, d.Line, "%v", err))
			return
		}
		matches = m
		sort.Strings(matches)
		// A glob matching nothing is a warning, not an error: fall through
		// with zero files to enqueue.
	} else {
		matches = []string{pattern}
	}

	for _, m := range matches {
		abs, err := filepath.Abs(m)
		if err != nil {
			abs = m
		}
		idx, already := s.seen[abs]
		if !already {
			idx = len(s.jobs)
			s.seen[abs] = idx
			s.jobs = append(s.jobs, job{path: abs, ctx: ctx})
		}
		d.Includes = append(d.Includes, idx)
	}
}
