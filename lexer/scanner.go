// Package lexer tokenizes nginx configuration text into a flat sequence of
// ast.Token values, honoring nginx's quoting and comment conventions and
// providing a registration hook so individual directives (notably the Lua
// module's *_by_lua_block family) can take over raw-rune scanning for their
// own body.
package lexer

import (
	"bufio"
	"io"
	"unicode"

	"github.com/ergongate/ngxtree/ast"
)

// runeSource yields one rune at a time; io.EOF ends the stream.
type runeSource interface {
	Next() (rune, error)
}

type bufioSource struct{ r *bufio.Reader }

func (b bufioSource) Next() (rune, error) {
	r, _, err := b.r.ReadRune()
	return r, err
}

// SubLexer is implemented by directives that need to scan their own body
// instead of the generic whitespace-separated argument grammar, e.g. a Lua
// block. Registry.Register installs one against a set of directive names.
type SubLexer interface {
	// Lex is invoked with the raw source positioned immediately after the
	// directive name token. matchedName is the directive name that
	// triggered the call. It returns the tokens that should be spliced
	// into the stream in place of the generic argument scan.
	Lex(s *Scanner, matchedName string) ([]ast.Token, error)
}

// SubLexerFunc adapts a function to the SubLexer interface.
type SubLexerFunc func(s *Scanner, matchedName string) ([]ast.Token, error)

func (f SubLexerFunc) Lex(s *Scanner, matchedName string) ([]ast.Token, error) { return f(s, matchedName) }

// Registry maps directive names to the SubLexer responsible for their body.
// The zero value is an empty, usable registry.
type Registry struct {
	byName map[string]SubLexer
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry { return &Registry{byName: map[string]SubLexer{}} }

// Register installs lx as the handler for each of names. It is the
// extensibility hook called for in the design notes: callers needing a new
// special-form directive register a SubLexer rather than patching the core
// scanning loop.
func (r *Registry) Register(lx SubLexer, names ...string) {
	if r.byName == nil {
		r.byName = map[string]SubLexer{}
	}
	for _, n := range names {
		r.byName[n] = lx
	}
}

func (r *Registry) lookup(name string) (SubLexer, bool) {
	if r == nil || r.byName == nil {
		return nil, false
	}
	lx, ok := r.byName[name]
	return lx, ok
}

// Scanner is a line-tracking, registration-aware rune scanner. It is used
// both internally by Tokenize and externally by a SubLexer that needs to
// keep consuming raw runes (e.g. to find the matching "}" of a Lua block).
type Scanner struct {
	Filename string

	src  runeSource
	line int

	tokens      []ast.Token
	token       []rune
	tokStart    int  // line the current pending token started on
	tokenQuoted bool // true if any fragment merged into token came from a quote

	atStatementBoundary bool // true right after {, }, or ; — next word may be a directive name
	registry            *Registry

	pendingSpace bool
}

// NewScanner creates a Scanner reading from r.
func NewScanner(filename string, r io.Reader, registry *Registry) *Scanner {
	return &Scanner{
		Filename:            filename,
		src:                 bufioSource{bufio.NewReader(r)},
		line:                1,
		atStatementBoundary: true,
		registry:            registry,
	}
}

// Line returns the current source line.
func (s *Scanner) Line() int { return s.line }

// NextRune returns the next raw rune, tracking line numbers. It is exposed
// for SubLexer implementations that must consume characters directly.
func (s *Scanner) NextRune() (rune, error) {
	r, err := s.src.Next()
	if err != nil {
		return 0, err
	}
	if r == '\n' {
		s.line++
	}
	return r, nil
}

// Emit appends a token directly to the output stream. SubLexer
// implementations use this instead of returning a slice when they want to
// interleave emission with further scanning logic; Tokenize also accepts
// the slice a SubLexer returns and appends it verbatim, so either style
// works.
func (s *Scanner) Emit(tok ast.Token) { s.tokens = append(s.tokens, tok) }

func (s *Scanner) flushWord() {
	if len(s.token) == 0 {
		return
	}
	s.tokens = append(s.tokens, ast.Token{
		Value:           string(s.token),
		Line:            s.tokStart,
		Quote:           s.tokenQuoted,
		HadLeadingSpace: s.pendingSpace,
	})
	s.token = s.token[:0]
	s.tokenQuoted = false
	s.pendingSpace = false
}

// Tokenize reads all of r and returns its token sequence. filename is
// carried on any error for source-location reporting.
func Tokenize(filename string, r io.Reader, registry *Registry) ([]ast.Token, error) {
	s := NewScanner(filename, r, registry)
	if err := s.run(); err != nil {
		return nil, err
	}
	if err := balanceBraces(s.tokens, filename); err != nil {
		return nil, err
	}
	return s.tokens, nil
}

func (s *Scanner) run() error {
	for {
		ch, err := s.NextRune()
		if err == io.EOF {
			s.flushWord()
			return nil
		}
		if err != nil {
			return err
		}

		if unicode.IsSpace(ch) {
			hadWord := len(s.token) > 0
			s.flushWord()
			if hadWord {
				if err := s.maybeDispatch(); err != nil {
					return err
				}
			}
			s.pendingSpace = true
			continue
		}

		if len(s.token) == 0 && ch == '#' {
			line := s.line
			var buf []rune
			buf = append(buf, '#')
			for {
				ch, err = s.NextRune()
				if err != nil || ch == '\n' {
					break
				}
				buf = append(buf, ch)
			}
			s.tokens = append(s.tokens, ast.Token{Value: string(buf), Line: line, HadLeadingSpace: s.pendingSpace})
			s.pendingSpace = false
			if err == io.EOF {
				return nil
			}
			continue
		}

		if ch == '\'' || ch == '"' {
			if err := s.lexQuoted(ch); err != nil {
				return err
			}
			if err := s.maybeDispatch(); err != nil {
				return err
			}
			continue
		}

		if ch == '{' || ch == '}' || ch == ';' {
			s.flushWord()
			s.tokens = append(s.tokens, ast.Token{Value: string(ch), Line: s.line, HadLeadingSpace: s.pendingSpace})
			s.pendingSpace = false
			s.atStatementBoundary = true
			continue
		}

		if len(s.token) == 0 {
			s.tokStart = s.line
		}
		s.token = append(s.token, ch)
	}
}

// lexQuoted scans a quoted token starting after the opening quote rune has
// already been consumed by the caller (quote holds which quote char). The
// decoded contents are merged into whatever fragment of the current word is
// already pending in s.token rather than emitted immediately: this is what
// makes the concatenation rule symmetric. A bareword fragment already
// pending (bar"e") extends into the quote, and — since flushWord is the only
// place a token is actually emitted — a quote immediately followed by more
// bareword characters or another quote ("abc"def, "abc"'def') keeps
// accumulating into the same pending token instead of splitting. Either way
// the merged token is marked Quote: true once flushed.
func (s *Scanner) lexQuoted(quote rune) error {
	openLine := s.line
	if len(s.token) == 0 {
		s.tokStart = openLine
	}

	var buf []rune
	for {
		ch, err := s.NextRune()
		if err == io.EOF {
			return ast.NewLexError(s.Filename, openLine, "unexpected end of file, expecting %q", string(quote))
		}
		if err != nil {
			return err
		}
		if ch == '\\' {
			nxt, err := s.NextRune()
			if err != nil {
				return ast.NewLexError(s.Filename, openLine, "unexpected end of file, expecting %q", string(quote))
			}
			switch nxt {
			case quote:
				buf = append(buf, quote)
			case '\\':
				buf = append(buf, '\\')
			default:
				buf = append(buf, '\\', nxt)
			}
			continue
		}
		if ch == quote {
			break
		}
		buf = append(buf, ch)
	}

	s.token = append(s.token, buf...)
	s.tokenQuoted = true
	return nil
}

// maybeDispatch checks whether the token just flushed is a directive name
// with a registered SubLexer and, if so, hands scanning over to it.
func (s *Scanner) maybeDispatch() error {
	if !s.atStatementBoundary || len(s.tokens) == 0 {
		return nil
	}
	last := s.tokens[len(s.tokens)-1]
	lx, ok := s.registry.lookup(last.Value)
	s.atStatementBoundary = false
	if !ok {
		return nil
	}
	extra, err := lx.Lex(s, last.Value)
	if err != nil {
		return err
	}
	s.tokens = append(s.tokens, extra...)
	if n := len(s.tokens); n > 0 && s.tokens[n-1].Value == ";" && !s.tokens[n-1].Quote {
		s.atStatementBoundary = true
	}
	return nil
}

func balanceBraces(tokens []ast.Token, filename string) error {
	depth := 0
	line := 1
	for _, t := range tokens {
		line = t.Line
		if t.Quote {
			continue
		}
		switch t.Value {
		case "{":
			depth++
		case "}":
			depth--
		}
		if depth < 0 {
			return ast.NewStructureError(filename, t.Line, "unexpected \"}\"")
		}
	}
	if depth > 0 {
		return ast.NewStructureError(filename, line, "unexpected end of file, expecting \"}\"")
	}
	return nil
}
