package lexer

import (
	"reflect"
	"strings"
	"testing"

	"github.com/ergongate/ngxtree/ast"
)

func tokenizeString(t *testing.T, src string) []ast.Token {
	t.Helper()
	tokens, err := Tokenize("nginx.conf", strings.NewReader(src), nil)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	return tokens
}

func TestTokenizeSimple(t *testing.T) {
	src := "events {\n    worker_connections 1024;\n}\n"
	tokens := tokenizeString(t, src)

	var values []string
	for _, tk := range tokens {
		values = append(values, tk.Value)
	}
	want := []string{"events", "{", "worker_connections", "1024", ";", "}"}
	if !reflect.DeepEqual(values, want) {
		t.Errorf("values = %#v, want %#v", values, want)
	}
}

func TestTokenizeComments(t *testing.T) {
	src := "# top comment\nuser nobody; # trailing\n"
	tokens := tokenizeString(t, src)

	want := []ast.Token{
		{Value: "# top comment", Line: 1},
		{Value: "user", Line: 2},
		{Value: "nobody", Line: 2, HadLeadingSpace: true},
		{Value: ";", Line: 2},
		{Value: "# trailing", Line: 2, HadLeadingSpace: true},
	}
	for i := range want {
		if i >= len(tokens) {
			t.Fatalf("got only %d tokens, want at least %d", len(tokens), len(want))
		}
		if tokens[i].Value != want[i].Value || tokens[i].Line != want[i].Line {
			t.Errorf("token %d = %+v, want %+v", i, tokens[i], want[i])
		}
	}
}

func TestTokenizeQuotedValue(t *testing.T) {
	src := `return 200 "foo bar baz";`
	tokens := tokenizeString(t, src)

	if len(tokens) != 4 {
		t.Fatalf("expected 4 tokens, got %d: %#v", len(tokens), tokens)
	}
	if tokens[2].Value != "foo bar baz" || !tokens[2].Quote {
		t.Errorf("unexpected quoted token: %+v", tokens[2])
	}
}

func TestTokenizeQuoteConcatenation(t *testing.T) {
	src := `log_format main escape=json '{ "a": 1 }' '{ "b": 2 }';`
	tokens := tokenizeString(t, src)

	var values []string
	for _, tk := range tokens {
		values = append(values, tk.Value)
	}
	want := []string{"log_format", "main", "escape=json", `{ "a": 1 }`, `{ "b": 2 }`, ";"}
	if !reflect.DeepEqual(values, want) {
		t.Errorf("values = %#v, want %#v", values, want)
	}
}

func TestTokenizeQuoteAdjacentToBareword(t *testing.T) {
	// The concatenation rule is symmetric: a quoted fragment immediately
	// followed by more word characters with no separating whitespace merges
	// into one token too, not just the bareword-then-quote direction.
	src := `return 200 "abc"def;`
	tokens := tokenizeString(t, src)

	var values []string
	for _, tk := range tokens {
		values = append(values, tk.Value)
	}
	want := []string{"return", "200", "abcdef", ";"}
	if !reflect.DeepEqual(values, want) {
		t.Fatalf("values = %#v, want %#v", values, want)
	}
	if !tokens[2].Quote {
		t.Errorf("expected the merged token to be marked Quote: true, got %+v", tokens[2])
	}
}

func TestTokenizeUnterminatedQuoteIsAnError(t *testing.T) {
	_, err := Tokenize("nginx.conf", strings.NewReader(`return 200 "unterminated;`), nil)
	if err == nil {
		t.Fatal("expected an error for an unterminated quoted token")
	}
}

func TestTokenizeUnbalancedBracesIsAnError(t *testing.T) {
	if _, err := Tokenize("nginx.conf", strings.NewReader("http { server {"), nil); err == nil {
		t.Fatal("expected an error for a missing closing brace")
	}
	if _, err := Tokenize("nginx.conf", strings.NewReader("http { } }"), nil); err == nil {
		t.Fatal("expected an error for a stray closing brace")
	}
}

func TestTokenizeEscapedQuoteChar(t *testing.T) {
	tokens := tokenizeString(t, `return 200 "say \"hi\"";`)
	if len(tokens) != 4 {
		t.Fatalf("expected 4 tokens, got %d: %#v", len(tokens), tokens)
	}
	if tokens[2].Value != `say "hi"` {
		t.Errorf("got %q, want %q", tokens[2].Value, `say "hi"`)
	}
}

// stubSubLexer records that it was invoked and injects two fixed tokens,
// exercising the Registry dispatch path without depending on the luaext
// package (which itself depends on lexer).
type stubSubLexer struct{ called bool }

func (s *stubSubLexer) Lex(sc *Scanner, matchedName string) ([]ast.Token, error) {
	s.called = true
	// Consume the rest of the line as the sub-lexer's own concern.
	for {
		r, err := sc.NextRune()
		if err != nil || r == '\n' {
			break
		}
	}
	return []ast.Token{{Value: "STUBBED", Line: sc.Line()}}, nil
}

func TestRegistryDispatch(t *testing.T) {
	stub := &stubSubLexer{}
	reg := NewRegistry()
	reg.Register(stub, "custom_block")

	tokens, err := Tokenize("nginx.conf", strings.NewReader("custom_block anything here\nuser nobody;"), reg)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if !stub.called {
		t.Fatal("expected the registered SubLexer to be invoked")
	}
	var values []string
	for _, tk := range tokens {
		values = append(values, tk.Value)
	}
	want := []string{"custom_block", "STUBBED", "user", "nobody", ";"}
	if !reflect.DeepEqual(values, want) {
		t.Errorf("values = %#v, want %#v", values, want)
	}
}
