package parser

import (
	"testing"

	"github.com/ergongate/ngxtree/ast"
)

func TestTokenCursorNext(t *testing.T) {
	cur := &tokenCursor{tokens: []ast.Token{{Value: "a"}, {Value: "b"}}}

	tok, ok := cur.next()
	if !ok || tok.Value != "a" {
		t.Fatalf("first next() = %+v, %v", tok, ok)
	}
	tok, ok = cur.next()
	if !ok || tok.Value != "b" {
		t.Fatalf("second next() = %+v, %v", tok, ok)
	}
	if _, ok := cur.next(); ok {
		t.Fatal("expected exhausted cursor to report ok=false")
	}
}

func TestIsTerminator(t *testing.T) {
	cases := []struct {
		tok  ast.Token
		want bool
	}{
		{ast.Token{Value: "{"}, true},
		{ast.Token{Value: ";"}, true},
		{ast.Token{Value: "}"}, true},
		{ast.Token{Value: "foo"}, false},
		// A quoted "}" (a literal string argument, not the punctuation) is
		// never a terminator.
		{ast.Token{Value: "}", Quote: true}, false},
	}
	for _, c := range cases {
		if got := isTerminator(c.tok); got != c.want {
			t.Errorf("isTerminator(%+v) = %v, want %v", c.tok, got, c.want)
		}
	}
}
