package parser

import "github.com/ergongate/ngxtree/ast"

// tokenCursor walks a fixed token slice one element at a time. It exists
// so the recursive descent below reads the same way the teacher's
// tokenIter did: a pull-based cursor rather than a channel.
type tokenCursor struct {
	tokens []ast.Token
	idx    int
}

func (c *tokenCursor) next() (ast.Token, bool) {
	if c.idx >= len(c.tokens) {
		return ast.Token{}, false
	}
	t := c.tokens[c.idx]
	c.idx++
	return t, true
}

func isTerminator(t ast.Token) bool {
	return !t.Quote && (t.Value == "{" || t.Value == ";" || t.Value == "}")
}
