package luaext

import "github.com/ergongate/ngxtree/lexer"

// runeBuf adds arbitrary pushback on top of a lexer.Scanner's single-rune
// NextRune, so the Lua micro-lexer below can look ahead a few characters
// to recognize "--[[", "[[" and "]]" without consuming them speculatively.
type runeBuf struct {
	s       *lexer.Scanner
	pending []rune
}

func (b *runeBuf) next() (rune, error) {
	if len(b.pending) > 0 {
		r := b.pending[0]
		b.pending = b.pending[1:]
		return r, nil
	}
	return b.s.NextRune()
}

func (b *runeBuf) unread(rs []rune) {
	b.pending = append(append([]rune{}, rs...), b.pending...)
}

// peekN reads up to n runes and pushes them back, reporting fewer than n if
// the source ends first (err is io.EOF in that case, and the runes read so
// far are still restored).
func (b *runeBuf) peekN(n int) ([]rune, error) {
	out := make([]rune, 0, n)
	for i := 0; i < n; i++ {
		r, err := b.next()
		if err != nil {
			b.unread(out)
			return out, err
		}
		out = append(out, r)
	}
	b.unread(out)
	return out, nil
}
