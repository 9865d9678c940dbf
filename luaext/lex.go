// Package luaext registers ngx_http_lua_module's *_by_lua_block family as
// a lexer.SubLexer/builder.CustomBuilder pair, grounded in the ecosystem's
// nginx-agent fork of crossplane: the block body is captured as a single
// opaque string token rather than a nested block, with minimal awareness
// of Lua's own string and long-bracket syntax so a stray brace inside Lua
// source doesn't desynchronize the outer scan.
package luaext

import (
	"github.com/ergongate/ngxtree/ast"
	"github.com/ergongate/ngxtree/builder"
	"github.com/ergongate/ngxtree/lexer"
)

// DirectiveNames lists every directive this package claims.
func DirectiveNames() []string {
	return []string{
		"init_by_lua_block",
		"init_worker_by_lua_block",
		"exit_worker_by_lua_block",
		"set_by_lua_block",
		"content_by_lua_block",
		"server_rewrite_by_lua_block",
		"rewrite_by_lua_block",
		"access_by_lua_block",
		"header_filter_by_lua_block",
		"body_filter_by_lua_block",
		"log_by_lua_block",
		"balancer_by_lua_block",
		"ssl_client_hello_by_lua_block",
		"ssl_certificate_by_lua_block",
		"ssl_session_fetch_by_lua_block",
		"ssl_session_store_by_lua_block",
	}
}

// Register installs the Lua sub-lexer and custom builder for
// DirectiveNames() into lr/br. Either may be nil to skip that side (e.g. a
// tool that only lexes never needs the builder half).
func Register(lr *lexer.Registry, br *builder.Registry) {
	if lr != nil {
		lr.Register(lexer.SubLexerFunc(Lex), DirectiveNames()...)
	}
	if br != nil {
		br.Register(customBuild{}, DirectiveNames()...)
	}
}

// Lex implements lexer.SubLexerFunc for the *_by_lua_block family.
func Lex(s *lexer.Scanner, matchedName string) ([]ast.Token, error) {
	rb := &runeBuf{s: s}

	if matchedName == "set_by_lua_block" {
		name, line, err := readWord(rb, s)
		if err != nil {
			return nil, err
		}
		body, bodyLine, err := readLuaBlock(rb, s)
		if err != nil {
			return nil, err
		}
		return []ast.Token{
			{Value: name, Line: line},
			{Value: body, Line: bodyLine, Quote: true},
			{Value: ";", Line: bodyLine},
		}, nil
	}

	body, line, err := readLuaBlock(rb, s)
	if err != nil {
		return nil, err
	}
	return []ast.Token{
		{Value: body, Line: line, Quote: true},
		{Value: ";", Line: line},
	}, nil
}

func skipSpace(rb *runeBuf) (rune, error) {
	for {
		ch, err := rb.next()
		if err != nil {
			return 0, err
		}
		if ch != ' ' && ch != '\t' && ch != '\r' && ch != '\n' {
			return ch, nil
		}
	}
}

func readWord(rb *runeBuf, s *lexer.Scanner) (string, int, error) {
	ch, err := skipSpace(rb)
	if err != nil {
		return "", 0, ast.NewLexError(s.Filename, s.Line(), "unexpected end of file reading set_by_lua_block variable")
	}
	line := s.Line()
	var buf []rune
	for ch != ' ' && ch != '\t' && ch != '\r' && ch != '\n' {
		buf = append(buf, ch)
		ch, err = rb.next()
		if err != nil {
			break
		}
	}
	return string(buf), line, nil
}

// readLuaBlock scans the body of a *_by_lua_block directive, starting
// before its opening "{". It balances braces outside of Lua strings and
// "--[[ ... ]]"/"[[ ... ]]" long brackets, matching the minimal-Lua-
// awareness the design calls for, and returns the body text with the
// enclosing braces stripped.
func readLuaBlock(rb *runeBuf, s *lexer.Scanner) (string, int, error) {
	ch, err := skipSpace(rb)
	if err != nil || ch != '{' {
		return "", 0, ast.NewLexError(s.Filename, s.Line(), `expected "{" to start lua block`)
	}
	openLine := s.Line()

	const (
		modeNormal = iota
		modeString
		modeLong
	)
	mode := modeNormal
	var quote rune
	depth := 1
	var buf []rune

	for {
		ch, err := rb.next()
		if err != nil {
			return "", 0, ast.NewLexError(s.Filename, openLine, "unexpected end of file, expecting \"}\" to close lua block")
		}

		switch mode {
		case modeString:
			if ch == '\\' {
				nxt, err := rb.next()
				if err != nil {
					return "", 0, ast.NewLexError(s.Filename, openLine, "unexpected end of file inside lua block")
				}
				buf = append(buf, ch, nxt)
				continue
			}
			buf = append(buf, ch)
			if ch == quote {
				mode = modeNormal
			}
			continue

		case modeLong:
			buf = append(buf, ch)
			if ch == ']' {
				if peek, perr := rb.peekN(1); perr == nil && len(peek) == 1 && peek[0] == ']' {
					second, _ := rb.next()
					buf = append(buf, second)
					mode = modeNormal
				}
			}
			continue
		}

		// modeNormal
		switch ch {
		case '\'', '"':
			mode = modeString
			quote = ch
			buf = append(buf, ch)
		case '-':
			if peek, perr := rb.peekN(3); perr == nil && len(peek) == 3 && peek[0] == '-' && peek[1] == '[' && peek[2] == '[' {
				rest, _ := rb.next()
				b1, _ := rb.next()
				b2, _ := rb.next()
				buf = append(buf, ch, rest, b1, b2)
				mode = modeLong
			} else {
				buf = append(buf, ch)
			}
		case '[':
			if peek, perr := rb.peekN(1); perr == nil && len(peek) == 1 && peek[0] == '[' {
				second, _ := rb.next()
				buf = append(buf, ch, second)
				mode = modeLong
			} else {
				buf = append(buf, ch)
			}
		case '{':
			depth++
			buf = append(buf, ch)
		case '}':
			depth--
			if depth == 0 {
				return string(buf), openLine, nil
			}
			buf = append(buf, ch)
		default:
			buf = append(buf, ch)
		}
	}
}
