package parser

import "strings"

// prepareIfArgs implements the "if" special form (spec §4.3): nginx's `if`
// takes one logical argument, a parenthesized expression, but the generic
// lexer has already split it on whitespace into several words because "("
// and ")" are not token terminators. Here we re-join those words into the
// single argument the analyzer expects, parentheses included — the wire
// Payload carries args == ["($request_method = POST)"], parens preserved,
// so builder can render it back verbatim with no special-casing of its own.
// The teacher's version trimmed the parens off the first/last words but
// never merged the words into one argument, leaving the arity check seeing
// several args instead of one; this joins them first.
func prepareIfArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}
	if !strings.HasPrefix(args[0], "(") || !strings.HasSuffix(args[len(args)-1], ")") {
		return args
	}
	return []string{strings.Join(args, " ")}
}
