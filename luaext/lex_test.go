package luaext

import (
	"strings"
	"testing"

	"github.com/ergongate/ngxtree/ast"
	"github.com/ergongate/ngxtree/builder"
	"github.com/ergongate/ngxtree/lexer"
)

func TestLexContentByLuaBlock(t *testing.T) {
	reg := lexer.NewRegistry()
	Register(reg, nil)

	src := "content_by_lua_block {\n  ngx.say('hi')\n}\nuser nobody;"
	tokens, err := lexer.Tokenize("nginx.conf", strings.NewReader(src), reg)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}

	var values []string
	for _, tk := range tokens {
		values = append(values, tk.Value)
	}
	want := []string{"content_by_lua_block", "\n  ngx.say('hi')\n", ";", "user", "nobody", ";"}
	if len(values) != len(want) {
		t.Fatalf("values = %#v, want %#v", values, want)
	}
	for i := range want {
		if values[i] != want[i] {
			t.Errorf("token %d = %q, want %q", i, values[i], want[i])
		}
	}
	if !tokens[1].Quote {
		t.Error("expected the captured Lua body to be marked quoted")
	}
}

func TestLexSetByLuaBlock(t *testing.T) {
	reg := lexer.NewRegistry()
	Register(reg, nil)

	src := "set_by_lua_block $greeting {\n  return 'hi'\n}"
	tokens, err := lexer.Tokenize("nginx.conf", strings.NewReader(src), reg)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	var values []string
	for _, tk := range tokens {
		values = append(values, tk.Value)
	}
	want := []string{"set_by_lua_block", "$greeting", "\n  return 'hi'\n", ";"}
	if len(values) != len(want) {
		t.Fatalf("values = %#v, want %#v", values, want)
	}
	for i := range want {
		if values[i] != want[i] {
			t.Errorf("token %d = %q, want %q", i, values[i], want[i])
		}
	}
}

func TestLexLuaBlockIgnoresBracesInStringsAndComments(t *testing.T) {
	reg := lexer.NewRegistry()
	Register(reg, nil)

	src := "content_by_lua_block {\n  local s = \"}\" --[[ } ]]\n  ngx.say(s)\n}"
	tokens, err := lexer.Tokenize("nginx.conf", strings.NewReader(src), reg)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens (name, body, ;), got %d: %#v", len(tokens), tokens)
	}
	if !strings.Contains(tokens[1].Value, `ngx.say(s)`) {
		t.Errorf("body lost trailing content: %q", tokens[1].Value)
	}
}

func TestBuildRoundTripsLuaBlock(t *testing.T) {
	br := builder.NewRegistry()
	Register(nil, br)

	fc := &ast.FileConfig{Parsed: []*ast.Directive{
		{Name: "content_by_lua_block", Line: 1, Args: []string{" ngx.say('hi') "}},
	}}
	out := builder.Build(fc, &builder.Options{Registry: br})
	want := "content_by_lua_block { ngx.say('hi') }"
	if out != want {
		t.Errorf("Build() = %q, want %q", out, want)
	}
}

func TestBuildRoundTripsSetByLuaBlock(t *testing.T) {
	br := builder.NewRegistry()
	Register(nil, br)

	fc := &ast.FileConfig{Parsed: []*ast.Directive{
		{Name: "set_by_lua_block", Line: 1, Args: []string{"$greeting", " return 'hi' "}},
	}}
	out := builder.Build(fc, &builder.Options{Registry: br})
	want := "set_by_lua_block $greeting { return 'hi' }"
	if out != want {
		t.Errorf("Build() = %q, want %q", out, want)
	}
}

func TestDirectiveNamesCoversSetByLuaBlock(t *testing.T) {
	found := false
	for _, n := range DirectiveNames() {
		if n == "set_by_lua_block" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected DirectiveNames to include set_by_lua_block")
	}
}
