package ast

import "testing"

func TestErrorFormatting(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{NewLexError("nginx.conf", 3, "unexpected end of file, expecting %q", "\""), `nginx.conf:3 unexpected end of file, expecting "\""`},
		{NewDirectiveError("nginx.conf", 10, "unknown directive %q", "frob"), `nginx.conf:10 unknown directive "frob"`},
		{NewStructureError("nginx.conf", 1, "unexpected \"}\""), `nginx.conf:1 unexpected "}"`},
		{NewIncludeError("nginx.conf", 5, "invalid number of arguments in %q directive", "include"), `nginx.conf:5 invalid number of arguments in "include" directive`},
		{NewRecursionError("nginx.conf", 7, "too many nested block levels, max is %d", 256), "nginx.conf:7 too many nested block levels, max is 256"},
	}
	for _, c := range cases {
		if got := c.err.Error(); got != c.want {
			t.Errorf("Error() = %q, want %q", got, c.want)
		}
	}
}

func TestAsParseError(t *testing.T) {
	e := NewDirectiveError("a.conf", 4, "%q directive is not allowed here", "foo")
	pe := e.AsParseError()
	if pe.File != "a.conf" || pe.Line != 4 {
		t.Fatalf("unexpected ParseError: %+v", pe)
	}
	if pe.Err != `"foo" directive is not allowed here` {
		t.Errorf("unexpected Err: %q", pe.Err)
	}
}

func TestLocatedInterfaceSatisfied(t *testing.T) {
	var errs = []Located{
		NewLexError("f", 1, "x"),
		NewStructureError("f", 1, "x"),
		NewDirectiveError("f", 1, "x"),
		NewIncludeError("f", 1, "x"),
		NewRecursionError("f", 1, "x"),
	}
	for _, e := range errs {
		if e.AsParseError() == nil {
			t.Fatal("AsParseError returned nil")
		}
	}
}

func TestPayloadAddError(t *testing.T) {
	p := NewPayload()
	fc := &FileConfig{File: "a.conf", Status: StatusOK}
	p.Config = append(p.Config, fc)

	if p.Status != StatusOK {
		t.Fatalf("expected fresh payload to be %q", StatusOK)
	}

	p.AddError(fc, NewStructureError("a.conf", 2, "unexpected \"}\"").AsParseError())

	if p.Status != StatusFailed {
		t.Errorf("payload status = %q, want %q", p.Status, StatusFailed)
	}
	if fc.Status != StatusFailed {
		t.Errorf("file status = %q, want %q", fc.Status, StatusFailed)
	}
	if len(p.Errors) != 1 || len(fc.Errors) != 1 {
		t.Fatalf("expected exactly one error recorded on both, got %d/%d", len(p.Errors), len(fc.Errors))
	}
}

func TestDirectiveHelpers(t *testing.T) {
	comment := &Directive{Name: "#", Comment: "hi"}
	if !comment.IsComment() {
		t.Error("expected IsComment true for # directive")
	}
	if comment.IsBlock() {
		t.Error("a comment is never a block")
	}

	block := &Directive{Name: "server", Block: []*Directive{}}
	if !block.IsBlock() {
		t.Error("expected IsBlock true for a directive with a non-nil Block")
	}

	stmt := &Directive{Name: "worker_connections", Args: []string{"1024"}}
	if stmt.IsBlock() || stmt.IsComment() {
		t.Error("a plain statement is neither a block nor a comment")
	}
}
