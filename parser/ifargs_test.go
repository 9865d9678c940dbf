package parser

import (
	"reflect"
	"testing"
)

func TestPrepareIfArgsMergesButKeepsParens(t *testing.T) {
	got := prepareIfArgs([]string{"($request_method", "=", "POST)"})
	want := []string{"($request_method = POST)"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestPrepareIfArgsSingleWord(t *testing.T) {
	got := prepareIfArgs([]string{"(-f", "$request_filename)"})
	want := []string{"(-f $request_filename)"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestPrepareIfArgsLeavesMalformedInputAlone(t *testing.T) {
	// No enclosing parens at all: not this special form, pass through.
	in := []string{"$request_method", "=", "POST"}
	got := prepareIfArgs(in)
	if !reflect.DeepEqual(got, in) {
		t.Errorf("got %#v, want unchanged %#v", got, in)
	}
}

func TestPrepareIfArgsEmpty(t *testing.T) {
	got := prepareIfArgs(nil)
	if len(got) != 0 {
		t.Errorf("expected empty input to pass through unchanged, got %#v", got)
	}
}

func TestPrepareSetArgsMergesTrailingWords(t *testing.T) {
	got := prepareSetArgs([]string{"$greeting", "hello", "there", "world"})
	want := []string{"$greeting", "hello there world"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestPrepareSetArgsLeavesShortFormAlone(t *testing.T) {
	in := []string{"$x", "1"}
	got := prepareSetArgs(in)
	if !reflect.DeepEqual(got, in) {
		t.Errorf("got %#v, want unchanged %#v", got, in)
	}
}
