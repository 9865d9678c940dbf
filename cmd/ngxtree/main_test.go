package main

import (
	"errors"
	"testing"
)

func TestExitCodeFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{newUsageError("missing PATH"), 3},
		{newIOError(errors.New("boom")), 2},
		{errors.New("some parse failure"), 1},
	}
	for _, c := range cases {
		if got := exitCodeFor(c.err); got != c.want {
			t.Errorf("exitCodeFor(%v) = %d, want %d", c.err, got, c.want)
		}
	}
}

func TestNewUsageErrorFormats(t *testing.T) {
	err := newUsageError("lint: missing %s", "PATH")
	if err.Error() != "lint: missing PATH" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}
