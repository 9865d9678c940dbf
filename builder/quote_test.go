package builder

import "testing"

func TestNeedsQuote(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"bareword", false},
		{"127.0.0.1:8080", false},
		{"foo bar", true},
		{"with{brace", true},
		{"with}brace", true},
		{"with;semi", true},
		{"with#hash", true},
		{`with'quote`, true},
		{`with"quote`, true},
	}
	for _, c := range cases {
		if got := needsQuote(c.in); got != c.want {
			t.Errorf("needsQuote(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestEnquoteBare(t *testing.T) {
	if got := enquote("bareword", false); got != "bareword" {
		t.Errorf("got %q, want unquoted bareword", got)
	}
}

func TestEnquotePrefersSingleQuote(t *testing.T) {
	got := enquote("foo bar", false)
	if got != "'foo bar'" {
		t.Errorf("got %q, want 'foo bar'", got)
	}
}

func TestEnquoteSwitchesToDoubleWhenValueHasSingleQuote(t *testing.T) {
	got := enquote("it's here", false)
	if got != `"it's here"` {
		t.Errorf("got %q, want \"it's here\"", got)
	}
}

func TestEnquoteEscapesDelimiterAndBackslash(t *testing.T) {
	got := enquote(`say \ and ' and "`, false)
	want := `"say \\ and ' and \""`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEnquoteTiebreakerKeepsOriginalQuoting(t *testing.T) {
	// "default_server" needs no quoting on bareness grounds, but the
	// tiebreaker preserves the fact it arrived quoted in the source.
	got := enquote("default_server", true)
	if got != "'default_server'" {
		t.Errorf("got %q, want quoting preserved via the tiebreaker", got)
	}
}
