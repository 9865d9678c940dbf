package catalog

import "testing"

func TestLookupKnownAndUnknown(t *testing.T) {
	c := New()

	if _, ok := c.Lookup("worker_connections"); !ok {
		t.Fatal("expected worker_connections to be known")
	}
	if _, ok := c.Lookup("this_directive_does_not_exist"); ok {
		t.Fatal("expected an unregistered directive name to be unknown")
	}
}

func TestContextKey(t *testing.T) {
	c := New()

	cases := []struct {
		path []string
		want Context
	}{
		{nil, CtxMain},
		{[]string{"events"}, CtxEvents},
		{[]string{"http"}, CtxHTTP},
		{[]string{"http", "server"}, CtxHTTPServer},
		{[]string{"http", "location"}, CtxHTTPLocation},
	}
	for _, c2 := range cases {
		got, ok := c.ContextKey(c2.path)
		if !ok {
			t.Errorf("path %v: expected known context", c2.path)
			continue
		}
		if got != c2.want {
			t.Errorf("path %v: got context %#x, want %#x", c2.path, got, c2.want)
		}
	}

	if _, ok := c.ContextKey([]string{"bogus", "nesting"}); ok {
		t.Error("expected an unregistered nesting path to report unknown")
	}
}

func TestEnterBlockFlattensLocation(t *testing.T) {
	ctx := EnterBlock("server", []string{"http"})
	if len(ctx) != 2 || ctx[0] != "http" || ctx[1] != "server" {
		t.Fatalf("unexpected ctx after entering server: %v", ctx)
	}

	loc1 := EnterBlock("location", ctx)
	if len(loc1) != 2 || loc1[1] != "location" {
		t.Fatalf("unexpected ctx after entering location: %v", loc1)
	}

	// nested location inside location must flatten to the same two-element
	// context rather than growing unbounded.
	loc2 := EnterBlock("location", loc1)
	if len(loc2) != 2 || loc2[0] != "http" || loc2[1] != "location" {
		t.Fatalf("expected nested location to flatten, got %v", loc2)
	}
}

func TestRegisterExtension(t *testing.T) {
	c := New()
	c.RegisterExtension("my_module_directive", CtxHTTP|Take1)

	variants, ok := c.Lookup("my_module_directive")
	if !ok || len(variants) != 1 {
		t.Fatalf("expected extension directive to be registered, got %v ok=%v", variants, ok)
	}
	if variants[0]&CtxHTTP == 0 || variants[0]&Take1 == 0 {
		t.Errorf("unexpected variant bits: %#x", variants[0])
	}
}

func TestDefaultIsASingleton(t *testing.T) {
	a := Default()
	b := Default()
	if a != b {
		t.Error("expected Default() to return the same Catalog instance every call")
	}
}
