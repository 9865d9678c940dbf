package catalog

import (
	"strings"
	"sync"
)

// Catalog is a mapping from directive name to its legal Variants, plus the
// table of named Contexts. Lookups are safe for concurrent use;
// RegisterExtension can add or override entries after construction, under
// a lock. The zero value is not usable; use Default() or New().
type Catalog struct {
	mu         sync.RWMutex
	directives map[string][]Variant
	contexts   map[string]Context
}

// New returns a Catalog pre-populated with the standard nginx core, HTTP,
// Mail and Stream directive tables.
func New() *Catalog {
	c := &Catalog{
		directives: make(map[string][]Variant, len(directiveTable)+len(luaDirectiveTable)),
		contexts:   contextKeys,
	}
	for name, variants := range directiveTable {
		c.directives[name] = variants
	}
	for name, variants := range luaDirectiveTable {
		c.directives[name] = variants
	}
	return c
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
)

// Default returns the process-wide singleton Catalog, built once on first
// use. It is safe to share across concurrent parsing sessions; it changes
// only through RegisterExtension.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCat = New()
	})
	return defaultCat
}

// RegisterExtension adds or overrides the variants for name. It exists so
// callers can extend the catalog with module directives this package
// doesn't know about (the design's "registered extension" hook), e.g.
// a third-party module's directive table.
func (c *Catalog) RegisterExtension(name string, variants ...Variant) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.directives[name] = append([]Variant{}, variants...)
}

// Lookup returns the variants registered for name and whether name is known
// to the catalog at all.
func (c *Catalog) Lookup(name string) ([]Variant, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.directives[name]
	return v, ok
}

// ContextKey turns a block-nesting path such as []string{"http","server"}
// into the Context bit identifying it, and whether that path is one of the
// recognized contexts at all.
func (c *Catalog) ContextKey(path []string) (Context, bool) {
	key := strings.Join(path, ">")
	ctx, ok := c.contexts[key]
	return ctx, ok
}

// EnterBlock computes the context stack for the body of a block-opening
// directive named name, given the stack it was opened in. It special-cases
// "location" nested in "http" the way nginx does: a location block's
// context is always exactly "http>location" regardless of how deeply
// nested the enclosing location chain is, matching nginx's own flattening
// of location contexts.
func EnterBlock(name string, ctx []string) []string {
	if len(ctx) > 0 && ctx[0] == "http" && name == "location" {
		return []string{"http", "location"}
	}
	out := make([]string, len(ctx)+1)
	copy(out, ctx)
	out[len(ctx)] = name
	return out
}
