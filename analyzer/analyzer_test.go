package analyzer

import (
	"testing"

	"github.com/ergongate/ngxtree/ast"
	"github.com/ergongate/ngxtree/catalog"
)

func defaultOpts() Options {
	return Options{Strict: false, CheckCtx: true, CheckArgs: true}
}

func TestAnalyzeLegalStatement(t *testing.T) {
	cat := catalog.New()
	d := &ast.Directive{Name: "worker_connections", Line: 2, Args: []string{"1024"}}
	if err := Analyze(cat, "nginx.conf", d, ";", []string{"events"}, defaultOpts()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAnalyzeWrongContext(t *testing.T) {
	cat := catalog.New()
	d := &ast.Directive{Name: "worker_connections", Line: 2, Args: []string{"1024"}}
	err := Analyze(cat, "nginx.conf", d, ";", []string{"http"}, defaultOpts())
	if err == nil {
		t.Fatal("expected an error for worker_connections outside events")
	}
	if _, ok := err.(*ast.DirectiveError); !ok {
		t.Errorf("expected *ast.DirectiveError, got %T", err)
	}
}

func TestAnalyzeWrongArity(t *testing.T) {
	cat := catalog.New()
	d := &ast.Directive{Name: "worker_connections", Line: 2, Args: []string{"1024", "2048"}}
	if err := Analyze(cat, "nginx.conf", d, ";", []string{"events"}, defaultOpts()); err == nil {
		t.Fatal("expected an arity error for two arguments to a Take1 directive")
	}
}

func TestAnalyzeBlockTerminatorMismatch(t *testing.T) {
	cat := catalog.New()
	d := &ast.Directive{Name: "server", Line: 2}
	// "server" in http context must open a block; a bare ";" is illegal.
	if err := Analyze(cat, "nginx.conf", d, ";", []string{"http"}, defaultOpts()); err == nil {
		t.Fatal("expected an error when a block directive is terminated with \";\"")
	}
	if err := Analyze(cat, "nginx.conf", d, "{", []string{"http"}, defaultOpts()); err != nil {
		t.Errorf("unexpected error for a correctly-blocked server directive: %v", err)
	}
}

func TestAnalyzeUnknownDirectiveNonStrict(t *testing.T) {
	cat := catalog.New()
	d := &ast.Directive{Name: "totally_made_up_directive", Line: 1, Args: []string{"x"}}
	if err := Analyze(cat, "nginx.conf", d, ";", []string{"http"}, defaultOpts()); err != nil {
		t.Errorf("unknown directives must pass when strict is off, got %v", err)
	}
}

func TestAnalyzeUnknownDirectiveStrict(t *testing.T) {
	cat := catalog.New()
	opts := defaultOpts()
	opts.Strict = true
	d := &ast.Directive{Name: "totally_made_up_directive", Line: 1, Args: []string{"x"}}
	if err := Analyze(cat, "nginx.conf", d, ";", []string{"http"}, opts); err == nil {
		t.Fatal("expected strict mode to reject an unknown directive")
	}
}

func TestAnalyzeFlagDirective(t *testing.T) {
	cat := catalog.New()
	d := &ast.Directive{Name: "server_name_in_redirect", Line: 1, Args: []string{"on"}}
	if err := Analyze(cat, "nginx.conf", d, ";", []string{"http"}, defaultOpts()); err != nil {
		t.Errorf("unexpected error for a valid flag value: %v", err)
	}

	bad := &ast.Directive{Name: "server_name_in_redirect", Line: 1, Args: []string{"maybe"}}
	if err := Analyze(cat, "nginx.conf", bad, ";", []string{"http"}, defaultOpts()); err == nil {
		t.Fatal("expected an error for an invalid flag value")
	}
}

func TestAnalyzeChecksCanBeDisabled(t *testing.T) {
	cat := catalog.New()
	opts := Options{Strict: false, CheckCtx: false, CheckArgs: false}
	d := &ast.Directive{Name: "worker_connections", Line: 1, Args: []string{"1", "2", "3"}}
	if err := Analyze(cat, "nginx.conf", d, ";", []string{"http"}, opts); err != nil {
		t.Errorf("expected no error with check_ctx/check_args disabled, got %v", err)
	}
}
