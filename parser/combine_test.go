package parser

import (
	"testing"

	"github.com/ergongate/ngxtree/ast"
)

func TestCombineSplicesNestedIncludes(t *testing.T) {
	// root: http { include -> conf.d/a.conf }
	// a.conf: server { include -> conf.d/b.conf }
	// b.conf: listen 8080;
	root := &ast.FileConfig{File: "/nginx.conf", Status: ast.StatusOK, Parsed: []*ast.Directive{
		{Name: "http", Line: 1, Block: []*ast.Directive{
			{Name: "include", Line: 2, Args: []string{"conf.d/a.conf"}, Includes: []int{1}},
		}},
	}}
	a := &ast.FileConfig{File: "/conf.d/a.conf", Status: ast.StatusOK, Parsed: []*ast.Directive{
		{Name: "server", Line: 1, Block: []*ast.Directive{
			{Name: "include", Line: 2, Args: []string{"conf.d/b.conf"}, Includes: []int{2}},
		}},
	}}
	b := &ast.FileConfig{File: "/conf.d/b.conf", Status: ast.StatusOK, Parsed: []*ast.Directive{
		{Name: "listen", Line: 1, Args: []string{"8080"}},
	}}

	p := &ast.Payload{Status: ast.StatusOK, Config: []*ast.FileConfig{root, a, b}}
	out := combine(p)

	if len(out.Config) != 1 {
		t.Fatalf("expected combine to produce one FileConfig, got %d", len(out.Config))
	}
	merged := out.Config[0]
	if merged.File != root.File {
		t.Errorf("expected merged file to keep the root's name, got %q", merged.File)
	}

	http := findDirective(merged.Parsed, "http")
	if http == nil {
		t.Fatal("missing http directive after combine")
	}
	if findDirective(http.Block, "include") != nil {
		t.Error("expected the http-level include to be elided")
	}
	server := findDirective(http.Block, "server")
	if server == nil {
		t.Fatal("expected the spliced-in server directive")
	}
	if findDirective(server.Block, "include") != nil {
		t.Error("expected the nested server-level include to be elided too")
	}
	if findDirective(server.Block, "listen") == nil {
		t.Error("expected the doubly-included listen directive to be spliced in")
	}
}

func TestCombineSingleFileIsANoOp(t *testing.T) {
	root := &ast.FileConfig{File: "/nginx.conf", Status: ast.StatusOK, Parsed: []*ast.Directive{
		{Name: "worker_processes", Line: 1, Args: []string{"auto"}},
	}}
	p := &ast.Payload{Status: ast.StatusOK, Config: []*ast.FileConfig{root}}
	out := combine(p)
	if len(out.Config) != 1 || len(out.Config[0].Parsed) != 1 {
		t.Fatalf("expected a single-file payload to pass through unchanged, got %+v", out)
	}
}

func TestCombineEmptyPayload(t *testing.T) {
	p := &ast.Payload{Status: ast.StatusOK}
	out := combine(p)
	if len(out.Config) != 0 {
		t.Errorf("expected empty payload to remain empty, got %+v", out)
	}
}
