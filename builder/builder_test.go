package builder

import (
	"testing"

	"github.com/ergongate/ngxtree/ast"
)

func sampleTree() *ast.FileConfig {
	return &ast.FileConfig{
		File: "nginx.conf",
		Parsed: []*ast.Directive{
			{Name: "events", Line: 1, Block: []*ast.Directive{
				{Name: "worker_connections", Line: 2, Args: []string{"1024"}},
			}},
			{Name: "http", Line: 4, Block: []*ast.Directive{
				{Name: "server", Line: 5, Block: []*ast.Directive{
					{Name: "listen", Line: 6, Args: []string{"127.0.0.1:8080"}},
					{Name: "server_name", Line: 7, Args: []string{"default_server"}},
					{Name: "location", Line: 8, Args: []string{"/"}, Block: []*ast.Directive{
						{Name: "return", Line: 9, Args: []string{"200", "foo bar baz"}},
					}},
				}},
			}},
		},
	}
}

func TestBuildPrettyPrinted(t *testing.T) {
	out := Build(sampleTree(), &Options{Indent: 4})
	want := `events {
    worker_connections 1024;
}
http {
    server {
        listen 127.0.0.1:8080;
        server_name default_server;
        location / {
            return 200 'foo bar baz';
        }
    }
}`
	if out != want {
		t.Errorf("Build() =\n%s\nwant\n%s", out, want)
	}
}

func TestBuildCompact(t *testing.T) {
	out := Build(sampleTree(), &Options{Compact: true})
	want := `events { worker_connections 1024; } http { server { listen 127.0.0.1:8080; server_name default_server; location / { return 200 'foo bar baz'; } } }`
	if out != want {
		t.Errorf("Build(compact) =\n%s\nwant\n%s", out, want)
	}
}

func TestBuildWithTabs(t *testing.T) {
	fc := &ast.FileConfig{Parsed: []*ast.Directive{
		{Name: "events", Line: 1, Block: []*ast.Directive{
			{Name: "worker_connections", Line: 2, Args: []string{"1024"}},
		}},
	}}
	out := Build(fc, &Options{Tabs: true})
	want := "events {\n\tworker_connections 1024;\n}"
	if out != want {
		t.Errorf("Build(tabs) =\n%q\nwant\n%q", out, want)
	}
}

func TestBuildEmptyBlock(t *testing.T) {
	fc := &ast.FileConfig{Parsed: []*ast.Directive{
		{Name: "location", Line: 1, Args: []string{"/"}, Block: []*ast.Directive{}},
	}}
	out := Build(fc, &Options{Indent: 2})
	want := "location / {}"
	if out != want {
		t.Errorf("Build(empty block) = %q, want %q", out, want)
	}
}

func TestBuildHeader(t *testing.T) {
	fc := &ast.FileConfig{Parsed: []*ast.Directive{
		{Name: "worker_processes", Line: 1, Args: []string{"auto"}},
	}}
	out := Build(fc, &Options{Header: "# generated\n"})
	want := "# generated\nworker_processes auto;"
	if out != want {
		t.Errorf("Build(header) = %q, want %q", out, want)
	}
}

func TestBuildIfStatement(t *testing.T) {
	fc := &ast.FileConfig{Parsed: []*ast.Directive{
		{Name: "if", Line: 1, Args: []string{"($request_method = POST)"}, Block: []*ast.Directive{
			{Name: "return", Line: 2, Args: []string{"405"}},
		}},
	}}
	out := Build(fc, &Options{Indent: 4})
	want := "if ($request_method = POST) {\n    return 405;\n}"
	if out != want {
		t.Errorf("Build(if) =\n%s\nwant\n%s", out, want)
	}
}

func TestBuildTrailingLineComment(t *testing.T) {
	fc := &ast.FileConfig{Parsed: []*ast.Directive{
		{Name: "user", Line: 1, Args: []string{"nobody"}},
		{Name: "#", Line: 1, Comment: " trailing"},
		{Name: "worker_processes", Line: 2, Args: []string{"auto"}},
	}}
	out := Build(fc, &Options{Indent: 4})
	want := "user nobody; # trailing\nworker_processes auto;"
	if out != want {
		t.Errorf("Build(trailing comment) =\n%q\nwant\n%q", out, want)
	}
}

func TestBuildArgQuotePreservesTiebreaker(t *testing.T) {
	fc := &ast.FileConfig{Parsed: []*ast.Directive{
		{Name: "server_name", Line: 1, Args: []string{"default_server"}, ArgsQuoted: []bool{true}},
	}}
	out := Build(fc, nil)
	want := "server_name 'default_server';"
	if out != want {
		t.Errorf("Build() = %q, want %q", out, want)
	}
}

func TestRegistryCustomBuilder(t *testing.T) {
	reg := NewRegistry()
	reg.Register(CustomBuilderFunc(func(d *ast.Directive, depth int, opts *Options) string {
		return d.Name + " <<custom>>"
	}), "weird_directive")

	fc := &ast.FileConfig{Parsed: []*ast.Directive{
		{Name: "weird_directive", Line: 1},
	}}
	out := Build(fc, &Options{Registry: reg})
	want := "weird_directive <<custom>>"
	if out != want {
		t.Errorf("Build() with custom builder = %q, want %q", out, want)
	}
}
