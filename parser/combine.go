package parser

import "github.com/ergongate/ngxtree/ast"

// combine post-processes a multi-file Payload into one synthesized
// FileConfig whose Parsed is the concatenation of every file's directives
// in include-expansion order, with "include" directives elided and
// replaced in place by the directives they resolved to. Comments keep
// their position relative to the directives around them because the walk
// below simply preserves each file's directive order and only splices at
// the include site.
func combine(p *ast.Payload) *ast.Payload {
	if len(p.Config) == 0 {
		return p
	}
	root := p.Config[0]
	merged := &ast.FileConfig{File: root.File, Status: ast.StatusOK}
	for _, fc := range p.Config {
		merged.Errors = append(merged.Errors, fc.Errors...)
		if fc.Status == ast.StatusFailed {
			merged.Status = ast.StatusFailed
		}
	}
	merged.Parsed = spliceIncludes(p, root.Parsed)

	return &ast.Payload{
		Status: p.Status,
		Errors: p.Errors,
		Config: []*ast.FileConfig{merged},
	}
}

func spliceIncludes(p *ast.Payload, directives []*ast.Directive) []*ast.Directive {
	var out []*ast.Directive
	for _, d := range directives {
		if d.IsBlock() {
			d.Block = spliceIncludes(p, d.Block)
		}
		if len(d.Includes) > 0 {
			for _, idx := range d.Includes {
				if idx < 0 || idx >= len(p.Config) {
					continue
				}
				out = append(out, spliceIncludes(p, p.Config[idx].Parsed)...)
			}
			continue
		}
		out = append(out, d)
	}
	return out
}
