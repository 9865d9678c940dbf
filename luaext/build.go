package luaext

import (
	"github.com/ergongate/ngxtree/ast"
	"github.com/ergongate/ngxtree/builder"
)

// customBuild implements builder.CustomBuilder for the *_by_lua_block
// family: the opaque Lua string is written back inside braces exactly as
// it was captured, not re-quoted as an ordinary argument.
type customBuild struct{}

func (customBuild) Build(d *ast.Directive, depth int, opts *builder.Options) string {
	if d.Name == "set_by_lua_block" {
		if len(d.Args) < 2 {
			return d.Name
		}
		return d.Name + " " + d.Args[0] + " {" + d.Args[1] + "}"
	}
	if len(d.Args) < 1 {
		return d.Name
	}
	return d.Name + " {" + d.Args[0] + "}"
}
