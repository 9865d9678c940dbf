package catalog

// luaDirectiveTable is the registered extension for ngx_http_lua_module.
// It is kept separate from directiveTable (the standard distribution) so
// the two provenances stay distinguishable, per the design's requirement
// that the Lua catalog be "a registered extension", not baked into the
// core table.
//
// The *_by_lua_block family is captured by the lexer's Lua SubLexer as a
// single opaque string argument rather than a nested block (see luaext),
// so each is cataloged as taking one argument (two for set_by_lua_block,
// which also names the variable being assigned) terminated the ordinary
// way, never as Block.
var luaDirectiveTable = map[string][]Variant{
	"lua_package_path":  {CtxMain | CtxHTTP | Take1},
	"lua_package_cpath": {CtxMain | CtxHTTP | Take1},
	"lua_code_cache":    {CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"lua_shared_dict":   {CtxMain | CtxHTTP | Take2},
	"lua_need_request_body": {
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | CtxHTTPLocationIf | Flag,
	},

	"init_by_lua_block":              {CtxMain | CtxHTTP | Take1},
	"init_worker_by_lua_block":       {CtxMain | CtxHTTP | Take1},
	"exit_worker_by_lua_block":       {CtxMain | CtxHTTP | Take1},
	"set_by_lua_block":               {CtxHTTP | CtxHTTPServer | CtxHTTPLocation | CtxHTTPLocationIf | Take2},
	"content_by_lua_block":           {CtxHTTP | CtxHTTPServer | CtxHTTPLocation | CtxHTTPLocationIf | Take1},
	"server_rewrite_by_lua_block":    {CtxHTTP | CtxHTTPServer | Take1},
	"rewrite_by_lua_block":           {CtxHTTP | CtxHTTPServer | CtxHTTPLocation | CtxHTTPLocationIf | Take1},
	"access_by_lua_block":            {CtxHTTP | CtxHTTPServer | CtxHTTPLocation | CtxHTTPLocationIf | Take1},
	"header_filter_by_lua_block":     {CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"body_filter_by_lua_block":       {CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"log_by_lua_block":               {CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"balancer_by_lua_block":          {CtxHTTPUpstream | Take1},
	"ssl_client_hello_by_lua_block":  {CtxHTTPServer | Take1},
	"ssl_certificate_by_lua_block":   {CtxHTTPServer | Take1},
	"ssl_session_fetch_by_lua_block": {CtxHTTPServer | Take1},
	"ssl_session_store_by_lua_block": {CtxHTTPServer | Take1},
}
