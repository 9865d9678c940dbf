// Package catalog holds the static directive table: for every known
// directive, the set of (context, arity) variants it is legal in. This is
// the "bitmask-valued dictionary" the design calls for — each Variant packs
// both a context mask and an arity predicate into one integer so a lookup
// is a handful of bitwise ANDs.
package catalog

// Variant is a packed (context-mask | arity-mask) describing one legal
// occurrence of a directive. A directive may have several Variants (e.g.
// access_log is legal with one argument shape in http contexts and another
// in stream contexts).
type Variant uint64

// Context identifies a block-nesting path a directive can appear in. It is
// an alias of Variant (not a distinct type) so Context and arity bits can
// be OR'd together directly when building a table entry.
type Context = Variant

// Context bits. CtxAny is not itself a context a directive runs in; table
// entries (e.g. include) and extensions (see RegisterExtension) use it to
// mean "legal in any main, events, mail, stream or http context". It does
// not include the if and limit_except contexts.
const (
	CtxDirect           Context = 0x00010000
	CtxMain             Context = 0x00040000
	CtxEvents           Context = 0x00080000
	CtxMail             Context = 0x00100000
	CtxMailServer       Context = 0x00200000
	CtxStream           Context = 0x00400000
	CtxStreamServer     Context = 0x00800000
	CtxStreamUpstream   Context = 0x01000000
	CtxHTTP             Context = 0x02000000
	CtxHTTPServer       Context = 0x04000000
	CtxHTTPLocation     Context = 0x08000000
	CtxHTTPUpstream     Context = 0x10000000
	CtxHTTPServerIf     Context = 0x20000000
	CtxHTTPLocationIf   Context = 0x40000000
	CtxHTTPLimitExcept  Context = 0x80000000

	CtxAny = CtxMain | CtxEvents | CtxMail | CtxMailServer |
		CtxStream | CtxStreamServer | CtxStreamUpstream |
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | CtxHTTPUpstream
)

// Arity/shape bits, meaningful only on the low 16 bits of a Variant;
// Variant also carries one or more Context bits from above, OR'd in.
const (
	Take0 Variant = 0x00000001 // 0 args
	Take1 Variant = 0x00000002 // 1 arg
	Take2 Variant = 0x00000004 // 2 args
	Take3 Variant = 0x00000008 // 3 args
	Take4 Variant = 0x00000010 // 4 args
	Take5 Variant = 0x00000020 // 5 args
	Take6 Variant = 0x00000040 // 6 args
	Take7 Variant = 0x00000080 // 7 args
	Block Variant = 0x00000100 // followed by a block
	Flag  Variant = 0x00000200 // "on" or "off"
	Any   Variant = 0x00000400 // >= 0 args
	OneMore Variant = 0x00000800 // >= 1 args
	TwoMore Variant = 0x00001000 // >= 2 args

	Take12   = Take1 | Take2
	Take13   = Take1 | Take3
	Take23   = Take2 | Take3
	Take123  = Take12 | Take3
	Take1234 = Take123 | Take4
)

func toCtx(s ...string) string {
	out := ""
	for i, p := range s {
		if i > 0 {
			out += ">"
		}
		out += p
	}
	return out
}

var contextKeys = map[string]Context{
	toCtx():                                   CtxMain,
	toCtx("events"):                           CtxEvents,
	toCtx("mail"):                             CtxMail,
	toCtx("mail", "server"):                   CtxMailServer,
	toCtx("stream"):                           CtxStream,
	toCtx("stream", "server"):                 CtxStreamServer,
	toCtx("stream", "upstream"):               CtxStreamUpstream,
	toCtx("http"):                             CtxHTTP,
	toCtx("http", "server"):                   CtxHTTPServer,
	toCtx("http", "location"):                 CtxHTTPLocation,
	toCtx("http", "upstream"):                 CtxHTTPUpstream,
	toCtx("http", "server", "if"):             CtxHTTPServerIf,
	toCtx("http", "location", "if"):           CtxHTTPLocationIf,
	toCtx("http", "location", "limit_except"): CtxHTTPLimitExcept,
}

var directiveTable = map[string][]Variant{
	"absolute_redirect": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"accept_mutex": []Variant{
		CtxEvents | Flag},
	"accept_mutex_delay": []Variant{
		CtxEvents | Take1},
	"access_log": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | CtxHTTPLocationIf | CtxHTTPLimitExcept | OneMore,
		CtxStream | CtxStreamServer | OneMore},
	"add_after_body": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"add_before_body": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"add_header": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | CtxHTTPLocationIf | Take23},
	"add_trailer": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | CtxHTTPLocationIf | Take23},
	"addition_types": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | OneMore},
	"aio": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"aio_write": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"alias": []Variant{
		CtxHTTPLocation | Take1},
	"allow": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | CtxHTTPLimitExcept | Take1,
		CtxStream | CtxStreamServer | Take1},
	"ancient_browser": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | OneMore},
	"ancient_browser_value": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"auth_basic": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | CtxHTTPLimitExcept | Take1},
	"auth_basic_user_file": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | CtxHTTPLimitExcept | Take1},
	"auth_http": []Variant{
		CtxMail | CtxMailServer | Take1},
	"auth_http_header": []Variant{
		CtxMail | CtxMailServer | Take2},
	"auth_http_pass_client_cert": []Variant{
		CtxMail | CtxMailServer | Flag},
	"auth_http_timeout": []Variant{
		CtxMail | CtxMailServer | Take1},
	"auth_request": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"auth_request_set": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take2},
	"autoindex": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"autoindex_exact_size": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"autoindex_format": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"autoindex_localtime": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"break": []Variant{
		CtxHTTPServer | CtxHTTPServerIf | CtxHTTPLocation | CtxHTTPLocationIf | Take0},
	"charset": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | CtxHTTPLocationIf | Take1},
	"charset_map": []Variant{
		CtxHTTP | Block | Take2},
	"charset_types": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | OneMore},
	"chunked_transfer_encoding": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"client_body_buffer_size": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"client_body_in_file_only": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"client_body_in_single_buffer": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"client_body_temp_path": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1234},
	"client_body_timeout": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"client_header_buffer_size": []Variant{
		CtxHTTP | CtxHTTPServer | Take1},
	"client_header_timeout": []Variant{
		CtxHTTP | CtxHTTPServer | Take1},
	"client_max_body_size": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"connection_pool_size": []Variant{
		CtxHTTP | CtxHTTPServer | Take1},
	"create_full_put_path": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"daemon": []Variant{
		CtxMain | CtxDirect | Flag},
	"dav_access": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take123},
	"dav_methods": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | OneMore},
	"debug_connection": []Variant{
		CtxEvents | Take1},
	"debug_points": []Variant{
		CtxMain | CtxDirect | Take1},
	"default_type": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"deny": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | CtxHTTPLimitExcept | Take1,
		CtxStream | CtxStreamServer | Take1},
	"directio": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"directio_alignment": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"disable_symlinks": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take12},
	"empty_gif": []Variant{
		CtxHTTPLocation | Take0},
	"env": []Variant{
		CtxMain | CtxDirect | Take1},
	"error_log": []Variant{
		CtxMain | OneMore,
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | OneMore,
		CtxMail | CtxMailServer | OneMore,
		CtxStream | CtxStreamServer | OneMore},
	"error_page": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | CtxHTTPLocationIf | TwoMore},
	"etag": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"events": []Variant{
		CtxMain | Block | Take0},
	"expires": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | CtxHTTPLocationIf | Take12},
	"fastcgi_bind": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take12},
	"fastcgi_buffer_size": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"fastcgi_buffering": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"fastcgi_buffers": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take2},
	"fastcgi_busy_buffers_size": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"fastcgi_cache": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"fastcgi_cache_background_update": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"fastcgi_cache_bypass": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | OneMore},
	"fastcgi_cache_key": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"fastcgi_cache_lock": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"fastcgi_cache_lock_age": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"fastcgi_cache_lock_timeout": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"fastcgi_cache_max_range_offset": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"fastcgi_cache_methods": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | OneMore},
	"fastcgi_cache_min_uses": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"fastcgi_cache_path": []Variant{
		CtxHTTP | TwoMore},
	"fastcgi_cache_revalidate": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"fastcgi_cache_use_stale": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | OneMore},
	"fastcgi_cache_valid": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | OneMore},
	"fastcgi_catch_stderr": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"fastcgi_connect_timeout": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"fastcgi_force_ranges": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"fastcgi_hide_header": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"fastcgi_ignore_client_abort": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"fastcgi_ignore_headers": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | OneMore},
	"fastcgi_index": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"fastcgi_intercept_errors": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"fastcgi_keep_conn": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"fastcgi_limit_rate": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"fastcgi_max_temp_file_size": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"fastcgi_next_upstream": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | OneMore},
	"fastcgi_next_upstream_timeout": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"fastcgi_next_upstream_tries": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"fastcgi_no_cache": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | OneMore},
	"fastcgi_param": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take23},
	"fastcgi_pass": []Variant{
		CtxHTTPLocation | CtxHTTPLocationIf | Take1},
	"fastcgi_pass_header": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"fastcgi_pass_request_body": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"fastcgi_pass_request_headers": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"fastcgi_read_timeout": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"fastcgi_request_buffering": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"fastcgi_send_lowat": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"fastcgi_send_timeout": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"fastcgi_socket_keepalive": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"fastcgi_split_path_info": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"fastcgi_store": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"fastcgi_store_access": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take123},
	"fastcgi_temp_file_write_size": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"fastcgi_temp_path": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1234},
	"flv": []Variant{
		CtxHTTPLocation | Take0},
	"geo": []Variant{
		CtxHTTP | Block | Take12,
		CtxStream | Block | Take12},
	"geoip_city": []Variant{
		CtxHTTP | Take12,
		CtxStream | Take12},
	"geoip_country": []Variant{
		CtxHTTP | Take12,
		CtxStream | Take12},
	"geoip_org": []Variant{
		CtxHTTP | Take12,
		CtxStream | Take12},
	"geoip_proxy": []Variant{
		CtxHTTP | Take1},
	"geoip_proxy_recursive": []Variant{
		CtxHTTP | Flag},
	"google_perftools_profiles": []Variant{
		CtxMain | CtxDirect | Take1},
	"grpc_bind": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take12},
	"grpc_buffer_size": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"grpc_connect_timeout": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"grpc_hide_header": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"grpc_ignore_headers": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | OneMore},
	"grpc_intercept_errors": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"grpc_next_upstream": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | OneMore},
	"grpc_next_upstream_timeout": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"grpc_next_upstream_tries": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"grpc_pass": []Variant{
		CtxHTTPLocation | CtxHTTPLocationIf | Take1},
	"grpc_pass_header": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"grpc_read_timeout": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"grpc_send_timeout": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"grpc_set_header": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take2},
	"grpc_socket_keepalive": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"grpc_ssl_certificate": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"grpc_ssl_certificate_key": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"grpc_ssl_ciphers": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"grpc_ssl_crl": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"grpc_ssl_name": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"grpc_ssl_password_file": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"grpc_ssl_protocols": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | OneMore},
	"grpc_ssl_server_name": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"grpc_ssl_session_reuse": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"grpc_ssl_trusted_certificate": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"grpc_ssl_verify": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"grpc_ssl_verify_depth": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"gunzip": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"gunzip_buffers": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take2},
	"gzip": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | CtxHTTPLocationIf | Flag},
	"gzip_buffers": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take2},
	"gzip_comp_level": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"gzip_disable": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | OneMore},
	"gzip_http_version": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"gzip_min_length": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"gzip_proxied": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | OneMore},
	"gzip_static": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"gzip_types": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | OneMore},
	"gzip_vary": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"hash": []Variant{
		CtxHTTPUpstream | Take12,
		CtxStreamUpstream | Take12},
	"http": []Variant{
		CtxMain | Block | Take0},
	"http2_body_preread_size": []Variant{
		CtxHTTP | CtxHTTPServer | Take1},
	"http2_chunk_size": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"http2_idle_timeout": []Variant{
		CtxHTTP | CtxHTTPServer | Take1},
	"http2_max_concurrent_pushes": []Variant{
		CtxHTTP | CtxHTTPServer | Take1},
	"http2_max_concurrent_streams": []Variant{
		CtxHTTP | CtxHTTPServer | Take1},
	"http2_max_field_size": []Variant{
		CtxHTTP | CtxHTTPServer | Take1},
	"http2_max_header_size": []Variant{
		CtxHTTP | CtxHTTPServer | Take1},
	"http2_max_requests": []Variant{
		CtxHTTP | CtxHTTPServer | Take1},
	"http2_push": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"http2_push_preload": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"http2_recv_buffer_size": []Variant{
		CtxHTTP | Take1},
	"http2_recv_timeout": []Variant{
		CtxHTTP | CtxHTTPServer | Take1},
	"if": []Variant{
		CtxHTTPServer | CtxHTTPLocation | Block | OneMore},
	"if_modified_since": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"ignore_invalid_headers": []Variant{
		CtxHTTP | CtxHTTPServer | Flag},
	"image_filter": []Variant{
		CtxHTTPLocation | Take123},
	"image_filter_buffer": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"image_filter_interlace": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"image_filter_jpeg_quality": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"image_filter_sharpen": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"image_filter_transparency": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"image_filter_webp_quality": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"imap_auth": []Variant{
		CtxMail | CtxMailServer | OneMore},
	"imap_capabilities": []Variant{
		CtxMail | CtxMailServer | OneMore},
	"imap_client_buffer": []Variant{
		CtxMail | CtxMailServer | Take1},
	"include": []Variant{
		CtxAny | Take1},
	"index": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | OneMore},
	"internal": []Variant{
		CtxHTTPLocation | Take0},
	"ip_hash": []Variant{
		CtxHTTPUpstream | Take0},
	"keepalive": []Variant{
		CtxHTTPUpstream | Take1},
	"keepalive_disable": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take12},
	"keepalive_requests": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1,
		CtxHTTPUpstream | Take1},
	"keepalive_timeout": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take12,
		CtxHTTPUpstream | Take1},
	"large_client_header_buffers": []Variant{
		CtxHTTP | CtxHTTPServer | Take2},
	"least_conn": []Variant{
		CtxHTTPUpstream | Take0,
		CtxStreamUpstream | Take0},
	"limit_conn": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take2,
		CtxStream | CtxStreamServer | Take2},
	"limit_conn_log_level": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1,
		CtxStream | CtxStreamServer | Take1},
	"limit_conn_status": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"limit_conn_zone": []Variant{
		CtxHTTP | Take2,
		CtxStream | Take2},
	"limit_except": []Variant{
		CtxHTTPLocation | Block | OneMore},
	"limit_rate": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | CtxHTTPLocationIf | Take1},
	"limit_rate_after": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | CtxHTTPLocationIf | Take1},
	"limit_req": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take123},
	"limit_req_log_level": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"limit_req_status": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"limit_req_zone": []Variant{
		CtxHTTP | Take3},
	"lingering_close": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"lingering_time": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"lingering_timeout": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"listen": []Variant{
		CtxHTTPServer | OneMore,
		CtxMailServer | OneMore,
		CtxStreamServer | OneMore},
	"load_module": []Variant{
		CtxMain | CtxDirect | Take1},
	"location": []Variant{
		CtxHTTPServer | CtxHTTPLocation | Block | Take12},
	"lock_file": []Variant{
		CtxMain | CtxDirect | Take1},
	"log_format": []Variant{
		CtxHTTP | TwoMore,
		CtxStream | TwoMore},
	"log_not_found": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"log_subrequest": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"mail": []Variant{
		CtxMain | Block | Take0},
	"map": []Variant{
		CtxHTTP | Block | Take2,
		CtxStream | Block | Take2},
	"map_hash_bucket_size": []Variant{
		CtxHTTP | Take1,
		CtxStream | Take1},
	"map_hash_max_size": []Variant{
		CtxHTTP | Take1,
		CtxStream | Take1},
	"master_process": []Variant{
		CtxMain | CtxDirect | Flag},
	"max_ranges": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"memcached_bind": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take12},
	"memcached_buffer_size": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"memcached_connect_timeout": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"memcached_gzip_flag": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"memcached_next_upstream": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | OneMore},
	"memcached_next_upstream_timeout": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"memcached_next_upstream_tries": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"memcached_pass": []Variant{
		CtxHTTPLocation | CtxHTTPLocationIf | Take1},
	"memcached_read_timeout": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"memcached_send_timeout": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"memcached_socket_keepalive": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"merge_slashes": []Variant{
		CtxHTTP | CtxHTTPServer | Flag},
	"min_delete_depth": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"mirror": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"mirror_request_body": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"modern_browser": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take12},
	"modern_browser_value": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"mp4": []Variant{
		CtxHTTPLocation | Take0},
	"mp4_buffer_size": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"mp4_max_buffer_size": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"msie_padding": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"msie_refresh": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"multi_accept": []Variant{
		CtxEvents | Flag},
	"open_file_cache": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take12},
	"open_file_cache_errors": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"open_file_cache_min_uses": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"open_file_cache_valid": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"open_log_file_cache": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1234,
		CtxStream | CtxStreamServer | Take1234},
	"output_buffers": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take2},
	"override_charset": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | CtxHTTPLocationIf | Flag},
	"pcre_jit": []Variant{
		CtxMain | CtxDirect | Flag},
	"perl": []Variant{
		CtxHTTPLocation | CtxHTTPLimitExcept | Take1},
	"perl_modules": []Variant{
		CtxHTTP | Take1},
	"perl_require": []Variant{
		CtxHTTP | Take1},
	"perl_set": []Variant{
		CtxHTTP | Take2},
	"pid": []Variant{
		CtxMain | CtxDirect | Take1},
	"pop3_auth": []Variant{
		CtxMail | CtxMailServer | OneMore},
	"pop3_capabilities": []Variant{
		CtxMail | CtxMailServer | OneMore},
	"port_in_redirect": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"postpone_output": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"preread_buffer_size": []Variant{
		CtxStream | CtxStreamServer | Take1},
	"preread_timeout": []Variant{
		CtxStream | CtxStreamServer | Take1},
	"protocol": []Variant{
		CtxMailServer | Take1},
	"proxy_bind": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take12,
		CtxStream | CtxStreamServer | Take12},
	"proxy_buffer": []Variant{
		CtxMail | CtxMailServer | Take1},
	"proxy_buffer_size": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1,
		CtxStream | CtxStreamServer | Take1},
	"proxy_buffering": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"proxy_buffers": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take2},
	"proxy_busy_buffers_size": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"proxy_cache": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"proxy_cache_background_update": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"proxy_cache_bypass": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | OneMore},
	"proxy_cache_convert_head": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"proxy_cache_key": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"proxy_cache_lock": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"proxy_cache_lock_age": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"proxy_cache_lock_timeout": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"proxy_cache_max_range_offset": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"proxy_cache_methods": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | OneMore},
	"proxy_cache_min_uses": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"proxy_cache_path": []Variant{
		CtxHTTP | TwoMore},
	"proxy_cache_revalidate": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"proxy_cache_use_stale": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | OneMore},
	"proxy_cache_valid": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | OneMore},
	"proxy_connect_timeout": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1,
		CtxStream | CtxStreamServer | Take1},
	"proxy_cookie_domain": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take12},
	"proxy_cookie_path": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take12},
	"proxy_download_rate": []Variant{
		CtxStream | CtxStreamServer | Take1},
	"proxy_force_ranges": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"proxy_headers_hash_bucket_size": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"proxy_headers_hash_max_size": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"proxy_hide_header": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"proxy_http_version": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"proxy_ignore_client_abort": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"proxy_ignore_headers": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | OneMore},
	"proxy_intercept_errors": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"proxy_limit_rate": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"proxy_max_temp_file_size": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"proxy_method": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"proxy_next_upstream": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | OneMore,
		CtxStream | CtxStreamServer | Flag},
	"proxy_next_upstream_timeout": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1,
		CtxStream | CtxStreamServer | Take1},
	"proxy_next_upstream_tries": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1,
		CtxStream | CtxStreamServer | Take1},
	"proxy_no_cache": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | OneMore},
	"proxy_pass": []Variant{
		CtxHTTPLocation | CtxHTTPLocationIf | CtxHTTPLimitExcept | Take1,
		CtxStreamServer | Take1},
	"proxy_pass_error_message": []Variant{
		CtxMail | CtxMailServer | Flag},
	"proxy_pass_header": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"proxy_pass_request_body": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"proxy_pass_request_headers": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"proxy_protocol": []Variant{
		CtxStream | CtxStreamServer | Flag},
	"proxy_protocol_timeout": []Variant{
		CtxStream | CtxStreamServer | Take1},
	"proxy_read_timeout": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"proxy_redirect": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take12},
	"proxy_request_buffering": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"proxy_requests": []Variant{
		CtxStream | CtxStreamServer | Take1},
	"proxy_responses": []Variant{
		CtxStream | CtxStreamServer | Take1},
	"proxy_send_lowat": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"proxy_send_timeout": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"proxy_set_body": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"proxy_set_header": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take2},
	"proxy_socket_keepalive": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag,
		CtxStream | CtxStreamServer | Flag},
	"proxy_ssl": []Variant{
		CtxStream | CtxStreamServer | Flag},
	"proxy_ssl_certificate": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1,
		CtxStream | CtxStreamServer | Take1},
	"proxy_ssl_certificate_key": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1,
		CtxStream | CtxStreamServer | Take1},
	"proxy_ssl_ciphers": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1,
		CtxStream | CtxStreamServer | Take1},
	"proxy_ssl_crl": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1,
		CtxStream | CtxStreamServer | Take1},
	"proxy_ssl_name": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1,
		CtxStream | CtxStreamServer | Take1},
	"proxy_ssl_password_file": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1,
		CtxStream | CtxStreamServer | Take1},
	"proxy_ssl_protocols": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | OneMore,
		CtxStream | CtxStreamServer | OneMore},
	"proxy_ssl_server_name": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag,
		CtxStream | CtxStreamServer | Flag},
	"proxy_ssl_session_reuse": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag,
		CtxStream | CtxStreamServer | Flag},
	"proxy_ssl_trusted_certificate": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1,
		CtxStream | CtxStreamServer | Take1},
	"proxy_ssl_verify": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag,
		CtxStream | CtxStreamServer | Flag},
	"proxy_ssl_verify_depth": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1,
		CtxStream | CtxStreamServer | Take1},
	"proxy_store": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"proxy_store_access": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take123},
	"proxy_temp_file_write_size": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"proxy_temp_path": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1234},
	"proxy_timeout": []Variant{
		CtxMail | CtxMailServer | Take1,
		CtxStream | CtxStreamServer | Take1},
	"proxy_upload_rate": []Variant{
		CtxStream | CtxStreamServer | Take1},
	"random": []Variant{
		CtxHTTPUpstream | Take0 | Take12,
		CtxStreamUpstream | Take0 | Take12},
	"random_index": []Variant{
		CtxHTTPLocation | Flag},
	"read_ahead": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"real_ip_header": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"real_ip_recursive": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"recursive_error_pages": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"referer_hash_bucket_size": []Variant{
		CtxHTTPServer | CtxHTTPLocation | Take1},
	"referer_hash_max_size": []Variant{
		CtxHTTPServer | CtxHTTPLocation | Take1},
	"request_pool_size": []Variant{
		CtxHTTP | CtxHTTPServer | Take1},
	"reset_timedout_connection": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"resolver": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | OneMore,
		CtxMail | CtxMailServer | OneMore,
		CtxStream | CtxStreamServer | OneMore},
	"resolver_timeout": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1,
		CtxMail | CtxMailServer | Take1,
		CtxStream | CtxStreamServer | Take1},
	"return": []Variant{
		CtxHTTPServer | CtxHTTPServerIf | CtxHTTPLocation | CtxHTTPLocationIf | Take12,
		CtxStreamServer | Take1},
	"rewrite": []Variant{
		CtxHTTPServer | CtxHTTPServerIf | CtxHTTPLocation | CtxHTTPLocationIf | Take23},
	"rewrite_log": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPServerIf | CtxHTTPLocation | CtxHTTPLocationIf | Flag},
	"root": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | CtxHTTPLocationIf | Take1},
	"satisfy": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"scgi_bind": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take12},
	"scgi_buffer_size": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"scgi_buffering": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"scgi_buffers": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take2},
	"scgi_busy_buffers_size": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"scgi_cache": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"scgi_cache_background_update": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"scgi_cache_bypass": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | OneMore},
	"scgi_cache_key": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"scgi_cache_lock": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"scgi_cache_lock_age": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"scgi_cache_lock_timeout": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"scgi_cache_max_range_offset": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"scgi_cache_methods": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | OneMore},
	"scgi_cache_min_uses": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"scgi_cache_path": []Variant{
		CtxHTTP | TwoMore},
	"scgi_cache_revalidate": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"scgi_cache_use_stale": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | OneMore},
	"scgi_cache_valid": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | OneMore},
	"scgi_connect_timeout": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"scgi_force_ranges": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"scgi_hide_header": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"scgi_ignore_client_abort": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"scgi_ignore_headers": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | OneMore},
	"scgi_intercept_errors": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"scgi_limit_rate": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"scgi_max_temp_file_size": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"scgi_next_upstream": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | OneMore},
	"scgi_next_upstream_timeout": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"scgi_next_upstream_tries": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"scgi_no_cache": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | OneMore},
	"scgi_param": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take23},
	"scgi_pass": []Variant{
		CtxHTTPLocation | CtxHTTPLocationIf | Take1},
	"scgi_pass_header": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"scgi_pass_request_body": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"scgi_pass_request_headers": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"scgi_read_timeout": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"scgi_request_buffering": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"scgi_send_timeout": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"scgi_socket_keepalive": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"scgi_store": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"scgi_store_access": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take123},
	"scgi_temp_file_write_size": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"scgi_temp_path": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1234},
	"secure_link": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"secure_link_md5": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"secure_link_secret": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"send_lowat": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"send_timeout": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"sendfile": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | CtxHTTPLocationIf | Flag},
	"sendfile_max_chunk": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"server": []Variant{
		CtxHTTP | Block | Take0,
		CtxHTTPUpstream | OneMore,
		CtxMail | Block | Take0,
		CtxStream | Block | Take0,
		CtxStreamUpstream | OneMore},
	"server_name": []Variant{
		CtxHTTPServer | OneMore,
		CtxMail | CtxMailServer | Take1},
	"server_name_in_redirect": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"server_names_hash_bucket_size": []Variant{
		CtxHTTP | Take1},
	"server_names_hash_max_size": []Variant{
		CtxHTTP | Take1},
	"server_tokens": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"set": []Variant{
		CtxHTTPServer | CtxHTTPServerIf | CtxHTTPLocation | CtxHTTPLocationIf | Take2},
	"set_real_ip_from": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1,
		CtxStream | CtxStreamServer | Take1},
	"slice": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"smtp_auth": []Variant{
		CtxMail | CtxMailServer | OneMore},
	"smtp_capabilities": []Variant{
		CtxMail | CtxMailServer | OneMore},
	"smtp_client_buffer": []Variant{
		CtxMail | CtxMailServer | Take1},
	"smtp_greeting_delay": []Variant{
		CtxMail | CtxMailServer | Take1},
	"source_charset": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | CtxHTTPLocationIf | Take1},
	"spdy_chunk_size": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"spdy_headers_comp": []Variant{
		CtxHTTP | CtxHTTPServer | Take1},
	"split_clients": []Variant{
		CtxHTTP | Block | Take2,
		CtxStream | Block | Take2},
	"ssi": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | CtxHTTPLocationIf | Flag},
	"ssi_last_modified": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"ssi_min_file_chunk": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"ssi_silent_errors": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"ssi_types": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | OneMore},
	"ssi_value_length": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"ssl": []Variant{
		CtxHTTP | CtxHTTPServer | Flag,
		CtxMail | CtxMailServer | Flag},
	"ssl_buffer_size": []Variant{
		CtxHTTP | CtxHTTPServer | Take1},
	"ssl_certificate": []Variant{
		CtxHTTP | CtxHTTPServer | Take1,
		CtxMail | CtxMailServer | Take1,
		CtxStream | CtxStreamServer | Take1},
	"ssl_certificate_key": []Variant{
		CtxHTTP | CtxHTTPServer | Take1,
		CtxMail | CtxMailServer | Take1,
		CtxStream | CtxStreamServer | Take1},
	"ssl_ciphers": []Variant{
		CtxHTTP | CtxHTTPServer | Take1,
		CtxMail | CtxMailServer | Take1,
		CtxStream | CtxStreamServer | Take1},
	"ssl_client_certificate": []Variant{
		CtxHTTP | CtxHTTPServer | Take1,
		CtxMail | CtxMailServer | Take1,
		CtxStream | CtxStreamServer | Take1},
	"ssl_crl": []Variant{
		CtxHTTP | CtxHTTPServer | Take1,
		CtxMail | CtxMailServer | Take1,
		CtxStream | CtxStreamServer | Take1},
	"ssl_dhparam": []Variant{
		CtxHTTP | CtxHTTPServer | Take1,
		CtxMail | CtxMailServer | Take1,
		CtxStream | CtxStreamServer | Take1},
	"ssl_early_data": []Variant{
		CtxHTTP | CtxHTTPServer | Flag},
	"ssl_ecdh_curve": []Variant{
		CtxHTTP | CtxHTTPServer | Take1,
		CtxMail | CtxMailServer | Take1,
		CtxStream | CtxStreamServer | Take1},
	"ssl_engine": []Variant{
		CtxMain | CtxDirect | Take1},
	"ssl_handshake_timeout": []Variant{
		CtxStream | CtxStreamServer | Take1},
	"ssl_password_file": []Variant{
		CtxHTTP | CtxHTTPServer | Take1,
		CtxMail | CtxMailServer | Take1,
		CtxStream | CtxStreamServer | Take1},
	"ssl_prefer_server_ciphers": []Variant{
		CtxHTTP | CtxHTTPServer | Flag,
		CtxMail | CtxMailServer | Flag,
		CtxStream | CtxStreamServer | Flag},
	"ssl_preread": []Variant{
		CtxStream | CtxStreamServer | Flag},
	"ssl_protocols": []Variant{
		CtxHTTP | CtxHTTPServer | OneMore,
		CtxMail | CtxMailServer | OneMore,
		CtxStream | CtxStreamServer | OneMore},
	"ssl_session_cache": []Variant{
		CtxHTTP | CtxHTTPServer | Take12,
		CtxMail | CtxMailServer | Take12,
		CtxStream | CtxStreamServer | Take12},
	"ssl_session_ticket_key": []Variant{
		CtxHTTP | CtxHTTPServer | Take1,
		CtxMail | CtxMailServer | Take1,
		CtxStream | CtxStreamServer | Take1},
	"ssl_session_tickets": []Variant{
		CtxHTTP | CtxHTTPServer | Flag,
		CtxMail | CtxMailServer | Flag,
		CtxStream | CtxStreamServer | Flag},
	"ssl_session_timeout": []Variant{
		CtxHTTP | CtxHTTPServer | Take1,
		CtxMail | CtxMailServer | Take1,
		CtxStream | CtxStreamServer | Take1},
	"ssl_stapling": []Variant{
		CtxHTTP | CtxHTTPServer | Flag},
	"ssl_stapling_file": []Variant{
		CtxHTTP | CtxHTTPServer | Take1},
	"ssl_stapling_responder": []Variant{
		CtxHTTP | CtxHTTPServer | Take1},
	"ssl_stapling_verify": []Variant{
		CtxHTTP | CtxHTTPServer | Flag},
	"ssl_trusted_certificate": []Variant{
		CtxHTTP | CtxHTTPServer | Take1,
		CtxMail | CtxMailServer | Take1,
		CtxStream | CtxStreamServer | Take1},
	"ssl_verify_client": []Variant{
		CtxHTTP | CtxHTTPServer | Take1,
		CtxMail | CtxMailServer | Take1,
		CtxStream | CtxStreamServer | Take1},
	"ssl_verify_depth": []Variant{
		CtxHTTP | CtxHTTPServer | Take1,
		CtxMail | CtxMailServer | Take1,
		CtxStream | CtxStreamServer | Take1},
	"starttls": []Variant{
		CtxMail | CtxMailServer | Take1},
	"stream": []Variant{
		CtxMain | Block | Take0},
	"stub_status": []Variant{
		CtxHTTPServer | CtxHTTPLocation | Take0 | Take1},
	"sub_filter": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take2},
	"sub_filter_last_modified": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"sub_filter_once": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"sub_filter_types": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | OneMore},
	"subrequest_output_buffer_size": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"tcp_nodelay": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag,
		CtxStream | CtxStreamServer | Flag},
	"tcp_nopush": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"thread_pool": []Variant{
		CtxMain | CtxDirect | Take23},
	"timeout": []Variant{
		CtxMail | CtxMailServer | Take1},
	"timer_resolution": []Variant{
		CtxMain | CtxDirect | Take1},
	"try_files": []Variant{
		CtxHTTPServer | CtxHTTPLocation | TwoMore},
	"types": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Block | Take0},
	"types_hash_bucket_size": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"types_hash_max_size": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"underscores_in_headers": []Variant{
		CtxHTTP | CtxHTTPServer | Flag},
	"uninitialized_variable_warn": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPServerIf | CtxHTTPLocation | CtxHTTPLocationIf | Flag},
	"upstream": []Variant{
		CtxHTTP | Block | Take1,
		CtxStream | Block | Take1},
	"use": []Variant{
		CtxEvents | Take1},
	"user": []Variant{
		CtxMain | CtxDirect | Take12},
	"userid": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"userid_domain": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"userid_expires": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"userid_mark": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"userid_name": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"userid_p3p": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"userid_path": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"userid_service": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"uwsgi_bind": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take12},
	"uwsgi_buffer_size": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"uwsgi_buffering": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"uwsgi_buffers": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take2},
	"uwsgi_busy_buffers_size": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"uwsgi_cache": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"uwsgi_cache_background_update": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"uwsgi_cache_bypass": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | OneMore},
	"uwsgi_cache_key": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"uwsgi_cache_lock": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"uwsgi_cache_lock_age": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"uwsgi_cache_lock_timeout": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"uwsgi_cache_max_range_offset": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"uwsgi_cache_methods": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | OneMore},
	"uwsgi_cache_min_uses": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"uwsgi_cache_path": []Variant{
		CtxHTTP | TwoMore},
	"uwsgi_cache_revalidate": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"uwsgi_cache_use_stale": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | OneMore},
	"uwsgi_cache_valid": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | OneMore},
	"uwsgi_connect_timeout": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"uwsgi_force_ranges": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"uwsgi_hide_header": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"uwsgi_ignore_client_abort": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"uwsgi_ignore_headers": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | OneMore},
	"uwsgi_intercept_errors": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"uwsgi_limit_rate": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"uwsgi_max_temp_file_size": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"uwsgi_modifier1": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"uwsgi_modifier2": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"uwsgi_next_upstream": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | OneMore},
	"uwsgi_next_upstream_timeout": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"uwsgi_next_upstream_tries": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"uwsgi_no_cache": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | OneMore},
	"uwsgi_param": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take23},
	"uwsgi_pass": []Variant{
		CtxHTTPLocation | CtxHTTPLocationIf | Take1},
	"uwsgi_pass_header": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"uwsgi_pass_request_body": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"uwsgi_pass_request_headers": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"uwsgi_read_timeout": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"uwsgi_request_buffering": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"uwsgi_send_timeout": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"uwsgi_socket_keepalive": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"uwsgi_ssl_certificate": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"uwsgi_ssl_certificate_key": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"uwsgi_ssl_ciphers": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"uwsgi_ssl_crl": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"uwsgi_ssl_name": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"uwsgi_ssl_password_file": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"uwsgi_ssl_protocols": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | OneMore},
	"uwsgi_ssl_server_name": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"uwsgi_ssl_session_reuse": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"uwsgi_ssl_trusted_certificate": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"uwsgi_ssl_verify": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"uwsgi_ssl_verify_depth": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"uwsgi_store": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"uwsgi_store_access": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take123},
	"uwsgi_temp_file_write_size": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"uwsgi_temp_path": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1234},
	"valid_referers": []Variant{
		CtxHTTPServer | CtxHTTPLocation | OneMore},
	"variables_hash_bucket_size": []Variant{
		CtxHTTP | Take1,
		CtxStream | Take1},
	"variables_hash_max_size": []Variant{
		CtxHTTP | Take1,
		CtxStream | Take1},
	"worker_aio_requests": []Variant{
		CtxEvents | Take1},
	"worker_connections": []Variant{
		CtxEvents | Take1},
	"worker_cpu_affinity": []Variant{
		CtxMain | CtxDirect | OneMore},
	"worker_priority": []Variant{
		CtxMain | CtxDirect | Take1},
	"worker_processes": []Variant{
		CtxMain | CtxDirect | Take1},
	"worker_rlimit_core": []Variant{
		CtxMain | CtxDirect | Take1},
	"worker_rlimit_nofile": []Variant{
		CtxMain | CtxDirect | Take1},
	"worker_shutdown_timeout": []Variant{
		CtxMain | CtxDirect | Take1},
	"working_directory": []Variant{
		CtxMain | CtxDirect | Take1},
	"xclient": []Variant{
		CtxMail | CtxMailServer | Flag},
	"xml_entities": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"xslt_last_modified": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"xslt_param": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take2},
	"xslt_string_param": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take2},
	"xslt_stylesheet": []Variant{
		CtxHTTPLocation | OneMore},
	"xslt_types": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | OneMore},
	"zone": []Variant{
		CtxHTTPUpstream | Take12,
		CtxStreamUpstream | Take12},

	// nginx+ directives [definitions inferred from docs]
	"api": []Variant{
		CtxHTTPLocation | Take0 | Take1},
	"auth_jwt": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take12},
	"auth_jwt_claim_set": []Variant{
		CtxHTTP | TwoMore},
	"auth_jwt_header_set": []Variant{
		CtxHTTP | TwoMore},
	"auth_jwt_key_file": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"auth_jwt_key_request": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"auth_jwt_leeway": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"f4f": []Variant{
		CtxHTTPLocation | Take0},
	"f4f_buffer_size": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"fastcgi_cache_purge": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | OneMore},
	"health_check": []Variant{
		CtxHTTPLocation | Any,
		CtxStreamServer | Any},
	"health_check_timeout": []Variant{
		CtxStream | CtxStreamServer | Take1},
	"hls": []Variant{
		CtxHTTPLocation | Take0},
	"hls_buffers": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take2},
	"hls_forward_args": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"hls_fragment": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"hls_mp4_buffer_size": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"hls_mp4_max_buffer_size": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"js_access": []Variant{
		CtxStream | CtxStreamServer | Take1},
	"js_content": []Variant{
		CtxHTTPLocation | CtxHTTPLimitExcept | Take1},
	"js_filter": []Variant{
		CtxStream | CtxStreamServer | Take1},
	"js_include": []Variant{
		CtxHTTP | Take1,
		CtxStream | Take1},
	"js_path": []Variant{
		CtxHTTP | Take1},
	"js_preread": []Variant{
		CtxStream | CtxStreamServer | Take1},
	"js_set": []Variant{
		CtxHTTP | Take2,
		CtxStream | Take2},
	"keyval": []Variant{
		CtxHTTP | Take3,
		CtxStream | Take3},
	"keyval_zone": []Variant{
		CtxHTTP | OneMore,
		CtxStream | OneMore},
	"least_time": []Variant{
		CtxHTTPUpstream | Take12,
		CtxStreamUpstream | Take12},
	"limit_zone": []Variant{
		CtxHTTP | Take3},
	"match": []Variant{
		CtxHTTP | Block | Take1,
		CtxStream | Block | Take1},
	"memcached_force_ranges": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Flag},
	"mp4_limit_rate": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"mp4_limit_rate_after": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"ntlm": []Variant{
		CtxHTTPUpstream | Take0},
	"proxy_cache_purge": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | OneMore},
	"queue": []Variant{
		CtxHTTPUpstream | Take12},
	"scgi_cache_purge": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | OneMore},
	"session_log": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take1},
	"session_log_format": []Variant{
		CtxHTTP | TwoMore},
	"session_log_zone": []Variant{
		CtxHTTP | Take23 | Take4 | Take5 | Take6},
	"state": []Variant{
		CtxHTTPUpstream | Take1,
		CtxStreamUpstream | Take1},
	"status": []Variant{
		CtxHTTPLocation | Take0},
	"status_format": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | Take12},
	"status_zone": []Variant{
		CtxHTTPServer | Take1,
		CtxStreamServer | Take1,
		CtxHTTPLocation | Take1,
		CtxHTTPLocationIf | Take1},
	"sticky": []Variant{
		CtxHTTPUpstream | OneMore},
	"sticky_cookie_insert": []Variant{
		CtxHTTPUpstream | Take1234},
	"upstream_conf": []Variant{
		CtxHTTPLocation | Take0},
	"uwsgi_cache_purge": []Variant{
		CtxHTTP | CtxHTTPServer | CtxHTTPLocation | OneMore},
	"zone_sync": []Variant{
		CtxStreamServer | Take0},
	"zone_sync_buffers": []Variant{
		CtxStream | CtxStreamServer | Take2},
	"zone_sync_connect_retry_interval": []Variant{
		CtxStream | CtxStreamServer | Take1},
	"zone_sync_connect_timeout": []Variant{
		CtxStream | CtxStreamServer | Take1},
	"zone_sync_interval": []Variant{
		CtxStream | CtxStreamServer | Take1},
	"zone_sync_recv_buffer_size": []Variant{
		CtxStream | CtxStreamServer | Take1},
	"zone_sync_server": []Variant{
		CtxStreamServer | Take12},
	"zone_sync_ssl": []Variant{
		CtxStream | CtxStreamServer | Flag},
	"zone_sync_ssl_certificate": []Variant{
		CtxStream | CtxStreamServer | Take1},
	"zone_sync_ssl_certificate_key": []Variant{
		CtxStream | CtxStreamServer | Take1},
	"zone_sync_ssl_ciphers": []Variant{
		CtxStream | CtxStreamServer | Take1},
	"zone_sync_ssl_crl": []Variant{
		CtxStream | CtxStreamServer | Take1},
	"zone_sync_ssl_name": []Variant{
		CtxStream | CtxStreamServer | Take1},
	"zone_sync_ssl_password_file": []Variant{
		CtxStream | CtxStreamServer | Take1},
	"zone_sync_ssl_protocols": []Variant{
		CtxStream | CtxStreamServer | OneMore},
	"zone_sync_ssl_server_name": []Variant{
		CtxStream | CtxStreamServer | Flag},
	"zone_sync_ssl_trusted_certificate": []Variant{
		CtxStream | CtxStreamServer | Take1},
	"zone_sync_ssl_verify": []Variant{
		CtxStream | CtxStreamServer | Flag},
	"zone_sync_ssl_verify_depth": []Variant{
		CtxStream | CtxStreamServer | Take1},
	"zone_sync_timeout": []Variant{
		CtxStream | CtxStreamServer | Take1},
}
