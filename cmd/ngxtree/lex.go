package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/sourcegraph/jsonrpc2"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/ergongate/ngxtree/ast"
	"github.com/ergongate/ngxtree/lexer"
	"github.com/ergongate/ngxtree/luaext"
)

func tokenizeFile(path string) ([]ast.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reg := lexer.NewRegistry()
	luaext.Register(reg, nil)
	return lexer.Tokenize(path, f, reg)
}

func lexCommand(lg *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "lex",
		Usage: "write a file's raw token sequence as JSON",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "line-numbers"},
		},
		Action: func(c *cli.Context) error {
			path := c.Args().First()
			if path == "" {
				return newUsageError("lex: missing PATH")
			}
			tokens, err := tokenizeFile(path)
			if err != nil {
				if _, ok := err.(ast.Located); ok {
					return err
				}
				return newIOError(err)
			}
			if !c.Bool("line-numbers") {
				values := make([]string, len(tokens))
				for i, t := range tokens {
					values[i] = t.Value
				}
				return json.NewEncoder(os.Stdout).Encode(values)
			}
			pairs := make([][2]interface{}, len(tokens))
			for i, t := range tokens {
				pairs[i] = [2]interface{}{t.Value, t.Line}
			}
			return json.NewEncoder(os.Stdout).Encode(pairs)
		},
	}
}

// lexRequest/lexResult are the wire shapes for the lex.tokenize JSON-RPC
// method the lex-server subcommand exposes over stdio.
type lexRequest struct {
	Path string `json:"path"`
}

type lexResult struct {
	Tokens []ast.Token `json:"tokens"`
}

type lexHandler struct{ lg *zap.Logger }

func (h lexHandler) Handle(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	if req.Method != "lex.tokenize" {
		conn.ReplyWithError(ctx, req.ID, &jsonrpc2.Error{Code: jsonrpc2.CodeMethodNotFound, Message: fmt.Sprintf("unknown method %q", req.Method)})
		return
	}
	var params lexRequest
	if req.Params != nil {
		if err := json.Unmarshal(*req.Params, &params); err != nil {
			conn.ReplyWithError(ctx, req.ID, &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidParams, Message: err.Error()})
			return
		}
	}
	tokens, err := tokenizeFile(params.Path)
	if err != nil {
		conn.ReplyWithError(ctx, req.ID, &jsonrpc2.Error{Code: jsonrpc2.CodeInternalError, Message: err.Error()})
		return
	}
	if err := conn.Reply(ctx, req.ID, lexResult{Tokens: tokens}); err != nil {
		h.lg.Warn("lex-server: reply failed", zap.Error(err))
	}
}

type stdioStream struct {
	in  *bufio.Reader
	out *bufio.Writer
}

func (s stdioStream) Read(p []byte) (int, error)  { return s.in.Read(p) }
func (s stdioStream) Write(p []byte) (int, error) { n, err := s.out.Write(p); s.out.Flush(); return n, err }
func (s stdioStream) Close() error                { return nil }

func lexServerCommand(lg *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "lex-server",
		Usage: "serve lex.tokenize as JSON-RPC 2.0 over stdio for editor tooling",
		Action: func(c *cli.Context) error {
			stream := stdioStream{in: bufio.NewReader(os.Stdin), out: bufio.NewWriter(os.Stdout)}
			ctx := context.Background()
			conn := jsonrpc2.NewConn(ctx, jsonrpc2.NewBufferedStream(stream, jsonrpc2.VSCodeObjectCodec{}), lexHandler{lg: lg})
			<-conn.DisconnectNotify()
			return nil
		},
	}
}
