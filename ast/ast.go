// Package ast defines the syntax tree produced by the parser and consumed
// by the builder: tokens, directives, and the top-level parse Payload.
package ast

import "fmt"

// Token is a single lexical unit of an nginx configuration file.
type Token struct {
	Value string `json:"value"`
	Line  int    `json:"line"`
	Quote bool   `json:"quote"`

	// HadLeadingSpace records whether whitespace separated this token from
	// the one before it in the source. It is not carried into Directive and
	// the builder does not consult it: builder output is always pretty-
	// printed or compact, never a byte-exact copy of the source spacing.
	HadLeadingSpace bool `json:"-"`
}

// Directive is a single statement in the configuration tree: a name,
// optional arguments, and either a terminating ";" or a nested block.
//
// A comment is represented as a Directive whose Name is "#"; its text is
// carried in Comment and Args is always empty.
type Directive struct {
	Name string   `json:"directive"`
	Line int      `json:"line"`
	Args []string `json:"args"`

	// Block is present iff the directive is a block-opener, even when the
	// block is empty ("events {}") — no omitempty, since encoding/json
	// treats a zero-length slice the same as nil and would otherwise drop
	// an empty-but-present block from the wire Payload entirely.
	Block []*Directive `json:"block"`

	Comment string `json:"comment,omitempty"`

	// ArgsQuoted records, per argument, whether the source token it came
	// from was quoted. It is a side-channel for the builder's
	// quote-policy tiebreaker (spec: "preserve the original quoted
	// attribute as a tiebreaker") and is never part of the wire format.
	ArgsQuoted []bool `json:"-"`

	// File/Includes are populated only on a resolved, expanded include
	// directive. Includes holds indices into the top-level Payload.Config
	// slice identifying the files this include expanded to.
	File     string `json:"file,omitempty"`
	Includes []int  `json:"includes,omitempty"`
}

// IsComment reports whether d represents a preserved comment token rather
// than a directive statement.
func (d *Directive) IsComment() bool { return d.Name == "#" }

// IsBlock reports whether d opens a nested block (possibly empty).
func (d *Directive) IsBlock() bool { return d.Block != nil }

// ParseError describes a single recoverable or fatal error encountered
// while lexing or parsing one file.
type ParseError struct {
	File string `json:"file"`
	Line int    `json:"line"`
	Err  string `json:"error"`
}

func (e *ParseError) Error() string { return fmt.Sprintf("%s:%d %s", e.File, e.Line, e.Err) }

// FileConfig is the parse result for a single source file.
type FileConfig struct {
	File   string        `json:"file"`
	Status string        `json:"status"`
	Errors []*ParseError `json:"errors"`
	Parsed []*Directive  `json:"parsed"`
}

// Payload is the top-level result of a parse session, spanning the root
// file and every file it transitively includes.
type Payload struct {
	Status string        `json:"status"`
	Errors []*ParseError `json:"errors"`
	Config []*FileConfig `json:"config"`
}

// StatusOK and StatusFailed are the two legal values of Payload.Status and
// FileConfig.Status.
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// NewPayload returns an empty, successful Payload ready to be populated.
func NewPayload() *Payload {
	return &Payload{Status: StatusOK, Errors: []*ParseError{}, Config: []*FileConfig{}}
}

// AddError records err against both the Payload and, if given, the file it
// occurred in, flipping both statuses to failed.
func (p *Payload) AddError(fc *FileConfig, err *ParseError) {
	p.Status = StatusFailed
	p.Errors = append(p.Errors, err)
	if fc != nil {
		fc.Status = StatusFailed
		fc.Errors = append(fc.Errors, err)
	}
}
