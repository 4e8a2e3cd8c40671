package format

import (
	"strings"

	"github.com/plsqlfmt/plsqlfmt/pkg/plsqlfmt/token"
)

// Formatter turns a stream of logical lines into indented PL/SQL text.
// It owns the two pieces of state that persist across lines: a
// procedural Context (IF/LOOP/BEGIN-style nesting) and an Editor (the
// SQL statement machines and their syntax-level stack).
type Formatter struct {
	ctx    *Context
	editor *Editor
	indent string
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithIndentUnit sets the text repeated once per indentation level. The
// default is two spaces.
func WithIndentUnit(unit string) Option {
	return func(f *Formatter) { f.indent = unit }
}

// NewFormatter returns a Formatter ready to format from the top of a
// file.
func NewFormatter(opts ...Option) *Formatter {
	f := &Formatter{
		ctx:    NewContext(),
		editor: NewEditor(),
		indent: "  ",
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FormatLine renders one logical line (as produced by the token
// assembler) and advances the Formatter's indentation state for the
// line that follows it.
func (f *Formatter) FormatLine(tokens []token.Token) string {
	if len(tokens) == 0 {
		return ""
	}

	f.applyNeedUnindent(tokens[0].Kind)

	anns := make([]Annotated, len(tokens))
	for i, tok := range tokens {
		ann, exited := f.editor.Edit(tok)
		if exited >= 0 {
			f.ctx.DeferUnindent(exited)
		}
		anns[i] = ann
	}

	var sb strings.Builder
	render(&sb, f.ctx, f.indent, anns)

	f.applyNeedIndent(tokens)
	f.ctx.ApplyDeferred()

	return sb.String()
}

// applyNeedUnindent pops the procedural indent-origin stack before a
// line's tokens are edited, when that line's first token closes a
// block (END, ELSE, ELSIF, EXCEPTION, WHEN, INTO). A block opened by
// WHEN that is closed by END unindents twice, once for the WHEN clause
// and once for the CASE/exception block it belonged to.
func (f *Formatter) applyNeedUnindent(first token.Kind) {
	if !token.NeedUnindent(first) {
		return
	}
	origin := f.ctx.Unindent()
	if origin == token.When && first == token.End {
		f.ctx.Unindent()
	}
}

// applyNeedIndent pushes a new procedural indent level after a line's
// first token opens a block (IF, LOOP, BEGIN...). FOR is the one
// Sometimes case: a procedural "FOR i IN ... LOOP" opens a block, but
// "FOR UPDATE" is the tail of a SELECT already indented by its own
// statement machine, so a FOR line that also contains UPDATE is left
// alone.
func (f *Formatter) applyNeedIndent(tokens []token.Token) {
	first := tokens[0].Kind
	switch token.NeedIndent(first) {
	case token.Always:
		f.ctx.Indent(first)
	case token.Sometimes:
		if sometimesIndent(tokens) {
			f.ctx.Indent(first)
		}
	}
}

func sometimesIndent(tokens []token.Token) bool {
	for _, t := range tokens {
		if t.Kind == token.Update {
			return false
		}
	}
	return true
}
