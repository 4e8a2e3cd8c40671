// Package logicalline groups a stream of tokens into logical lines: runs
// of tokens that the formatter will lay out together, breaking only
// where a token is always final (end of input, a comment), usually
// final (a semicolon, THEN, ELSE...), or where the following token is
// always or sometimes the start of a new logical line.
package logicalline

import (
	"github.com/plsqlfmt/plsqlfmt/pkg/plsqlfmt/token"
)

// Source is anything that can hand back one token at a time. A scanner
// satisfies this directly.
type Source interface {
	Next() token.Token
}

// Line is one logical line: a run of tokens that belong together.
type Line struct {
	Tokens []token.Token
}

// Assembler pulls tokens from a Source and groups them into Lines. It
// keeps a small pushback stack of its own so that it can look one token
// ahead without consuming it, mirroring the original's token pushback
// stack built on top of the scanner.
type Assembler struct {
	src      Source
	pushback []token.Token
}

// New returns an Assembler reading from src.
func New(src Source) *Assembler {
	return &Assembler{src: src}
}

// Next assembles and returns the next logical line. It returns an empty
// Line with a single EOF token once the source is exhausted; callers
// should stop calling Next after seeing a line whose last token is
// token.EOF.
func (a *Assembler) Next() Line {
	var line Line

	for {
		t := a.nextToken()
		finality := token.IsFinal(t.Kind)
		line.Tokens = append(line.Tokens, t)

		if t.Kind == token.EOF {
			return line
		}
		if finality == token.Always {
			return line
		}

		next := a.lookAhead()

		if next.Kind == token.Remark && a.beginWithComment(t, next) {
			return line
		}

		firstness := token.IsFirst(next.Kind)

		switch {
		case firstness == token.Always:
			return line
		case finality == token.Usually:
			// End of the logical line, unless the next token is EOF or
			// a comment, in which case we fold it into this line.
			if next.Kind == token.EOF || next.Kind == token.Remark {
				continue
			}
			return line
		case finality == token.Sometimes:
			if a.sometimesFinal(t.Kind, line.Tokens, next.Kind) {
				return line
			}
		case firstness == token.Sometimes:
			if a.sometimesFirst(t.Kind, next.Kind) {
				return line
			}
		}
	}
}

// nextToken returns the next non-whitespace token, consulting the
// pushback stack first.
func (a *Assembler) nextToken() token.Token {
	for {
		var t token.Token
		if n := len(a.pushback); n > 0 {
			t = a.pushback[n-1]
			a.pushback = a.pushback[:n-1]
		} else {
			t = a.src.Next()
		}
		if t.Kind == token.Whitespace {
			continue
		}
		return t
	}
}

// lookAhead returns the next token without consuming it.
func (a *Assembler) lookAhead() token.Token {
	t := a.nextToken()
	a.pushback = append(a.pushback, t)
	return t
}

// beginWithComment reports whether a trailing comment starts on a line
// of its own, in which case it belongs to the next logical line rather
// than trailing this one.
func (a *Assembler) beginWithComment(prev, comment token.Token) bool {
	return prev.Pos.Line != comment.Pos.Line
}

// sometimesFinal resolves the Sometimes case of IsFinal by looking at
// the current line's first token and the token that follows.
func (a *Assembler) sometimesFinal(kind token.Kind, line []token.Token, next token.Kind) bool {
	switch kind {
	case token.Is:
		return next != token.Not && next != token.Null
	case token.Loop:
		if len(line) == 0 {
			return false
		}
		first := line[0].Kind
		return first == token.For || first == token.Loop
	case token.Select:
		return next != token.All && next != token.Distinct
	case token.Union:
		return next != token.All
	default:
		return false
	}
}

// sometimesFirst resolves the Sometimes case of IsFirst.
func (a *Assembler) sometimesFirst(kind token.Kind, next token.Kind) bool {
	switch next {
	case token.Into:
		return kind != token.Insert
	default:
		return false
	}
}
