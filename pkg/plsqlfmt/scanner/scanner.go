// Package scanner converts a character stream into PL/SQL tokens: word
// recognition against the keyword table, quoted literals, the numeric
// literal sub-FSM, comments, and punctuation with one-character
// look-ahead for two-character operators.
package scanner

import (
	"strings"

	"github.com/plsqlfmt/plsqlfmt/pkg/plsqlfmt/keyword"
	"github.com/plsqlfmt/plsqlfmt/pkg/plsqlfmt/token"
)

// Cursor is the character stream the scanner consumes. A concrete
// implementation lives in package source.
type Cursor interface {
	Getc() int
	Ungetc(c int)
	Position() (line, col int)
}

const eof = -1

// maxWordLen is the longest identifier or keyword the scanner accepts
// before reporting "Identifier is too long".
const maxWordLen = 30

// maxQuotedIDSize is the longest double-quoted identifier, including
// both delimiting quotes, before reporting "Quoted identifier is too
// long".
const maxQuotedIDSize = 32

// Scanner produces one token per call to Next.
type Scanner struct {
	s          Cursor
	preserving bool
}

// New returns a Scanner in preserving mode (the default): whitespace and
// comments are returned as tokens rather than silently discarded.
func New(s Cursor) *Scanner {
	return &Scanner{s: s, preserving: true}
}

// SetPreserving switches between preserving and non-preserving mode and
// returns the previous setting, mirroring the original's
// pls_preserve/pls_nopreserve pair.
func (sc *Scanner) SetPreserving(p bool) bool {
	prev := sc.preserving
	sc.preserving = p
	return prev
}

// Next returns the next token. In non-preserving mode, whitespace and
// comment tokens are never returned; Next keeps scanning until it finds
// something else (or EOF).
func (sc *Scanner) Next() token.Token {
	for {
		t := sc.next()
		if sc.preserving || (t.Kind != token.Whitespace && t.Kind != token.Remark) {
			return t
		}
	}
}

func (sc *Scanner) next() token.Token {
	c := sc.s.Getc()
	pos := sc.posOf(c)

	switch {
	case c == eof:
		return token.Token{Kind: token.EOF, Pos: pos}
	case isSpace(c):
		return sc.scanWhitespace(pos, c)
	case isAlpha(c):
		return sc.scanWord(pos, c)
	case isDigit(c):
		return sc.scanNumber(pos, c)
	case isPunct(c):
		return sc.scanPunct(pos, c)
	default:
		return token.Token{Kind: token.Error, Pos: pos, Err: "Unexpected character"}
	}
}

// posOf reports the position most recently consumed, which is the
// position of c since the caller just read it.
func (sc *Scanner) posOf(c int) token.Position {
	l, col := sc.s.Position()
	return token.Position{Line: l, Col: col}
}

func isSpace(c int) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func isAlpha(c int) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c int) bool {
	return c >= '0' && c <= '9'
}

func isWordChar(c int) bool {
	return isAlpha(c) || isDigit(c) || c == '_' || c == '$' || c == '#'
}

func isPunct(c int) bool {
	switch c {
	case '+', '-', '*', '/', '=', '<', '>', '(', ')', ';', '%', ',', '.',
		'@', ':', '\'', '"', '!', '~', '^', '|':
		return true
	default:
		return false
	}
}

func (sc *Scanner) scanWhitespace(pos token.Position, first int) token.Token {
	var b strings.Builder
	b.WriteByte(byte(first))
	for {
		c := sc.s.Getc()
		if c == eof || !isSpace(c) {
			if c != eof {
				sc.s.Ungetc(c)
			}
			break
		}
		b.WriteByte(byte(c))
	}
	return token.Token{Kind: token.Whitespace, Pos: pos, Text: b.String()}
}

func (sc *Scanner) scanWord(pos token.Position, first int) token.Token {
	var b strings.Builder
	b.WriteByte(byte(first))
	for {
		c := sc.s.Getc()
		if c == eof || !isWordChar(c) {
			if c != eof {
				sc.s.Ungetc(c)
			}
			break
		}
		b.WriteByte(byte(c))
	}
	text := b.String()
	if len(text) > maxWordLen {
		return token.Token{Kind: token.Error, Pos: pos, Text: text, Err: "Identifier is too long"}
	}
	return token.Token{Kind: keyword.Lookup(text), Pos: pos, Text: text}
}

func (sc *Scanner) scanPunct(pos token.Position, c int) token.Token {
	switch c {
	case '+':
		return tok(token.Plus, pos, "+")
	case '(':
		return tok(token.LParens, pos, "(")
	case ')':
		return tok(token.RParens, pos, ")")
	case ';':
		return tok(token.Semicolon, pos, ";")
	case '%':
		return tok(token.Percent, pos, "%")
	case ',':
		return tok(token.Comma, pos, ",")
	case '@':
		return tok(token.AtSign, pos, "@")
	case '\'':
		return sc.scanSingleQuoted(pos)
	case '"':
		return sc.scanDoubleQuoted(pos)
	case '*':
		if n := sc.s.Getc(); n == '*' {
			return tok(token.Expo, pos, "**")
		} else if n != eof {
			sc.s.Ungetc(n)
		}
		return tok(token.Star, pos, "*")
	case '-':
		if n := sc.s.Getc(); n == '-' {
			return sc.scanLineComment(pos)
		} else if n != eof {
			sc.s.Ungetc(n)
		}
		return tok(token.MinusSign, pos, "-")
	case '<':
		n := sc.s.Getc()
		switch n {
		case '>':
			return tok(token.NotEqual, pos, "<>")
		case '=':
			return tok(token.LessEqual, pos, "<=")
		case '<':
			return tok(token.LeftLabel, pos, "<<")
		default:
			if n != eof {
				sc.s.Ungetc(n)
			}
			return tok(token.Less, pos, "<")
		}
	case '!':
		if n := sc.s.Getc(); n == '=' {
			return tok(token.NotEqual, pos, "!=")
		} else {
			if n != eof {
				sc.s.Ungetc(n)
			}
			return token.Token{Kind: token.Error, Pos: pos, Err: "'!' not followed by '='"}
		}
	case '~':
		if n := sc.s.Getc(); n == '=' {
			return tok(token.Tilde, pos, "~=")
		} else {
			if n != eof {
				sc.s.Ungetc(n)
			}
			return token.Token{Kind: token.Error, Pos: pos, Err: "'~' not followed by '='"}
		}
	case '^':
		if n := sc.s.Getc(); n == '=' {
			return tok(token.Hat, pos, "^=")
		} else {
			if n != eof {
				sc.s.Ungetc(n)
			}
			return token.Token{Kind: token.Error, Pos: pos, Err: "'^' not followed by '='"}
		}
	case '>':
		n := sc.s.Getc()
		switch n {
		case '=':
			return tok(token.GreaterEqual, pos, ">=")
		case '>':
			return tok(token.RightLabel, pos, ">>")
		default:
			if n != eof {
				sc.s.Ungetc(n)
			}
			return tok(token.Greater, pos, ">")
		}
	case ':':
		if n := sc.s.Getc(); n == '=' {
			return tok(token.Assignment, pos, ":=")
		} else {
			if n != eof {
				sc.s.Ungetc(n)
			}
			return tok(token.Colon, pos, ":")
		}
	case '=':
		if n := sc.s.Getc(); n == '>' {
			return tok(token.Arrow, pos, "=>")
		} else {
			if n != eof {
				sc.s.Ungetc(n)
			}
			return tok(token.Equals, pos, "=")
		}
	case '.':
		n := sc.s.Getc()
		switch {
		case n == '.':
			return tok(token.RangeDots, pos, "..")
		case n != eof && isDigit(n):
			sc.s.Ungetc(n)
			sc.s.Ungetc('.')
			c2 := sc.s.Getc()
			return sc.scanNumber(pos, c2)
		default:
			if n != eof {
				sc.s.Ungetc(n)
			}
			return tok(token.Dot, pos, ".")
		}
	case '|':
		if n := sc.s.Getc(); n == '|' {
			return tok(token.Bars, pos, "||")
		} else {
			if n != eof {
				sc.s.Ungetc(n)
			}
			return token.Token{Kind: token.Error, Pos: pos, Err: "'|' not followed by '|'"}
		}
	case '/':
		if n := sc.s.Getc(); n == '*' {
			return sc.scanBlockComment(pos)
		} else if n != eof {
			sc.s.Ungetc(n)
		}
		return tok(token.Virgule, pos, "/")
	default:
		return token.Token{Kind: token.Error, Pos: pos, Err: "Unrecognized punctuation character"}
	}
}

func tok(k token.Kind, pos token.Position, text string) token.Token {
	return token.Token{Kind: k, Pos: pos, Text: text}
}

// scanSingleQuoted handles both string and character literals. A pair
// of adjacent single quotes inside the literal is escaped-quote text,
// not a terminator.
func (sc *Scanner) scanSingleQuoted(pos token.Position) token.Token {
	var b strings.Builder
	b.WriteByte('\'')
	afterQuote := false

	for {
		c := sc.s.Getc()
		if c == eof {
			if afterQuote {
				break
			}
			return token.Token{Kind: token.Error, Pos: pos, Text: b.String(), Err: "Unterminated string or character literal"}
		}
		if afterQuote {
			if c == '\'' {
				b.WriteByte('\'')
				afterQuote = false
				continue
			}
			sc.s.Ungetc(c)
			break
		}
		b.WriteByte(byte(c))
		if c == '\'' {
			afterQuote = true
		}
	}

	text := b.String()
	kind := token.StringLit
	if len(text) == 3 {
		kind = token.CharLit
	} else if len(text) == 4 && text[1] == '\'' && text[2] == '\'' {
		kind = token.CharLit
	}
	return token.Token{Kind: kind, Pos: pos, Text: text}
}

func (sc *Scanner) scanDoubleQuoted(pos token.Position) token.Token {
	var b strings.Builder
	b.WriteByte('"')
	for {
		c := sc.s.Getc()
		if c == eof {
			return token.Token{Kind: token.Error, Pos: pos, Text: b.String(), Err: "Unterminated quoted identifier"}
		}
		b.WriteByte(byte(c))
		if c == '"' {
			break
		}
	}
	text := b.String()
	if len(text) > maxQuotedIDSize {
		return token.Token{Kind: token.Error, Pos: pos, Text: text, Err: "Quoted identifier is too long"}
	}
	return token.Token{Kind: token.QuotedID, Pos: pos, Text: text}
}

// scanLineComment handles the "--" style comment, consuming through and
// including the terminating newline (or EOF, if the comment is the last
// thing in the file).
func (sc *Scanner) scanLineComment(pos token.Position) token.Token {
	var b strings.Builder
	b.WriteString("--")
	for {
		c := sc.s.Getc()
		if c == eof {
			break
		}
		b.WriteByte(byte(c))
		if c == '\n' {
			break
		}
	}
	return token.Token{Kind: token.Remark, Pos: pos, Text: b.String()}
}

func (sc *Scanner) scanBlockComment(pos token.Position) token.Token {
	var b strings.Builder
	b.WriteString("/*")
	afterAsterisk := false
	for {
		c := sc.s.Getc()
		if c == eof {
			sc.s.Ungetc(eof)
			return token.Token{Kind: token.Error, Pos: pos, Text: b.String(), Err: "Unterminated C-style comment"}
		}
		b.WriteByte(byte(c))
		if afterAsterisk && c == '/' {
			break
		}
		afterAsterisk = c == '*'
	}
	return token.Token{Kind: token.Remark, Pos: pos, Text: b.String()}
}
