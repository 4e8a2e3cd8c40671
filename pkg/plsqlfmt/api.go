package plsqlfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/plsqlfmt/plsqlfmt/pkg/plsqlfmt/format"
	"github.com/plsqlfmt/plsqlfmt/pkg/plsqlfmt/keyword"
	"github.com/plsqlfmt/plsqlfmt/pkg/plsqlfmt/logicalline"
	"github.com/plsqlfmt/plsqlfmt/pkg/plsqlfmt/scanner"
	"github.com/plsqlfmt/plsqlfmt/pkg/plsqlfmt/source"
	"github.com/plsqlfmt/plsqlfmt/pkg/plsqlfmt/token"
)

// Format reads PL/SQL source from r and writes its beautified form to
// w: tokens grouped into logical lines, each laid out by the syntax
// editor and written with consistent spacing and indentation. An
// optional Config overrides the defaults from NewDefaultConfig;
// passing more than one panics.
func Format(r io.Reader, w io.Writer, cfg ...*Config) error {
	c := configOf(cfg)

	sc := scanner.New(source.New(r))
	sc.SetPreserving(c.Preserving)
	asm := logicalline.New(sc)
	f := format.NewFormatter()

	for {
		line := asm.Next()
		toks := line.Tokens
		if n := len(toks); n > 0 && toks[n-1].Kind == token.EOF {
			toks = toks[:n-1]
		}
		if len(toks) > 0 {
			if _, err := io.WriteString(w, f.FormatLine(toks)); err != nil {
				return err
			}
		}
		if n := len(line.Tokens); n > 0 && line.Tokens[n-1].Kind == token.EOF {
			return nil
		}
	}
}

// FormatString is a convenience wrapper around Format for callers
// already holding the source in memory.
func FormatString(src string, cfg ...*Config) (string, error) {
	var sb strings.Builder
	if err := Format(strings.NewReader(src), &sb, cfg...); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func configOf(cfg []*Config) *Config {
	if len(cfg) > 1 {
		panic("plsqlfmt: cannot pass more than one Config")
	}
	if len(cfg) == 1 {
		return cfg[0]
	}
	return NewDefaultConfig()
}

// Capitalize re-emits r's tokens verbatim except for case: every
// reserved word is upper-cased via the keyword table's reverse lookup
// and every plain identifier is lower-cased. It scans in preserving
// mode so whitespace and comments pass through untouched, making it
// idempotent: running it twice produces the same text as running it
// once.
func Capitalize(r io.Reader, w io.Writer) error {
	sc := scanner.New(source.New(r))
	sc.SetPreserving(true)

	for {
		t := sc.Next()
		if t.Kind == token.EOF {
			return nil
		}
		text := t.Text
		switch {
		case token.IsKeyword(t.Kind):
			text = keyword.Name(t.Kind)
		case t.Kind == token.Identifier:
			text = strings.ToLower(t.Text)
		}
		if _, err := io.WriteString(w, text); err != nil {
			return err
		}
	}
}

// Count scans r in non-preserving mode and returns the number of
// tokens produced, not counting the terminating EOF.
func Count(r io.Reader) (int, error) {
	sc := scanner.New(source.New(r))
	sc.SetPreserving(false)

	n := 0
	for {
		t := sc.Next()
		if t.Kind == token.EOF {
			return n, nil
		}
		if t.Kind == token.Error {
			return n, fmt.Errorf("%d:%d: %s", t.Pos.Line, t.Pos.Col, t.Err)
		}
		n++
	}
}

// CheckNulls scans r in non-preserving mode and reports, to w with
// line and column, every place an equals or not-equals sign sits next
// to a NULL literal on either side — a comparison that can never be
// true in PL/SQL, where NULL must be tested with IS [NOT] NULL
// instead. It reports whether any were found, so the caller can choose
// a non-zero exit status without treating "none found" as an error.
func CheckNulls(r io.Reader, w io.Writer) (found bool, err error) {
	sc := scanner.New(source.New(r))
	sc.SetPreserving(false)

	var prev token.Token
	havePrev := false

	report := func(t token.Token, msg string) error {
		found = true
		_, err := fmt.Fprintf(w, "%d:%d: %s\n", t.Pos.Line, t.Pos.Col, msg)
		return err
	}

	for {
		t := sc.Next()
		if t.Kind == token.EOF {
			return found, nil
		}

		if havePrev {
			switch {
			case prev.Kind == token.Equals && t.Kind == token.Null:
				if err := report(t, "NULL following an equals sign"); err != nil {
					return found, err
				}
			case prev.Kind == token.Null && t.Kind == token.Equals:
				if err := report(t, "Equals sign following NULL"); err != nil {
					return found, err
				}
			case prev.Kind == token.NotEqual && t.Kind == token.Null:
				if err := report(t, "NULL following a not-equals sign"); err != nil {
					return found, err
				}
			case prev.Kind == token.Null && t.Kind == token.NotEqual:
				if err := report(t, "Not-equals sign following NULL"); err != nil {
					return found, err
				}
			}
		}

		prev, havePrev = t, true
	}
}

// CheckLiterals scans r in non-preserving mode and reports, to w with
// line and column, every string or character literal that contains a
// line feed — almost always a missing closing quote rather than an
// intentional embedded newline. It reports whether any were found, so
// the caller can choose a non-zero exit status without treating "none
// found" as an error.
func CheckLiterals(r io.Reader, w io.Writer) (found bool, err error) {
	sc := scanner.New(source.New(r))
	sc.SetPreserving(false)

	for {
		t := sc.Next()
		if t.Kind == token.EOF {
			return found, nil
		}

		var msg string
		switch {
		case t.Kind == token.StringLit && strings.ContainsRune(t.Text, '\n'):
			msg = "String literal containing line feed"
		case t.Kind == token.CharLit && len(t.Text) > 1 && t.Text[1] == '\n':
			msg = "Character literal containing line feed"
		default:
			continue
		}

		found = true
		if _, err := fmt.Fprintf(w, "%d:%d: %s\n", t.Pos.Line, t.Pos.Col, msg); err != nil {
			return found, err
		}
	}
}
