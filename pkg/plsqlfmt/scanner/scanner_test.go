package scanner

import (
	"testing"

	"github.com/plsqlfmt/plsqlfmt/pkg/plsqlfmt/source"
	"github.com/plsqlfmt/plsqlfmt/pkg/plsqlfmt/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanAll(t *testing.T, input string, preserving bool) []token.Token {
	t.Helper()
	sc := New(source.NewFromString(input))
	sc.SetPreserving(preserving)
	var out []token.Token
	for {
		tok := sc.Next()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return out
}

func TestScanKeywordIsCaseInsensitive(t *testing.T) {
	toks := scanAll(t, "select", false)
	require.Len(t, toks, 2)
	assert.Equal(t, token.Select, toks[0].Kind)
}

func TestScanIdentifier(t *testing.T) {
	toks := scanAll(t, "my_table1", false)
	require.Len(t, toks, 2)
	assert.Equal(t, token.Identifier, toks[0].Kind)
	assert.Equal(t, "my_table1", toks[0].Text)
}

func TestScanIdentifierTooLong(t *testing.T) {
	long := ""
	for i := 0; i < 31; i++ {
		long += "a"
	}
	toks := scanAll(t, long, false)
	assert.Equal(t, token.Error, toks[0].Kind)
	assert.Equal(t, "Identifier is too long", toks[0].Err)
}

func TestScanStringLiteral(t *testing.T) {
	toks := scanAll(t, "'hello world'", false)
	assert.Equal(t, token.StringLit, toks[0].Kind)
	assert.Equal(t, "'hello world'", toks[0].Text)
}

func TestScanCharLiteral(t *testing.T) {
	toks := scanAll(t, "'x'", false)
	assert.Equal(t, token.CharLit, toks[0].Kind)
}

func TestScanEscapedQuoteCharLiteral(t *testing.T) {
	toks := scanAll(t, "''''", false)
	assert.Equal(t, token.CharLit, toks[0].Kind)
	assert.Equal(t, "''''", toks[0].Text)
}

func TestScanUnterminatedStringIsError(t *testing.T) {
	toks := scanAll(t, "'abc", false)
	assert.Equal(t, token.Error, toks[0].Kind)
}

func TestScanQuotedIdentifier(t *testing.T) {
	toks := scanAll(t, `"My Table"`, false)
	assert.Equal(t, token.QuotedID, toks[0].Kind)
}

func TestScanQuotedIdentifierTooLong(t *testing.T) {
	toks := scanAll(t, `"`+string(make([]byte, 40))+`"`, false)
	assert.Equal(t, token.Error, toks[0].Kind)
}

func TestScanNumberIntegers(t *testing.T) {
	toks := scanAll(t, "123", false)
	assert.Equal(t, token.NumLit, toks[0].Kind)
	assert.Equal(t, "123", toks[0].Text)
}

func TestScanNumberDecimal(t *testing.T) {
	toks := scanAll(t, "3.14", false)
	assert.Equal(t, token.NumLit, toks[0].Kind)
	assert.Equal(t, "3.14", toks[0].Text)
}

func TestScanNumberLeadingDot(t *testing.T) {
	toks := scanAll(t, ".5", false)
	assert.Equal(t, token.NumLit, toks[0].Kind)
	assert.Equal(t, ".5", toks[0].Text)
}

func TestScanNumberExponent(t *testing.T) {
	toks := scanAll(t, "1.5e-10", false)
	assert.Equal(t, token.NumLit, toks[0].Kind)
	assert.Equal(t, "1.5e-10", toks[0].Text)
}

func TestScanNumberTrailingDotIsRangeNotDecimal(t *testing.T) {
	toks := scanAll(t, "1..10", false)
	require.GreaterOrEqual(t, len(toks), 3)
	assert.Equal(t, token.NumLit, toks[0].Kind)
	assert.Equal(t, "1", toks[0].Text)
	assert.Equal(t, token.RangeDots, toks[1].Kind)
	assert.Equal(t, token.NumLit, toks[2].Kind)
}

func TestScanInvalidNumber(t *testing.T) {
	toks := scanAll(t, "1e", false)
	assert.Equal(t, token.Error, toks[0].Kind)
}

func TestScanTwoCharOperators(t *testing.T) {
	cases := map[string]token.Kind{
		"**": token.Expo, "<>": token.NotEqual, "<=": token.LessEqual,
		">=": token.GreaterEqual, ":=": token.Assignment, "=>": token.Arrow,
		"||": token.Bars, "<<": token.LeftLabel, ">>": token.RightLabel,
		"!=": token.NotEqual, "~=": token.Tilde, "^=": token.Hat,
	}
	for in, want := range cases {
		toks := scanAll(t, in, false)
		assert.Equal(t, want, toks[0].Kind, "input %q", in)
	}
}

func TestScanBangNotFollowedByEqualsIsError(t *testing.T) {
	toks := scanAll(t, "!x", false)
	assert.Equal(t, token.Error, toks[0].Kind)
}

func TestScanLineComment(t *testing.T) {
	toks := scanAll(t, "-- a comment\nSELECT", true)
	assert.Equal(t, token.Remark, toks[0].Kind)
	assert.Equal(t, "-- a comment\n", toks[0].Text)
	assert.Equal(t, token.Select, toks[1].Kind)
	assert.Equal(t, token.EOF, toks[2].Kind)
}

func TestScanBlockComment(t *testing.T) {
	toks := scanAll(t, "/* hi */x", true)
	assert.Equal(t, token.Remark, toks[0].Kind)
	assert.Equal(t, "/* hi */", toks[0].Text)
}

func TestScanUnterminatedBlockCommentIsError(t *testing.T) {
	toks := scanAll(t, "/* hi", true)
	assert.Equal(t, token.Error, toks[0].Kind)
}

func TestNonPreservingModeSkipsWhitespaceAndComments(t *testing.T) {
	toks := scanAll(t, "  -- c\n  x", false)
	require.Len(t, toks, 2)
	assert.Equal(t, token.Identifier, toks[0].Kind)
	assert.Equal(t, token.EOF, toks[1].Kind)
}

func TestTokenConservationNonPreserving(t *testing.T) {
	input := "select a , b  from t"
	toks := scanAll(t, input, false)
	var got string
	for _, tk := range toks {
		if tk.Kind == token.EOF {
			continue
		}
		got += tk.Text
	}
	assert.Equal(t, "selecta,bfromt", got)
}

func TestRoundTripPreservingMode(t *testing.T) {
	input := "select a , b  from t"
	toks := scanAll(t, input, true)
	var got string
	for _, tk := range toks {
		if tk.Kind == token.EOF {
			continue
		}
		got += tk.Text
	}
	assert.Equal(t, input, got)
}

func TestPositionsAreOneBasedAtFirstByte(t *testing.T) {
	toks := scanAll(t, "a\nbb", false)
	assert.Equal(t, token.Position{Line: 1, Col: 1}, toks[0].Pos)
	assert.Equal(t, token.Position{Line: 2, Col: 1}, toks[1].Pos)
}
