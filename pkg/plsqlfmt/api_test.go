package plsqlfmt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatStringIndentsSelect(t *testing.T) {
	out, err := FormatString("select a from b;")
	require.NoError(t, err)
	assert.Contains(t, out, "select")
	assert.Contains(t, out, "from")
	assert.Contains(t, out, "  a")
}

func TestFormatNonPreservingConfigDropsComments(t *testing.T) {
	out, err := FormatString("select a -- trailing remark\nfrom b;", &Config{Preserving: false})
	require.NoError(t, err)
	assert.NotContains(t, out, "trailing remark")
	assert.Contains(t, out, "select")
	assert.Contains(t, out, "from")
}

func TestCapitalizeUppercasesKeywordsAndLowersIdentifiers(t *testing.T) {
	var sb strings.Builder
	err := Capitalize(strings.NewReader("SeLeCt A from B;"), &sb)
	require.NoError(t, err)
	out := sb.String()
	assert.Contains(t, out, "SELECT")
	assert.Contains(t, out, "FROM")
	assert.Contains(t, out, "a")
	assert.Contains(t, out, "b")
	assert.NotContains(t, out, "SeLeCt")
}

func TestCapitalizeIsIdempotent(t *testing.T) {
	input := "SeLeCt A, b from C where D = 1;"
	var first strings.Builder
	require.NoError(t, Capitalize(strings.NewReader(input), &first))

	var second strings.Builder
	require.NoError(t, Capitalize(strings.NewReader(first.String()), &second))

	assert.Equal(t, first.String(), second.String())
}

func TestCapitalizePreservesCommentsAndWhitespace(t *testing.T) {
	var sb strings.Builder
	err := Capitalize(strings.NewReader("select a -- a comment\nfrom b;"), &sb)
	require.NoError(t, err)
	assert.Contains(t, sb.String(), "-- a comment")
	assert.Contains(t, sb.String(), "\n")
}

func TestCountCountsNonEOFTokens(t *testing.T) {
	n, err := Count(strings.NewReader("select a from b;"))
	require.NoError(t, err)
	// select, a, from, b, ;
	assert.Equal(t, 5, n)
}

func TestCountSkipsWhitespaceAndComments(t *testing.T) {
	n, err := Count(strings.NewReader("select a -- comment\nfrom b;"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestCheckNullsFindsEqualsNull(t *testing.T) {
	var sb strings.Builder
	found, err := CheckNulls(strings.NewReader("select a from b where c = null;"), &sb)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Contains(t, sb.String(), "NULL following an equals sign")
}

func TestCheckNullsFindsNullEquals(t *testing.T) {
	var sb strings.Builder
	found, err := CheckNulls(strings.NewReader("select a from b where null = c;"), &sb)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Contains(t, sb.String(), "Equals sign following NULL")
}

func TestCheckNullsFindsNotEqualsVariants(t *testing.T) {
	var sb strings.Builder
	found, err := CheckNulls(strings.NewReader("select a from b where c != null and null != d;"), &sb)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Contains(t, sb.String(), "NULL following a not-equals sign")
	assert.Contains(t, sb.String(), "Not-equals sign following NULL")
}

func TestCheckNullsCleanInputFindsNothing(t *testing.T) {
	var sb strings.Builder
	found, err := CheckNulls(strings.NewReader("select a from b where c is null;"), &sb)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, sb.String())
}

func TestCheckLiteralsFindsStringLiteralLineFeed(t *testing.T) {
	var sb strings.Builder
	found, err := CheckLiterals(strings.NewReader("select 'a\nb' from c;"), &sb)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Contains(t, sb.String(), "String literal containing line feed")
}

func TestCheckLiteralsFindsCharLiteralLineFeed(t *testing.T) {
	var sb strings.Builder
	found, err := CheckLiterals(strings.NewReader("x := '\n';"), &sb)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Contains(t, sb.String(), "Character literal containing line feed")
}

func TestCheckLiteralsCleanInputFindsNothing(t *testing.T) {
	var sb strings.Builder
	found, err := CheckLiterals(strings.NewReader("select 'a' from b where c = 'd';"), &sb)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, sb.String())
}
