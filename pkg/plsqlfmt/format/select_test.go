package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatSimpleSelectIndentsColumnList(t *testing.T) {
	out := formatAll(t, "select a, b from c;")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.Equal(t, "select", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "  "), "column list should be indented: %q", lines[1])
	assert.Contains(t, out, "from")
}

func TestFormatWhereClauseIndents(t *testing.T) {
	out := formatAll(t, "select a from b where c = 1;")
	assert.Contains(t, out, "where")
	idx := strings.Index(out, "where")
	rest := out[idx+len("where"):]
	nextLine := strings.SplitN(strings.TrimPrefix(rest, "\n"), "\n", 2)[0]
	assert.True(t, strings.HasPrefix(nextLine, "  "), "where predicate should be indented: %q", nextLine)
}

func TestFormatUnionKeepsSecondSelectOnOwnLine(t *testing.T) {
	out := formatAll(t, "select a from b union select a from c;")
	assert.Contains(t, out, "union")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	found := false
	for i, l := range lines {
		if strings.TrimSpace(l) == "union" && i+1 < len(lines) {
			assert.Equal(t, "select", strings.TrimSpace(lines[i+1]))
			found = true
		}
	}
	assert.True(t, found, "union should be followed by a fresh select line")
}

func TestFormatCustomIndentUnit(t *testing.T) {
	out := formatAll(t, "select a from b;", WithIndentUnit("\t"))
	assert.Contains(t, out, "\ta")
}

func TestFormatSelectForUpdateDoesNotOpenProceduralIndent(t *testing.T) {
	out := formatAll(t, "select a from b for update of a nowait;")
	assert.Contains(t, out, "for update")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	for _, l := range lines {
		assert.False(t, strings.HasPrefix(l, "    "), "FOR UPDATE must not open a nested procedural indent: %q", l)
	}
}

func TestFormatSubqueryInFromListRestoresOuterParensCount(t *testing.T) {
	out := formatAll(t, "select a from b, (select x from y), c;")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	idx := -1
	for i, l := range lines {
		if strings.TrimSpace(l) == ")," {
			idx = i
			break
		}
	}
	require.GreaterOrEqual(t, idx, 0, "subquery's closing paren should be on its own line: %q", out)
	require.Greater(t, len(lines), idx+1, "a list item should follow the closed subquery: %q", out)

	assert.Equal(t, "  ),", lines[idx],
		"subquery's closing paren should return to the outer FROM list's indentation: %q", lines[idx])
	assert.Equal(t, "  c;", lines[idx+1],
		"the item after a closed subquery should start its own line at the outer FROM list's indentation, proving the outer level's paren count was restored: %q", lines[idx+1])
}
