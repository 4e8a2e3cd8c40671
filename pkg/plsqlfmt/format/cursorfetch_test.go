package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCursorDelegatesToSelectIndentation(t *testing.T) {
	out := formatAll(t, "cursor c is select a from b;")
	assert.Contains(t, out, "cursor c is")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	found := false
	for _, l := range lines {
		if strings.TrimSpace(l) == "a" && strings.HasPrefix(l, "  ") {
			found = true
		}
	}
	assert.True(t, found, "select list after CURSOR...IS should still be indented")
}

func TestFormatFetchIntoListBreaksOnComma(t *testing.T) {
	out := formatAll(t, "fetch c into a, b;")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.Equal(t, "fetch c into", lines[0], "the INTO list opens on its own indented line, like a SELECT column list: %q", out)
	assert.Equal(t, "  a,", lines[1])
	assert.Equal(t, "  b;", lines[2])
}

func TestFormatFetchIntoListMultipleColumnsEachOwnLine(t *testing.T) {
	out := formatAll(t, "fetch c into a, b, c;")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	breaks := 0
	for _, l := range lines {
		if strings.HasSuffix(strings.TrimSpace(l), ",") {
			breaks++
		}
	}
	assert.Equal(t, 2, breaks, "each fetch target before the last should end its own line: %q", out)
}
