package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatProceduralIfIndentsBody(t *testing.T) {
	out := formatAll(t, "if a = 1 then\nb := 2;\nend if;")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.True(t, strings.HasPrefix(lines[1], "  "), "IF body should be indented: %q", lines[1])
}

func TestFormatProceduralLoopUnindentsAtEnd(t *testing.T) {
	out := formatAll(t, "loop\nb := 2;\nend loop;")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.True(t, strings.HasPrefix(lines[1], "  "), "LOOP body should be indented: %q", lines[1])
	assert.False(t, strings.HasPrefix(lines[2], " "), "END LOOP should return to the outer indentation: %q", lines[2])
}

func TestFormatProceduralNestedIfDoubleIndents(t *testing.T) {
	out := formatAll(t, "if a = 1 then\nif b = 2 then\nc := 3;\nend if;\nend if;")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 5)
	assert.True(t, strings.HasPrefix(lines[1], "  "))
	assert.True(t, strings.HasPrefix(lines[2], "    "), "body of the nested IF should be doubly indented: %q", lines[2])
}
