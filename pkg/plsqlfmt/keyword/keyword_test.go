package keyword

import (
	"testing"

	"github.com/plsqlfmt/plsqlfmt/pkg/plsqlfmt/token"
	"github.com/stretchr/testify/assert"
)

func TestLookupIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, token.Select, Lookup("select"))
	assert.Equal(t, token.Select, Lookup("SELECT"))
	assert.Equal(t, token.Select, Lookup("SeLeCt"))
}

func TestLookupFallsBackToIdentifier(t *testing.T) {
	assert.Equal(t, token.Identifier, Lookup("my_table"))
	assert.Equal(t, token.Identifier, Lookup("selecty"))
}

func TestNameReturnsCanonicalUppercase(t *testing.T) {
	assert.Equal(t, "SELECT", Name(token.Select))
	assert.Equal(t, "", Name(token.Identifier))
}

func TestLookupCoversFirstAndLastKeyword(t *testing.T) {
	assert.Equal(t, token.Abort, Lookup("abort"))
	assert.Equal(t, token.Xor, Lookup("XOR"))
}
