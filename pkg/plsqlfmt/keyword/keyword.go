// Package keyword provides the case-insensitive reserved-word lookup
// table used by the scanner to classify identifiers, plus the reverse
// lookup the capitalizer needs to print a keyword's canonical spelling.
package keyword

import (
	"sort"
	"strings"

	"github.com/plsqlfmt/plsqlfmt/pkg/plsqlfmt/token"
)

type entry struct {
	name string
	kind token.Kind
}

var table []entry

func init() {
	table = make([]entry, 0, 221)
	for k := token.Abort; k <= token.Xor; k++ {
		table = append(table, entry{name: k.String(), kind: k})
	}
	sort.Slice(table, func(i, j int) bool { return table[i].name < table[j].name })
}

// Lookup returns the reserved-word kind for text (case-insensitively
// matched against the uppercased form), or token.Identifier if text is
// not a reserved word.
func Lookup(text string) token.Kind {
	upper := strings.ToUpper(text)
	i := sort.Search(len(table), func(i int) bool { return table[i].name >= upper })
	if i < len(table) && table[i].name == upper {
		return table[i].kind
	}
	return token.Identifier
}

// Name returns the canonical upper-case spelling for a reserved-word
// kind, or "" if k is not a keyword. Used by the capitalizer, which
// relies on the returned string always being upper case.
func Name(k token.Kind) string {
	if !token.IsKeyword(k) {
		return ""
	}
	return k.String()
}

// IsKeyword reports whether k names a reserved word.
func IsKeyword(k token.Kind) bool {
	return token.IsKeyword(k)
}
