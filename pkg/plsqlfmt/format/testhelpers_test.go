package format

import (
	"strings"
	"testing"

	"github.com/plsqlfmt/plsqlfmt/pkg/plsqlfmt/logicalline"
	"github.com/plsqlfmt/plsqlfmt/pkg/plsqlfmt/scanner"
	"github.com/plsqlfmt/plsqlfmt/pkg/plsqlfmt/source"
	"github.com/plsqlfmt/plsqlfmt/pkg/plsqlfmt/token"
)

func formatAll(t *testing.T, input string, opts ...Option) string {
	t.Helper()
	sc := scanner.New(source.NewFromString(input))
	sc.SetPreserving(false)
	asm := logicalline.New(sc)
	f := NewFormatter(opts...)

	var sb strings.Builder
	for {
		line := asm.Next()
		toks := line.Tokens
		if len(toks) > 0 && toks[len(toks)-1].Kind == token.EOF {
			toks = toks[:len(toks)-1]
		}
		if len(toks) > 0 {
			sb.WriteString(f.FormatLine(toks))
		}
		if len(line.Tokens) > 0 && line.Tokens[len(line.Tokens)-1].Kind == token.EOF {
			break
		}
	}
	return sb.String()
}
