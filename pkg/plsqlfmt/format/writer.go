package format

import (
	"strings"

	"github.com/plsqlfmt/plsqlfmt/pkg/plsqlfmt/token"
)

// lineComment reports whether a token's text already ends in a newline,
// as a trailing "--"-style comment does, so the writer can skip adding
// one of its own after it.
func lineComment(tok token.Token) bool {
	return tok.Kind == token.Remark && strings.HasSuffix(tok.Text, "\n")
}

// render writes one logical line's already-annotated tokens as text,
// applying each token's indent change to the running indentation before
// writing that token's own line, so a ReduceIndent on (say) a FROM
// keyword dedents FROM's own line rather than the line after it.
func render(sb *strings.Builder, ctx *Context, indentUnit string, anns []Annotated) {
	for i, ann := range anns {
		switch {
		case i == 0:
		case ann.LF:
			sb.WriteString("\n")
		default:
			if token.NeedSpace(anns[i-1].Tok.Kind, ann.Tok.Kind) {
				sb.WriteString(" ")
			}
		}

		if ann.IndentChange != 0 {
			ctx.AdjustBy(ann.IndentChange)
		}
		if i == 0 || ann.LF {
			sb.WriteString(strings.Repeat(indentUnit, ctx.Indentation()))
		}
		sb.WriteString(ann.Tok.Text)
	}

	if last := anns[len(anns)-1]; !lineComment(last.Tok) {
		sb.WriteString("\n")
	}
}
