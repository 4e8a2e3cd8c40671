package format

import "github.com/plsqlfmt/plsqlfmt/pkg/plsqlfmt/token"

// insertMachine drives an INSERT statement's state machine.
type insertMachine struct {
	ls *LevelStack
}

func newInsertMachine(ls *LevelStack) *insertMachine {
	return &insertMachine{ls: ls}
}

func (m *insertMachine) step(tok token.Token, ann *Annotated) bool {
	ls := m.ls
	switch ls.Current.State {
	case StateInsert:
		m.doInsert(tok, ann)
	case StateInto:
		m.doInto(tok, ann)
	case StateIntoList:
		m.doIntoList(tok, ann)
	case StateSubquery:
		m.doSubquery(tok, ann)
	case StateColumnListA:
		m.doColumnListA(tok, ann)
	case StateColumnListB:
		return m.doColumnListB(tok, ann)
	case StateColumnListC:
		m.doColumnListC(tok, ann)
	case StateValues:
		m.doValues(tok, ann)
	case StateValuesListA:
		m.doValuesListA(tok, ann)
	case StateValuesListB:
		return m.doValuesListB(tok, ann)
	case StateValuesListC:
		// Terminal state: only a comment or the statement-ending
		// semicolon is valid from here, and the editor intercepts the
		// semicolon before it ever reaches this machine.
	}
	return false
}

func (m *insertMachine) doInsert(tok token.Token, ann *Annotated) {
	if tok.Kind == token.Into {
		m.ls.Current.State = StateInto
	}
}

// doInto looks for the table/view name or a subquery's opening paren
// right after INSERT INTO.
func (m *insertMachine) doInto(tok token.Token, ann *Annotated) {
	ls := m.ls
	switch tok.Kind {
	case token.Identifier:
		ls.Current.State = StateIntoList
	case token.LParens:
		ls.Current.ParensCount++
		AddIndent(ann, ls, StateSubquery)
		ls.Push()
		ls.Current.Statement = StmtSelect
		ls.Current.State = StateSelect
		ann.LF = true
	}
}

func (m *insertMachine) doSubquery(tok token.Token, ann *Annotated) {
	ls := m.ls
	switch tok.Kind {
	case token.Values:
		ReduceIndent(ann, ls, StateValues)
	case token.LParens:
		ls.Current.ParensCount++
		ReduceIndent(ann, ls, StateColumnListA)
	case token.Select:
		ls.Push()
		ls.Current.Statement = StmtSelect
		ls.Current.State = StateSelect
	}
}

func (m *insertMachine) doIntoList(tok token.Token, ann *Annotated) {
	ls := m.ls
	switch tok.Kind {
	case token.Values:
		ls.Current.State = StateValues
	case token.LParens:
		ls.Current.ParensCount++
		ls.Current.State = StateColumnListA
		ann.LF = true
	case token.Select:
		ls.Push()
		ls.Current.Statement = StmtSelect
		AddIndent(ann, ls, StateSelect)
	}
}

func (m *insertMachine) doColumnListA(tok token.Token, ann *Annotated) {
	ls := m.ls
	switch tok.Kind {
	case token.Identifier:
		AddIndent(ann, ls, StateColumnListB)
	case token.LParens:
		ls.Current.ParensCount++
	case token.RParens:
		if ls.Current.ParensCount > 0 {
			ls.Current.ParensCount--
		}
	}
}

func (m *insertMachine) doColumnListB(tok token.Token, ann *Annotated) (breakNext bool) {
	ls := m.ls
	switch tok.Kind {
	case token.LParens:
		ls.Current.ParensCount++
	case token.RParens:
		if ls.Current.ParensCount > 0 {
			ls.Current.ParensCount--
			if ls.Current.ParensCount < 1 {
				ReduceIndent(ann, ls, StateColumnListC)
			}
		}
	case token.Comma:
		return ls.Current.ParensCount == 1
	}
	return false
}

func (m *insertMachine) doColumnListC(tok token.Token, ann *Annotated) {
	ls := m.ls
	switch tok.Kind {
	case token.Values:
		ls.Current.State = StateValues
	case token.Select:
		ls.Push()
		ls.Current.Statement = StmtSelect
		AddIndent(ann, ls, StateSelect)
	}
}

func (m *insertMachine) doValues(tok token.Token, ann *Annotated) {
	if tok.Kind == token.LParens {
		m.ls.Current.ParensCount++
		m.ls.Current.State = StateValuesListA
		ann.LF = true
	}
}

func (m *insertMachine) doValuesListA(tok token.Token, ann *Annotated) {
	ls := m.ls
	switch tok.Kind {
	case token.Remark:
	case token.LParens:
		ls.Current.ParensCount++
		AddIndent(ann, ls, StateValuesListB)
	case token.RParens:
		if ls.Current.ParensCount > 0 {
			ls.Current.ParensCount--
		}
	default:
		AddIndent(ann, ls, StateValuesListB)
	}
}

func (m *insertMachine) doValuesListB(tok token.Token, ann *Annotated) (breakNext bool) {
	ls := m.ls
	switch tok.Kind {
	case token.LParens:
		ls.Current.ParensCount++
	case token.RParens:
		if ls.Current.ParensCount > 0 {
			ls.Current.ParensCount--
			if ls.Current.ParensCount < 1 {
				ReduceIndent(ann, ls, StateValuesListC)
			}
		}
	case token.Comma:
		return ls.Current.ParensCount == 1
	}
	return false
}
