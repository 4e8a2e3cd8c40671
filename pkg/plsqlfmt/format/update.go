package format

import "github.com/plsqlfmt/plsqlfmt/pkg/plsqlfmt/token"

// updateMachine drives an UPDATE statement's state machine.
type updateMachine struct {
	ls *LevelStack
}

func newUpdateMachine(ls *LevelStack) *updateMachine {
	return &updateMachine{ls: ls}
}

func (m *updateMachine) step(tok token.Token, ann *Annotated) bool {
	ls := m.ls
	switch ls.Current.State {
	case StateUpdate:
		m.doUpdate(tok, ann)
	case StateSubquery:
		m.doSubquery(tok, ann)
	case StateSet:
		m.doSet(tok, ann)
	case StateSetList:
		return m.doSetList(tok, ann)
	case StateSetSubquery:
		m.doSetSubquery(tok, ann)
	case StateSetComma:
		m.doSetComma(tok, ann)
	case StateWhere:
		m.doWhere(tok, ann)
	case StateWhereList:
		m.doWhereList(tok, ann)
	}
	return false
}

func (m *updateMachine) doUpdate(tok token.Token, ann *Annotated) {
	ls := m.ls
	switch tok.Kind {
	case token.Set:
		ann.LF = true
		ls.Current.State = StateSet
	case token.LParens:
		ls.Current.ParensCount++
		AddIndent(ann, ls, StateSubquery)
		ls.Push()
		ls.Current.Statement = StmtSelect
		ls.Current.State = StateSelect
	}
}

// doSubquery tracks parens for a table subquery after UPDATE without
// pushing a nested level of its own; the opening paren that started it
// was handled in doUpdate, which already pushed.
func (m *updateMachine) doSubquery(tok token.Token, ann *Annotated) {
	ls := m.ls
	switch tok.Kind {
	case token.Set:
		ReduceIndent(ann, ls, StateSet)
	case token.LParens:
		ls.Current.ParensCount++
	case token.RParens:
		if ls.Current.ParensCount > 0 {
			ls.Current.ParensCount--
		}
	case token.Comma:
		if ls.Current.ParensCount == 0 {
			ann.LF = true
		}
	}
}

func (m *updateMachine) doSet(tok token.Token, ann *Annotated) {
	ls := m.ls
	switch tok.Kind {
	case token.Identifier:
		AddIndent(ann, ls, StateSetList)
	case token.LParens:
		ls.Current.ParensCount++
		AddIndent(ann, ls, StateSetList)
	}
}

func (m *updateMachine) doSetList(tok token.Token, ann *Annotated) (breakNext bool) {
	ls := m.ls
	switch tok.Kind {
	case token.Where:
		ReduceIndent(ann, ls, StateWhere)
	case token.LParens:
		ls.Current.ParensCount++
	case token.RParens:
		if ls.Current.ParensCount > 0 {
			ls.Current.ParensCount--
		}
	case token.Comma:
		return ls.Current.ParensCount == 0
	case token.Select:
		AddIndent(ann, ls, StateSetSubquery)
		ls.Push()
		ls.Current.Statement = StmtSelect
		ls.Current.State = StateSelect
	}
	return false
}

// doSetSubquery handles the clause following a SET value that was
// itself a subquery: WHERE there does a combined double-unindent,
// since both the subquery's own indent and the SET list's indent close
// at once; a comma instead returns to the SET list by way of the
// transitional comma state.
func (m *updateMachine) doSetSubquery(tok token.Token, ann *Annotated) {
	ls := m.ls
	switch tok.Kind {
	case token.Where:
		ReduceIndent(ann, ls, StateWhere)
		if ls.Current.IndentsCount > 0 {
			ls.Current.IndentsCount--
		}
		ann.IndentChange = -2
	case token.Comma:
		ann.LF = true
		ls.Current.State = StateSetComma
	}
}

func (m *updateMachine) doSetComma(tok token.Token, ann *Annotated) {
	ls := m.ls
	switch tok.Kind {
	case token.LParens:
		ls.Current.ParensCount++
		ReduceIndent(ann, ls, StateSetList)
	case token.Identifier:
		ReduceIndent(ann, ls, StateSetList)
	}
}

func (m *updateMachine) doWhere(tok token.Token, ann *Annotated) {
	ls := m.ls
	switch tok.Kind {
	case token.LParens:
		ls.Current.ParensCount++
		AddIndent(ann, ls, StateWhereList)
	default:
		AddIndent(ann, ls, StateWhereList)
	}
}

// doWhereList mirrors SELECT's WHERE handling but stays in
// StateWhereList on a nested SELECT (rather than switching state on the
// SELECT token itself) and its closing paren is a plain decrement with
// no cancel-level check, since UPDATE's WHERE clause was never entered
// through a pushed level of its own.
func (m *updateMachine) doWhereList(tok token.Token, ann *Annotated) {
	ls := m.ls
	switch tok.Kind {
	case token.LParens:
		ls.Current.ParensCount++
	case token.RParens:
		if ls.Current.ParensCount > 0 {
			ls.Current.ParensCount--
		}
	case token.Select:
		AddIndent(ann, ls, StateWhereList)
		ls.Push()
		ls.Current.Statement = StmtSelect
		ls.Current.State = StateSelect
	}
}
