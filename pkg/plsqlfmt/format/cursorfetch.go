package format

import "github.com/plsqlfmt/plsqlfmt/pkg/plsqlfmt/token"

// cursorMachine drives a CURSOR declaration's state machine. CURSOR has
// no list logic of its own: it exists only to push a level and hand
// control to the SELECT machine once it sees SELECT, after which the
// editor dispatches by LevelStack.Current.Statement and never calls
// back into this machine for the same statement.
type cursorMachine struct {
	ls *LevelStack
}

func newCursorMachine(ls *LevelStack) *cursorMachine {
	return &cursorMachine{ls: ls}
}

func (m *cursorMachine) step(tok token.Token, ann *Annotated) bool {
	if m.ls.Current.State == StateCursor && tok.Kind == token.Select {
		ls := m.ls
		ls.Push()
		ls.Current.Statement = StmtSelect
		AddIndent(ann, ls, StateSelect)
	}
	return false
}

// fetchMachine drives a FETCH statement's state machine: FETCH cursor
// INTO var, var, ...
type fetchMachine struct {
	ls *LevelStack
}

func newFetchMachine(ls *LevelStack) *fetchMachine {
	return &fetchMachine{ls: ls}
}

func (m *fetchMachine) step(tok token.Token, ann *Annotated) bool {
	ls := m.ls
	switch ls.Current.State {
	case StateFetch:
		m.doFetch(tok, ann)
	case StateInto:
		m.doInto(tok, ann)
	case StateIntoList:
		return m.doIntoList(tok, ann)
	}
	return false
}

func (m *fetchMachine) doFetch(tok token.Token, ann *Annotated) {
	if tok.Kind == token.Into {
		m.ls.Current.State = StateInto
	}
}

func (m *fetchMachine) doInto(tok token.Token, ann *Annotated) {
	if tok.Kind == token.Identifier {
		AddIndent(ann, m.ls, StateIntoList)
	}
}

func (m *fetchMachine) doIntoList(tok token.Token, ann *Annotated) (breakNext bool) {
	return tok.Kind == token.Comma
}
