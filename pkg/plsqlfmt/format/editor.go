package format

import "github.com/plsqlfmt/plsqlfmt/pkg/plsqlfmt/token"

// Editor dispatches every token of a logical line to whichever
// statement machine is active, starting a new one when a line begins
// with no statement in progress and tearing every level down at once
// when a semicolon ends one, regardless of how deeply it had nested.
type Editor struct {
	ls       LevelStack
	selectFn *selectMachine
	insert   *insertMachine
	update   *updateMachine
	cursor   *cursorMachine
	fetch    *fetchMachine

	pending bool
}

// NewEditor returns an Editor with no statement in progress.
func NewEditor() *Editor {
	e := &Editor{}
	e.selectFn = newSelectMachine(&e.ls)
	e.insert = newInsertMachine(&e.ls)
	e.update = newUpdateMachine(&e.ls)
	e.cursor = newCursorMachine(&e.ls)
	e.fetch = newFetchMachine(&e.ls)
	return e
}

// Edit annotates tok according to whichever statement, if any, is
// being edited, reporting the total number of indents that statement
// had opened if tok's semicolon just ended it outright (so the caller
// can defer that many unindents onto the next logical line), or -1 if
// no statement ended on this token.
func (e *Editor) Edit(tok token.Token) (ann Annotated, exitedIndents int) {
	ann = Annotated{Tok: tok}
	exitedIndents = -1

	if e.pending {
		e.pending = false
		if tok.Kind != token.Remark {
			ann.LF = true
		}
	}

	if e.ls.Current.State == StateNone {
		e.start(tok, &ann)
	}

	if tok.Kind == token.Semicolon && e.ls.Current.State != StateNone {
		exitedIndents = e.ls.ExitAll()
		return ann, exitedIndents
	}

	e.pending = e.dispatch(tok, &ann)
	return ann, exitedIndents
}

// start decides which statement machine a logical line's first token
// begins, when no statement is currently in progress. DELETE is
// recognized but left without a dedicated machine: its column list has
// no clause structure of its own to drive indentation decisions beyond
// the WHERE clause, which UPDATE's machine already covers, so a bare
// "delete from t where ..." is left to plain procedural indentation
// rather than forcing an incomplete FSM onto it.
func (e *Editor) start(tok token.Token, ann *Annotated) {
	switch tok.Kind {
	case token.Select:
		e.ls.Push()
		e.ls.Current.Statement = StmtSelect
		e.ls.Current.State = StateSelect
	case token.Insert:
		e.ls.Current.Statement = StmtInsert
		e.ls.Current.State = StateInsert
	case token.Update:
		e.ls.Current.Statement = StmtUpdate
		e.ls.Current.State = StateUpdate
	case token.Cursor:
		e.ls.Current.Statement = StmtCursor
		e.ls.Current.State = StateCursor
	case token.Fetch:
		e.ls.Current.Statement = StmtFetch
		e.ls.Current.State = StateFetch
	case token.Delete:
		e.ls.Current.Statement = StmtDelete
	}
}

// dispatch runs tok through whichever machine owns the active
// statement, reporting whether the token just seen should break the
// line before whatever real token comes next.
func (e *Editor) dispatch(tok token.Token, ann *Annotated) bool {
	switch e.ls.Current.Statement {
	case StmtSelect:
		return e.selectFn.step(tok, ann)
	case StmtInsert:
		return e.insert.step(tok, ann)
	case StmtUpdate:
		return e.update.step(tok, ann)
	case StmtCursor:
		return e.cursor.step(tok, ann)
	case StmtFetch:
		return e.fetch.step(tok, ann)
	}
	return false
}
