package format

import "github.com/plsqlfmt/plsqlfmt/pkg/plsqlfmt/token"

// selectMachine drives the SELECT statement's state machine, one
// token at a time, for both top-level SELECTs and subqueries nested
// via the syntax-level stack.
type selectMachine struct {
	ls *LevelStack
}

func newSelectMachine(ls *LevelStack) *selectMachine {
	return &selectMachine{ls: ls}
}

// step processes one token of a logical line already known to belong
// to a SELECT statement (semicolons are intercepted by the caller
// before reaching here, since they end every SQL statement outright).
// It reports whether the comma just seen should break the line before
// whatever real token comes next.
func (m *selectMachine) step(tok token.Token, ann *Annotated) bool {
	ls := m.ls
	switch ls.Current.State {
	case StateSelect:
		m.doSelect(tok, ann)
	case StateSelectList:
		return m.doSelectList(tok, ann)
	case StateInto:
		m.doInto(tok, ann)
	case StateIntoList:
		return m.doIntoList(tok, ann)
	case StateFrom:
		m.doFrom(tok, ann)
	case StateFromList:
		return m.doFromList(tok, ann)
	case StateWhere:
		m.doWhere(tok, ann)
	case StateWhereList:
		m.doWhereList(tok, ann)
	case StateStart:
		m.doStart(tok, ann)
	case StateStartClause:
		m.doStartClause(tok, ann)
	case StateConnect:
		m.doConnect(tok, ann)
	case StateConnectClause:
		m.doConnectClause(tok, ann)
	case StateGroup:
		m.doGroup(tok, ann)
	case StateGroupList:
		return m.doGroupList(tok, ann)
	case StateHaving:
		m.doHaving(tok, ann)
	case StateHavingList:
		m.doHavingList(tok, ann)
	case StateSplice:
		m.doSplice(tok, ann)
	case StateOrder:
		m.doOrder(tok, ann)
	case StateOrderList:
		return m.doOrderList(tok, ann)
	case StateFor:
		m.doFor(tok, ann)
	case StateForUpdate:
		m.doForUpdate(tok, ann)
	case StateOf:
		m.doOf(tok, ann)
	case StateOfList:
		return m.doOfList(tok, ann)
	case StateNowait:
		m.doNowait(tok, ann)
	}
	return false
}

// breakListOnComma marks the very next token to start a new line,
// which the caller applies (via Editor.pending) to whatever token
// follows the comma -- unless that token turns out to be a comment,
// in which case the break is simply dropped rather than deferred
// further.
func breakListOnComma(ls *LevelStack) bool {
	return ls.Current.ParensCount == 0
}

func (m *selectMachine) doSelect(tok token.Token, ann *Annotated) {
	ls := m.ls
	switch tok.Kind {
	case token.Select, token.Remark, token.Distinct, token.All:
	case token.LParens:
		ls.Current.ParensCount++
		AddIndent(ann, ls, StateSelectList)
	default:
		AddIndent(ann, ls, StateSelectList)
	}
}

func (m *selectMachine) doSelectList(tok token.Token, ann *Annotated) (breakNext bool) {
	ls := m.ls
	switch tok.Kind {
	case token.Into:
		ReduceIndent(ann, ls, StateInto)
	case token.From:
		ReduceIndent(ann, ls, StateFrom)
	case token.LParens:
		ls.Current.ParensCount++
	case token.RParens:
		ls.Current.ParensCount--
	case token.Comma:
		return breakListOnComma(ls)
	}
	return false
}

func (m *selectMachine) doInto(tok token.Token, ann *Annotated) {
	ls := m.ls
	switch tok.Kind {
	case token.Identifier, token.QuotedID:
		AddIndent(ann, ls, StateIntoList)
	}
}

func (m *selectMachine) doIntoList(tok token.Token, ann *Annotated) (breakNext bool) {
	ls := m.ls
	switch tok.Kind {
	case token.From:
		ReduceIndent(ann, ls, StateFrom)
	case token.Comma:
		return true
	}
	return false
}

func (m *selectMachine) doFrom(tok token.Token, ann *Annotated) {
	ls := m.ls
	switch tok.Kind {
	case token.Identifier, token.QuotedID:
		AddIndent(ann, ls, StateFromList)
	case token.LParens:
		ls.Current.ParensCount++
	case token.Select:
		ls.Push()
		ls.Current.Statement = StmtSelect
		AddIndent(ann, ls, StateSelect)
	case token.RParens:
		m.closeSubqueryParen(ann)
	}
}

func (m *selectMachine) doFromList(tok token.Token, ann *Annotated) (breakNext bool) {
	ls := m.ls
	switch tok.Kind {
	case token.Where:
		ReduceIndent(ann, ls, StateWhere)
	case token.Start:
		ReduceIndent(ann, ls, StateStart)
	case token.Connect:
		ReduceIndent(ann, ls, StateConnect)
	case token.Union:
		ReduceIndent(ann, ls, StateSplice)
	case token.Intersect:
		ReduceIndent(ann, ls, StateSplice)
	case token.Minus:
		ReduceIndent(ann, ls, StateSplice)
	case token.Group:
		ReduceIndent(ann, ls, StateGroup)
	case token.Order:
		ReduceIndent(ann, ls, StateOrder)
	case token.For:
		ReduceIndent(ann, ls, StateFor)
	case token.LParens:
		ls.Current.ParensCount++
	case token.Select:
		ls.Push()
		ls.Current.Statement = StmtSelect
		AddIndent(ann, ls, StateSelect)
	case token.RParens:
		m.closeSubqueryParen(ann)
	case token.Comma:
		return breakListOnComma(ls)
	}
	return false
}

func (m *selectMachine) doWhere(tok token.Token, ann *Annotated) {
	ls := m.ls
	switch tok.Kind {
	case token.Remark:
	case token.LParens:
		ls.Current.ParensCount++
		AddIndent(ann, ls, StateWhereList)
	default:
		AddIndent(ann, ls, StateWhereList)
	}
}

func (m *selectMachine) doWhereList(tok token.Token, ann *Annotated) {
	ls := m.ls
	switch tok.Kind {
	case token.Start:
		ReduceIndent(ann, ls, StateStart)
	case token.Connect:
		ReduceIndent(ann, ls, StateConnect)
	case token.Union, token.Intersect, token.Minus:
		ReduceIndent(ann, ls, StateSplice)
	case token.Group:
		ReduceIndent(ann, ls, StateGroup)
	case token.Order:
		ReduceIndent(ann, ls, StateOrder)
	case token.For:
		ReduceIndent(ann, ls, StateFor)
	case token.LParens:
		ls.Current.ParensCount++
	case token.Select:
		ls.Push()
		ls.Current.Statement = StmtSelect
		AddIndent(ann, ls, StateSelect)
	case token.RParens:
		m.closeSubqueryParen(ann)
	}
}

func (m *selectMachine) doStart(tok token.Token, ann *Annotated) {
	ls := m.ls
	switch tok.Kind {
	case token.With, token.Remark:
	case token.LParens:
		ls.Current.ParensCount++
		AddIndent(ann, ls, StateStartClause)
	default:
		AddIndent(ann, ls, StateStartClause)
	}
}

func (m *selectMachine) doStartClause(tok token.Token, ann *Annotated) {
	ls := m.ls
	switch tok.Kind {
	case token.Connect:
		ReduceIndent(ann, ls, StateConnect)
	case token.LParens:
		ls.Current.ParensCount++
	case token.RParens:
		ls.Current.ParensCount--
	case token.Select:
		ls.Push()
		ls.Current.Statement = StmtSelect
		AddIndent(ann, ls, StateSelect)
	}
}

func (m *selectMachine) doConnect(tok token.Token, ann *Annotated) {
	ls := m.ls
	switch tok.Kind {
	case token.By, token.Remark:
	case token.LParens:
		ls.Current.ParensCount++
		AddIndent(ann, ls, StateConnectClause)
	default:
		AddIndent(ann, ls, StateConnectClause)
	}
}

func (m *selectMachine) doConnectClause(tok token.Token, ann *Annotated) {
	ls := m.ls
	switch tok.Kind {
	case token.Start:
		ReduceIndent(ann, ls, StateStart)
	case token.Connect:
		ReduceIndent(ann, ls, StateConnect)
	case token.Union, token.Intersect, token.Minus:
		ReduceIndent(ann, ls, StateSplice)
	case token.Group:
		ReduceIndent(ann, ls, StateGroup)
	case token.Order:
		ReduceIndent(ann, ls, StateOrder)
	case token.For:
		ReduceIndent(ann, ls, StateFor)
	case token.LParens:
		ls.Current.ParensCount++
	case token.Select:
		ls.Push()
		ls.Current.Statement = StmtSelect
		AddIndent(ann, ls, StateSelect)
	case token.RParens:
		m.closeSubqueryParen(ann)
	}
}

func (m *selectMachine) doGroup(tok token.Token, ann *Annotated) {
	ls := m.ls
	switch tok.Kind {
	case token.By, token.Remark:
	case token.LParens:
		ls.Current.ParensCount++
		AddIndent(ann, ls, StateGroupList)
	default:
		AddIndent(ann, ls, StateGroupList)
	}
}

func (m *selectMachine) doGroupList(tok token.Token, ann *Annotated) (breakNext bool) {
	ls := m.ls
	switch tok.Kind {
	case token.Having:
		ReduceIndent(ann, ls, StateHaving)
	case token.Start:
		ReduceIndent(ann, ls, StateStart)
	case token.Connect:
		ReduceIndent(ann, ls, StateConnect)
	case token.Union, token.Intersect, token.Minus:
		ReduceIndent(ann, ls, StateSplice)
	case token.Group:
		ReduceIndent(ann, ls, StateGroup)
	case token.Order:
		ReduceIndent(ann, ls, StateOrder)
	case token.For:
		ReduceIndent(ann, ls, StateFor)
	case token.LParens:
		ls.Current.ParensCount++
	case token.RParens:
		ls.Current.ParensCount--
	case token.Comma:
		return breakListOnComma(ls)
	}
	return false
}

func (m *selectMachine) doHaving(tok token.Token, ann *Annotated) {
	ls := m.ls
	switch tok.Kind {
	case token.Remark:
	case token.LParens:
		ls.Current.ParensCount++
		AddIndent(ann, ls, StateHavingList)
	default:
		AddIndent(ann, ls, StateHavingList)
	}
}

func (m *selectMachine) doHavingList(tok token.Token, ann *Annotated) {
	ls := m.ls
	switch tok.Kind {
	case token.Start:
		ReduceIndent(ann, ls, StateStart)
	case token.Connect:
		ReduceIndent(ann, ls, StateConnect)
	case token.Union, token.Intersect, token.Minus:
		ReduceIndent(ann, ls, StateSplice)
	case token.Group:
		ReduceIndent(ann, ls, StateGroup)
	case token.Order:
		ReduceIndent(ann, ls, StateOrder)
	case token.For:
		ReduceIndent(ann, ls, StateFor)
	case token.LParens:
		ls.Current.ParensCount++
	case token.Select:
		ls.Push()
		ls.Current.Statement = StmtSelect
		AddIndent(ann, ls, StateSelect)
	case token.RParens:
		m.closeSubqueryParen(ann)
	}
}

// doSplice handles the state entered on UNION/INTERSECT/MINUS: wait
// for the SELECT that starts the next query block and mark it to
// begin on its own line.
func (m *selectMachine) doSplice(tok token.Token, ann *Annotated) {
	if tok.Kind == token.Select {
		ann.LF = true
		m.ls.Current.State = StateSelect
	}
}

func (m *selectMachine) doOrder(tok token.Token, ann *Annotated) {
	ls := m.ls
	switch tok.Kind {
	case token.By, token.Remark:
	case token.LParens:
		ls.Current.ParensCount++
		AddIndent(ann, ls, StateOrderList)
	default:
		AddIndent(ann, ls, StateOrderList)
	}
}

func (m *selectMachine) doOrderList(tok token.Token, ann *Annotated) (breakNext bool) {
	ls := m.ls
	switch tok.Kind {
	case token.For:
		ReduceIndent(ann, ls, StateFor)
	case token.LParens:
		ls.Current.ParensCount++
	case token.RParens:
		m.closeSubqueryParen(ann)
	case token.Comma:
		return true
	}
	return false
}

func (m *selectMachine) doFor(tok token.Token, ann *Annotated) {
	if tok.Kind == token.Update {
		m.ls.Current.State = StateForUpdate
	}
}

func (m *selectMachine) doForUpdate(tok token.Token, ann *Annotated) {
	ls := m.ls
	switch tok.Kind {
	case token.Of:
		ls.Current.State = StateOf
	case token.Nowait:
		ReduceIndent(ann, ls, StateNowait)
	case token.Order:
		ReduceIndent(ann, ls, StateOrder)
	case token.For:
		ReduceIndent(ann, ls, StateFor)
	case token.RParens:
		m.closeSubqueryParen(ann)
	}
}

func (m *selectMachine) doOf(tok token.Token, ann *Annotated) {
	if tok.Kind != token.Remark {
		AddIndent(ann, m.ls, StateOfList)
	}
}

func (m *selectMachine) doOfList(tok token.Token, ann *Annotated) (breakNext bool) {
	ls := m.ls
	switch tok.Kind {
	case token.Order:
		doubleUnindent(ann, ls, StateOrder)
	case token.For:
		doubleUnindent(ann, ls, StateFor)
	case token.Nowait:
		doubleUnindent(ann, ls, StateNowait)
	case token.Comma:
		return true
	case token.RParens:
		m.closeSubqueryParen(ann)
	}
	return false
}

func (m *selectMachine) doNowait(tok token.Token, ann *Annotated) {
	ls := m.ls
	switch tok.Kind {
	case token.Order:
		ls.Current.State = StateOrder
	case token.For:
		ls.Current.State = StateFor
	case token.RParens:
		m.closeSubqueryParen(ann)
	}
}

// closeSubqueryParen handles a closing paren that might be ending a
// subquery outright: a paren count at or below zero means no open
// paren has been tracked at this level, so the paren belongs to the
// enclosing query and this level is popped. Either way, the level left
// current after that check — the popped-to level if a pop happened,
// this level otherwise — has its open-paren count brought back down by
// one, since an RParens is always the close of something.
func (m *selectMachine) closeSubqueryParen(ann *Annotated) {
	ls := m.ls
	if ls.Current.ParensCount <= 0 {
		CancelLevel(ann, ls)
	}
	ls.Current.ParensCount--
}

// doubleUnindent handles the FOR UPDATE OF column list's transition
// back to ORDER BY, FOR (UPDATE), or NOWAIT: the column list was
// itself nested one level inside FOR UPDATE, so leaving it unwinds two
// levels of indentation at once instead of one.
func doubleUnindent(ann *Annotated, ls *LevelStack, state State) {
	ann.LF = true
	ann.IndentChange = -2
	ls.Current.IndentsCount -= 2
	ls.Current.State = state
}
