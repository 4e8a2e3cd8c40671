// Package format turns logical lines of tokens into indented,
// consistently spaced PL/SQL source text. It tracks two independent
// pieces of state across the whole run: a procedural indentation
// context (plain nesting driven by the first token of each logical
// line) and a syntax-level stack that drives dedicated state machines
// for SQL statements, where indentation can't be inferred from a
// single leading keyword.
package format

import "github.com/plsqlfmt/plsqlfmt/pkg/plsqlfmt/token"

// typeStackDepth bounds the indent-origin stack the same way the
// original's fixed-size array did; overflow just stops recording
// origins rather than corrupting anything, since the worst outcome is
// an extra plain unindent instead of the END/WHEN double-unindent.
const typeStackDepth = 32

// Context carries the indentation state that persists across logical
// lines: the current nesting depth, a queue of unindents to apply at
// the start of the next line, and a stack recording which keyword
// opened each indent level so a WHEN...END sequence can unindent
// twice.
type Context struct {
	indentation int
	deferred    int
	typeStack   []token.Kind
}

// NewContext returns a Context ready to format from the top of a file.
func NewContext() *Context {
	return &Context{}
}

// Indentation reports the current nesting depth.
func (c *Context) Indentation() int {
	return c.indentation
}

// Indent increases the nesting depth by one and records origin as the
// token type that caused it.
func (c *Context) Indent(origin token.Kind) {
	c.indentation++
	c.pushType(origin)
}

// Unindent decreases the nesting depth by one, floored at zero, and
// reports the token type that had opened the level being closed.
func (c *Context) Unindent() token.Kind {
	if c.indentation > 0 {
		c.indentation--
	}
	return c.popType()
}

// DeferUnindent schedules n unindents to be applied at the start of
// the next logical line, once its own indentation changes have been
// applied. Used when a SQL statement's syntax-level stack unwinds all
// at once on a semicolon.
func (c *Context) DeferUnindent(n int) {
	c.deferred = n
}

// ApplyDeferred applies and clears any pending deferred unindents,
// flooring the result at zero.
func (c *Context) ApplyDeferred() {
	c.indentation -= c.deferred
	if c.indentation < 0 {
		c.indentation = 0
	}
	c.deferred = 0
}

// AdjustBy applies an arbitrary indentation delta, e.g. when a level
// is cancelled outright and every indent it accumulated must be
// unwound on the token that closes it.
func (c *Context) AdjustBy(delta int) {
	c.indentation += delta
	if c.indentation < 0 {
		c.indentation = 0
	}
}

func (c *Context) pushType(k token.Kind) {
	if len(c.typeStack) < typeStackDepth {
		c.typeStack = append(c.typeStack, k)
	}
}

func (c *Context) popType() token.Kind {
	if len(c.typeStack) == 0 {
		return token.None
	}
	n := len(c.typeStack) - 1
	k := c.typeStack[n]
	c.typeStack = c.typeStack[:n]
	return k
}
