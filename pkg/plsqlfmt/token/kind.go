// Package token defines the closed set of PL/SQL token kinds, the Token
// value itself, and the small per-kind lookup tables (spacing, finality,
// firstness) that the logical-line assembler and writer consult.
package token

// Kind identifies the lexical category of a Token. The enumeration is
// closed: meta kinds, lexeme kinds, single- and two-character
// punctuation, then the full alphabetical list of PL/SQL reserved words.
type Kind int

const (
	EOF Kind = iota
	None
	Error

	QuotedID
	StringLit
	CharLit
	NumLit
	Identifier
	Remark
	Whitespace

	// single-character punctuation
	Plus
	MinusSign
	Star
	Virgule
	Equals
	Less
	Greater
	LParens
	RParens
	Semicolon
	Percent
	Comma
	Dot
	AtSign
	Colon

	// two-character operators
	Expo
	NotEqual
	Tilde
	Hat
	LessEqual
	GreaterEqual
	Assignment
	Arrow
	RangeDots
	Bars
	LeftLabel
	RightLabel

	firstKeyword
)

// Reserved words, alphabetically, matching the original scanner's table.
const (
	Abort Kind = firstKeyword + iota
	Accept
	Access
	Add
	All
	Alter
	And
	Any
	Array
	Arraylen
	As
	Asc
	Assert
	Assign
	At
	Audit
	Authorization
	Avg
	BaseTable
	Begin
	Between
	BinaryInteger
	Body
	Boolean
	By
	Case
	Char
	CharBase
	Check
	Close
	Cluster
	Clusters
	Colauth
	Column
	Comment
	Commit
	Compress
	Connect
	Constant
	Crash
	Create
	Current
	Currval
	Cursor
	Database
	DataBase
	Date
	Dba
	Debugoff
	Debugon
	Declare
	Decimal
	Default
	Definition
	Delay
	Delete
	Delta
	Desc
	Digits
	Dispose
	Distinct
	Do
	Drop
	Else
	Elsif
	End
	Entry
	Exception
	ExceptionInit
	Exclusive
	Exists
	Exit
	False
	Fetch
	File
	Float
	For
	Form
	From
	Function
	Generic
	Goto
	Grant
	Group
	Having
	Identified
	If
	Immediate
	In
	Increment
	Index
	Indexes
	Indicator
	Initial
	Insert
	Integer
	Interface
	Intersect
	Into
	Is
	Level
	Like
	Limited
	Lock
	Long
	Loop
	Max
	Maxextents
	Min
	Minus
	Mlslabel
	Mod
	Mode
	Modify
	Natural
	Naturaln
	New
	Nextval
	Noaudit
	Nocompress
	Not
	Nowait
	Null
	Number
	NumberBase
	Of
	Offline
	On
	Online
	Open
	Option
	Or
	Order
	Others
	Out
	Package
	Partition
	Pctfree
	PlsInteger
	Positive
	Positiven
	Pragma
	Prior
	Private
	Privileges
	Procedure
	Public
	Raise
	Range
	Raw
	Real
	Record
	Ref
	Release
	Remr
	Rename
	Replace
	Resource
	Return
	Reverse
	Revoke
	Rollback
	Row
	Rowid
	Rowlabel
	Rownum
	Rows
	Rowtype
	Run
	Savepoint
	Schema
	Select
	Separate
	Session
	Set
	Share
	Size
	Smallint
	Space
	SQL
	Sqlcode
	Sqlerrm
	Start
	Statement
	Stddev
	Subtype
	Successful
	Sum
	Synonym
	Sysdate
	Tabauth
	Table
	Tables
	Task
	Terminate
	Then
	To
	Trigger
	True
	Type
	Uid
	Union
	Unique
	Update
	Use
	User
	Validate
	Values
	Varchar
	Varchar2
	Variance
	View
	Views
	When
	Whenever
	Where
	While
	With
	Work
	Write
	Xor

	lastKeyword = Xor
)

// IsKeyword reports whether k is one of the reserved-word kinds.
func IsKeyword(k Kind) bool {
	return k >= firstKeyword && k <= lastKeyword
}
