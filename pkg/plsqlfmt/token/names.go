package token

// keywordNames holds the canonical upper-case spelling of every reserved
// word, in the same order as the Kind declarations from Abort through
// Xor. It backs both the keyword table's reverse lookup (capitalizer)
// and Kind.String().
var keywordNames = [...]string{
	"ABORT", "ACCEPT", "ACCESS", "ADD", "ALL", "ALTER", "AND", "ANY",
	"ARRAY", "ARRAYLEN", "AS", "ASC", "ASSERT", "ASSIGN", "AT", "AUDIT",
	"AUTHORIZATION", "AVG", "BASE_TABLE", "BEGIN", "BETWEEN",
	"BINARY_INTEGER", "BODY", "BOOLEAN", "BY", "CASE", "CHAR",
	"CHAR_BASE", "CHECK", "CLOSE", "CLUSTER", "CLUSTERS", "COLAUTH",
	"COLUMN", "COMMENT", "COMMIT", "COMPRESS", "CONNECT", "CONSTANT",
	"CRASH", "CREATE", "CURRENT", "CURRVAL", "CURSOR", "DATABASE",
	"DATA_BASE", "DATE", "DBA", "DEBUGOFF", "DEBUGON", "DECLARE",
	"DECIMAL", "DEFAULT", "DEFINITION", "DELAY", "DELETE", "DELTA",
	"DESC", "DIGITS", "DISPOSE", "DISTINCT", "DO", "DROP", "ELSE",
	"ELSIF", "END", "ENTRY", "EXCEPTION", "EXCEPTION_INIT", "EXCLUSIVE",
	"EXISTS", "EXIT", "FALSE", "FETCH", "FILE", "FLOAT", "FOR", "FORM",
	"FROM", "FUNCTION", "GENERIC", "GOTO", "GRANT", "GROUP", "HAVING",
	"IDENTIFIED", "IF", "IMMEDIATE", "IN", "INCREMENT", "INDEX",
	"INDEXES", "INDICATOR", "INITIAL", "INSERT", "INTEGER", "INTERFACE",
	"INTERSECT", "INTO", "IS", "LEVEL", "LIKE", "LIMITED", "LOCK",
	"LONG", "LOOP", "MAX", "MAXEXTENTS", "MIN", "MINUS", "MLSLABEL",
	"MOD", "MODE", "MODIFY", "NATURAL", "NATURALN", "NEW", "NEXTVAL",
	"NOAUDIT", "NOCOMPRESS", "NOT", "NOWAIT", "NULL", "NUMBER",
	"NUMBER_BASE", "OF", "OFFLINE", "ON", "ONLINE", "OPEN", "OPTION",
	"OR", "ORDER", "OTHERS", "OUT", "PACKAGE", "PARTITION", "PCTFREE",
	"PLS_INTEGER", "POSITIVE", "POSITIVEN", "PRAGMA", "PRIOR", "PRIVATE",
	"PRIVILEGES", "PROCEDURE", "PUBLIC", "RAISE", "RANGE", "RAW", "REAL",
	"RECORD", "REF", "RELEASE", "REMR", "RENAME", "REPLACE", "RESOURCE",
	"RETURN", "REVERSE", "REVOKE", "ROLLBACK", "ROW", "ROWID",
	"ROWLABEL", "ROWNUM", "ROWS", "ROWTYPE", "RUN", "SAVEPOINT",
	"SCHEMA", "SELECT", "SEPARATE", "SESSION", "SET", "SHARE", "SIZE",
	"SMALLINT", "SPACE", "SQL", "SQLCODE", "SQLERRM", "START",
	"STATEMENT", "STDDEV", "SUBTYPE", "SUCCESSFUL", "SUM", "SYNONYM",
	"SYSDATE", "TABAUTH", "TABLE", "TABLES", "TASK", "TERMINATE",
	"THEN", "TO", "TRIGGER", "TRUE", "TYPE", "UID", "UNION", "UNIQUE",
	"UPDATE", "USE", "USER", "VALIDATE", "VALUES", "VARCHAR",
	"VARCHAR2", "VARIANCE", "VIEW", "VIEWS", "WHEN", "WHENEVER",
	"WHERE", "WHILE", "WITH", "WORK", "WRITE", "XOR",
}

// String returns the canonical spelling for keyword kinds (always
// upper-case) and a lower-case mnemonic for the rest.
func (k Kind) String() string {
	if IsKeyword(k) {
		return keywordNames[int(k-firstKeyword)]
	}
	switch k {
	case EOF:
		return "eof"
	case None:
		return "none"
	case Error:
		return "error"
	case QuotedID:
		return "quoted-identifier"
	case StringLit:
		return "string-literal"
	case CharLit:
		return "character-literal"
	case NumLit:
		return "numeric-literal"
	case Identifier:
		return "identifier"
	case Remark:
		return "comment"
	case Whitespace:
		return "whitespace"
	case Plus:
		return "+"
	case MinusSign:
		return "-"
	case Star:
		return "*"
	case Virgule:
		return "/"
	case Equals:
		return "="
	case Less:
		return "<"
	case Greater:
		return ">"
	case LParens:
		return "("
	case RParens:
		return ")"
	case Semicolon:
		return ";"
	case Percent:
		return "%"
	case Comma:
		return ","
	case Dot:
		return "."
	case AtSign:
		return "@"
	case Colon:
		return ":"
	case Expo:
		return "**"
	case NotEqual:
		return "!="
	case Tilde:
		return "~="
	case Hat:
		return "^="
	case LessEqual:
		return "<="
	case GreaterEqual:
		return ">="
	case Assignment:
		return ":="
	case Arrow:
		return "=>"
	case RangeDots:
		return ".."
	case Bars:
		return "||"
	case LeftLabel:
		return "<<"
	case RightLabel:
		return ">>"
	default:
		return "?"
	}
}
