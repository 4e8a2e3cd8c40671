package token

// IsFinal reports the likelihood that a token of the given kind ends a
// logical line.
func IsFinal(k Kind) Probability {
	switch k {
	case Remark, EOF:
		return Always
	case Semicolon, Then, Else, Begin, Exception, From, Where, Distinct,
		Declare, Minus, Intersect:
		return Usually
	case Is, Select, Union:
		return Sometimes
	default:
		return Sometimes
	}
}

// IsFirst reports the likelihood that a token of the given kind should
// begin a fresh logical line.
func IsFirst(k Kind) Probability {
	switch k {
	case Select, From, Where, Order, For, Values, Set, Union, Minus,
		Intersect:
		return Always
	case Into:
		return Sometimes
	default:
		return Never
	}
}

// NeedSpace reports whether a space must separate two adjacent tokens,
// driven mainly by the second token's kind.
func NeedSpace(first, second Kind) bool {
	switch second {
	case Semicolon, EOF, Percent, Comma, Dot, AtSign, RangeDots, RightLabel:
		return false
	case QuotedID, StringLit, CharLit, NumLit, Remark,
		Plus, MinusSign, Star, Virgule, Equals, Less, Greater, RParens,
		Colon, Expo, NotEqual, Tilde, Hat, LessEqual, GreaterEqual,
		Assignment, Arrow, Bars, LeftLabel:
		return true
	case LParens:
		switch first {
		case Identifier, Varchar2, Number, Char:
			return false
		default:
			return true
		}
	default:
		switch first {
		case Dot, Percent, RangeDots:
			return false
		default:
			return true
		}
	}
}

// NeedIndent reports the likelihood that the first token of a logical
// line should open a new procedural indent level.
func NeedIndent(k Kind) Probability {
	switch k {
	case If, Else, Elsif, When, Loop, While, Begin, Exception, Into:
		return Always
	case For:
		return Sometimes
	default:
		return Never
	}
}

// NeedUnindent reports whether the first token of a logical line should
// pop a procedural indent level.
func NeedUnindent(k Kind) bool {
	switch k {
	case End, Else, Elsif, Exception, When, Into:
		return true
	default:
		return false
	}
}
