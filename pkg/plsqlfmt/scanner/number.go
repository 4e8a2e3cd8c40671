package scanner

import (
	"strings"

	"github.com/plsqlfmt/plsqlfmt/pkg/plsqlfmt/token"
)

// numState is one state of the numeric-literal recognizer.
type numState int

const (
	numInitial numState = iota
	numLeftDigit
	numRightDigit
	numE
	numSign
	numExpo
	numDot
	numError
	numFinished
)

// numEvent classifies one input character for the numeric FSM.
type numEvent int

const (
	evDigit numEvent = iota
	evDot
	evE
	evSign
	evOther
)

func classify(c int) numEvent {
	switch {
	case isDigit(c):
		return evDigit
	case c == '.':
		return evDot
	case c == 'e' || c == 'E':
		return evE
	case c == '+' || c == '-':
		return evSign
	default:
		return evOther
	}
}

// numTransition is the 9-state x 5-event table driving the numeric
// literal recognizer: one or more digits, an optional decimal point, an
// optional exponent with an optional sign and one or more digits.
func numTransition(s numState, e numEvent) numState {
	switch s {
	case numInitial:
		switch e {
		case evDigit:
			return numLeftDigit
		case evDot:
			return numDot
		default:
			return numError
		}
	case numLeftDigit:
		switch e {
		case evDigit:
			return numLeftDigit
		case evDot:
			return numRightDigit
		case evE:
			return numE
		default:
			return numFinished
		}
	case numRightDigit:
		switch e {
		case evDigit:
			return numRightDigit
		case evE:
			return numE
		default:
			return numFinished
		}
	case numE:
		switch e {
		case evDigit:
			return numExpo
		case evSign:
			return numSign
		default:
			return numError
		}
	case numSign:
		if e == evDigit {
			return numExpo
		}
		return numError
	case numExpo:
		switch e {
		case evDigit:
			return numExpo
		default:
			return numFinished
		}
	case numDot:
		if e == evDigit {
			return numRightDigit
		}
		return numError
	default:
		return numError
	}
}

// scanNumber recognizes a numeric literal starting with first, which is
// either a digit or a decimal point already confirmed to be followed by
// a digit.
func (sc *Scanner) scanNumber(pos token.Position, first int) token.Token {
	var b strings.Builder
	b.WriteByte(byte(first))

	state := numTransition(numInitial, classify(first))

	for state != numFinished && state != numError {
		c := sc.s.Getc()
		if c == eof {
			// Treat EOF like "other": it can only finish or error out,
			// and there is nothing left to unget.
			state = numTransition(state, evOther)
			break
		}
		if state == numLeftDigit && c == '.' {
			// "1..10": the dot starts a range operator, not a fraction.
			if c2 := sc.s.Getc(); c2 == '.' {
				sc.s.Ungetc(c2)
				sc.s.Ungetc(c)
				state = numFinished
				break
			} else if c2 != eof {
				sc.s.Ungetc(c2)
			}
		}
		next := numTransition(state, classify(c))
		if next == numFinished || next == numError {
			sc.s.Ungetc(c)
			state = next
			break
		}
		b.WriteByte(byte(c))
		state = next
	}

	if state == numError {
		return token.Token{Kind: token.Error, Pos: pos, Text: b.String(), Err: "Invalid numeric literal"}
	}
	return token.Token{Kind: token.NumLit, Pos: pos, Text: b.String()}
}
