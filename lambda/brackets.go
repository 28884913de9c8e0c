package lambda

// Brackets indexes the bracket structure of a token sequence.
// Close[i] is the matching close of the open at i, Open[i] the matching open
// of the close at i; both are -1 elsewhere. EndOfBlock[i] is the index of the
// close bracket ending the innermost block enclosing i, or len(tokens).
type Brackets struct {
	Close      []int
	Open       []int
	EndOfBlock []int
}

func MatchBrackets(tokens []Token) (*Brackets, error) {
	b := &Brackets{
		Close:      make([]int, len(tokens)),
		Open:       make([]int, len(tokens)),
		EndOfBlock: make([]int, len(tokens)),
	}
	var opens []int
	for i, tok := range tokens {
		b.Close[i], b.Open[i] = -1, -1
		switch tok.Kind {
		case OpenParen:
			opens = append(opens, i)
		case CloseParen:
			if len(opens) == 0 {
				return nil, &ParseError{Kind: UnmatchedClosingBracket, Pos: i}
			}
			open := opens[len(opens)-1]
			opens = opens[:len(opens)-1]
			b.Close[open] = i
			b.Open[i] = open
		}
	}
	if len(opens) > 0 {
		return nil, &ParseError{Kind: UnclosedOpeningBracket, Pos: opens[0]}
	}

	closes := []int{len(tokens)}
	for i := len(tokens) - 1; i >= 0; i-- {
		switch tokens[i].Kind {
		case CloseParen:
			b.EndOfBlock[i] = closes[len(closes)-1]
			closes = append(closes, i)
		case OpenParen:
			closes = closes[:len(closes)-1]
			b.EndOfBlock[i] = closes[len(closes)-1]
		default:
			b.EndOfBlock[i] = closes[len(closes)-1]
		}
	}
	return b, nil
}
