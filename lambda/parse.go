package lambda

import "github.com/samber/lo"

type parser struct {
	tokens   []Token
	brackets *Brackets
}

// Parse builds a term from tokens. Application is left-associative and a
// lambda body extends to the end of the enclosing bracket block.
// Multi-parameter abstractions desugar right to left: λa b.M is λa.λb.M.
func Parse(tokens []Token) (Term, error) {
	b, err := MatchBrackets(tokens)
	if err != nil {
		return nil, err
	}
	p := parser{tokens, b}
	return p.parse(0, len(tokens))
}

// ParseString tokenizes and parses text.
func ParseString(text string) (Term, error) {
	return Parse(Tokenize(text))
}

func (p *parser) parse(start, end int) (Term, error) {
	var (
		terms      []Term
		params     []string
		collecting bool
		lambdaPos  int
	)
	for i := start; i < end; i++ {
		tok := p.tokens[i]
		switch tok.Kind {
		case OpenParen:
			if collecting {
				return nil, &ParseError{Kind: UnexpectedToken, Pos: i, Token: tok.Kind}
			}
			closeAt := p.brackets.Close[i]
			t, err := p.parse(i+1, closeAt)
			if err != nil {
				return nil, err
			}
			terms = append(terms, t)
			i = closeAt
		case Lambda:
			if collecting {
				return nil, &ParseError{Kind: ConsecutiveLambdas, Pos: i}
			}
			collecting, lambdaPos = true, i
		case Dot:
			if !collecting {
				return nil, &ParseError{Kind: DotWithoutLambda, Pos: i}
			}
			if len(params) == 0 {
				return nil, &ParseError{Kind: EmptyAbstractionParams, Pos: i}
			}
			blockEnd := p.brackets.EndOfBlock[i]
			body, err := p.parse(i+1, blockEnd)
			if err != nil {
				return nil, err
			}
			for j := len(params) - 1; j >= 0; j-- {
				body = Abs{params[j], body}
			}
			terms = append(terms, body)
			params, collecting = nil, false
			i = blockEnd - 1
		case Variable:
			if collecting {
				params = append(params, tok.Name)
			} else {
				terms = append(terms, Var{tok.Name})
			}
		case Number:
			if collecting {
				return nil, &ParseError{Kind: NumeralAsFormalParameter, Pos: i}
			}
			if tok.Value > MaxNumeral {
				return nil, &ParseError{Kind: NumeralTooLarge, Pos: i}
			}
			terms = append(terms, EncodeNumeral(tok.Value))
		default:
			return nil, &ParseError{Kind: UnexpectedToken, Pos: i, Token: tok.Kind}
		}
	}
	if collecting {
		return nil, &ParseError{Kind: UnterminatedAbstraction, Pos: lambdaPos}
	}
	if len(terms) == 0 {
		return nil, &ParseError{Kind: EmptySubexpression, Pos: start, End: end}
	}
	return lo.Reduce(terms[1:], func(fn Term, arg Term, _ int) Term {
		return App{fn, arg}
	}, terms[0]), nil
}
