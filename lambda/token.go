package lambda

import (
	"strconv"
	"unicode"
)

type TokenKind int

const (
	Variable TokenKind = iota
	Number
	Lambda
	Dot
	OpenParen
	CloseParen
)

var tokenKindNames = [...]string{
	Variable:   "variable",
	Number:     "number",
	Lambda:     "lambda",
	Dot:        "dot",
	OpenParen:  "opening bracket",
	CloseParen: "closing bracket",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(tokenKindNames) {
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return tokenKindNames[k]
}

// Token is one lexical item. Offset is the rune index of the token's first
// character in the tokenized text.
type Token struct {
	Kind   TokenKind
	Name   string // Variable
	Value  uint   // Number
	Offset int
}

func (t Token) String() string {
	switch t.Kind {
	case Variable:
		return t.Name
	case Number:
		return strconv.FormatUint(uint64(t.Value), 10)
	case Lambda:
		return "λ"
	case Dot:
		return "."
	case OpenParen:
		return "("
	case CloseParen:
		return ")"
	}
	return t.Kind.String()
}

// Tokenize splits text into tokens. It never fails: any rune that is not
// whitespace, a digit or one of `\λ.()` becomes a one-rune variable.
// Numbers larger than MaxNumeral saturate at MaxNumeral+1.
func Tokenize(text string) []Token {
	var tokens []Token
	var num *Token
	for i, r := range []rune(text) {
		if r >= '0' && r <= '9' {
			if num == nil {
				tokens = append(tokens, Token{Kind: Number, Offset: i})
				num = &tokens[len(tokens)-1]
			}
			if num.Value <= MaxNumeral {
				num.Value = num.Value*10 + uint(r-'0')
			}
			if num.Value > MaxNumeral {
				num.Value = MaxNumeral + 1
			}
			continue
		}
		num = nil
		switch r {
		case '\\', 'λ':
			tokens = append(tokens, Token{Kind: Lambda, Offset: i})
		case '.':
			tokens = append(tokens, Token{Kind: Dot, Offset: i})
		case '(':
			tokens = append(tokens, Token{Kind: OpenParen, Offset: i})
		case ')':
			tokens = append(tokens, Token{Kind: CloseParen, Offset: i})
		default:
			if !unicode.IsSpace(r) {
				tokens = append(tokens, Token{Kind: Variable, Name: string(r), Offset: i})
			}
		}
	}
	return tokens
}
