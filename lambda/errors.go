package lambda

import (
	"errors"
	"fmt"
	"strings"
)

type ErrorKind int

const (
	UnmatchedClosingBracket ErrorKind = iota
	UnclosedOpeningBracket
	ConsecutiveLambdas
	DotWithoutLambda
	EmptyAbstractionParams
	EmptySubexpression
	NumeralAsFormalParameter
	UnexpectedToken
	UnterminatedAbstraction
	NumeralTooLarge
)

// ParseError reports why a token sequence could not be parsed. Pos is a token
// index; for EmptySubexpression the offending range is [Pos, End).
type ParseError struct {
	Kind  ErrorKind
	Pos   int
	End   int
	Token TokenKind // UnexpectedToken only
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case UnmatchedClosingBracket:
		return fmt.Sprintf("unmatched closing bracket at %d", e.Pos)
	case UnclosedOpeningBracket:
		return fmt.Sprintf("opening bracket at %d was never closed", e.Pos)
	case ConsecutiveLambdas:
		return fmt.Sprintf("lambda at %d starts before the previous lambda's dot", e.Pos)
	case DotWithoutLambda:
		return fmt.Sprintf("dot at %d has no preceding lambda", e.Pos)
	case EmptyAbstractionParams:
		return fmt.Sprintf("dot at %d follows a lambda with no formal parameters", e.Pos)
	case EmptySubexpression:
		return fmt.Sprintf("empty subexpression between %d and %d", e.Pos, e.End)
	case NumeralAsFormalParameter:
		return fmt.Sprintf("numeral at %d used as a formal parameter", e.Pos)
	case UnexpectedToken:
		return fmt.Sprintf("unexpected %v at %d", e.Token, e.Pos)
	case UnterminatedAbstraction:
		return fmt.Sprintf("lambda at %d has no dot", e.Pos)
	case NumeralTooLarge:
		return fmt.Sprintf("numeral at %d exceeds %d", e.Pos, MaxNumeral)
	}
	return fmt.Sprintf("parse error at %d", e.Pos)
}

var (
	ErrInvalidRename    = errors.New("invalid rename choice")
	ErrReductionPending = errors.New("a reduction is already in progress on this tree")
	ErrRenamesPending   = errors.New("alpha-conversions are still pending")
	ErrNothingToRename  = errors.New("no alpha-conversion is pending")
	ErrReductionClosed  = errors.New("reduction already committed or cancelled")
	ErrStepLimit        = errors.New("step limit reached before normal form")
)

// RenameError rejects a proposed binder name. The tree is left unchanged.
type RenameError struct {
	Name      string
	Forbidden []string
}

func (e *RenameError) Error() string {
	if e.Name == "" {
		return "invalid rename choice: name is empty"
	}
	return fmt.Sprintf("invalid rename choice: %q is one of {%s}", e.Name, strings.Join(e.Forbidden, ", "))
}

func (e *RenameError) Is(target error) bool { return target == ErrInvalidRename }
