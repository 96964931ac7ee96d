// Copyright 2024 The clip Authors.

package clip

import (
	"errors"
	"strings"
)

// The positional parsing protocol: recursive-descent consumption of a
// token stream into typed values. The first error anywhere in the
// descent aborts the whole parse; there is no backtracking.

// The closed set of parse errors. They are surfaced verbatim, never
// wrapped.
var (
	// ErrTooFewArguments: a value needed a token and the stream was empty.
	ErrTooFewArguments = errors.New("too few arguments")
	// ErrBadType: a token was present but failed conversion.
	ErrBadType = errors.New("bad type")
	// ErrVariantNotFound: a discriminant token matched no variant name.
	ErrVariantNotFound = errors.New("variant not found")
	// ErrTooManyArguments: tokens remained after a complete top-level parse.
	ErrTooManyArguments = errors.New("too many arguments")
)

// A TryParser fills itself from a prefix of tokens and returns the
// unconsumed remainder, a sub-slice of tokens. Sub-parsers may leave
// tokens for their caller; only Parse insists on total consumption.
type TryParser interface {
	TryParse(tokens []string) (rest []string, err error)
}

// A Variant is one alternative of a tagged union. Parse consumes the
// variant's own arguments from the tokens after the discriminant; a
// nil Parse marks a variant with no arguments.
type Variant struct {
	Name  string
	Parse func(tokens []string) (rest []string, err error)
}

// ParseVariant consumes one discriminant token and dispatches to the
// matching variant, comparing names case-insensitively. It returns
// ErrTooFewArguments when the stream is empty and ErrVariantNotFound
// when no name matches.
func ParseVariant(tokens []string, variants ...Variant) (rest []string, err error) {
	if len(tokens) == 0 {
		return nil, ErrTooFewArguments
	}
	for _, v := range variants {
		if strings.EqualFold(v.Name, tokens[0]) {
			if v.Parse == nil {
				return tokens[1:], nil
			}
			return v.Parse(tokens[1:])
		}
	}
	return nil, ErrVariantNotFound
}

// Parse fills p from tokens and requires the whole stream to be
// consumed, returning ErrTooManyArguments otherwise. On success the
// continuation then, if non-nil, is invoked with the parse complete.
func Parse(p TryParser, tokens []string, then func() error) error {
	rest, err := p.TryParse(tokens)
	if err != nil {
		return err
	}
	if len(rest) > 0 {
		return ErrTooManyArguments
	}
	if then != nil {
		return then()
	}
	return nil
}
