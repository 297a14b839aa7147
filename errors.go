package eregex

import "github.com/disjtqz/e-regex/internal/tree"

// MalformedPatternError is returned by Compile when a pattern fails to
// build. It wraps the underlying *tree.BuildError, which in turn wraps a
// sentinel cause (ErrUnbalancedParen and friends below) so callers can
// test for a specific failure with errors.Is.
type MalformedPatternError struct {
	cause *tree.BuildError
}

func (e *MalformedPatternError) Error() string { return "eregex: " + e.cause.Error() }

func (e *MalformedPatternError) Unwrap() error { return e.cause }

// Sentinel causes, re-exported from package tree so callers never need to
// import an internal package to use errors.Is.
var (
	ErrUnbalancedParen     = tree.ErrUnbalancedParen
	ErrUnbalancedBracket   = tree.ErrUnbalancedBracket
	ErrUnbalancedBrace     = tree.ErrUnbalancedBrace
	ErrDanglingQuantifier  = tree.ErrDanglingQuantifier
	ErrBadRepeatRange      = tree.ErrBadRepeatRange
	ErrInvalidEscape       = tree.ErrInvalidEscape
	ErrEscapeRange         = tree.ErrEscapeRange
	ErrEmptyAlternationArm = tree.ErrEmptyAlternationArm
)
