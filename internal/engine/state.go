// Package engine implements the match-execution stage of the e-regex
// pipeline: a recursive backtracking evaluator that walks a matcher tree
// (package tree) over an input string, recording capture spans, per spec
// §3.3 and §4.3.
package engine

// Span is a half-open byte-offset range [Start, End) into a query string.
// Start == -1 means the group did not participate in the match — the Go
// analogue of spec §3.3's "empty span".
type Span struct {
	Start, End int
}

// Empty reports whether the span represents a non-participating group.
func (s Span) Empty() bool { return s.Start < 0 }

func emptySpan() Span { return Span{-1, -1} }

// State is the match state threaded through the evaluator (spec §3.3).
// It is copied by value at every choice point; Captures is copy-on-write
// (see withCapture) so that backtracking never has to undo a mutation —
// it simply discards the State that held it. Grounded on the snapshot
// env-clone technique used throughout
// _examples/rafaelmgr12-grep-go/{state.go,app/state.go}.
type State struct {
	Query          string
	Cursor         int
	Start          int
	LastGroupStart int
	Captures       []Span
}

// withCapture returns a copy of st with group index gi (1-based) recorded
// as [from, st.Cursor).
func (st State) withCapture(gi, from int) State {
	next := st
	caps := make([]Span, len(st.Captures))
	copy(caps, st.Captures)
	caps[gi-1] = Span{from, st.Cursor}
	next.Captures = caps
	return next
}
