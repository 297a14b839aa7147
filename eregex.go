// Package eregex implements a fixed-pattern regular expression engine:
// a pattern is compiled once into an immutable matcher tree, then that
// same tree is walked by a recursive backtracking evaluator against any
// number of input strings. There is no DFA/NFA construction stage and no
// general bytecode interpreter — matching is a direct tree walk, in the
// spirit of the compile-time regex library this module's design is
// descended from.
package eregex

import (
	"fmt"

	"github.com/disjtqz/e-regex/internal/engine"
	"github.com/disjtqz/e-regex/internal/tree"
)

// Regexp is a compiled pattern. The zero value is not usable; construct
// one with Compile or MustCompile. A *Regexp is immutable after
// construction and safe for concurrent use by multiple goroutines, since
// matching never mutates the tree — only the per-call engine.State does.
type Regexp struct {
	pattern string
	root    *tree.Node
	numCaps int
}

// Compile builds pattern into a *Regexp. It returns a *MalformedPatternError
// if pattern cannot be parsed into a matcher tree.
func Compile(pattern string) (*Regexp, error) {
	root, numCaps, err := tree.Build(pattern)
	if err != nil {
		be, ok := err.(*tree.BuildError)
		if !ok {
			return nil, err
		}
		return nil, &MalformedPatternError{cause: be}
	}
	return &Regexp{pattern: pattern, root: root, numCaps: numCaps}, nil
}

// MustCompile is like Compile but panics if pattern is malformed. It is
// intended for patterns known at compile time, mirroring stdlib
// regexp.MustCompile.
func MustCompile(pattern string) *Regexp {
	re, err := Compile(pattern)
	if err != nil {
		panic(fmt.Sprintf("eregex: Compile(%q): %v", pattern, err))
	}
	return re
}

// String returns the source pattern re was compiled from.
func (re *Regexp) String() string { return re.pattern }

// NumSubexp returns the number of capturing groups in re's pattern.
func (re *Regexp) NumSubexp() int { return re.numCaps }

// search runs the engine starting from byte offset from and wraps the raw
// result into a *Result; if there was no match at or after from, the
// returned Result is non-nil and does not accept.
func (re *Regexp) search(query string, from int) *Result {
	start, end, caps, ok := engine.Search(re.root, re.numCaps, query, from)
	if !ok {
		return &Result{re: re, query: query, initialized: true, accepted: false}
	}
	return &Result{
		re:          re,
		query:       query,
		start:       start,
		end:         end,
		captures:    caps,
		initialized: true,
		accepted:    true,
		matches:     1,
	}
}

// MatchString reports whether query contains any match for re.
func (re *Regexp) MatchString(query string) bool {
	return re.search(query, 0).accepted
}

// FindString returns the text of the leftmost match, or "" if there is
// none. Use FindStringIndex to distinguish "no match" from "matched the
// empty string".
func (re *Regexp) FindString(query string) string {
	r := re.search(query, 0)
	if !r.accepted {
		return ""
	}
	return r.String()
}

// FindStringIndex returns the [start, end) byte offsets of the leftmost
// match, or nil if there is none.
func (re *Regexp) FindStringIndex(query string) []int {
	r := re.search(query, 0)
	if !r.accepted {
		return nil
	}
	return []int{r.start, r.end}
}

// FindStringSubmatch returns the text of the leftmost match together with
// the text of each capturing group (index 0 is the whole match; a
// non-participating group is ""), or nil if there is no match.
func (re *Regexp) FindStringSubmatch(query string) []string {
	r := re.search(query, 0)
	if !r.accepted {
		return nil
	}
	return r.Destructure()
}

// FindStringSubmatchIndex returns the [start, end) byte offsets of the
// leftmost match and of each capturing group, flattened pairwise (index 0
// is the whole match's start, index 1 its end, index 2 group 1's start,
// and so on). A non-participating group's pair is [-1, -1]. Returns nil if
// there is no match.
func (re *Regexp) FindStringSubmatchIndex(query string) []int {
	r := re.search(query, 0)
	if !r.accepted {
		return nil
	}
	out := make([]int, 0, 2*(len(r.captures)+1))
	out = append(out, r.start, r.end)
	for _, c := range r.captures {
		out = append(out, c.Start, c.End)
	}
	return out
}

// FindAllStringSubmatch returns the submatch slices (as FindStringSubmatch
// would produce) for every successive, non-overlapping match of re in
// query, by repeatedly calling Next on the Result returned from the first
// search (spec's §4.4 iterator semantics).
func (re *Regexp) FindAllStringSubmatch(query string) [][]string {
	var all [][]string
	r := re.search(query, 0)
	for r.accepted {
		all = append(all, r.Destructure())
		if !r.Next() {
			break
		}
	}
	return all
}

// Find returns a fresh Result positioned at the leftmost match of re in
// query, for callers that want the full Result surface (Group, Count,
// Next, ...) rather than one of the FindXxx convenience shapes.
func (re *Regexp) Find(query string) *Result {
	return re.search(query, 0)
}
