package engine

import (
	"unicode/utf8"

	"github.com/disjtqz/e-regex/internal/tree"
)

// cont is the remainder of the match: given the state after some node has
// accepted, it attempts everything that still needs to happen and reports
// overall success. Threading match state through continuations like this
// is what lets a greedy repetition try the longest count first and only
// fall back to shorter counts if the remainder (whatever comes after the
// repeated node) fails — the backtracking the spec describes in §4.3.
type cont func(State) bool

// Search implements spec §4.3's "root invocation": starting at byte
// offset from, try every position up to len(query) until root accepts.
// Captures is sized to numGroups and indexed 0 = group 1.
func Search(root *tree.Node, numGroups int, query string, from int) (start, end int, captures []Span, ok bool) {
	for i := from; i <= len(query); i++ {
		caps := make([]Span, numGroups)
		for g := range caps {
			caps[g] = emptySpan()
		}
		st := State{Query: query, Cursor: i, Start: i, LastGroupStart: i, Captures: caps}

		var final State
		if Eval(root, st, func(s State) bool {
			final = s
			return true
		}) {
			return i, final.Cursor, final.Captures, true
		}
	}
	return 0, 0, nil, false
}

// Eval applies node n's repetition policy (spec §4.3) around a single
// "try" of n, then invokes k with the resulting state. It is the entry
// point used both for top-level nodes and for every child of a sequence.
func Eval(n *tree.Node, st State, k cont) bool {
	switch n.Policy {
	case tree.Lazy:
		return evalLazy(n, st, 0, k)
	case tree.Possessive:
		return evalPossessive(n, st, k)
	default:
		return evalGreedy(n, st, 0, k)
	}
}

// evalGreedy: do tries while count < max and the cursor advances; if the
// remainder then fails, release the last try and retry the remainder.
// Succeeds iff count >= min and the remainder eventually succeeds.
func evalGreedy(n *tree.Node, st State, count int, k cont) bool {
	if n.Max == tree.Unbounded || count < n.Max {
		grew := tryOnce(n, st, func(next State) bool {
			if next.Cursor == st.Cursor {
				// A non-advancing try counts once and ends repetition
				// (spec §4.3: "must advance the cursor" rule).
				if count+1 < n.Min {
					return false
				}
				return k(next)
			}
			return evalGreedy(n, next, count+1, k)
		})
		if grew {
			return true
		}
	}
	if count >= n.Min {
		return k(st)
	}
	return false
}

// evalLazy: attempt the remainder as soon as count >= min; only if that
// fails does it perform one more try (up to max) and retry the remainder.
func evalLazy(n *tree.Node, st State, count int, k cont) bool {
	if count >= n.Min && k(st) {
		return true
	}
	if n.Max == tree.Unbounded || count < n.Max {
		return tryOnce(n, st, func(next State) bool {
			if next.Cursor == st.Cursor {
				if count+1 < n.Min {
					return false
				}
				return k(next)
			}
			return evalLazy(n, next, count+1, k)
		})
	}
	return false
}

// evalPossessive: do tries while count < max and the cursor advances;
// commit to whatever count results and never backtrack into this node.
func evalPossessive(n *tree.Node, st State, k cont) bool {
	count := 0
	cur := st
	for n.Max == tree.Unbounded || count < n.Max {
		next, ok := tryOnceCommitted(n, cur)
		if !ok {
			break
		}
		count++
		if next.Cursor == cur.Cursor {
			cur = next
			break
		}
		cur = next
	}
	if count < n.Min {
		return false
	}
	return k(cur)
}

// tryOnceCommitted runs exactly one occurrence of n to completion with a
// continuation that accepts immediately, so any internal choice inside n
// (an alternation, say) resolves to its own first success and cannot be
// revisited by the caller — the "atomic" quality a possessive quantifier
// needs.
func tryOnceCommitted(n *tree.Node, st State) (State, bool) {
	var result State
	ok := tryOnce(n, st, func(s State) bool {
		result = s
		return true
	})
	return result, ok
}

// tryOnce evaluates exactly one occurrence of n — the repeatable unit
// that Eval's policy loops wrap — without regard to n's own Min/Max.
func tryOnce(n *tree.Node, st State, k cont) bool {
	switch n.Kind {
	case tree.KindGroup:
		return tryGroup(n, st, k)
	case tree.KindAlternation:
		for _, branch := range n.Children {
			if Eval(branch, st, k) {
				return true
			}
		}
		return false
	case tree.KindLiteral, tree.KindHexLiteral, tree.KindOctalLiteral:
		return tryRune(st, k, func(r rune) bool { return r == n.Value })
	case tree.KindAny:
		return tryAnyByte(st, k)
	case tree.KindStartAnchor:
		if st.Cursor == 0 {
			return k(st)
		}
		return false
	case tree.KindEndAnchor:
		if st.Cursor == len(st.Query) {
			return k(st)
		}
		return false
	case tree.KindClass:
		return tryRune(st, k, func(r rune) bool {
			in := classContains(n, r)
			if n.Negated {
				return !in
			}
			return in
		})
	case tree.KindPredefined:
		letter := n.Value
		return tryRune(st, k, func(r rune) bool { return predefinedMatches(letter, r) })
	default:
		return false
	}
}

// tryGroup runs the group's body once; a capturing group additionally
// records [entryCursor, exitCursor) for its index and restores
// LastGroupStart for the caller, per spec §4.3's group semantics.
func tryGroup(n *tree.Node, st State, k cont) bool {
	entry := st.Cursor
	body := st
	body.LastGroupStart = entry

	if n.GroupIndex == 0 {
		return evalSequence(n.Children, 0, body, k)
	}
	return evalSequence(n.Children, 0, body, func(after State) bool {
		captured := after.withCapture(n.GroupIndex, entry)
		captured.LastGroupStart = st.LastGroupStart
		return k(captured)
	})
}

func evalSequence(children []*tree.Node, idx int, st State, k cont) bool {
	if idx >= len(children) {
		return k(st)
	}
	return Eval(children[idx], st, func(next State) bool {
		return evalSequence(children, idx+1, next, k)
	})
}

// tryRune decodes one UTF-8 rune at the cursor and tests it with accept;
// literal, class, and predefined-escape terminals are specified in
// character terms even though the engine is otherwise byte-oriented, so
// they decode a full rune rather than a single byte.
func tryRune(st State, k cont, accept func(rune) bool) bool {
	if st.Cursor >= len(st.Query) {
		return false
	}
	r, size := utf8.DecodeRuneInString(st.Query[st.Cursor:])
	if !accept(r) {
		return false
	}
	next := st
	next.Cursor += size
	return k(next)
}

// tryAnyByte implements '.': any byte except '\n', per spec §4.3's literal
// "matches any byte" wording for this one terminal.
func tryAnyByte(st State, k cont) bool {
	if st.Cursor >= len(st.Query) || st.Query[st.Cursor] == '\n' {
		return false
	}
	next := st
	next.Cursor++
	return k(next)
}

func classContains(n *tree.Node, r rune) bool {
	for _, item := range n.Children {
		switch item.Kind {
		case tree.KindLiteral, tree.KindHexLiteral, tree.KindOctalLiteral:
			if r == item.Value {
				return true
			}
		case tree.KindRange:
			if r >= item.Value && r <= item.ValueHi {
				return true
			}
		case tree.KindPredefined:
			if predefinedMatches(item.Value, r) {
				return true
			}
		}
	}
	return false
}

func predefinedMatches(letter rune, r rune) bool {
	switch letter {
	case 'w':
		return isWord(r)
	case 'W':
		return !isWord(r)
	case 'd':
		return isDigit(r)
	case 'D':
		return !isDigit(r)
	case 's':
		return isSpace(r)
	case 'S':
		return !isSpace(r)
	default:
		return false
	}
}

func isWord(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_'
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ':
		return true
	default:
		return false
	}
}
