package eregex

import "github.com/disjtqz/e-regex/internal/engine"

// Result is a match result together with enough state to advance to the
// next non-overlapping match (spec §3.4, §4.4). The zero value reports
// not-yet-initialized; Results are produced by *Regexp's Find methods,
// never constructed directly.
type Result struct {
	re *Regexp

	query    string
	start    int
	end      int
	captures []engine.Span

	initialized bool
	accepted    bool

	// matches is the running count of successful matches this Result has
	// reported over its Next() iteration so far (spec §3.4/§4.4's
	// size()/matches): 1 once a search has accepted, incrementing by one
	// on each further accepted Next(). Distinct from NumGroups()+1, which
	// is a fixed arity, not an iteration count.
	matches int
}

// IsAccepted reports whether the search that produced r found a match.
func (r *Result) IsAccepted() bool { return r.initialized && r.accepted }

// String returns the matched substring, or "" if r did not accept. This
// is the Go analogue of the original's to_view().
func (r *Result) String() string {
	if !r.accepted {
		return ""
	}
	return r.query[r.start:r.end]
}

// Index returns the [start, end) byte offsets of the overall match.
func (r *Result) Index() (start, end int) { return r.start, r.end }

// NumGroups returns the number of capturing groups re was compiled with,
// i.e. the original's groups().
func (r *Result) NumGroups() int {
	if r.re == nil {
		return 0
	}
	return r.re.numCaps
}

// Count returns the number of successful matches this Result has
// reported so far over its Next() iteration: the original's size(). It is
// 1 after the search that produced r (if accepted), and increases by one
// on each further accepted Next(); it is 0 if r never accepted.
func (r *Result) Count() int { return r.matches }

// Group returns the text of capturing group i (1-based; i==0 means the
// overall match), or "" if the group did not participate in the match.
func (r *Result) Group(i int) string {
	if !r.accepted {
		return ""
	}
	if i == 0 {
		return r.String()
	}
	if i < 1 || i > len(r.captures) {
		return ""
	}
	span := r.captures[i-1]
	if span.Empty() {
		return ""
	}
	return r.query[span.Start:span.End]
}

// Groups returns the text of every capturing group, in order, with a
// non-participating group represented as "".
func (r *Result) Groups() []string {
	out := make([]string, r.NumGroups())
	for i := range out {
		out[i] = r.Group(i + 1)
	}
	return out
}

// Destructure returns the overall match followed by every capturing
// group's text, arity groups()+1. Go has no language-level tuple
// destructuring, so this is the explicit stand-in for the original's
// structured decomposition (`auto [whole, a, b] = result;`).
func (r *Result) Destructure() []string {
	out := make([]string, 0, r.NumGroups()+1)
	out = append(out, r.String())
	out = append(out, r.Groups()...)
	return out
}

// Next advances r to the next non-overlapping match at or after the end
// of the current one, and reports whether a further match was found. If
// r did not accept, Next reports false. An empty match advances the
// search position by one byte to guarantee progress, per spec §4.4.
func (r *Result) Next() bool {
	if r.re == nil || !r.accepted {
		return false
	}
	from := r.end
	if from == r.start {
		from++
	}
	if from > len(r.query) {
		r.accepted = false
		return false
	}
	next := r.re.search(r.query, from)
	re := r.re
	priorMatches := r.matches
	*r = *next
	r.re = re
	r.matches = priorMatches
	if r.accepted {
		r.matches++
	}
	return r.accepted
}
