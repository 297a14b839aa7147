package eregex

// Tokenizer yields successive non-overlapping matches of a token pattern,
// skipping over matches of a separator pattern between them (spec §6.1).
// It supports both a classic Scanner-style loop and Go 1.23 range-over-func
// iteration; the latter is a supplement this module adds on top of the
// distilled interface, since the host language's own iteration idiom
// never appears in the source this spec was distilled from.
type Tokenizer struct {
	token     *Regexp
	separator *Regexp
	query     string
	pos       int
	cur       string
	done      bool
}

// Tokenize compiles tokenPattern and separatorPattern and returns a
// Tokenizer ready to scan query. Either pattern failing to compile returns
// a *MalformedPatternError.
func Tokenize(tokenPattern, separatorPattern, query string) (*Tokenizer, error) {
	tok, err := Compile(tokenPattern)
	if err != nil {
		return nil, err
	}
	sep, err := Compile(separatorPattern)
	if err != nil {
		return nil, err
	}
	return &Tokenizer{token: tok, separator: sep, query: query}, nil
}

// Next advances to the next token and reports whether one was found.
// Once Next returns false the Tokenizer is exhausted; it does not reset.
func (t *Tokenizer) Next() bool {
	for {
		if t.done || t.pos > len(t.query) {
			t.done = true
			return false
		}

		if sepRes := t.separator.search(t.query, t.pos); sepRes.accepted && sepRes.start == t.pos {
			next := sepRes.end
			if next == t.pos {
				next++ // guarantee progress on an empty separator match
			}
			t.pos = next
			continue
		}

		tokRes := t.token.search(t.query, t.pos)
		if !tokRes.accepted || tokRes.start != t.pos {
			t.done = true
			return false
		}

		t.cur = t.query[tokRes.start:tokRes.end]
		if tokRes.end == tokRes.start {
			t.pos = tokRes.end + 1
		} else {
			t.pos = tokRes.end
		}
		return true
	}
}

// Text returns the token most recently produced by Next.
func (t *Tokenizer) Text() string { return t.cur }

// All returns a range-over-func iterator over every token, for use as
// `for tok := range tz.All() { ... }`.
func (t *Tokenizer) All() func(yield func(string) bool) {
	return func(yield func(string) bool) {
		for t.Next() {
			if !yield(t.Text()) {
				return
			}
		}
	}
}
