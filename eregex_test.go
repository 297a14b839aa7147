package eregex

import "testing"

// TestEndToEndScenarios exercises the pattern/query/expected-match table a
// compiled-pattern regex engine is expected to satisfy end to end.
func TestEndToEndScenarios(t *testing.T) {
	cases := []struct {
		pattern string
		query   string
		want    string // expected FindString result; "" means no match
	}{
		{"abc", "xxabcyy", "abc"},
		{"a+b+", "aaabbb", "aaabbb"},
		{"a+?b", "aaab", "aaab"},
		{"colou?r", "color", "color"},
		{"colou?r", "colour", "colour"},
		{"[A-Z][a-z]+", "Hello world", "Hello"},
		{`\d{3}-\d{4}`, "call 555-1234 now", "555-1234"},
		{"cat|dog|bird", "I saw a bird fly", "bird"},
		{"^Start", "Start here", "Start"},
		{"end$", "the very end", "end"},
		{"(ab)+", "ababab", "ababab"},
		{"a{2,3}", "aaaa", "aaa"},
	}
	for _, c := range cases {
		re, err := Compile(c.pattern)
		if err != nil {
			t.Fatalf("Compile(%q): unexpected error: %v", c.pattern, err)
		}
		got := re.FindString(c.query)
		if got != c.want {
			t.Errorf("Compile(%q).FindString(%q) = %q, want %q", c.pattern, c.query, got, c.want)
		}
	}
}

func TestMatchString(t *testing.T) {
	re := MustCompile(`\d+`)
	if !re.MatchString("abc123") {
		t.Error("expected match")
	}
	if re.MatchString("abcdef") {
		t.Error("expected no match")
	}
}

func TestFindStringSubmatch(t *testing.T) {
	re := MustCompile(`(\w+)@(\w+)\.com`)
	got := re.FindStringSubmatch("contact: alice@example.com today")
	want := []string{"alice@example.com", "alice", "example"}
	if len(got) != len(want) {
		t.Fatalf("FindStringSubmatch = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("FindStringSubmatch[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFindAllStringSubmatch(t *testing.T) {
	re := MustCompile(`\d+`)
	got := re.FindAllStringSubmatch("a1 b22 c333")
	want := [][]string{{"1"}, {"22"}, {"333"}}
	if len(got) != len(want) {
		t.Fatalf("FindAllStringSubmatch = %v, want %v", got, want)
	}
	for i := range want {
		if got[i][0] != want[i][0] {
			t.Errorf("match %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestResultDestructure(t *testing.T) {
	re := MustCompile(`(a)(b)?`)
	r := re.Find("xay")
	if !r.IsAccepted() {
		t.Fatal("expected a match")
	}
	got := r.Destructure()
	want := []string{"a", "a", ""}
	if len(got) != len(want) {
		t.Fatalf("Destructure = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Destructure[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestResultCount(t *testing.T) {
	re := MustCompile(`\d+`)
	r := re.Find("1 22 333")
	if !r.IsAccepted() {
		t.Fatal("expected a match")
	}
	if got := r.Count(); got != 1 {
		t.Fatalf("Count() after initial search = %d, want 1", got)
	}
	if !r.Next() {
		t.Fatal("expected a second match")
	}
	if got := r.Count(); got != 2 {
		t.Fatalf("Count() after first Next = %d, want 2", got)
	}
	if !r.Next() {
		t.Fatal("expected a third match")
	}
	if got := r.Count(); got != 3 {
		t.Fatalf("Count() after second Next = %d, want 3", got)
	}
	if r.Next() {
		t.Fatal("expected no fourth match")
	}

	noMatch := MustCompile(`xyz`).Find("abc")
	if got := noMatch.Count(); got != 0 {
		t.Errorf("Count() on a non-accepting Result = %d, want 0", got)
	}
}

func TestResultNext(t *testing.T) {
	re := MustCompile(`\d+`)
	r := re.Find("1 22 333")
	var found []string
	for r.IsAccepted() {
		found = append(found, r.String())
		if !r.Next() {
			break
		}
	}
	want := []string{"1", "22", "333"}
	if len(found) != len(want) {
		t.Fatalf("found = %v, want %v", found, want)
	}
	for i := range want {
		if found[i] != want[i] {
			t.Errorf("found[%d] = %q, want %q", i, found[i], want[i])
		}
	}
}

func TestCompileMalformedPattern(t *testing.T) {
	_, err := Compile("(a")
	if err == nil {
		t.Fatal("expected error for unbalanced paren")
	}
	if _, ok := err.(*MalformedPatternError); !ok {
		t.Errorf("error type = %T, want *MalformedPatternError", err)
	}
}

func TestFindStringSubmatchIndex(t *testing.T) {
	re := MustCompile(`(a+)(b+)`)
	got := re.FindStringSubmatchIndex("xxaaabbx")
	want := []int{2, 7, 2, 5, 5, 7}
	if len(got) != len(want) {
		t.Fatalf("FindStringSubmatchIndex = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}
