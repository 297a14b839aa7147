package eregex

import "testing"

func TestTokenizeClassic(t *testing.T) {
	tz, err := Tokenize(`\w+`, `[,\s]+`, "alpha, beta,gamma  delta")
	if err != nil {
		t.Fatalf("Tokenize: unexpected error: %v", err)
	}
	var got []string
	for tz.Next() {
		got = append(got, tz.Text())
	}
	want := []string{"alpha", "beta", "gamma", "delta"}
	if len(got) != len(want) {
		t.Fatalf("tokens = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTokenizeRangeOverFunc(t *testing.T) {
	tz, err := Tokenize(`\d+`, `\s+`, "10 20 30")
	if err != nil {
		t.Fatalf("Tokenize: unexpected error: %v", err)
	}
	var got []string
	tz.All()(func(tok string) bool {
		got = append(got, tok)
		return true
	})
	want := []string{"10", "20", "30"}
	if len(got) != len(want) {
		t.Fatalf("tokens = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTokenizeMalformedPattern(t *testing.T) {
	_, err := Tokenize("(a", `\s+`, "")
	if err == nil {
		t.Fatal("expected error for malformed token pattern")
	}
}
