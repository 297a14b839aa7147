package tree

import "testing"

func TestParseClassRanges(t *testing.T) {
	root, _, err := Build("[a-z0-9_]")
	if err != nil {
		t.Fatalf("Build: unexpected error: %v", err)
	}
	cls := root.Children[0]
	if cls.Kind != KindClass || cls.Negated {
		t.Fatalf("class = %v, want non-negated KindClass", cls)
	}
	if len(cls.Children) != 3 {
		t.Fatalf("len(cls.Children) = %d, want 3", len(cls.Children))
	}
	if cls.Children[0].Kind != KindRange || cls.Children[0].Value != 'a' || cls.Children[0].ValueHi != 'z' {
		t.Errorf("first item = %v, want range a-z", cls.Children[0])
	}
	if cls.Children[2].Kind != KindLiteral || cls.Children[2].Value != '_' {
		t.Errorf("third item = %v, want literal '_'", cls.Children[2])
	}
}

func TestParseClassNegated(t *testing.T) {
	root, _, err := Build("[^abc]")
	if err != nil {
		t.Fatalf("Build: unexpected error: %v", err)
	}
	if !root.Children[0].Negated {
		t.Error("expected negated class")
	}
}

func TestParseClassTrailingHyphenIsLiteral(t *testing.T) {
	root, _, err := Build("[a-]")
	if err != nil {
		t.Fatalf("Build: unexpected error: %v", err)
	}
	cls := root.Children[0]
	if len(cls.Children) != 2 {
		t.Fatalf("len(cls.Children) = %d, want 2", len(cls.Children))
	}
	if cls.Children[1].Kind != KindLiteral || cls.Children[1].Value != '-' {
		t.Errorf("second item = %v, want literal '-'", cls.Children[1])
	}
}

func TestParseEscapeForms(t *testing.T) {
	cases := []struct {
		pattern string
		kind    Kind
		value   rune
	}{
		{`\w`, KindPredefined, 'w'},
		{`\d`, KindPredefined, 'd'},
		{`\.`, KindLiteral, '.'},
		{`\x41`, KindHexLiteral, 'A'},
		{`\x{1F600}`, KindHexLiteral, 0x1F600},
		{`\101`, KindOctalLiteral, 'A'},
		{`\o{101}`, KindOctalLiteral, 'A'},
	}
	for _, c := range cases {
		root, _, err := Build(c.pattern)
		if err != nil {
			t.Fatalf("Build(%q): unexpected error: %v", c.pattern, err)
		}
		n := root.Children[0]
		if n.Kind != c.kind || n.Value != c.value {
			t.Errorf("Build(%q) = {Kind:%v Value:%q}, want {Kind:%v Value:%q}",
				c.pattern, n.Kind, n.Value, c.kind, c.value)
		}
	}
}

func TestParseEscapeRangeError(t *testing.T) {
	_, _, err := Build(`\x{110000}`)
	if err == nil {
		t.Fatal("expected error for out-of-range hex escape")
	}
}
