package tree

import (
	"fmt"
	"strings"

	"github.com/disjtqz/e-regex/internal/atom"
)

// Format renders a matcher tree back to pattern text. It does not aim to
// reproduce the original source byte-for-byte — synthetic non-capturing
// sequence wrappers are elided — only to produce *some* pattern whose
// rebuilt tree matches identically on every input, which is what spec
// §8.4's round-trip property asks for.
func Format(n *Node) string {
	var b strings.Builder
	formatNode(&b, n)
	return b.String()
}

func formatNode(b *strings.Builder, n *Node) {
	if n == nil {
		return
	}
	switch n.Kind {
	case KindGroup:
		formatGroup(b, n)
		return
	case KindAlternation:
		parts := make([]string, len(n.Children))
		for i, c := range n.Children {
			parts[i] = Format(c)
		}
		b.WriteString(strings.Join(parts, "|"))
		return
	}

	// Terminal kinds: write the atom text, then apply the repetition
	// suffix (terminals are never themselves GroupIndex-bearing).
	writeTerminal(b, n)
	writeQuantifier(b, n)
}

func formatGroup(b *strings.Builder, n *Node) {
	var body strings.Builder
	for _, c := range n.Children {
		formatNode(&body, c)
	}

	switch {
	case n.GroupIndex > 0:
		b.WriteString("(")
		b.WriteString(body.String())
		b.WriteString(")")
	case n.Min != 1 || n.Max != 1 || n.Policy != Greedy,
		len(n.Children) == 1 && n.Children[0].Kind == KindAlternation:
		b.WriteString("(?:")
		b.WriteString(body.String())
		b.WriteString(")")
	default:
		b.WriteString(body.String())
		return // no quantifier possible on a transparent wrapper
	}
	writeQuantifier(b, n)
}

func writeTerminal(b *strings.Builder, n *Node) {
	switch n.Kind {
	case KindLiteral:
		writeEscapedRune(b, n.Value)
	case KindAny:
		b.WriteString(".")
	case KindStartAnchor:
		b.WriteString("^")
	case KindEndAnchor:
		b.WriteString("$")
	case KindPredefined:
		b.WriteByte('\\')
		b.WriteRune(n.Value)
	case KindHexLiteral:
		fmt.Fprintf(b, "\\x{%x}", n.Value)
	case KindOctalLiteral:
		fmt.Fprintf(b, "\\o{%o}", n.Value)
	case KindClass:
		b.WriteString("[")
		if n.Negated {
			b.WriteString("^")
		}
		for _, item := range n.Children {
			writeClassItem(b, item)
		}
		b.WriteString("]")
	}
}

func writeClassItem(b *strings.Builder, n *Node) {
	switch n.Kind {
	case KindRange:
		writeClassRune(b, n.Value)
		b.WriteString("-")
		writeClassRune(b, n.ValueHi)
	case KindPredefined:
		b.WriteByte('\\')
		b.WriteRune(n.Value)
	default:
		writeClassRune(b, n.Value)
	}
}

func writeClassRune(b *strings.Builder, r rune) {
	if r == ']' || r == '\\' || r == '^' || r == '-' {
		b.WriteByte('\\')
	}
	b.WriteRune(r)
}

func writeEscapedRune(b *strings.Builder, r rune) {
	if atom.IsMeta(r) || r == '\\' {
		b.WriteByte('\\')
	}
	b.WriteRune(r)
}

func writeQuantifier(b *strings.Builder, n *Node) {
	switch {
	case n.Min == 1 && n.Max == 1:
		return
	case n.Min == 0 && n.Max == Unbounded:
		b.WriteString("*")
	case n.Min == 1 && n.Max == Unbounded:
		b.WriteString("+")
	case n.Min == 0 && n.Max == 1:
		b.WriteString("?")
	case n.Max == Unbounded:
		fmt.Fprintf(b, "{%d,}", n.Min)
	case n.Min == n.Max:
		fmt.Fprintf(b, "{%d}", n.Min)
	default:
		fmt.Fprintf(b, "{%d,%d}", n.Min, n.Max)
	}
	switch n.Policy {
	case Lazy:
		b.WriteString("?")
	case Possessive:
		b.WriteString("+")
	}
}
