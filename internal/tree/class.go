package tree

import (
	"github.com/disjtqz/e-regex/internal/atom"
)

// predefinedLetters is the set of escape payloads that name a predefined
// character class, per spec §4.3.
var predefinedLetters = map[rune]bool{
	'w': true, 'd': true, 's': true,
	'W': true, 'D': true, 'S': true,
}

// literalEscapes is the set of escape payloads that simply mean "this
// character, literally" — the escaped form of a structural metacharacter
// or the backslash itself.
var literalEscapes = map[rune]bool{
	'(': true, ')': true, '[': true, ']': true,
	'{': true, '}': true, '+': true, '*': true, '?': true,
	'^': true, '$': true, '.': true, '|': true, '\\': true, '-': true,
}

// parseEscape handles an Esc atom in atom position: predefined classes,
// literal-metacharacter escapes, and the numeric escape forms \xHH,
// \x{H...}, \o{O...}, \NNN (spec §4.2 table).
func (p *parser) parseEscape() (*Node, error) {
	e := p.advance() // the Esc atom itself

	switch {
	case predefinedLetters[e.Value]:
		return newPredefined(e.Value), nil

	case e.Value == 'x':
		v, err := p.parseHexEscape()
		if err != nil {
			return nil, err
		}
		return &Node{Kind: KindHexLiteral, Value: v, Min: 1, Max: 1, Policy: Greedy}, nil

	case e.Value == 'o':
		v, err := p.parseBracedOctalEscape()
		if err != nil {
			return nil, err
		}
		return &Node{Kind: KindOctalLiteral, Value: v, Min: 1, Max: 1, Policy: Greedy}, nil

	case e.Value >= '0' && e.Value <= '7':
		v, err := p.parseBareOctalEscape(e.Value)
		if err != nil {
			return nil, err
		}
		return &Node{Kind: KindOctalLiteral, Value: v, Min: 1, Max: 1, Policy: Greedy}, nil

	case literalEscapes[e.Value]:
		return &Node{Kind: KindLiteral, Value: e.Value, Min: 1, Max: 1, Policy: Greedy}, nil

	default:
		return nil, &BuildError{Pattern: p.pattern, Pos: e.Pos, Err: ErrInvalidEscape}
	}
}

func newPredefined(letter rune) *Node {
	return &Node{Kind: KindPredefined, Value: letter, Min: 1, Max: 1, Policy: Greedy}
}

// parseHexEscape consumes either two plain hex-digit atoms (\xHH) or a
// braced run of one or more hex digits (\x{H...}).
func (p *parser) parseHexEscape() (rune, error) {
	if p.peekMeta('{') {
		p.advance()
		digits, err := p.scanHexDigits()
		if err != nil {
			return 0, err
		}
		if len(digits) == 0 {
			return 0, p.errAt(ErrInvalidEscape)
		}
		if !p.peekMeta('}') {
			return 0, p.errAt(ErrInvalidEscape)
		}
		p.advance()
		v, err := foldHex(digits)
		if err != nil {
			return 0, p.errAt(err)
		}
		return v, nil
	}
	digits := make([]rune, 0, 2)
	for i := 0; i < 2; i++ {
		a, has := p.peek()
		if !has || !isHexDigit(a.Value) {
			return 0, p.errAt(ErrInvalidEscape)
		}
		digits = append(digits, a.Value)
		p.advance()
	}
	v, err := foldHex(digits)
	if err != nil {
		return 0, p.errAt(err)
	}
	return v, nil
}

// parseBracedOctalEscape consumes \o{O...}.
func (p *parser) parseBracedOctalEscape() (rune, error) {
	if !p.peekMeta('{') {
		return 0, p.errAt(ErrInvalidEscape)
	}
	p.advance()
	digits, err := p.scanOctalDigits(8)
	if err != nil {
		return 0, err
	}
	if len(digits) == 0 {
		return 0, p.errAt(ErrInvalidEscape)
	}
	if !p.peekMeta('}') {
		return 0, p.errAt(ErrInvalidEscape)
	}
	p.advance()
	v, err := foldOctal(digits)
	if err != nil {
		return 0, p.errAt(err)
	}
	return v, nil
}

// parseBareOctalEscape consumes the remaining 0-2 digits of a \NNN escape
// whose first digit (already read from the Esc atom) is first.
func (p *parser) parseBareOctalEscape(first rune) (rune, error) {
	digits := []rune{first}
	for len(digits) < 3 {
		a, has := p.peek()
		if !has || a.Kind != atom.Char || a.Value < '0' || a.Value > '7' {
			break
		}
		digits = append(digits, a.Value)
		p.advance()
	}
	v, err := foldOctal(digits)
	if err != nil {
		return 0, p.errAt(err)
	}
	return v, nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func (p *parser) scanHexDigits() ([]rune, error) {
	var digits []rune
	for {
		a, has := p.peek()
		if !has || !isHexDigit(a.Value) {
			break
		}
		digits = append(digits, a.Value)
		p.advance()
	}
	return digits, nil
}

func (p *parser) scanOctalDigits(max int) ([]rune, error) {
	var digits []rune
	for len(digits) < max {
		a, has := p.peek()
		if !has || a.Value < '0' || a.Value > '7' {
			break
		}
		digits = append(digits, a.Value)
		p.advance()
	}
	return digits, nil
}

func foldHex(digits []rune) (rune, error) {
	var v int64
	for _, d := range digits {
		v = v*16 + int64(hexVal(d))
		if v > 0x10FFFF {
			return 0, ErrEscapeRange
		}
	}
	return rune(v), nil
}

func foldOctal(digits []rune) (rune, error) {
	var v int64
	for _, d := range digits {
		v = v*8 + int64(d-'0')
	}
	if v > 255 {
		return 0, ErrEscapeRange
	}
	return rune(v), nil
}

func hexVal(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	default:
		return int(r-'A') + 10
	}
}

// parseClass := '[' '^'? class-item+ ']'
func (p *parser) parseClass() (*Node, error) {
	open := p.advance() // '['

	negated := false
	if p.peekMeta('^') {
		p.advance()
		negated = true
	}

	var items []*Node
	for {
		if p.atEnd() {
			return nil, &BuildError{Pattern: p.pattern, Pos: open.Pos, Err: ErrUnbalancedBracket}
		}
		if p.peekMeta(']') {
			break
		}
		item, err := p.parseClassItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	p.advance() // ']'

	return &Node{Kind: KindClass, Children: items, Negated: negated, Min: 1, Max: 1, Policy: Greedy}, nil
}

// parseClassItem := char | escape | char '-' char, per spec §6.3. A '-'
// that follows an item and is not directly before ']' is a range
// operator, even when the other endpoint is itself a '-' ("[a--b]" holds
// the range a..'-'); a '-' at the start of the class or directly before
// ']' is a literal hyphen. Both range endpoints must be single
// characters: a predefined class such as \w as an endpoint is a build
// error.
func (p *parser) parseClassItem() (*Node, error) {
	lo, err := p.parseClassAtomValue()
	if err != nil {
		return nil, err
	}

	if p.peekMeta('-') {
		save := p.pos
		p.advance()
		if p.peekMeta(']') {
			// trailing '-': not a range, put it back as a literal hyphen
			// to be read on the next iteration.
			p.pos = save
			return lo, nil
		}
		hi, err := p.parseClassAtomValue()
		if err != nil {
			return nil, err
		}
		if !isLiteralKind(lo.Kind) || !isLiteralKind(hi.Kind) {
			return nil, &BuildError{Pattern: p.pattern, Pos: p.classItemPos(), Err: ErrInvalidEscape}
		}
		return &Node{Kind: KindRange, Value: lo.Value, ValueHi: hi.Value, Min: 1, Max: 1, Policy: Greedy}, nil
	}

	return lo, nil
}

func isLiteralKind(k Kind) bool {
	return k == KindLiteral || k == KindHexLiteral || k == KindOctalLiteral
}

func (p *parser) classItemPos() int {
	if p.atEnd() {
		return len(p.pattern)
	}
	return p.atoms[p.pos].Pos
}

// parseClassAtomValue parses one literal/escape item inside a bracket
// expression, without consuming a following '-' (that is parseClassItem's
// job).
func (p *parser) parseClassAtomValue() (*Node, error) {
	a, ok := p.peek()
	if !ok {
		return nil, &BuildError{Pattern: p.pattern, Pos: len(p.pattern), Err: ErrUnbalancedBracket}
	}
	switch a.Kind {
	case atom.Char:
		p.advance()
		return &Node{Kind: KindLiteral, Value: a.Value, Min: 1, Max: 1, Policy: Greedy}, nil
	case atom.Esc:
		return p.parseEscape()
	case atom.Meta:
		// '-' and ']' are handled by the caller; any other metachar is a
		// literal inside a bracket expression (spec §4.2 bracket row).
		p.advance()
		return &Node{Kind: KindLiteral, Value: a.Value, Min: 1, Max: 1, Policy: Greedy}, nil
	}
	return nil, &BuildError{Pattern: p.pattern, Pos: a.Pos, Err: ErrInvalidEscape}
}
