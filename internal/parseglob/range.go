package parseglob

import "github.com/joeblew999/glob/internal/ast"

// rangeChar is one decoded character of a range body, with whether it was
// written with a preceding backslash escape. Escaped characters never act
// as the '^' negation marker or the '-' range operator, even when they
// happen to be those bytes.
type rangeChar struct {
	r   rune
	esc bool
}

// decodeRangeBody unescapes raw range-body text (still backslash-escaped,
// as captured verbatim by the lexer) into its constituent characters.
func decodeRangeBody(raw string) []rangeChar {
	runes := []rune(raw)
	out := make([]rangeChar, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		if runes[i] == '\\' && i+1 < len(runes) {
			out = append(out, rangeChar{r: runes[i+1], esc: true})
			i++
			continue
		}
		out = append(out, rangeChar{r: runes[i], esc: false})
	}
	return out
}

// parseRangeBody turns a lexer.RangeBody token's raw text into a Range node,
// resolving the leading '^' negation and the "'-' at either end, or
// doubled, is a literal hyphen" rule from spec §4.2.
func parseRangeBody(raw string, caseSensitive bool, pos int) (*ast.Node, error) {
	items := decodeRangeBody(raw)

	negate := false
	if len(items) > 0 && !items[0].esc && items[0].r == '^' {
		negate = true
		items = items[1:]
	}
	if len(items) == 0 {
		return nil, &Error{Pos: pos, Message: "empty range"}
	}

	isDash := func(c rangeChar) bool { return !c.esc && c.r == '-' }

	// A '-' is a range operator only at a middle position, and only when
	// neither neighbor is itself an unescaped '-' (a doubled dash is a
	// run of literal hyphens, not an operator).
	isOperator := make([]bool, len(items))
	for i := 1; i < len(items)-1; i++ {
		if !isDash(items[i]) {
			continue
		}
		if isDash(items[i-1]) || isDash(items[i+1]) {
			continue
		}
		isOperator[i] = true
	}

	var ranges []ast.RangeItem
	for i := 0; i < len(items); {
		if i+2 < len(items) && isOperator[i+1] {
			ranges = append(ranges, ast.RangeItem{Lo: items[i].r, Hi: items[i+2].r})
			i += 3
			continue
		}
		ranges = append(ranges, ast.RangeItem{Lo: items[i].r, Hi: items[i].r})
		i++
	}

	return &ast.Node{
		Kind:          ast.KindRange,
		CaseSensitive: caseSensitive,
		Ranges:        ranges,
		Negate:        negate,
	}, nil
}
