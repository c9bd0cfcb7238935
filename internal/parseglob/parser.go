// Package parseglob builds a compiled internal/ast pattern tree from a
// glob pattern string, per spec §4.2.
package parseglob

import (
	"github.com/joeblew999/glob/internal/ast"
	"github.com/joeblew999/glob/internal/lexer"
	"github.com/joeblew999/glob/internal/pathstyle"
)

// Result is a compiled pattern tree plus whether it begins with a
// recognized absolute-root literal (spec §4.3's "pattern can match
// absolute" test, resolved once here instead of re-walking the tree).
type Result struct {
	Tree         *ast.Node
	AbsoluteRoot bool
}

// Parse compiles pattern into a pattern tree. adapter supplies the
// absolute-root detection and separator-normalization rules for the
// requested path style; caseSensitive is stamped onto every node.
func Parse(pattern string, adapter pathstyle.Adapter, caseSensitive bool) (*Result, error) {
	rest := pattern
	var rootNode *ast.Node
	if prefixLen, ok := adapter.DetectPatternRoot(pattern); ok {
		rootNode = &ast.Node{
			Kind:          ast.KindRoot,
			CaseSensitive: caseSensitive,
			Text:          adapter.ToPOSIX(pattern[:prefixLen]),
		}
		rest = pattern[prefixLen:]
	}
	offset := len(pattern) - len(rest)

	toks, err := lexer.Lex(rest)
	if err != nil {
		if lexErr, ok := err.(*lexer.Error); ok {
			return nil, &Error{Pos: lexErr.Pos + offset, Message: lexErr.Message}
		}
		return nil, err
	}

	p := &parser{tokens: toks, caseSensitive: caseSensitive, offset: offset}
	seq, err := p.parseSequence(noStop)
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Kind != lexer.EOF {
		return nil, &Error{Pos: tok.Pos + offset, Message: "unexpected token"}
	}

	children := seq.Children
	if rootNode != nil {
		children = append([]*ast.Node{rootNode}, children...)
	}
	tree := &ast.Node{Kind: ast.KindSequence, CaseSensitive: caseSensitive, Children: children}
	return &Result{Tree: tree, AbsoluteRoot: rootNode != nil}, nil
}

// Recursive wraps a compiled pattern as an Options of the pattern itself
// and the pattern followed by "/**", per spec §4.2's recursive=true rule.
func Recursive(pattern *ast.Node) *ast.Node {
	extendedChildren := make([]*ast.Node, 0, len(pattern.Children)+2)
	extendedChildren = append(extendedChildren, pattern.Children...)
	extendedChildren = append(extendedChildren,
		&ast.Node{Kind: ast.KindSeparator, CaseSensitive: pattern.CaseSensitive},
		&ast.Node{Kind: ast.KindDoubleStar, CaseSensitive: pattern.CaseSensitive},
	)
	extended := &ast.Node{Kind: ast.KindSequence, CaseSensitive: pattern.CaseSensitive, Children: extendedChildren}
	return &ast.Node{Kind: ast.KindOptions, CaseSensitive: pattern.CaseSensitive, Children: []*ast.Node{pattern, extended}}
}

type parser struct {
	tokens        []lexer.Token
	pos           int
	caseSensitive bool
	offset        int
}

func noStop(lexer.Kind) bool { return false }

func (p *parser) peek() lexer.Token {
	return p.tokens[p.pos]
}

func (p *parser) advance() lexer.Token {
	tok := p.tokens[p.pos]
	if tok.Kind != lexer.EOF {
		p.pos++
	}
	return tok
}

// parseSequence consumes atoms until EOF or a token satisfying stop,
// without consuming the stopping token.
func (p *parser) parseSequence(stop func(lexer.Kind) bool) (*ast.Node, error) {
	var children []*ast.Node
	for {
		tok := p.peek()
		if tok.Kind == lexer.EOF || stop(tok.Kind) {
			break
		}
		node, err := p.parseAtom(children)
		if err != nil {
			return nil, err
		}
		children = append(children, node)
	}
	return &ast.Node{Kind: ast.KindSequence, CaseSensitive: p.caseSensitive, Children: children}, nil
}

// parseAtom consumes and builds one sequence element. prevSiblings is the
// sequence built so far, needed to decide whether a DoubleStar token sits
// at a segment boundary (spec §4.2: "**" mid-segment behaves as Star).
func (p *parser) parseAtom(prevSiblings []*ast.Node) (*ast.Node, error) {
	tok := p.advance()
	switch tok.Kind {
	case lexer.Literal:
		return &ast.Node{Kind: ast.KindLiteral, CaseSensitive: p.caseSensitive, Text: tok.Text}, nil
	case lexer.Slash:
		return &ast.Node{Kind: ast.KindSeparator, CaseSensitive: p.caseSensitive}, nil
	case lexer.Question:
		return &ast.Node{Kind: ast.KindAnyChar, CaseSensitive: p.caseSensitive}, nil
	case lexer.Star:
		return &ast.Node{Kind: ast.KindStar, CaseSensitive: p.caseSensitive}, nil
	case lexer.DoubleStar:
		if p.atSegmentBoundary(prevSiblings) {
			return &ast.Node{Kind: ast.KindDoubleStar, CaseSensitive: p.caseSensitive}, nil
		}
		// Not adjacent to separators on both sides: behaves as a single
		// Star, since the lexer has already collapsed the two '*'
		// characters into one token.
		return &ast.Node{Kind: ast.KindStar, CaseSensitive: p.caseSensitive}, nil
	case lexer.RangeBody:
		return parseRangeBody(tok.Text, p.caseSensitive, tok.Pos+p.offset)
	case lexer.BraceOpen:
		return p.parseBraceGroup()
	default:
		return nil, &Error{Pos: tok.Pos + p.offset, Message: "unexpected token"}
	}
}

// atSegmentBoundary reports whether the position just consumed (a
// DoubleStar token) begins a fresh segment (start of pattern, start of a
// brace alternative, or right after a Separator) and ends one (EOF, next
// token is a Separator, or next token closes/continues a brace group).
func (p *parser) atSegmentBoundary(prevSiblings []*ast.Node) bool {
	before := len(prevSiblings) == 0 || prevSiblings[len(prevSiblings)-1].Kind == ast.KindSeparator
	if !before {
		return false
	}
	switch p.peek().Kind {
	case lexer.EOF, lexer.Slash, lexer.Comma, lexer.BraceClose:
		return true
	default:
		return false
	}
}

// parseBraceGroup parses the alternatives of a brace group already past its
// opening '{'.
func (p *parser) parseBraceGroup() (*ast.Node, error) {
	isAltStop := func(k lexer.Kind) bool { return k == lexer.Comma || k == lexer.BraceClose }

	var alts []*ast.Node
	for {
		alt, err := p.parseSequence(isAltStop)
		if err != nil {
			return nil, err
		}
		alts = append(alts, alt)

		tok := p.peek()
		switch tok.Kind {
		case lexer.Comma:
			p.advance()
			continue
		case lexer.BraceClose:
			p.advance()
			return &ast.Node{Kind: ast.KindOptions, CaseSensitive: p.caseSensitive, Children: alts}, nil
		default:
			return nil, &Error{Pos: tok.Pos + p.offset, Message: "unterminated brace group"}
		}
	}
}
