package ast_test

import (
	"testing"

	"github.com/joeblew999/glob/internal/ast"
)

func lit(s string) *ast.Node { return &ast.Node{Kind: ast.KindLiteral, Text: s, CaseSensitive: true} }
func sep() *ast.Node         { return &ast.Node{Kind: ast.KindSeparator, CaseSensitive: true} }
func seq(children ...*ast.Node) *ast.Node {
	return &ast.Node{Kind: ast.KindSequence, CaseSensitive: true, Children: children}
}

func TestIsPureLiteralSequence(t *testing.T) {
	if !seq(lit("foo"), sep(), lit("bar")).IsPureLiteralSequence() {
		t.Error("literal+separator sequence should be pure-literal")
	}
	star := &ast.Node{Kind: ast.KindStar, CaseSensitive: true}
	if seq(lit("foo"), star).IsPureLiteralSequence() {
		t.Error("sequence containing a Star should not be pure-literal")
	}
}

func TestLiteralText(t *testing.T) {
	got := seq(lit("foo"), sep(), lit("bar")).LiteralText()
	if got != "foo/bar" {
		t.Errorf("LiteralText = %q, want %q", got, "foo/bar")
	}
}

func TestLiteralTextPanicsOnNonLiteral(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic calling LiteralText on a Star node")
		}
	}()
	(&ast.Node{Kind: ast.KindStar}).LiteralText()
}

func TestContains(t *testing.T) {
	star := &ast.Node{Kind: ast.KindStar, CaseSensitive: true}
	tree := seq(lit("foo"), sep(), star)
	if !tree.Contains(func(n *ast.Node) bool { return n.Kind == ast.KindStar }) {
		t.Error("Contains should find the Star descendant")
	}
	if tree.Contains(func(n *ast.Node) bool { return n.Kind == ast.KindRange }) {
		t.Error("Contains should not find a Range node that isn't present")
	}
}

func TestKindString(t *testing.T) {
	tests := map[ast.Kind]string{
		ast.KindLiteral:    "Literal",
		ast.KindRoot:       "Root",
		ast.KindSeparator:  "Separator",
		ast.KindAnyChar:    "AnyChar",
		ast.KindStar:       "Star",
		ast.KindDoubleStar: "DoubleStar",
		ast.KindRange:      "Range",
		ast.KindOptions:    "Options",
		ast.KindSequence:   "Sequence",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
