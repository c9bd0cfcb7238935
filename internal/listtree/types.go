// Package listtree builds a directory-descent plan from a flattened pattern
// (the planner, spec §4.5) and drives filesystem enumeration against it
// (the walker, spec §4.6).
package listtree

import "github.com/joeblew999/glob/internal/ast"

// Node is one node of a list-tree: a map from child segment pattern to
// child Node (nil when Recursive), plus an optional validator and the
// derived flags the walker and planner's canOverlap computation need.
type Node struct {
	Children  map[*ast.Node]*Node
	Validator *ast.Node // Options node of alternative sub-pattern sequences, or nil

	Recursive    bool
	Intermediate bool
	CanOverlap   bool
}

func newNode() *Node {
	return &Node{Children: make(map[*ast.Node]*Node)}
}

// addValidatorAlt appends alt as one more alternative of n's validator,
// creating the validator Options node on first use.
func (n *Node) addValidatorAlt(alt *ast.Node) {
	if n.Validator == nil {
		n.Validator = &ast.Node{Kind: ast.KindOptions, CaseSensitive: alt.CaseSensitive}
	}
	n.Validator.Children = append(n.Validator.Children, alt)
}

// Tree is {root key → Node}. The root key is an absolute root string (e.g.
// "/", "C:/", "http://host") or "." for a relative alternative.
type Tree map[string]*Node
