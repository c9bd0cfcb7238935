// Package flatten rewrites a pattern tree into a flat Options of Sequences
// containing no nested Options, lifting brace alternation out to the top
// level (spec §4.4) so the list-tree planner can route each alternative
// independently.
package flatten

import "github.com/joeblew999/glob/internal/ast"

// Flatten distributes any Sequence surrounding an Options across that
// Options' alternatives (a Cartesian product with sibling Options), and
// returns the result as a single Options node whose children are Sequences
// with no Options descendants. Ranges are left untouched; only Options
// nodes are expanded.
func Flatten(n *ast.Node, caseSensitive bool) *ast.Node {
	alts := expand(n)
	children := make([]*ast.Node, 0, len(alts))
	for _, alt := range alts {
		children = append(children, &ast.Node{
			Kind:          ast.KindSequence,
			CaseSensitive: caseSensitive,
			Children:      alt,
		})
	}
	return &ast.Node{Kind: ast.KindOptions, CaseSensitive: caseSensitive, Children: children}
}

// expand returns every alternative flat child-list n can expand to. A leaf
// node (anything but Sequence/Options) expands to a single one-element
// alternative containing itself unchanged.
func expand(n *ast.Node) [][]*ast.Node {
	switch n.Kind {
	case ast.KindOptions:
		var alts [][]*ast.Node
		for _, child := range n.Children {
			alts = append(alts, expand(child)...)
		}
		return alts
	case ast.KindSequence:
		combos := [][]*ast.Node{{}}
		for _, child := range n.Children {
			childAlts := expand(child)
			next := make([][]*ast.Node, 0, len(combos)*len(childAlts))
			for _, combo := range combos {
				for _, calt := range childAlts {
					merged := make([]*ast.Node, 0, len(combo)+len(calt))
					merged = append(merged, combo...)
					merged = append(merged, calt...)
					next = append(next, merged)
				}
			}
			combos = next
		}
		return combos
	default:
		return [][]*ast.Node{{n}}
	}
}
