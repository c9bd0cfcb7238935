package listtree

import "github.com/joeblew999/glob/internal/ast"

// Plan builds a Tree from flat (flattened, Options-of-Sequences).
// caseSensitive is not consulted: synthesized nodes take the
// case-sensitivity of the segment nodes they wrap. Each alternative is
// inspected independently for a leading KindRoot node (spec §4.5's "pure
// absolute-root Literal" classification) rather than relying on one
// compile-wide flag, since a unioned Glob can combine alternatives of
// differing absoluteness.
func Plan(flat *ast.Node, caseSensitive bool) Tree {
	tree := make(Tree)
	interner := ast.NewInterner()

	for _, alt := range flat.Children {
		children := alt.Children
		rootKey := "."
		if len(children) > 0 && children[0].Kind == ast.KindRoot {
			rootKey = children[0].LiteralText()
			children = children[1:]
		}

		root, ok := tree[rootKey]
		if !ok {
			root = newNode()
			tree[rootKey] = root
		}

		planAlternative(root, splitBySeparator(children), interner)
	}

	for _, root := range tree {
		computeIntermediate(root)
	}
	return tree
}

// planAlternative descends one alternative's segments from node, per
// spec §4.5's per-segment classification.
func planAlternative(node *Node, segments [][]*ast.Node, interner *ast.Interner) {
	for i, seg := range segments {
		if containsDoubleStar(seg) {
			node.Recursive = true
			node.Children = nil
			remainder := joinSegments(segments[i:])
			node.addValidatorAlt(&ast.Node{Kind: ast.KindSequence, CaseSensitive: segCaseSensitive(remainder), Children: remainder})
			return
		}
		if i == len(segments)-1 {
			node.addValidatorAlt(&ast.Node{Kind: ast.KindSequence, CaseSensitive: segCaseSensitive(seg), Children: seg})
			return
		}
		key := interner.Intern(&ast.Node{Kind: ast.KindSequence, CaseSensitive: segCaseSensitive(seg), Children: seg})
		child, ok := node.Children[key]
		if !ok {
			child = newNode()
			node.Children[key] = child
		}
		node = child
	}
}

func segCaseSensitive(nodes []*ast.Node) bool {
	if len(nodes) == 0 {
		return true
	}
	return nodes[0].CaseSensitive
}

// splitBySeparator splits a flat node list into segments at each Separator
// node, dropping the separators themselves.
func splitBySeparator(nodes []*ast.Node) [][]*ast.Node {
	var segments [][]*ast.Node
	var cur []*ast.Node
	for _, n := range nodes {
		if n.Kind == ast.KindSeparator {
			segments = append(segments, cur)
			cur = nil
			continue
		}
		cur = append(cur, n)
	}
	segments = append(segments, cur)
	return segments
}

// joinSegments re-joins a slice of segments with Separator nodes, for a
// recursive node's validator, which must test the whole remaining
// sub-pattern (the DoubleStar segment plus everything after it) at once.
func joinSegments(segments [][]*ast.Node) []*ast.Node {
	var out []*ast.Node
	for i, seg := range segments {
		if i > 0 {
			out = append(out, &ast.Node{Kind: ast.KindSeparator, CaseSensitive: segCaseSensitive(seg)})
		}
		out = append(out, seg...)
	}
	return out
}

func containsDoubleStar(seg []*ast.Node) bool {
	for _, n := range seg {
		if n.Kind == ast.KindDoubleStar {
			return true
		}
	}
	return false
}

func computeIntermediate(n *Node) {
	if n.Recursive {
		return
	}
	allLiteral := len(n.Children) > 0
	for key, child := range n.Children {
		if !key.IsPureLiteralSequence() {
			allLiteral = false
		}
		computeIntermediate(child)
	}
	n.Intermediate = n.Validator == nil && allLiteral
}
