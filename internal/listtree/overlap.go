package listtree

// CanOverlap reports whether listing tree may yield duplicate entities
// (spec §4.5): true when both an absolute root and a "." root are present,
// or when any single node in the plan has more than one child under
// conditions that can produce the same path two different ways.
func CanOverlap(tree Tree, caseSensitive bool) bool {
	hasAbsRoot, hasDotRoot := false, false
	for key := range tree {
		if key == "." {
			hasDotRoot = true
		} else {
			hasAbsRoot = true
		}
	}
	if hasAbsRoot && hasDotRoot {
		return true
	}

	for _, root := range tree {
		computeNodeOverlap(root, caseSensitive)
	}
	for _, root := range tree {
		if anyOverlap(root) {
			return true
		}
	}
	return false
}

// computeNodeOverlap fills in n.CanOverlap bottom-up.
func computeNodeOverlap(n *Node, caseSensitive bool) bool {
	if n.Recursive {
		n.CanOverlap = false
		return false
	}
	descendantOverlap := false
	nonLiteralKey := false
	for key, child := range n.Children {
		if computeNodeOverlap(child, caseSensitive) {
			descendantOverlap = true
		}
		if !key.IsPureLiteralSequence() {
			nonLiteralKey = true
		}
	}
	n.CanOverlap = len(n.Children) > 1 && (!caseSensitive || nonLiteralKey || descendantOverlap)
	return n.CanOverlap
}

func anyOverlap(n *Node) bool {
	if n.CanOverlap {
		return true
	}
	for _, child := range n.Children {
		if anyOverlap(child) {
			return true
		}
	}
	return false
}
