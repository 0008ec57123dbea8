package tree

// Flatten returns every node reachable from roots in depth-first pre-order,
// the order in which nodes appear in the serialized document.
func Flatten(roots []*Node) []*Node {
	var out []*Node
	Walk(roots, func(n *Node, _ int) bool {
		out = append(out, n)
		return true
	})
	return out
}

// Count returns the number of nodes reachable from roots.
func Count(roots []*Node) int {
	count := 0
	Walk(roots, func(*Node, int) bool {
		count++
		return true
	})
	return count
}

// Depth returns the number of levels in the forest. A lone root has depth 1
// and an empty forest has depth 0.
func Depth(roots []*Node) int {
	deepest := 0
	Walk(roots, func(_ *Node, depth int) bool {
		deepest = max(deepest, depth)
		return true
	})
	return deepest
}

// Walk visits every node reachable from roots in depth-first pre-order,
// passing its depth (roots are depth 1). Returning false from visit stops
// the walk. Walk uses an explicit stack, so very deep chains are safe.
func Walk(roots []*Node, visit func(n *Node, depth int) bool) {
	type frame struct {
		node  *Node
		depth int
	}
	stack := make([]frame, 0, len(roots))
	for i := len(roots) - 1; i >= 0; i-- {
		stack = append(stack, frame{roots[i], 1})
	}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.node == nil {
			continue
		}
		if !visit(f.node, f.depth) {
			return
		}
		for i := len(f.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{f.node.Children[i], f.depth + 1})
		}
	}
}
