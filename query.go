package kdtree

// Query reports every element whose bounds intersect area. It walks
// the flat node array with an explicit index stack rather than
// recursion, pruning a subtree whenever area cannot reach past its
// divider.
func (t *Tree[T, N]) Query(area Rect[N], report func(Handle[T, N])) {
	if len(t.nodes) == 0 {
		return
	}

	nodesToSearch := []int{0}
	for len(nodesToSearch) > 0 {
		idx := popNodeIdx(&nodesToSearch)
		n := &t.nodes[idx]

		for i := range n.elems {
			e := &n.elems[i]
			if area.Intersects(e.AABB()) {
				report(newHandle[T, N](e))
			}
		}

		li, ri := 2*idx+1, 2*idx+2
		if li >= len(t.nodes) {
			continue
		}
		if n.div == nil {
			nodesToSearch = append(nodesToSearch, li, ri)
			continue
		}

		side := area.Axis(n.axis)
		if side.Start < *n.div {
			nodesToSearch = append(nodesToSearch, li)
		}
		if side.End > *n.div {
			nodesToSearch = append(nodesToSearch, ri)
		}
	}
}

func popNodeIdx(stack *[]int) int {
	s := *stack
	n := len(s) - 1
	idx := s[n]
	*stack = s[:n]
	return idx
}
