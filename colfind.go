package kdtree

import "sort"

// FindCollidingPairs reports every intersecting pair of elements in
// the tree, each pair exactly once, by walking the flat node array
// with the dual recursion: self-sweep each node, then cross-sweep it
// against every node visited on the way down to each of its children.
func (t *Tree[T, N]) FindCollidingPairs(handler CollisionFunc[T, N]) {
	if len(t.nodes) == 0 {
		return
	}
	report := func(a, b *T) { handler(newHandle[T, N](a), newHandle[T, N](b)) }
	driveSeq[T, N](t.nodes, 0, report)
}

func driveSeq[T Bounds[N], N Num](nodes []node[T, N], idx int, report func(a, b *T)) {
	if idx >= len(nodes) {
		return
	}
	n := &nodes[idx]
	selfSweepNode[T, N](n, report)

	li, ri := 2*idx+1, 2*idx+2
	if li >= len(nodes) {
		return
	}
	anchorDescend[T, N](nodes, n, li, report)
	anchorDescend[T, N](nodes, n, ri, report)

	driveSeq[T, N](nodes, li, report)
	driveSeq[T, N](nodes, ri, report)
}

// anchorDescend walks from a visited descendant index down toward the
// anchor node's other children, cross-sweeping the anchor against
// every node it passes and pruning which side(s) to continue into
// when the anchor and the descendant share a split axis (the anchor's
// cont only covers its own axis, so only then can it be compared with
// the descendant's divider).
func anchorDescend[T Bounds[N], N Num](nodes []node[T, N], anchor *node[T, N], idx int, report func(a, b *T)) {
	if idx >= len(nodes) || len(anchor.elems) == 0 {
		return
	}
	d := &nodes[idx]
	crossSweep[T, N](anchor, d, report)

	li, ri := 2*idx+1, 2*idx+2
	if li >= len(nodes) {
		return
	}
	if d.div == nil {
		anchorDescend[T, N](nodes, anchor, li, report)
		anchorDescend[T, N](nodes, anchor, ri, report)
		return
	}

	if anchor.axis == d.axis {
		switch {
		case anchor.cont.End < *d.div:
			anchorDescend[T, N](nodes, anchor, li, report)
		case anchor.cont.Start > *d.div:
			anchorDescend[T, N](nodes, anchor, ri, report)
		default:
			anchorDescend[T, N](nodes, anchor, li, report)
			anchorDescend[T, N](nodes, anchor, ri, report)
		}
		return
	}

	// Axis mismatch: the descendant's divider lies on the other axis
	// from the anchor's cont, so there's nothing to compare; visit both.
	anchorDescend[T, N](nodes, anchor, li, report)
	anchorDescend[T, N](nodes, anchor, ri, report)
}

func selfSweepNode[T Bounds[N], N Num](n *node[T, N], report func(a, b *T)) {
	if len(n.elems) < 2 {
		return
	}
	if n.sorted {
		sweepSelf[T, N](n.elems, n.axis.Perp(), report)
		return
	}
	naiveSelfPairs[T, N](n.elems, report)
}

// crossSweep compares an anchor node's elements against a descendant
// node's elements. The merge-style sweep only applies when both sides
// are sorted on the same perpendicular axis. When only one side is
// sorted, each element of the other side gets a single-anchor sweep
// against it instead, which still prunes via early exit; only when
// neither side offers a sorted order does this fall back to a direct
// pairwise scan.
func crossSweep[T Bounds[N], N Num](anchor, d *node[T, N], report func(a, b *T)) {
	if len(anchor.elems) == 0 || len(d.elems) == 0 {
		return
	}
	if anchor.sorted && d.sorted && anchor.axis == d.axis {
		sweepParallel[T, N](anchor.elems, d.elems, anchor.axis.Perp(), report)
		return
	}
	if d.sorted {
		perpAxis := d.axis.Perp()
		for i := range anchor.elems {
			sweepPerpOnce[T, N](&anchor.elems[i], d.elems, perpAxis, report)
		}
		return
	}
	if anchor.sorted {
		perpAxis := anchor.axis.Perp()
		for i := range d.elems {
			sweepPerpOnce[T, N](&d.elems[i], anchor.elems, perpAxis, func(a, b *T) { report(b, a) })
		}
		return
	}
	naiveCrossPairs[T, N](anchor.elems, d.elems, report)
}

func naiveSelfPairs[T Bounds[N], N Num](elems []T, report func(a, b *T)) {
	for i := 0; i < len(elems); i++ {
		for j := i + 1; j < len(elems); j++ {
			if elems[i].AABB().Intersects(elems[j].AABB()) {
				report(&elems[i], &elems[j])
			}
		}
	}
}

func naiveCrossPairs[T Bounds[N], N Num](a, b []T, report func(x, y *T)) {
	for i := range a {
		for j := range b {
			if a[i].AABB().Intersects(b[j].AABB()) {
				report(&a[i], &b[j])
			}
		}
	}
}

// FindCollidingPairsNaive is an O(n^2) all-pairs oracle, used to check
// the tree-based drivers for correctness.
func FindCollidingPairsNaive[T Bounds[N], N Num](elements []T, handler CollisionFunc[T, N]) {
	report := func(a, b *T) { handler(newHandle[T, N](a), newHandle[T, N](b)) }
	naiveSelfPairs[T, N](elements, report)
}

// FindCollidingPairsSweepAndPrune is a second oracle: sort once by X
// start, then run a single mark-and-sweep pass. It shares no code
// path with the tree driver, so agreement between the two is a
// meaningful correctness check.
func FindCollidingPairsSweepAndPrune[T Bounds[N], N Num](elements []T, handler CollisionFunc[T, N]) {
	if len(elements) < 2 {
		return
	}
	cp := make([]T, len(elements))
	copy(cp, elements)
	sort.Sort(byAxisStart[T, N]{elems: cp, axis: AxisX})

	report := func(a, b *T) { handler(newHandle[T, N](a), newHandle[T, N](b)) }
	sweepSelf[T, N](cp, AxisX, report)
}
