package kdtree

import "container/heap"

// KNN returns the k elements closest to p, nearest first. Ties beyond
// the kth element are broken arbitrarily. It is a best-first search
// over a min-heap keyed by a distance lower bound: every popped
// element is, by construction, at least as close as anything still on
// the heap, so the first k pops are exactly the answer.
func (t *Tree[T, N]) KNN(p Point[N], k int) []Handle[T, N] {
	if k <= 0 || len(t.nodes) == 0 {
		return nil
	}

	pq := &knnHeap[T, N]{{dist: 0, nodeIdx: 0}}
	heap.Init(pq)

	var results []Handle[T, N]
	for pq.Len() > 0 && len(results) < k {
		it := heap.Pop(pq).(knnItem[T, N])
		if it.isElem {
			results = append(results, newHandle[T, N](it.elem))
			continue
		}

		idx := it.nodeIdx
		if idx >= len(t.nodes) {
			continue
		}
		n := &t.nodes[idx]

		for i := range n.elems {
			e := &n.elems[i]
			heap.Push(pq, knnItem[T, N]{dist: pointRectDistSq(p, e.AABB()), isElem: true, elem: e})
		}

		li, ri := 2*idx+1, 2*idx+2
		if li < len(t.nodes) {
			heap.Push(pq, knnItem[T, N]{dist: subtreeBoundDist(n, li, p), nodeIdx: li})
			heap.Push(pq, knnItem[T, N]{dist: subtreeBoundDist(n, ri, p), nodeIdx: ri})
		}
	}
	return results
}

type knnItem[T Bounds[N], N Num] struct {
	dist    N
	isElem  bool
	nodeIdx int
	elem    *T
}

type knnHeap[T Bounds[N], N Num] []knnItem[T, N]

func (h knnHeap[T, N]) Len() int           { return len(h) }
func (h knnHeap[T, N]) Less(i, j int) bool { return h[i].dist < h[j].dist }
func (h knnHeap[T, N]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *knnHeap[T, N]) Push(x interface{}) {
	*h = append(*h, x.(knnItem[T, N]))
}

func (h *knnHeap[T, N]) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}

func pointRectDistSq[N Num](p Point[N], r Rect[N]) N {
	dx := clampDist(p.X, r.X)
	dy := clampDist(p.Y, r.Y)
	return dx*dx + dy*dy
}

func clampDist[N Num](v N, r Range[N]) N {
	switch {
	case v < r.Start:
		return r.Start - v
	case v > r.End:
		return v - r.End
	default:
		var zero N
		return zero
	}
}

// subtreeBoundDist is an admissible lower bound on the distance from
// p to any element in the subtree rooted at childIdx. A KD-tree node
// here only records a single-axis cont/div, not a full bounding
// rectangle, so the tightest safe bound available is 0 when p is
// already on that child's side of the divider, or the squared
// distance to the divider itself otherwise.
func subtreeBoundDist[T Bounds[N], N Num](n *node[T, N], childIdx int, p Point[N]) N {
	if n.div == nil {
		var zero N
		return zero
	}
	d := *n.div
	coord := p.X
	if n.axis == AxisY {
		coord = p.Y
	}

	isLeft := childIdx%2 == 1 // 2*idx+1 (left) is always odd, 2*idx+2 (right) always even.
	if (isLeft && coord <= d) || (!isLeft && coord >= d) {
		var zero N
		return zero
	}
	diff := coord - d
	if coord < d {
		diff = d - coord
	}
	return diff * diff
}
