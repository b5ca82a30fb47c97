package kdtree

import "sync"

// box is the integer-coordinate element type most tests in this
// package exercise the tree with.
type box struct {
	ID  int
	R   Rect[int]
	Tag int
}

func (b box) AABB() Rect[int] { return b.R }

func newBox(id, x0, x1, y0, y1 int) box {
	return box{ID: id, R: Rect[int]{X: Range[int]{Start: x0, End: x1}, Y: Range[int]{Start: y0, End: y1}}}
}

// fbox is the float32 counterpart used by ray casting, which is only
// offered over float32 coordinates.
type fbox struct {
	ID int
	R  Rect[float32]
}

func (b fbox) AABB() Rect[float32] { return b.R }

func newFBox(id int, x0, x1, y0, y1 float32) fbox {
	return fbox{ID: id, R: Rect[float32]{X: Range[float32]{Start: x0, End: x1}, Y: Range[float32]{Start: y0, End: y1}}}
}

// pairKey canonicalizes an unordered pair of element ids so pair sets
// produced by different drivers can be compared for equality
// regardless of report order.
func pairKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

func collectPairs(pairs *[][2]int) CollisionFunc[box, int] {
	return func(a, b Handle[box, int]) {
		*pairs = append(*pairs, pairKey(a.Inner().ID, b.Inner().ID))
	}
}

func pairSet(pairs [][2]int) map[[2]int]int {
	m := make(map[[2]int]int)
	for _, p := range pairs {
		m[p]++
	}
	return m
}

// syncPairs collects pairs from a handler that may be invoked
// concurrently by the parallel collision driver.
type syncPairs struct {
	mu    sync.Mutex
	pairs [][2]int
}

func (s *syncPairs) handle(a, b Handle[box, int]) {
	s.mu.Lock()
	s.pairs = append(s.pairs, pairKey(a.Inner().ID, b.Inner().ID))
	s.mu.Unlock()
}
