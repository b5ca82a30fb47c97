package kdtree

import "sort"

// Sorter controls how a node's middle bin is ordered after
// partitioning. DefaultSorter enables the faster merge-style sweep in
// the collision driver; NoSorter skips the work when a caller only
// wants a tree's spatial structure (queries, ray casts) and never runs
// collision detection against it.
type Sorter[T Bounds[N], N Num] interface {
	// Sort arranges mid in place, sorted by the start of its range on
	// the perpendicular axis. It reports whether it actually sorted.
	Sort(mid []T, axis Axis) bool
}

// DefaultSorter sorts the middle bin by perpendicular-axis start,
// which is the ordering the merge-style sweep in the collision driver
// depends on.
type DefaultSorter[T Bounds[N], N Num] struct{}

func (DefaultSorter[T, N]) Sort(mid []T, axis Axis) bool {
	sort.Sort(byAxisStart[T, N]{elems: mid, axis: axis.Perp()})
	return true
}

// NoSorter leaves the middle bin in whatever order partitioning left
// it in. Trees built with it are still fully correct; the collision
// driver falls back to a direct pairwise scan wherever it would
// otherwise have relied on sortedness.
type NoSorter[T Bounds[N], N Num] struct{}

func (NoSorter[T, N]) Sort(mid []T, axis Axis) bool {
	return false
}

// byAxisStart implements sort.Interface over a slice of elements,
// ordering by the start of their bounds on a fixed axis.
type byAxisStart[T Bounds[N], N Num] struct {
	elems []T
	axis  Axis
}

func (s byAxisStart[T, N]) Len() int { return len(s.elems) }

func (s byAxisStart[T, N]) Less(i, j int) bool {
	return s.elems[i].AABB().Axis(s.axis).Start < s.elems[j].AABB().Axis(s.axis).Start
}

func (s byAxisStart[T, N]) Swap(i, j int) {
	s.elems[i], s.elems[j] = s.elems[j], s.elems[i]
}
