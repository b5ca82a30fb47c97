package kdtree

// partitionResult is the output of binning a slice of elements around
// a divider value on a given axis: elements wholly left of the
// divider, elements straddling it (the middle bin), and elements
// wholly right of it. left and right are themselves unordered and
// feed the next level of recursion; mid is the only bin this node
// keeps.
type partitionResult[T Bounds[N], N Num] struct {
	left, mid, right []T
}

// partition performs the three-way bin-middle-left-right split: every
// element whose range on axis ends strictly before div goes left,
// every element whose range starts strictly after div goes right, and
// every element straddling or touching div goes into mid. The split
// is done with a single in-place Dutch-national-flag-style pass over
// elems, which is reordered; the three returned slices are disjoint
// views back into elems.
func partition[T Bounds[N], N Num](elems []T, axis Axis, div N) partitionResult[T, N] {
	lo, i, hi := 0, 0, len(elems)-1

	for i <= hi {
		r := elems[i].AABB().Axis(axis)
		switch {
		case r.End < div:
			elems[lo], elems[i] = elems[i], elems[lo]
			lo++
			i++
		case r.Start > div:
			elems[i], elems[hi] = elems[hi], elems[i]
			hi--
		default:
			i++
		}
	}

	return partitionResult[T, N]{
		left:  elems[:lo],
		mid:   elems[lo : hi+1],
		right: elems[hi+1:],
	}
}

// boundingRange returns the tightest Range on axis covering every
// element in elems, or the zero-valued empty range when elems is
// empty. This mirrors build.rs's create_cont: an empty middle bin
// gets the coordinate type's zero-value pair rather than some
// sentinel infinity. That pair is also the exact hull of a bin whose
// elements all span [0, 0], so whether a bin is empty is told by its
// length, not by the returned range.
func boundingRange[T Bounds[N], N Num](elems []T, axis Axis) Range[N] {
	if len(elems) == 0 {
		var zero N
		return Range[N]{Start: zero, End: zero}
	}
	r := elems[0].AABB().Axis(axis)
	for _, e := range elems[1:] {
		r = r.Merge(e.AABB().Axis(axis))
	}
	return r
}
