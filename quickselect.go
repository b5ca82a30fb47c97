package kdtree

import "math/rand"

// medianAxisStart partially sorts elems around its median element by
// axis-start, in place, and returns the median's start value. elems
// must be non-empty.
//
// It runs a random-pivot quickselect directly over elems keyed by
// each element's axis-start, rather than sorting the whole slice:
// the three-way partition that follows only needs one value picked
// out, not a full ordering.
func medianAxisStart[T Bounds[N], N Num](elems []T, axis Axis) N {
	mid := len(elems) / 2
	quickselectByAxisStart[T, N](elems, axis, mid)
	return elems[mid].AABB().Axis(axis).Start
}

// quickselectByAxisStart ensures that every element before index n has
// an axis-start no greater than elems[n]'s, and every element after it
// has one no smaller — i.e. elems[n] ends up exactly where it would
// land in a full sort by axis-start, without fully sorting elems.
func quickselectByAxisStart[T Bounds[N], N Num](elems []T, axis Axis, n int) {
	first := 0
	last := len(elems) - 1
	for {
		guess := rand.Intn(last-first+1) + first
		pivotIndex := qsPartitionByAxisStart[T, N](elems, axis, first, last, guess)
		switch {
		case n == pivotIndex: // found nth element
			return
		case n < pivotIndex: // nth element is on the left side
			last = pivotIndex - 1
		default: // nth element is on the right side
			first = pivotIndex + 1
		}
	}
}

// qsPartitionByAxisStart moves every element with a smaller axis-start
// than the pivot to its left, and every larger one to its right.
// Returns the pivot's final position.
func qsPartitionByAxisStart[T Bounds[N], N Num](elems []T, axis Axis, firstIdx, lastIdx, pivotIdx int) int {
	elems[firstIdx], elems[pivotIdx] = elems[pivotIdx], elems[firstIdx] // move to front
	pivotIdx = firstIdx
	pivot := elems[pivotIdx].AABB().Axis(axis).Start

	left, right := firstIdx+1, lastIdx
	for left <= right { // move to center
		for left <= lastIdx && elems[left].AABB().Axis(axis).Start < pivot {
			left++
		}
		for right >= pivotIdx && pivot < elems[right].AABB().Axis(axis).Start {
			right--
		}
		if left <= right {
			elems[left], elems[right] = elems[right], elems[left]
			left++
			right--
		}
	}
	elems[pivotIdx], elems[right] = elems[right], elems[pivotIdx] // swap into right place
	return right
}
