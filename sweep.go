package kdtree

// prunePeriod bounds how many elements the dual sweep inserts into its
// active lists before shrinking them, keeping their size roughly
// proportional to the current sweep line rather than to the whole
// input.
const prunePeriod = 100

// sweepSelf finds every intersecting pair within a single,
// perp-axis-sorted slice using a mark-and-sweep active list. Removal
// from the active list is a true swap-remove: the list is never
// filtered into a new slice, and a removed slot is immediately
// reused, so comparisons stay proportional to the current active set.
func sweepSelf[T Bounds[N], N Num](elems []T, perpAxis Axis, report func(a, b *T)) {
	active := make([]*T, 0, len(elems))
	for i := range elems {
		e := &elems[i]
		start := e.AABB().Axis(perpAxis).Start

		j := 0
		for j < len(active) {
			o := active[j]
			if o.AABB().Axis(perpAxis).End < start {
				active[j] = active[len(active)-1]
				active = active[:len(active)-1]
				continue
			}
			if e.AABB().Intersects(o.AABB()) {
				report(e, o)
			}
			j++
		}
		active = append(active, e)
	}
}

// sweepParallel finds every intersecting pair between two slices,
// each independently sorted ascending by perpAxis start, using a
// merge-style dual sweep. Both active lists are pruned every
// prunePeriod insertions, dropping entries that end before the
// current sweep position.
func sweepParallel[T Bounds[N], N Num](a, b []T, perpAxis Axis, report func(x, y *T)) {
	i, j, since := 0, 0, 0
	var activeA, activeB []*T

	for i < len(a) && j < len(b) {
		if a[i].AABB().Axis(perpAxis).Start <= b[j].AABB().Axis(perpAxis).Start {
			e := &a[i]
			for _, o := range activeB {
				if e.AABB().Intersects(o.AABB()) {
					report(e, o)
				}
			}
			activeA = append(activeA, e)
			i++
		} else {
			e := &b[j]
			for _, o := range activeA {
				if e.AABB().Intersects(o.AABB()) {
					report(o, e)
				}
			}
			activeB = append(activeB, e)
			j++
		}

		since++
		if since >= prunePeriod {
			cur := sweepCursor[T, N](a, i, b, j, perpAxis)
			activeA = pruneActive[T, N](activeA, perpAxis, cur)
			activeB = pruneActive[T, N](activeB, perpAxis, cur)
			since = 0
		}
	}

	for ; i < len(a); i++ {
		e := &a[i]
		for _, o := range activeB {
			if e.AABB().Intersects(o.AABB()) {
				report(e, o)
			}
		}
	}
	for ; j < len(b); j++ {
		e := &b[j]
		for _, o := range activeA {
			if e.AABB().Intersects(o.AABB()) {
				report(o, e)
			}
		}
	}
}

func sweepCursor[T Bounds[N], N Num](a []T, i int, b []T, j int, axis Axis) N {
	switch {
	case i < len(a) && j < len(b):
		ai, bj := a[i].AABB().Axis(axis).Start, b[j].AABB().Axis(axis).Start
		if ai < bj {
			return ai
		}
		return bj
	case i < len(a):
		return a[i].AABB().Axis(axis).Start
	case j < len(b):
		return b[j].AABB().Axis(axis).Start
	default:
		var zero N
		return zero
	}
}

func pruneActive[T Bounds[N], N Num](active []*T, axis Axis, cur N) []*T {
	out := active[:0]
	for _, e := range active {
		if e.AABB().Axis(axis).End >= cur {
			out = append(out, e)
		}
	}
	return out
}

// sweepPerpOnce scans a single anchor against a perp-axis-sorted
// slice, reporting every intersection and stopping as soon as the
// slice's starts run past the anchor's end — the slice being sorted
// guarantees nothing further could overlap.
func sweepPerpOnce[T Bounds[N], N Num](anchor *T, elems []T, perpAxis Axis, report func(a, b *T)) {
	ar := anchor.AABB().Axis(perpAxis)
	for i := range elems {
		o := &elems[i]
		or := o.AABB().Axis(perpAxis)
		if or.Start > ar.End {
			break
		}
		if or.End < ar.Start {
			continue
		}
		if anchor.AABB().Intersects(o.AABB()) {
			report(anchor, o)
		}
	}
}
