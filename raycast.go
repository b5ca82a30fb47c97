package kdtree

import (
	"math"

	"github.com/maja42/vmath"
)

// RayCast returns the closest element(s) hit by a ray cast from
// origin along dir, within maxDist. dir need not be normalized; the
// ray parametrization divides by each axis of dir directly. All ties
// for the closest hit distance are returned, since there is no
// principled way to prefer one over another. ok is false when nothing
// is hit within maxDist.
//
// It is specialized to float32 coordinates (ray parametrization needs
// division) and takes vmath.Vec2f for origin/direction so callers
// normalize and compose rays the same way the rest of the ecosystem
// already does with vmath.
func RayCast[T Bounds[float32]](t *Tree[T, float32], origin, dir vmath.Vec2f, maxDist float32) (float32, []Handle[T, float32], bool) {
	if len(t.nodes) == 0 {
		return 0, nil, false
	}

	best := maxDist
	var bestElems []*T

	for idx := range t.nodes {
		n := &t.nodes[idx]
		for i := range n.elems {
			e := &n.elems[i]
			d, hit := rayRectDist(origin, dir, e.AABB())
			if !hit || d > best {
				continue
			}
			if d < best {
				best = d
				bestElems = bestElems[:0]
			}
			bestElems = append(bestElems, e)
		}
	}

	if len(bestElems) == 0 {
		return 0, nil, false
	}
	hits := make([]Handle[T, float32], len(bestElems))
	for i, e := range bestElems {
		hits[i] = newHandle[T, float32](e)
	}
	return best, hits, true
}

// rayRectDist runs the standard slab test: the ray enters r at the
// largest per-axis entry time and leaves at the smallest per-axis
// exit time, and hits r iff entry <= exit and the interval isn't
// entirely behind the origin.
func rayRectDist(origin, dir vmath.Vec2f, r Rect[float32]) (float32, bool) {
	tmin := float32(math.Inf(-1))
	tmax := float32(math.Inf(1))

	for axis := 0; axis < 2; axis++ {
		o, d := origin[axis], dir[axis]
		var lo, hi float32
		if axis == 0 {
			lo, hi = r.X.Start, r.X.End
		} else {
			lo, hi = r.Y.Start, r.Y.End
		}

		if d == 0 {
			if o < lo || o > hi {
				return 0, false
			}
			continue
		}
		t1, t2 := (lo-o)/d, (hi-o)/d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return 0, false
		}
	}

	if tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return 0, true
	}
	return tmin, true
}
