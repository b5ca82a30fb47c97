package kdtree

// Bounds is the only capability an element must provide: a cheap,
// deterministic bounding rectangle. AABB is called many times during
// construction and querying and must not mutate the element.
type Bounds[N Num] interface {
	AABB() Rect[N]
}

// Handle is the restricted reference callbacks receive in place of a
// raw pointer into the tree's backing slice. AABB gives read-only
// access to the element's bounds; Inner gives mutable access to the
// element itself for non-spatial state. Writing a whole new element
// through Inner (rather than mutating its fields) would silently
// desync the element's position from the tree's partitioning and is
// never safe to do, but Go has no way to forbid it at compile time,
// so this is a contract, not a guarantee.
type Handle[T Bounds[N], N Num] struct {
	e *T
}

func newHandle[T Bounds[N], N Num](e *T) Handle[T, N] {
	return Handle[T, N]{e: e}
}

// AABB returns the element's current bounding rectangle.
func (h Handle[T, N]) AABB() Rect[N] {
	return (*h.e).AABB()
}

// Inner returns a mutable pointer to the wrapped element.
func (h Handle[T, N]) Inner() *T {
	return h.e
}

// CollisionFunc is invoked once per intersecting pair discovered by a
// collision query. Pair order is unspecified; a pair is never
// reported more than once and never as (a, a).
type CollisionFunc[T Bounds[N], N Num] func(a, b Handle[T, N])
