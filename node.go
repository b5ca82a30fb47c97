package kdtree

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"
)

const (
	defaultLeafSize    = 32
	defaultSeqFallback = 2400
)

// node is one entry of the tree's flat, depth-first-preorder array.
// Children of the node at index i live at 2*i+1 and 2*i+2, so the
// array is a complete binary tree of fixed height regardless of how
// the elements happen to be distributed.
type node[T Bounds[N], N Num] struct {
	axis   Axis
	elems  []T
	div    *N
	cont   Range[N]
	sorted bool
	// size is the element count of this node's left and right
	// subtrees combined, excluding this node's own elems. It is filled
	// in by computeSizes once construction finishes and drives the
	// parallel collision driver's sequential-fallback decision.
	size int
}

// Tree is a median-split KD-tree over elements with axis-aligned
// bounds. It is built once from a slice and never mutated afterward;
// queries only read it.
type Tree[T Bounds[N], N Num] struct {
	nodes  []node[T, N]
	height int
	length int
}

// Len returns the number of elements the tree was built from.
func (t *Tree[T, N]) Len() int { return t.length }

// Height returns the tree's fixed height.
func (t *Tree[T, N]) Height() int { return t.height }

// Options configures tree construction. A nil Options, or any zero
// field within one, falls back to a sane default.
type Options[T Bounds[N], N Num] struct {
	// LeafSize is the target number of elements per leaf that
	// computeHeight picks the tree height from. The height only grows
	// two levels at a time, so a leaf can hold several times LeafSize
	// elements (a single-leaf tree holds up to 4*LeafSize-1).
	LeafSize int
	// SeqFallback is the element-count threshold at or below which the
	// parallel builder stops forking and builds sequentially instead.
	// The tree does not keep it: FindCollidingPairsParallel uses the
	// package default, and FindCollidingPairsParallelWithSplitter takes
	// its own threshold.
	SeqFallback int
	// Sorter controls whether (and how) a node's middle bin is kept
	// sorted for the collision driver's merge sweep.
	Sorter Sorter[T, N]
}

func resolveOptions[T Bounds[N], N Num](opts *Options[T, N]) Options[T, N] {
	out := Options[T, N]{
		LeafSize:    defaultLeafSize,
		SeqFallback: defaultSeqFallback,
		Sorter:      DefaultSorter[T, N]{},
	}
	if opts == nil {
		return out
	}
	if opts.LeafSize > 0 {
		out.LeafSize = opts.LeafSize
	}
	if opts.SeqFallback > 0 {
		out.SeqFallback = opts.SeqFallback
	}
	if opts.Sorter != nil {
		out.Sorter = opts.Sorter
	}
	return out
}

// computeHeight picks the tree height so that leaves hold roughly
// leafSize elements: H = 2*floor(0.5*log2(n/leafSize)) + 1, always
// odd so the root and every leaf level share the same split axis
// family, clamped to 1 when n already fits in a single leaf.
func computeHeight(n, leafSize int) int {
	if leafSize <= 0 || n <= leafSize {
		return 1
	}
	ratio := float64(n) / float64(leafSize)
	h := 2*int(math.Floor(0.5*math.Log2(ratio))) + 1
	if h < 1 {
		h = 1
	}
	return h
}

// Build constructs a tree sequentially.
func Build[T Bounds[N], N Num](elements []T, opts *Options[T, N]) *Tree[T, N] {
	o := resolveOptions[T, N](opts)
	height := computeHeight(len(elements), o.LeafSize)
	capacity := (1 << uint(height)) - 1

	t := &Tree[T, N]{
		nodes:  make([]node[T, N], capacity),
		height: height,
		length: len(elements),
	}
	buildSeq[T, N](t, 0, AxisX, elements, 0, height, o.Sorter)
	computeSizes[T, N](t)
	return t
}

// BuildParallel constructs a tree the same way as Build, but forks
// left/right subtree construction across goroutines once a subtree's
// element count exceeds the configured sequential fallback.
func BuildParallel[T Bounds[N], N Num](elements []T, opts *Options[T, N]) *Tree[T, N] {
	o := resolveOptions[T, N](opts)
	height := computeHeight(len(elements), o.LeafSize)
	capacity := (1 << uint(height)) - 1

	t := &Tree[T, N]{
		nodes:  make([]node[T, N], capacity),
		height: height,
		length: len(elements),
	}
	err := buildPar[T, N](context.Background(), t, 0, AxisX, elements, 0, height, o.SeqFallback, o.Sorter)
	reraise(err)
	computeSizes[T, N](t)
	return t
}

// computeSizes fills in every node's left+right subtree element count
// with a single backward pass over the flat array: a child's own
// total is its elems plus its own subtree size, both already computed
// since children sit at higher indices than their parent.
func computeSizes[T Bounds[N], N Num](t *Tree[T, N]) {
	for i := len(t.nodes) - 1; i >= 0; i-- {
		n := &t.nodes[i]
		n.size = 0
		li, ri := 2*i+1, 2*i+2
		if li < len(t.nodes) {
			n.size += len(t.nodes[li].elems) + t.nodes[li].size
		}
		if ri < len(t.nodes) {
			n.size += len(t.nodes[ri].elems) + t.nodes[ri].size
		}
	}
}

func buildSeq[T Bounds[N], N Num](t *Tree[T, N], idx int, axis Axis, elems []T, depth, height int, sorter Sorter[T, N]) {
	assertf(idx < len(t.nodes), "buildSeq: node index %d out of bounds (capacity %d)", idx, len(t.nodes))

	if depth == height-1 {
		sorted := sorter.Sort(elems, axis)
		t.nodes[idx] = node[T, N]{axis: axis, elems: elems, cont: boundingRange[T, N](elems, axis), sorted: sorted}
		return
	}

	li, ri := 2*idx+1, 2*idx+2
	if len(elems) == 0 {
		t.nodes[idx] = node[T, N]{axis: axis}
		buildSeq[T, N](t, li, axis.Perp(), nil, depth+1, height, sorter)
		buildSeq[T, N](t, ri, axis.Perp(), nil, depth+1, height, sorter)
		return
	}

	div := medianAxisStart[T, N](elems, axis)
	pr := partition[T, N](elems, axis, div)
	sorted := sorter.Sort(pr.mid, axis)
	dv := div
	t.nodes[idx] = node[T, N]{axis: axis, elems: pr.mid, div: &dv, cont: boundingRange[T, N](pr.mid, axis), sorted: sorted}

	buildSeq[T, N](t, li, axis.Perp(), pr.left, depth+1, height, sorter)
	buildSeq[T, N](t, ri, axis.Perp(), pr.right, depth+1, height, sorter)
}

func buildPar[T Bounds[N], N Num](ctx context.Context, t *Tree[T, N], idx int, axis Axis, elems []T, depth, height, seqFallback int, sorter Sorter[T, N]) error {
	assertf(idx < len(t.nodes), "buildPar: node index %d out of bounds (capacity %d)", idx, len(t.nodes))

	if depth == height-1 {
		sorted := sorter.Sort(elems, axis)
		t.nodes[idx] = node[T, N]{axis: axis, elems: elems, cont: boundingRange[T, N](elems, axis), sorted: sorted}
		return nil
	}

	li, ri := 2*idx+1, 2*idx+2
	if len(elems) == 0 {
		t.nodes[idx] = node[T, N]{axis: axis}
		if err := buildPar[T, N](ctx, t, li, axis.Perp(), nil, depth+1, height, seqFallback, sorter); err != nil {
			return err
		}
		return buildPar[T, N](ctx, t, ri, axis.Perp(), nil, depth+1, height, seqFallback, sorter)
	}

	div := medianAxisStart[T, N](elems, axis)
	pr := partition[T, N](elems, axis, div)
	sorted := sorter.Sort(pr.mid, axis)
	dv := div
	t.nodes[idx] = node[T, N]{axis: axis, elems: pr.mid, div: &dv, cont: boundingRange[T, N](pr.mid, axis), sorted: sorted}

	if len(elems) <= seqFallback {
		if err := buildPar[T, N](ctx, t, li, axis.Perp(), pr.left, depth+1, height, seqFallback, sorter); err != nil {
			return err
		}
		return buildPar[T, N](ctx, t, ri, axis.Perp(), pr.right, depth+1, height, seqFallback, sorter)
	}

	g, _ := errgroup.WithContext(ctx)
	goRecover(g, func() error {
		return buildPar[T, N](ctx, t, li, axis.Perp(), pr.left, depth+1, height, seqFallback, sorter)
	})
	rightErr := buildPar[T, N](ctx, t, ri, axis.Perp(), pr.right, depth+1, height, seqFallback, sorter)
	if waitErr := g.Wait(); waitErr != nil {
		return waitErr
	}
	return rightErr
}
