package kdtree

import "golang.org/x/sync/errgroup"

// Splitter threads diagnostic state through the parallel collision
// driver's fork/join recursion. Split is called once per fork,
// producing the state each forked half will accumulate into; Join
// merges a forked half's state back into the parent once it
// completes.
type Splitter interface {
	Split() (left, right Splitter)
	Join(left, right Splitter)
}

// NoSplitter is the zero-cost default: it carries no state and does
// nothing at fork or join.
type NoSplitter struct{}

func (NoSplitter) Split() (Splitter, Splitter) { return NoSplitter{}, NoSplitter{} }
func (NoSplitter) Join(Splitter, Splitter)      {}

// LevelSplitter counts how many forks the parallel driver actually
// performed, for callers who want to know how much of a run went
// parallel versus fell back to the sequential threshold.
type LevelSplitter struct {
	Forks int
}

func (l *LevelSplitter) Split() (Splitter, Splitter) {
	return &LevelSplitter{}, &LevelSplitter{}
}

func (l *LevelSplitter) Join(left, right Splitter) {
	lf := left.(*LevelSplitter)
	rf := right.(*LevelSplitter)
	l.Forks += 1 + lf.Forks + rf.Forks
}

// FindCollidingPairsParallel is FindCollidingPairs with fork-join
// parallelism above the default sequential-fallback element count.
// handler may be called concurrently from multiple goroutines and
// must synchronize any shared state it touches itself.
func (t *Tree[T, N]) FindCollidingPairsParallel(handler CollisionFunc[T, N]) {
	t.FindCollidingPairsParallelWithSplitter(handler, NoSplitter{}, defaultSeqFallback)
}

// FindCollidingPairsParallelWithSplitter is FindCollidingPairsParallel
// with an explicit Splitter and sequential-fallback threshold.
func (t *Tree[T, N]) FindCollidingPairsParallelWithSplitter(handler CollisionFunc[T, N], s Splitter, seqFallback int) {
	if len(t.nodes) == 0 {
		return
	}
	if seqFallback <= 0 {
		seqFallback = defaultSeqFallback
	}
	if s == nil {
		s = NoSplitter{}
	}
	report := func(a, b *T) { handler(newHandle[T, N](a), newHandle[T, N](b)) }
	err := drivePar[T, N](t.nodes, 0, seqFallback, s, report)
	reraise(err)
}

func drivePar[T Bounds[N], N Num](nodes []node[T, N], idx, seqFallback int, s Splitter, report func(a, b *T)) error {
	if idx >= len(nodes) {
		return nil
	}
	n := &nodes[idx]
	selfSweepNode[T, N](n, report)

	li, ri := 2*idx+1, 2*idx+2
	if li >= len(nodes) {
		return nil
	}
	anchorDescend[T, N](nodes, n, li, report)
	anchorDescend[T, N](nodes, n, ri, report)

	if n.size <= seqFallback {
		driveSeq[T, N](nodes, li, report)
		driveSeq[T, N](nodes, ri, report)
		return nil
	}

	sl, sr := s.Split()
	g := &errgroup.Group{}
	goRecover(g, func() error {
		return drivePar[T, N](nodes, li, seqFallback, sl, report)
	})
	rightErr := drivePar[T, N](nodes, ri, seqFallback, sr, report)
	waitErr := g.Wait()
	s.Join(sl, sr)

	if waitErr != nil {
		return waitErr
	}
	return rightErr
}
