package kdtree

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// assertf panics with a formatted message when cond is false. It
// guards internal invariants (tree shape, partition bookkeeping) that
// should never be violated by correct code; a violation is a bug in
// this package, not a caller error, so there is nothing to recover
// from.
func assertf(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}

// panicError records a value recovered from a panicking goroutine so
// it can be re-raised once the fork that produced it has been joined.
type panicError struct{ v interface{} }

func (p panicError) Error() string { return fmt.Sprintf("panic: %v", p.v) }

// goRecover runs fn as a forked errgroup goroutine. A panic inside fn
// is caught and recorded rather than taking down the whole process,
// so the caller can re-raise it at the join point with reraise once
// every fork has been waited on.
func goRecover(g *errgroup.Group, fn func() error) {
	g.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = panicError{v: r}
			}
		}()
		return fn()
	})
}

// reraise panics again with the original recovered value if err wraps
// one, restoring ordinary panic/recover semantics at a fork-join
// boundary instead of silently turning a panic into an error value.
func reraise(err error) {
	if err == nil {
		return
	}
	if pe, ok := err.(panicError); ok {
		panic(pe.v)
	}
	panic(err)
}
