package validator

import "sync/atomic"

const (
	visitPending int32 = iota
	visitNext
	visitHalt
	visitDeferred
	visitResumed
)

// walk visits the indexes [0, n) strictly one after another and calls finish
// once at the end. Each visit must call next once; next(true) stops the walk
// early. Visits that complete before returning are driven by a loop, so long
// rule lists do not grow the stack. A visit that returns first is resumed
// from whichever goroutine eventually calls next. Repeated calls are ignored.
func walk(n int, visit func(i int, next func(halt bool)), finish func()) {
	var run func(start int)
	run = func(start int) {
		for i := start; i < n; i++ {
			var state atomic.Int32
			idx := i
			visit(idx, func(halt bool) {
				settled := visitNext
				if halt {
					settled = visitHalt
				}
				if state.CompareAndSwap(visitPending, settled) {
					return
				}
				if state.CompareAndSwap(visitDeferred, visitResumed) {
					if halt {
						finish()
						return
					}
					run(idx + 1)
				}
			})
			if state.CompareAndSwap(visitPending, visitDeferred) {
				return
			}
			if state.Load() == visitHalt {
				finish()
				return
			}
		}
		finish()
	}
	run(0)
}

// once guards a continuation against repeated calls.
func once(done func(ok bool)) func(ok bool) {
	var called atomic.Bool
	return func(ok bool) {
		if called.CompareAndSwap(false, true) {
			done(ok)
		}
	}
}
