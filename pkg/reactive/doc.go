// Package reactive provides the signal and effect primitives that the tagr
// binding engine is built on.
//
// # Core Types
//
// Signal[T] is a mutable value with synchronous subscriber notification:
//
//	count := reactive.NewSignal(0)
//	count.Subscribe(func(n int) { fmt.Println("count:", n) })
//	count.Set(5)                                   // prints "count: 5"
//	count.Update(func(n int) int { return n + 1 }) // prints "count: 6"
//
// Every setter goes through an Update[T], the tagged variant distinguishing a
// direct value from a derivation of the current value:
//
//	count.Apply(reactive.Direct(10))
//	count.Apply(reactive.Derive(func(n int) int { return n * 2 }))
//
// RunEffect runs a function once and subscribes it to every signal it reads:
//
//	reactive.RunEffect(func() {
//	    total.Set(len(items.Get()))
//	})
//
// # Tracking
//
// The set of running effects is a stack owned by a Tracker. Nested RunEffect
// calls are supported: reads are attributed to the innermost effect and the
// outer effect is restored when the inner one returns. Subscriptions are only
// ever added by a run; Effect.Dispose cancels them all.
//
// # Thread Safety
//
// Nothing in this package is safe for concurrent use. A signal, the effects
// reading it and its Tracker belong to a single goroutine, the same way the
// host tree they drive does.
package reactive
