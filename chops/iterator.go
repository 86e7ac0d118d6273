// Package chops turns pull-style iterators into channels, so that
// anything with a Next/Item iterator can be consumed with for-range
// or fed into a select.
package chops

import "context"

// Iterator is the pull-style iterator that CoIterate consumes.
// Abandoning it must not leak anything: CoIterate may stop
// calling Next at any point.
type Iterator[T any] interface {
	Next() bool
	Item() T
}

// CoIterator is the handle to an iteration started by CoIterate.
type CoIterator[T any] struct {
	items  <-chan T
	cancel context.CancelFunc
}

// Items returns the channel the items are sent on, in iteration order.
// It is closed once the iterator is exhausted, or soon after the
// iteration is stopped.
func (c CoIterator[T]) Items() <-chan T {
	return c.items
}

// Stop ends the iteration early. It is safe to call more than once,
// and from any goroutine. One item that was already being sent may
// still be received after Stop returns.
func (c CoIterator[T]) Stop() {
	c.cancel()
}

// CoIterate pulls items from it on a new goroutine and sends them
// on the Items channel:
//
//	co := chops.CoIterate[K](ctx, someTree.Iterator())
//	defer co.Stop()
//	for k := range co.Items() {
//		if done(k) {
//			break
//		}
//	}
//
// The goroutine exits when the iterator is exhausted, when Stop is
// called or when ctx is done. Whatever it iterates over must not be
// mutated before then.
//
// A nil iterator yields a closed channel and starts no goroutine.
func CoIterate[T any](ctx context.Context, it Iterator[T]) CoIterator[T] {
	ctx, cancel := context.WithCancel(ctx)
	out := make(chan T)
	co := CoIterator[T]{items: out, cancel: cancel}

	if it == nil {
		close(out)
		return co
	}

	go func() {
		defer close(out)
		for it.Next() {
			// select picks randomly when both cases are ready
			if ctx.Err() != nil {
				return
			}
			select {
			case out <- it.Item():
			case <-ctx.Done():
				return
			}
		}
	}()

	return co
}
