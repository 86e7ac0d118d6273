// Package testutils holds assertions shared by the tests of
// other packages in this module.
package testutils

import (
	"time"

	"github.com/stretchr/testify/assert"
)

// TestT is the part of *testing.T that Drain needs.
type TestT interface {
	Helper()
	Logf(string, ...any)
	Error(...any)
	Errorf(string, ...any) // also used by testify/assert
}

// Drain expects to receive exactly want from ch, in order, followed
// by ch being closed. The producer may still be running; Drain gives
// up after waiting timeout in total.
func Drain[T any](t TestT, want []T, ch <-chan T, timeout time.Duration) {
	t.Helper()
	t.Logf("draining: expecting %v", want)

	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	var got []T
	for {
		select {
		case el, ok := <-ch:
			if !ok {
				assert.Equal(t, want, got, "channel closed")
				return
			}
			if len(got) == len(want) {
				t.Errorf("channel should be closed after %d items, but received: %v", len(want), el)
				return
			}
			got = append(got, el)
		case <-deadline.C:
			if len(got) < len(want) {
				t.Errorf("timed out after %v, received %v of %v", timeout, got, want)
			} else {
				t.Error("timed out waiting for the channel to close")
			}
			return
		}
	}
}
