package testutils

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// recorder collects failures instead of failing the real test.
type recorder struct {
	errors []string
}

func (r *recorder) Helper()                   {}
func (r *recorder) Logf(string, ...any)       {}
func (r *recorder) Error(args ...any)         { r.errors = append(r.errors, fmt.Sprint(args...)) }
func (r *recorder) Errorf(f string, a ...any) { r.errors = append(r.errors, fmt.Sprintf(f, a...)) }

// produce sends items on an unbuffered channel from a goroutine,
// closing it afterwards if closeAfter is set.
func produce(closeAfter bool, items ...int) <-chan int {
	ch := make(chan int)
	go func() {
		for _, i := range items {
			ch <- i
		}
		if closeAfter {
			close(ch)
		}
	}()
	return ch
}

func TestDrain(t *testing.T) {
	tests := []struct {
		name    string
		ch      <-chan int
		want    []int
		wantErr int
	}{
		{name: "exact", ch: produce(true, 1, 2, 3), want: []int{1, 2, 3}},
		{name: "empty", ch: produce(true), want: nil},
		{name: "short", ch: produce(true, 1), want: []int{1, 2}, wantErr: 1},
		{name: "unclosed", ch: produce(false, 1), want: []int{1}, wantErr: 1},
		{name: "stalled", ch: produce(false, 1), want: []int{1, 2}, wantErr: 1},
		{name: "extra", ch: produce(true, 1, 2), want: []int{1}, wantErr: 1},
		{name: "wrong order", ch: produce(true, 2, 1), want: []int{1, 2}, wantErr: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{}
			Drain(r, tt.want, tt.ch, 50*time.Millisecond)
			assert.Len(t, r.errors, tt.wantErr, "%v", r.errors)
		})
	}
}

func TestDrain_Slow(t *testing.T) {
	ch := make(chan int)
	go func() {
		defer close(ch)
		for i := 1; i <= 3; i++ {
			time.Sleep(time.Millisecond)
			ch <- i
		}
	}()

	Drain(t, []int{1, 2, 3}, ch, time.Second)
}
