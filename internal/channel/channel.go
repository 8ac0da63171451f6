// Package channel provides a full-duplex, unbounded, non-blocking message
// pipe between two goroutines.
//
// Go channels block when full, so each direction is a mutex-guarded queue
// instead. Each direction is FIFO; the two directions are not ordered
// relative to each other.
package channel

import (
	"errors"
	"sync"
)

// ErrClosed is returned by Send when either end of the pipe has been closed.
var ErrClosed = errors.New("channel: endpoint closed")

type queue[T any] struct {
	mu     sync.Mutex
	items  []T
	closed bool
}

func (q *queue[T]) push(v T) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return ErrClosed
	}
	q.items = append(q.items, v)
	return nil
}

func (q *queue[T]) drain() []T {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *queue[T]) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

func (q *queue[T]) close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
	q.items = nil
}

// Endpoint is one end of a pipe created by NewPair.
type Endpoint[T any] struct {
	out *queue[T]
	in  *queue[T]
}

// NewPair returns two connected endpoints: what a sends, b receives, and
// the other way round.
func NewPair[T any]() (*Endpoint[T], *Endpoint[T]) {
	ab := &queue[T]{}
	ba := &queue[T]{}
	return &Endpoint[T]{out: ab, in: ba}, &Endpoint[T]{out: ba, in: ab}
}

// Send enqueues msg for the peer without blocking. It fails only once
// either endpoint has been closed.
func (e *Endpoint[T]) Send(msg T) error {
	return e.out.push(msg)
}

// Receive drains every message queued for this endpoint, oldest first.
// It returns an empty slice when nothing is pending and never blocks.
func (e *Endpoint[T]) Receive() []T {
	return e.in.drain()
}

// Pending reports how many messages are waiting to be received.
func (e *Endpoint[T]) Pending() int {
	return e.in.len()
}

// Close drops this endpoint. Pending inbound messages are discarded and
// later sends from either side fail with ErrClosed. Close is idempotent.
func (e *Endpoint[T]) Close() {
	e.in.close()
	e.out.close()
}
