// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// based on golang.org/x/exp/shiny:
// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"sync"
	"sync/atomic"
)

// Queue is a lock-free multi-producer FIFO of events, filled by the
// windowing thread and drained by the render thread with [Queue.Drain].
// Events are never compressed or reordered, since drag deltas depend
// on every sample. The zero value is ready to use.
// It is based on https://github.com/fyne-io/fyne/blob/master/internal/async/queue_canvasobject.go
type Queue[E any] struct {
	once sync.Once
	head atomic.Pointer[node[E]]
	tail atomic.Pointer[node[E]]
	len  atomic.Int64
	free sync.Pool
}

// node is a queue link. The head node is a sentinel whose value
// has already been taken.
type node[E any] struct {
	next atomic.Pointer[node[E]]
	v    E
}

func (q *Queue[E]) init() {
	q.once.Do(func() {
		q.free.New = func() any { return &node[E]{} }
		sentinel := &node[E]{}
		q.head.Store(sentinel)
		q.tail.Store(sentinel)
	})
}

// Send adds ev to the end of the queue. It is safe to call
// from any number of goroutines.
func (q *Queue[E]) Send(ev E) {
	q.init()
	n := q.free.Get().(*node[E])
	n.next.Store(nil)
	n.v = ev
	for {
		tail := q.tail.Load()
		next := tail.next.Load()
		if tail != q.tail.Load() {
			continue
		}
		if next != nil {
			// help a concurrent Send finish moving the tail
			q.tail.CompareAndSwap(tail, next)
			continue
		}
		if tail.next.CompareAndSwap(nil, n) {
			q.tail.CompareAndSwap(tail, n)
			q.len.Add(1)
			return
		}
	}
}

// Next removes and returns the oldest event, and false
// if the queue is empty.
func (q *Queue[E]) Next() (E, bool) {
	q.init()
	var zero E
	for {
		head := q.head.Load()
		tail := q.tail.Load()
		next := head.next.Load()
		if head != q.head.Load() {
			continue
		}
		if next == nil {
			return zero, false
		}
		if head == tail {
			q.tail.CompareAndSwap(tail, next)
			continue
		}
		ev := next.v
		if q.head.CompareAndSwap(head, next) {
			q.len.Add(-1)
			next.v = zero
			head.v = zero
			q.free.Put(head)
			return ev, true
		}
	}
}

// Drain calls fun on each queued event in arrival order until the
// queue is empty, and returns the number of events. Events sent
// while draining are included.
func (q *Queue[E]) Drain(fun func(ev E)) int {
	n := 0
	for {
		ev, ok := q.Next()
		if !ok {
			return n
		}
		fun(ev)
		n++
	}
}

// Len returns the number of queued events.
func (q *Queue[E]) Len() int {
	return int(q.len.Load())
}
