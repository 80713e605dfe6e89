// Licensed to LinDB under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. LinDB licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

// Package concurrent implements a generic work-dispatch runtime: a
// Queue owns a fixed pool of Workers draining a shared FIFO deque of
// closures produced by QueueFunction pipelines.
package concurrent

import (
	"fmt"
	"sync"
	"time"

	"github.com/lindb/common/pkg/logger"
)

const (
	// drainPollInterval is how often HasWorkLeft(true) re-checks the
	// deque and worker idleness while draining.
	drainPollInterval = 50 * time.Microsecond
	// drainSettleCap bounds phase 2 of a blocking drain (queue empty,
	// waiting for the last popped items to finish executing). It is a
	// safety valve, not a completion guarantee.
	drainSettleCap = 5 * time.Second
)

// Ownership controls who is responsible for a QueueFunction's
// lifetime once it has been handed to a Queue.
type Ownership int

const (
	// Borrowed means the caller retains ownership of the QueueFunction
	// and may keep using it after the Queue is closed; the Queue never
	// releases its reference.
	Borrowed Ownership = iota
	// Owned means the Queue releases its reference to the
	// QueueFunction on Close, matching the source's deallocateQueueFunc
	// flag.
	Owned
)

// Queue owns one QueueFunction, a fixed-size pool of Workers, and the
// FIFO deque of pending work they drain. The zero value is not usable;
// construct with NewQueue.
type Queue[A any, R any] struct {
	mu    sync.Mutex
	cond  *sync.Cond
	deque workDeque

	workers   []*worker
	queueFunc *QueueFunction[A, R]
	ownership Ownership

	stats  *Statistics
	logger logger.Logger
}

// NewQueue constructs a Queue backed by numWorkers goroutines, each
// running queueFunc's pipeline once per dispatched argument tuple. A
// requested count below 1 is silently raised to 1. All Workers are
// running by the time NewQueue returns; if any fails to start, the
// ones already started are torn down and the error is returned.
func NewQueue[A any, R any](queueFunc *QueueFunction[A, R], numWorkers int, ownership Ownership) (*Queue[A, R], error) {
	if numWorkers < 1 {
		numWorkers = 1
	}

	q := &Queue[A, R]{
		queueFunc: queueFunc,
		ownership: ownership,
		stats:     newStatistics(),
		logger:    logger.GetLogger("Concurrent", "Queue"),
	}
	q.cond = sync.NewCond(&q.mu)
	q.workers = make([]*worker, 0, numWorkers)

	for i := 0; i < numWorkers; i++ {
		w := newWorkerHandle(i, &q.mu, q.cond, &q.deque,
			queueFunc.runInit, queueFunc.runClose,
			func(error) { q.stats.TasksPanicked.Inc() },
		)
		if err := w.start(); err != nil {
			q.teardownWorkers(q.workers)
			return nil, fmt.Errorf("concurrent: starting worker %d: %w", i, err)
		}
		q.stats.WorkersAlive.Inc()
		q.workers = append(q.workers, w)
	}

	return q, nil
}

func (q *Queue[A, R]) teardownWorkers(workers []*worker) {
	for _, w := range workers {
		w.stop()
	}
}

// WorkerCount reports how many Workers this Queue owns.
func (q *Queue[A, R]) WorkerCount() int {
	return len(q.workers)
}

// Stats returns a point-in-time snapshot of this Queue's counters.
func (q *Queue[A, R]) Stats() Snapshot {
	return q.stats.Snapshot()
}

// Dispatch submits one argument tuple for execution. It never blocks
// longer than it takes to acquire the deque mutex and append one
// element, and never fails: the deque is unbounded.
func (q *Queue[A, R]) Dispatch(args A) {
	qf := q.queueFunc
	item := func() {
		start := time.Now()
		ran := qf.run(args)
		if ran {
			q.stats.recordDispatch(time.Since(start))
		} else {
			q.stats.TasksSkipped.Inc()
		}
	}

	q.mu.Lock()
	q.deque.pushBack(item)
	q.mu.Unlock()
	// Broadcast wakes every parked Worker; each re-checks the deque
	// under the mutex and parks again if it finds it empty.
	// HasWorkLeft's drain never waits on this condition variable; it
	// polls.
	q.cond.Broadcast()

	q.stats.TasksSubmitted.Inc()
}

// HasWorkLeft reports whether any dispatched work is still pending or
// in flight.
//
// With block == false it's a single non-blocking check: the deque, then
// every Worker's idle flag.
//
// With block == true it drains in two phases: first wait for the deque
// to empty (no timeout), then wait for every Worker to report idle
// (capped at ~5s, a safety valve since a Worker may have popped the
// last item and still be executing it). Always returns true.
func (q *Queue[A, R]) HasWorkLeft(block bool) bool {
	if !block {
		q.mu.Lock()
		pending := q.deque.len() > 0
		q.mu.Unlock()
		if pending {
			return true
		}
		return q.anyWorkerBusy()
	}

	for {
		q.mu.Lock()
		pending := q.deque.len()
		q.mu.Unlock()
		if pending == 0 {
			break
		}
		time.Sleep(drainPollInterval)
	}

	deadline := time.Now().Add(drainSettleCap)
	for q.anyWorkerBusy() {
		if time.Now().After(deadline) {
			q.logger.Warn("drain exceeded settle cap with a worker still busy")
			break
		}
		time.Sleep(drainPollInterval)
	}
	return true
}

func (q *Queue[A, R]) anyWorkerBusy() bool {
	for _, w := range q.workers {
		if !w.isIdle.Load() {
			return true
		}
	}
	return false
}

// Close clears any not-yet-popped work (dropping it is intentional:
// Close is not a drain), stops every Worker, and joins its goroutine.
// If this Queue owns its QueueFunction, the reference is released.
// The Queue must not be used after Close returns.
func (q *Queue[A, R]) Close() error {
	q.mu.Lock()
	q.deque.clear()
	q.mu.Unlock()

	for _, w := range q.workers {
		w.stop()
		q.stats.WorkersAlive.Dec()
	}

	if q.ownership == Owned {
		q.queueFunc = nil
	}
	return nil
}
