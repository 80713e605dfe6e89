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

package concurrent

import (
	"errors"
	"sync"
	"time"

	"go.uber.org/atomic"

	"github.com/lindb/common/pkg/logger"

	"github.com/go-dispatch/dispatch/internal/panicrecover"
)

const (
	// startupPollStep is how often the owner polls for a Worker's
	// goroutine to report isRunning during startup.
	startupPollStep = time.Microsecond
	// startupPollCap is how long the owner waits before declaring a
	// Worker's startup a failure.
	startupPollCap = 500 * time.Microsecond
	// shutdownPollStep mirrors startupPollStep during teardown.
	shutdownPollStep = time.Microsecond
	// shutdownPollCap bounds how long the owner re-broadcasts while
	// waiting for isRunning to clear before unconditionally joining.
	shutdownPollCap = 5 * time.Millisecond
)

// ErrWorkerStartupTimeout is returned by worker.start when a Worker's
// goroutine didn't report isRunning within startupPollCap.
var ErrWorkerStartupTimeout = errors.New("concurrent: worker did not start within the startup window")

// worker is a single long-lived goroutine that pops closures off a
// Queue's shared deque and runs them. It holds no reference to the
// Queue's generic type parameters: init/close hooks and the recovered-
// panic sink are plain closures supplied by the owning Queue, keeping
// worker itself non-generic.
type worker struct {
	id int

	keepGoing atomic.Bool
	isRunning atomic.Bool
	isIdle    atomic.Bool

	mu    *sync.Mutex
	cond  *sync.Cond
	deque *workDeque

	onInit  func()
	onClose func()
	onPanic func(err error)

	logger logger.Logger

	done chan struct{}
}

func newWorkerHandle(id int, mu *sync.Mutex, cond *sync.Cond, deque *workDeque, onInit, onClose func(), onPanic func(error)) *worker {
	w := &worker{
		id:      id,
		mu:      mu,
		cond:    cond,
		deque:   deque,
		onInit:  onInit,
		onClose: onClose,
		onPanic: onPanic,
		logger:  logger.GetLogger("Concurrent", "Worker"),
		done:    make(chan struct{}),
	}
	w.keepGoing.Store(true)
	return w
}

// start spawns the worker's goroutine and blocks until it has reported
// isRunning, or returns ErrWorkerStartupTimeout after tearing the
// goroutine back down.
func (w *worker) start() error {
	go w.loop()

	deadline := time.Now().Add(startupPollCap)
	time.Sleep(startupPollStep)
	for !w.isRunning.Load() {
		if time.Now().After(deadline) {
			w.stop()
			return ErrWorkerStartupTimeout
		}
		time.Sleep(startupPollStep)
	}
	return nil
}

// stop runs the shutdown protocol: flip keepGoing, double-broadcast
// with a short sleep either side (covering the race where a Worker was
// between setting isIdle and calling Wait when the first broadcast
// fired), re-broadcast while polling isRunning up to shutdownPollCap,
// then unconditionally join.
func (w *worker) stop() {
	w.keepGoing.Store(false)

	time.Sleep(shutdownPollStep)
	w.cond.Broadcast()
	time.Sleep(shutdownPollStep)

	deadline := time.Now().Add(shutdownPollCap)
	for w.isRunning.Load() && time.Now().Before(deadline) {
		time.Sleep(shutdownPollStep)
		w.cond.Broadcast()
	}

	<-w.done
}

// loop is the worker goroutine body: set idle, wait for work or
// shutdown, execute at most one item, repeat.
func (w *worker) loop() {
	w.isRunning.Store(true)
	w.onInit()

	for w.keepGoing.Load() {
		w.isIdle.Store(true)

		w.mu.Lock()
		for w.deque.len() == 0 && w.keepGoing.Load() {
			w.cond.Wait()
		}
		w.isIdle.Store(false)

		if !w.keepGoing.Load() {
			w.mu.Unlock()
			break
		}

		item, ok := w.deque.popFront()
		w.mu.Unlock()

		if ok {
			w.execute(item)
		}
		w.isIdle.Store(true)
	}

	w.onClose()
	w.isRunning.Store(false)
	w.isIdle.Store(true)
	close(w.done)
}

// execute runs one work item, recovering a panic the way
// internal/concurrent's original execTask did: log it with a stack
// trace and keep the worker alive rather than letting it unwind.
func (w *worker) execute(item func()) {
	defer func() {
		if r := recover(); r != nil {
			err := panicrecover.Wrap(r)
			w.logger.Error("panic while executing dispatched work item",
				logger.Error(err), logger.Stack())
			if w.onPanic != nil {
				w.onPanic(err)
			}
		}
	}()
	item()
}
