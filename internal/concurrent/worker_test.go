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
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker(onInit, onClose func()) (*worker, *sync.Mutex, *workDeque) {
	var mu sync.Mutex
	cond := sync.NewCond(&mu)
	deque := &workDeque{}
	if onInit == nil {
		onInit = func() {}
	}
	if onClose == nil {
		onClose = func() {}
	}
	w := newWorkerHandle(0, &mu, cond, deque, onInit, onClose, nil)
	return w, &mu, deque
}

func TestWorker_StartSetsRunningAndIdle(t *testing.T) {
	w, _, _ := newTestWorker(nil, nil)
	require.NoError(t, w.start())
	defer w.stop()

	assert.True(t, w.isRunning.Load())
	assert.Eventually(t, func() bool { return w.isIdle.Load() }, time.Second, time.Millisecond)
}

func TestWorker_StopJoinsAndClearsFlags(t *testing.T) {
	w, _, _ := newTestWorker(nil, nil)
	require.NoError(t, w.start())

	w.stop()

	assert.False(t, w.isRunning.Load())
	assert.True(t, w.isIdle.Load())
}

func TestWorker_RunsInitOnceAtStartupAndCloseOnceAtExit(t *testing.T) {
	var initCalls, closeCalls int
	w, _, _ := newTestWorker(func() { initCalls++ }, func() { closeCalls++ })

	require.NoError(t, w.start())
	assert.Equal(t, 1, initCalls)
	assert.Equal(t, 0, closeCalls)

	w.stop()
	assert.Equal(t, 1, closeCalls)
}

func TestWorker_PopsAndExecutesOneItem(t *testing.T) {
	w, mu, deque := newTestWorker(nil, nil)
	require.NoError(t, w.start())
	defer w.stop()

	done := make(chan struct{})
	mu.Lock()
	deque.pushBack(func() { close(done) })
	mu.Unlock()
	w.cond.Broadcast()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("work item was never executed")
	}
}

func TestWorker_ExecutePanicIsRecoveredAndReported(t *testing.T) {
	var reported error
	w, _, _ := newTestWorker(nil, nil)
	w.onPanic = func(err error) { reported = err }
	require.NoError(t, w.start())
	defer w.stop()

	done := make(chan struct{})
	w.mu.Lock()
	w.deque.pushBack(func() { panic("boom") })
	w.deque.pushBack(func() { close(done) })
	w.mu.Unlock()
	w.cond.Broadcast()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not continue after a panicking item")
	}
	assert.Eventually(t, func() bool { return reported != nil }, time.Second, time.Millisecond)
}
