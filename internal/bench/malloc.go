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

package bench

import (
	"github.com/go-dispatch/dispatch/internal/concurrent"
)

// allocEntry mirrors the original program's ppEntries[index]: a slot
// to receive a freshly allocated buffer of bufferSize bytes.
type allocEntry struct {
	bufferSize int
	buf        []byte
}

func mallocManually(numEntries, bufferSize int) {
	entries := make([]allocEntry, numEntries)
	for i := range entries {
		entries[i].buf = make([]byte, bufferSize)
	}
}

// Malloc allocates numEntries buffers of bufferSize bytes, both
// manually and via a dispatch Queue with numWorkers, the way
// TestMalloc.cpp swept numEntries/bufferSize/numThreads looking for
// where dispatch overhead stops paying for itself.
func Malloc(numWorkers, numEntries, bufferSize int) Result {
	manualElapsed := timeIt(func() { mallocManually(numEntries, bufferSize) })

	entries := make([]allocEntry, numEntries)
	qf := concurrent.New(func(e *allocEntry) *allocEntry {
		e.buf = make([]byte, e.bufferSize)
		return e
	})
	queueElapsed := timeIt(func() {
		q, err := concurrent.NewQueue[*allocEntry](qf, numWorkers, concurrent.Owned)
		if err != nil {
			return
		}
		defer q.Close()
		ptrs := make([]*allocEntry, numEntries)
		for i := range entries {
			entries[i].bufferSize = bufferSize
			ptrs[i] = &entries[i]
		}
		dispatchAll[*allocEntry](q, ptrs)
	})

	return Result{
		Name:          "malloc",
		NumWorkers:    numWorkers,
		ManualElapsed: manualElapsed,
		QueueElapsed:  queueElapsed,
	}
}
