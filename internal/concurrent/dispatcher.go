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

//go:generate mockgen -source=./dispatcher.go -destination=./dispatcher_mock.go -package=concurrent

// Dispatcher is the submission-side view of a Queue[A, R]: the part a
// caller touches once the Queue is already built. It drops the R type
// parameter because nothing on this surface produces or consumes R --
// that's entirely between QueueFunction's main/post and the caller's
// own post callback.
//
// Any *Queue[A, R] satisfies Dispatcher[A] for every R, matching the
// teacher's own Pool interface shape in internal/concurrent/pool.go
// (Submit/Stopped/Stop) one level up: a narrow interface over the
// concrete worker-owning type, so callers needing to mock the dispatch
// side of a benchmark don't have to stand up real goroutines.
type Dispatcher[A any] interface {
	// Dispatch submits one argument tuple for execution. Never blocks
	// longer than it takes to append one element to the deque, never
	// fails.
	Dispatch(args A)
	// HasWorkLeft reports whether any dispatched work is still pending
	// or in flight; see Queue.HasWorkLeft for the two blocking modes.
	HasWorkLeft(block bool) bool
	// Close stops every Worker and releases the QueueFunction if this
	// Queue owns it. The Dispatcher must not be used after Close
	// returns.
	Close() error
}

var (
	_ Dispatcher[int]      = (*Queue[int, Void])(nil)
	_ Dispatcher[sortArgs] = (*Queue[sortArgs, int])(nil)
)

// sortArgs is an arbitrary multi-field argument tuple used only to
// exercise the Dispatcher[A] compile-time assertion above with A being
// a struct rather than a scalar, the way a real multi-argument
// QueueFunction caller's argument type would be shaped (see SPEC_FULL.md's
// "callers needing multiple arguments supply a struct literal").
type sortArgs struct {
	n    int
	size int
}
