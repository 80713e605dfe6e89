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

// Void is the "unit" return type for QueueFunction pipelines whose main
// stage produces nothing a caller cares about.
type Void struct{}

// QueueFunction bundles the pre/main/post/init/close stages a Queue
// invokes once per dispatched argument tuple. A QueueFunction has no
// concurrency of its own: it is a pure value, invoked from worker
// goroutines.
//
// Only main is required. Build one with New or NewVoid, then chain the
// With* setters; treat the result as immutable once it's handed to
// NewQueue.
type QueueFunction[A any, R any] struct {
	init  func()
	pre   func(A) bool
	main  func(A) R
	post  func(R)
	close func()
}

// New builds a QueueFunction whose main stage returns a meaningful
// value of type R. Use NewVoid for a main stage with no result.
func New[A any, R any](main func(A) R) *QueueFunction[A, R] {
	return &QueueFunction[A, R]{main: main}
}

// NewVoid builds a QueueFunction whose main stage produces no result,
// matching the spec's "post takes no argument when R = unit" variant.
// Pair its WithPost call with VoidPost to get that no-argument post
// signature.
func NewVoid[A any](main func(A)) *QueueFunction[A, Void] {
	wrapped := func(args A) Void {
		main(args)
		return Void{}
	}
	return New[A, Void](wrapped)
}

// VoidPost adapts a no-argument post callback to the func(Void)
// signature a Void-returning QueueFunction's WithPost expects.
func VoidPost(post func()) func(Void) {
	return func(Void) { post() }
}

// WithInit installs a hook run once by each Worker right after it
// starts, before the first work item is popped.
func (qf *QueueFunction[A, R]) WithInit(init func()) *QueueFunction[A, R] {
	qf.init = init
	return qf
}

// WithPre installs the pre-filter. It is only consulted when main is
// also set (always true for a QueueFunction built via New/NewVoid);
// when pre returns false, main and post are skipped for that dispatch.
func (qf *QueueFunction[A, R]) WithPre(pre func(A) bool) *QueueFunction[A, R] {
	qf.pre = pre
	return qf
}

// WithPost installs the sink for main's return value. Not called unless
// main ran for that dispatch.
func (qf *QueueFunction[A, R]) WithPost(post func(R)) *QueueFunction[A, R] {
	qf.post = post
	return qf
}

// WithClose installs a hook run once by each Worker as it exits its
// main loop, mirroring WithInit.
func (qf *QueueFunction[A, R]) WithClose(close func()) *QueueFunction[A, R] {
	qf.close = close
	return qf
}

// runInit invokes init once, if set. Safe on a nil receiver.
func (qf *QueueFunction[A, R]) runInit() {
	if qf != nil && qf.init != nil {
		qf.init()
	}
}

// runClose invokes close once, if set. Safe on a nil receiver.
func (qf *QueueFunction[A, R]) runClose() {
	if qf != nil && qf.close != nil {
		qf.close()
	}
}

// run executes the pre/main/post pipeline for one dispatch. It reports
// whether main was invoked.
func (qf *QueueFunction[A, R]) run(args A) bool {
	if qf == nil || qf.main == nil {
		return false
	}
	shouldRunMain := true
	if qf.pre != nil {
		shouldRunMain = qf.pre(args)
	}
	if !shouldRunMain {
		return false
	}
	result := qf.main(args)
	if qf.post != nil {
		qf.post(result)
	}
	return true
}
