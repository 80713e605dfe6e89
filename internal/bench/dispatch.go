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

import "github.com/go-dispatch/dispatch/internal/concurrent"

// dispatchAll submits every item to d in order and blocks until all of
// them have both dequeued and finished executing. Every benchmark suite
// in this package shares this exact manual-vs-queue submission loop; it
// is pulled out once here so it can be driven against either a real
// *concurrent.Queue or, in tests, a concurrent.MockDispatcher that
// doesn't need real goroutine timing to verify the submission count.
func dispatchAll[A any](d concurrent.Dispatcher[A], items []A) {
	for _, item := range items {
		d.Dispatch(item)
	}
	d.HasWorkLeft(true)
}
