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
	"math"

	"github.com/go-dispatch/dispatch/internal/concurrent"
)

// busyMath is the same trig/sqrt grind TestThreads.cpp ran per item --
// cheap enough to dispatch in bulk, expensive enough that the workers
// actually show up in a profile.
func busyMath(seed int) float64 {
	x := float64(seed%997) + 1
	for i := 0; i < 200; i++ {
		x = math.Sqrt(x*x+1) + math.Sin(x) - math.Cos(x)
	}
	return x
}

func mathManually(n int) float64 {
	var sum float64
	for i := 0; i < n; i++ {
		sum += busyMath(i)
	}
	return sum
}

// ThreadScaling runs the math workload manually once, then dispatched
// across each worker count in threadCounts, the way TestThreads.cpp
// swept thread counts looking for the point of diminishing returns.
func ThreadScaling(threadCounts []int, n int) []Result {
	manualElapsed := timeIt(func() { mathManually(n) })

	results := make([]Result, 0, len(threadCounts))
	for _, workers := range threadCounts {
		qf := concurrent.NewVoid(func(seed int) { busyMath(seed) })
		queueElapsed := timeIt(func() {
			q, err := concurrent.NewQueue[int](qf, workers, concurrent.Owned)
			if err != nil {
				return
			}
			defer q.Close()
			seeds := make([]int, n)
			for i := range seeds {
				seeds[i] = i
			}
			dispatchAll[int](q, seeds)
		})
		results = append(results, Result{
			Name:          "math-threads",
			NumWorkers:    workers,
			ManualElapsed: manualElapsed,
			QueueElapsed:  queueElapsed,
		})
	}
	return results
}
