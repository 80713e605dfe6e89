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
	"math/rand"
	"sort"

	"github.com/go-dispatch/dispatch/internal/concurrent"
)

// sortJob is one vector to sort in place.
type sortJob struct {
	data []float64
}

func newRandomVectors(numVectors, vectorSize int) [][]float64 {
	vectors := make([][]float64, numVectors)
	for i := range vectors {
		v := make([]float64, vectorSize)
		for j := range v {
			v[j] = rand.Float64()
		}
		vectors[i] = v
	}
	return vectors
}

func sortManually(vectors [][]float64) {
	for _, v := range vectors {
		sort.Float64s(v)
	}
}

// VectorSort sorts numVectors random vectors of vectorSize floats both
// manually (one goroutine) and via a dispatch Queue with numWorkers,
// the way TestQueueVectorSort.cpp ran the same workload both ways at a
// matrix of sizes before comparing timings.
func VectorSort(numWorkers, numVectors, vectorSize int) Result {
	manualVectors := newRandomVectors(numVectors, vectorSize)
	manualElapsed := timeIt(func() { sortManually(manualVectors) })

	queueVectors := newRandomVectors(numVectors, vectorSize)
	qf := concurrent.NewVoid(func(job sortJob) { sort.Float64s(job.data) })
	queueElapsed := timeIt(func() {
		q, err := concurrent.NewQueue[sortJob](qf, numWorkers, concurrent.Owned)
		if err != nil {
			return
		}
		defer q.Close()
		jobs := make([]sortJob, len(queueVectors))
		for i, v := range queueVectors {
			jobs[i] = sortJob{data: v}
		}
		dispatchAll[sortJob](q, jobs)
	})

	return Result{
		Name:          "vector-sort",
		NumWorkers:    numWorkers,
		ManualElapsed: manualElapsed,
		QueueElapsed:  queueElapsed,
	}
}
