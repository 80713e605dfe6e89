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
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRandomVectors_Shape(t *testing.T) {
	vectors := newRandomVectors(5, 20)
	assert.Len(t, vectors, 5)
	for _, v := range vectors {
		assert.Len(t, v, 20)
	}
}

func TestSortManually_SortsEachVector(t *testing.T) {
	vectors := newRandomVectors(3, 50)
	sortManually(vectors)
	for _, v := range vectors {
		assert.True(t, sort.Float64sAreSorted(v))
	}
}

func TestVectorSort_ReturnsPopulatedResult(t *testing.T) {
	r := VectorSort(4, 20, 100)
	assert.Equal(t, "vector-sort", r.Name)
	assert.Equal(t, 4, r.NumWorkers)
	assert.GreaterOrEqual(t, r.ManualElapsed.Nanoseconds(), int64(0))
	assert.GreaterOrEqual(t, r.QueueElapsed.Nanoseconds(), int64(0))
}
