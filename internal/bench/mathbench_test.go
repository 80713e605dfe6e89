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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBusyMath_Deterministic(t *testing.T) {
	assert.Equal(t, busyMath(7), busyMath(7))
}

func TestMathManually_SumsAllItems(t *testing.T) {
	assert.NotEqual(t, 0.0, mathManually(10))
}

func TestThreadScaling_OneResultPerThreadCount(t *testing.T) {
	results := ThreadScaling([]int{1, 2, 4}, 20)
	assert.Len(t, results, 3)
	for i, want := range []int{1, 2, 4} {
		assert.Equal(t, want, results[i].NumWorkers)
		assert.Equal(t, "math-threads", results[i].Name)
	}
}
