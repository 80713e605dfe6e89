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

func TestMallocManually_AllocatesRequestedBuffers(t *testing.T) {
	assert.NotPanics(t, func() { mallocManually(10, 256) })
}

func TestMalloc_ReturnsPopulatedResult(t *testing.T) {
	r := Malloc(3, 50, 512)
	assert.Equal(t, "malloc", r.Name)
	assert.Equal(t, 3, r.NumWorkers)
}
