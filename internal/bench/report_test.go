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
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResult_Speedup(t *testing.T) {
	r := Result{ManualElapsed: 200 * time.Millisecond, QueueElapsed: 50 * time.Millisecond}
	assert.InDelta(t, 4.0, r.Speedup(), 0.0001)
}

func TestResult_Speedup_ZeroQueueElapsed(t *testing.T) {
	r := Result{ManualElapsed: 200 * time.Millisecond, QueueElapsed: 0}
	assert.Equal(t, 0.0, r.Speedup())
}

func TestResult_Print(t *testing.T) {
	r := Result{
		Name:          "widget",
		NumWorkers:    4,
		ManualElapsed: 100 * time.Millisecond,
		QueueElapsed:  25 * time.Millisecond,
	}
	var buf bytes.Buffer
	r.Print(&buf)
	out := buf.String()
	assert.Contains(t, out, "widget")
	assert.Contains(t, out, "4 workers")
}

func TestTimeIt(t *testing.T) {
	ran := false
	d := timeIt(func() { ran = true })
	assert.True(t, ran)
	assert.GreaterOrEqual(t, d, time.Duration(0))
}
