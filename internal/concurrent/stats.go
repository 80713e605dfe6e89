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

import (
	"math"
	"time"

	"go.uber.org/atomic"
)

// Statistics tracks Queue activity with lock-free counters, the same
// way internal/concurrent/pool.go leant on go.uber.org/atomic for its
// per-pool metrics struct.
type Statistics struct {
	TasksSubmitted atomic.Int64
	TasksCompleted atomic.Int64
	TasksSkipped   atomic.Int64
	TasksPanicked  atomic.Int64
	WorkersAlive   atomic.Int32

	minLatencyNS atomic.Float64
	maxLatencyNS atomic.Float64
}

func newStatistics() *Statistics {
	return &Statistics{
		minLatencyNS: *atomic.NewFloat64(math.Inf(1)),
	}
}

// recordDispatch folds one completed dispatch's wall-clock duration
// into the running min/max, using the same compare-and-swap retry loop
// as internal/linmetric's BoundMin.
func (s *Statistics) recordDispatch(d time.Duration) {
	s.TasksCompleted.Inc()
	ns := float64(d.Nanoseconds())
	for {
		cur := s.minLatencyNS.Load()
		if ns >= cur {
			break
		}
		if s.minLatencyNS.CompareAndSwap(cur, ns) {
			break
		}
	}
	for {
		cur := s.maxLatencyNS.Load()
		if ns <= cur {
			break
		}
		if s.maxLatencyNS.CompareAndSwap(cur, ns) {
			break
		}
	}
}

// Snapshot is a consistent-enough point-in-time read of Statistics,
// safe to pass around or print without further synchronization.
type Snapshot struct {
	TasksSubmitted int64
	TasksCompleted int64
	TasksSkipped   int64
	TasksPanicked  int64
	WorkersAlive   int32
	MinLatency     time.Duration
	MaxLatency     time.Duration
}

// Snapshot reads all counters into a Snapshot.
func (s *Statistics) Snapshot() Snapshot {
	minNS := s.minLatencyNS.Load()
	if math.IsInf(minNS, 1) {
		minNS = 0
	}
	return Snapshot{
		TasksSubmitted: s.TasksSubmitted.Load(),
		TasksCompleted: s.TasksCompleted.Load(),
		TasksSkipped:   s.TasksSkipped.Load(),
		TasksPanicked:  s.TasksPanicked.Load(),
		WorkersAlive:   s.WorkersAlive.Load(),
		MinLatency:     time.Duration(minNS),
		MaxLatency:     time.Duration(s.maxLatencyNS.Load()),
	}
}
