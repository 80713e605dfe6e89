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

// Package bench holds the benchmark suites that exercise
// internal/concurrent's Queue the way the original program's test
// binaries did: run a workload manually (single goroutine, no Queue),
// run it again dispatched across N workers, and report the speedup.
// None of this package is part of the dispatch runtime's contract --
// it's a client, same as any caller's own code would be.
package bench

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
)

// Result is one manual-vs-dispatched comparison.
type Result struct {
	Name          string
	NumWorkers    int
	ManualElapsed time.Duration
	QueueElapsed  time.Duration
}

// Speedup is ManualElapsed/QueueElapsed, or 0 if QueueElapsed is 0.
func (r Result) Speedup() float64 {
	if r.QueueElapsed <= 0 {
		return 0
	}
	return float64(r.ManualElapsed) / float64(r.QueueElapsed)
}

// Print writes a colorized one-line summary, mirroring the original
// program's green "Manually:" / cyan "Queue:" timing lines.
func (r Result) Print(w io.Writer) {
	green := color.New(color.FgGreen).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	fmt.Fprintf(w, "%s %s manually: %9.2fms\n", green(r.Name), "", msf(r.ManualElapsed))
	fmt.Fprintf(w, "%s %s via queue (%d workers): %9.2fms => %s speedup\n",
		cyan(r.Name), "", r.NumWorkers, msf(r.QueueElapsed), yellow(fmt.Sprintf("%.2fx", r.Speedup())))
}

func msf(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000.0
}

// timeIt runs f once and returns how long it took.
func timeIt(f func()) time.Duration {
	start := time.Now()
	f()
	return time.Since(start)
}
