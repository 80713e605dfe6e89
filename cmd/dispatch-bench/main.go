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

// Command dispatch-bench is the CLI front end sketched in spec.md's §6
// as an out-of-core collaborator: it selects which benchmark suite(s)
// to run and how many dispatch workers to run them with, then prints
// each suite's manual-vs-queue timing.
package main

import (
	"fmt"
	"os"

	// set GOMAXPROCS from the container/cgroup CPU quota rather than the
	// host's full core count, the way cmd/lind's own entrypoint does --
	// the benchmark suites below exist to measure parallel speedup, which
	// a wrong GOMAXPROCS would make meaningless.
	_ "go.uber.org/automaxprocs"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
