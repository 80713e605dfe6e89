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

package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	bconfig "github.com/go-dispatch/dispatch/config"
	"github.com/go-dispatch/dispatch/internal/bench"
)

// loadConfig applies defaultCfgFile/cfgFile as a base, the way
// serveStorage/serveStandalone load a TOML file before flags take
// precedence over it.
func loadConfig() *bconfig.Config {
	cfg := bconfig.NewDefaultConfig()
	path := cfgFile
	if path == "" {
		path = defaultCfgFile
	}
	if _, err := os.Stat(path); err == nil {
		_ = bconfig.Load(path, cfg)
	}
	return cfg
}

// runBenchmarks loads the config, lets flags override it, then runs
// whichever suites were selected and prints each one's report.
func runBenchmarks(cmd *cobra.Command, _ []string) error {
	if err := initLogging(); err != nil {
		return err
	}

	cfg := loadConfig()
	if numThreads > 0 {
		cfg.NumThreads = numThreads
	}
	if runVectorSort {
		cfg.Benchmarks.VectorSort = true
	}
	if runDownloads {
		cfg.Benchmarks.Downloads = true
	}
	if runFileIO {
		cfg.Benchmarks.FileIO = true
	}
	if runMalloc {
		cfg.Benchmarks.Malloc = true
	}
	if runThreads {
		cfg.Benchmarks.Threads = true
	}

	out := cmd.OutOrStdout()
	workers := cfg.NumThreads

	if cfg.Benchmarks.VectorSort {
		bench.VectorSort(workers, 64, 4096).Print(out)
	}
	if cfg.Benchmarks.Downloads {
		urls := []string{
			"https://www.google.com",
			"https://www.github.com",
			"https://www.wikipedia.org",
		}
		bench.Downloads(workers, urls).Print(out)
	}
	if cfg.Benchmarks.FileIO {
		if err := runFileIOBenchmark(workers, out); err != nil {
			return err
		}
	}
	if cfg.Benchmarks.Malloc {
		bench.Malloc(workers, 2048, 4096).Print(out)
	}
	if cfg.Benchmarks.Threads {
		for _, r := range bench.ThreadScaling([]int{1, 2, 4, 8, workers}, 20000) {
			r.Print(out)
		}
	}
	return nil
}

// runFileIOBenchmark stages a scratch source file and destination
// directory under os.TempDir, the way the original test binary staged
// its fixtures next to the executable.
func runFileIOBenchmark(workers int, out io.Writer) error {
	dir, err := os.MkdirTemp("", "dispatch-bench-fileio")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	src := filepath.Join(dir, "source.bin")
	if err := os.WriteFile(src, make([]byte, 64*1024), 0o600); err != nil {
		return err
	}

	result, err := bench.FileIO(workers, src, dir, 64)
	if err != nil {
		return err
	}
	result.Print(out)
	return nil
}
