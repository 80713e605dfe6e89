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
	"github.com/spf13/cobra"

	"github.com/lindb/common/pkg/logger"
)

const currentDir = "./"

const defaultCfgFile = currentDir + "dispatch-bench.toml"

// cfgFile, and the five benchmark-selection flags, mirror the original
// CLI's argv surface: --tv/--td/--tf/--tm/--tt (or --test-vectors,
// -v and so on) select suites, -j sets the worker count. The two-letter
// forms are long flags only: a single-dash -tv is parsed as the
// shorthand group -t -v and selects both the thread-scaling and the
// vector-sort suites. cfgFile is a persistent flag on the root command;
// the others are the root command's own local flags.
var (
	cfgFile    string
	numThreads int

	runVectorSort bool
	runDownloads  bool
	runFileIO     bool
	runMalloc     bool
	runThreads    bool
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "dispatch-bench",
		Short:        "Benchmark the dispatch work-queue against single-threaded baselines",
		SilenceUsage: true,
		RunE:         runBenchmarks,
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "",
		"benchmark config file path, default is "+defaultCfgFile)
	root.Flags().IntVarP(&numThreads, "num-threads", "j", 0,
		"number of dispatch workers, default is 12")
	root.Flags().BoolVarP(&runVectorSort, "test-vectors", "v", false, "run the vector-sort benchmark")
	root.Flags().BoolVar(&runVectorSort, "tv", false, "alias for --test-vectors")
	root.Flags().BoolVarP(&runDownloads, "test-downloads", "d", false, "run the downloads benchmark")
	root.Flags().BoolVar(&runDownloads, "td", false, "alias for --test-downloads")
	root.Flags().BoolVarP(&runFileIO, "test-files", "f", false, "run the file-io benchmark")
	root.Flags().BoolVar(&runFileIO, "tf", false, "alias for --test-files")
	root.Flags().BoolVarP(&runMalloc, "test-malloc", "m", false, "run the malloc benchmark")
	root.Flags().BoolVar(&runMalloc, "tm", false, "alias for --test-malloc")
	root.Flags().BoolVarP(&runThreads, "test-threads", "t", false, "run the thread-scaling benchmark")
	root.Flags().BoolVar(&runThreads, "tt", false, "alias for --test-threads")

	root.AddCommand(newInitConfigCmd())
	return root
}

func initLogging() error {
	return logger.InitLogger(logger.NewDefaultSetting(), "dispatch-bench.log")
}
