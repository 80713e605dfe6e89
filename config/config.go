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

// Package config holds the benchmark CLI's configuration: which
// benchmark suites to run, at what scale, and with how many dispatch
// workers. It follows the same TOML-string-builder shape as the
// teacher's own config package (TOML()/NewDefaultXxx()/checkXxxCfg()),
// trimmed to this repository's much smaller surface.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v7"

	"github.com/lindb/common/pkg/logger"
)

// Benchmarks selects which benchmark suites a run should execute.
type Benchmarks struct {
	VectorSort bool `env:"VECTOR_SORT" toml:"vector-sort"`
	Downloads  bool `env:"DOWNLOADS" toml:"downloads"`
	FileIO     bool `env:"FILE_IO" toml:"file-io"`
	Malloc     bool `env:"MALLOC" toml:"malloc"`
	Threads    bool `env:"THREADS" toml:"threads"`
}

// TOML returns Benchmarks' toml config string.
func (b *Benchmarks) TOML() string {
	return fmt.Sprintf(`
## Which benchmark suites to run.
[benchmarks]
## sorts many vectors manually and via the dispatch queue, compares timing
## Default: %t
vector-sort = %t
## fetches many URLs concurrently through the dispatch queue
## Default: %t
downloads = %t
## reads/writes many files concurrently through the dispatch queue
## Default: %t
file-io = %t
## stresses allocation patterns through the dispatch queue
## Default: %t
malloc = %t
## runs the math workload across a range of thread counts
## Default: %t
threads = %t`,
		b.VectorSort, b.VectorSort,
		b.Downloads, b.Downloads,
		b.FileIO, b.FileIO,
		b.Malloc, b.Malloc,
		b.Threads, b.Threads,
	)
}

// Config is the benchmark CLI's top-level configuration.
type Config struct {
	// NumThreads is the number of dispatch workers each benchmark's
	// Queue is built with. Mirrors the original CLI's -j/--num-threads.
	NumThreads int            `env:"NUM_THREADS" toml:"num-threads"`
	Benchmarks Benchmarks     `envPrefix:"BENCH_" toml:"benchmarks"`
	Logging    logger.Setting `envPrefix:"LOGGING_" toml:"logging"`
}

// TOML returns Config's full toml config string.
func (c *Config) TOML() string {
	return fmt.Sprintf(`## dispatch benchmark CLI configuration
## Env: DISPATCH_NUM_THREADS
num-threads = %d
%s
%s`,
		c.NumThreads,
		c.Benchmarks.TOML(),
		c.Logging.TOML("DISPATCH"),
	)
}

// defaultNumThreads mirrors the original CLI's -j default.
const defaultNumThreads = 12

// NewDefaultConfig returns the CLI's default configuration: every
// benchmark suite disabled (the caller selects suites with flags) and
// defaultNumThreads workers.
func NewDefaultConfig() *Config {
	return &Config{
		NumThreads: defaultNumThreads,
		Logging:    logger.NewDefaultSetting(),
	}
}

// NewDefaultConfigTOML renders NewDefaultConfig as a toml document,
// suitable for an init-config command to write out.
func NewDefaultConfigTOML() string {
	return NewDefaultConfig().TOML()
}

// Load decodes a toml file into cfg, then applies any DISPATCH_*
// environment variable overrides, then normalizes out-of-range values.
func Load(path string, cfg *Config) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("config: decoding %s: %w", path, err)
	}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "DISPATCH_"}); err != nil {
		return fmt.Errorf("config: applying environment overrides: %w", err)
	}
	return checkConfig(cfg)
}

// checkConfig fills in zero/out-of-range values with their defaults,
// the way the teacher's checkStorageBaseCfg/checkTSDBCfg do per-field.
func checkConfig(cfg *Config) error {
	if cfg.NumThreads <= 0 {
		cfg.NumThreads = defaultNumThreads
	}
	return nil
}
