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
	"fmt"
	"os"

	"github.com/spf13/cobra"

	bconfig "github.com/go-dispatch/dispatch/config"
)

// newInitConfigCmd mirrors initializeStorageConfigCmd/
// initializeStandaloneConfigCmd: write a fresh default TOML config,
// refusing to clobber an existing file.
func newInitConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init-config",
		Short: "create a new default dispatch-bench config",
		RunE: func(_ *cobra.Command, _ []string) error {
			path := cfgFile
			if path == "" {
				path = defaultCfgFile
			}
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("config file %s already exists", path)
			}
			return os.WriteFile(path, []byte(bconfig.NewDefaultConfigTOML()), 0o600)
		},
	}
}
