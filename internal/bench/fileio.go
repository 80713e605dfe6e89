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
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-dispatch/dispatch/internal/concurrent"
)

// copyFile duplicates srcFile's contents to dstFile, the Go equivalent
// of copyFileManually's read-then-write loop.
func copyFile(srcFile, dstFile string) error {
	data, err := os.ReadFile(srcFile)
	if err != nil {
		return err
	}
	return os.WriteFile(dstFile, data, 0o600)
}

func copyFileManuallyN(srcFile, dstDir string, numCopies int) error {
	for i := 0; i < numCopies; i++ {
		dst := filepath.Join(dstDir, fmt.Sprintf("manual-copy-%d", i))
		if err := copyFile(srcFile, dst); err != nil {
			return err
		}
	}
	return nil
}

// copyJob is one dispatched copy: srcFile duplicated to dstFile.
type copyJob struct {
	srcFile, dstFile string
}

// FileIO copies srcFile numCopies times, both manually and via a
// dispatch Queue with numWorkers, matching testQueueFileIO's
// manual-vs-dispatched file-copy comparison. dstDir must already exist.
func FileIO(numWorkers int, srcFile, dstDir string, numCopies int) (Result, error) {
	manualElapsed := timeIt(func() {
		_ = copyFileManuallyN(srcFile, dstDir, numCopies)
	})

	qf := concurrent.NewVoid(func(job copyJob) {
		_ = copyFile(job.srcFile, job.dstFile)
	})
	var dispatchErr error
	queueElapsed := timeIt(func() {
		q, err := concurrent.NewQueue[copyJob](qf, numWorkers, concurrent.Owned)
		if err != nil {
			dispatchErr = err
			return
		}
		defer q.Close()
		jobs := make([]copyJob, numCopies)
		for i := range jobs {
			jobs[i] = copyJob{
				srcFile: srcFile,
				dstFile: filepath.Join(dstDir, fmt.Sprintf("queue-copy-%d", i)),
			}
		}
		dispatchAll[copyJob](q, jobs)
	})
	if dispatchErr != nil {
		return Result{}, dispatchErr
	}

	return Result{
		Name:          "file-io",
		NumWorkers:    numWorkers,
		ManualElapsed: manualElapsed,
		QueueElapsed:  queueElapsed,
	}, nil
}
