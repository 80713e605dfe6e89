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
	"io"
	"net/http"
	"time"

	"github.com/go-dispatch/dispatch/internal/concurrent"
)

// httpClient is shared across both arms of Downloads so neither one's
// timing includes a fresh TCP/TLS handshake per request.
var httpClient = &http.Client{Timeout: 30 * time.Second}

func fetchOne(url string) error {
	resp, err := httpClient.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, err = io.Copy(io.Discard, resp.Body)
	return err
}

func downloadManually(urls []string) {
	for _, u := range urls {
		_ = fetchOne(u)
	}
}

// Downloads fetches each of urls and discards the body, both
// sequentially and via a dispatch Queue with numWorkers. This is the
// one benchmark suite with no original_source/ body to ground against
// -- TestQueueDownloads.h/.cpp is referenced from Main.cpp but wasn't
// part of the retrieved sources -- so the workload itself (concurrent
// HTTP GETs through net/http) is reconstructed from the function's
// name and call site, reusing the same manual-vs-Queue shape as the
// other suites.
func Downloads(numWorkers int, urls []string) Result {
	manualElapsed := timeIt(func() { downloadManually(urls) })

	qf := concurrent.NewVoid(func(url string) { _ = fetchOne(url) })
	queueElapsed := timeIt(func() {
		q, err := concurrent.NewQueue[string](qf, numWorkers, concurrent.Owned)
		if err != nil {
			return
		}
		defer q.Close()
		dispatchAll[string](q, urls)
	})

	return Result{
		Name:          "downloads",
		NumWorkers:    numWorkers,
		ManualElapsed: manualElapsed,
		QueueElapsed:  queueElapsed,
	}
}
