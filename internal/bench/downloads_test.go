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
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/atomic"

	"github.com/stretchr/testify/assert"
)

func TestFetchOne_SucceedsAgainstTestServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	assert.NoError(t, fetchOne(srv.URL))
}

func TestDownloads_HitsEveryURL(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Inc()
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	urls := []string{srv.URL, srv.URL, srv.URL, srv.URL}
	r := Downloads(2, urls)

	assert.Equal(t, "downloads", r.Name)
	assert.Equal(t, int64(len(urls)*2), hits.Load())
}
