// Licensed to the Apache Software Foundation (ASF) under one or more
// contributor license agreements.  See the NOTICE file distributed with
// this work for additional information regarding copyright ownership.
// The ASF licenses this file to You under the Apache License, Version 2.0
// (the "License"); you may not use this file except in compliance with
// the License.  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package parallel runs one task per record over a bounded worker pool
// and collects results in input order.
package parallel

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Map applies fn to every item concurrently, with at most workers tasks
// in flight. Results are returned in input order regardless of
// completion order.
//
// Every task runs to completion even after a failure; nothing in flight
// is cancelled. On failure Map returns the first error, stack attached,
// and no results.
func Map[A, R any](items []A, workers int, fn func(i int, item A) (R, error)) ([]R, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	out := make([]R, len(items))
	var g errgroup.Group
	g.SetLimit(workers)
	for i, item := range items {
		g.Go(func() error {
			r, err := fn(i, item)
			if err != nil {
				return errors.WithStack(err)
			}
			out[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
