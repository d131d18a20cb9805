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

package batchflow

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"lostluck.dev/batchflow-go/components"
	"lostluck.dev/batchflow-go/internal/parallel"
	"lostluck.dev/batchflow-go/kernel"
)

// ErrValidation is the error kind for bad action parameters. It is the
// components sentinel, so one errors.Is check covers both layers.
var ErrValidation = components.ErrValidation

// AssemblyError reports that one or more per-record tasks failed during
// a batch action. It carries the first failed task's error with its
// stack; no partial batch is produced.
type AssemblyError struct {
	Action string
	Err    error
}

func (e *AssemblyError) Error() string {
	return fmt.Sprintf("%s: could not assemble the batch: %v", e.Action, e.Err)
}

func (e *AssemblyError) Unwrap() error { return e.Err }

// mapImages runs fn once per record over the action's worker pool,
// reassembles the outputs in record order, and rebinds the component to
// the new storage.
func (b *Batch) mapImages(action string, opts []Options, fn func(im *kernel.Image) (*kernel.Image, error)) (*Batch, error) {
	opt := b.options(opts...)
	keys := b.view.Keys()
	start := time.Now()

	results, err := parallel.Map(keys, opt.Workers, func(_ int, key components.Key) (*kernel.Image, error) {
		raw, err := b.view.Value(opt.Component, key)
		if err != nil {
			return nil, err
		}
		im, ok := raw.(*kernel.Image)
		if !ok {
			return nil, errors.Wrapf(ErrValidation, "component %q record %v is %T, want *kernel.Image", opt.Component, key, raw)
		}
		return fn(im)
	})
	if err != nil {
		return nil, &AssemblyError{Action: action, Err: err}
	}

	if err := b.view.Set(opt.Component, assemble(results)); err != nil {
		return nil, err
	}
	opt.Logger.Debug("applied batch action",
		"batch", b.id.String(),
		"name", b.name,
		"action", action,
		"component", opt.Component,
		"records", len(keys),
		"elapsed", time.Since(start),
	)
	return b, nil
}

// assemble stacks per-record results into a new component value. When
// result shapes disagree, every image is cropped down to the common
// minimum bounding height and width at the top-left before stacking.
// This shape-normalizing fallback is silent and deliberately lenient; a
// stricter policy would be an option here, not a different default.
func assemble(results []*kernel.Image) []any {
	minH, minW := results[0].Height(), results[0].Width()
	ragged := false
	for _, im := range results[1:] {
		if im.Height() != minH || im.Width() != minW {
			ragged = true
		}
		minH = min(minH, im.Height())
		minW = min(minW, im.Width())
	}
	out := make([]any, len(results))
	for i, im := range results {
		if ragged && (im.Height() != minH || im.Width() != minW) {
			im = kernel.Crop(im, 0, 0, minH, minW)
		}
		out[i] = im
	}
	return out
}
