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
	"log/slog"

	"github.com/google/uuid"
	"lostluck.dev/batchflow-go/components"
	"lostluck.dev/batchflow-go/internal/batchopts"
	"lostluck.dev/batchflow-go/kernel"
)

// DefaultComponent is the component actions operate on when no
// OnComponent option is given.
const DefaultComponent = "images"

// Batch is a root-level view over record data plus the execution
// settings for parallel actions.
type Batch struct {
	id   uuid.UUID
	name string
	view *components.View

	workers int
	logger  *slog.Logger
}

// New wraps view in a batch. The view should be root-level: actions
// replace whole components, which requires a full-span view.
func New(view *components.View, opts ...Options) *Batch {
	var opt batchopts.Struct
	opt.Join(opts...)
	logger := opt.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Batch{
		id:      uuid.New(),
		name:    opt.Name,
		view:    view,
		workers: opt.Workers,
		logger:  logger,
	}
}

// ID returns the batch's unique id.
func (b *Batch) ID() uuid.UUID { return b.id }

// View returns the underlying component view.
func (b *Batch) View() *components.View { return b.view }

// Len returns the number of records.
func (b *Batch) Len() int { return b.view.Len() }

// Keys returns the record keys in batch order.
func (b *Batch) Keys() []components.Key { return b.view.Keys() }

// Images reads the default image component as typed images.
func (b *Batch) Images() ([]*kernel.Image, error) {
	return components.Values[*kernel.Image](b.view, DefaultComponent)
}

// Labels reads the "labels" component as integers.
func (b *Batch) Labels() ([]int, error) {
	return components.Numbers[int](b.view, "labels")
}

// Component reads a named component's value restricted to the batch.
func (b *Batch) Component(name string) (any, error) {
	return b.view.Get(name)
}

// options joins per-action options over the batch defaults.
func (b *Batch) options(opts ...Options) batchopts.Struct {
	opt := batchopts.Struct{
		Component: DefaultComponent,
		Workers:   b.workers,
		Logger:    b.logger,
	}
	opt.Join(opts...)
	return opt
}
