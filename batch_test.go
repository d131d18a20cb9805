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
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"lostluck.dev/batchflow-go/components"
	"lostluck.dev/batchflow-go/internal/logging"
	"lostluck.dev/batchflow-go/kernel"
)

func TestNewBatchIDs(t *testing.T) {
	a := newTestBatch(t, 2, 4, 4)
	b := newTestBatch(t, 2, 4, 4)
	if a.ID() == b.ID() {
		t.Errorf("two batches share id %v", a.ID())
	}
}

func TestBatchAccessors(t *testing.T) {
	b := newTestBatch(t, 5, 4, 4)
	if got := b.Len(); got != 5 {
		t.Errorf("Len: got %d, want 5", got)
	}
	if diff := cmp.Diff([]components.Key{0, 1, 2, 3, 4}, b.Keys()); diff != "" {
		t.Errorf("Keys mismatch (-want +got):\n%s", diff)
	}
	if got := len(batchImages(t, b)); got != 5 {
		t.Errorf("Images: got %d records, want 5", got)
	}
	labels, err := b.Component("labels")
	if err != nil {
		t.Fatalf("Component: %v", err)
	}
	if diff := cmp.Diff([]any{100, 101, 102, 103, 104}, labels); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
	typed, err := b.Labels()
	if err != nil {
		t.Fatalf("Labels: %v", err)
	}
	if diff := cmp.Diff([]int{100, 101, 102, 103, 104}, typed); diff != "" {
		t.Errorf("typed labels mismatch (-want +got):\n%s", diff)
	}
}

func TestOnComponent(t *testing.T) {
	schema, err := components.NewSchema("images", "masks")
	if err != nil {
		t.Fatal(err)
	}
	view, err := components.FromArrays(schema,
		[]any{gradientImage(4, 6)},
		[]any{gradientImage(4, 6)},
	)
	if err != nil {
		t.Fatal(err)
	}
	b := New(view)

	if _, err := b.Flip(FlipLR, OnComponent("masks")); err != nil {
		t.Fatalf("Flip: %v", err)
	}

	if got := batchImages(t, b); !got[0].Equal(gradientImage(4, 6)) {
		t.Error("images changed; the action was directed at masks")
	}
	masks, err := components.Values[*kernel.Image](b.View(), "masks")
	if err != nil {
		t.Fatal(err)
	}
	want := kernel.FlipLR(gradientImage(4, 6))
	if diff := cmp.Diff(want, masks[0]); diff != "" {
		t.Errorf("mask mismatch (-want +got):\n%s", diff)
	}
}

func TestActionLogging(t *testing.T) {
	h := logging.NewCapture()
	b := newTestBatch(t, 6, 4, 6,
		Name("train"),
		Workers(2),
		Logger(slog.New(h)),
	)
	if _, err := b.Resize([]int{2, 3}); err != nil {
		t.Fatalf("Resize: %v", err)
	}

	entries := h.Entries()
	if len(entries) != 1 {
		t.Fatalf("captured %d entries, want 1", len(entries))
	}
	e := entries[0]
	if got := e[slog.MessageKey]; got != "applied batch action" {
		t.Errorf("msg: got %v", got)
	}
	if got := e["action"]; got != "resize" {
		t.Errorf("action: got %v, want resize", got)
	}
	if got := e["name"]; got != "train" {
		t.Errorf("name: got %v, want train", got)
	}
	if got := e["component"]; got != "images" {
		t.Errorf("component: got %v, want images", got)
	}
	if got := e["records"]; got != int64(6) {
		t.Errorf("records: got %v (%T), want 6", got, got)
	}
	if got := e["batch"]; got != b.ID().String() {
		t.Errorf("batch: got %v, want %v", got, b.ID())
	}
	if _, ok := e["elapsed"].(time.Duration); !ok {
		t.Errorf("elapsed: got %T, want a duration", e["elapsed"])
	}
}

func TestPerActionLoggerOverride(t *testing.T) {
	base := logging.NewCapture()
	override := logging.NewCapture()
	b := newTestBatch(t, 2, 4, 4, Logger(slog.New(base)))

	if _, err := b.Flip(FlipLR, Logger(slog.New(override))); err != nil {
		t.Fatalf("Flip: %v", err)
	}
	if got := len(base.Entries()); got != 0 {
		t.Errorf("base logger captured %d entries, want 0", got)
	}
	if got := len(override.Entries()); got != 1 {
		t.Errorf("override logger captured %d entries, want 1", got)
	}
}
