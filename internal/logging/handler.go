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

// Package logging holds the slog handler used to observe batch action
// logs in tests and tools.
package logging

import (
	"context"
	"log/slog"
	"sync"

	"github.com/jba/slog/withsupport"
)

// Entry is one captured log record, flattened into message, level, time
// and attribute keys, with groups as nested maps.
type Entry = map[string]any

// CaptureHandler is a slog.Handler that records every log entry in
// memory. Handlers derived via WithAttrs and WithGroup append to the
// same capture buffer.
type CaptureHandler struct {
	mu      *sync.Mutex
	entries *[]Entry
	goa     *withsupport.GroupOrAttrs
}

var _ slog.Handler = (*CaptureHandler)(nil)

// NewCapture returns an empty capture handler.
func NewCapture() *CaptureHandler {
	return &CaptureHandler{
		mu:      &sync.Mutex{},
		entries: &[]Entry{},
	}
}

// Enabled reports true for every level; filtering is the caller's job.
func (h *CaptureHandler) Enabled(context.Context, slog.Level) bool { return true }

// Handle records r as an Entry.
func (h *CaptureHandler) Handle(_ context.Context, r slog.Record) error {
	m := Entry{
		slog.LevelKey:   r.Level,
		slog.MessageKey: r.Message,
	}
	if !r.Time.IsZero() {
		m[slog.TimeKey] = r.Time
	}
	groups := h.goa.Apply(func(gs []string, a slog.Attr) {
		putAttr(m, gs, a)
	})
	r.Attrs(func(a slog.Attr) bool {
		putAttr(m, groups, a)
		return true
	})
	h.mu.Lock()
	defer h.mu.Unlock()
	*h.entries = append(*h.entries, m)
	return nil
}

// WithAttrs implements slog.Handler.
func (h *CaptureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h2 := *h
	h2.goa = h.goa.WithAttrs(attrs)
	return &h2
}

// WithGroup implements slog.Handler.
func (h *CaptureHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.goa = h.goa.WithGroup(name)
	return &h2
}

// Entries returns a snapshot of everything captured so far.
func (h *CaptureHandler) Entries() []Entry {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Entry, len(*h.entries))
	copy(out, *h.entries)
	return out
}

// putAttr resolves a and stores it in m under the given group path.
// Groups become nested maps; a group attr with an empty key is inlined.
func putAttr(m Entry, groups []string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		members := a.Value.Group()
		if len(members) == 0 {
			return
		}
		path := groups
		if a.Key != "" {
			path = make([]string, len(groups), len(groups)+1)
			copy(path, groups)
			path = append(path, a.Key)
		}
		for _, member := range members {
			putAttr(m, path, member)
		}
		return
	}
	cur := m
	for _, g := range groups {
		nested, ok := cur[g].(Entry)
		if !ok {
			nested = Entry{}
			cur[g] = nested
		}
		cur = nested
	}
	cur[a.Key] = a.Value.Any()
}
