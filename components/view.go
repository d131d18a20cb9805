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

// Package components lets a batch of indexed records expose named
// array-like components (images, labels, ...) over shared storage.
//
// A View is a (index subset, storage handle, crop flag) triple. Narrowing
// a view without cropping shares the parent's storage, so in place
// mutation stays visible across every non-cropped view of the same data.
// Narrowing with crop copies the selected rows out into independent
// containers with no further visibility either way.
package components

import "github.com/pkg/errors"

// Schema is the fixed component-name to slot mapping for a family of
// views. It is built once and shared by every view derived from a root.
type Schema struct {
	names []string
	slots map[string]int
}

// NewSchema builds a schema from unique, non-empty component names.
func NewSchema(names ...string) (*Schema, error) {
	if len(names) == 0 {
		return nil, errors.Wrap(ErrValidation, "schema needs at least one component")
	}
	s := &Schema{
		names: make([]string, len(names)),
		slots: make(map[string]int, len(names)),
	}
	for i, name := range names {
		if name == "" {
			return nil, errors.Wrap(ErrValidation, "empty component name")
		}
		if _, dup := s.slots[name]; dup {
			return nil, errors.Wrapf(ErrValidation, "duplicate component %q", name)
		}
		s.names[i] = name
		s.slots[name] = i
	}
	return s, nil
}

// Names returns the component names in schema order.
func (s *Schema) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Has reports whether the schema holds the named component.
func (s *Schema) Has(name string) bool {
	_, ok := s.slots[name]
	return ok
}

// Len returns the number of components.
func (s *Schema) Len() int { return len(s.names) }

// View exposes the schema's components for a subset of records.
//
// Views are immutable in structure: the index is fixed at creation. The
// referenced values can still be mutated in place through Set, following
// the aliasing rules described in the package comment.
type View struct {
	schema *Schema
	store  *store
	index  *Index
	scalar bool // created by single-key subscription
}

// FromArrays builds a root view over one flat array per schema component,
// in schema order. Records are keyed positionally: key i is row i.
func FromArrays(schema *Schema, arrays ...[]any) (*View, error) {
	if len(arrays) != schema.Len() {
		return nil, errors.Wrapf(ErrValidation, "%d arrays for %d components", len(arrays), schema.Len())
	}
	cols := make(map[string][]any, schema.Len())
	for i, name := range schema.names {
		cols[name] = arrays[i]
	}
	return FromArrayMap(schema, cols)
}

// FromArrayMap builds a root view over a mapping of component name to
// flat array. Records are keyed positionally.
func FromArrayMap(schema *Schema, cols map[string][]any) (*View, error) {
	n := -1
	for _, name := range schema.names {
		col, ok := cols[name]
		if !ok {
			return nil, errors.Wrapf(ErrValidation, "missing array for component %q", name)
		}
		if n >= 0 && len(col) != n {
			return nil, errors.Wrapf(ErrValidation, "component %q has %d values, want %d", name, len(col), n)
		}
		n = len(col)
	}
	if n == 0 {
		return nil, errors.Wrap(ErrValidation, "empty source arrays")
	}
	index := IntRange(n)
	return &View{
		schema: schema,
		store:  &store{index: index, back: &arrayBacking{cols: cols}},
		index:  index,
	}, nil
}

// FromMaps builds a root view over nested mappings keyed by record key.
// keys fixes the record order; every component map must hold exactly
// those keys.
func FromMaps(schema *Schema, keys []Key, cols map[string]map[Key]any) (*View, error) {
	index, err := NewIndex(keys)
	if err != nil {
		return nil, err
	}
	for _, name := range schema.names {
		col, ok := cols[name]
		if !ok {
			return nil, errors.Wrapf(ErrValidation, "missing mapping for component %q", name)
		}
		if len(col) != index.Len() {
			return nil, errors.Wrapf(ErrValidation, "component %q has %d values for %d keys", name, len(col), index.Len())
		}
		for _, k := range index.keys {
			if _, ok := col[k]; !ok {
				return nil, errors.Wrapf(ErrPresence, "key %v missing from component %q", k, name)
			}
		}
	}
	return &View{
		schema: schema,
		store:  &store{index: index, back: &mapBacking{cols: cols}},
		index:  index,
	}, nil
}

// FromTable builds a root view over the table's rows. Every schema
// component must be a table column.
func FromTable(schema *Schema, tab *Table) (*View, error) {
	for _, name := range schema.names {
		if _, err := tab.Column(name); err != nil {
			return nil, err
		}
	}
	return &View{
		schema: schema,
		store:  &store{index: tab.index, back: &tableBacking{tab: tab}},
		index:  tab.index,
	}, nil
}

// Schema returns the view's schema.
func (v *View) Schema() *Schema { return v.schema }

// Index returns the view's index.
func (v *View) Index() *Index { return v.index }

// Len returns the number of records in the view.
func (v *View) Len() int { return v.index.Len() }

// Keys returns the view's record keys in order.
func (v *View) Keys() []Key { return v.index.Keys() }

// Narrow returns a view restricted to the given keys.
//
// With crop false the child shares this view's storage: reads are
// filtered, but the underlying containers are the same objects, so in
// place mutation is visible across views. With crop true the selected
// rows are copied into independent containers.
func (v *View) Narrow(keys []Key, crop bool) (*View, error) {
	sub, err := v.index.Subset(keys)
	if err != nil {
		return nil, err
	}
	return v.derive(sub, crop)
}

// NarrowRange returns a view restricted to positions [lo, hi) of this
// view's index. Bounds beyond the index length fail with ErrRange.
func (v *View) NarrowRange(lo, hi int, crop bool) (*View, error) {
	sub, err := v.index.Range(lo, hi)
	if err != nil {
		return nil, err
	}
	return v.derive(sub, crop)
}

func (v *View) derive(sub *Index, crop bool) (*View, error) {
	if !crop {
		return &View{schema: v.schema, store: v.store, index: sub}, nil
	}
	back, err := v.store.back.crop(v.schema.names, sub, v.store.index)
	if err != nil {
		return nil, err
	}
	return &View{
		schema: v.schema,
		store:  &store{index: sub, back: back},
		index:  sub,
	}, nil
}

// At returns the single-record view for key. Subscription never copies:
// the child aliases this view's storage.
//
// Subscripting an already single-record view requires string keys; for
// positionally keyed data there is nothing left to subscript, and the
// lookup fails with ErrTypeMismatch.
func (v *View) At(key Key) (*View, error) {
	if v.scalar && !v.index.StringKeys() {
		return nil, errors.Wrapf(ErrTypeMismatch, "subscripting a single record view with key %v", key)
	}
	sub, err := v.index.Subset([]Key{key})
	if err != nil {
		return nil, err
	}
	return &View{schema: v.schema, store: v.store, index: sub, scalar: true}, nil
}

// fullSpan reports whether the view covers its backing store's rows in
// store order, in which case reads return the raw containers.
func (v *View) fullSpan() bool {
	if v.index == v.store.index {
		return true
	}
	if v.index.Len() != v.store.index.Len() {
		return false
	}
	for i, k := range v.index.keys {
		if v.store.index.keys[i] != k {
			return false
		}
	}
	return true
}

// Get returns the named component restricted to the view's index, in
// index order.
//
// Full-span views return the raw backing container (an alias), narrowed
// views return a freshly allocated container, and single-record views
// return the bare element. Array and table backed sources yield []any;
// mapping backed sources yield map[Key]any.
func (v *View) Get(name string) (any, error) {
	if !v.schema.Has(name) {
		return nil, errors.Wrapf(ErrValidation, "unknown component %q", name)
	}
	if v.scalar {
		return v.store.back.value(name, v.index.keys[0], v.store.index)
	}
	if v.fullSpan() {
		return v.store.back.full(name)
	}
	return v.store.back.restricted(name, v.index, v.store.index)
}

// Value returns the element of the named component for key, resolving
// through the view's index.
func (v *View) Value(name string, key Key) (any, error) {
	if !v.schema.Has(name) {
		return nil, errors.Wrapf(ErrValidation, "unknown component %q", name)
	}
	if _, err := v.index.Pos(key); err != nil {
		return nil, err
	}
	return v.store.back.value(name, key, v.store.index)
}

// Set assigns the named component for the view's records.
//
// A full-span view replaces the whole backing column; the value's length
// or key set must match the index, otherwise ErrValidation. A narrowed
// view scatter-assigns into the storage it aliases (or owns, after a
// crop), at exactly its own positions. A non-container value broadcasts
// to every record in the view.
func (v *View) Set(name string, value any) error {
	if !v.schema.Has(name) {
		return errors.Wrapf(ErrValidation, "unknown component %q", name)
	}
	if !v.scalar && v.fullSpan() {
		vals, err := orderedValues(value, v.store.index)
		if err != nil {
			return err
		}
		return v.store.back.replace(name, vals, v.store.index)
	}
	vals, err := orderedValues(value, v.index)
	if err != nil {
		return err
	}
	for i, k := range v.index.keys {
		if err := v.store.back.setValue(name, k, vals[i], v.store.index); err != nil {
			return err
		}
	}
	return nil
}

// orderedValues normalizes a whole-component value into one element per
// index key, in index order. Scalars broadcast.
func orderedValues(value any, index *Index) ([]any, error) {
	switch val := value.(type) {
	case []any:
		if len(val) != index.Len() {
			return nil, errors.Wrapf(ErrValidation, "%d values for %d records", len(val), index.Len())
		}
		return val, nil
	case map[Key]any:
		if len(val) != index.Len() {
			return nil, errors.Wrapf(ErrValidation, "%d values for %d records", len(val), index.Len())
		}
		out := make([]any, index.Len())
		for i, k := range index.keys {
			v, ok := val[k]
			if !ok {
				return nil, errors.Wrapf(ErrValidation, "no value for key %v", k)
			}
			out[i] = v
		}
		return out, nil
	default:
		out := make([]any, index.Len())
		for i := range out {
			out[i] = value
		}
		return out, nil
	}
}
