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

package components

import "github.com/pkg/errors"

// storage.go holds the backing variants behind a view. All three variants
// implement the same get/set contract; views never branch on the variant.

// ValueCloner lets element values opt in to deep copies when a view is
// cropped. Values that don't implement it are copied by assignment.
type ValueCloner interface {
	CloneValue() any
}

func cloneValue(v any) any {
	if c, ok := v.(ValueCloner); ok {
		return c.CloneValue()
	}
	return v
}

// store is the shared ownership handle for component data. Non-cropped
// views of the same data share one *store; a crop allocates a new one.
// index positions the backing's rows; it is not the view's index.
type store struct {
	index *Index
	back  backing
}

// backing is the uniform contract over the storage variants.
type backing interface {
	// full returns the whole raw container for the named component.
	// The container aliases the backing; in place mutation is shared.
	full(name string) (any, error)
	// restricted returns a fresh container holding the rows of sub,
	// in sub order. store is the backing's own index.
	restricted(name string, sub, store *Index) (any, error)
	// value returns the element for key.
	value(name string, key Key, store *Index) (any, error)
	// setValue assigns the element for key in place.
	setValue(name string, key Key, v any, store *Index) error
	// replace swaps the whole column. vals is already validated and
	// ordered against the store index.
	replace(name string, vals []any, store *Index) error
	// crop copies the rows of sub into an independent backing.
	crop(names []string, sub, store *Index) (backing, error)
}

// arrayBacking positions flat columns against the store index.
type arrayBacking struct {
	cols map[string][]any
}

func (b *arrayBacking) column(name string) ([]any, error) {
	col, ok := b.cols[name]
	if !ok {
		return nil, errors.Wrapf(ErrValidation, "no data for component %q", name)
	}
	return col, nil
}

func (b *arrayBacking) full(name string) (any, error) {
	return b.column(name)
}

func (b *arrayBacking) restricted(name string, sub, store *Index) (any, error) {
	col, err := b.column(name)
	if err != nil {
		return nil, err
	}
	out := make([]any, sub.Len())
	for i, k := range sub.keys {
		p, err := store.Pos(k)
		if err != nil {
			return nil, err
		}
		out[i] = col[p]
	}
	return out, nil
}

func (b *arrayBacking) value(name string, key Key, store *Index) (any, error) {
	col, err := b.column(name)
	if err != nil {
		return nil, err
	}
	p, err := store.Pos(key)
	if err != nil {
		return nil, err
	}
	return col[p], nil
}

func (b *arrayBacking) setValue(name string, key Key, v any, store *Index) error {
	col, err := b.column(name)
	if err != nil {
		return err
	}
	p, err := store.Pos(key)
	if err != nil {
		return err
	}
	col[p] = v
	return nil
}

func (b *arrayBacking) replace(name string, vals []any, store *Index) error {
	if _, err := b.column(name); err != nil {
		return err
	}
	b.cols[name] = vals
	return nil
}

func (b *arrayBacking) crop(names []string, sub, store *Index) (backing, error) {
	cols := make(map[string][]any, len(names))
	for _, name := range names {
		col, err := b.restricted(name, sub, store)
		if err != nil {
			return nil, err
		}
		vals := col.([]any)
		for i, v := range vals {
			vals[i] = cloneValue(v)
		}
		cols[name] = vals
	}
	return &arrayBacking{cols: cols}, nil
}

// mapBacking looks values up by key directly, with no positional
// dependency.
type mapBacking struct {
	cols map[string]map[Key]any
}

func (b *mapBacking) column(name string) (map[Key]any, error) {
	col, ok := b.cols[name]
	if !ok {
		return nil, errors.Wrapf(ErrValidation, "no data for component %q", name)
	}
	return col, nil
}

func (b *mapBacking) full(name string) (any, error) {
	return b.column(name)
}

func (b *mapBacking) restricted(name string, sub, store *Index) (any, error) {
	col, err := b.column(name)
	if err != nil {
		return nil, err
	}
	out := make(map[Key]any, sub.Len())
	for _, k := range sub.keys {
		v, ok := col[k]
		if !ok {
			return nil, errors.Wrapf(ErrPresence, "key %v missing from component %q", k, name)
		}
		out[k] = v
	}
	return out, nil
}

func (b *mapBacking) value(name string, key Key, store *Index) (any, error) {
	col, err := b.column(name)
	if err != nil {
		return nil, err
	}
	v, ok := col[key]
	if !ok {
		return nil, errors.Wrapf(ErrPresence, "key %v missing from component %q", key, name)
	}
	return v, nil
}

func (b *mapBacking) setValue(name string, key Key, v any, store *Index) error {
	col, err := b.column(name)
	if err != nil {
		return err
	}
	if _, ok := col[key]; !ok {
		return errors.Wrapf(ErrPresence, "key %v missing from component %q", key, name)
	}
	col[key] = v
	return nil
}

func (b *mapBacking) replace(name string, vals []any, store *Index) error {
	if _, err := b.column(name); err != nil {
		return err
	}
	col := make(map[Key]any, store.Len())
	for i, k := range store.keys {
		col[k] = vals[i]
	}
	b.cols[name] = col
	return nil
}

func (b *mapBacking) crop(names []string, sub, store *Index) (backing, error) {
	cols := make(map[string]map[Key]any, len(names))
	for _, name := range names {
		col, err := b.restricted(name, sub, store)
		if err != nil {
			return nil, err
		}
		vals := col.(map[Key]any)
		for k, v := range vals {
			vals[k] = cloneValue(v)
		}
		cols[name] = vals
	}
	return &mapBacking{cols: cols}, nil
}

// tableBacking serves component values out of a row indexed table. Key
// lookups go through the table's own typed index, so an int key into a
// string indexed table fails with ErrTypeMismatch rather than returning
// a wrong row.
type tableBacking struct {
	tab *Table
}

func (b *tableBacking) full(name string) (any, error) {
	return b.tab.Column(name)
}

func (b *tableBacking) restricted(name string, sub, store *Index) (any, error) {
	col, err := b.tab.Column(name)
	if err != nil {
		return nil, err
	}
	out := make([]any, sub.Len())
	for i, k := range sub.keys {
		p, err := b.tab.index.Pos(k)
		if err != nil {
			return nil, err
		}
		out[i] = col[p]
	}
	return out, nil
}

func (b *tableBacking) value(name string, key Key, store *Index) (any, error) {
	col, err := b.tab.Column(name)
	if err != nil {
		return nil, err
	}
	p, err := b.tab.index.Pos(key)
	if err != nil {
		return nil, err
	}
	return col[p], nil
}

func (b *tableBacking) setValue(name string, key Key, v any, store *Index) error {
	col, err := b.tab.Column(name)
	if err != nil {
		return err
	}
	p, err := b.tab.index.Pos(key)
	if err != nil {
		return err
	}
	col[p] = v
	return nil
}

func (b *tableBacking) replace(name string, vals []any, store *Index) error {
	if _, err := b.tab.Column(name); err != nil {
		return err
	}
	b.tab.cols[name] = vals
	return nil
}

// crop copies the selected rows into a fresh table so keyed lookups keep
// working below the crop.
func (b *tableBacking) crop(names []string, sub, store *Index) (backing, error) {
	cols := make(map[string][]any, len(names))
	for _, name := range names {
		col, err := b.restricted(name, sub, store)
		if err != nil {
			return nil, err
		}
		vals := col.([]any)
		for i, v := range vals {
			vals[i] = cloneValue(v)
		}
		cols[name] = vals
	}
	tab, err := NewTable(sub, cols)
	if err != nil {
		return nil, err
	}
	return &tableBacking{tab: tab}, nil
}
