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

import (
	"sort"

	"github.com/go-json-experiment/json"
	"github.com/pkg/errors"
)

// Table is a row indexed collection of named columns. Rows are addressed
// by the keys of a typed index, so lookups with the wrong key kind fail
// instead of silently resolving to a wrong row.
type Table struct {
	index *Index
	names []string
	cols  map[string][]any
}

// NewTable builds a table over the given index. Every column must have
// exactly one value per index key.
func NewTable(index *Index, cols map[string][]any) (*Table, error) {
	if index == nil || len(cols) == 0 {
		return nil, errors.Wrap(ErrValidation, "table needs an index and at least one column")
	}
	names := make([]string, 0, len(cols))
	for name, col := range cols {
		if len(col) != index.Len() {
			return nil, errors.Wrapf(ErrValidation, "column %q has %d values for %d rows", name, len(col), index.Len())
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return &Table{index: index, names: names, cols: cols}, nil
}

// Index returns the table's row index.
func (t *Table) Index() *Index { return t.index }

// Columns returns the column names in sorted order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Column returns the named column. The slice aliases the table.
func (t *Table) Column(name string) ([]any, error) {
	col, ok := t.cols[name]
	if !ok {
		return nil, errors.Wrapf(ErrValidation, "table has no column %q", name)
	}
	return col, nil
}

// Len returns the number of rows.
func (t *Table) Len() int { return t.index.Len() }

// tableJSON is the in-memory wire form accepted by TableFromJSON.
type tableJSON struct {
	Index   []any            `json:"index"`
	Columns map[string][]any `json:"columns"`
}

// TableFromJSON decodes a table from its JSON form:
//
//	{"index": [0, 1, ...], "columns": {"labels": [100, 101, ...]}}
//
// Integral index keys are normalized to int so they resolve against int
// keyed views. Column values keep their decoded types.
func TableFromJSON(data []byte) (*Table, error) {
	var raw tableJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrapf(ErrValidation, "decoding table: %v", err)
	}
	keys := make([]Key, len(raw.Index))
	for i, k := range raw.Index {
		switch kv := k.(type) {
		case float64:
			keys[i] = int(kv)
		case string:
			keys[i] = kv
		default:
			return nil, errors.Wrapf(ErrValidation, "unsupported index key type %T", k)
		}
	}
	index, err := NewIndex(keys)
	if err != nil {
		return nil, err
	}
	return NewTable(index, raw.Columns)
}
