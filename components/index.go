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

// Key identifies a single record. Keys are either int or string, and an
// index holds keys of one kind only.
type Key = any

// Index is an ordered set of unique record keys. It resolves keys to
// zero based positions in array backed storage, and defines both record
// order and membership for a view.
//
// An Index is immutable after construction.
type Index struct {
	keys []Key
	pos  map[Key]int
	str  bool // keys are strings rather than ints
}

// NewIndex builds an index from the given keys. Keys must be all int or
// all string, and unique.
func NewIndex(keys []Key) (*Index, error) {
	if len(keys) == 0 {
		return nil, errors.Wrap(ErrValidation, "index must hold at least one key")
	}
	_, str := keys[0].(string)
	ix := &Index{
		keys: make([]Key, len(keys)),
		pos:  make(map[Key]int, len(keys)),
		str:  str,
	}
	for i, k := range keys {
		switch k.(type) {
		case int:
			if str {
				return nil, errors.Wrapf(ErrValidation, "mixed key types: int key %v in a string index", k)
			}
		case string:
			if !str {
				return nil, errors.Wrapf(ErrValidation, "mixed key types: string key %q in an int index", k)
			}
		default:
			return nil, errors.Wrapf(ErrValidation, "unsupported key type %T", k)
		}
		if _, dup := ix.pos[k]; dup {
			return nil, errors.Wrapf(ErrValidation, "duplicate key %v", k)
		}
		ix.keys[i] = k
		ix.pos[k] = i
	}
	return ix, nil
}

// IntRange returns a positional index with keys 0..n-1.
func IntRange(n int) *Index {
	keys := make([]Key, n)
	for i := range keys {
		keys[i] = i
	}
	ix, err := NewIndex(keys)
	if err != nil {
		panic(err) // unreachable: generated keys are valid
	}
	return ix
}

// Len returns the number of keys.
func (ix *Index) Len() int { return len(ix.keys) }

// Keys returns the keys in order. The returned slice is a copy.
func (ix *Index) Keys() []Key {
	out := make([]Key, len(ix.keys))
	copy(out, ix.keys)
	return out
}

// StringKeys reports whether the index is keyed by strings.
func (ix *Index) StringKeys() bool { return ix.str }

// Has reports whether key is a member of the index.
func (ix *Index) Has(key Key) bool {
	_, ok := ix.pos[key]
	return ok
}

// Pos resolves key to its position. The key's type must match the
// index's key kind, and the key must be a member.
func (ix *Index) Pos(key Key) (int, error) {
	switch key.(type) {
	case int:
		if ix.str {
			return 0, errors.Wrapf(ErrTypeMismatch, "int key %v into a string keyed index", key)
		}
	case string:
		if !ix.str {
			return 0, errors.Wrapf(ErrTypeMismatch, "string key %q into an int keyed index", key)
		}
	default:
		return 0, errors.Wrapf(ErrTypeMismatch, "unsupported key type %T", key)
	}
	p, ok := ix.pos[key]
	if !ok {
		return 0, errors.Wrapf(ErrPresence, "key %v not in index of %d records", key, len(ix.keys))
	}
	return p, nil
}

// Range returns the sub index covering positions [lo, hi).
func (ix *Index) Range(lo, hi int) (*Index, error) {
	if lo < 0 || hi > len(ix.keys) || lo >= hi {
		return nil, errors.Wrapf(ErrRange, "range [%d, %d) over %d records", lo, hi, len(ix.keys))
	}
	sub, err := NewIndex(ix.keys[lo:hi])
	if err != nil {
		return nil, err
	}
	return sub, nil
}

// Subset returns the sub index holding exactly the given keys, in the
// given order. Every key must be a member of ix.
func (ix *Index) Subset(keys []Key) (*Index, error) {
	for _, k := range keys {
		if _, err := ix.Pos(k); err != nil {
			return nil, err
		}
	}
	return NewIndex(keys)
}
