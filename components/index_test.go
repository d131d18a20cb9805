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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIntRange(t *testing.T) {
	idx := IntRange(5)
	if got := idx.Len(); got != 5 {
		t.Errorf("Len: got %d, want 5", got)
	}
	if idx.StringKeys() {
		t.Error("StringKeys: got true, want false")
	}
	if diff := cmp.Diff([]Key{0, 1, 2, 3, 4}, idx.Keys()); diff != "" {
		t.Errorf("Keys mismatch (-want +got):\n%s", diff)
	}
}

func TestNewIndexValidation(t *testing.T) {
	tests := []struct {
		name string
		keys []Key
	}{
		{"empty", nil},
		{"duplicate", []Key{1, 2, 1}},
		{"mixedKinds", []Key{1, "2"}},
		{"unsupportedKind", []Key{1.5, 2.5}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := NewIndex(test.keys); !errors.Is(err, ErrValidation) {
				t.Errorf("NewIndex(%v): got %v, want ErrValidation", test.keys, err)
			}
		})
	}
}

func TestIndexPos(t *testing.T) {
	idx, err := NewIndex([]Key{"a", "b", "c"})
	if err != nil {
		t.Fatal(err)
	}
	pos, err := idx.Pos("b")
	if err != nil || pos != 1 {
		t.Errorf(`Pos("b"): got %d, %v, want 1, nil`, pos, err)
	}
	if _, err := idx.Pos("z"); !errors.Is(err, ErrPresence) {
		t.Errorf(`Pos("z"): got %v, want ErrPresence`, err)
	}
	if _, err := idx.Pos(1); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("Pos(1): got %v, want ErrTypeMismatch", err)
	}
}

func TestIndexRange(t *testing.T) {
	idx := IntRange(10)
	sub, err := idx.Range(2, 5)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]Key{2, 3, 4}, sub.Keys()); diff != "" {
		t.Errorf("Range keys mismatch (-want +got):\n%s", diff)
	}
	for _, bounds := range [][2]int{{-1, 5}, {2, 11}, {5, 2}} {
		if _, err := idx.Range(bounds[0], bounds[1]); !errors.Is(err, ErrRange) {
			t.Errorf("Range(%d, %d): got %v, want ErrRange", bounds[0], bounds[1], err)
		}
	}
}

func TestIndexSubset(t *testing.T) {
	idx := IntRange(10)
	sub, err := idx.Subset([]Key{7, 3, 5})
	if err != nil {
		t.Fatal(err)
	}
	// Subsets keep the caller's ordering.
	if diff := cmp.Diff([]Key{7, 3, 5}, sub.Keys()); diff != "" {
		t.Errorf("Subset keys mismatch (-want +got):\n%s", diff)
	}
	if _, err := idx.Subset([]Key{3, 42}); !errors.Is(err, ErrPresence) {
		t.Errorf("Subset(absent): got %v, want ErrPresence", err)
	}
}
