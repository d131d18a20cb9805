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
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// typed.go provides the typed accessor layer over the dynamic component
// values: lookup stays by name, conversion is generic.

// Values reads the named component as a []E, in the view's index order.
// Every element must already be an E.
func Values[E any](v *View, name string) ([]E, error) {
	raw, err := v.Get(name)
	if err != nil {
		return nil, err
	}
	switch col := raw.(type) {
	case []any:
		out := make([]E, len(col))
		for i, el := range col {
			ev, ok := el.(E)
			if !ok {
				return nil, errors.Wrapf(ErrValidation, "component %q record %d is %T", name, i, el)
			}
			out[i] = ev
		}
		return out, nil
	case map[Key]any:
		out := make([]E, 0, len(col))
		for _, k := range v.index.keys {
			ev, ok := col[k].(E)
			if !ok {
				return nil, errors.Wrapf(ErrValidation, "component %q key %v is %T", name, k, col[k])
			}
			out = append(out, ev)
		}
		return out, nil
	default: // single-record view
		ev, ok := raw.(E)
		if !ok {
			return nil, errors.Wrapf(ErrValidation, "component %q is %T", name, raw)
		}
		return []E{ev}, nil
	}
}

// Numbers reads the named component as numeric values, converting across
// the common numeric kinds.
func Numbers[E constraints.Integer | constraints.Float](v *View, name string) ([]E, error) {
	vals, err := Values[any](v, name)
	if err != nil {
		return nil, err
	}
	out := make([]E, len(vals))
	for i, el := range vals {
		switch n := el.(type) {
		case int:
			out[i] = E(n)
		case int32:
			out[i] = E(n)
		case int64:
			out[i] = E(n)
		case float32:
			out[i] = E(n)
		case float64:
			out[i] = E(n)
		default:
			return nil, errors.Wrapf(ErrValidation, "component %q record %d is %T, not numeric", name, i, el)
		}
	}
	return out, nil
}
