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

// Package batchopts holds the option plumbing shared by the batchflow
// packages.
package batchopts

import (
	"log/slog"

	"lostluck.dev/batchflow-go/internal"
)

// Options is the common options type shared across batchflow packages.
type Options interface {
	// BatchOptions is exported so related batchflow packages can implement Options.
	BatchOptions(internal.NotForPublicUse)
}

// Struct is the combination of all options in struct form.
// This is efficient to pass down the call stack and to query.
type Struct struct {
	Name      string       // The configured name of the options target.
	Component string       // The component a batch action operates on.
	Workers   int          // Bounded worker pool size for parallel actions.
	Logger    *slog.Logger // Destination for action logging.
}

func (dst *Struct) BatchOptions(internal.NotForPublicUse) {}

func (dst *Struct) Join(srcs ...Options) {
	for _, src := range srcs {
		switch src := src.(type) {
		case *Struct:
			if src.Name != "" {
				dst.Name = src.Name
			}
			if src.Component != "" {
				dst.Component = src.Component
			}
			if src.Workers != 0 {
				dst.Workers = src.Workers
			}
			if src.Logger != nil {
				dst.Logger = src.Logger
			}
		}
	}
}
