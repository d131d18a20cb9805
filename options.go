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

	"lostluck.dev/batchflow-go/internal/batchopts"
)

// Options configure New and the batch actions. Each function takes a
// variadic list of options, where properties set in later options
// override the value of previously set properties.
type Options = batchopts.Options

// Name sets the name of the batch in question, typically to make it
// easier to refer to in logs.
func Name(name string) Options {
	return &batchopts.Struct{
		Name: name,
	}
}

// OnComponent directs an action at the named component instead of the
// default "images".
func OnComponent(name string) Options {
	return &batchopts.Struct{
		Component: name,
	}
}

// Workers bounds the worker pool used by parallel actions. Zero or
// unset means one worker per CPU.
func Workers(n int) Options {
	return &batchopts.Struct{
		Workers: n,
	}
}

// Logger routes action logging to the given logger.
func Logger(l *slog.Logger) Options {
	return &batchopts.Struct{
		Logger: l,
	}
}
