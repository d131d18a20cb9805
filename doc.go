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

// Package batchflow applies image transforms to a batch of indexed
// records in parallel.
//
// A Batch wraps a root components.View over named record data, typically
// images and labels. Each action (Crop, Resize, Rotate, Flip and their
// randomized variants) validates its parameters up front, dispatches one
// task per record over a bounded worker pool, reassembles the results in
// record order, and rebinds the component to the new storage. Actions
// return the batch for chaining.
//
// Per-record transforms never mutate the shared storage they read from;
// all outputs are new values swapped in at the end of the action.
package batchflow
