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

// Sentinel errors for the component system. Call sites wrap these with
// context via errors.Wrapf, so both errors.Is checks and readable messages
// work.
var (
	// ErrValidation reports a bad parameter: wrong shape, wrong type,
	// or a whole-component value that doesn't fit the current index.
	ErrValidation = errors.New("invalid value")

	// ErrPresence reports a key that is not part of the current index.
	ErrPresence = errors.New("key not found")

	// ErrTypeMismatch reports a key whose type is incompatible with the
	// index's key space, such as an int key into a string-keyed index.
	ErrTypeMismatch = errors.New("key type mismatch")

	// ErrRange reports a positional slice that exceeds the index bounds.
	ErrRange = errors.New("position out of range")
)
