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
	"testing"

	"github.com/google/go-cmp/cmp"
	"lostluck.dev/batchflow-go/kernel"
)

func TestAnchorCoords(t *testing.T) {
	tests := []struct {
		name                    string
		imageDim, targetDim     int
		anchor                  Anchor
		imageO, targetO, length int
	}{
		{"undersizedCentered", 4, 6, AnchorCenter, 0, 1, 4},
		{"oversizedCentered", 6, 4, AnchorCenter, 1, 0, 4},
		{"undersizedTopLeft", 4, 6, AnchorTopLeft, 0, 0, 4},
		{"oversizedTopLeft", 6, 4, AnchorTopLeft, 0, 0, 4},
		{"exactFit", 4, 4, AnchorCenter, 0, 0, 4},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			io, to, l := anchorCoords(test.imageDim, test.targetDim, test.anchor)
			if io != test.imageO || to != test.targetO || l != test.length {
				t.Errorf("got (%d, %d, %d), want (%d, %d, %d)",
					io, to, l, test.imageO, test.targetO, test.length)
			}
		})
	}
}

func TestPreserveShapeOfPadsUndersized(t *testing.T) {
	im := kernel.New(2, 2, 1)
	im.Fill(5)
	got := preserveShapeOf(im, 4, 4, AnchorCenter)
	want := kernel.FromRows([][]float64{
		{0, 0, 0, 0},
		{0, 5, 5, 0},
		{0, 5, 5, 0},
		{0, 0, 0, 0},
	})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestPreserveShapeOfCropsOversized(t *testing.T) {
	got := preserveShapeOf(gradientImage(4, 4), 2, 2, AnchorCenter)
	want := kernel.FromRows([][]float64{
		{11, 12},
		{21, 22},
	})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
