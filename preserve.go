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
	"github.com/pkg/errors"
	"lostluck.dev/batchflow-go/kernel"
)

// Anchor picks the corner math used when an image is cropped or padded
// back to a target shape. The zero value is AnchorCenter.
type Anchor int

const (
	// AnchorCenter centers the content, per axis.
	AnchorCenter Anchor = iota
	// AnchorTopLeft pins the content at the top-left corner.
	AnchorTopLeft
)

func (a Anchor) valid() error {
	if a != AnchorCenter && a != AnchorTopLeft {
		return errors.Wrapf(ErrValidation, "anchor must be AnchorCenter or AnchorTopLeft, got %d", a)
	}
	return nil
}

// anchorOrigin returns the offset of the content along one axis.
func anchorOrigin(imageDim, targetDim int, a Anchor) int {
	if a == AnchorTopLeft {
		return 0
	}
	d := targetDim - imageDim
	if d < 0 {
		d = -d
	}
	return d / 2
}

// anchorCoords computes, per axis, where to read from the image, where
// to write on the target canvas, and how much to copy. An undersized
// image is pasted whole; an oversized one is cropped to the target.
func anchorCoords(imageDim, targetDim int, a Anchor) (imageOrigin, targetOrigin, length int) {
	if imageDim < targetDim {
		return 0, anchorOrigin(imageDim, targetDim, a), imageDim
	}
	return anchorOrigin(imageDim, targetDim, a), 0, targetDim
}

// preserveShapeOf fits im onto a zero-filled h x w canvas: oversized
// results are cropped to the target shape at the anchor, undersized
// results are pasted into the canvas at the anchor.
func preserveShapeOf(im *kernel.Image, h, w int, a Anchor) *kernel.Image {
	y, ty, lh := anchorCoords(im.Height(), h, a)
	x, tx, lw := anchorCoords(im.Width(), w, a)
	out := kernel.New(h, w, im.Channels())
	kernel.Paste(out, kernel.Crop(im, y, x, lh, lw), ty, tx)
	return out
}
