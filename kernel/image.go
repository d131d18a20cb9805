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

// Package kernel holds the per-record image primitives consumed by batch
// transforms: crop, resize, rotate and flip over a small dense raster.
// The batch engine treats these as opaque; each primitive takes an image
// plus parameters and returns a new image, never mutating its input.
package kernel

import "fmt"

// Image is an H x W x C raster of float64 samples in row-major order.
type Image struct {
	h, w, c int
	pix     []float64
}

// New returns a zero-filled image. Dimensions must be positive.
func New(h, w, c int) *Image {
	if h <= 0 || w <= 0 || c <= 0 {
		panic(fmt.Sprintf("kernel: invalid image dims %dx%dx%d", h, w, c))
	}
	return &Image{h: h, w: w, c: c, pix: make([]float64, h*w*c)}
}

// FromRows builds a single-channel image from rows of equal length.
func FromRows(rows [][]float64) *Image {
	im := New(len(rows), len(rows[0]), 1)
	for y, row := range rows {
		if len(row) != im.w {
			panic(fmt.Sprintf("kernel: ragged row %d: %d values, want %d", y, len(row), im.w))
		}
		copy(im.pix[y*im.w:(y+1)*im.w], row)
	}
	return im
}

// Height returns the number of rows.
func (im *Image) Height() int { return im.h }

// Width returns the number of columns.
func (im *Image) Width() int { return im.w }

// Channels returns the number of channels.
func (im *Image) Channels() int { return im.c }

// Shape returns (height, width, channels).
func (im *Image) Shape() (h, w, c int) { return im.h, im.w, im.c }

// At returns the sample at row y, column x, channel ch.
func (im *Image) At(y, x, ch int) float64 {
	return im.pix[(y*im.w+x)*im.c+ch]
}

// Set assigns the sample at row y, column x, channel ch.
func (im *Image) Set(y, x, ch int, v float64) {
	im.pix[(y*im.w+x)*im.c+ch] = v
}

// Fill assigns v to every sample.
func (im *Image) Fill(v float64) {
	for i := range im.pix {
		im.pix[i] = v
	}
}

// Clone returns an independent copy.
func (im *Image) Clone() *Image {
	out := &Image{h: im.h, w: im.w, c: im.c, pix: make([]float64, len(im.pix))}
	copy(out.pix, im.pix)
	return out
}

// CloneValue lets cropped component views deep-copy image elements.
func (im *Image) CloneValue() any { return im.Clone() }

// Equal reports whether both images have the same shape and samples.
// It makes Image comparable with go-cmp.
func (im *Image) Equal(o *Image) bool {
	if im == nil || o == nil {
		return im == o
	}
	if im.h != o.h || im.w != o.w || im.c != o.c {
		return false
	}
	for i, p := range im.pix {
		if p != o.pix[i] {
			return false
		}
	}
	return true
}

func (im *Image) String() string {
	return fmt.Sprintf("Image(%dx%dx%d)", im.h, im.w, im.c)
}
