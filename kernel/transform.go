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

package kernel

import (
	"math"

	"golang.org/x/exp/constraints"
)

func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Crop returns a copy of the window starting at row y0, column x0 with
// the given target size. The window is clipped to the image bounds, so
// the result may be smaller than requested.
func Crop(im *Image, y0, x0, h, w int) *Image {
	y0 = clamp(y0, 0, im.h-1)
	x0 = clamp(x0, 0, im.w-1)
	h = clamp(h, 1, im.h-y0)
	w = clamp(w, 1, im.w-x0)
	out := New(h, w, im.c)
	for y := 0; y < h; y++ {
		src := ((y0+y)*im.w + x0) * im.c
		dst := y * w * out.c
		copy(out.pix[dst:dst+w*out.c], im.pix[src:src+w*im.c])
	}
	return out
}

// Resize resamples the image to exactly h x w using bilinear
// interpolation.
func Resize(im *Image, h, w int) *Image {
	out := New(h, w, im.c)
	sy := float64(im.h) / float64(h)
	sx := float64(im.w) / float64(w)
	for y := 0; y < h; y++ {
		fy := clamp((float64(y)+0.5)*sy-0.5, 0, float64(im.h-1))
		y0 := int(fy)
		y1 := min(y0+1, im.h-1)
		wy := fy - float64(y0)
		for x := 0; x < w; x++ {
			fx := clamp((float64(x)+0.5)*sx-0.5, 0, float64(im.w-1))
			x0 := int(fx)
			x1 := min(x0+1, im.w-1)
			wx := fx - float64(x0)
			for ch := 0; ch < im.c; ch++ {
				top := im.At(y0, x0, ch)*(1-wx) + im.At(y0, x1, ch)*wx
				bot := im.At(y1, x0, ch)*(1-wx) + im.At(y1, x1, ch)*wx
				out.Set(y, x, ch, top*(1-wy)+bot*wy)
			}
		}
	}
	return out
}

// Rotate rotates the image counter-clockwise by the given angle in
// degrees, sampling nearest neighbors around the center. With expand the
// output grows to the rotated bounding box; otherwise it keeps the input
// shape and corners fall off the canvas. Uncovered pixels are zero.
func Rotate(im *Image, degrees float64, expand bool) *Image {
	rad := degrees * math.Pi / 180
	sin, cos := math.Sincos(rad)

	h, w := im.h, im.w
	if expand {
		fh, fw := float64(im.h), float64(im.w)
		w = int(math.Ceil(math.Abs(fw*cos) + math.Abs(fh*sin)))
		h = int(math.Ceil(math.Abs(fh*cos) + math.Abs(fw*sin)))
	}
	out := New(h, w, im.c)

	cy, cx := float64(im.h-1)/2, float64(im.w-1)/2
	ocy, ocx := float64(h-1)/2, float64(w-1)/2
	for y := 0; y < h; y++ {
		dy := float64(y) - ocy
		for x := 0; x < w; x++ {
			dx := float64(x) - ocx
			// Inverse-rotate the output coordinate into the source frame.
			sxf := cos*dx - sin*dy + cx
			syf := sin*dx + cos*dy + cy
			sy := int(math.Round(syf))
			sx := int(math.Round(sxf))
			if sy < 0 || sy >= im.h || sx < 0 || sx >= im.w {
				continue
			}
			for ch := 0; ch < im.c; ch++ {
				out.Set(y, x, ch, im.At(sy, sx, ch))
			}
		}
	}
	return out
}

// FlipLR returns the image mirrored left to right.
func FlipLR(im *Image) *Image {
	out := New(im.h, im.w, im.c)
	for y := 0; y < im.h; y++ {
		for x := 0; x < im.w; x++ {
			for ch := 0; ch < im.c; ch++ {
				out.Set(y, x, ch, im.At(y, im.w-1-x, ch))
			}
		}
	}
	return out
}

// FlipUD returns the image mirrored upside down.
func FlipUD(im *Image) *Image {
	out := New(im.h, im.w, im.c)
	for y := 0; y < im.h; y++ {
		src := (im.h - 1 - y) * im.w * im.c
		dst := y * im.w * im.c
		copy(out.pix[dst:dst+im.w*im.c], im.pix[src:src+im.w*im.c])
	}
	return out
}

// Paste copies src into dst with its top-left corner at row y0, column
// x0, clipping to dst's bounds. Channel counts must match.
func Paste(dst, src *Image, y0, x0 int) {
	if dst.c != src.c {
		panic("kernel: channel mismatch in Paste")
	}
	for y := 0; y < src.h; y++ {
		ty := y0 + y
		if ty < 0 || ty >= dst.h {
			continue
		}
		for x := 0; x < src.w; x++ {
			tx := x0 + x
			if tx < 0 || tx >= dst.w {
				continue
			}
			for ch := 0; ch < src.c; ch++ {
				dst.Set(ty, tx, ch, src.At(y, x, ch))
			}
		}
	}
}
