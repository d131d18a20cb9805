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
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"
	"lostluck.dev/batchflow-go/kernel"
)

// actions.go holds the user facing batch actions. Every action validates
// its parameters before anything is dispatched in parallel, so bad calls
// fail immediately rather than inside the pool.

// Origin names the anchor point of a crop window: one of the two named
// corners or an explicit (row, column) pair. The zero Origin is invalid.
type Origin struct {
	kind     originKind
	row, col int
}

type originKind int

const (
	originInvalid originKind = iota
	originTopLeft
	originCenter
	originFixed
)

// Named crop origins.
var (
	TopLeft = Origin{kind: originTopLeft}
	Center  = Origin{kind: originCenter}
)

// OriginAt places the crop window at an explicit (row, column).
func OriginAt(row, col int) Origin {
	return Origin{kind: originFixed, row: row, col: col}
}

func (o Origin) valid() bool {
	return o.kind == originTopLeft || o.kind == originCenter || o.kind == originFixed
}

// resolve computes the window's top-left corner for an image of imH x
// imW and a window of h x w. Center anchors the window in the middle of
// the image, clipped at zero.
func (o Origin) resolve(imH, imW, h, w int) (row, col int) {
	switch o.kind {
	case originCenter:
		return max(imH-h, 0) / 2, max(imW-w, 0) / 2
	case originFixed:
		return o.row, o.col
	default:
		return 0, 0
	}
}

// FlipMode selects the flip axis.
type FlipMode string

const (
	// FlipLR mirrors left/right.
	FlipLR FlipMode = "lr"
	// FlipUD mirrors upside down.
	FlipUD FlipMode = "ud"
	// FlipAll lets RandomFlip pick the axis per record.
	FlipAll FlipMode = "all"
)

func validShape(shape []int) error {
	if len(shape) != 2 {
		return errors.Wrapf(ErrValidation, "shape must have 2 entries, got %d", len(shape))
	}
	if shape[0] <= 0 || shape[1] <= 0 {
		return errors.Wrapf(ErrValidation, "shape entries must be positive, got %v", shape)
	}
	return nil
}

func validProb(name string, p float64) error {
	if p < 0 || p > 1 {
		return errors.Wrapf(ErrValidation, "%s must be in [0, 1], got %v", name, p)
	}
	return nil
}

// Crop crops every record's image to shape, anchored at origin. Windows
// reaching past an image are clipped to it.
func (b *Batch) Crop(origin Origin, shape []int, opts ...Options) (*Batch, error) {
	if !origin.valid() {
		return nil, errors.Wrap(ErrValidation, "origin must be TopLeft, Center, or OriginAt")
	}
	if err := validShape(shape); err != nil {
		return nil, err
	}
	return b.mapImages("crop", opts, func(im *kernel.Image) (*kernel.Image, error) {
		row, col := origin.resolve(im.Height(), im.Width(), shape[0], shape[1])
		return kernel.Crop(im, row, col, shape[0], shape[1]), nil
	})
}

// RandomCrop crops every record's image to shape at an origin chosen
// uniformly at random within the valid bounds of that image.
func (b *Batch) RandomCrop(shape []int, opts ...Options) (*Batch, error) {
	if err := validShape(shape); err != nil {
		return nil, err
	}
	return b.mapImages("random_crop", opts, func(im *kernel.Image) (*kernel.Image, error) {
		if shape[0] > im.Height() || shape[1] > im.Width() {
			return nil, errors.Wrapf(ErrValidation, "crop shape %v exceeds image %dx%d", shape, im.Height(), im.Width())
		}
		row := rand.IntN(im.Height() - shape[0] + 1)
		col := rand.IntN(im.Width() - shape[1] + 1)
		return kernel.Crop(im, row, col, shape[0], shape[1]), nil
	})
}

// Resize resamples every record's image to exactly shape.
func (b *Batch) Resize(shape []int, opts ...Options) (*Batch, error) {
	if err := validShape(shape); err != nil {
		return nil, err
	}
	return b.mapImages("resize", opts, func(im *kernel.Image) (*kernel.Image, error) {
		return kernel.Resize(im, shape[0], shape[1]), nil
	})
}

// RandomScale rescales each record's image with probability p by a
// factor drawn uniformly from factor (default [0.9, 1.1]). With
// preserveShape the scaled image is cropped or zero-padded back to its
// original size, anchored per anchor.
func (b *Batch) RandomScale(p float64, factor []float64, preserveShape bool, anchor Anchor, opts ...Options) (*Batch, error) {
	if err := validProb("p", p); err != nil {
		return nil, err
	}
	if factor == nil {
		factor = []float64{0.9, 1.1}
	}
	if len(factor) != 2 || factor[0] <= 0 || factor[0] > factor[1] {
		return nil, errors.Wrapf(ErrValidation, "factor must be a positive (min, max) pair, got %v", factor)
	}
	if err := anchor.valid(); err != nil {
		return nil, err
	}
	return b.mapImages("random_scale", opts, func(im *kernel.Image) (*kernel.Image, error) {
		if rand.Float64() >= p {
			return im, nil
		}
		f := factor[0] + rand.Float64()*(factor[1]-factor[0])
		h := int(math.Round(float64(im.Height()) * f))
		w := int(math.Round(float64(im.Width()) * f))
		out := kernel.Resize(im, max(h, 1), max(w, 1))
		if preserveShape {
			out = preserveShapeOf(out, im.Height(), im.Width(), anchor)
		}
		return out, nil
	})
}

// Rotate rotates every record's image by angle degrees. With
// preserveShape the canvas keeps the input shape and corners rotate off
// it; otherwise the canvas expands to the rotated bounding box.
func (b *Batch) Rotate(angle float64, preserveShape bool, opts ...Options) (*Batch, error) {
	return b.mapImages("rotate", opts, func(im *kernel.Image) (*kernel.Image, error) {
		return kernel.Rotate(im, angle, !preserveShape), nil
	})
}

// RandomRotate rotates each record's image with probability p by an
// angle drawn uniformly from angleRange (default [-45, 45] degrees).
func (b *Batch) RandomRotate(p float64, angleRange []float64, preserveShape bool, opts ...Options) (*Batch, error) {
	if err := validProb("p", p); err != nil {
		return nil, err
	}
	if angleRange == nil {
		angleRange = []float64{-45, 45}
	}
	if len(angleRange) != 2 || angleRange[0] > angleRange[1] {
		return nil, errors.Wrapf(ErrValidation, "angle range must be a (min, max) pair, got %v", angleRange)
	}
	return b.mapImages("random_rotate", opts, func(im *kernel.Image) (*kernel.Image, error) {
		if rand.Float64() >= p {
			return im, nil
		}
		angle := angleRange[0] + rand.Float64()*(angleRange[1]-angleRange[0])
		return kernel.Rotate(im, angle, !preserveShape), nil
	})
}

// Flip mirrors every record's image along the given axis. Mode must be
// FlipLR or FlipUD.
func (b *Batch) Flip(mode FlipMode, opts ...Options) (*Batch, error) {
	if mode != FlipLR && mode != FlipUD {
		return nil, errors.Wrapf(ErrValidation, "mode must be %q or %q, got %q", FlipLR, FlipUD, mode)
	}
	return b.mapImages("flip", opts, func(im *kernel.Image) (*kernel.Image, error) {
		return flipOne(im, mode), nil
	})
}

// RandomFlip mirrors each record's image with probability p. FlipAll
// picks left/right with probability pLR per record, upside down
// otherwise.
func (b *Batch) RandomFlip(mode FlipMode, p, pLR float64, opts ...Options) (*Batch, error) {
	if mode != FlipLR && mode != FlipUD && mode != FlipAll {
		return nil, errors.Wrapf(ErrValidation, "mode must be one of %q, %q, %q, got %q", FlipLR, FlipUD, FlipAll, mode)
	}
	if err := validProb("p", p); err != nil {
		return nil, err
	}
	if err := validProb("p_lr", pLR); err != nil {
		return nil, err
	}
	return b.mapImages("random_flip", opts, func(im *kernel.Image) (*kernel.Image, error) {
		if rand.Float64() >= p {
			return im, nil
		}
		m := mode
		if m == FlipAll {
			if rand.Float64() < pLR {
				m = FlipLR
			} else {
				m = FlipUD
			}
		}
		return flipOne(im, m), nil
	})
}

func flipOne(im *kernel.Image, mode FlipMode) *kernel.Image {
	if mode == FlipLR {
		return kernel.FlipLR(im)
	}
	return kernel.FlipUD(im)
}
