// Copyright 2026 The Logoopt Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// Package nie implements the NIE (Naive) image file format.
//
// It is an incomplete implementation (and hence an internal package). The
// logoopt tests use it as a canonical pixel serialization: two images encode
// to equal bytes exactly when they have the same size and the same
// non-premultiplied pixels, whatever their Go image types.
//
// NIE is specified at
// https://github.com/google/wuffs/blob/main/doc/spec/nie-spec.md
package nie

import (
	"errors"
	"image"
	"image/color"
)

var (
	ErrBadArgument = errors.New("nie: bad argument")
)

// EncodeBN8 encodes m as a NIE file in BGRA order, non-premultiplied alpha, 8
// bytes per pixel (16 bits per channel).
func EncodeBN8(m image.Image) (ret []byte, retErr error) {
	if m == nil {
		return nil, ErrBadArgument
	}
	b := m.Bounds()
	ret = make([]byte, 0, 16+(8*b.Dx()*b.Dy()))
	ret = append(ret, 0x6E, 0xC3, 0xAF, 0x45, 0xFF, 'b', 'n', '8')
	ret = appendU32LE(ret, uint32(b.Dx()))
	ret = appendU32LE(ret, uint32(b.Dy()))

	switch m := m.(type) {
	case *image.NRGBA:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				at := m.NRGBAAt(x, y)
				ret = append(ret,
					uint8(at.B), uint8(at.B),
					uint8(at.G), uint8(at.G),
					uint8(at.R), uint8(at.R),
					uint8(at.A), uint8(at.A),
				)
			}
		}
		return ret, nil

	case *image.Gray:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				at := m.GrayAt(x, y)
				ret = append(ret,
					uint8(at.Y), uint8(at.Y),
					uint8(at.Y), uint8(at.Y),
					uint8(at.Y), uint8(at.Y),
					0xFF, 0xFF,
				)
			}
		}
		return ret, nil
	}

	// The slow path covers every other image type, including the premultiplied
	// ones, by converting each pixel through color.NRGBA64Model.
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			at := color.NRGBA64Model.Convert(m.At(x, y)).(color.NRGBA64)
			ret = append(ret,
				uint8(at.B>>0), uint8(at.B>>8),
				uint8(at.G>>0), uint8(at.G>>8),
				uint8(at.R>>0), uint8(at.R>>8),
				uint8(at.A>>0), uint8(at.A>>8),
			)
		}
	}
	return ret, nil
}

func appendU32LE(b []byte, u uint32) []byte {
	return append(b,
		uint8(u>>0),
		uint8(u>>8),
		uint8(u>>16),
		uint8(u>>24),
	)
}
