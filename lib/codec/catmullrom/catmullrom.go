// Copyright 2026 The Logoopt Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// Package catmullrom provides a codec backend built on golang.org/x/image/draw
// and the standard library's encoders. It resamples with the Catmull-Rom
// cubic kernel, which is close to Lanczos in quality for downscaling.
//
// Importing it registers the backend as "catmullrom". It is preferred less
// than the lanczos backend when both are linked in.
package catmullrom

import (
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"github.com/enchantedsecrets/logoopt/lib/codec"

	_ "image/gif"
)

// Name is the registered name of this backend.
const Name = "catmullrom"

// Priority is the registration priority of this backend.
const Priority = 50

func init() {
	codec.Register(Name, Priority, Codec{})
}

// Codec implements codec.Codec.
type Codec struct{}

// Decode implements codec.Codec.
func (Codec) Decode(r io.Reader) (image.Image, error) {
	m, _, err := image.Decode(r)
	return m, err
}

// Resize implements codec.Codec.
//
// The result is always an *image.NRGBA, so that transparent logo edges keep
// their color after scaling.
func (Codec) Resize(src image.Image, width int, height int) (image.Image, error) {
	if (width <= 0) || (height <= 0) {
		return nil, codec.ErrBadArgument
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst, nil
}

// Encode implements codec.Codec.
func (Codec) Encode(w io.Writer, m image.Image, format codec.Format, options *codec.EncodeOptions) error {
	if options == nil {
		options = &codec.EncodeOptions{}
	}

	switch format {
	case codec.FormatPNG:
		enc := png.Encoder{
			CompressionLevel: png.DefaultCompression,
		}
		if options.Optimize {
			enc.CompressionLevel = png.BestCompression
		}
		return enc.Encode(w, m)

	case codec.FormatJPEG:
		o := &jpeg.Options{Quality: jpeg.DefaultQuality}
		if options.Quality > 0 {
			o.Quality = min(options.Quality, 100)
		}
		return jpeg.Encode(w, m, o)
	}

	return codec.ErrUnsupportedFormat
}
