// Copyright 2026 The Logoopt Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// Package lanczos provides a codec backend built on
// github.com/disintegration/imaging, resampling with a Lanczos filter.
//
// Importing it registers the backend as "lanczos", the preferred codec.
package lanczos

import (
	"image"
	"image/png"
	"io"

	"github.com/disintegration/imaging"

	"github.com/enchantedsecrets/logoopt/lib/codec"
)

// Name is the registered name of this backend.
const Name = "lanczos"

// Priority is the registration priority of this backend.
const Priority = 100

func init() {
	codec.Register(Name, Priority, Codec{})
}

// Codec implements codec.Codec.
type Codec struct{}

// Decode implements codec.Codec.
func (Codec) Decode(r io.Reader) (image.Image, error) {
	return imaging.Decode(r)
}

// Resize implements codec.Codec.
func (Codec) Resize(src image.Image, width int, height int) (image.Image, error) {
	if (width <= 0) || (height <= 0) {
		return nil, codec.ErrBadArgument
	}
	return imaging.Resize(src, width, height, imaging.Lanczos), nil
}

// Encode implements codec.Codec.
func (Codec) Encode(w io.Writer, m image.Image, format codec.Format, options *codec.EncodeOptions) error {
	if options == nil {
		options = &codec.EncodeOptions{}
	}

	switch format {
	case codec.FormatPNG:
		level := png.DefaultCompression
		if options.Optimize {
			level = png.BestCompression
		}
		return imaging.Encode(w, m, imaging.PNG, imaging.PNGCompressionLevel(level))

	case codec.FormatJPEG:
		opts := []imaging.EncodeOption(nil)
		if options.Quality > 0 {
			opts = append(opts, imaging.JPEGQuality(options.Quality))
		}
		return imaging.Encode(w, m, imaging.JPEG, opts...)
	}

	return codec.ErrUnsupportedFormat
}
