// Copyright 2026 The Logoopt Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package optimize

import (
	"fmt"
)

const (
	DefaultMaxWidth = 512
	DefaultQuality  = 85
)

// Options configures Run.
type Options struct {
	// Path is the image file, rewritten in place.
	Path string

	// MaxWidth caps the output width. Narrower images keep their size.
	MaxWidth int

	// Quality is passed to the encoder, on a 1 to 100 scale.
	Quality int

	// Optimize asks the encoder for its smallest output.
	Optimize bool
}

// DefaultOptions returns the Options for path: a 512 pixel width cap,
// quality 85 and optimized encoding.
func DefaultOptions(path string) Options {
	return Options{
		Path:     path,
		MaxWidth: DefaultMaxWidth,
		Quality:  DefaultQuality,
		Optimize: true,
	}
}

// Validate checks that the options are usable.
func (o Options) Validate() error {
	if o.Path == "" {
		return fmt.Errorf("%w: path is required", ErrBadOptions)
	}
	if o.MaxWidth <= 0 {
		return fmt.Errorf("%w: max width must be positive, got %d", ErrBadOptions, o.MaxWidth)
	}
	if (o.Quality < 1) || (o.Quality > 100) {
		return fmt.Errorf("%w: quality must be in 1..100, got %d", ErrBadOptions, o.Quality)
	}
	return nil
}
