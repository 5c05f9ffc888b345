// Copyright 2026 The Logoopt Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// Package codec defines the image codec capability used by the optimizer:
// decoding, high quality downscaling and re-encoding.
//
// Backends live in sub-packages and register themselves from an init
// function, the same way image decoders register with image.RegisterFormat.
// A program picks up a backend by importing it for its side effects:
//
//	import _ "github.com/enchantedsecrets/logoopt/lib/codec/lanczos"
//
// If no backend is linked in, Lookup returns ErrNotInstalled.
package codec

import (
	"errors"
	"image"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

var (
	ErrBadArgument           = errors.New("codec: bad argument")
	ErrNotInstalled          = errors.New("codec: no image codec installed")
	ErrUnsupportedFormat     = errors.New("codec: unsupported format")
	ErrDuplicateRegistration = errors.New("codec: duplicate registration")
)

// Format is an output file format.
type Format uint8

const (
	FormatInvalid = Format(0)
	FormatPNG     = Format(1)
	FormatJPEG    = Format(2)
)

func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	}
	return "invalid"
}

// FormatFromFilename returns the Format implied by filename's extension. The
// match is case-insensitive.
func FormatFromFilename(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		return FormatPNG, nil
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	}
	return FormatInvalid, ErrUnsupportedFormat
}

// EncodeOptions are optional arguments to Codec.Encode. The zero value is
// valid and means to use the encoder's defaults.
type EncodeOptions struct {
	// Optimize asks for the smallest output the encoder can produce at
	// equivalent quality. For PNG this is the best zlib compression level.
	Optimize bool

	// Quality is on a 1 to 100 scale. It only affects lossy formats. Zero
	// means the encoder's default.
	Quality int
}

// Codec is an image processing capability.
type Codec interface {
	// Decode reads an image from r.
	Decode(r io.Reader) (image.Image, error)

	// Resize scales src to exactly width × height pixels. Both dimensions
	// must be positive.
	Resize(src image.Image, width int, height int) (image.Image, error)

	// Encode writes m to w in the given format.
	//
	// options may be nil, which means to use the default configuration.
	Encode(w io.Writer, m image.Image, format Format, options *EncodeOptions) error
}

type registration struct {
	name     string
	priority int
	codec    Codec
}

// Registry holds the registered codec backends. The zero value is an empty
// registry ready to use.
type Registry struct {
	mu   sync.Mutex
	regs []registration
}

// Register adds c under name. Among several registrations, Lookup prefers the
// highest priority.
func (r *Registry) Register(name string, priority int, c Codec) error {
	if (name == "") || (c == nil) {
		return ErrBadArgument
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, reg := range r.regs {
		if reg.name == name {
			return ErrDuplicateRegistration
		}
	}
	r.regs = append(r.regs, registration{name, priority, c})
	sort.SliceStable(r.regs, func(i, j int) bool {
		return r.regs[i].priority > r.regs[j].priority
	})
	return nil
}

// Lookup returns the preferred codec and its name.
func (r *Registry) Lookup() (string, Codec, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.regs) == 0 {
		return "", nil, ErrNotInstalled
	}
	return r.regs[0].name, r.regs[0].codec, nil
}

// Names lists the registered codec names, most preferred first.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, len(r.regs))
	for i, reg := range r.regs {
		names[i] = reg.name
	}
	return names
}

var defaultRegistry Registry

// Register adds c to the default registry. It panics on a bad or duplicate
// registration, since it is meant to be called from init.
func Register(name string, priority int, c Codec) {
	if err := defaultRegistry.Register(name, priority, c); err != nil {
		panic(err.Error() + ": " + name)
	}
}

// Lookup returns the preferred codec in the default registry.
func Lookup() (string, Codec, error) {
	return defaultRegistry.Lookup()
}

// Names lists the codecs in the default registry.
func Names() []string {
	return defaultRegistry.Names()
}
