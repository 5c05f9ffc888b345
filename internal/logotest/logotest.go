// Copyright 2026 The Logoopt Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// Package logotest draws synthetic logo images for tests and for the sample
// generator under res/.
package logotest

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// New returns a width × height logo: a radial glow on a transparent
// background with the text "ES" drawn over a gradient.
func New(width int, height int) (*image.NRGBA, error) {
	if (width <= 0) || (height <= 0) {
		return nil, fmt.Errorf("logotest: bad size %d×%d", width, height)
	}
	r := image.Rect(0, 0, width, height)

	circ := image.NewNRGBA(r)
	{
		cx, cy := width/3, height/2
		radius := float64(min(width, height)) / 2
		for y := range height {
			dy := float64(y - cy)
			for x := range width {
				dx := float64(x - cx)
				d := math.Sqrt((dx * dx) + (dy * dy)) / radius
				v := uint8(0xFF * max(0, 1-min(1, d)))
				circ.SetNRGBA(x, y, color.NRGBA{v, v / 3, 0, v})
			}
		}
	}

	grad := image.NewNRGBA(r)
	for y := range height {
		for x := range width {
			grad.SetNRGBA(x, y, color.NRGBA{
				0x00,
				uint8((0xFF * x) / width),
				uint8((0xFF * y) / height),
				0xFF,
			})
		}
	}

	mask := image.NewAlpha(r)
	if size := float64(height) * 0.6; size >= 1 {
		f, err := opentype.Parse(goitalic.TTF)
		if err != nil {
			return nil, fmt.Errorf("opentype.Parse: %v", err)
		}
		face, err := opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingNone,
		})
		if err != nil {
			return nil, fmt.Errorf("opentype.NewFace: %v", err)
		}
		defer face.Close()
		d := font.Drawer{
			Dst:  mask,
			Src:  image.Opaque,
			Face: face,
			Dot:  fixed.P(width/8, (height*3)/4),
		}
		d.DrawString("ES")
	}

	m := image.NewNRGBA(r)
	draw.Draw(m, r, circ, image.Point{}, draw.Src)
	draw.DrawMask(m, r, grad, image.Point{}, mask, image.Point{}, draw.Over)
	return m, nil
}

// WritePNG writes m to filename as a PNG file.
func WritePNG(filename string, m image.Image) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("os.Create: %v", err)
	}
	if err := png.Encode(f, m); err != nil {
		f.Close()
		return fmt.Errorf("png.Encode: %v", err)
	}
	return f.Close()
}

// ReadPNG reads a PNG file.
func ReadPNG(filename string) (image.Image, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("os.Open: %v", err)
	}
	defer f.Close()
	m, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("png.Decode: %v", err)
	}
	return m, nil
}

// WriteLogo draws a width × height logo and writes it to filename as a PNG.
func WriteLogo(filename string, width int, height int) error {
	m, err := New(width, height)
	if err != nil {
		return err
	}
	return WritePNG(filename, m)
}
