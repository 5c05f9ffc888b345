// Copyright 2026 The Logoopt Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// Package optimize shrinks and re-compresses a single image file in place.
//
// Run never returns an error. Every failure is folded into the Result, whose
// only purpose is to be reported as text.
package optimize

import (
	"errors"
	"fmt"
	"image"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/enchantedsecrets/logoopt/lib/codec"
)

var (
	ErrBadOptions = errors.New("optimize: invalid options")
	ErrZeroHeight = errors.New("optimize: resized height is zero")
)

// UnavailableMessage is reported when no image codec is installed.
const UnavailableMessage = "image codec not installed"

// Size is an image's dimensions in pixels.
type Size struct {
	Width  int
	Height int
}

// String formats s as "(width, height)".
func (s Size) String() string {
	return fmt.Sprintf("(%d, %d)", s.Width, s.Height)
}

// Outcome says how Run finished.
type Outcome uint8

const (
	// OutcomeUnavailable means there was no codec, so nothing was touched.
	OutcomeUnavailable = Outcome(0)
	// OutcomeMissing means the file did not exist, so nothing was touched.
	OutcomeMissing     = Outcome(1)
	// OutcomeResized means the image was scaled down and saved.
	OutcomeResized     = Outcome(2)
	// OutcomeReencoded means the image was already narrow enough and was
	// saved again at its original size.
	OutcomeReencoded   = Outcome(3)
	// OutcomeFailed means something went wrong. Result.Err says what.
	OutcomeFailed      = Outcome(4)
)

func (o Outcome) String() string {
	switch o {
	case OutcomeUnavailable:
		return "unavailable"
	case OutcomeMissing:
		return "missing"
	case OutcomeResized:
		return "resized"
	case OutcomeReencoded:
		return "reencoded"
	case OutcomeFailed:
		return "failed"
	}
	return "invalid"
}

// Result is what Run did.
type Result struct {
	Outcome Outcome

	// Original is the decoded size. It is zero if decoding was not reached.
	Original Size

	// Final is the saved size, for OutcomeResized and OutcomeReencoded.
	Final Size

	// SmallEnough is whether the image was found to need no resize. It can
	// be set alongside OutcomeFailed, if saving failed afterwards.
	SmallEnough bool

	// Err is set for OutcomeFailed.
	Err error
}

// Lines returns the status lines to show for r, in order. OutcomeMissing has
// none.
func (r Result) Lines() []string {
	switch r.Outcome {
	case OutcomeUnavailable:
		return []string{UnavailableMessage}
	case OutcomeMissing:
		return nil
	}

	lines := []string(nil)
	if r.Original != (Size{}) {
		lines = append(lines, "Original size: "+r.Original.String())
	}
	if r.SmallEnough {
		lines = append(lines, "Image small enough, skipping resize.")
	}

	switch r.Outcome {
	case OutcomeResized:
		lines = append(lines, "Resized to: "+r.Final.String())
	case OutcomeReencoded:
		lines = append(lines, "Optimized existing image.")
	default:
		msg := "unknown error"
		if r.Err != nil {
			msg = r.Err.Error()
		}
		lines = append(lines, "Error: "+msg)
	}
	return lines
}

// Report writes r's lines to w, one per line.
func (r Result) Report(w io.Writer) error {
	for _, line := range r.Lines() {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// Run rewrites the image at opts.Path, scaling it down to opts.MaxWidth
// pixels wide (keeping the aspect ratio, rounding the height down) if it is
// wider than that. The file is re-encoded in either case.
//
// c may be nil, meaning that no codec is available. Run then reports that
// without touching the file system. logger may also be nil.
func Run(c codec.Codec, opts Options, logger *slog.Logger) (res Result) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if c == nil {
		logger.Debug("no codec")
		return Result{Outcome: OutcomeUnavailable}
	}

	defer func() {
		if r := recover(); r != nil {
			res.Outcome = OutcomeFailed
			res.Final = Size{}
			res.Err = fmt.Errorf("optimize: panic: %v", r)
		}
	}()

	if err := opts.Validate(); err != nil {
		return Result{Outcome: OutcomeFailed, Err: err}
	}

	logger = logger.With("path", opts.Path)
	// Any stat failure, not only ENOENT, counts as a missing file.
	info, err := os.Stat(opts.Path)
	if err != nil {
		logger.Debug("file does not exist", "err", err)
		return Result{Outcome: OutcomeMissing}
	}

	m, err := decode(c, opts.Path)
	if err != nil {
		return Result{Outcome: OutcomeFailed, Err: err}
	}
	b := m.Bounds()
	res.Original = Size{b.Dx(), b.Dy()}
	logger.Debug("decoded", "size", res.Original)

	if res.Original.Width > opts.MaxWidth {
		// Integer arithmetic keeps the height exactly floor(h * max / w).
		newHeight := int((int64(res.Original.Height) * int64(opts.MaxWidth)) / int64(res.Original.Width))
		if newHeight <= 0 {
			return failed(res, ErrZeroHeight)
		}
		if m, err = c.Resize(m, opts.MaxWidth, newHeight); err != nil {
			return failed(res, err)
		}
		b = m.Bounds()
		logger.Debug("resized", "size", Size{b.Dx(), b.Dy()})
		res.Outcome = OutcomeResized
	} else {
		res.SmallEnough = true
		res.Outcome = OutcomeReencoded
	}

	// Writing through a symlink updates its target and keeps the link.
	target, err := filepath.EvalSymlinks(opts.Path)
	if err != nil {
		return failed(res, err)
	}
	if err := save(c, opts, target, info.Mode().Perm(), m, logger); err != nil {
		return failed(res, err)
	}
	res.Final = Size{b.Dx(), b.Dy()}
	return res
}

func failed(res Result, err error) Result {
	res.Outcome = OutcomeFailed
	res.Err = err
	return res
}

func decode(c codec.Codec, filename string) (image.Image, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := c.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("cannot decode %s: %w", filename, err)
	}
	if b := m.Bounds(); b.Empty() {
		return nil, fmt.Errorf("cannot decode %s: %w", filename, codec.ErrBadArgument)
	}
	return m, nil
}

// save encodes m next to target and then renames it over target, so that the
// original file survives a failed encode. The encode format follows
// opts.Path's extension.
func save(c codec.Codec, opts Options, target string, perm fs.FileMode, m image.Image, logger *slog.Logger) error {
	format, err := codec.FormatFromFilename(opts.Path)
	if err != nil {
		return fmt.Errorf("cannot save %s: %w", opts.Path, err)
	}

	dir, base := filepath.Split(target)
	if dir == "" {
		dir = "."
	}
	f, err := os.CreateTemp(dir, "."+base+".*")
	if err != nil {
		return err
	}
	tmpName := f.Name()
	renamed := false
	defer func() {
		if renamed {
			return
		}
		f.Close()
		if err := os.Remove(tmpName); err != nil && !errors.Is(err, fs.ErrNotExist) {
			logger.Warn("cannot remove temporary file", "tmp", tmpName, "err", err)
		}
	}()

	if err := c.Encode(f, m, format, &codec.EncodeOptions{
		Optimize: opts.Optimize,
		Quality:  opts.Quality,
	}); err != nil {
		return fmt.Errorf("cannot encode %s: %w", format, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return err
	}
	if err := os.Rename(tmpName, target); err != nil {
		return err
	}
	renamed = true
	logger.Debug("saved", "format", format, "target", target)
	return nil
}
