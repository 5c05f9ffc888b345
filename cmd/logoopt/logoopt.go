// Copyright 2026 The Logoopt Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// logoopt caps the site logo's width at 512 pixels and re-compresses it in
// place.
//
// It takes no arguments. The logo path is fixed, relative to the working
// directory. Status lines are written to stdout and the exit status is always
// zero, even when something went wrong.
//
// Building with the tags nolanczos and nocatmullrom leaves out both image
// codecs, in which case logoopt only reports that no codec is installed.
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"

	"github.com/enchantedsecrets/logoopt/lib/codec"
	"github.com/enchantedsecrets/logoopt/lib/optimize"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const logoPath = "client/public/logo.png"

const logLevel = slog.LevelWarn

func main() {
	if err := main1(); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
	}
}

func main1() error {
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      logLevel,
		TimeFormat: "15:04:05",
	}))
	return run(logoPath, os.Stdout, logger)
}

func run(path string, stdout io.Writer, logger *slog.Logger) error {
	c := codec.Codec(nil)
	if name, found, err := codec.Lookup(); err != nil {
		logger.Debug("codec lookup", "err", err)
	} else {
		logger.Debug("codec lookup", "codec", name, "installed", codec.Names())
		c = found
	}

	res := optimize.Run(c, optimize.DefaultOptions(path), logger)
	logger.Debug("done", "outcome", res.Outcome)
	return res.Report(stdout)
}
