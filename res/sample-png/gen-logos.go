// Copyright 2026 The Logoopt Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

//go:build ignore

// gen-logos writes sample logos for trying logoopt by hand. To use one, copy
// it to client/public/logo.png below the directory that logoopt runs in.
package main

import (
	"fmt"
	"os"

	"github.com/enchantedsecrets/logoopt/internal/logotest"
)

var sizes = [][2]int{
	{1024, 768},
	{256, 256},
	{1100, 2},
}

func main() {
	if err := main1(); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func main1() error {
	for _, size := range sizes {
		filename := fmt.Sprintf("logo.%dx%d.png", size[0], size[1])
		if err := logotest.WriteLogo(filename, size[0], size[1]); err != nil {
			return fmt.Errorf("%s: %v", filename, err)
		}
	}
	return nil
}
