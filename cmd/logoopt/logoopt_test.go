// Copyright 2026 The Logoopt Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

//go:build !nolanczos && !nocatmullrom

package main

import (
	"reflect"
	"testing"

	"github.com/enchantedsecrets/logoopt/lib/codec"
)

func TestCodecsInstalled(tt *testing.T) {
	got, want := codec.Names(), []string{"lanczos", "catmullrom"}
	if !reflect.DeepEqual(got, want) {
		tt.Errorf("codec.Names: got %q, want %q", got, want)
	}
}
