// Copyright 2026 The Logoopt Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

//go:build !nocatmullrom

package main

import (
	_ "github.com/enchantedsecrets/logoopt/lib/codec/catmullrom"
)
