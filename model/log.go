// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"io"
	"log"
	"os"
)

// Verbose gates the package's trace logger. Off by default: nothing
// in this package writes to stderr unless a caller (typically
// cmd/ncsdis's -v flag) flips it.
var Verbose = false

var logger *log.Logger

func init() {
	w := io.Discard
	if Verbose {
		w = os.Stderr
	}
	logger = log.New(w, "model: ", log.Lshortfile)
}

// SetVerbose toggles trace logging for Validate.
func SetVerbose(v bool) {
	Verbose = v
	w := io.Discard
	if Verbose {
		w = os.Stderr
	}
	logger.SetOutput(w)
}
