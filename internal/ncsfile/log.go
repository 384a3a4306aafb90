// Copyright 2018 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ncsfile

import (
	"io"
	"log"
	"os"
)

// Verbose gates this package's trace logger, following the same
// per-package switch model.Verbose uses.
var Verbose = false

func newLogger() *log.Logger {
	w := io.Discard
	if Verbose {
		w = os.Stderr
	}
	return log.New(w, "ncsfile: ", log.Lshortfile)
}

// SetVerbose toggles trace logging for Load.
func SetVerbose(v bool) {
	Verbose = v
	w := io.Discard
	if Verbose {
		w = os.Stderr
	}
	logger.SetOutput(w)
}
