// Copyright 2018 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package emitter renders an NcsProgram (package model) into one of
// four textual views: a listing, an assembly dump, a GraphViz DOT
// graph, or a best-effort NSS reconstruction. The Emitter is strictly
// single-threaded and synchronous (§5): each call takes a read-only
// borrow of the Program and a unique-write borrow of the sink for its
// duration, and performs no I/O beyond writing to that sink.
package emitter

import (
	"bufio"
	"fmt"
	"io"

	"github.com/nwscript-tools/ncsdis/model"
)

// Emitter renders a single Program to a single sink. It is not safe
// for concurrent use by multiple goroutines against the same sink;
// distinct Emitters over distinct sinks on the same Program are safe
// (§5).
type Emitter struct {
	prog *model.Program
	w    *writer
}

// New returns an Emitter that renders prog to sink.
func New(sink io.Writer, prog *model.Program) *Emitter {
	return &Emitter{prog: prog, w: newWriter(sink)}
}

// writer wraps the output sink with a sticky error: once a write
// fails, every subsequent WriteString/Printf is a no-op, and the
// first error is returned by Flush. Grounded directly on
// wast/write.go's writer{bw, err} idiom — the closest teacher
// analogue to this package's job (walk a decoded program, emit
// structured text, track one I/O error across many small writes).
type writer struct {
	bw  *bufio.Writer
	err error
}

func newWriter(sink io.Writer) *writer {
	return &writer{bw: bufio.NewWriter(sink)}
}

func (w *writer) WriteString(s string) {
	if w.err != nil {
		return
	}
	_, w.err = w.bw.WriteString(s)
}

func (w *writer) Printf(format string, args ...interface{}) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.bw, format, args...)
}

func (w *writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	return w.bw.Flush()
}
