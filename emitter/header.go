// Copyright 2018 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emitter

import "github.com/nwscript-tools/ncsdis/format"

// writeInfo emits the size/instruction-count banner (§4.1), identical
// byte-for-byte regardless of which of the four modes calls it (§8
// property 2).
func (e *Emitter) writeInfo() {
	e.w.Printf("; %d bytes, %d instructions\n\n", e.prog.Size, e.prog.InstructionCount())
}

// writeEngineTypes emits the engine-type legend (§4.1). Grounded on
// cmd/wasm-dump/main.go's printHeaders: a banner line, one row per
// entry, then a blank line — generalized from WASM's fixed section
// headers to NWScript's per-game engine-type table.
func (e *Emitter) writeEngineTypes() {
	count := format.EngineTypeCount(e.prog.Game)
	if count == 0 {
		return
	}
	e.w.WriteString("; Engine types:\n")
	for i := 0; i < count; i++ {
		specific := format.EngineTypeName(e.prog.Game, i)
		if specific == "" {
			continue
		}
		generic := format.GenericEngineTypeName(i)
		e.w.Printf("; %s: %s\n", generic, specific)
	}
	e.w.WriteString("\n")
}
