// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import "github.com/nwscript-tools/ncsdis/model"

// InstructionLabel returns the human jump-label name for instr
// (format_jump_label_name, §6), or "" if none is known. A bare
// instruction has no name; a subroutine-entry instruction delegates
// to SubroutineLabel.
func InstructionLabel(p *model.Program, instr *model.Instruction) string {
	if instr.AddressKind != model.AddressSubRoutine {
		return ""
	}
	if instr.Block == model.NoBlock {
		return ""
	}
	block := p.Block(instr.Block)
	if block.SubRoutine == model.NoSubroutine {
		return ""
	}
	return SubroutineLabel(p.Subroutine(block.SubRoutine))
}

// SubroutineLabel returns the human jump-label name for sub
// (format_jump_label_name, §6). Only the two well-known entry kinds
// carry a conventional name; ordinary subroutines have none absent a
// debug-symbol table, which this format package does not model.
func SubroutineLabel(sub *model.Subroutine) string {
	switch sub.Kind {
	case model.SubroutineStart:
		return "main"
	case model.SubroutineGlobal:
		return "globals"
	default:
		return ""
	}
}

// JumpDestination synthesizes a label for a bare address
// (format_jump_destination, §6). The DOT and NSS writers and Signature
// fall back to it when InstructionLabel or SubroutineLabel returns "";
// the listing and assembly writers print no label line in that case.
func JumpDestination(addr uint32) string {
	return "loc_" + Addr8(addr)
}
