// Copyright 2018 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emitter

import (
	"github.com/nwscript-tools/ncsdis/format"
	"github.com/nwscript-tools/ncsdis/model"
)

// CreateListing renders the listing view (§4.2): address, raw bytes,
// mnemonic, with an optional per-instruction stack dump.
func (e *Emitter) CreateListing(printStack bool) error {
	e.writeListingOrAssembly(printStack, true)
	return e.w.Flush()
}

// CreateAssembly renders the assembly view (§4.2): mnemonics only, no
// addresses or bytes.
func (e *Emitter) CreateAssembly(printStack bool) error {
	e.writeListingOrAssembly(printStack, false)
	return e.w.Flush()
}

func (e *Emitter) writeListingOrAssembly(printStack, withAddrAndBytes bool) {
	e.writeInfo()
	e.writeEngineTypes()

	for i := range e.prog.Instructions {
		instr := &e.prog.Instructions[i]

		if label := format.InstructionLabel(e.prog, instr); label != "" {
			e.w.WriteString(label + ":")
			if sig := e.instructionSignature(instr); sig != "" {
				e.w.WriteString(" ; " + sig)
			}
			e.w.WriteString("\n")
		}

		if e.prog.HasStackAnalysis && printStack {
			e.writeStackDump(instr, 36)
		}

		if withAddrAndBytes {
			e.w.Printf("  %s %-26s %s\n", format.Addr8(instr.Address), format.Bytes(instr), format.Instruction(instr, e.prog.Game))
		} else {
			e.w.Printf("  %s\n", format.Instruction(instr, e.prog.Game))
		}

		if instr.Follower == model.NoInstruction {
			if withAddrAndBytes {
				e.w.WriteString("  -------- -------------------------- ---\n")
			} else {
				e.w.WriteString("\n")
			}
		}
	}
}

// subroutineSignature implements §4.3's signature helper for a
// Subroutine: empty unless stack analysis is both present and
// finished, and the subroutine isn't one of the kinds that never gets
// a reconstructed signature (Start/Global/StoreState never correspond
// to a user-written function).
func (e *Emitter) subroutineSignature(subID model.SubroutineID) string {
	sub := e.prog.Subroutine(subID)
	if !e.prog.HasStackAnalysis {
		return ""
	}
	switch sub.Kind {
	case model.SubroutineStart, model.SubroutineGlobal, model.SubroutineStoreState:
		return ""
	}
	if sub.State != model.AnalysisFinished {
		return ""
	}
	return format.Signature(e.prog, subID, e.prog.Game, true)
}

// instructionSignature implements §4.3's signature helper for an
// Instruction: delegates to subroutineSignature when instr is a
// subroutine-entry instruction with a resolved owning Block/
// Subroutine, else "".
func (e *Emitter) instructionSignature(instr *model.Instruction) string {
	if instr.AddressKind != model.AddressSubRoutine {
		return ""
	}
	if instr.Block == model.NoBlock {
		return ""
	}
	block := e.prog.Block(instr.Block)
	if block.SubRoutine == model.NoSubroutine {
		return ""
	}
	return e.subroutineSignature(block.SubRoutine)
}
