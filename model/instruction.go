// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

// InstructionID is an index into Program.Instructions.
type InstructionID int

// NoInstruction marks the absence of an instruction reference (e.g. a
// terminator's follower).
const NoInstruction InstructionID = -1

// Opcode enumerates NWScript bytecode operators. Every operator below
// has a mnemonic in the format package's table; the NSS writer
// dispatches on only a handful of them and silently ignores the rest
// per §4.6.3's "other: nothing" row.
type Opcode byte

const (
	OpNOP Opcode = iota
	OpCPDOWNSP
	OpRSADD
	OpCPTOPSP
	OpCONST
	OpACTION
	OpLOGAND
	OpLOGOR
	OpINCOR
	OpEXCOR
	OpBOOLAND
	OpEQ
	OpNEQ
	OpGEQ
	OpGT
	OpLT
	OpLEQ
	OpSHLEFT
	OpSHRIGHT
	OpUSHRIGHT
	OpMOD
	OpNEG
	OpCOMP
	OpMOVSP
	OpSTORE_STATEALL
	OpJMP
	OpJSR
	OpJZ
	OpRETN
	OpDESTRUCT
	OpNOT
	OpDECISP
	OpINCISP
	OpJNZ
	OpCPDOWNBP
	OpCPTOPBP
	OpDECIBP
	OpINCIBP
	OpSAVEBP
	OpRESTOREBP
	OpSTORE_STATE
	OpADD
	OpSUB
	OpMUL
	OpDIV
)

// AddressKind classifies what role (if any) an instruction's address
// plays: a bare instruction, the entry point of a subroutine, the
// target of a jump, or a STORE_STATE closure entry.
type AddressKind int

const (
	AddressNone AddressKind = iota
	AddressSubRoutine
	AddressJumpTarget
	AddressStoreState
)

// Instruction is one decoded opcode in program order.
type Instruction struct {
	Address uint32
	Opcode  Opcode

	Raw  []byte
	Args []interface{}

	// Follower is the next instruction in program order, or
	// NoInstruction for a terminator (RETN, unconditional JMP with no
	// fallthrough, ...).
	Follower InstructionID

	// Branches lists every instruction this one may transfer control
	// to beyond Follower (0..n; 0 for most opcodes, 1 for JMP/JZ/JNZ,
	// n for a computed dispatch the analysis pass has resolved).
	Branches []InstructionID

	AddressKind AddressKind

	// Block is the owning basic block, set by the analysis pass.
	Block BlockID

	// Stack is the stack snapshot at this instruction (index 0 is the
	// top-of-stack-most-recent slot), populated only when
	// Program.HasStackAnalysis and the owning subroutine finished
	// analysis.
	Stack []VariableID

	// Variables lists the variables this instruction consumes or
	// produces; meaning is opcode-specific (§4.6.3).
	Variables []VariableID
}
