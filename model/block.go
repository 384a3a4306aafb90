// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

// BlockID is an index into Program.Blocks.
type BlockID int

// NoBlock marks the absence of a block reference.
const NoBlock BlockID = -1

// BlockEdgeKind classifies a CFG edge out of a Block.
type BlockEdgeKind int

const (
	EdgeUnconditional BlockEdgeKind = iota
	EdgeConditionalTrue
	EdgeConditionalFalse
	EdgeSubRoutineCall
	EdgeSubRoutineTail
	EdgeSubRoutineStore
	EdgeDead
)

// ControlStructureKind enumerates the high-level constructs the
// analysis pass may have recovered for a block.
type ControlStructureKind int

const (
	ControlNone ControlStructureKind = iota
	ControlDoWhileHead
	ControlDoWhileTail
	ControlDoWhileNext
	ControlWhileHead
	ControlWhileTail
	ControlWhileNext
	ControlBreak
	ControlContinue
	ControlReturn
	ControlIfCond
	ControlIfTrue
	ControlIfElse
	ControlIfNext
)

// ControlStructure is one control-flow annotation on a Block. Only
// the fields relevant to Kind are meaningful: Retn for
// ControlReturn, and IfCond/IfTrue/IfElse/IfNext for ControlIfCond.
type ControlStructure struct {
	Kind ControlStructureKind

	Retn BlockID

	IfCond BlockID
	IfTrue BlockID
	IfElse BlockID // NoBlock if absent
	IfNext BlockID // NoBlock if absent
}

// Block is a maximal straight-line instruction run ending at a
// terminator or join point.
type Block struct {
	Entry uint32

	Instructions []InstructionID

	// Children and ChildrenTypes are parallel: len(Children) ==
	// len(ChildrenTypes) is a Program invariant (§3).
	Children      []BlockID
	ChildrenTypes []BlockEdgeKind

	SubRoutine SubroutineID

	Controls []ControlStructure
}

// LastInstruction returns the block's final instruction id, or
// NoInstruction for an empty block.
func (b *Block) LastInstruction() InstructionID {
	if len(b.Instructions) == 0 {
		return NoInstruction
	}
	return b.Instructions[len(b.Instructions)-1]
}
