// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package model defines the read-only program representation the
// emitter package renders: an immutable sequence of decoded NWScript
// instructions, their basic-block/control-flow graph, subroutine
// boundaries, and optional stack-analysis annotations. Nothing in
// this package decodes bytecode or infers control flow — both are
// assumed pre-computed by an external analysis pass and simply
// arranged here as an arena of cross-referencing entities.
package model

// Game identifies which Aurora-engine game a Program was compiled
// for. It selects the function-name and engine-type tables consumed
// from package format; opcode mnemonics are the same for every game.
type Game int

const (
	GameUnknown Game = iota
	GameNWN
	GameNWN2
)

// Program is a compiled script as a whole: total byte size, the game
// it targets, and the full index spaces of instructions, blocks, and
// subroutines the analysis pass produced. All cross-references among
// Instruction, Block, Subroutine, and Variable are plain indices into
// these slices (or into Program.Variables), mirroring the
// function/global";"table index-space idiom used to cross-reference
// entities in a decoded module.
type Program struct {
	Size uint32
	Game Game

	Instructions []Instruction
	Blocks       []Block
	Subroutines  []Subroutine
	Variables    []Variable

	// Globals is the program's initial stack before main/StoryMain
	// runs: the ordered list of global Variable indices.
	Globals []VariableID

	HasStackAnalysis bool
}

// InstructionCount returns the number of decoded instructions in the
// program, used by the header banner (§4.1).
func (p *Program) InstructionCount() int { return len(p.Instructions) }

// Instruction looks up an instruction by its index-space id.
func (p *Program) Instruction(id InstructionID) *Instruction {
	return &p.Instructions[id]
}

// Block looks up a block by its index-space id.
func (p *Program) Block(id BlockID) *Block {
	return &p.Blocks[id]
}

// Subroutine looks up a subroutine by its index-space id.
func (p *Program) Subroutine(id SubroutineID) *Subroutine {
	return &p.Subroutines[id]
}

// Variable looks up a variable by its index-space id.
func (p *Program) Variable(id VariableID) *Variable {
	return &p.Variables[id]
}
