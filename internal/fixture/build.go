// Copyright 2018 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fixture builds small, well-formed model.Program values for
// tests across the model, format, and emitter packages. It plays the
// role disasm.go's stack-depth-tracking walk and validate/vm.go's
// mockVM played for the teacher's test suite: a hand-rollable program
// shape, without needing a real bytecode decoder or analysis pass.
package fixture

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/nwscript-tools/ncsdis/model"
)

// Builder assembles a model.Program one entity at a time. Zero value
// is ready to use.
type Builder struct {
	prog model.Program
}

// NewBuilder returns an empty Builder targeting game.
func NewBuilder(game model.Game) *Builder {
	return &Builder{prog: model.Program{Game: game}}
}

// Instruction appends instr and returns its id.
func (b *Builder) Instruction(instr model.Instruction) model.InstructionID {
	id := model.InstructionID(len(b.prog.Instructions))
	b.prog.Instructions = append(b.prog.Instructions, instr)
	return id
}

// Block appends block and returns its id.
func (b *Builder) Block(block model.Block) model.BlockID {
	id := model.BlockID(len(b.prog.Blocks))
	b.prog.Blocks = append(b.prog.Blocks, block)
	return id
}

// Subroutine appends sub and returns its id.
func (b *Builder) Subroutine(sub model.Subroutine) model.SubroutineID {
	id := model.SubroutineID(len(b.prog.Subroutines))
	b.prog.Subroutines = append(b.prog.Subroutines, sub)
	return id
}

// Variable appends a Variable of typ created by creator and returns
// its id; the returned id is also stamped onto the stored Variable's
// ID field.
func (b *Builder) Variable(typ model.VariableType, creator model.InstructionID) model.VariableID {
	id := model.VariableID(len(b.prog.Variables))
	b.prog.Variables = append(b.prog.Variables, model.Variable{
		ID:       id,
		Type:     typ,
		Creator:  creator,
		Siblings: mapset.NewThreadUnsafeSet[model.VariableID](),
	})
	return id
}

// WithStackAnalysis marks the program as carrying finished stack
// analysis.
func (b *Builder) WithStackAnalysis() *Builder {
	b.prog.HasStackAnalysis = true
	return b
}

// WithGlobals sets the program's global-variable order.
func (b *Builder) WithGlobals(ids ...model.VariableID) *Builder {
	b.prog.Globals = ids
	return b
}

// WithSize sets the program's total byte size, otherwise left 0.
func (b *Builder) WithSize(n uint32) *Builder {
	b.prog.Size = n
	return b
}

// Build returns the assembled Program. The Builder remains usable
// afterward; callers that mutate the result should not reuse the
// Builder for an unrelated program.
func (b *Builder) Build() *model.Program {
	p := b.prog
	return &p
}

// SingleReturn returns a minimal one-instruction, one-block,
// one-subroutine program: a bare `RETN` at address 0, the smallest
// shape that satisfies every §3 invariant.
func SingleReturn() *model.Program {
	b := NewBuilder(model.GameUnknown)
	instr := b.Instruction(model.Instruction{Address: 0, Opcode: model.OpRETN, Follower: model.NoInstruction})
	block := b.Block(model.Block{Entry: 0, Instructions: []model.InstructionID{instr}})
	b.Subroutine(model.Subroutine{Entry: 0, Blocks: []model.BlockID{block}, Returns: []model.BlockID{block}})
	b.prog.Size = 1
	b.prog.Blocks[block].SubRoutine = 0
	return b.Build()
}
