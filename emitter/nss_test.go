// Copyright 2018 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emitter_test

import (
	"bytes"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/require"

	"github.com/nwscript-tools/ncsdis/emitter"
	"github.com/nwscript-tools/ncsdis/model"
)

func intVar(id model.VariableID) model.Variable {
	return model.Variable{ID: id, Type: model.VariableTypeInt, Creator: model.NoInstruction, Siblings: mapset.NewThreadUnsafeSet[model.VariableID]()}
}

// TestNssIfElse pins §8/E5.
func TestNssIfElse(t *testing.T) {
	// var3 (id 3) drives the condition; each branch assigns i5 (id 5).
	condInstr := model.Instruction{Address: 0, Opcode: model.OpJZ, Variables: []model.VariableID{3}, Follower: 1}
	trueInstr := model.Instruction{Address: 1, Opcode: model.OpCONST, Variables: []model.VariableID{5}, Args: []interface{}{1}, Follower: model.NoInstruction}
	elseInstr := model.Instruction{Address: 2, Opcode: model.OpCONST, Variables: []model.VariableID{5}, Args: []interface{}{2}, Follower: model.NoInstruction}

	condBlock := model.Block{Entry: 0, Instructions: []model.InstructionID{0}}
	trueBlock := model.Block{Entry: 1, Instructions: []model.InstructionID{1}}
	elseBlock := model.Block{Entry: 2, Instructions: []model.InstructionID{2}}

	condBlock.Controls = []model.ControlStructure{
		{Kind: model.ControlIfCond, IfCond: 0, IfTrue: 1, IfElse: 2, IfNext: model.NoBlock},
	}

	prog := &model.Program{
		Instructions: []model.Instruction{condInstr, trueInstr, elseInstr},
		Blocks:       []model.Block{condBlock, trueBlock, elseBlock},
		Subroutines: []model.Subroutine{
			{Entry: 0, Blocks: []model.BlockID{0, 1, 2}},
		},
		Variables: []model.Variable{
			intVar(0), intVar(1), intVar(2), intVar(3),
			{ID: 4, Type: model.VariableTypeInt, Creator: model.NoInstruction},
			intVar(5),
		},
	}

	var buf bytes.Buffer
	e := emitter.New(&buf, prog)
	require.NoError(t, e.CreateNss())

	require.Contains(t, buf.String(), "\tif (i3) {\n\t\tint i5 = 1;\n\t} else {\n\t\tint i5 = 2;\n\t}\n")
}

// TestNssSubroutineCall pins §8/E6.
func TestNssSubroutineCall(t *testing.T) {
	calleeEntry := model.Block{Entry: 0x10, Instructions: []model.InstructionID{}}
	callerLast := model.Instruction{Address: 0, Opcode: model.OpJSR, Variables: []model.VariableID{0, 1}, Follower: model.NoInstruction}
	fallthroughInstr := model.Instruction{Address: 1, Opcode: model.OpRETN, Follower: model.NoInstruction}

	callerBlock := model.Block{
		Entry:         0,
		Instructions:  []model.InstructionID{0},
		Children:      []model.BlockID{0, 2},
		ChildrenTypes: []model.BlockEdgeKind{model.EdgeSubRoutineCall, model.EdgeSubRoutineTail},
	}
	fallthroughBlock := model.Block{Entry: 1, Instructions: []model.InstructionID{1}}

	prog := &model.Program{
		Instructions: []model.Instruction{callerLast, fallthroughInstr},
		Blocks:       []model.Block{calleeEntry, callerBlock, fallthroughBlock},
		Subroutines: []model.Subroutine{
			{Entry: 0x10, Blocks: []model.BlockID{0}, Kind: model.SubroutineNormal},
			{Entry: 0, Blocks: []model.BlockID{1, 2}},
		},
		Variables: []model.Variable{intVar(0), intVar(1)},
	}
	prog.Blocks[0].SubRoutine = 0
	prog.Blocks[1].SubRoutine = 1
	prog.Blocks[2].SubRoutine = 1

	var buf bytes.Buffer
	e := emitter.New(&buf, prog)
	require.NoError(t, e.CreateNss())

	require.Contains(t, buf.String(), "\tloc_00000010(i0, i1);\n")

	// Subroutine 0 here (entry 0x10) reuses the SubroutineID that
	// TestNssIfElse's program assigns to a *different* subroutine
	// (entry 0x00); a signature cache keyed on bare SubroutineID would
	// return that other test's stale, wrong header for this one.
	require.Contains(t, buf.String(), "void loc_00000010() {\n")
}

// TestNotReadsThirdVariableSlot pins the §9 open question: NOT reads
// variables[2], not variables[1].
func TestNotReadsThirdVariableSlot(t *testing.T) {
	instr := model.Instruction{Address: 0, Opcode: model.OpNOT, Variables: []model.VariableID{0, 1, 2}, Follower: model.NoInstruction}
	block := model.Block{Entry: 0, Instructions: []model.InstructionID{0}}

	prog := &model.Program{
		Instructions: []model.Instruction{instr},
		Blocks:       []model.Block{block},
		Subroutines: []model.Subroutine{
			{Entry: 0, Blocks: []model.BlockID{0}},
		},
		Variables: []model.Variable{intVar(0), intVar(1), intVar(2)},
	}

	var buf bytes.Buffer
	require.NoError(t, emitter.New(&buf, prog).CreateNss())
	require.Contains(t, buf.String(), "i2 = !i0;")
}
