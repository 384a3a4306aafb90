// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nwscript-tools/ncsdis/model"
)

func okProgram() *model.Program {
	return &model.Program{
		Instructions: []model.Instruction{
			{Address: 0, Opcode: model.OpRETN, Follower: model.NoInstruction, Block: 0},
		},
		Blocks: []model.Block{
			{Entry: 0, Instructions: []model.InstructionID{0}, SubRoutine: 0},
		},
		Subroutines: []model.Subroutine{
			{Entry: 0, Blocks: []model.BlockID{0}, Returns: []model.BlockID{0}},
		},
	}
}

func TestValidateAcceptsWellFormedProgram(t *testing.T) {
	require.NoError(t, model.Validate(okProgram()))
}

func TestValidateRejectsEdgeArityMismatch(t *testing.T) {
	p := okProgram()
	p.Blocks[0].Children = []model.BlockID{0}
	p.Blocks[0].ChildrenTypes = nil

	err := model.Validate(p)
	require.Error(t, err)
	require.Contains(t, err.Error(), "childrenTypes")
}

func TestValidateRejectsInstructionOwnerMismatch(t *testing.T) {
	p := okProgram()
	p.Instructions[0].Block = 1

	err := model.Validate(p)
	require.Error(t, err)
	require.Contains(t, err.Error(), "does not contain it")
}

func TestValidateRejectsMultipleReturns(t *testing.T) {
	p := okProgram()
	p.Subroutines[0].Returns = []model.BlockID{0, 0}

	err := model.Validate(p)
	require.Error(t, err)
	require.Contains(t, err.Error(), "return blocks")
}

func TestValidateRejectsStackWithoutAnalysis(t *testing.T) {
	p := okProgram()
	p.HasStackAnalysis = false
	p.Instructions[0].Stack = []model.VariableID{0}

	err := model.Validate(p)
	require.Error(t, err)
	require.Contains(t, err.Error(), "stack/variables populated")
}
