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

func TestStackDumpRendersSlotsAndSiblings(t *testing.T) {
	siblings := mapset.NewThreadUnsafeSet[model.VariableID]()
	siblings.Add(1)

	prog := &model.Program{
		Size:             1,
		Game:             model.GameUnknown,
		HasStackAnalysis: true,
		Instructions: []model.Instruction{
			{Address: 0, Opcode: model.OpRETN, Follower: model.NoInstruction, Stack: []model.VariableID{0, 1}},
		},
		Variables: []model.Variable{
			{ID: 0, Type: model.VariableTypeInt, Creator: model.NoInstruction, Siblings: siblings},
			{ID: 1, Type: model.VariableTypeString, Creator: 0, Siblings: mapset.NewThreadUnsafeSet[model.VariableID]()},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, emitter.New(&buf, prog).CreateListing(true))

	out := buf.String()
	require.Contains(t, out, "; .--- Stack: 2    ---\n")
	require.Contains(t, out, "00000000")
	require.Contains(t, out, "(1)")
	require.Contains(t, out, "; '--- ---------- ---\n")
}

func TestStackDumpSkippedWhenNotRequested(t *testing.T) {
	prog := &model.Program{
		Size:             1,
		Game:             model.GameUnknown,
		HasStackAnalysis: true,
		Instructions: []model.Instruction{
			{Address: 0, Opcode: model.OpRETN, Follower: model.NoInstruction, Stack: []model.VariableID{0}},
		},
		Variables: []model.Variable{
			{ID: 0, Type: model.VariableTypeInt, Creator: model.NoInstruction},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, emitter.New(&buf, prog).CreateListing(false))
	require.NotContains(t, buf.String(), "Stack:")
}
