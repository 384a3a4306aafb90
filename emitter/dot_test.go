// Copyright 2018 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emitter_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nwscript-tools/ncsdis/emitter"
	"github.com/nwscript-tools/ncsdis/model"
)

func instrBlock(addr uint32, n int, sub model.SubroutineID) (model.Block, []model.Instruction) {
	instrs := make([]model.Instruction, n)
	ids := make([]model.InstructionID, n)
	for i := 0; i < n; i++ {
		instrs[i] = model.Instruction{Address: addr + uint32(i), Opcode: model.OpRSADD, Follower: model.NoInstruction}
		ids[i] = model.InstructionID(i)
	}
	return model.Block{Entry: addr, Instructions: ids, SubRoutine: sub}, instrs
}

// TestDotConditionalFalseBackwardEdge pins §8/E3: a ConditionalFalse
// successor at a lower address, same subroutine, colors red and
// bolds for being backward.
func TestDotConditionalFalseBackwardEdge(t *testing.T) {
	blockA, instrsA := instrBlock(0x10, 1, 0)
	blockB, instrsB := instrBlock(0x00, 1, 0)
	blockA.Children = []model.BlockID{1}
	blockA.ChildrenTypes = []model.BlockEdgeKind{model.EdgeConditionalFalse}

	prog := &model.Program{
		Size:         2,
		Game:         model.GameUnknown,
		Instructions: append(instrsA, instrsB...),
		Blocks:       []model.Block{blockA, blockB},
		Subroutines: []model.Subroutine{
			{Entry: 0x00, Blocks: []model.BlockID{0, 1}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, emitter.New(&buf, prog).CreateDot(false))
	require.Contains(t, buf.String(), "[ color=red style=bold ]")
}

// TestDotSubdivision pins §8/E4: a 25-instruction block at 0x100
// splits into three nodes joined by a dotted subdivision edge.
func TestDotSubdivision(t *testing.T) {
	block, instrs := instrBlock(0x100, 25, 0)

	prog := &model.Program{
		Size:         25,
		Game:         model.GameUnknown,
		Instructions: instrs,
		Blocks:       []model.Block{block},
		Subroutines: []model.Subroutine{
			{Entry: 0x100, Blocks: []model.BlockID{0}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, emitter.New(&buf, prog).CreateDot(false))
	out := buf.String()

	require.Contains(t, out, "b00000100_0")
	require.Contains(t, out, "b00000100_1")
	require.Contains(t, out, "b00000100_2")
	require.Contains(t, out, "b00000100_0 -> b00000100_1 -> b00000100_2 [ style=dotted ]")
}

// TestDotSubdivisionBoundaries pins §8 property 9: 10 instructions
// yield 1 node, 11 yield 2, 20 yield 2, 21 yield 3.
func TestDotSubdivisionBoundaries(t *testing.T) {
	cases := []struct {
		n     int
		nodes int
	}{
		{10, 1},
		{11, 2},
		{20, 2},
		{21, 3},
	}

	for _, c := range cases {
		block, instrs := instrBlock(0x200, c.n, 0)
		prog := &model.Program{
			Size:         uint32(c.n),
			Game:         model.GameUnknown,
			Instructions: instrs,
			Blocks:       []model.Block{block},
			Subroutines: []model.Subroutine{
				{Entry: 0x200, Blocks: []model.BlockID{0}},
			},
		}

		var buf bytes.Buffer
		require.NoError(t, emitter.New(&buf, prog).CreateDot(false))
		out := buf.String()

		for i := 0; i < c.nodes; i++ {
			require.Contains(t, out, "_"+itoa(i)+" [ shape=box")
		}
		require.NotContains(t, out, "_"+itoa(c.nodes)+" [ shape=box")

		if c.nodes == 1 {
			require.NotContains(t, out, "->")
		}
	}
}

func itoa(i int) string {
	return string(rune('0' + i))
}
