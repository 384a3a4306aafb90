// Copyright 2018 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emitter_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nwscript-tools/ncsdis/emitter"
	"github.com/nwscript-tools/ncsdis/format"
	"github.com/nwscript-tools/ncsdis/internal/fixture"
	"github.com/nwscript-tools/ncsdis/model"
)

// TestAssemblyMinimalProgram pins §8/E1: a single RETN at address 0
// with zero engine types emits the banner and exactly one line.
func TestAssemblyMinimalProgram(t *testing.T) {
	prog := fixture.SingleReturn()

	var buf bytes.Buffer
	require.NoError(t, emitter.New(&buf, prog).CreateAssembly(false))
	require.Equal(t, "; 1 bytes, 1 instructions\n\n  RETN\n\n", buf.String())
}

// TestListingSeparator pins §8/E2: the final instruction's empty
// follower always produces the listing's dashed separator line.
func TestListingSeparator(t *testing.T) {
	b := fixture.NewBuilder(model.GameUnknown)
	i0 := b.Instruction(model.Instruction{Address: 0, Opcode: model.OpRSADD, Follower: 1})
	i1 := b.Instruction(model.Instruction{Address: 1, Opcode: model.OpRETN, Follower: model.NoInstruction})
	block := b.Block(model.Block{Entry: 0, Instructions: []model.InstructionID{i0, i1}})
	b.Subroutine(model.Subroutine{Entry: 0, Blocks: []model.BlockID{block}, Returns: []model.BlockID{block}})
	prog := b.WithSize(2).Build()

	var buf bytes.Buffer
	require.NoError(t, emitter.New(&buf, prog).CreateListing(false))

	instr1 := &prog.Instructions[1]
	wantLine := fmt.Sprintf("  %s %-26s %s\n", format.Addr8(instr1.Address), format.Bytes(instr1), format.Instruction(instr1, prog.Game))
	require.Contains(t, buf.String(), wantLine+"  -------- -------------------------- ---\n")
}

// TestListingBannerSameAcrossModes pins §8 property 2: the banner is
// byte-identical regardless of which mode produced it.
func TestListingBannerSameAcrossModes(t *testing.T) {
	prog := fixture.SingleReturn()

	var listing, assembly bytes.Buffer
	require.NoError(t, emitter.New(&listing, prog).CreateListing(false))
	require.NoError(t, emitter.New(&assembly, prog).CreateAssembly(false))

	const banner = "; 1 bytes, 1 instructions\n\n"
	require.Equal(t, banner, listing.String()[:len(banner)])
	require.Equal(t, banner, assembly.String()[:len(banner)])
}

// TestNoStackDumpWithoutAnalysis pins §8 property 12: without stack
// analysis no dump is ever emitted, even when requested.
func TestNoStackDumpWithoutAnalysis(t *testing.T) {
	prog := fixture.SingleReturn()

	var buf bytes.Buffer
	require.NoError(t, emitter.New(&buf, prog).CreateListing(true))
	require.NotContains(t, buf.String(), "Stack:")
}
