// Copyright 2018 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ncsfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nwscript-tools/ncsdis/model"
)

func writeDump(t *testing.T, dto fileDTO) string {
	t.Helper()
	b, err := json.Marshal(dto)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "prog.ncsdump")
	require.NoError(t, os.WriteFile(path, b, 0o644))
	return path
}

func singleReturnDTO() fileDTO {
	return fileDTO{
		Size: 1,
		Game: int(model.GameNWN),
		Instructions: []instructionDTO{
			{Address: 0, Opcode: byte(model.OpRETN), Follower: int(model.NoInstruction), Block: 0},
		},
		Blocks: []blockDTO{
			{Entry: 0, Instructions: []int{0}, SubRoutine: 0},
		},
		Subroutines: []subroutineDTO{
			{Entry: 0, Blocks: []int{0}, Returns: []int{0}, Kind: int(model.SubroutineStart)},
		},
	}
}

func TestLoadRoundTrip(t *testing.T) {
	path := writeDump(t, singleReturnDTO())

	prog, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, uint32(1), prog.Size)
	require.Equal(t, model.GameNWN, prog.Game)
	require.Len(t, prog.Instructions, 1)
	require.Equal(t, model.OpRETN, prog.Instructions[0].Opcode)
	require.Equal(t, model.NoInstruction, prog.Instructions[0].Follower)
	require.Len(t, prog.Subroutines, 1)
	require.Equal(t, model.SubroutineStart, prog.Subroutines[0].Kind)
}

func TestLoadRejectsEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.ncsdump")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.ncsdump"))
	require.Error(t, err)
}

func TestLoadRejectsInvariantViolation(t *testing.T) {
	dto := singleReturnDTO()
	dto.Instructions[0].Block = 7 // no such block: violates owner invariant
	path := writeDump(t, dto)

	_, err := Load(path)
	require.Error(t, err)
}
