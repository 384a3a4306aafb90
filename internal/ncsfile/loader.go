// Copyright 2018 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ncsfile

import (
	"os"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/edsrzf/mmap-go"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/nwscript-tools/ncsdis/model"
)

var logger = newLogger()

// Load reads the analysis layer's program dump at path, decodes it,
// and returns a validated model.Program. Grounded on wasm.ReadModule's
// "read then validate before handing back" shape, adapted from a
// streaming binary decode to a single mmap'd JSON blob since the
// program dump here is a flat index-space snapshot rather than a
// section-by-section wire format.
func Load(path string) (*model.Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "ncsfile: could not open %q", path)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, errors.Wrapf(err, "ncsfile: could not stat %q", path)
	}

	if fi.Size() == 0 {
		return nil, errors.Errorf("ncsfile: %q is empty", path)
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, errors.Wrapf(err, "ncsfile: could not mmap %q", path)
	}
	defer m.Unmap()

	var dto fileDTO
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(m, &dto); err != nil {
		return nil, errors.Wrapf(err, "ncsfile: could not decode %q", path)
	}

	logger.Printf("decoded %q: %d instructions, %d blocks, %d subroutines", path, len(dto.Instructions), len(dto.Blocks), len(dto.Subroutines))

	prog := fromDTO(&dto)
	if err := model.Validate(prog); err != nil {
		return nil, errors.Wrapf(err, "ncsfile: %q failed validation", path)
	}
	return prog, nil
}

func fromDTO(dto *fileDTO) *model.Program {
	prog := &model.Program{
		Size:             dto.Size,
		Game:             model.Game(dto.Game),
		HasStackAnalysis: dto.HasStackAnalysis,
	}

	prog.Instructions = make([]model.Instruction, len(dto.Instructions))
	for i, d := range dto.Instructions {
		prog.Instructions[i] = model.Instruction{
			Address:     d.Address,
			Opcode:      model.Opcode(d.Opcode),
			Raw:         d.Raw,
			Args:        d.Args,
			Follower:    model.InstructionID(d.Follower),
			Branches:    toInstructionIDs(d.Branches),
			AddressKind: model.AddressKind(d.AddressKind),
			Block:       model.BlockID(d.Block),
			Stack:       toVariableIDs(d.Stack),
			Variables:   toVariableIDs(d.Variables),
		}
	}

	prog.Blocks = make([]model.Block, len(dto.Blocks))
	for i, d := range dto.Blocks {
		controls := make([]model.ControlStructure, len(d.Controls))
		for j, c := range d.Controls {
			controls[j] = model.ControlStructure{
				Kind:   model.ControlStructureKind(c.Kind),
				Retn:   model.BlockID(c.Retn),
				IfCond: model.BlockID(c.IfCond),
				IfTrue: model.BlockID(c.IfTrue),
				IfElse: model.BlockID(c.IfElse),
				IfNext: model.BlockID(c.IfNext),
			}
		}

		prog.Blocks[i] = model.Block{
			Entry:         d.Entry,
			Instructions:  toInstructionIDs(d.Instructions),
			Children:      toBlockIDs(d.Children),
			ChildrenTypes: toEdgeKinds(d.ChildrenTypes),
			SubRoutine:    model.SubroutineID(d.SubRoutine),
			Controls:      controls,
		}
	}

	prog.Subroutines = make([]model.Subroutine, len(dto.Subroutines))
	for i, d := range dto.Subroutines {
		params := make([]model.VariableType, len(d.Params))
		for j, p := range d.Params {
			params[j] = model.VariableType(p)
		}
		var ret *model.VariableType
		if d.Return != nil {
			t := model.VariableType(*d.Return)
			ret = &t
		}

		prog.Subroutines[i] = model.Subroutine{
			Entry:   d.Entry,
			Blocks:  toBlockIDs(d.Blocks),
			Returns: toBlockIDs(d.Returns),
			Kind:    model.SubroutineKind(d.Kind),
			State:   model.AnalysisState(d.State),
			Params:  params,
			Return:  ret,
		}
	}

	prog.Variables = make([]model.Variable, len(dto.Variables))
	for i, d := range dto.Variables {
		siblings := mapset.NewThreadUnsafeSet[model.VariableID]()
		for _, s := range d.Siblings {
			siblings.Add(model.VariableID(s))
		}
		prog.Variables[i] = model.Variable{
			ID:       model.VariableID(d.ID),
			Type:     model.VariableType(d.Type),
			Creator:  model.InstructionID(d.Creator),
			Siblings: siblings,
		}
	}

	prog.Globals = make([]model.VariableID, len(dto.Globals))
	for i, g := range dto.Globals {
		prog.Globals[i] = model.VariableID(g)
	}

	return prog
}

func toInstructionIDs(ids []int) []model.InstructionID {
	out := make([]model.InstructionID, len(ids))
	for i, id := range ids {
		out[i] = model.InstructionID(id)
	}
	return out
}

func toBlockIDs(ids []int) []model.BlockID {
	out := make([]model.BlockID, len(ids))
	for i, id := range ids {
		out[i] = model.BlockID(id)
	}
	return out
}

func toVariableIDs(ids []int) []model.VariableID {
	out := make([]model.VariableID, len(ids))
	for i, id := range ids {
		out[i] = model.VariableID(id)
	}
	return out
}

func toEdgeKinds(kinds []int) []model.BlockEdgeKind {
	out := make([]model.BlockEdgeKind, len(kinds))
	for i, k := range kinds {
		out[i] = model.BlockEdgeKind(k)
	}
	return out
}
