// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// VariableID is an index into Program.Variables.
type VariableID int

// NoVariable marks the absence of a variable reference.
const NoVariable VariableID = -1

// VariableType enumerates the types stack analysis can infer for a
// Variable. The Engine* range is open-ended in the real format —
// get_variable_type_name(type, game) resolves anything at or above
// VariableTypeEngine0 through the game's engine-type table (§4.1).
type VariableType int

const (
	VariableTypeInt VariableType = iota
	VariableTypeFloat
	VariableTypeString
	VariableTypeObject
	VariableTypeVector
	VariableTypeEngine0
)

// Variable is a typed SSA-like stack slot inferred by stack analysis.
type Variable struct {
	ID      VariableID
	Type    VariableType
	Creator InstructionID // NoInstruction if the variable has no creating instruction

	// Siblings holds the ids of other Variables that represent the
	// same logical value at a different stack height — used only by
	// the stack dump (§4.4) to annotate a slot with its aliases.
	Siblings mapset.Set[VariableID]
}

// NewVariable returns a Variable with an initialized, empty sibling
// set.
func NewVariable(id VariableID, typ VariableType, creator InstructionID) Variable {
	return Variable{
		ID:       id,
		Type:     typ,
		Creator:  creator,
		Siblings: mapset.NewThreadUnsafeSet[VariableID](),
	}
}
