// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import "fmt"

// EdgeArityMismatchError is returned by Validate when a Block's
// Children and ChildrenTypes slices have different lengths (§3's
// first invariant).
type EdgeArityMismatchError struct {
	Block         BlockID
	Children      int
	ChildrenTypes int
}

func (e EdgeArityMismatchError) Error() string {
	return fmt.Sprintf("block %d: %d children but %d childrenTypes", e.Block, e.Children, e.ChildrenTypes)
}

// InstructionOwnerError is returned when an instruction's owning
// Block doesn't list it (§3's "every Instruction belongs to exactly
// one Block" invariant).
type InstructionOwnerError struct {
	Instruction InstructionID
	Block       BlockID
}

func (e InstructionOwnerError) Error() string {
	return fmt.Sprintf("instruction %d: owning block %d does not contain it", e.Instruction, e.Block)
}

// BlockOwnerError is returned when a Block's SubRoutine doesn't list
// it (§3's "every Block belongs to exactly one Subroutine"
// invariant, excepting unreachable blocks).
type BlockOwnerError struct {
	Block      BlockID
	Subroutine SubroutineID
}

func (e BlockOwnerError) Error() string {
	return fmt.Sprintf("block %d: owning subroutine %d does not contain it", e.Block, e.Subroutine)
}

// MultipleReturnsError is returned when a Subroutine has more than
// one return block (§4.6.1's "|sub.returns| <= 1" assertion).
type MultipleReturnsError struct {
	Subroutine SubroutineID
	Count      int
}

func (e MultipleReturnsError) Error() string {
	return fmt.Sprintf("subroutine %d: %d return blocks, want at most 1", e.Subroutine, e.Count)
}

// StackWithoutAnalysisError is returned when an Instruction carries
// stack/variable annotations despite Program.HasStackAnalysis being
// false, or its owning Subroutine not having finished analysis (§3's
// third invariant).
type StackWithoutAnalysisError struct {
	Instruction InstructionID
}

func (e StackWithoutAnalysisError) Error() string {
	return fmt.Sprintf("instruction %d: stack/variables populated without finished stack analysis", e.Instruction)
}
