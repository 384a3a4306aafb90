// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"github.com/go-stack/stack"
	"github.com/pkg/errors"
)

// Validate walks a Program checking the invariants listed in spec §3.
// These are assertions meant to catch analysis-pass bugs, not
// recoverable runtime conditions (§7): a production build may choose
// to treat a non-nil return as fatal. Each returned error is wrapped
// with github.com/pkg/errors to attach a call-stack frame (via
// github.com/go-stack/stack) identifying where validation caught the
// problem, since invariant failures can nest (e.g. a bad edge found
// while walking a subroutine that is itself inconsistent).
func Validate(p *Program) error {
	for i := range p.Blocks {
		b := &p.Blocks[i]
		if len(b.Children) != len(b.ChildrenTypes) {
			return wrap(EdgeArityMismatchError{BlockID(i), len(b.Children), len(b.ChildrenTypes)})
		}
		for _, instrID := range b.Instructions {
			instr := p.Instruction(instrID)
			if instr.Block != BlockID(i) {
				return wrap(InstructionOwnerError{instrID, BlockID(i)})
			}
			if !p.HasStackAnalysis && (len(instr.Stack) != 0 || len(instr.Variables) != 0) {
				return wrap(StackWithoutAnalysisError{instrID})
			}
		}
	}

	for i := range p.Subroutines {
		s := &p.Subroutines[i]
		if len(s.Returns) > 1 {
			return wrap(MultipleReturnsError{SubroutineID(i), len(s.Returns)})
		}
		for _, blockID := range s.Blocks {
			block := p.Block(blockID)
			if block.SubRoutine != SubroutineID(i) {
				return wrap(BlockOwnerError{blockID, SubroutineID(i)})
			}
			if p.HasStackAnalysis && s.State != AnalysisFinished {
				for _, instrID := range block.Instructions {
					instr := p.Instruction(instrID)
					if len(instr.Stack) != 0 || len(instr.Variables) != 0 {
						return wrap(StackWithoutAnalysisError{instrID})
					}
				}
			}
		}
		logger.Printf("subroutine %d: %d blocks, state=%d", i, len(s.Blocks), s.State)
	}

	return nil
}

func wrap(cause error) error {
	frame := stack.Caller(1)
	return errors.Wrapf(cause, "invariant violation at %v", frame)
}
