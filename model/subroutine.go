// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

// SubroutineID is an index into Program.Subroutines.
type SubroutineID int

// NoSubroutine marks the absence of a subroutine reference —
// unreachable blocks belong to the pseudo-subroutine of their own
// address per §3, which callers represent with NoSubroutine.
const NoSubroutine SubroutineID = -1

// SubroutineKind classifies the role a Subroutine plays in the
// program.
type SubroutineKind int

const (
	SubroutineNormal SubroutineKind = iota
	SubroutineStart
	SubroutineGlobal
	SubroutineStoreState
)

// AnalysisState tracks how far the (external) stack-analysis pass got
// with a given Subroutine.
type AnalysisState int

const (
	AnalysisNotStarted AnalysisState = iota
	AnalysisRunning
	AnalysisFinished
	AnalysisFailed
)

// Subroutine is a logical function: an entry block, every block
// reachable from it, and at most one return block (asserted by
// Validate and by the NSS writer, §4.6.1).
type Subroutine struct {
	Entry uint32

	// Blocks[0] is always the entry block.
	Blocks []BlockID

	// Returns has length 0 or 1.
	Returns []BlockID

	Kind  SubroutineKind
	State AnalysisState

	// Params and Return describe the subroutine's signature, as
	// inferred by stack analysis. Return is nil for a void
	// subroutine. Both are only meaningful once State is
	// AnalysisFinished.
	Params []VariableType
	Return *VariableType
}

// EntryBlock returns the subroutine's first (entry) block id.
func (s *Subroutine) EntryBlock() BlockID {
	return s.Blocks[0]
}
