// Copyright 2018 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ncsfile loads an analysis-layer program dump into a
// model.Program. Nothing upstream of this package's input boundary is
// this module's concern (§1): the wire format below is the contract
// the (external) bytecode decoder/stack-analysis pass is assumed to
// hand off.
package ncsfile

import "github.com/nwscript-tools/ncsdis/model"

// fileDTO mirrors model.Program's field layout (§3) as the on-disk
// JSON shape, following wasm/module.go's convention of one struct
// field per index space. Every field carries an explicit json tag
// giving its on-disk name.
type fileDTO struct {
	Size uint32 `json:"size"`
	Game int    `json:"game"`

	Instructions []instructionDTO `json:"instructions"`
	Blocks       []blockDTO       `json:"blocks"`
	Subroutines  []subroutineDTO  `json:"subroutines"`
	Variables    []variableDTO    `json:"variables"`
	Globals      []int            `json:"globals"`

	HasStackAnalysis bool `json:"hasStackAnalysis"`
}

type instructionDTO struct {
	Address     uint32        `json:"address"`
	Opcode      byte          `json:"opcode"`
	Raw         []byte        `json:"raw"`
	Args        []interface{} `json:"args"`
	Follower    int           `json:"follower"`
	Branches    []int         `json:"branches"`
	AddressKind int           `json:"addressKind"`
	Block       int           `json:"block"`
	Stack       []int         `json:"stack"`
	Variables   []int         `json:"variables"`
}

type blockDTO struct {
	Entry         uint32       `json:"entry"`
	Instructions  []int        `json:"instructions"`
	Children      []int        `json:"children"`
	ChildrenTypes []int        `json:"childrenTypes"`
	SubRoutine    int          `json:"subRoutine"`
	Controls      []controlDTO `json:"controls"`
}

type controlDTO struct {
	Kind   int `json:"kind"`
	Retn   int `json:"retn"`
	IfCond int `json:"ifCond"`
	IfTrue int `json:"ifTrue"`
	IfElse int `json:"ifElse"`
	IfNext int `json:"ifNext"`
}

type subroutineDTO struct {
	Entry   uint32 `json:"entry"`
	Blocks  []int  `json:"blocks"`
	Returns []int  `json:"returns"`
	Kind    int    `json:"kind"`
	State   int    `json:"state"`
	Params  []int  `json:"params"`
	Return  *int   `json:"return"`
}

type variableDTO struct {
	ID       int   `json:"id"`
	Type     int   `json:"type"`
	Creator  int   `json:"creator"`
	Siblings []int `json:"siblings"`
}
