// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package format implements the pure helper functions consumed by
// package emitter: opcode-to-mnemonic formatting, engine-type and
// function-name tables, and label/name formatting. Per spec §1/§6,
// this is "external collaborator" territory — the contracts the
// Emitter depends on, not a description of how a real decode/analysis
// pass would build its tables. The tables here are deliberately
// representative of NWScript rather than exhaustive: populating the
// complete BioWare per-game function tables is the analysis layer's
// job.
package format

import "github.com/nwscript-tools/ncsdis/model"

// Op describes one NWScript operator: its mnemonic and stack effect.
// Grounded on wasm/operators' newOp(code, name, args, returns) table
// idiom.
type Op struct {
	Mnemonic string
	Args     int // number of stack operands consumed
	Returns  int // number of stack operands produced
}

var opTable = map[model.Opcode]Op{
	model.OpNOP:            {"NOP", 0, 0},
	model.OpCPDOWNSP:       {"CPDOWNSP", 1, 1},
	model.OpRSADD:          {"RSADD", 0, 1},
	model.OpCPTOPSP:        {"CPTOPSP", 0, 1},
	model.OpCONST:          {"CONST", 0, 1},
	model.OpACTION:         {"ACTION", 0, 0}, // arity is per-call; see format_instruction
	model.OpLOGAND:         {"LOGANDII", 2, 1},
	model.OpLOGOR:          {"LOGORII", 2, 1},
	model.OpINCOR:          {"INCORII", 2, 1},
	model.OpEXCOR:          {"EXCORII", 2, 1},
	model.OpBOOLAND:        {"BOOLANDII", 2, 1},
	model.OpEQ:             {"EQUAL", 2, 1},
	model.OpNEQ:            {"NEQUAL", 2, 1},
	model.OpGEQ:            {"GEQ", 2, 1},
	model.OpGT:             {"GT", 2, 1},
	model.OpLT:             {"LT", 2, 1},
	model.OpLEQ:            {"LEQ", 2, 1},
	model.OpSHLEFT:         {"SHLEFTII", 2, 1},
	model.OpSHRIGHT:        {"SHRIGHTII", 2, 1},
	model.OpUSHRIGHT:       {"USHRIGHTII", 2, 1},
	model.OpMOD:            {"MODII", 2, 1},
	model.OpNEG:            {"NEGI", 1, 1},
	model.OpCOMP:           {"COMPI", 1, 1},
	model.OpMOVSP:          {"MOVSP", 0, 0},
	model.OpSTORE_STATEALL: {"STORE_STATEALL", 0, 0},
	model.OpJMP:            {"JMP", 0, 0},
	model.OpJSR:            {"JSR", 0, 0},
	model.OpJZ:             {"JZ", 1, 0},
	model.OpRETN:           {"RETN", 0, 0},
	model.OpDESTRUCT:       {"DESTRUCT", 0, 0},
	model.OpNOT:            {"NOTI", 1, 1},
	model.OpDECISP:         {"DECISP", 0, 0},
	model.OpINCISP:         {"INCISP", 0, 0},
	model.OpJNZ:            {"JNZ", 1, 0},
	model.OpCPDOWNBP:       {"CPDOWNBP", 1, 1},
	model.OpCPTOPBP:        {"CPTOPBP", 0, 1},
	model.OpDECIBP:         {"DECIBP", 0, 0},
	model.OpINCIBP:         {"INCIBP", 0, 0},
	model.OpSAVEBP:         {"SAVEBP", 0, 0},
	model.OpRESTOREBP:      {"RESTOREBP", 0, 0},
	model.OpSTORE_STATE:    {"STORESTATE", 0, 0},
	model.OpADD:            {"ADDII", 2, 1},
	model.OpSUB:            {"SUBII", 2, 1},
	model.OpMUL:            {"MULII", 2, 1},
	model.OpDIV:            {"DIVII", 2, 1},
}

// Lookup returns the Op table entry for code, and whether it was
// found. An unknown opcode (never emitted by a conforming analysis
// pass, but not assumed impossible by this package) reports ok=false.
func Lookup(code model.Opcode) (Op, bool) {
	op, ok := opTable[code]
	return op, ok
}
