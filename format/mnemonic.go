// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"fmt"
	"strings"

	"github.com/nwscript-tools/ncsdis/model"
)

// Instruction renders an instruction's mnemonic plus its operand
// values (format_instruction, §6), e.g. "CONST 3" or
// "ACTION 215 1". Unknown opcodes fall back to a numeric mnemonic so
// the listing/assembly writers never silently drop an instruction.
func Instruction(instr *model.Instruction, game model.Game) string {
	op, ok := Lookup(instr.Opcode)
	name := op.Mnemonic
	if !ok {
		name = fmt.Sprintf("OP_%02X", byte(instr.Opcode))
	}
	if len(instr.Args) == 0 {
		return name
	}
	parts := make([]string, 0, len(instr.Args)+1)
	parts = append(parts, name)
	for _, a := range instr.Args {
		parts = append(parts, fmt.Sprint(a))
	}
	return strings.Join(parts, " ")
}

// InstructionData renders a CONST instruction's literal operand
// (format_instruction_data, §6): the value itself, quoted if it is a
// string.
func InstructionData(instr *model.Instruction) string {
	if len(instr.Args) == 0 {
		return ""
	}
	switch v := instr.Args[0].(type) {
	case string:
		return fmt.Sprintf("%q", v)
	default:
		return fmt.Sprint(v)
	}
}
