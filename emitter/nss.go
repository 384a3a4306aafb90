// Copyright 2018 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emitter

import (
	"fmt"
	"strings"

	"github.com/nwscript-tools/ncsdis/format"
	"github.com/nwscript-tools/ncsdis/model"
)

// nssBinOps gives the C-style operator spelling for the opcodes
// §4.6.3 renders as "v0 op v1" (format_signature's sibling table for
// binary operators, grounded on validate/vm.go's opcode-dispatch
// idiom — generalized from stack-effect simulation to source-text
// rendering).
var nssBinOps = map[model.Opcode]string{
	model.OpLOGAND: "&&",
	model.OpLOGOR:  "||",
	model.OpEQ:     "==",
	model.OpLEQ:    "<=",
	model.OpLT:     "<",
	model.OpGEQ:    ">=",
	model.OpGT:     ">",
}

// CreateNss renders the best-effort NSS reconstruction (§4.6): this
// is explicitly partial (§1 Non-goals) — it never claims to produce
// compilable source, only a readable approximation.
func (e *Emitter) CreateNss() error {
	e.w.WriteString("// Decompiled using ncsdis\n\n")

	for _, gid := range e.prog.Globals {
		v := e.prog.Variable(gid)
		e.w.Printf("%s %s\n", format.VariableTypeName(v.Type, e.prog.Game), format.VariableName(v))
	}

	for i := range e.prog.Subroutines {
		e.writeNSSSubroutine(model.SubroutineID(i))
	}

	return e.w.Flush()
}

func (e *Emitter) writeNSSSubroutine(subID model.SubroutineID) {
	sub := e.prog.Subroutine(subID)
	if len(sub.Blocks) == 0 {
		return
	}
	if len(sub.Returns) > 1 {
		// §4.6.1's at-most-one-return assertion: stop writing and
		// report the violation through the sticky writer error.
		if e.w.err == nil {
			e.w.err = model.MultipleReturnsError{Subroutine: subID, Count: len(sub.Returns)}
		}
		return
	}

	sig := format.Signature(e.prog, subID, e.prog.Game, true)
	e.w.Printf("\n\n%s {\n", sig)
	e.writeNSSBlock(sub.EntryBlock(), 1)
	e.w.WriteString("}\n")
}

// writeNSSBlock reconstructs block at the given tab-indent level
// (§4.6.2): instructions, then a subroutine-call dispatch, then any
// control-structure annotations.
func (e *Emitter) writeNSSBlock(blockID model.BlockID, indent int) {
	block := e.prog.Block(blockID)
	tabs := strings.Repeat("\t", indent)

	for _, instrID := range block.Instructions {
		e.writeNSSInstruction(e.prog.Instruction(instrID), indent)
	}

	for _, kind := range block.ChildrenTypes {
		if !format.IsSubroutineCall(kind) || len(block.Children) < 2 {
			continue
		}

		calleeBlock := e.prog.Block(block.Children[0])
		callee := e.prog.Subroutine(calleeBlock.SubRoutine)
		calleeLabel := format.SubroutineLabel(callee)
		if calleeLabel == "" {
			calleeLabel = format.JumpDestination(callee.Entry)
		}

		last := e.prog.Instruction(block.LastInstruction())
		names := make([]string, len(last.Variables))
		for j, vid := range last.Variables {
			names[j] = format.VariableName(e.prog.Variable(vid))
		}

		e.w.Printf("%s%s(%s);\n", tabs, calleeLabel, strings.Join(names, ", "))
		e.writeNSSBlock(block.Children[1], indent)
		break
	}

	for _, cs := range block.Controls {
		switch cs.Kind {
		case model.ControlReturn:
			e.writeNSSReturn(cs, indent)
		case model.ControlIfCond:
			e.writeNSSIf(cs, indent)
		}
	}
}

// writeNSSReturn implements §4.6.2's Return arm. The stack-emptiness
// check and the value's source instruction are deliberately taken
// from different ends of retn: the check reads retn's last
// instruction, the value reads retn's first — mirroring the
// contract's literal wording, not a simplification of it.
func (e *Emitter) writeNSSReturn(cs model.ControlStructure, indent int) {
	tabs := strings.Repeat("\t", indent)
	retn := e.prog.Block(cs.Retn)

	if len(retn.Instructions) > 0 {
		last := e.prog.Instruction(retn.LastInstruction())
		if len(last.Stack) > 0 {
			first := e.prog.Instruction(retn.Instructions[0])
			v := e.prog.Variable(first.Variables[0])
			e.w.Printf("%sreturn %s;\n", tabs, format.VariableName(v))
			return
		}
	}
	e.w.Printf("%sreturn;\n", tabs)
}

// writeNSSIf implements §4.6.4's if/else/next reconstruction.
func (e *Emitter) writeNSSIf(cs model.ControlStructure, indent int) {
	tabs := strings.Repeat("\t", indent)

	cond := e.prog.Block(cs.IfCond)
	last := e.prog.Instruction(cond.LastInstruction())
	condName := format.VariableName(e.prog.Variable(last.Variables[0]))

	e.w.Printf("%sif (%s) {\n", tabs, condName)
	e.writeNSSBlock(cs.IfTrue, indent+1)
	e.w.Printf("%s}", tabs)

	if cs.IfElse != model.NoBlock {
		e.w.WriteString(" else {\n")
		e.writeNSSBlock(cs.IfElse, indent+1)
		e.w.Printf("%s}", tabs)
	}
	e.w.WriteString("\n")

	if cs.IfNext != model.NoBlock {
		e.writeNSSBlock(cs.IfNext, indent)
	}
}

// writeNSSInstruction renders a single instruction's NSS line
// (§4.6.3); opcodes outside the table contribute nothing.
func (e *Emitter) writeNSSInstruction(instr *model.Instruction, indent int) {
	tabs := strings.Repeat("\t", indent)
	game := e.prog.Game

	switch instr.Opcode {
	case model.OpCONST:
		v0 := e.prog.Variable(instr.Variables[0])
		e.w.Printf("%s%s %s = %s;\n", tabs, format.VariableTypeName(v0.Type, game), format.VariableName(v0), format.InstructionData(instr))

	case model.OpACTION:
		p := argInt(instr.Args[1])
		var b strings.Builder
		b.WriteString(tabs)
		if len(instr.Variables) > p {
			ret := e.prog.Variable(instr.Variables[p])
			fmt.Fprintf(&b, "%s %s = ", format.VariableTypeName(ret.Type, game), format.VariableName(ret))
		}
		names := make([]string, 0, p)
		for i := 0; i < p && i < len(instr.Variables); i++ {
			names = append(names, format.VariableName(e.prog.Variable(instr.Variables[i])))
		}
		fnName := format.FunctionName(game, argUint32(instr.Args[0]))
		fmt.Fprintf(&b, "%s(%s);\n", fnName, strings.Join(names, ", "))
		e.w.WriteString(b.String())

	case model.OpCPDOWNBP, model.OpCPDOWNSP, model.OpCPTOPBP, model.OpCPTOPSP:
		v0 := e.prog.Variable(instr.Variables[0])
		v1 := e.prog.Variable(instr.Variables[1])
		e.w.Printf("%s%s %s = %s;\n", tabs, format.VariableTypeName(v1.Type, game), format.VariableName(v1), format.VariableName(v0))

	case model.OpNOT:
		v0 := e.prog.Variable(instr.Variables[0])
		r := e.prog.Variable(instr.Variables[2])
		e.w.Printf("%s%s %s = !%s;\n", tabs, format.VariableTypeName(r.Type, game), format.VariableName(r), format.VariableName(v0))

	case model.OpRSADD:
		v0 := e.prog.Variable(instr.Variables[0])
		e.w.Printf("%s%s %s = %s;\n", tabs, format.VariableTypeName(v0.Type, game), format.VariableName(v0), zeroLiteral(v0.Type))

	default:
		if op, ok := nssBinOps[instr.Opcode]; ok {
			v0 := e.prog.Variable(instr.Variables[0])
			v1 := e.prog.Variable(instr.Variables[1])
			r := e.prog.Variable(instr.Variables[2])
			e.w.Printf("%s%s %s = %s %s %s;\n", tabs, format.VariableTypeName(r.Type, game), format.VariableName(r), format.VariableName(v0), op, format.VariableName(v1))
		}
	}
}

// zeroLiteral gives RSADD's default-initialiser spelling (§4.6.3).
// Object/engine types default to 0 pending a typed-default design
// decision (§9 open question); implementations should not read
// significance into that choice beyond "not yet designed".
func zeroLiteral(typ model.VariableType) string {
	switch typ {
	case model.VariableTypeString:
		return `""`
	case model.VariableTypeInt:
		return "0"
	case model.VariableTypeFloat:
		return "0.0"
	default:
		return "0"
	}
}

func argInt(v interface{}) int {
	switch t := v.(type) {
	case int:
		return t
	case int8:
		return int(t)
	case int16:
		return int(t)
	case int32:
		return int(t)
	case int64:
		return int(t)
	case uint:
		return int(t)
	case uint8:
		return int(t)
	case uint16:
		return int(t)
	case uint32:
		return int(t)
	case uint64:
		return int(t)
	default:
		return 0
	}
}

func argUint32(v interface{}) uint32 {
	return uint32(argInt(v))
}
