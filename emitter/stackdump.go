// Copyright 2018 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emitter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nwscript-tools/ncsdis/format"
	"github.com/nwscript-tools/ncsdis/model"
)

// writeStackDump renders instr's stack snapshot (§4.4), every line
// prefixed by indent spaces. Slot index 0 is the top-of-stack-most-
// recent convention the (external) stack-analysis pass uses.
func (e *Emitter) writeStackDump(instr *model.Instruction, indent int) {
	pad := strings.Repeat(" ", indent)
	d := len(instr.Stack)

	e.w.Printf("%s; .--- Stack: %-4d ---\n", pad, d)
	for slot, varID := range instr.Stack {
		v := e.prog.Variable(varID)

		addr := "00000000"
		if v.Creator != model.NoInstruction {
			addr = format.Addr8Upper(e.prog.Instruction(v.Creator).Address)
		}

		line := fmt.Sprintf("%s; | %4d - %6d: %8s (%s)", pad, slot, int(v.ID), strings.ToLower(format.VariableTypeName(v.Type, e.prog.Game)), addr)

		if v.Siblings != nil && v.Siblings.Cardinality() > 0 {
			ids := make([]string, 0, v.Siblings.Cardinality())
			for id := range v.Siblings.Iter() {
				ids = append(ids, strconv.Itoa(int(id)))
			}
			line += " (" + strings.Join(ids, ",") + ")"
		}

		e.w.WriteString(line + "\n")
	}
	e.w.Printf("%s; '--- ---------- ---\n", pad)
}
