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

const dotPreamble = "digraph {\n  overlap=false\n  concentrate=true\n  splines=ortho\n\n"

// edgeColors maps a BlockEdgeKind to its GraphViz color (§4.5.3).
var edgeColors = map[model.BlockEdgeKind]string{
	model.EdgeUnconditional:    "blue",
	model.EdgeConditionalTrue:  "green",
	model.EdgeConditionalFalse: "red",
	model.EdgeSubRoutineCall:   "cyan",
	model.EdgeSubRoutineTail:   "orange",
	model.EdgeSubRoutineStore:  "purple",
	model.EdgeDead:             "gray40",
}

var controlTags = map[model.ControlStructureKind]string{
	model.ControlNone:        "<NONE>",
	model.ControlDoWhileHead: "<DOWHILEHEAD>",
	model.ControlDoWhileTail: "<DOWHILETAIL>",
	model.ControlDoWhileNext: "<DOWHILENEXT>",
	model.ControlWhileHead:   "<WHILEHEAD>",
	model.ControlWhileTail:   "<WHILETAIL>",
	model.ControlWhileNext:   "<WHILENEXT>",
	model.ControlBreak:       "<BREAK>",
	model.ControlContinue:    "<CONTINUE>",
	model.ControlReturn:      "<RETURN>",
	model.ControlIfCond:      "<IFCOND>",
	model.ControlIfTrue:      "<IFTRUE>",
	model.ControlIfElse:      "<IFELSE>",
	model.ControlIfNext:      "<IFNEXT>",
}

// CreateDot renders the GraphViz DOT view (§4.5): subroutine-clustered
// basic-block CFG with colored edges by edge kind. GraphViz rendering
// itself is out of scope per §1 — this only emits the DOT text.
func (e *Emitter) CreateDot(printControlTypes bool) error {
	e.w.WriteString(dotPreamble)

	for i := range e.prog.Subroutines {
		e.writeSubroutineCluster(model.SubroutineID(i), printControlTypes)
	}

	for i := range e.prog.Blocks {
		e.writeBlockEdges(model.BlockID(i))
	}

	e.w.WriteString("}\n")
	return e.w.Flush()
}

// quoteDotLabel escapes a string for use inside a DOT label
// (§4.5.2): backslash then quote, in that order, grounded on
// wast/write.go's quoteData escaping idiom (generalized from WASM
// data-segment quoting to GraphViz label quoting).
func quoteDotLabel(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return s
}

func ceilDiv(a, b int) int {
	if b == 0 {
		return 0
	}
	return (a + b - 1) / b
}

func (e *Emitter) writeSubroutineCluster(subID model.SubroutineID, printControlTypes bool) {
	sub := e.prog.Subroutine(subID)
	if len(sub.Blocks) == 0 {
		return
	}
	entry := e.prog.Block(sub.EntryBlock())
	if len(entry.Instructions) == 0 {
		return
	}

	label := e.subroutineSignature(subID)
	if label == "" {
		label = format.SubroutineLabel(sub)
	}
	if label == "" {
		label = format.JumpDestination(sub.Entry)
	}

	e.w.Printf("  subgraph cluster_s%s {\n", format.Addr8(sub.Entry))
	e.w.WriteString("    style=filled\n")
	e.w.WriteString("    color=lightgrey\n")
	e.w.Printf("    label=\"%s\"\n\n", quoteDotLabel(label))

	for _, blockID := range sub.Blocks {
		e.writeBlockNodes(blockID, printControlTypes)
	}

	e.w.WriteString("  }\n")
}

func (e *Emitter) writeBlockNodes(blockID model.BlockID, printControlTypes bool) {
	block := e.prog.Block(blockID)
	k := len(block.Instructions)
	n := ceilDiv(k, 10)
	if n < 1 {
		n = 1
	}
	linesPerNode := ceilDiv(k, n)

	addr := format.Addr8(block.Entry)
	labels := make([]string, n)

	if printControlTypes {
		var prefix strings.Builder
		for _, cs := range block.Controls {
			tag, ok := controlTags[cs.Kind]
			if !ok {
				tag = "<>"
			}
			prefix.WriteString(tag + "\\n")
		}
		if len(block.Controls) > 0 {
			prefix.WriteString("\\n")
		}
		labels[0] = prefix.String()
	}
	labels[0] += blockHeaderLabel(e.prog, block) + ":\\l"

	for j := 0; j < k; j++ {
		idx := j
		if linesPerNode > 0 {
			idx = j / linesPerNode
		}
		instr := e.prog.Instruction(block.Instructions[j])
		mnemonic := quoteDotLabel(format.Instruction(instr, e.prog.Game))
		labels[idx] += "  " + mnemonic + "\\l"
	}

	names := make([]string, n)
	for i := 0; i < n; i++ {
		names[i] = fmt.Sprintf("b%s_%d", addr, i)
		e.w.Printf("    %s [ shape=box label=\"%s\" ]\n", names[i], labels[i])
	}
	if n > 1 {
		e.w.Printf("    %s [ style=dotted ]\n", strings.Join(names, " -> "))
	}
}

// blockHeaderLabel picks the jump label a block's node-0 header uses:
// the entry instruction's label, else a synthetic destination for the
// block's entry address.
func blockHeaderLabel(p *model.Program, block *model.Block) string {
	if len(block.Instructions) > 0 {
		instr := p.Instruction(block.Instructions[0])
		if label := format.InstructionLabel(p, instr); label != "" {
			return label
		}
	}
	return format.JumpDestination(block.Entry)
}

func (e *Emitter) writeBlockEdges(blockID model.BlockID) {
	block := e.prog.Block(blockID)
	k := len(block.Instructions)
	n := ceilDiv(k, 10)
	if n < 1 {
		n = 1
	}
	lastIndex := n - 1

	fromAddr := format.Addr8(block.Entry)

	for i, childID := range block.Children {
		child := e.prog.Block(childID)
		kind := model.EdgeUnconditional
		if i < len(block.ChildrenTypes) {
			kind = block.ChildrenTypes[i]
		}

		color, ok := edgeColors[kind]
		if !ok {
			color = edgeColors[model.EdgeUnconditional]
		}

		attrs := []string{"color=" + color}
		if child.Entry < block.Entry {
			attrs = append(attrs, "style=bold")
		}
		if block.SubRoutine != child.SubRoutine {
			attrs = append(attrs, "constraint=false")
		}

		e.w.Printf("  b%s_%d -> b%s_0 [ %s ]\n", fromAddr, lastIndex, format.Addr8(child.Entry), strings.Join(attrs, " "))
	}
}
