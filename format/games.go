// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"fmt"

	"github.com/nwscript-tools/ncsdis/model"
)

// functionTables gives each Game's engine API function names, keyed
// by ACTION id. Representative, not exhaustive: populating the full
// BioWare nwscript.nss function table is the analysis layer's job
// per §1.
var functionTables = map[model.Game]map[uint32]string{
	model.GameNWN: {
		0:   "Random",
		1:   "PrintString",
		2:   "PrintFloat",
		3:   "FloatToString",
		4:   "PrintInteger",
		5:   "PrintObject",
		8:   "GetLocalInt",
		9:   "GetLocalFloat",
		215: "AssignCommand",
	},
	model.GameNWN2: {
		0: "Random",
		1: "PrintString",
	},
}

// FunctionName returns game's engine API function name for ACTION id
// (get_function_name, §6). Unknown ids render as a numeric
// placeholder rather than panicking — decode/analysis has already
// validated the id against the real table; this package only needs
// to degrade gracefully if asked about one it doesn't carry.
func FunctionName(game model.Game, id uint32) string {
	if table, ok := functionTables[game]; ok {
		if name, ok := table[id]; ok {
			return name
		}
	}
	return fmt.Sprintf("Action%d", id)
}
