// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import "github.com/nwscript-tools/ncsdis/model"

// genericEngineTypeNames names the engine types every Aurora-engine
// game carries in the same slots (effect, event, location, talent);
// a real analysis pass would extend this per §4.1's "generic_name"
// column. Representative, not exhaustive — see package doc.
var genericEngineTypeNames = []string{"effect", "event", "location", "talent"}

// gameEngineTypeNames gives each Game's specific name for the same
// engine-type slots; an empty string means the game has no
// specialization for that slot (§4.1 skips those in the legend).
var gameEngineTypeNames = map[model.Game][]string{
	model.GameNWN:  {"effect", "event", "location", "talent"},
	model.GameNWN2: {"effect", "event", "location", "talent"},
}

// VariableTypeName returns the NWScript type keyword for typ
// (get_variable_type_name, §6). Engine types resolve through the
// game's table when game is known; without a game (GameUnknown) they
// render generically.
func VariableTypeName(typ model.VariableType, game model.Game) string {
	switch typ {
	case model.VariableTypeInt:
		return "int"
	case model.VariableTypeFloat:
		return "float"
	case model.VariableTypeString:
		return "string"
	case model.VariableTypeObject:
		return "object"
	case model.VariableTypeVector:
		return "vector"
	default:
		idx := int(typ - model.VariableTypeEngine0)
		if names, ok := gameEngineTypeNames[game]; ok && idx >= 0 && idx < len(names) && names[idx] != "" {
			return names[idx]
		}
		if idx >= 0 && idx < len(genericEngineTypeNames) {
			return genericEngineTypeNames[idx]
		}
		return "engine"
	}
}

// EngineTypeCount returns how many engine-type slots game.defines
// (get_engine_type_count, §6).
func EngineTypeCount(game model.Game) int {
	return len(gameEngineTypeNames[game])
}

// EngineTypeName returns game's specific name for engine-type slot i
// (get_engine_type_name, §6); "" if the game has no specialization
// there.
func EngineTypeName(game model.Game, i int) string {
	names, ok := gameEngineTypeNames[game]
	if !ok || i < 0 || i >= len(names) {
		return ""
	}
	return names[i]
}

// GenericEngineTypeName returns the game-independent name for
// engine-type slot i (get_generic_engine_type_name, §6).
func GenericEngineTypeName(i int) string {
	if i < 0 || i >= len(genericEngineTypeNames) {
		return ""
	}
	return genericEngineTypeNames[i]
}
