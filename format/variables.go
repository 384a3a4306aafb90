// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"

	"github.com/nwscript-tools/ncsdis/model"
)

const varCacheSize = 1024

var varCache *lru.Cache

func init() {
	c, err := lru.New(varCacheSize)
	if err != nil {
		panic(err)
	}
	varCache = c
}

// typePrefix gives each VariableType's one-letter spelling prefix,
// e.g. "i5" for an int Variable with id 5 — the scheme the NSS writer
// renders variable names with.
func typePrefix(typ model.VariableType) byte {
	switch typ {
	case model.VariableTypeInt:
		return 'i'
	case model.VariableTypeFloat:
		return 'f'
	case model.VariableTypeString:
		return 's'
	case model.VariableTypeObject:
		return 'o'
	case model.VariableTypeVector:
		return 'v'
	default:
		return 'e'
	}
}

// VariableName renders a deterministic spelling for v
// (format_variable_name, §6), memoized per *Variable pointer since the
// same Variable is named repeatedly across the NSS writer's
// per-opcode, call-site, if-condition, and return rendering.
// Keying on the pointer rather than v.ID matters because VariableID is
// only unique within a single Program's arena: two Variables from
// different Programs (or the same Program decoded twice) can reuse an
// id with a different Type, and a cache keyed on the bare id would
// return the wrong, stale spelling for the second one.
func VariableName(v *model.Variable) string {
	if cached, ok := varCache.Get(v); ok {
		return cached.(string)
	}
	name := fmt.Sprintf("%c%d", typePrefix(v.Type), int(v.ID))
	varCache.Add(v, name)
	return name
}
