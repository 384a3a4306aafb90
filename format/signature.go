// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru"

	"github.com/nwscript-tools/ncsdis/model"
)

// sigCacheSize bounds the signature memoization cache. The listing,
// dot, and NSS writers each ask for the same subroutine's signature
// independently (§2's three consumers of format_signature), so a
// small cache avoids re-walking a subroutine's inferred params/return
// on every call.
const sigCacheSize = 256

var sigCache *lru.Cache

func init() {
	c, err := lru.New(sigCacheSize)
	if err != nil {
		panic(err) // only fails for a non-positive size, which sigCacheSize never is
	}
	sigCache = c
}

type sigCacheKey struct {
	prog      *model.Program
	sub       model.SubroutineID
	game      model.Game
	withNames bool
}

// Signature renders sub's pretty signature (format_signature, §6):
// "<return type> <name>(<param types>)", memoized per
// (program, subroutine, game, withNames) — keying on the Program
// pointer too, since SubroutineID is only unique within a single
// Program's index space and two Programs processed in the same
// process can otherwise collide on the same id. withNames is
// accepted for parity with the external contract; this format
// package does not model per-parameter debug names, so it has no
// effect on the rendering today.
func Signature(p *model.Program, subID model.SubroutineID, game model.Game, withNames bool) string {
	key := sigCacheKey{p, subID, game, withNames}
	if v, ok := sigCache.Get(key); ok {
		return v.(string)
	}

	sub := p.Subroutine(subID)
	ret := "void"
	if sub.Return != nil {
		ret = VariableTypeName(*sub.Return, game)
	}

	name := SubroutineLabel(sub)
	if name == "" {
		name = JumpDestination(sub.Entry)
	}

	params := make([]string, len(sub.Params))
	for i, t := range sub.Params {
		params[i] = VariableTypeName(t, game)
	}

	sig := fmt.Sprintf("%s %s(%s)", ret, name, strings.Join(params, ", "))
	sigCache.Add(key, sig)
	return sig
}
