// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import "github.com/nwscript-tools/ncsdis/model"

// IsSubroutineCall reports whether kind is a subroutine-call edge
// (is_subroutine_call, §6), used by the NSS writer (§4.6.2) to decide
// whether a block's successor edge is a call to recurse past rather
// than an ordinary fallthrough/branch.
func IsSubroutineCall(kind model.BlockEdgeKind) bool {
	return kind == model.EdgeSubRoutineCall
}
