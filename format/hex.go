// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"strings"

	"github.com/nwscript-tools/ncsdis/model"
)

// Bytes renders an instruction's raw bytes as a space-separated hex
// dump (format_bytes, §6), e.g. "1b 04 03".
func Bytes(instr *model.Instruction) string {
	if len(instr.Raw) == 0 {
		return ""
	}
	var b strings.Builder
	for i, by := range instr.Raw {
		if i > 0 {
			b.WriteByte(' ')
		}
		const hexDigits = "0123456789abcdef"
		b.WriteByte(hexDigits[by>>4])
		b.WriteByte(hexDigits[by&0xf])
	}
	return b.String()
}
