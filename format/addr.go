// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import "fmt"

// Addr8 zero-pads addr to 8 lowercase hex digits, the address format
// used everywhere except the stack dump (§3's "Address formatting is
// zero-padded lowercase/uppercase hex, 8 digits").
func Addr8(addr uint32) string {
	return fmt.Sprintf("%08x", addr)
}

// Addr8Upper zero-pads addr to 8 uppercase hex digits, the form §4.4
// specifies for a stack slot's creator address.
func Addr8Upper(addr uint32) string {
	return fmt.Sprintf("%08X", addr)
}
