/*
Package defs parses architecture register-definition files.

A definition file declares, one per line, the names under which a target
architecture's registers may be looked up, together with an optional symbolic
identifier:

  # x86-64 general purpose registers
  "rax", "eax" : RAX
  "rbx", "ebx" : RBX
  "rip"

Each line yields one register record. The quoted strings are the register's
aliases, in declaration order; the identifier after the colon is an opaque
token handed through to the emitted source. When the identifier is omitted it
is derived from the first alias. Declaration order is significant: it fixes
the index of the record in the generated table.

Parsing is fail-fast. The first malformed line or duplicate alias aborts the
run with an error locating the offending token as file:line:column.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2026 The reggen authors
*/
package defs

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to reggen.defs .
func tracer() tracing.Trace {
	return tracing.Select("reggen.defs")
}
