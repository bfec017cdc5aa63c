/*
Package cgen emits the generated C source fragment for an architecture's
register definitions.

Three artifacts are rendered into one fragment, in this order:

1. a table of register records ("registers"), one entry per definition in
declaration order, carrying the alias strings, the alias count and the
register number obtained through the external DRGN_REGISTER_NUMBER macro;

2. a lookup function ("register_by_name") dispatching a null-terminated name
to its table entry through nested switches over the name's bytes, with NULL
for unknown names;

3. an aggregation macro ("DRGN_ARCHITECTURE_REGISTERS") bundling the table,
its count, the lookup function and the two caller-supplied symbols
register_layout and dwarf_regno_to_internal.

The fragment is meant to be #include'd by the architecture's own source,
which is also where the referenced external symbols must be visible. Output
is byte-identical across runs for the same input: branches of the dispatch
switches are sorted by byte value before rendering, nothing ever depends on
map iteration order.

Emission runs only after the parser has certified the input, so it has no
failure mode of its own besides writer errors; a violated builder invariant
is a programming error and panics.


License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2026 The reggen authors
*/
package cgen

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'reggen.cgen'.
func tracer() tracing.Trace {
	return tracing.Select("reggen.cgen")
}
