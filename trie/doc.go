/*
Package trie implements a byte-keyed prefix tree over register names.

Every alias of every register record is inserted into one shared trie; the
node at which an alias ends carries the owning record's table index as a
terminal marker. A node may hold both children and a terminal marker, which
is how aliases that are strict prefixes of other aliases ("x" and "xmm") are
kept apart.

The trie is a build-time scaffold: it is filled once, handed to the code
emitter, and discarded. No compression or balancing is done.


License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2026 The reggen authors
*/
package trie

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'reggen.trie'.
func tracer() tracing.Trace {
	return tracing.Select("reggen.trie")
}
