/*
Package reggen is the root of a build-time generator for debugger register
tables.

Each supported target architecture declares its register names once, in a
small line-oriented definition file, instead of hand-writing lookup code.
The reggen tool turns such a file into a compilable C fragment: a table of
register records, a name-to-register lookup function rendered as nested
switch dispatch over a prefix tree of all aliases, and an aggregation macro
that bundles the generated symbols for the architecture's own source.

The pipeline runs strictly forward in a single pass:

  defs.Parse  ->  trie.Insert  ->  cgen.Generate

Package defs parses the definition language, package trie holds the shared
prefix tree over all aliases, and package cgen emits the C fragment. The
command itself lives in cmd/reggen.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2026 The reggen authors
*/
package reggen
