/*
reggen generates register lookup tables for debugger architecture support.

Each supported architecture declares its register names once, in a compact
definition file, and reggen turns that file into a compilable C fragment: a
table of register records, a name-to-register lookup function and an
aggregation macro for the architecture's own source to include.

Usage

   reggen [--trace D|I|E] <definition-file>

The generated fragment is written to standard output. A parse failure prints
a single file:line:column diagnostic to standard error and exits non-zero;
whatever may have been written to standard output by then must be discarded.


License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2026 The reggen authors
*/
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"

	"github.com/kesselhaus/reggen/cgen"
	"github.com/kesselhaus/reggen/defs"
)

var tlevel string

var rootCmd = &cobra.Command{
	Use:   "reggen <definition-file>",
	Short: "Generate register lookup tables from a register-definition file",
	Long: `reggen reads an architecture's register-definition file and writes a C
source fragment to standard output: a table of register records, a
name-to-register lookup function and an aggregation macro bundling both with
the architecture's register_layout and dwarf_regno_to_internal symbols.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupTracing(tlevel)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args[0], cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&tlevel, "trace", "E", "Trace level (D, I or E)")
}

// run is the whole pipeline: parse, then emit. Nothing is written to out
// before the input has been parsed completely, so a failed run produces no
// partial fragment.
func run(path string, out io.Writer) error {
	registers, err := defs.ParseFile(path)
	if err != nil {
		return err
	}
	return cgen.Generate(out, filepath.Base(path), registers)
}

func setupTracing(l string) {
	logAdapter := gologadapter.GetAdapter()
	trace := logAdapter()
	trace.SetTraceLevel(traceLevel(l))
	tracing.SetTraceSelector(mytrace{tracer: trace})
}

func traceLevel(l string) tracing.TraceLevel {
	switch l {
	case "D":
		return tracing.LevelDebug
	case "I":
		return tracing.LevelInfo
	case "E":
		return tracing.LevelError
	}
	return tracing.LevelError
}

type mytrace struct {
	tracer tracing.Trace
}

func (t mytrace) Select(string) tracing.Trace {
	return t.tracer
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
