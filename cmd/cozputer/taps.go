package main

import (
	"fmt"
	"os"

	"github.com/cozbot/cozputer/manifest"
	"github.com/cozbot/cozputer/pkg/bytecode"
	"github.com/cozbot/cozputer/pkg/taps"
)

// handleTapsCommand processes the `cozputer taps` subcommand: it assembles
// binary 3-bit groups the way the cubes would and runs the result.
// Usage:
//
//	cozputer taps 010 101 000 ...           # run the assembled program
//	cozputer taps -o prog.czpu 010 101 000  # save an image instead
func handleTapsCommand(args []string, m *manifest.Manifest, verbose bool) {
	var output string
	var fields []string

	for i := 0; i < len(args); i++ {
		if args[i] == "-o" || args[i] == "--output" {
			if i+1 < len(args) {
				output = args[i+1]
				i++
			} else {
				fmt.Fprintln(os.Stderr, "Error: -o requires an output path")
				os.Exit(1)
			}
		} else {
			fields = append(fields, args[i])
		}
	}

	if len(fields) == 0 {
		fmt.Fprintln(os.Stderr, "Error: taps needs binary groups, e.g. 010 101 000")
		os.Exit(1)
	}

	groups, err := taps.ParseGroups(fields)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	builder := taps.NewBuilder()
	if err := builder.AddGroups(groups); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	prog, err := builder.Program()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if verbose {
		fmt.Printf("Assembled %d byte(s): % X\n", prog.Len(), prog.Code)
	}

	if output != "" {
		if err := bytecode.WriteImage(output, bytecode.NewImage("", prog)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := newVM(m).Run(prog); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
