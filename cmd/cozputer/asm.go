package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cozbot/cozputer/pkg/asm"
	"github.com/cozbot/cozputer/pkg/bytecode"
)

// handleAsmCommand processes the `cozputer asm` subcommand.
// Usage:
//
//	cozputer asm prog.casm              # writes prog.czpu
//	cozputer asm prog.casm -o out.czpu  # custom output
func handleAsmCommand(args []string, verbose bool) {
	var input string
	var output string

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
			input = args[i]
		}
	}

	if input == "" {
		fmt.Fprintln(os.Stderr, "Error: asm needs a source file")
		os.Exit(1)
	}

	source, err := os.ReadFile(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	prog, err := asm.Assemble(string(source))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", input, err)
		os.Exit(1)
	}

	name := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".czpu"
	}

	if err := bytecode.WriteImage(output, bytecode.NewImage(name, prog)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if verbose {
		count, _ := prog.InstructionCount()
		fmt.Printf("Wrote %s (%d instructions, %d bytes)\n", output, count, prog.Len())
	}
}
