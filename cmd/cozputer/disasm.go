package main

import (
	"fmt"
	"os"

	"github.com/cozbot/cozputer/pkg/bytecode"
)

// handleDisasmCommand processes the `cozputer disasm` subcommand.
// Usage:
//
//	cozputer disasm prog.czpu
func handleDisasmCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Error: disasm needs exactly one program image")
		os.Exit(1)
	}

	img, err := bytecode.ReadImage(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Print(img.Program().DisassembleWithName(img.Name))
}
