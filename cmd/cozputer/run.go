package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cozbot/cozputer/manifest"
	"github.com/cozbot/cozputer/pkg/bytecode"
)

// handleRunCommand processes the `cozputer run` subcommand.
// Usage:
//
//	cozputer run prog.czpu
//	cozputer run -hex "10 00 17 10 01 13 11 00 01 12 00 13"
func handleRunCommand(args []string, m *manifest.Manifest, verbose bool) {
	var hex string
	var path string

	for i := 0; i < len(args); i++ {
		if args[i] == "-hex" || args[i] == "--hex" {
			if i+1 < len(args) {
				hex = args[i+1]
				i++
			} else {
				fmt.Fprintln(os.Stderr, "Error: -hex requires instruction bytes")
				os.Exit(1)
			}
		} else {
			path = args[i]
		}
	}

	var prog *bytecode.Program
	switch {
	case hex != "":
		p, err := parseHexProgram(hex)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		prog = p
	case path != "":
		img, err := bytecode.ReadImage(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if verbose && img.Name != "" {
			fmt.Printf("Loaded %q (%d bytes)\n", img.Name, len(img.Code))
		}
		prog = img.Program()
	default:
		fmt.Fprintln(os.Stderr, "Error: run needs a program image or -hex bytes")
		os.Exit(1)
	}

	if err := newVM(m).Run(prog); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseHexProgram parses whitespace-separated hex bytes such as
// "10 00 17" or "0x10 0x0 0x17".
func parseHexProgram(s string) (*bytecode.Program, error) {
	prog := bytecode.NewProgram()
	for _, field := range strings.Fields(s) {
		field = strings.TrimPrefix(strings.ToLower(field), "0x")
		n, err := strconv.ParseUint(field, 16, 8)
		if err != nil {
			return nil, fmt.Errorf("bad hex byte %q", field)
		}
		prog.AppendByte(byte(n))
	}
	return prog, nil
}
