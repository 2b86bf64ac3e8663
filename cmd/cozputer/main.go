// Cozputer CLI - assemble, inspect and run cube programs
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tliron/commonlog"

	"github.com/cozbot/cozputer/manifest"

	_ "github.com/tliron/commonlog/simple"
)

func main() {
	verbose := flag.Bool("v", false, "Verbose output")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: cozputer [options] <command> [args]\n\n")
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  run <prog.czpu>          Run a program image\n")
		fmt.Fprintf(os.Stderr, "  run -hex \"10 00 17 ...\"  Run raw instruction bytes\n")
		fmt.Fprintf(os.Stderr, "  asm <prog.casm> [-o out] Assemble source to an image\n")
		fmt.Fprintf(os.Stderr, "  disasm <prog.czpu>       Print a program listing\n")
		fmt.Fprintf(os.Stderr, "  taps <groups...>         Assemble 3-bit groups and run\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  cozputer run -hex \"10 00 17 10 01 13 11 00 01 12 00 13\"\n")
		fmt.Fprintf(os.Stderr, "  cozputer asm fortytwo.casm -o fortytwo.czpu\n")
		fmt.Fprintf(os.Stderr, "  cozputer taps 010 101 000\n")
	}
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	m, err := manifest.FindAndLoad(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading cozputer.toml: %v\n", err)
		os.Exit(1)
	}

	// Verbosity 1 surfaces info-level messages, which is where the VM
	// writes its instruction trace.
	verbosity := 0
	if *verbose || m.VM.Trace {
		verbosity = 1
	}
	commonlog.Configure(verbosity, nil)

	switch args[0] {
	case "run":
		handleRunCommand(args[1:], m, *verbose)
	case "asm":
		handleAsmCommand(args[1:], *verbose)
	case "disasm":
		handleDisasmCommand(args[1:])
	case "taps":
		handleTapsCommand(args[1:], m, *verbose)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command %q\n\n", args[0])
		flag.Usage()
		os.Exit(2)
	}
}
