package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/lc3go/lc3/cpu"
	"github.com/lc3go/lc3/io"
	"github.com/lc3go/lc3/vm"
)

func main() {
	os.Exit(run())
}

// Exit codes: 0 on HALT, 2 on an unknown trap vector, 1 on anything else.
func run() int {
	var verbose bool

	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Printf("usage: %v [-v] image.obj", os.Args[0])
		return 1
	}

	term := io.NewTerminal(os.Stdin)
	if err := term.MakeRaw(); err != nil {
		log.Printf("lc3: terminal: %v", err)
		return 1
	}
	defer term.Restore()

	machine := vm.New(term, os.Stdout)
	machine.Cpu.Verbose = verbose

	if err := machine.Load(flag.Arg(0)); err != nil {
		return fail(term, err)
	}

	if err := machine.Run(); err != nil {
		if verbose {
			log.Printf("lc3: state:\n%v", machine.Cpu)
		}
		code := fail(term, err)
		if errors.Is(err, cpu.ErrTrapVector(0)) {
			code = 2
		}
		return code
	}

	term.Restore()
	os.Stdout.WriteString("\n")
	return 0
}

// fail restores the terminal before logging so the diagnostic is not
// mangled by raw mode.
func fail(term *io.Terminal, err error) int {
	term.Restore()
	log.Printf("lc3: %v", err)
	return 1
}
