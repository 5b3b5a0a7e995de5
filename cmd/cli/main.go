package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"syscall"

	"github.com/davecgh/go-spew/spew"
	"github.com/limaJavier/enigma/pkg/config"
	"github.com/limaJavier/enigma/pkg/enigma"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "enigma: ", 0)

	// Define arguments
	flags := flag.NewFlagSet("enigma", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configPtr := flags.String("config", "", "Path to a JSON or YAML manifest naming the configuration files; replaces the positional files")
	verifyPtr := flags.Bool("verify", false, "Check the plugboard, reflector and rotor invariants before encoding")
	debugPtr := flags.Bool("debug", false, "Dump the configured machine to the standard error before encoding")
	flags.Usage = func() {
		fmt.Fprintln(stderr, config.Usage)
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return enigma.NoError
		}
		return enigma.InsufficientNumberOfParameters
	}

	// Resolve configuration files
	var files config.Files
	verify := *verifyPtr
	if *configPtr != "" {
		manifest, err := config.ManifestFromFile(*configPtr)
		if err != nil {
			return fail(logger, err)
		}
		files = manifest.Files()
		verify = verify || manifest.Verify
	} else {
		var err error
		files, err = config.FilesFromArgs(flags.Args())
		if err != nil {
			return fail(logger, err)
		}
	}

	// Build machine
	machine, err := config.Load(files)
	if err != nil {
		return fail(logger, err)
	}
	if verify {
		if err := machine.Verify(); err != nil {
			return fail(logger, err)
		}
	}
	if *debugPtr {
		spew.Fdump(stderr, machine)
	}

	// Encode the input
	if err := machine.EncodeStream(stdin, stdout); err != nil {
		if isBrokenPipe(err) {
			return enigma.NoError
		}
		return fail(logger, err)
	}
	return enigma.NoError
}

func fail(logger *log.Logger, err error) int {
	logger.Print(err)
	return enigma.ExitCode(err)
}

// isBrokenPipe reports whether the consumer of the output went away, e.g. when piped into head
func isBrokenPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe)
}
