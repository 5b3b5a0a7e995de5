package config

import (
	"fmt"

	"github.com/limaJavier/enigma/pkg/enigma"
)

const Usage = "usage: enigma plugboard-file reflector-file (<rotor-file>* rotor-positions)?"

// UsageError reports a command line that does not name the configuration files correctly
type UsageError struct {
	Args int
}

func (err *UsageError) Error() string {
	return fmt.Sprintf("%d configuration files given\n%v", err.Args, Usage)
}

func (err *UsageError) ExitCode() int {
	return enigma.InsufficientNumberOfParameters
}

// Files names the configuration file of every component. Positions is required iff Rotors is not empty
type Files struct {
	Plugboard string
	Reflector string
	Rotors    []string
	Positions string
}

// FilesFromArgs splits positional arguments into configuration files: a plugboard, a reflector and,
// optionally, one or more rotors followed by a positions file
func FilesFromArgs(args []string) (Files, error) {
	if len(args) < 2 || len(args) == 3 {
		return Files{}, &UsageError{Args: len(args)}
	}

	files := Files{
		Plugboard: args[0],
		Reflector: args[1],
	}
	if len(args) > 3 {
		files.Rotors = args[2 : len(args)-1]
		files.Positions = args[len(args)-1]
	}
	return files, nil
}

// Load builds a machine from its configuration files, stopping at the first file that fails
func Load(files Files) (*enigma.Machine, error) {
	plugboard, err := build(files.Plugboard, enigma.BuildPlugboard)
	if err != nil {
		return nil, err
	}

	reflector, err := build(files.Reflector, enigma.BuildReflector)
	if err != nil {
		return nil, err
	}

	rotors := make([]*enigma.Rotor, 0, len(files.Rotors))
	for _, path := range files.Rotors {
		rotor, err := build(path, enigma.BuildRotor)
		if err != nil {
			return nil, err
		}
		rotors = append(rotors, rotor)
	}
	stack := enigma.NewRotorStack(rotors...)

	if len(rotors) > 0 {
		tokens, err := ReadTokens(files.Positions)
		if err != nil {
			return nil, err
		}
		positions, err := ParsePositions(tokens, len(rotors))
		if err != nil {
			return nil, fmt.Errorf("%v: %w", files.Positions, err)
		}
		if err := stack.SetPositions(positions); err != nil {
			return nil, fmt.Errorf("%v: %w", files.Positions, err)
		}
	}

	return enigma.NewMachine(plugboard, reflector, stack), nil
}

func build[T any](path string, builder func(tokens []string) (T, error)) (T, error) {
	tokens, err := ReadTokens(path)
	if err != nil {
		var zero T
		return zero, err
	}

	component, err := builder(tokens)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%v: %w", path, err)
	}
	return component, nil
}
