package enigma

import (
	"errors"
	"fmt"

	"github.com/onsi/gomega/matchers/support/goraph/bipartitegraph"
	"github.com/samber/lo"
)

type invariantError struct {
	component string
	reason    string
}

func (err invariantError) Error() string {
	return fmt.Sprintf("%v violates its invariant: %v", err.component, err.reason)
}

// Verify checks the structural invariants of every component in its current state
func (machine *Machine) Verify() error {
	errs := make([]error, 0)

	if !isBijection(machine.Plugboard.table[:]) {
		errs = append(errs, invariantError{"plugboard", "not a bijection"})
	} else if !isInvolution(machine.Plugboard.table) {
		errs = append(errs, invariantError{"plugboard", "not self-inverse"})
	}

	if !isBijection(machine.Reflector.table[:]) {
		errs = append(errs, invariantError{"reflector", "not a bijection"})
	} else if !isInvolution(machine.Reflector.table) {
		errs = append(errs, invariantError{"reflector", "not self-inverse"})
	} else if fixed, ok := lo.Find(lo.Range(AlphabetSize), func(position int) bool {
		return machine.Reflector.table[position] == position
	}); ok {
		errs = append(errs, invariantError{"reflector", fmt.Sprintf("position %d maps to itself", fixed)})
	}

	for i, rotor := range machine.Rotors.rotors {
		outputs := lo.Map(lo.Range(AlphabetSize), func(position int, _ int) int { return rotor.EncodeBackward(position) })
		if !isBijection(outputs) {
			errs = append(errs, invariantError{fmt.Sprintf("rotor %d", i), "wiring is not a bijection"})
		}
	}

	return errors.Join(errs...)
}

// isBijection reports whether outputs, read as position -> outputs[position], admits a perfect matching between inputs and outputs
func isBijection(outputs []int) bool {
	positions := lo.Map(lo.Range(AlphabetSize), func(position int, _ int) any { return position })

	neighbors := func(inputAny any, outputAny any) (bool, error) {
		input := inputAny.(int)
		output := outputAny.(int)
		return outputs[input] == output, nil
	}

	graph, err := bipartitegraph.NewBipartiteGraph(positions, positions, neighbors)
	if err != nil {
		return false
	}
	return len(graph.LargestMatching()) == AlphabetSize
}

func isInvolution(table [AlphabetSize]int) bool {
	return lo.EveryBy(lo.Range(AlphabetSize), func(position int) bool {
		return inRange(table[position]) && table[table[position]] == position
	})
}
