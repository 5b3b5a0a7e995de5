package config

import (
	"math/rand"
	"strconv"

	"github.com/limaJavier/enigma/pkg/enigma"
	"github.com/samber/lo"
)

// RandomPlugboard returns tokens for a plugboard with the given number of pairs (at most 13)
func RandomPlugboard(rng *rand.Rand, pairs int) []string {
	pairs = min(max(pairs, 0), enigma.AlphabetSize/2)
	return toTokens(rng.Perm(enigma.AlphabetSize)[:2*pairs])
}

// RandomReflector returns tokens for a reflector pairing up the whole alphabet
func RandomReflector(rng *rand.Rand) []string {
	return toTokens(rng.Perm(enigma.AlphabetSize))
}

// RandomRotor returns tokens for a rotor wiring followed by the given number of distinct notches
func RandomRotor(rng *rand.Rand, notches int) []string {
	notches = min(max(notches, 0), enigma.AlphabetSize)
	wiring := rng.Perm(enigma.AlphabetSize)
	return append(toTokens(wiring), toTokens(rng.Perm(enigma.AlphabetSize)[:notches])...)
}

// RandomPositions returns one starting position token per rotor
func RandomPositions(rng *rand.Rand, rotors int) []string {
	return toTokens(lo.Times(rotors, func(_ int) int { return rng.Intn(enigma.AlphabetSize) }))
}

func toTokens(values []int) []string {
	return lo.Map(values, func(value int, _ int) string { return strconv.Itoa(value) })
}

// RandomMachine builds a machine from random but always valid configuration tokens
func RandomMachine(rng *rand.Rand, rotors, pairs, notches int) (*enigma.Machine, error) {
	plugboard, err := enigma.BuildPlugboard(RandomPlugboard(rng, pairs))
	if err != nil {
		return nil, err
	}
	reflector, err := enigma.BuildReflector(RandomReflector(rng))
	if err != nil {
		return nil, err
	}

	stack := make([]*enigma.Rotor, 0, rotors)
	for range rotors {
		rotor, err := enigma.BuildRotor(RandomRotor(rng, notches))
		if err != nil {
			return nil, err
		}
		stack = append(stack, rotor)
	}

	positions, err := ParsePositions(RandomPositions(rng, rotors), rotors)
	if err != nil {
		return nil, err
	}
	rotorStack := enigma.NewRotorStack(stack...)
	if err := rotorStack.SetPositions(positions); err != nil {
		return nil, err
	}

	return enigma.NewMachine(plugboard, reflector, rotorStack), nil
}
