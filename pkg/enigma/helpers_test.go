package enigma

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func tokens(values ...int) []string {
	return lo.Map(values, func(value int, _ int) string { return strconv.Itoa(value) })
}

// adjacentPairs pairs 0-1, 2-3, ... for the given number of pairs
func adjacentPairs(pairs int) []string {
	return tokens(lo.Range(2 * pairs)...)
}

func identityRotorTokens(notches ...int) []string {
	return append(tokens(lo.Range(AlphabetSize)...), tokens(notches...)...)
}

func shiftRotorTokens(shift int) []string {
	return tokens(lo.Map(lo.Range(AlphabetSize), func(i int, _ int) int { return (i + shift) % AlphabetSize })...)
}

func mustRotor(t *testing.T, tokens []string) *Rotor {
	rotor, err := BuildRotor(tokens)
	require.NoError(t, err)
	return rotor
}

func randomRotor(t *testing.T, rng *rand.Rand, notches int) *Rotor {
	return mustRotor(t, append(tokens(rng.Perm(AlphabetSize)...), tokens(rng.Perm(AlphabetSize)[:notches]...)...))
}

// randomMachine builds a machine with random wiring and returns it with the starting positions it was set to
func randomMachine(t *testing.T, rng *rand.Rand, rotors int) (*Machine, []int) {
	plugboard, err := BuildPlugboard(tokens(rng.Perm(AlphabetSize)[:2*rng.Intn(14)]...))
	require.NoError(t, err)
	reflector, err := BuildReflector(tokens(rng.Perm(AlphabetSize)...))
	require.NoError(t, err)

	stack := NewRotorStack(lo.Times(rotors, func(_ int) *Rotor { return randomRotor(t, rng, rng.Intn(3)) })...)
	positions := lo.Times(rotors, func(_ int) int { return rng.Intn(AlphabetSize) })
	require.NoError(t, stack.SetPositions(positions))

	return NewMachine(plugboard, reflector, stack), positions
}

func configError(t *testing.T, err error) *ConfigError {
	t.Helper()
	require.Error(t, err)
	configErr, ok := err.(*ConfigError)
	require.True(t, ok, "expected *ConfigError, got %T", err)
	return configErr
}

func randomMessage(rng *rand.Rand, length int) string {
	return string(lo.Times(length, func(_ int) byte { return ToLetter(rng.Intn(AlphabetSize)) }))
}
