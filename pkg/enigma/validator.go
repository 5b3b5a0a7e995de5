package enigma

import (
	"fmt"
	"strconv"

	"github.com/samber/lo"
)

type MappingKind int

const (
	// Plugboard: up to 13 disjoint pairs
	SwapPairs MappingKind = iota
	// Reflector: exactly 13 disjoint pairs covering the alphabet
	Involution
	// Rotor: 26 targets followed by optional notches
	Permutation
	// One rotation per rotor, parsed outside Validate
	StartingPositions
)

func (kind MappingKind) String() string {
	switch kind {
	case SwapPairs:
		return "plugboard"
	case Involution:
		return "reflector"
	case Permutation:
		return "rotor"
	case StartingPositions:
		return "rotor positions"
	}
	return fmt.Sprintf("MappingKind(%d)", int(kind))
}

// Mapping is the validated outcome of a token stream.
// Table holds the paired position for SwapPairs and Involution and the wired target for Permutation
type Mapping struct {
	Table   [AlphabetSize]int
	Notches []int
}

// Validate checks the token stream against the rules of the given mapping kind and returns the first violation found.
//
// Each token is checked in turn for being numeric, being in range and not colliding with a previously accepted value,
// so a malformed token wins over any count-related error that would only be detected later in the stream.
func Validate(kind MappingKind, tokens []string) (Mapping, error) {
	stream := &tokenStream{tokens: tokens, mapping: kind}
	switch kind {
	case SwapPairs:
		return validatePairs(stream, false)
	case Involution:
		return validatePairs(stream, true)
	case Permutation:
		return validatePermutation(stream)
	}
	return Mapping{}, fmt.Errorf("unknown mapping kind: %v", kind)
}

func validatePairs(stream *tokenStream, complete bool) (Mapping, error) {
	mapping := Mapping{Table: identity()}
	provided := make([]int, 0, AlphabetSize) // Values already used as a participant, in stream order

	if stream.done() {
		if complete {
			return Mapping{}, stream.fail(IncompleteParameters)
		}
		return mapping, nil // No pairs means the identity table
	}

	for !stream.done() {
		// Every position is already paired, so anything left over is an excess parameter
		if len(provided) == AlphabetSize {
			return Mapping{}, stream.fail(TooManyParameters)
		}

		first, err := stream.readParticipant(provided)
		if err != nil {
			return Mapping{}, err
		}
		provided = append(provided, first)

		if stream.done() {
			return Mapping{}, stream.fail(IncompleteParameters)
		}
		second, err := stream.readParticipant(provided)
		if err != nil {
			return Mapping{}, err
		}
		provided = append(provided, second)

		mapping.Table[first] = second
		mapping.Table[second] = first
	}

	if complete && len(provided) < AlphabetSize {
		return Mapping{}, stream.fail(InsufficientMappings)
	}
	return mapping, nil
}

func validatePermutation(stream *tokenStream) (Mapping, error) {
	var mapping Mapping
	provided := make([]int, 0, AlphabetSize)

	for len(provided) < AlphabetSize && !stream.done() {
		target, err := stream.readParticipant(provided)
		if err != nil {
			return Mapping{}, err
		}
		mapping.Table[len(provided)] = target
		provided = append(provided, target)
	}
	if len(provided) < AlphabetSize {
		return Mapping{}, stream.fail(IncompleteMapping)
	}

	notches := make([]int, 0)
	for !stream.done() {
		index := stream.next
		notch, err := stream.read()
		if err != nil {
			return Mapping{}, err
		}
		if !inRange(notch) {
			return Mapping{}, stream.failAt(IndexOutOfRange, index)
		}
		notches = append(notches, notch)
	}
	mapping.Notches = lo.Uniq(notches)

	return mapping, nil
}

type tokenStream struct {
	tokens  []string
	next    int
	mapping MappingKind
}

func (stream *tokenStream) done() bool {
	return stream.next >= len(stream.tokens)
}

// read consumes the next token as an integer
func (stream *tokenStream) read() (int, error) {
	index := stream.next
	stream.next++
	value, err := strconv.Atoi(stream.tokens[index])
	if err != nil {
		return 0, stream.failAt(NonNumericToken, index)
	}
	return value, nil
}

// readParticipant consumes the next token and checks it can take part in a mapping alongside the provided values
func (stream *tokenStream) readParticipant(provided []int) (int, error) {
	index := stream.next
	value, err := stream.read()
	if err != nil {
		return 0, err
	}
	if !inRange(value) {
		return 0, stream.failAt(IndexOutOfRange, index)
	}
	if prior := lo.IndexOf(provided, value); prior >= 0 {
		err := stream.failAt(DuplicateMapping, index)
		err.Prior = prior
		return 0, err
	}
	return value, nil
}

// fail reports an error at the current stream position, which for count errors is where a token was missing or left over
func (stream *tokenStream) fail(kind ErrorKind) *ConfigError {
	return stream.failAt(kind, stream.next)
}

func (stream *tokenStream) failAt(kind ErrorKind, index int) *ConfigError {
	err := &ConfigError{Kind: kind, Mapping: stream.mapping, Index: index}
	if index < len(stream.tokens) {
		err.Token = stream.tokens[index]
	}
	return err
}
