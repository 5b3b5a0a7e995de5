package enigma

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Machine chains plugboard, rotors and reflector into the per-character cipher.
// A Machine mutates its rotors on every character and must not be shared between goroutines
type Machine struct {
	Plugboard *Plugboard
	Reflector *Reflector
	Rotors    *RotorStack
}

func NewMachine(plugboard *Plugboard, reflector *Reflector, rotors *RotorStack) *Machine {
	if rotors == nil {
		rotors = NewRotorStack()
	}
	return &Machine{
		Plugboard: plugboard,
		Reflector: reflector,
		Rotors:    rotors,
	}
}

// EncodeCharacter encodes one uppercase letter, stepping the rotors beforehand
func (machine *Machine) EncodeCharacter(letter byte) (byte, error) {
	if !IsLetter(letter) {
		return 0, &ConfigError{Kind: InvalidInputCharacter, Token: string(letter)}
	}

	position := machine.Plugboard.Encode(letter)
	position = machine.Rotors.EncodeBackward(position)
	position = machine.Reflector.Encode(position)
	position = machine.Rotors.EncodeForward(position)
	return machine.Plugboard.Decode(position), nil
}

// EncodeString encodes every byte of text, returning the encoded prefix alongside the first error
func (machine *Machine) EncodeString(text string) (string, error) {
	var builder strings.Builder
	builder.Grow(len(text))
	for i := range len(text) {
		letter, err := machine.EncodeCharacter(text[i])
		if err != nil {
			return builder.String(), err
		}
		builder.WriteByte(letter)
	}
	return builder.String(), nil
}

// EncodeStream encodes reader into writer, skipping whitespace between letters.
// Reaching the end of the input is not an error; an invalid character stops the stream after what was already written
func (machine *Machine) EncodeStream(reader io.Reader, writer io.Writer) error {
	in := bufio.NewReader(reader)
	out := bufio.NewWriter(writer)

	for {
		char, err := in.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return errors.Join(fmt.Errorf("cannot read input: %w", err), out.Flush())
		}
		if isSpace(char) {
			continue
		}

		letter, err := machine.EncodeCharacter(char)
		if err != nil {
			return errors.Join(err, out.Flush())
		}
		if err := out.WriteByte(letter); err != nil {
			return fmt.Errorf("cannot write output: %w", err)
		}
	}

	return out.Flush()
}

func isSpace(char byte) bool {
	switch char {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
