package enigma

import (
	"slices"

	"github.com/samber/lo"
)

// Rotor is a wired permutation that turns one contact per step.
//
// The wiring is stored as offsets: contact i is wired to (i + wiring[i]) mod 26. Stepping rotates the offsets
// array itself, while absRotation counts the steps taken so notches can be compared against it.
type Rotor struct {
	wiring      [AlphabetSize]int
	initial     [AlphabetSize]int // Wiring as built, used by Reset
	notches     map[int]struct{}
	absRotation int
}

// BuildRotor validates 26 wiring targets followed by optional notch positions
func BuildRotor(tokens []string) (*Rotor, error) {
	mapping, err := Validate(Permutation, tokens)
	if err != nil {
		return nil, err
	}

	rotor := &Rotor{
		notches: lo.SliceToMap(mapping.Notches, func(notch int) (int, struct{}) { return notch, struct{}{} }),
	}
	for i, target := range mapping.Table {
		rotor.wiring[i] = target - i
	}
	rotor.initial = rotor.wiring
	return rotor, nil
}

// StepOne rotates the rotor one position to the left
func (rotor *Rotor) StepOne() {
	first := rotor.wiring[0]
	copy(rotor.wiring[:AlphabetSize-1], rotor.wiring[1:])
	rotor.wiring[AlphabetSize-1] = first

	rotor.absRotation = (rotor.absRotation + 1) % AlphabetSize
}

func (rotor *Rotor) HasNotchAtCurrentPosition() bool {
	_, ok := rotor.notches[rotor.absRotation]
	return ok
}

// EncodeBackward maps a position on the right-to-left pass
func (rotor *Rotor) EncodeBackward(position int) int {
	return normalize(position + rotor.wiring[position])
}

// EncodeBackwardStepping maps a position on the right-to-left pass, first stepping next if this rotor sits at a notch
func (rotor *Rotor) EncodeBackwardStepping(position int, next *Rotor) int {
	if rotor.HasNotchAtCurrentPosition() {
		next.StepOne()
	}
	return rotor.EncodeBackward(position)
}

// EncodeForward inverts EncodeBackward for the current rotation by scanning candidates in ascending order
func (rotor *Rotor) EncodeForward(position int) int {
	for candidate := range AlphabetSize {
		if rotor.EncodeBackward(candidate) == position {
			return candidate
		}
	}
	return position
}

// SetPosition steps the rotor target times, negative targets leave it untouched
func (rotor *Rotor) SetPosition(target int) {
	for range max(target, 0) {
		rotor.StepOne()
	}
}

// Reset returns the rotor to its as-built rotation
func (rotor *Rotor) Reset() {
	rotor.wiring = rotor.initial
	rotor.absRotation = 0
}

func (rotor *Rotor) AbsRotation() int {
	return rotor.absRotation
}

func (rotor *Rotor) Notches() []int {
	notches := lo.Keys(rotor.notches)
	slices.Sort(notches)
	return notches
}

// Wiring returns a copy of the current offsets
func (rotor *Rotor) Wiring() [AlphabetSize]int {
	return rotor.wiring
}
