package enigma

import "github.com/samber/lo"

// RotorStack holds the rotors in physical order, leftmost first and rightmost last
type RotorStack struct {
	rotors []*Rotor
}

func NewRotorStack(rotors ...*Rotor) *RotorStack {
	return &RotorStack{rotors: rotors}
}

func (stack *RotorStack) Len() int {
	return len(stack.rotors)
}

// Rotor returns the rotor at the given physical index, 0 being the leftmost
func (stack *RotorStack) Rotor(index int) *Rotor {
	return stack.rotors[index]
}

// EncodeBackward runs the right-to-left pass and performs the stepping for the current character.
//
// The rightmost rotor always steps first. Walking leftwards, each rotor that sits at a notch steps its left
// neighbour before that neighbour encodes, and the leftmost rotor has no neighbour to step.
func (stack *RotorStack) EncodeBackward(position int) int {
	if len(stack.rotors) == 0 {
		return position
	}

	last := len(stack.rotors) - 1
	stack.rotors[last].StepOne()

	for i := last; i > 0; i-- {
		position = stack.rotors[i].EncodeBackwardStepping(position, stack.rotors[i-1])
	}
	return stack.rotors[0].EncodeBackward(position)
}

// EncodeForward runs the left-to-right pass without stepping
func (stack *RotorStack) EncodeForward(position int) int {
	for _, rotor := range stack.rotors {
		position = rotor.EncodeForward(position)
	}
	return position
}

// SetPositions applies one starting position per rotor, in physical order. Surplus positions are ignored
func (stack *RotorStack) SetPositions(positions []int) error {
	if len(positions) < len(stack.rotors) {
		return &ConfigError{Kind: MissingStartingPosition, Mapping: StartingPositions, Index: len(positions)}
	}

	for i, rotor := range stack.rotors {
		rotor.SetPosition(positions[i])
	}
	return nil
}

func (stack *RotorStack) Rotations() []int {
	return lo.Map(stack.rotors, func(rotor *Rotor, _ int) int { return rotor.AbsRotation() })
}

func (stack *RotorStack) Reset() {
	lo.ForEach(stack.rotors, func(rotor *Rotor, _ int) { rotor.Reset() })
}
