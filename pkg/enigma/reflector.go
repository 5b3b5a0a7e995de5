package enigma

// Reflector turns the signal back through the rotors using a fixed-point-free involution
type Reflector struct {
	table [AlphabetSize]int
}

// NewReflector returns an identity reflector, only meaningful as the base for BuildReflector
func NewReflector() *Reflector {
	return &Reflector{table: identity()}
}

func BuildReflector(tokens []string) (*Reflector, error) {
	mapping, err := Validate(Involution, tokens)
	if err != nil {
		return nil, err
	}

	reflector := NewReflector()
	reflector.table = mapping.Table
	return reflector, nil
}

func (reflector *Reflector) Encode(position int) int {
	return reflector.table[position]
}

func (reflector *Reflector) Pairs() [][2]int {
	return pairsOf(reflector.table)
}
