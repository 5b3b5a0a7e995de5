package enigma

// Plugboard swaps up to 13 pairs of letters before and after the rotors
type Plugboard struct {
	table [AlphabetSize]int
}

// NewPlugboard returns a plugboard with no cables plugged in
func NewPlugboard() *Plugboard {
	return &Plugboard{table: identity()}
}

// BuildPlugboard validates the swap pairs and plugs them into an identity plugboard
func BuildPlugboard(tokens []string) (*Plugboard, error) {
	mapping, err := Validate(SwapPairs, tokens)
	if err != nil {
		return nil, err
	}

	plugboard := NewPlugboard()
	plugboard.table = mapping.Table
	return plugboard, nil
}

// Encode returns the swapped position of an uppercase letter
func (plugboard *Plugboard) Encode(letter byte) int {
	return plugboard.table[ToPosition(letter)]
}

// Decode returns the letter for a position after applying the same swaps
func (plugboard *Plugboard) Decode(position int) byte {
	return ToLetter(plugboard.table[position])
}

func (plugboard *Plugboard) Pairs() [][2]int {
	return pairsOf(plugboard.table)
}
