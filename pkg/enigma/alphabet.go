package enigma

import "github.com/samber/lo"

const AlphabetSize = 26

// identity returns the table mapping every position to itself
func identity() [AlphabetSize]int {
	var table [AlphabetSize]int
	for i := range AlphabetSize {
		table[i] = i
	}
	return table
}

// normalize wraps a position displaced by at most one alphabet length back into [0,25]
func normalize(position int) int {
	if position < 0 {
		return position + AlphabetSize
	} else if position >= AlphabetSize {
		return position - AlphabetSize
	}
	return position
}

func inRange(position int) bool {
	return position >= 0 && position < AlphabetSize
}

func IsLetter(letter byte) bool {
	return letter >= 'A' && letter <= 'Z'
}

func ToPosition(letter byte) int {
	return int(letter - 'A')
}

func ToLetter(position int) byte {
	return byte(position) + 'A'
}

// pairsOf lists the two-element cycles of an involutive table, smallest member first
func pairsOf(table [AlphabetSize]int) [][2]int {
	return lo.FilterMap(lo.Range(AlphabetSize), func(position int, _ int) ([2]int, bool) {
		return [2]int{position, table[position]}, position < table[position]
	})
}
