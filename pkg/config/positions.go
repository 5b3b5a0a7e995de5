package config

import (
	"log"
	"strconv"

	"github.com/limaJavier/enigma/pkg/enigma"
)

// ParsePositions reads one starting position per rotor.
// Values outside 0-25 are accepted and applied as that many steps, but they are logged since they are most likely a typo
func ParsePositions(tokens []string, rotors int) ([]int, error) {
	positions := make([]int, 0, len(tokens))
	for i, token := range tokens {
		position, err := strconv.Atoi(token)
		if err != nil {
			return nil, &enigma.ConfigError{Kind: enigma.NonNumericToken, Mapping: enigma.StartingPositions, Token: token, Index: i}
		}
		if position < 0 || position >= enigma.AlphabetSize {
			log.Printf("warning: starting position %d for rotor %d is outside 0-25", position, i)
		}
		positions = append(positions, position)
	}

	if len(positions) < rotors {
		return nil, &enigma.ConfigError{Kind: enigma.MissingStartingPosition, Mapping: enigma.StartingPositions, Index: len(positions)}
	} else if len(positions) > rotors {
		log.Printf("warning: %d starting positions given for %d rotors, the surplus is ignored", len(positions), rotors)
	}
	return positions, nil
}
