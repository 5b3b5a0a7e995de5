package enigma

import (
	"math/rand"
	"testing"

	. "github.com/onsi/gomega"
)

func TestVerify(t *testing.T) {
	t.Run("Built machines hold their invariants", func(t *testing.T) {
		g := NewWithT(t)
		rng := rand.New(rand.NewSource(31))

		for range 10 {
			machine, _ := randomMachine(t, rng, rng.Intn(6))
			g.Expect(machine.Verify()).To(Succeed())

			_, err := machine.EncodeString(randomMessage(rng, 50))
			g.Expect(err).NotTo(HaveOccurred())
			g.Expect(machine.Verify()).To(Succeed())
		}
	})

	t.Run("Identity reflector has fixed points", func(t *testing.T) {
		g := NewWithT(t)
		machine := NewMachine(NewPlugboard(), NewReflector(), nil)

		err := machine.Verify()

		g.Expect(err).To(MatchError(ContainSubstring("reflector violates its invariant: position 0 maps to itself")))
	})

	t.Run("Plugboard that is not self-inverse", func(t *testing.T) {
		g := NewWithT(t)
		machine, _ := randomMachine(t, rand.New(rand.NewSource(1)), 1)
		machine.Plugboard.table = identity()
		machine.Plugboard.table[0], machine.Plugboard.table[1], machine.Plugboard.table[2] = 1, 2, 0

		err := machine.Verify()

		g.Expect(err).To(MatchError(ContainSubstring("plugboard violates its invariant: not self-inverse")))
	})

	t.Run("Rotor wiring that is not a bijection", func(t *testing.T) {
		g := NewWithT(t)
		machine, _ := randomMachine(t, rand.New(rand.NewSource(1)), 2)
		machine.Rotors.Rotor(1).wiring = [AlphabetSize]int{}
		machine.Rotors.Rotor(1).wiring[3] = 1

		err := machine.Verify()

		g.Expect(err).To(MatchError(ContainSubstring("rotor 1 violates its invariant")))
		g.Expect(err.Error()).NotTo(ContainSubstring("rotor 0"))
	})
}

func TestIsBijection(t *testing.T) {
	g := NewWithT(t)
	shifted := make([]int, AlphabetSize)
	for i := range shifted {
		shifted[i] = (i + 5) % AlphabetSize
	}
	collapsed := make([]int, AlphabetSize)

	g.Expect(isBijection(shifted)).To(BeTrue())
	g.Expect(isBijection(collapsed)).To(BeFalse())
}
