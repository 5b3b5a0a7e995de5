package config

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/limaJavier/enigma/pkg/enigma"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDirectory = "testdata"

func testFile(parts ...string) string {
	return filepath.Join(append([]string{testDirectory}, parts...)...)
}

func standardFiles(positions string) Files {
	return Files{
		Plugboard: testFile("plugboards", "I.pb"),
		Reflector: testFile("reflectors", "I.rf"),
		Rotors:    []string{testFile("rotors", "I.rot"), testFile("rotors", "II.rot"), testFile("rotors", "III.rot")},
		Positions: testFile("rotors", positions),
	}
}

func TestFilesFromArgs(t *testing.T) {
	t.Run("Plugboard and reflector only", func(t *testing.T) {
		files, err := FilesFromArgs([]string{"a.pb", "b.rf"})

		require.NoError(t, err)
		assert.Equal(t, Files{Plugboard: "a.pb", Reflector: "b.rf"}, files)
	})

	t.Run("Rotors and positions", func(t *testing.T) {
		files, err := FilesFromArgs([]string{"a.pb", "b.rf", "I.rot", "II.rot", "p.pos"})

		require.NoError(t, err)
		assert.Equal(t, []string{"I.rot", "II.rot"}, files.Rotors)
		assert.Equal(t, "p.pos", files.Positions)
	})

	t.Run("Invalid argument counts", func(t *testing.T) {
		for _, args := range [][]string{nil, {"a.pb"}, {"a.pb", "b.rf", "I.rot"}} {
			_, err := FilesFromArgs(args)

			var usageErr *UsageError
			require.True(t, errors.As(err, &usageErr))
			assert.Equal(t, enigma.InsufficientNumberOfParameters, enigma.ExitCode(err))
			assert.Contains(t, err.Error(), Usage)
		}
	})
}

func TestLoad(t *testing.T) {
	// Arrange
	scenarios := []struct {
		files    Files
		input    string
		output   string
		rotation []int
	}{
		{standardFiles("I.pos"), "HELLOWORLD", "FDJDQMQVXP", []int{0, 0, 10}},
		{standardFiles("II.pos"), "ATTACKATDAWN", "FIPCLNKOYMVV", []int{24, 4, 11}},
		{standardFiles("I.pos"), strings.Repeat("A", 60), "XFQYMLBZIKXHFPDWMOGXPINZLWJNHUJKGUJOWPYHFXFYEMSFYEDTZJLTSVQL", []int{0, 2, 8}},
		{Files{Plugboard: testFile("plugboards", "null.pb"), Reflector: testFile("reflectors", "I.rf")}, "ABCXYZ", "YRUJAT", []int{}},
		{
			Files{
				Plugboard: testFile("plugboards", "null.pb"),
				Reflector: testFile("reflectors", "I.rf"),
				Rotors:    []string{testFile("rotors", "III.rot")},
				Positions: testFile("rotors", "one.pos"),
			},
			"AAAAA", "NTUKU", []int{8},
		},
	}

	for _, scenario := range scenarios {
		machine, err := Load(scenario.files)
		require.NoError(t, err)
		require.NoError(t, machine.Verify())

		// Act
		var out bytes.Buffer
		err = machine.EncodeStream(strings.NewReader(scenario.input), &out)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, scenario.output, out.String())
		assert.Equal(t, scenario.rotation, machine.Rotors.Rotations())
	}
}

func TestLoadDecodesItsOwnOutput(t *testing.T) {
	machine, err := Load(standardFiles("II.pos"))
	require.NoError(t, err)

	plaintext, err := machine.EncodeString("FIPCLNKOYMVV")

	require.NoError(t, err)
	assert.Equal(t, "ATTACKATDAWN", plaintext)
}

func TestLoadErrors(t *testing.T) {
	// Arrange
	withPlugboard := func(name string) Files {
		files := standardFiles("I.pos")
		files.Plugboard = testFile("plugboards", name)
		return files
	}
	withRotor := func(name string) Files {
		files := standardFiles("I.pos")
		files.Rotors[1] = testFile("rotors", name)
		return files
	}
	insufficientReflector := standardFiles("I.pos")
	insufficientReflector.Reflector = testFile("reflectors", "insufficient.rf")
	missingFile := standardFiles("I.pos")
	missingFile.Rotors[2] = testFile("rotors", "IV.rot")

	scenarios := []struct {
		name  string
		files Files
		code  int
	}{
		{"Incorrect number of plugboard parameters", withPlugboard("incorrect_number.pb"), enigma.IncorrectNumberOfPlugboardParameters},
		{"Impossible plugboard configuration", withPlugboard("impossible.pb"), enigma.ImpossiblePlugboardConfiguration},
		{"Insufficient reflector mappings", insufficientReflector, enigma.IncorrectNumberOfReflectorParameters},
		{"Invalid rotor mapping", withRotor("invalid_mapping.rot"), enigma.InvalidRotorMapping},
		{"Non-numeric rotor", withRotor("non_numeric.rot"), enigma.NonNumericCharacter},
		{"Missing starting position", standardFiles("one.pos"), enigma.NoRotorStartingPosition},
		{"Missing configuration file", missingFile, enigma.ErrorOpeningConfigurationFile},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.name, func(t *testing.T) {
			// Act
			machine, err := Load(scenario.files)

			// Assert
			assert.Nil(t, machine)
			assert.Equal(t, scenario.code, enigma.ExitCode(err), "error: %v", err)
		})
	}
}

func TestLoadErrorNamesTheFile(t *testing.T) {
	files := standardFiles("I.pos")
	files.Rotors[0] = testFile("rotors", "invalid_mapping.rot")

	_, err := Load(files)

	assert.ErrorContains(t, err, "invalid_mapping.rot: invalid mapping of input 25 to output 0 in rotor configuration")
}
