package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// Manifest describes a whole machine in a single JSON or YAML document
//
// Example:
//
//	plugboard: plugboards/I.pb
//	reflector: reflectors/I.rf
//	rotors: [rotors/I.rot, rotors/II.rot, rotors/III.rot]
//	positions: rotors/I.pos
//	verify: true
type Manifest struct {
	Plugboard string   `mapstructure:"plugboard"`
	Reflector string   `mapstructure:"reflector"`
	Rotors    []string `mapstructure:"rotors"`
	Positions string   `mapstructure:"positions"`
	Verify    bool     `mapstructure:"verify"`
}

// ManifestFromFile reads a manifest, choosing YAML for .yaml/.yml files and JSON otherwise.
// Relative paths inside the manifest are resolved against the manifest's directory
func ManifestFromFile(path string) (Manifest, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, &FileError{Path: path, Err: err}
	}

	var raw map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(bytes, &raw)
	default:
		err = json.Unmarshal(bytes, &raw)
	}
	if err != nil {
		return Manifest{}, fmt.Errorf("cannot parse manifest %v: %w", path, err)
	}

	var manifest Manifest
	if err := mapstructure.Decode(raw, &manifest); err != nil {
		return Manifest{}, fmt.Errorf("cannot decode manifest %v: %w", path, err)
	}

	if manifest.Plugboard == "" || manifest.Reflector == "" {
		return Manifest{}, fmt.Errorf("manifest %v must name a plugboard and a reflector", path)
	} else if len(manifest.Rotors) > 0 && manifest.Positions == "" {
		return Manifest{}, fmt.Errorf("manifest %v names rotors but no positions file", path)
	}

	return manifest.resolve(filepath.Dir(path)), nil
}

// Files returns the configuration files named by the manifest
func (manifest Manifest) Files() Files {
	return Files{
		Plugboard: manifest.Plugboard,
		Reflector: manifest.Reflector,
		Rotors:    manifest.Rotors,
		Positions: manifest.Positions,
	}
}

func (manifest Manifest) resolve(directory string) Manifest {
	resolve := func(path string) string {
		if path == "" || filepath.IsAbs(path) {
			return path
		}
		return filepath.Join(directory, path)
	}

	manifest.Plugboard = resolve(manifest.Plugboard)
	manifest.Reflector = resolve(manifest.Reflector)
	manifest.Rotors = lo.Map(manifest.Rotors, func(path string, _ int) string { return resolve(path) })
	manifest.Positions = resolve(manifest.Positions)
	return manifest
}
