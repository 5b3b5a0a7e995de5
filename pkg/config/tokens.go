package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/limaJavier/enigma/pkg/enigma"
)

// FileError reports a configuration file that could not be opened or read
type FileError struct {
	Path string
	Err  error
}

func (err *FileError) Error() string {
	return fmt.Sprintf("error opening configuration file %v: %v", err.Path, err.Err)
}

func (err *FileError) Unwrap() error {
	return err.Err
}

func (err *FileError) ExitCode() int {
	return enigma.ErrorOpeningConfigurationFile
}

// ReadTokens returns the whitespace-separated tokens of a configuration file
func ReadTokens(path string) ([]string, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	return strings.Fields(string(bytes)), nil
}
