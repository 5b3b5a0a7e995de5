package enigma

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	NonNumericToken ErrorKind = iota + 1
	IncompleteParameters
	IndexOutOfRange
	DuplicateMapping
	TooManyParameters
	InsufficientMappings
	IncompleteMapping
	MissingStartingPosition
	InvalidInputCharacter
)

var errorKindNames = map[ErrorKind]string{
	NonNumericToken:         "non-numeric token",
	IncompleteParameters:    "incomplete parameters",
	IndexOutOfRange:         "index out of range",
	DuplicateMapping:        "duplicate mapping",
	TooManyParameters:       "too many parameters",
	InsufficientMappings:    "insufficient mappings",
	IncompleteMapping:       "incomplete mapping",
	MissingStartingPosition: "missing starting position",
	InvalidInputCharacter:   "invalid input character",
}

func (kind ErrorKind) String() string {
	if name, ok := errorKindNames[kind]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(kind))
}

// Error lets a bare ErrorKind act as a sentinel for errors.Is
func (kind ErrorKind) Error() string {
	return kind.String()
}

// Exit codes reported by the command line tools
const (
	NoError                              = 0
	InsufficientNumberOfParameters       = 1
	InvalidInputCharacterCode            = 2
	InvalidIndex                         = 3
	NonNumericCharacter                  = 4
	ImpossiblePlugboardConfiguration     = 5
	IncorrectNumberOfPlugboardParameters = 6
	InvalidRotorMapping                  = 7
	NoRotorStartingPosition              = 8
	InvalidReflectorMapping              = 9
	IncorrectNumberOfReflectorParameters = 10
	ErrorOpeningConfigurationFile        = 11
)

// ConfigError describes the first violation found while building a component
type ConfigError struct {
	Kind    ErrorKind
	Mapping MappingKind
	Token   string // Offending token as it appeared in the stream (empty when the stream ended early)
	Index   int    // Position of the offending token in the stream, or the rotor index for MissingStartingPosition
	Prior   int    // Input already mapped to the same value (DuplicateMapping only)
}

func (err *ConfigError) Error() string {
	switch err.Kind {
	case NonNumericToken:
		return fmt.Sprintf("non-numeric character %q in %v configuration", err.Token, err.Mapping)
	case IndexOutOfRange:
		return fmt.Sprintf("index %v out of range 0-25 in %v configuration", err.Token, err.Mapping)
	case DuplicateMapping:
		return fmt.Sprintf("invalid mapping of input %d to output %v in %v configuration (output %v is already mapped to from input %d)", err.Index, err.Token, err.Mapping, err.Token, err.Prior)
	case IncompleteParameters:
		return fmt.Sprintf("incorrect number of parameters in %v configuration", err.Mapping)
	case TooManyParameters:
		return fmt.Sprintf("too many parameters in %v configuration", err.Mapping)
	case InsufficientMappings:
		return fmt.Sprintf("insufficient number of mappings in %v configuration", err.Mapping)
	case IncompleteMapping:
		return fmt.Sprintf("not all inputs mapped in %v configuration", err.Mapping)
	case MissingStartingPosition:
		return fmt.Sprintf("no starting position for rotor %d", err.Index)
	case InvalidInputCharacter:
		return fmt.Sprintf("%v is not a valid input character (input characters must be upper case letters A-Z)", err.Token)
	}
	return err.Kind.String()
}

func (err *ConfigError) Is(target error) bool {
	kind, ok := target.(ErrorKind)
	return ok && kind == err.Kind
}

// ExitCode returns the process exit code matching the error's kind and the component that raised it
func (err *ConfigError) ExitCode() int {
	switch err.Kind {
	case NonNumericToken:
		return NonNumericCharacter
	case IndexOutOfRange:
		return InvalidIndex
	case MissingStartingPosition:
		return NoRotorStartingPosition
	case InvalidInputCharacter:
		return InvalidInputCharacterCode
	}

	switch err.Mapping {
	case SwapPairs:
		if err.Kind == DuplicateMapping {
			return ImpossiblePlugboardConfiguration
		}
		return IncorrectNumberOfPlugboardParameters
	case Involution:
		if err.Kind == DuplicateMapping {
			return InvalidReflectorMapping
		}
		return IncorrectNumberOfReflectorParameters
	default:
		return InvalidRotorMapping
	}
}

type exitCoder interface {
	ExitCode() int
}

// ExitCode resolves the exit code of any error in the chain, falling back to 1 for unknown errors
func ExitCode(err error) int {
	if err == nil {
		return NoError
	}
	var coder exitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return InsufficientNumberOfParameters
}
