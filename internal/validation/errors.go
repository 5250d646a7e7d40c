package validation

import (
	"errors"
	"fmt"
)

// Kind identifies which rule a run violated.
type Kind int

const (
	InvalidArgument Kind = iota + 1
	ArgumentRange
	EmptyLine
	InvalidInput
	InputRange
	InputCount
	Read
	Write
	Config
)

var kindNames = map[Kind]string{
	InvalidArgument: "invalid_argument",
	ArgumentRange:   "argument_range",
	EmptyLine:       "empty_line",
	InvalidInput:    "invalid_input",
	InputRange:      "input_range",
	InputCount:      "input_count",
	Read:            "read",
	Write:           "write",
	Config:          "config",
}

// String implements the fmt.Stringer interface for Kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error is the single failure type returned by every stage of a run. Subject
// holds the argument name, the offending input line, or the parameter file
// path, depending on Kind.
type Error struct {
	Kind    Kind
	Subject string
	Err     error
}

// Error implements the error interface for Error.
func (e *Error) Error() string {
	switch e.Kind {
	case InvalidArgument:
		return fmt.Sprintf("Error: %s must be a valid decimal number.", e.Subject)
	case ArgumentRange:
		return fmt.Sprintf("Error: %s must be between 0.0 and 1,000,000,000.0 inclusive.", e.Subject)
	case EmptyLine:
		return "Error: All lines should be decimal number. Empty line found."
	case InvalidInput:
		return fmt.Sprintf("Error: Input %s must be a valid decimal number.", e.Subject)
	case InputRange:
		return fmt.Sprintf("Error: Input %s must be between 0.0 and 1,000,000,000.0 inclusive.", e.Subject)
	case InputCount:
		return fmt.Sprintf("Error: Input count must not exceed %d numbers.", MaxInputs)
	case Read:
		return fmt.Sprintf("Error: failed to read input: %v", e.Err)
	case Write:
		return fmt.Sprintf("Error: failed to write output: %v", e.Err)
	case Config:
		return fmt.Sprintf("Error: failed to load config %s: %v", e.Subject, e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("Error: %v", e.Err)
	}
	return "Error: " + e.Kind.String()
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf reports the Kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var vErr *Error
	if errors.As(err, &vErr) {
		return vErr.Kind, true
	}
	return 0, false
}
