package cli

import (
	"fmt"
	"strings"
)

const (
	helpFlag    = "-h"
	inputSuffix = ".btm"

	// Shortest accepted input name: at least one character before the suffix.
	minInputLength = len(inputSuffix) + 1
)

// Usage is the two-line banner printed after every usage error.
const Usage = "Usage: bantamc [-h] <input_files>\n" +
	"man bantamc for more details\n"

// UsageError is an invocation error detected before compilation starts.
// Message is empty when only the banner should be printed.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	if e.Message == "" {
		return "usage requested"
	}

	return strings.TrimSuffix(e.Message, "\n")
}

// Diagnostic is the full text to print on stderr: the message, if any, then the banner.
func (e *UsageError) Diagnostic() string {
	return e.Message + Usage
}

// Validate checks the argument vector and returns the input files in the
// order given. The first problem found is returned as a *UsageError.
func Validate(args []string) ([]string, error) {
	if len(args) == 0 {
		return nil, &UsageError{}
	}

	inputs := make([]string, 0, len(args))
	for _, arg := range args {
		switch {
		case arg == helpFlag:
			return nil, &UsageError{}
		case isInputFile(arg):
			inputs = append(inputs, arg)
		default:
			return nil, &UsageError{Message: fmt.Sprintf(
				"Usage error: bad input file name: %s\n"+
					"             file names must end with '%s'\n", arg, inputSuffix)}
		}
	}

	if len(inputs) == 0 {
		return nil, &UsageError{Message: "Usage error: must specify some input files\n"}
	}

	return inputs, nil
}

// isInputFile reports whether arg names a source file: a case-sensitive
// .btm suffix preceded by at least one character.
func isInputFile(arg string) bool {
	return len(arg) >= minInputLength && strings.HasSuffix(arg, inputSuffix)
}
