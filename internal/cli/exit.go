package cli

import "fmt"

// Exit statuses. Usage and internal errors share a code and are told apart
// only by what was printed.
const (
	ExitSuccess  = 0
	ExitUsage    = 1
	ExitInternal = 1
)

// ExitError signals a non-zero exit code without forcing os.Exit in RunE handlers.
// Its diagnostic has already been written when it is returned.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}
