package compiler

import (
	"bantamc/pkg/pipeline"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

// InternalErrorMessage is printed after the detail of any pipeline failure.
const InternalErrorMessage = "Internal error within compiler: stopping compilation"

// Pipeline is a compilation run with a single driving operation.
type Pipeline interface {
	Run() error
}

// Factory constructs the pipeline for a list of validated inputs.
type Factory func(files []string, mode pipeline.Mode) Pipeline

// DefaultFactory builds the real compilation pipeline, reporting diagnostics on stderr.
func DefaultFactory(files []string, mode pipeline.Mode) Pipeline {
	return pipeline.New(files, mode)
}

// Failure is any error or panic that escaped the pipeline. Subtypes are not
// distinguished; the cause is carried only for reporting.
type Failure struct {
	cause error
}

func (f *Failure) Error() string {
	return f.cause.Error()
}

func (f *Failure) Unwrap() error {
	return f.cause
}

// Format prints the full cause, including any recorded stack trace, for %+v.
func (f *Failure) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "%+v", f.cause)
		return
	}
	io.WriteString(s, f.Error())
}

type Compiler struct {
	Mode    pipeline.Mode // How much of the pipeline to run
	Factory Factory       // Builds the pipeline; DefaultFactory when nil
	Stderr  io.Writer     // Where failures are reported
	Logger  *log.Logger   // Progress logging; the default logger when nil
}

// Dispatch builds the pipeline for inputs and runs it. Any failure is
// reported on Stderr followed by InternalErrorMessage and returned as a *Failure.
func (c *Compiler) Dispatch(inputs []string) error {
	logger := c.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger.Debug("Dispatching compilation", "mode", c.Mode, "files", inputs)

	factory := c.Factory
	if factory == nil {
		factory = DefaultFactory
	}

	if err := run(factory(inputs, c.Mode)); err != nil {
		failure := &Failure{cause: err}
		logger.Debug("Compilation failed", "err", err)
		fmt.Fprintf(c.Stderr, "%+v\n", failure)
		fmt.Fprintln(c.Stderr, InternalErrorMessage)
		return failure
	}

	return nil
}

// run invokes the pipeline, turning a panic into an ordinary error.
func run(p Pipeline) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if rerr, ok := r.(error); ok {
				err = errors.WithStack(rerr)
			} else {
				err = errors.Errorf("panic: %v", r)
			}
		}
	}()

	return p.Run()
}
