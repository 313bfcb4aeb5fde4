package cli

import (
	"bantamc/internal/compiler"
	"bantamc/pkg/pipeline"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// DefaultMode is how far the command line compiler runs the pipeline.
const DefaultMode = pipeline.ModeParse

// NewRootCommand builds the bantamc command. Flag parsing is disabled so the
// raw argument vector reaches Validate untouched.
func NewRootCommand(stderr io.Writer, c *compiler.Compiler) *cobra.Command {
	cmd := &cobra.Command{
		Use:                "bantamc [-h] <input_files>",
		Short:              "Bantam Java compiler",
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			return compile(cmd.ErrOrStderr(), c, args)
		},
	}

	cmd.SetOut(stderr)
	cmd.SetErr(stderr)

	return cmd
}

// Run executes the command line compiler over args and returns the process exit status.
func Run(args []string, stderr io.Writer, factory compiler.Factory) int {
	c := &compiler.Compiler{Mode: DefaultMode, Factory: factory, Stderr: stderr}

	if args == nil {
		args = []string{}
	}

	// cobra would route its hidden completion command itself; such names are
	// just bad file names here.
	if len(args) > 0 && strings.HasPrefix(args[0], cobra.ShellCompRequestCmd) {
		return exitCode(stderr, compile(stderr, c, args))
	}

	cmd := NewRootCommand(stderr, c)
	cmd.SetArgs(args)

	return exitCode(stderr, cmd.Execute())
}

// compile validates args and dispatches the compiler. Diagnostics are
// written before the returned *ExitError.
func compile(stderr io.Writer, c *compiler.Compiler, args []string) error {
	inputs, err := Validate(args)
	if err != nil {
		var usage *UsageError
		if errors.As(err, &usage) {
			fmt.Fprint(stderr, usage.Diagnostic())
		}
		return &ExitError{Code: ExitUsage, Err: err}
	}

	if err := c.Dispatch(inputs); err != nil {
		return &ExitError{Code: ExitInternal, Err: err}
	}

	return nil
}

func exitCode(stderr io.Writer, err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	fmt.Fprintln(stderr, err)
	return ExitInternal
}
