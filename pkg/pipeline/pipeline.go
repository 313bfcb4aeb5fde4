// Package pipeline runs the compiler phases over an ordered list of Bantam
// Java source files.
package pipeline

import (
	"bantamc/pkg/ast"
	"bantamc/pkg/lexer"
	"bantamc/pkg/parser"
	"bantamc/pkg/semant"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Mode selects how far through the pipeline a run goes.
type Mode int

const (
	ModeParse   Mode = iota // lex and parse only
	ModeAnalyze             // parse, then run semantic analysis
)

func (m Mode) String() string {
	switch m {
	case ModeParse:
		return "parse"
	case ModeAnalyze:
		return "analyze"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

type Pipeline struct {
	files       []string
	mode        Mode
	fs          afero.Fs
	diagnostics io.Writer
	program     *ast.Program
}

type Option func(*Pipeline)

// WithFs reads sources from fs instead of the OS filesystem
func WithFs(fs afero.Fs) Option {
	return func(p *Pipeline) { p.fs = fs }
}

// WithDiagnostics sends phase diagnostics to w instead of stderr
func WithDiagnostics(w io.Writer) Option {
	return func(p *Pipeline) { p.diagnostics = w }
}

// New builds a pipeline over files, which are processed in the given order.
func New(files []string, mode Mode, opts ...Option) *Pipeline {
	p := &Pipeline{
		files:       files,
		mode:        mode,
		fs:          afero.NewOsFs(),
		diagnostics: os.Stderr,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Run executes the phases selected by the mode. Diagnostics are written as
// they are found; the returned error only summarises why the run stopped.
func (p *Pipeline) Run() error {
	log.Debug("Running pipeline", "mode", p.mode, "files", len(p.files))

	program := &ast.Program{}
	syntaxErrors := 0

	for _, file := range p.files {
		src, err := afero.ReadFile(p.fs, file)
		if err != nil {
			return errors.Wrapf(err, "failed to read %s", file)
		}

		log.Debug("Parsing file", "file", file, "bytes", len(src))

		ps := parser.NewParser(lexer.NewLexer(string(src)), file)
		parsed := ps.Parse()

		for _, e := range ps.Errors() {
			fmt.Fprintln(p.diagnostics, e.Render(file))
		}
		syntaxErrors += len(ps.Errors())

		program.Classes = append(program.Classes, parsed.Classes...)
	}

	if syntaxErrors > 0 {
		return errors.Errorf("parsing failed with %d errors", syntaxErrors)
	}

	p.program = program

	if p.mode < ModeAnalyze {
		return nil
	}

	semanticErrors := semant.Check(program)
	for _, e := range semanticErrors {
		fmt.Fprintln(p.diagnostics, e.Render())
	}
	if len(semanticErrors) > 0 {
		return errors.Errorf("semantic analysis failed with %d errors", len(semanticErrors))
	}

	return nil
}

// Program returns the merged syntax tree of the last successful Run, or nil.
func (p *Pipeline) Program() *ast.Program {
	return p.program
}
