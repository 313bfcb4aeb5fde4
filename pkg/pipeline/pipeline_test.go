package pipeline_test

import (
	"bantamc/pkg/color"
	"bantamc/pkg/pipeline"
	"bytes"
	"fmt"
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func newFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	for name, src := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(src), 0o644))
	}
	return fs
}

func plainColors(t *testing.T) {
	t.Helper()

	prev := color.IsColorEnabled()
	color.EnableColor(false)
	t.Cleanup(func() { color.EnableColor(prev) })
}

func TestRunParsesFilesInOrder(t *testing.T) {
	fs := newFs(t, map[string]string{
		"b.btm": "class B extends A {}",
		"a.btm": "class A {}\nclass Main { void main() { } }",
	})
	var diag bytes.Buffer

	p := pipeline.New([]string{"b.btm", "a.btm"}, pipeline.ModeParse,
		pipeline.WithFs(fs), pipeline.WithDiagnostics(&diag))
	require.NoError(t, p.Run())
	require.Empty(t, diag.String())

	var names []string
	for _, class := range p.Program().Classes {
		names = append(names, class.Filename+":"+class.Name)
	}
	require.Equal(t, []string{"b.btm:B", "a.btm:A", "a.btm:Main"}, names)
}

func TestRunReportsSyntaxErrors(t *testing.T) {
	plainColors(t)

	fs := newFs(t, map[string]string{
		"ok.btm":  "class A {}",
		"bad.btm": "class B { int x = 1 }",
	})
	var diag bytes.Buffer

	p := pipeline.New([]string{"ok.btm", "bad.btm"}, pipeline.ModeParse,
		pipeline.WithFs(fs), pipeline.WithDiagnostics(&diag))
	err := p.Run()

	require.EqualError(t, err, "parsing failed with 1 errors")
	require.Equal(t, "bad.btm:1:21: error: Missing semicolon\n", diag.String())
	require.Nil(t, p.Program())
}

func TestRunMissingFile(t *testing.T) {
	p := pipeline.New([]string{"nope.btm"}, pipeline.ModeParse, pipeline.WithFs(afero.NewMemMapFs()))
	err := p.Run()

	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
	require.Contains(t, err.Error(), "failed to read nope.btm")

	// The failure carries a stack trace for the top-level report.
	require.Contains(t, fmt.Sprintf("%+v", err), "pipeline.(*Pipeline).Run")
}

func TestParseModeSkipsSemanticAnalysis(t *testing.T) {
	fs := newFs(t, map[string]string{"a.btm": "class A extends Missing {}"})

	p := pipeline.New([]string{"a.btm"}, pipeline.ModeParse, pipeline.WithFs(fs))
	require.NoError(t, p.Run())
}

func TestAnalyzeMode(t *testing.T) {
	plainColors(t)

	fs := newFs(t, map[string]string{
		"main.btm":  "class Main { void main() { } }",
		"shape.btm": "class Shape extends Missing {}",
	})

	var diag bytes.Buffer
	p := pipeline.New([]string{"main.btm", "shape.btm"}, pipeline.ModeAnalyze,
		pipeline.WithFs(fs), pipeline.WithDiagnostics(&diag))

	require.EqualError(t, p.Run(), "semantic analysis failed with 1 errors")
	require.Equal(t, "shape.btm:1:1: error: Class 'Shape' extends undefined class 'Missing'\n", diag.String())

	ok := pipeline.New([]string{"main.btm"}, pipeline.ModeAnalyze, pipeline.WithFs(fs))
	require.NoError(t, ok.Run())
}

func TestModeString(t *testing.T) {
	require.Equal(t, "parse", pipeline.ModeParse.String())
	require.Equal(t, "analyze", pipeline.ModeAnalyze.String())
	require.Equal(t, "Mode(7)", pipeline.Mode(7).String())
}
