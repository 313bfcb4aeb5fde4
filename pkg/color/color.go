package color

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	errorColor    = color.New(color.FgHiRed, color.Bold)
	positionColor = color.New(color.FgCyan)
	fileColor     = color.New(color.Bold)
)

func init() {
	// Diagnostics go to stderr, so that is the stream whose terminal-ness matters.
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		color.NoColor = true
	}
}

func EnableColor(enable bool) {
	color.NoColor = !enable
}

func IsColorEnabled() bool {
	return !color.NoColor
}

func RedText(text string) string {
	return errorColor.Sprint(text)
}

func CyanText(text string) string {
	return positionColor.Sprint(text)
}

func BoldText(text string) string {
	return fileColor.Sprint(text)
}

func Error(message string) string {
	return RedText("error: ") + message
}

// Position renders file:line:col
func Position(filename string, line, col int) string {
	return BoldText(filename) + ":" + CyanText(fmt.Sprintf("%d:%d", line, col))
}

// ErrorWithPosition renders a compiler diagnostic in the usual file:line:col: error: form
func ErrorWithPosition(filename string, line, col int, message string) string {
	return Position(filename, line, col) + ": " + Error(message)
}
