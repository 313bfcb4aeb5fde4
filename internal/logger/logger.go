package logger

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// Init installs the default logger on w. Only errors are shown unless debug
// is set, so a successful compilation writes nothing.
func Init(w io.Writer, debug, noColor bool) {
	log.SetDefault(log.NewWithOptions(w,
		log.Options{
			ReportCaller:    debug,
			ReportTimestamp: false,
			TimeFormat:      time.RFC3339,
			Prefix:          "BANTAMC",
		}))

	log.SetLevel(log.ErrorLevel)
	if debug {
		log.SetLevel(log.DebugLevel)
	}

	log.SetColorProfile(termenv.ANSI256)
	if noColor {
		log.SetColorProfile(termenv.Ascii)
	}
}
