package logger_test

import (
	"bantamc/internal/logger"
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
)

func TestInitQuietByDefault(t *testing.T) {
	var buf bytes.Buffer
	logger.Init(&buf, false, true)

	log.Info("Dispatching compilation")
	log.Debug("Parsing file")
	require.Empty(t, buf.String())

	log.Error("Something broke")
	require.Contains(t, buf.String(), "BANTAMC")
	require.Contains(t, buf.String(), "Something broke")
}

func TestInitDebug(t *testing.T) {
	var buf bytes.Buffer
	logger.Init(&buf, true, true)

	log.Debug("Parsing file", "file", "a.btm")
	require.Contains(t, buf.String(), "Parsing file")
	require.Contains(t, buf.String(), "file=a.btm")
}
