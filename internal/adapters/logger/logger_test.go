package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/upkeep/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func newBufferedLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	l, ok := logger.New().(*logger.Logger)
	require.True(t, ok)

	buf := new(bytes.Buffer)
	l.SetOutput(buf)
	return l, buf
}

func TestLogger_Info(t *testing.T) {
	l, buf := newBufferedLogger(t)

	l.Info("maintenance run started")

	assert.Contains(t, buf.String(), "maintenance run started")
}

func TestLogger_Warn(t *testing.T) {
	l, buf := newBufferedLogger(t)

	l.Warn("2 task(s) failed")

	out := buf.String()
	assert.Contains(t, out, "2 task(s) failed")
	assert.Contains(t, out, "!")
}

func TestLogger_Error(t *testing.T) {
	l, buf := newBufferedLogger(t)

	l.Error(zerr.New("report unwritable"))

	out := buf.String()
	assert.Contains(t, out, "operation failed")
	assert.Contains(t, out, "report unwritable")
}

func TestLogger_ErrorNil(t *testing.T) {
	l, buf := newBufferedLogger(t)

	l.Error(nil)

	assert.Empty(t, buf.String())
}
