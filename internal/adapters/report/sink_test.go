package report_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/upkeep/internal/adapters/report"
	"go.trai.ch/upkeep/internal/core/domain"
)

func TestSink_AppendWritesFileAndEcho(t *testing.T) {
	path := filepath.Join(t.TempDir(), "upkeep-report-20260314.log")
	echo := new(bytes.Buffer)

	sink, err := report.Open(path, echo)
	require.NoError(t, err)
	defer sink.Close()

	entry := domain.LogEntry{
		Time:    time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
		Level:   domain.LevelInfo,
		PID:     99,
		Message: "maintenance run started",
	}
	require.NoError(t, sink.Append(entry))

	want := "2026-03-14T09:00:00Z INFO [99] maintenance run started\n"

	// Durable immediately: every append syncs before returning.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, string(data))

	// And echoed to the interactive stream.
	assert.Equal(t, want, echo.String())
}

func TestSink_AppendOnlyAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "upkeep-report-20260314.log")

	first, err := report.Open(path, new(bytes.Buffer))
	require.NoError(t, err)
	require.NoError(t, first.AppendLine("run one"))
	require.NoError(t, first.Close())

	// A second run against the same date-stamped path must never truncate.
	second, err := report.Open(path, new(bytes.Buffer))
	require.NoError(t, err)
	require.NoError(t, second.AppendLine("run two"))
	require.NoError(t, second.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "run one\nrun two\n", string(data))
}

func TestSink_DigestTracksContent(t *testing.T) {
	dir := t.TempDir()

	open := func(name string) *report.Sink {
		s, err := report.Open(filepath.Join(dir, name), new(bytes.Buffer))
		require.NoError(t, err)
		t.Cleanup(func() { _ = s.Close() })
		return s
	}

	a := open("a.log")
	b := open("b.log")
	c := open("c.log")

	require.NoError(t, a.AppendLine("same content"))
	require.NoError(t, b.AppendLine("same content"))
	require.NoError(t, c.AppendLine("different content"))

	assert.Equal(t, a.Digest(), b.Digest())
	assert.NotEqual(t, a.Digest(), c.Digest())
}

func TestSink_Path(t *testing.T) {
	path := filepath.Join(t.TempDir(), "upkeep-report-20260314.log")
	sink, err := report.Open(path, new(bytes.Buffer))
	require.NoError(t, err)
	defer sink.Close()

	assert.Equal(t, path, sink.Path())
}

func TestOpen_UncreatableDirectory(t *testing.T) {
	_, err := report.Open(filepath.Join(t.TempDir(), "missing", "report.log"), new(bytes.Buffer))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create report file")
}
