// Package report implements the append-only report sink.
//
// Every appended line is written to the date-stamped report file, fsynced,
// and echoed to the interactive stream before the call returns. A rolling
// xxhash digest over the appended lines lets a reader spot a truncated or
// altered report after the fact.
package report

import (
	"io"
	"os"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/muesli/termenv"
	"go.trai.ch/upkeep/internal/core/domain"
	"go.trai.ch/upkeep/internal/ui/output"
	"go.trai.ch/upkeep/internal/ui/style"
	"go.trai.ch/zerr"
)

// Sink implements ports.ReportSink over a local file plus an echo writer.
type Sink struct {
	mu     sync.Mutex
	file   *os.File
	path   string
	echo   io.Writer
	styled bool
	out    *termenv.Output
	digest *xxhash.Digest
}

// Open creates or opens the report file at path in append-only mode and
// returns a Sink echoing every line to echo. The file is never truncated.
func Open(path string, echo io.Writer) (*Sink, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec // operator-chosen report path
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrReportCreateFailed.Error()), "path", path)
	}

	if echo == nil {
		echo = os.Stdout
	}

	return &Sink{
		file:   f,
		path:   path,
		echo:   echo,
		styled: output.IsTerminal(echo),
		out:    output.New(echo),
		digest: xxhash.New(),
	}, nil
}

// Append writes one timestamped log entry.
func (s *Sink) Append(entry domain.LogEntry) error {
	return s.append(entry.Line(), entry.Level)
}

// AppendLine writes one raw report line.
func (s *Sink) AppendLine(line string) error {
	return s.append(line, domain.LevelInfo)
}

// Path returns the report destination.
func (s *Sink) Path() string {
	return s.path
}

// Digest returns the rolling digest over every line appended so far.
func (s *Sink) Digest() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.digest.Sum64()
}

// Close releases the report file. Appended content is already durable, as
// every append syncs before returning.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file.Close()
}

func (s *Sink) append(line string, level domain.Level) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.file.WriteString(line + "\n"); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrReportWriteFailed.Error()), "path", s.path)
	}
	// Sync per append so an interruption between tasks loses nothing.
	if err := s.file.Sync(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrReportWriteFailed.Error()), "path", s.path)
	}

	_, _ = s.digest.WriteString(line + "\n")

	s.writeEcho(line, level)
	return nil
}

func (s *Sink) writeEcho(line string, level domain.Level) {
	if !s.styled {
		_, _ = io.WriteString(s.echo, line+"\n")
		return
	}

	var color termenv.Color
	switch level {
	case domain.LevelWarn:
		color = termenv.RGBColor(string(style.Yellow))
	case domain.LevelError:
		color = termenv.RGBColor(string(style.Red))
	default:
		color = termenv.RGBColor(string(style.Slate))
	}
	_, _ = s.out.WriteString(s.out.String(line).Foreground(color).String() + "\n")
}
