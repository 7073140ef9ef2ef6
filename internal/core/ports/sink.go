package ports

import "go.trai.ch/upkeep/internal/core/domain"

// ReportSink is the append-only, dual-destination write target for all
// report output. Each append is durably flushed to the report file and
// echoed to the interactive stream before the call returns, so no entry
// is lost if the process is interrupted between tasks.
//
//go:generate mockgen -source=sink.go -destination=mocks/mock_sink.go -package=mocks
type ReportSink interface {
	// Append writes one timestamped log entry.
	Append(entry domain.LogEntry) error

	// AppendLine writes one raw report line, used for the summary block.
	AppendLine(line string) error

	// Path returns the report destination, fixed for the run.
	Path() string

	// Digest returns the rolling digest over every appended line.
	Digest() uint64

	// Close releases the underlying file.
	Close() error
}

// SinkFactory opens a ReportSink at the given destination path.
type SinkFactory func(path string) (ReportSink, error)
