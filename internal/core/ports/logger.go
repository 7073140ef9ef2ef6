package ports

// Logger defines the interface for diagnostic logging. It is distinct from
// the ReportSink: the sink is the audit trail, the logger is for operators
// watching stderr.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(err error)
}
