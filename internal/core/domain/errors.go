package domain

import "go.trai.ch/zerr"

var (
	// ErrPermissionDenied is returned when the process lacks the elevated
	// privilege the maintenance operations require. It is the only error
	// that halts the whole run.
	ErrPermissionDenied = zerr.New("elevated privileges required")

	// ErrReportCreateFailed is returned when the report destination cannot be created.
	ErrReportCreateFailed = zerr.New("failed to create report file")

	// ErrReportWriteFailed is returned when appending to the report fails.
	ErrReportWriteFailed = zerr.New("failed to append to report file")

	// ErrPolicyReadFailed is returned when the policy file cannot be read.
	ErrPolicyReadFailed = zerr.New("failed to read policy file")

	// ErrPolicyParseFailed is returned when the policy file cannot be parsed.
	ErrPolicyParseFailed = zerr.New("failed to parse policy file")

	// ErrInvalidRetention is returned when a journal retention window is malformed.
	ErrInvalidRetention = zerr.New("invalid journal retention, expected e.g. '14d' or '48h'")

	// ErrInvalidTmpMaxAge is returned when the temp cleanup age is not positive.
	ErrInvalidTmpMaxAge = zerr.New("temp file max age must be at least one day")

	// ErrOSDetectionFailed is returned when neither os-release nor the
	// kernel identity could be read.
	ErrOSDetectionFailed = zerr.New("failed to detect host identity")
)
