package app_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/upkeep/internal/adapters/report"
	"go.trai.ch/upkeep/internal/app"
	"go.trai.ch/upkeep/internal/core/domain"
	"go.trai.ch/upkeep/internal/core/ports"
	"go.trai.ch/upkeep/internal/core/ports/mocks"
	"go.trai.ch/upkeep/internal/engine/pipeline"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type appMocks struct {
	guard    *mocks.MockPrivilegeGuard
	loader   *mocks.MockPolicyLoader
	detector *mocks.MockPlatformDetector
	runner   *mocks.MockCommandRunner
	logger   *mocks.MockLogger
}

func newAppMocks(t *testing.T) appMocks {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := appMocks{
		guard:    mocks.NewMockPrivilegeGuard(ctrl),
		loader:   mocks.NewMockPolicyLoader(ctrl),
		detector: mocks.NewMockPlatformDetector(ctrl),
		runner:   mocks.NewMockCommandRunner(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}
	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	return m
}

func (m appMocks) build(newSink ports.SinkFactory) *app.App {
	return app.New(m.guard, m.loader, m.detector, m.runner, m.logger, newSink)
}

func fileSink(echo io.Writer) ports.SinkFactory {
	return func(path string) (ports.ReportSink, error) {
		return report.Open(path, echo)
	}
}

func TestApp_Run_WritesDatedReport(t *testing.T) {
	m := newAppMocks(t)
	dir := t.TempDir()

	m.guard.EXPECT().Check().Return(nil)
	m.loader.EXPECT().Load("").Return(domain.Policy{
		ReportDir:        dir,
		JournalRetention: "14d",
		TmpMaxAgeDays:    7,
	}, nil)
	// A host outside the Debian family with none of the optional tools
	// present: only detection and the temp cleanup execute.
	m.detector.EXPECT().Detect(gomock.Any()).Return(domain.OSIdentity{
		ID:         "testos",
		PrettyName: "Test OS 1.0",
	}, nil)
	m.runner.EXPECT().LookPath(gomock.Any()).Return(false).AnyTimes()
	m.runner.EXPECT().Run(gomock.Any(), "find", gomock.Any()).
		Return(domain.CommandResult{ExitCode: 0}, nil)

	a := m.build(fileSink(io.Discard)).WithClock(func() time.Time {
		return time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	})

	require.NoError(t, a.Run(context.Background(), app.RunOptions{}))

	reportPath := filepath.Join(dir, "upkeep-report-20260115.log")
	content, err := os.ReadFile(reportPath)
	require.NoError(t, err)

	assert.Contains(t, string(content), pipeline.SummaryHeader)
	assert.Contains(t, string(content), "[ OK ] os-release: detected Test OS 1.0")
	assert.Contains(t, string(content), "[SKIP] pkg-upgrade:")
	assert.Contains(t, string(content), "[ OK ] tmp-clean: no stale temp files found")
	assert.Contains(t, string(content), "[SKIP] drop-caches: cache drop not enabled by policy")
}

func TestApp_Run_TaskFailuresExitClean(t *testing.T) {
	m := newAppMocks(t)
	dir := t.TempDir()

	m.guard.EXPECT().Check().Return(nil)
	m.loader.EXPECT().Load("").Return(domain.Policy{ReportDir: dir, TmpMaxAgeDays: 7}, nil)
	m.detector.EXPECT().Detect(gomock.Any()).
		Return(domain.OSIdentity{}, zerr.New("os-release unreadable"))
	m.runner.EXPECT().LookPath(gomock.Any()).Return(false).AnyTimes()
	m.runner.EXPECT().Run(gomock.Any(), "find", gomock.Any()).
		Return(domain.CommandResult{ExitCode: 1, Stderr: []byte("permission denied")}, nil)

	// Failed tasks surface as a warning, never as a Run error.
	m.logger.EXPECT().Warn(gomock.Any()).Do(func(msg string) {
		assert.Contains(t, msg, "2 task(s) failed")
	})

	a := m.build(fileSink(io.Discard))
	require.NoError(t, a.Run(context.Background(), app.RunOptions{}))
}

func TestApp_Run_PrivilegeFailureHaltsEverything(t *testing.T) {
	m := newAppMocks(t)

	m.guard.EXPECT().Check().Return(zerr.With(domain.ErrPermissionDenied, "euid", 1000))

	var sinkOpened bool
	a := m.build(func(path string) (ports.ReportSink, error) {
		sinkOpened = true
		return nil, nil
	})

	err := a.Run(context.Background(), app.RunOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
	assert.False(t, sinkOpened)
}

func TestApp_Run_PolicyLoadFailure(t *testing.T) {
	m := newAppMocks(t)

	m.guard.EXPECT().Check().Return(nil)
	m.loader.EXPECT().Load("/nonexistent.yaml").
		Return(domain.Policy{}, zerr.New("failed to read policy file"))

	a := m.build(fileSink(io.Discard))
	err := a.Run(context.Background(), app.RunOptions{ConfigPath: "/nonexistent.yaml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load policy")
}

func TestApp_Run_SinkOpenFailure(t *testing.T) {
	m := newAppMocks(t)

	m.guard.EXPECT().Check().Return(nil)
	m.loader.EXPECT().Load("").Return(domain.Policy{ReportDir: "/nope"}, nil)

	a := m.build(func(path string) (ports.ReportSink, error) {
		return nil, zerr.With(domain.ErrReportCreateFailed, "path", path)
	})

	err := a.Run(context.Background(), app.RunOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open report destination")
}

func TestApp_Run_AppendsAcrossRuns(t *testing.T) {
	m := newAppMocks(t)
	dir := t.TempDir()

	m.guard.EXPECT().Check().Return(nil).Times(2)
	m.loader.EXPECT().Load("").Return(domain.Policy{ReportDir: dir, TmpMaxAgeDays: 7}, nil).Times(2)
	m.detector.EXPECT().Detect(gomock.Any()).
		Return(domain.OSIdentity{PrettyName: "Test OS"}, nil).Times(2)
	m.runner.EXPECT().LookPath(gomock.Any()).Return(false).AnyTimes()
	m.runner.EXPECT().Run(gomock.Any(), "find", gomock.Any()).
		Return(domain.CommandResult{ExitCode: 0}, nil).Times(2)

	a := m.build(fileSink(io.Discard)).WithClock(func() time.Time {
		return time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	})

	require.NoError(t, a.Run(context.Background(), app.RunOptions{}))
	first, err := os.ReadFile(filepath.Join(dir, "upkeep-report-20260115.log"))
	require.NoError(t, err)

	require.NoError(t, a.Run(context.Background(), app.RunOptions{}))
	second, err := os.ReadFile(filepath.Join(dir, "upkeep-report-20260115.log"))
	require.NoError(t, err)

	// Same day, same file: the second run extends it instead of replacing it.
	assert.Greater(t, len(second), len(first))
	assert.Equal(t, string(first), string(second[:len(first)]))
}
