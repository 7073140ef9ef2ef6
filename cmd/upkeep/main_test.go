package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/upkeep/internal/app"
	"go.trai.ch/upkeep/internal/core/domain"
	"go.trai.ch/upkeep/internal/core/ports"
	"go.trai.ch/upkeep/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type mainMocks struct {
	guard  *mocks.MockPrivilegeGuard
	loader *mocks.MockPolicyLoader
	logger *mocks.MockLogger
}

func newComponents(t *testing.T) (*app.Components, mainMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := mainMocks{
		guard:  mocks.NewMockPrivilegeGuard(ctrl),
		loader: mocks.NewMockPolicyLoader(ctrl),
		logger: mocks.NewMockLogger(ctrl),
	}
	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	a := app.New(
		m.guard,
		m.loader,
		mocks.NewMockPlatformDetector(ctrl),
		mocks.NewMockCommandRunner(ctrl),
		m.logger,
		func(string) (ports.ReportSink, error) { return nil, zerr.New("unused") },
	)
	return &app.Components{App: a, Logger: m.logger}, m
}

func provide(c *app.Components) ComponentProvider {
	return func(context.Context) (*app.Components, error) {
		return c, nil
	}
}

func TestRun_Success(t *testing.T) {
	components, _ := newComponents(t)
	stderr := new(bytes.Buffer)

	code := run(context.Background(), []string{"version"}, stderr, provide(components))

	assert.Equal(t, exitOK, code)
	assert.Empty(t, stderr.String())
}

func TestRun_InitializationError(t *testing.T) {
	stderr := new(bytes.Buffer)

	code := run(context.Background(), []string{"run"}, stderr,
		func(context.Context) (*app.Components, error) {
			return nil, zerr.New("wiring failed")
		})

	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr.String(), "Error: wiring failed")
}

func TestRun_PrivilegeFailure(t *testing.T) {
	components, m := newComponents(t)
	m.guard.EXPECT().Check().
		Return(zerr.With(domain.ErrPermissionDenied, "euid", 1000))
	stderr := new(bytes.Buffer)

	code := run(context.Background(), []string{"run"}, stderr, provide(components))

	assert.Equal(t, exitPrivilege, code)
	assert.Contains(t, stderr.String(), "elevated privileges required")
}

func TestRun_GenericFailure(t *testing.T) {
	components, m := newComponents(t)
	m.guard.EXPECT().Check().Return(nil)
	m.loader.EXPECT().Load("").
		Return(domain.Policy{}, zerr.New("failed to read policy file"))
	m.logger.EXPECT().Error(gomock.Any())
	stderr := new(bytes.Buffer)

	code := run(context.Background(), []string{"run"}, stderr, provide(components))

	assert.Equal(t, exitError, code)
}
