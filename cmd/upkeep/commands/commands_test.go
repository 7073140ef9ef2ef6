package commands_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/upkeep/cmd/upkeep/commands"
	"go.trai.ch/upkeep/internal/app"
	"go.trai.ch/zerr"
)

type mockApp struct {
	runCalls []app.RunOptions
	runErr   error
}

func (m *mockApp) Run(_ context.Context, opts app.RunOptions) error {
	m.runCalls = append(m.runCalls, opts)
	return m.runErr
}

func execute(t *testing.T, a commands.Application, args ...string) (string, string, error) {
	t.Helper()

	cli := commands.New(a)
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	cli.SetOutput(out, errOut)
	cli.SetArgs(args)

	err := cli.Execute(context.Background())
	return out.String(), errOut.String(), err
}

func TestRunCommand(t *testing.T) {
	a := &mockApp{}

	_, _, err := execute(t, a, "run")
	require.NoError(t, err)

	require.Len(t, a.runCalls, 1)
	assert.Empty(t, a.runCalls[0].ConfigPath)
}

func TestRunCommand_ConfigFlag(t *testing.T) {
	a := &mockApp{}

	_, _, err := execute(t, a, "run", "--config", "/etc/custom.yaml")
	require.NoError(t, err)

	require.Len(t, a.runCalls, 1)
	assert.Equal(t, "/etc/custom.yaml", a.runCalls[0].ConfigPath)
}

func TestRunCommand_PropagatesError(t *testing.T) {
	a := &mockApp{runErr: zerr.New("run failed")}

	_, _, err := execute(t, a, "run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run failed")
}

func TestRunCommand_RejectsArgs(t *testing.T) {
	a := &mockApp{}

	_, _, err := execute(t, a, "run", "extra")
	require.Error(t, err)
	assert.Empty(t, a.runCalls)
}

func TestTasksCommand(t *testing.T) {
	out, _, err := execute(t, &mockApp{}, "tasks")
	require.NoError(t, err)

	assert.Contains(t, out, " 1. os-release")
	assert.Contains(t, out, " 2. pkg-refresh")
	assert.Contains(t, out, "10. drop-caches")
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestUnknownCommand(t *testing.T) {
	_, _, err := execute(t, &mockApp{}, "nonsense")
	require.Error(t, err)
}
