package platform_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/upkeep/internal/adapters/platform"
)

func writeOSRelease(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "os-release")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDetector_Detect_Ubuntu(t *testing.T) {
	detector := &platform.Detector{Path: writeOSRelease(t, `
PRETTY_NAME="Ubuntu 24.04.1 LTS"
NAME="Ubuntu"
ID=ubuntu
ID_LIKE=debian
VERSION_ID="24.04"
`)}

	id, err := detector.Detect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "ubuntu", id.ID)
	assert.Equal(t, "debian", id.IDLike)
	assert.Equal(t, "Ubuntu 24.04.1 LTS", id.PrettyName)
	assert.True(t, id.DebianFamily())
}

func TestDetector_Detect_SingleQuotedValues(t *testing.T) {
	detector := &platform.Detector{Path: writeOSRelease(t, "ID='alpine'\nPRETTY_NAME='Alpine Linux v3.20'\n")}

	id, err := detector.Detect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "alpine", id.ID)
	assert.Equal(t, "Alpine Linux v3.20", id.PrettyName)
	assert.False(t, id.DebianFamily())
}

func TestDetector_Detect_IgnoresCommentsAndGarbage(t *testing.T) {
	detector := &platform.Detector{Path: writeOSRelease(t, "# a comment\n\nnot-a-kv-line\nID=debian\n")}

	id, err := detector.Detect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "debian", id.ID)
}

func TestDetector_Detect_FallsBackToKernel(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("uname fallback is linux-only")
	}

	detector := &platform.Detector{Path: filepath.Join(t.TempDir(), "absent")}

	id, err := detector.Detect(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, id.KernelRelease)
	assert.Contains(t, id.PrettyName, "Linux")
	assert.Empty(t, id.ID)
}
