package identity

import (
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestDeviceIDStableWithinProcess(t *testing.T) {
	m := NewManager(t.TempDir(), quietLogger())

	first := m.DeviceID()
	require.NotEmpty(t, first)
	assert.True(t, strings.HasPrefix(first, "device_"))

	for i := 0; i < 3; i++ {
		assert.Equal(t, first, m.DeviceID())
	}
}

func TestDeviceIDPersistsAcrossManagers(t *testing.T) {
	dir := t.TempDir()

	first := NewManager(dir, quietLogger()).DeviceID()
	second := NewManager(dir, quietLogger()).DeviceID()

	assert.Equal(t, first, second)
}

func TestDeviceIDFilePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on Windows")
	}

	dir := t.TempDir()
	NewManager(dir, quietLogger()).DeviceID()

	info, err := os.Stat(filepath.Join(dir, deviceIDFile))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestDeviceIDReadsExistingFile(t *testing.T) {
	dir := t.TempDir()
	want := "device_1700000000000_abcdef123456"
	require.NoError(t, os.WriteFile(filepath.Join(dir, deviceIDFile), []byte(want+"\n"), 0o600))

	got := NewManager(dir, quietLogger()).DeviceID()
	assert.Equal(t, want, got)
}

func TestDeviceIDIgnoresBlankFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, deviceIDFile), []byte("  \n"), 0o600))

	got := NewManager(dir, quietLogger()).DeviceID()
	assert.NotEmpty(t, got)
	assert.True(t, strings.HasPrefix(got, "device_"))
}

func TestDeviceIDFallsBackWhenUnwritable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("read-only directories are not enforced on Windows")
	}
	if os.Getuid() == 0 {
		t.Skip("root ignores directory write permissions")
	}

	dir := t.TempDir()
	require.NoError(t, os.Chmod(dir, 0o500))
	t.Cleanup(func() { os.Chmod(dir, 0o700) })

	m := NewManager(dir, quietLogger())
	id := m.DeviceID()

	// Ephemeral identity: still valid, still stable within the process.
	require.NotEmpty(t, id)
	assert.Equal(t, id, m.DeviceID())

	// Nothing was persisted.
	_, err := os.Stat(filepath.Join(dir, deviceIDFile))
	assert.True(t, os.IsNotExist(err))
}

func TestGeneratedIDsDiffer(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := generateID()
		assert.False(t, seen[id], "duplicate generated ID %s", id)
		seen[id] = true

		// device_<ms>_<12 alphanumeric chars>
		parts := strings.SplitN(id, "_", 3)
		require.Len(t, parts, 3)
		assert.Equal(t, "device", parts[0])
		assert.Len(t, parts[2], 12)
	}
}
