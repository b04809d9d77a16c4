package ocf

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanl/halo/pkg/log"
	"github.com/lanl/halo/pkg/types"
)

func TestMain(m *testing.M) {
	log.Init(log.Config{Level: log.ErrorLevel})
	os.Exit(m.Run())
}

// writeScript installs a fake resource agent under root/resource.d/<kind>.
func writeScript(t *testing.T, root, kind, body string) {
	t.Helper()
	path := filepath.Join(root, "resource.d", filepath.FromSlash(kind))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0755))
}

func TestDoSuccess(t *testing.T) {
	root := t.TempDir()
	writeScript(t, root, "test/ok", "exit 0")

	inv := NewInvoker(root, "")
	code, err := inv.Do(context.Background(), "test/ok", ActionMonitor, nil)
	require.NoError(t, err)
	assert.Equal(t, Success, code)
}

func TestDoNotRunning(t *testing.T) {
	root := t.TempDir()
	writeScript(t, root, "test/stopped", "exit 7")

	inv := NewInvoker(root, "")
	code, err := inv.Do(context.Background(), "test/stopped", ActionMonitor, nil)
	require.NoError(t, err)
	assert.Equal(t, NotRunning, code)
}

func TestDoFailureCode(t *testing.T) {
	root := t.TempDir()
	writeScript(t, root, "test/broken", "echo 'cannot mount' >&2; exit 1")

	inv := NewInvoker(root, "")
	code, err := inv.Do(context.Background(), "test/broken", ActionStart, nil)
	require.NoError(t, err)
	assert.Equal(t, ErrGeneric, code)
}

func TestDoUnexpectedExitCollapses(t *testing.T) {
	root := t.TempDir()
	writeScript(t, root, "test/weird", "exit 42")

	inv := NewInvoker(root, "")
	code, err := inv.Do(context.Background(), "test/weird", ActionMonitor, nil)
	require.NoError(t, err)
	assert.Equal(t, ErrUnimplemented, code)
}

func TestDoMissingScript(t *testing.T) {
	inv := NewInvoker(t.TempDir(), "")
	_, err := inv.Do(context.Background(), "test/absent", ActionMonitor, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable))
}

func TestDoTimeout(t *testing.T) {
	root := t.TempDir()
	writeScript(t, root, "test/hang", "echo 'still working' >&2; sleep 30")

	inv := NewInvoker(root, "")
	inv.Timeout = 100 * time.Millisecond

	start := time.Now()
	_, err := inv.Do(context.Background(), "test/hang", ActionStart, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTimeout))
	assert.Contains(t, err.Error(), "still working")
	// The child was killed, not waited out.
	assert.Less(t, time.Since(start), 10*time.Second)
}

func TestDoEnvironment(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(t.TempDir(), "env")
	writeScript(t, root, "test/env",
		`echo "$1 $OCF_RESKEY_pool $OCF_RESKEY_mountpoint $OCF_ROOT $HALO_TEST_ID" > `+out)

	inv := NewInvoker(root, "agent0")
	params := types.Params{
		{Key: "pool", Value: "tank"},
		{Key: "mountpoint", Value: "/mnt/ost0"},
	}
	code, err := inv.Do(context.Background(), "test/env", ActionStart, params)
	require.NoError(t, err)
	require.Equal(t, Success, code)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "start tank /mnt/ost0 "+root+" agent0\n", string(data))
}

func TestDoRejectsUnknownAction(t *testing.T) {
	inv := NewInvoker(t.TempDir(), "")
	_, err := inv.Do(context.Background(), "test/ok", Action("reload"), nil)
	assert.Error(t, err)
}

func TestCodeFromExit(t *testing.T) {
	assert.Equal(t, Success, CodeFromExit(0))
	assert.Equal(t, NotRunning, CodeFromExit(7))
	assert.Equal(t, ErrConfigured, CodeFromExit(6))
	assert.Equal(t, ErrUnimplemented, CodeFromExit(42))
	assert.Equal(t, ErrUnimplemented, CodeFromExit(-1))
}

func TestCodeString(t *testing.T) {
	assert.Equal(t, "OCF_SUCCESS", Success.String())
	assert.Equal(t, "OCF_NOT_RUNNING", NotRunning.String())
	assert.Equal(t, "OCF(12)", Code(12).String())
}

func TestActionTimeouts(t *testing.T) {
	assert.Equal(t, 10*time.Second, ActionMonitor.Timeout())
	assert.Equal(t, 30*time.Second, ActionStart.Timeout())
	assert.Equal(t, 30*time.Second, ActionStop.Timeout())
}
