// Package framework drives real halo manager and agent processes for the
// end-to-end scenarios. It owns the test-environment wiring: the private
// state directory, the fake OCF scripts and fence agent, and the per-test
// configuration file.
package framework

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// BinaryEnv names the environment variable pointing at a compiled halo
// binary. The e2e tests skip when it is unset, so plain `go test ./...`
// stays hermetic.
const BinaryEnv = "HALO_E2E_BIN"

// Env is one test's private slice of the machine: a state directory, a
// config file, and the processes started for it.
type Env struct {
	t *testing.T

	// TestID names the test; state files and sockets live under Dir.
	TestID string
	Dir    string
	Binary string

	// LogPath is the shared action log the test OCF scripts append to.
	LogPath string

	procs  []*Process
	byName map[string]*Process
}

// New prepares a test environment, skipping the test when no binary is
// available.
func New(t *testing.T, testID string) *Env {
	t.Helper()

	binary := os.Getenv(BinaryEnv)
	if binary == "" {
		t.Skipf("set %s to a compiled halo binary to run e2e tests", BinaryEnv)
	}

	dir := t.TempDir()
	logPath := filepath.Join(dir, "test_log")
	if err := os.WriteFile(logPath, nil, 0644); err != nil {
		t.Fatalf("could not create action log: %v", err)
	}

	return &Env{
		t:       t,
		TestID:  testID,
		Dir:     dir,
		Binary:  binary,
		LogPath: logPath,
		byName:  make(map[string]*Process),
	}
}

// Process returns a started process by name (the agent ID, or "manager").
func (e *Env) Process(name string) *Process {
	e.t.Helper()
	p, ok := e.byName[name]
	if !ok {
		e.t.Fatalf("no process named %q", name)
	}
	return p
}

// ActionLog returns the lines the test OCF scripts have logged so far.
func (e *Env) ActionLog() []string {
	e.t.Helper()
	data, err := os.ReadFile(e.LogPath)
	if err != nil {
		e.t.Fatalf("could not read action log: %v", err)
	}
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// testdata locates the test/testdata directory relative to this source file.
func testdata(t *testing.T) string {
	t.Helper()
	_, self, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("could not locate framework source")
	}
	return filepath.Join(filepath.Dir(self), "..", "testdata")
}

// OCFRoot returns the fake OCF script root shared by all tests.
func (e *Env) OCFRoot() string {
	return testdata(e.t) + "/ocf_resources"
}

// processEnv builds the environment for a spawned process: the test
// variables plus a PATH that resolves fence_test to the fake fence agent.
func (e *Env) processEnv(extra ...string) []string {
	env := append(os.Environ(),
		"HALO_TEST_DIRECTORY="+e.Dir,
		"HALO_TEST_LOG="+e.LogPath,
		"OCF_ROOT="+e.OCFRoot(),
		"PATH="+filepath.Join(testdata(e.t), "bin")+string(os.PathListSeparator)+os.Getenv("PATH"),
	)
	return append(env, extra...)
}

// SocketPath is the management socket for this test's manager.
func (e *Env) SocketPath() string {
	return filepath.Join(e.Dir, "halo.socket")
}

// WriteConfig materializes a config file in the test directory.
func (e *Env) WriteConfig(body string) string {
	e.t.Helper()
	path := e.ConfigPath()
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		e.t.Fatalf("could not write config: %v", err)
	}
	return path
}

// ConfigPath is where WriteConfig places this test's configuration.
func (e *Env) ConfigPath() string {
	return filepath.Join(e.Dir, e.TestID+".toml")
}

// Run executes a one-shot halo command to completion in the test
// environment.
func (e *Env) Run(args ...string) error {
	return e.command(args...).Run()
}

// StateFile returns the path that means "resource running on this agent".
func (e *Env) StateFile(agentID, resourceID string) string {
	return filepath.Join(e.Dir, agentID+"."+resourceID)
}

// StateFileExists reports whether the resource state file is present.
func (e *Env) StateFileExists(agentID, resourceID string) bool {
	_, err := os.Stat(e.StateFile(agentID, resourceID))
	return err == nil
}

// RemoveStateFile simulates a resource dying behind the manager's back.
func (e *Env) RemoveStateFile(agentID, resourceID string) {
	e.t.Helper()
	if err := os.Remove(e.StateFile(agentID, resourceID)); err != nil {
		e.t.Fatalf("could not remove state file: %v", err)
	}
}

// CreateStateFile pre-seeds a running resource, e.g. to provoke a split
// brain.
func (e *Env) CreateStateFile(agentID, resourceID string) {
	e.t.Helper()
	if err := os.WriteFile(e.StateFile(agentID, resourceID), nil, 0644); err != nil {
		e.t.Fatalf("could not create state file: %v", err)
	}
}

// BreakFencing replaces an agent's pid file with an unkillable marker so
// every fence_test off attempt fails.
func (e *Env) BreakFencing(agentID string) {
	e.t.Helper()
	path := filepath.Join(e.Dir, agentID+".pid")
	if err := os.WriteFile(path, []byte("unkillable"), 0644); err != nil {
		e.t.Fatalf("could not break fencing: %v", err)
	}
}

// Cleanup stops every process this environment started.
func (e *Env) Cleanup() {
	for _, p := range e.procs {
		p.Stop()
	}
}

func (e *Env) command(args ...string) *exec.Cmd {
	cmd := exec.Command(e.Binary, args...)
	cmd.Env = e.processEnv()
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd
}

// agentArgs builds the argument list for a remote agent on the loopback
// network.
func agentArgs(testID string, port int) []string {
	return []string{
		"agent",
		"--test-id", testID,
		"--network", "127.0.0.0/8",
		"--port", fmt.Sprintf("%d", port),
	}
}
