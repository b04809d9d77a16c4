package ocf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/lanl/halo/pkg/config"
	"github.com/lanl/halo/pkg/log"
	"github.com/lanl/halo/pkg/types"
)

// Action is an OCF resource agent action.
type Action string

const (
	ActionMonitor Action = "monitor"
	ActionStart   Action = "start"
	ActionStop    Action = "stop"
)

// Valid reports whether the action is one the invoker will run.
func (a Action) Valid() bool {
	switch a {
	case ActionMonitor, ActionStart, ActionStop:
		return true
	}
	return false
}

// Timeout returns the per-action execution budget.
func (a Action) Timeout() time.Duration {
	if a == ActionMonitor {
		return 10 * time.Second
	}
	return 30 * time.Second
}

// Code is an OCF resource agent return code. The set is listed in
// /usr/lib/ocf/lib/heartbeat/ocf-returncodes.
type Code int

const (
	Success          Code = 0
	ErrGeneric       Code = 1
	ErrArgs          Code = 2
	ErrUnimplemented Code = 3
	ErrPerm          Code = 4
	ErrInstalled     Code = 5
	ErrConfigured    Code = 6
	NotRunning       Code = 7
)

func (c Code) String() string {
	switch c {
	case Success:
		return "OCF_SUCCESS"
	case ErrGeneric:
		return "OCF_ERR_GENERIC"
	case ErrArgs:
		return "OCF_ERR_ARGS"
	case ErrUnimplemented:
		return "OCF_ERR_UNIMPLEMENTED"
	case ErrPerm:
		return "OCF_ERR_PERM"
	case ErrInstalled:
		return "OCF_ERR_INSTALLED"
	case ErrConfigured:
		return "OCF_ERR_CONFIGURED"
	case NotRunning:
		return "OCF_NOT_RUNNING"
	default:
		return fmt.Sprintf("OCF(%d)", int(c))
	}
}

// CodeFromExit maps a raw subprocess exit status onto the OCF code set.
// Unexpected values collapse to ErrUnimplemented, matching how resource
// agents are expected to signal "I don't know what you asked".
func CodeFromExit(status int) Code {
	if status >= int(Success) && status <= int(NotRunning) {
		return Code(status)
	}
	return ErrUnimplemented
}

// ErrTimeout reports that the resource agent script exceeded its per-action
// budget. The child has been killed and reaped.
var ErrTimeout = errors.New("resource agent timed out")

// ErrUnavailable reports that the resource agent script could not be
// spawned at all.
var ErrUnavailable = errors.New("resource agent unavailable")

// RemoteError is an error string reported by a remote agent in an operation
// response: the transport worked and the agent is alive, but it could not
// execute the operation (spawn failure, timeout). Distinguished from
// transport faults so callers don't count it against host liveness.
type RemoteError struct {
	Msg string
}

func (e *RemoteError) Error() string {
	return "remote agent error: " + e.Msg
}

// Invoker executes OCF resource agent scripts. It is stateless and never
// retries; one call maps to exactly one subprocess.
type Invoker struct {
	// Root is the OCF_ROOT directory holding resource.d/.
	Root string

	// TestID identifies this agent in the test environment. Empty outside
	// tests; the invoker substitutes the process ID so resource scripts
	// always see a value.
	TestID string

	// Timeout overrides the per-action timeout when non-zero.
	Timeout time.Duration

	logger zerolog.Logger
}

// NewInvoker returns an Invoker rooted at root. An empty root takes the
// OCF_ROOT environment default.
func NewInvoker(root, testID string) *Invoker {
	if root == "" {
		root = config.OCFRoot()
	}
	return &Invoker{
		Root:   root,
		TestID: testID,
		logger: log.WithComponent("ocf"),
	}
}

// ScriptPath resolves the script for an OCF kind such as "lustre/Lustre".
func (i *Invoker) ScriptPath(kind string) string {
	return filepath.Join(i.Root, "resource.d", filepath.FromSlash(kind))
}

// Do runs one action of the resource agent for kind with the given
// parameters and returns its OCF code.
//
// The parameters are exported to the script as OCF_RESKEY_<key> variables in
// their given order. The script inherits a minimal environment: PATH,
// OCF_ROOT, HALO_TEST_ID (the process ID when no test ID is set), and the
// other HALO test variables when present. The action's timeout
// bounds execution; on expiry the child is killed, reaped, and ErrTimeout is
// returned with captured stderr.
func (i *Invoker) Do(ctx context.Context, kind string, action Action, params types.Params) (Code, error) {
	if !action.Valid() {
		return ErrUnimplemented, fmt.Errorf("unsupported action %q", action)
	}

	timeout := action.Timeout()
	if i.Timeout > 0 {
		timeout = i.Timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	script := i.ScriptPath(kind)
	cmd := exec.CommandContext(ctx, script, string(action))
	cmd.Env = i.environment(params)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	cmd.Stdout = nil

	// Reap a killed child even if it inherited pipes that keep Wait alive.
	cmd.WaitDelay = 5 * time.Second

	err := cmd.Run()
	if err == nil {
		i.logger.Debug().Str("kind", kind).Str("action", string(action)).Msg("resource agent succeeded")
		return Success, nil
	}

	if ctx.Err() == context.DeadlineExceeded {
		return ErrGeneric, fmt.Errorf("%w: %s %s after %s: %s",
			ErrTimeout, kind, action, timeout, stderr.String())
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := CodeFromExit(exitErr.ExitCode())
		if code == ErrUnimplemented && exitErr.ExitCode() > int(NotRunning) {
			i.logger.Warn().
				Str("kind", kind).
				Int("exit", exitErr.ExitCode()).
				Msg("unexpected resource agent return status")
		}
		i.logger.Debug().
			Str("kind", kind).
			Str("action", string(action)).
			Str("code", code.String()).
			Str("stderr", stderr.String()).
			Msg("resource agent returned non-zero")
		return code, nil
	}

	return ErrGeneric, fmt.Errorf("%w: could not run %s: %v", ErrUnavailable, script, err)
}

// environment builds the child environment: a minimum inherited set plus the
// OCF contract variables.
func (i *Invoker) environment(params types.Params) []string {
	testID := i.TestID
	if testID == "" {
		testID = strconv.Itoa(os.Getpid())
	}

	env := []string{
		"PATH=" + os.Getenv("PATH"),
		"OCF_ROOT=" + i.Root,
		config.EnvTestID + "=" + testID,
	}
	if dir, ok := config.TestDirectory(); ok {
		env = append(env, config.EnvTestDirectory+"="+dir)
	}
	if logPath := os.Getenv(config.EnvTestLog); logPath != "" {
		env = append(env, config.EnvTestLog+"="+logPath)
	}
	for _, kv := range params {
		env = append(env, "OCF_RESKEY_"+kv.Key+"="+kv.Value)
	}
	return env
}
