package fence

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/lanl/halo/pkg/log"
	"github.com/lanl/halo/pkg/metrics"
	"github.com/lanl/halo/pkg/types"
)

// Command is a fence agent action.
type Command string

const (
	CommandOn     Command = "on"
	CommandOff    Command = "off"
	CommandStatus Command = "status"
)

// Retry policy for fence_off: exponential backoff from backoffBase, doubling
// up to backoffCap, for at most offAttempts tries.
const (
	offAttempts = 4
	backoffBase = 500 * time.Millisecond
	backoffCap  = 8 * time.Second

	// commandTimeout bounds one fence agent subprocess.
	commandTimeout = 30 * time.Second
)

// ErrFatal reports that fencing a host failed permanently: every off attempt
// was exhausted. Resources on a host with
// a fatal fence failure become unrunnable until an operator intervenes.
var ErrFatal = errors.New("fatal fence failure")

// kind enumerates the supported fence agents. The set is closed: agents are
// a tagged variant, not an open hierarchy, so configuration can be validated
// up front and each agent's stdin format is known here.
type kind int

const (
	kindPowerman kind = iota
	kindRedfish
	kindTest
)

// Agent drives the fence agent subprocess configured for one host.
type Agent struct {
	kind kind

	// redfish
	username string
	password string

	// fence_test
	testID string
	target string

	logger zerolog.Logger
}

// New builds an Agent from its configured name and parameters. The
// parameters must already have passed config validation; New re-checks the
// required keys and fails rather than construct an unusable agent.
func New(agent string, params map[string]string) (*Agent, error) {
	a := &Agent{logger: log.WithComponent("fence")}
	switch agent {
	case "powerman":
		a.kind = kindPowerman
	case "redfish":
		a.kind = kindRedfish
		a.username = params["username"]
		a.password = params["password"]
		if a.username == "" || a.password == "" {
			return nil, fmt.Errorf("redfish fence agent needs username and password")
		}
	case "fence_test":
		a.kind = kindTest
		a.testID = params["test_id"]
		a.target = params["target"]
		if a.testID == "" || a.target == "" {
			return nil, fmt.Errorf("test fence agent needs test_id and target")
		}
	default:
		return nil, fmt.Errorf("unknown fence agent %q", agent)
	}
	return a, nil
}

// Target returns the identity the agent fences. For the test agent this is
// the configured target name; it doubles as the host's unique ID in the test
// environment, where hostnames are all localhost.
func (a *Agent) Target() (string, bool) {
	if a.kind == kindTest {
		return a.target, true
	}
	return "", false
}

// executable returns the fence agent binary name. Fence agents follow the
// fence_<name> convention and are found via PATH.
func (a *Agent) executable() string {
	switch a.kind {
	case kindPowerman:
		return "fence_powerman"
	case kindRedfish:
		return "fence_redfish"
	default:
		return "fence_test"
	}
}

// stdinArgs renders the agent's arguments. Fence agents take key=value lines
// on stdin rather than argv.
func (a *Agent) stdinArgs(hostID string, cmd Command) []byte {
	var lines []string
	switch a.kind {
	case kindPowerman:
		lines = []string{
			"ipaddr=localhost",
			"action=" + string(cmd),
			"plug=" + hostID,
		}
	case kindRedfish:
		lines = []string{
			"ipaddr=" + hostID,
			"action=" + string(cmd),
			"username=" + a.username,
			"password=" + a.password,
			"ssl-insecure=true",
		}
	default:
		lines = []string{
			"action=" + string(cmd),
			"test_id=" + a.testID,
			"target=" + a.target,
		}
	}
	return []byte(strings.Join(lines, "\n") + "\n")
}

// run executes one fence agent invocation and returns its stdout.
func (a *Agent) run(ctx context.Context, hostID string, cmd Command) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	proc := exec.CommandContext(ctx, a.executable())
	proc.Stdin = bytes.NewReader(a.stdinArgs(hostID, cmd))

	var stdout, stderr bytes.Buffer
	proc.Stdout = &stdout
	proc.Stderr = &stderr
	proc.WaitDelay = 5 * time.Second

	err := proc.Run()
	metrics.FenceCommandsTotal.WithLabelValues(string(cmd), resultLabel(err)).Inc()
	if err != nil {
		return stdout.String(), fmt.Errorf("fence agent %s %s on %s failed: %v: %s",
			a.executable(), cmd, hostID, err, stderr.String())
	}
	return stdout.String(), nil
}

func resultLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// Status queries the host's power state.
func (a *Agent) Status(ctx context.Context, hostID string) (types.PowerState, error) {
	out, err := a.run(ctx, hostID, CommandStatus)
	if err != nil {
		return types.PowerUnknown, err
	}
	switch {
	case strings.Contains(out, "is ON"):
		return types.Powered, nil
	case strings.Contains(out, "is OFF"):
		return types.Unpowered, nil
	default:
		return types.PowerUnknown, fmt.Errorf("fence agent reported unparseable status %q", strings.TrimSpace(out))
	}
}

// On attempts to restore power to the host.
func (a *Agent) On(ctx context.Context, hostID string) error {
	_, err := a.run(ctx, hostID, CommandOn)
	return err
}

// Off performs a single power-off attempt. Most callers want OffWithRetry.
func (a *Agent) Off(ctx context.Context, hostID string) error {
	_, err := a.run(ctx, hostID, CommandOff)
	return err
}

// OffWithRetry powers the host off, retrying with exponential backoff until
// the attempt budget is exhausted. Exhaustion is a fatal fence failure:
// the returned error wraps ErrFatal and the host must not be trusted to have
// stopped serving.
func (a *Agent) OffWithRetry(ctx context.Context, hostID string) error {
	backoff := backoffBase
	var lastErr error

	for attempt := 1; attempt <= offAttempts; attempt++ {
		lastErr = a.Off(ctx, hostID)
		if lastErr == nil {
			if attempt > 1 {
				a.logger.Info().
					Str("host_id", hostID).
					Int("attempt", attempt).
					Msg("fence off succeeded after retry")
			}
			return nil
		}

		a.logger.Warn().
			Str("host_id", hostID).
			Int("attempt", attempt).
			Err(lastErr).
			Msg("fence off attempt failed")

		if attempt == offAttempts {
			break
		}
		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return fmt.Errorf("%w: %s: %v", ErrFatal, ctx.Err(), lastErr)
		}
		backoff *= 2
		if backoff > backoffCap {
			backoff = backoffCap
		}
	}

	return fmt.Errorf("%w: host %s: %v", ErrFatal, hostID, lastErr)
}
