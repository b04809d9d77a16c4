package client

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/lanl/halo/api/proto"
	"github.com/lanl/halo/pkg/types"
)

// Mgmt is the CLI's client for the manager's local control socket.
type Mgmt struct {
	conn   *grpc.ClientConn
	client proto.HaloMgmtClient
}

// NewMgmt connects to the manager's unix socket. The socket is local and
// permission-guarded; there is no TLS on this channel.
func NewMgmt(socketPath string) (*Mgmt, error) {
	conn, err := grpc.NewClient("unix://"+socketPath,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("could not connect to manager socket %q: %w", socketPath, err)
	}
	return &Mgmt{
		conn:   conn,
		client: proto.NewHaloMgmtClient(conn),
	}, nil
}

// Close closes the connection.
func (m *Mgmt) Close() error {
	return m.conn.Close()
}

// Monitor fetches the cluster status snapshot.
func (m *Mgmt) Monitor(ctx context.Context) (types.ClusterSnapshot, error) {
	resp, err := m.client.Monitor(ctx, &proto.MonitorRequest{})
	if err != nil {
		return types.ClusterSnapshot{}, fmt.Errorf("monitor rpc failed: %w", err)
	}

	snap := types.ClusterSnapshot{}
	for _, res := range resp.GetResources() {
		snap.Resources = append(snap.Resources, types.ResourceSnapshot{
			ID:     res.GetId(),
			Kind:   res.GetKind(),
			Params: ParamsFromProto(res.GetParameters()),
			Status: StatusFor(res.GetStatus()),
			Host:   res.GetHost(),
			Epoch:  res.GetEpoch(),
		})
	}
	for _, h := range resp.GetHosts() {
		snap.Hosts = append(snap.Hosts, types.HostSnapshot{
			ID:    h.GetId(),
			State: hostStateFromString(h.GetState()),
			Power: powerFromString(h.GetPower()),
		})
	}
	return snap, nil
}

// PowerStatus queries a host's power state through the manager.
func (m *Mgmt) PowerStatus(ctx context.Context, hostID string) (bool, string, error) {
	return m.power(ctx, hostID, m.client.PowerStatus)
}

// PowerOff fences a host through the manager.
func (m *Mgmt) PowerOff(ctx context.Context, hostID string) (bool, string, error) {
	return m.power(ctx, hostID, m.client.PowerOff)
}

// PowerOn restores power to a host through the manager.
func (m *Mgmt) PowerOn(ctx context.Context, hostID string) (bool, string, error) {
	return m.power(ctx, hostID, m.client.PowerOn)
}

func (m *Mgmt) power(ctx context.Context, hostID string,
	call func(context.Context, *proto.PowerRequest, ...grpc.CallOption) (*proto.PowerResponse, error),
) (bool, string, error) {
	resp, err := call(ctx, &proto.PowerRequest{Host: hostID})
	if err != nil {
		return false, "", fmt.Errorf("power rpc failed: %w", err)
	}
	return resp.GetOk(), resp.GetDetail(), nil
}

// StatusFor maps a wire resource state onto the model status.
func StatusFor(s proto.ResourceState) types.ResourceStatus {
	switch s {
	case proto.ResourceState_RESOURCE_STATE_CHECKING_HOME:
		return types.StatusCheckingHome
	case proto.ResourceState_RESOURCE_STATE_RUNNING_ON_HOME:
		return types.StatusRunningOnHome
	case proto.ResourceState_RESOURCE_STATE_STOPPED:
		return types.StatusStopped
	case proto.ResourceState_RESOURCE_STATE_CHECKING_AWAY:
		return types.StatusCheckingAway
	case proto.ResourceState_RESOURCE_STATE_RUNNING_ON_AWAY:
		return types.StatusRunningOnAway
	case proto.ResourceState_RESOURCE_STATE_UNRUNNABLE:
		return types.StatusUnrunnable
	default:
		return types.StatusUnknown
	}
}

// StateFor maps a model status onto the wire resource state.
func StateFor(s types.ResourceStatus) proto.ResourceState {
	switch s {
	case types.StatusCheckingHome:
		return proto.ResourceState_RESOURCE_STATE_CHECKING_HOME
	case types.StatusRunningOnHome:
		return proto.ResourceState_RESOURCE_STATE_RUNNING_ON_HOME
	case types.StatusStopped:
		return proto.ResourceState_RESOURCE_STATE_STOPPED
	case types.StatusCheckingAway:
		return proto.ResourceState_RESOURCE_STATE_CHECKING_AWAY
	case types.StatusRunningOnAway:
		return proto.ResourceState_RESOURCE_STATE_RUNNING_ON_AWAY
	case types.StatusUnrunnable:
		return proto.ResourceState_RESOURCE_STATE_UNRUNNABLE
	default:
		return proto.ResourceState_RESOURCE_STATE_UNKNOWN
	}
}

func hostStateFromString(s string) types.HostState {
	for _, st := range []types.HostState{
		types.HostReachable, types.HostUnreachable,
		types.HostFenced, types.HostPoweringOn,
	} {
		if st.String() == s {
			return st
		}
	}
	return types.HostUnknown
}

func powerFromString(s string) types.PowerState {
	switch s {
	case types.Powered.String():
		return types.Powered
	case types.Unpowered.String():
		return types.Unpowered
	default:
		return types.PowerUnknown
	}
}
