package client

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"google.golang.org/grpc"

	"github.com/lanl/halo/api/proto"
	"github.com/lanl/halo/pkg/ocf"
	"github.com/lanl/halo/pkg/types"
)

// Agents is the manager-side client for remote agent RPCs. Connections are
// cached per address and redialed lazily by gRPC, so one Agents instance
// serves every engine for the life of the manager.
type Agents struct {
	mu    sync.Mutex
	conns map[string]*grpc.ClientConn
}

// NewAgents creates the agent client pool.
func NewAgents() *Agents {
	return &Agents{conns: make(map[string]*grpc.ClientConn)}
}

// Close tears down all cached connections.
func (a *Agents) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	for addr, conn := range a.conns {
		_ = conn.Close()
		delete(a.conns, addr)
	}
}

func (a *Agents) conn(addr string) (*grpc.ClientConn, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if conn, ok := a.conns[addr]; ok {
		return conn, nil
	}

	creds, err := clientCredentials()
	if err != nil {
		return nil, err
	}
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("could not create client for %s: %w", addr, err)
	}
	a.conns[addr] = conn
	return conn, nil
}

// Operation issues one resource operation against the agent at addr and
// returns the raw OCF code.
//
// Error classes matter to the caller: a transport fault comes back as a
// plain error (a host-liveness signal), while an error string reported by a
// live agent comes back as *ocf.RemoteError.
func (a *Agents) Operation(ctx context.Context, addr, resourceID string, action ocf.Action, args types.Params) (ocf.Code, error) {
	conn, err := a.conn(addr)
	if err != nil {
		return ocf.ErrGeneric, err
	}

	req := &proto.OperationRequest{
		Resource: resourceID,
		Op:       operationFor(action),
		Args:     paramsToProto(args),
	}

	resp, err := proto.NewOcfResourceAgentClient(conn).Operation(ctx, req)
	if err != nil {
		return ocf.ErrGeneric, fmt.Errorf("operation rpc to %s failed: %w", addr, err)
	}
	if resp.Error != "" {
		return ocf.ErrGeneric, &ocf.RemoteError{Msg: resp.Error}
	}
	return ocf.Code(resp.OcfCode), nil
}

// Ping checks that the agent's RPC endpoint at addr accepts connections.
// The host prober uses this for liveness; a plain TCP round trip is enough
// to tell a dead host from a live one without touching any resource.
func Ping(ctx context.Context, addr string) error {
	d := net.Dialer{Timeout: 3 * time.Second}
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	return conn.Close()
}

func operationFor(action ocf.Action) proto.Operation {
	switch action {
	case ocf.ActionStart:
		return proto.Operation_OPERATION_START
	case ocf.ActionStop:
		return proto.Operation_OPERATION_STOP
	default:
		return proto.Operation_OPERATION_MONITOR
	}
}

// ActionFor maps a wire operation back onto an OCF action.
func ActionFor(op proto.Operation) ocf.Action {
	switch op {
	case proto.Operation_OPERATION_START:
		return ocf.ActionStart
	case proto.Operation_OPERATION_STOP:
		return ocf.ActionStop
	default:
		return ocf.ActionMonitor
	}
}

func paramsToProto(params types.Params) []*proto.Parameter {
	out := make([]*proto.Parameter, 0, len(params))
	for _, kv := range params {
		out = append(out, &proto.Parameter{Key: kv.Key, Value: kv.Value})
	}
	return out
}

// ParamsFromProto converts wire parameters back to the ordered list.
func ParamsFromProto(in []*proto.Parameter) types.Params {
	out := make(types.Params, 0, len(in))
	for _, p := range in {
		out = append(out, types.Param{Key: p.GetKey(), Value: p.GetValue()})
	}
	return out
}
