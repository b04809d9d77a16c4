package agent

import (
	"context"
	"fmt"
	"net"
	"sync"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"

	"github.com/lanl/halo/api/proto"
	"github.com/lanl/halo/pkg/client"
	"github.com/lanl/halo/pkg/log"
	"github.com/lanl/halo/pkg/ocf"
	"github.com/lanl/halo/pkg/testenv"
	"github.com/lanl/halo/pkg/types"
)

// Config holds agent configuration.
type Config struct {
	// Network is the management network CIDR; the agent listens on the
	// first local interface address inside it.
	Network string

	// Port to listen on.
	Port int

	// OCFRoot is the directory holding resource agent scripts; empty
	// takes the OCF_ROOT environment default.
	OCFRoot string

	// TestID identifies this agent in the test environment, where several
	// agents share one hostname. Empty outside tests.
	TestID string
}

// Server is the remote agent: the gRPC endpoint on each managed host that
// executes OCF resource operations on behalf of the manager.
type Server struct {
	proto.UnimplementedOcfResourceAgentServer

	invoker *ocf.Invoker
	grpc    *grpc.Server

	// queues serializes operations per resource identifier. Queues are
	// created lazily on first reference and live for the process.
	mu     sync.Mutex
	queues map[string]chan *job

	logger zerolog.Logger
}

type job struct {
	ctx    context.Context
	kind   string
	action ocf.Action
	params types.Params
	done   chan result
}

type result struct {
	code ocf.Code
	err  error
}

// NewServer creates the agent server.
func NewServer(cfg Config) (*Server, error) {
	creds, err := client.ServerCredentials()
	if err != nil {
		return nil, err
	}

	s := &Server{
		invoker: ocf.NewInvoker(cfg.OCFRoot, cfg.TestID),
		grpc:    grpc.NewServer(grpc.Creds(creds)),
		queues:  make(map[string]chan *job),
		logger:  log.WithComponent("agent"),
	}
	proto.RegisterOcfResourceAgentServer(s.grpc, s)
	return s, nil
}

// Run advertises the agent for the test fence agent, binds inside the
// management network, and serves until the context is cancelled.
func (s *Server) Run(ctx context.Context, cfg Config) error {
	// The test fence agent knows this agent only through its pid file; an
	// agent that cannot write it must not serve, or it could never be
	// fenced.
	if err := testenv.AdvertisePID(cfg.TestID); err != nil {
		return err
	}

	addr, err := ListeningAddress(cfg.Network)
	if err != nil {
		return err
	}

	lis, err := net.Listen("tcp", fmt.Sprintf("%s:%d", addr, cfg.Port))
	if err != nil {
		return fmt.Errorf("could not listen on %s:%d: %w", addr, cfg.Port, err)
	}

	s.logger.Info().Str("addr", lis.Addr().String()).Msg("agent listening")

	go func() {
		<-ctx.Done()
		s.grpc.GracefulStop()
	}()

	return s.grpc.Serve(lis)
}

// Operation implements the OcfResourceAgent RPC. Operations with the same
// resource identifier execute strictly sequentially in arrival order;
// different resources proceed in parallel on their own queues.
func (s *Server) Operation(ctx context.Context, req *proto.OperationRequest) (*proto.OperationResponse, error) {
	action := client.ActionFor(req.GetOp())
	args := client.ParamsFromProto(req.GetArgs())

	// The ocf_type argument locates the script; everything else passes to
	// it verbatim.
	kind, ok := args.Get("ocf_type")
	if !ok {
		return &proto.OperationResponse{
			Error: fmt.Sprintf("operation for %q carries no ocf_type argument", req.GetResource()),
		}, nil
	}
	params := args.Without("ocf_type")

	s.logger.Debug().
		Str("resource_id", req.GetResource()).
		Str("op", string(action)).
		Str("kind", kind).
		Msg("operation request")

	j := &job{
		ctx:    ctx,
		kind:   kind,
		action: action,
		params: params,
		done:   make(chan result, 1),
	}

	select {
	case s.queue(req.GetResource()) <- j:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	select {
	case res := <-j.done:
		if res.err != nil {
			// Subprocess faults are data, not RPC errors: the manager
			// must be able to tell "script failed" from "host is gone".
			return &proto.OperationResponse{Error: res.err.Error()}, nil
		}
		return &proto.OperationResponse{OcfCode: int32(res.code)}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// queue returns the serial queue for a resource, creating it (and its
// worker goroutine) on first reference.
func (s *Server) queue(resourceID string) chan *job {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, ok := s.queues[resourceID]
	if !ok {
		q = make(chan *job, 16)
		s.queues[resourceID] = q
		go s.worker(resourceID, q)
	}
	return q
}

func (s *Server) worker(resourceID string, q chan *job) {
	logger := s.logger.With().Str("resource_id", resourceID).Logger()
	for j := range q {
		// The invoker bounds execution with the per-action timeout; the
		// caller's context is deliberately not used to cancel the
		// subprocess, because interrupting a start or stop midway leaves
		// the resource indeterminate. The RPC may give up waiting, the
		// operation still runs to completion.
		code, err := s.invoker.Do(context.Background(), j.kind, j.action, j.params)
		if err != nil {
			logger.Warn().Err(err).Str("op", string(j.action)).Msg("operation failed")
		}
		j.done <- result{code: code, err: err}
	}
}

// ListeningAddress finds a local interface address inside the management
// network CIDR.
func ListeningAddress(network string) (net.IP, error) {
	_, cidr, err := net.ParseCIDR(network)
	if err != nil {
		return nil, fmt.Errorf("bad management network %q: %w", network, err)
	}

	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return nil, fmt.Errorf("could not enumerate interfaces: %w", err)
	}
	for _, addr := range addrs {
		ipnet, ok := addr.(*net.IPNet)
		if !ok {
			continue
		}
		if ip := ipnet.IP.To4(); ip != nil && cidr.Contains(ip) {
			return ip, nil
		}
	}

	return nil, fmt.Errorf("no address in %s to listen on; set the management network with %s",
		network, "HALO_NET")
}
