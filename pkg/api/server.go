package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"

	"github.com/lanl/halo/api/proto"
	"github.com/lanl/halo/pkg/client"
	"github.com/lanl/halo/pkg/cluster"
	"github.com/lanl/halo/pkg/log"
	"github.com/lanl/halo/pkg/types"
)

// Server implements the HaloMgmt gRPC service on the manager's local unix
// socket. It is strictly read-and-actuate: status queries return copies of
// the cluster state, and power operations relay into the host tracker.
type Server struct {
	proto.UnimplementedHaloMgmtServer

	cluster *cluster.Cluster
	grpc    *grpc.Server
	logger  zerolog.Logger
}

// NewServer creates the management server over the given cluster model.
func NewServer(c *cluster.Cluster) *Server {
	s := &Server{
		cluster: c,
		grpc:    grpc.NewServer(grpc.UnaryInterceptor(requestMetricsInterceptor())),
		logger:  log.WithComponent("api"),
	}
	proto.RegisterHaloMgmtServer(s.grpc, s)
	return s
}

// Run serves on the unix socket until the context is cancelled. A stale
// socket file from an earlier run is removed first.
func (s *Server) Run(ctx context.Context, socketPath string) error {
	if err := os.Remove(socketPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("could not remove stale socket %q: %w", socketPath, err)
	}

	lis, err := net.Listen("unix", socketPath)
	if err != nil {
		return fmt.Errorf("could not listen on %q: %w", socketPath, err)
	}

	s.logger.Info().Str("socket", socketPath).Msg("management api listening")

	go func() {
		<-ctx.Done()
		s.grpc.GracefulStop()
	}()

	return s.grpc.Serve(lis)
}

// Monitor returns the cluster status snapshot.
func (s *Server) Monitor(ctx context.Context, _ *proto.MonitorRequest) (*proto.ClusterSnapshot, error) {
	snap := s.cluster.Snapshot()

	resp := &proto.ClusterSnapshot{}
	for _, res := range snap.Resources {
		params := make([]*proto.Parameter, 0, len(res.Params))
		for _, kv := range res.Params {
			params = append(params, &proto.Parameter{Key: kv.Key, Value: kv.Value})
		}
		resp.Resources = append(resp.Resources, &proto.ResourceStatus{
			Id:         res.ID,
			Kind:       res.Kind,
			Parameters: params,
			Status:     client.StateFor(res.Status),
			Host:       res.Host,
			Epoch:      res.Epoch,
		})
	}
	for _, h := range snap.Hosts {
		resp.Hosts = append(resp.Hosts, &proto.HostStatus{
			Id:    h.ID,
			State: h.State.String(),
			Power: h.Power.String(),
		})
	}
	return resp, nil
}

// PowerStatus reports a host's power state as seen by its fence agent.
func (s *Server) PowerStatus(ctx context.Context, req *proto.PowerRequest) (*proto.PowerResponse, error) {
	power, err := s.cluster.Tracker.PowerStatus(ctx, req.GetHost())
	if err != nil {
		return &proto.PowerResponse{Ok: false, Detail: err.Error()}, nil
	}
	return &proto.PowerResponse{Ok: power != types.PowerUnknown, Detail: power.String()}, nil
}

// PowerOff fences the host.
func (s *Server) PowerOff(ctx context.Context, req *proto.PowerRequest) (*proto.PowerResponse, error) {
	if err := s.cluster.Tracker.EnsureFenced(ctx, req.GetHost()); err != nil {
		return &proto.PowerResponse{Ok: false, Detail: err.Error()}, nil
	}
	return &proto.PowerResponse{Ok: true, Detail: "host powered off"}, nil
}

// PowerOn restores power to the host. Resources do not move back
// automatically; the engines decide placement on their own ticks.
func (s *Server) PowerOn(ctx context.Context, req *proto.PowerRequest) (*proto.PowerResponse, error) {
	if err := s.cluster.Tracker.PowerOn(ctx, req.GetHost()); err != nil {
		return &proto.PowerResponse{Ok: false, Detail: err.Error()}, nil
	}
	return &proto.PowerResponse{Ok: true, Detail: "host powering on"}, nil
}
