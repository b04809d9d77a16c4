package api

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/lanl/halo/pkg/metrics"
)

// requestMetricsInterceptor counts management requests by method and gRPC
// status code.
func requestMetricsInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		resp, err := handler(ctx, req)
		metrics.APIRequestsTotal.WithLabelValues(
			methodName(info.FullMethod),
			status.Code(err).String(),
		).Inc()
		return resp, err
	}
}

// methodName extracts the bare method from a full gRPC method path, e.g.
// "/halo.HaloMgmt/Monitor" -> "Monitor".
func methodName(full string) string {
	if i := strings.LastIndex(full, "/"); i >= 0 {
		return full[i+1:]
	}
	return full
}
