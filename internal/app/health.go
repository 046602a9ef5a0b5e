package app

import (
	"errors"
	"fmt"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"parcel-marketplace/internal/config"
)

// healthServer exposes grpc.health.v1 on a side port for orchestrators.
type healthServer struct {
	addr   string
	server *grpc.Server
	health *health.Server
}

// newHealthServer returns nil when GRPC_HEALTH_PORT is 0.
func newHealthServer(cfg *config.Config) *healthServer {
	if cfg.GRPCHealthPort == 0 {
		return nil
	}
	hs := health.NewServer()
	srv := grpc.NewServer()
	healthpb.RegisterHealthServer(srv, hs)
	return &healthServer{
		addr:   fmt.Sprintf(":%d", cfg.GRPCHealthPort),
		server: srv,
		health: hs,
	}
}

func (h *healthServer) serve(lis net.Listener) error {
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	if err := h.server.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("grpc health: %w", err)
	}
	return nil
}

func (h *healthServer) listenAndServe() error {
	lis, err := net.Listen("tcp", h.addr)
	if err != nil {
		return fmt.Errorf("grpc health listen: %w", err)
	}
	return h.serve(lis)
}

// stop flips every service to NOT_SERVING before draining connections.
func (h *healthServer) stop() {
	h.health.Shutdown()
	h.server.GracefulStop()
}
