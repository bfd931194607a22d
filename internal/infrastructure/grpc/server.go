package grpc

import (
	"context"
	"fmt"
	"net"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/shettypp/ai-syllabus-planner/pkg/logger"
)

// Server serves the gRPC health and reflection services
type Server struct {
	grpcServer *grpc.Server
	health     *health.Server
	logger     *zap.Logger
	port       string
	listener   net.Listener
}

// ServerOption configures a Server
type ServerOption func(*Server)

// WithPort sets the listen port
func WithPort(port string) ServerOption {
	return func(s *Server) {
		s.port = port
	}
}

// WithLogger sets the logger used by the server and its interceptors
func WithLogger(logger *zap.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a gRPC server with health checking and reflection
func NewServer(opts ...ServerOption) *Server {
	s := &Server{
		logger: zap.NewNop(),
		port:   "9090",
	}

	for _, opt := range opts {
		opt(s)
	}

	s.grpcServer = grpc.NewServer(
		grpc.UnaryInterceptor(logger.NewGrpcUnaryServerInterceptor(s.logger)),
		grpc.StreamInterceptor(logger.NewGrpcStreamServerInterceptor(s.logger)),
	)

	s.health = health.NewServer()
	healthpb.RegisterHealthServer(s.grpcServer, s.health)
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	reflection.Register(s.grpcServer)

	return s
}

// Start listens on the configured port and serves until stopped
func (s *Server) Start() error {
	lis, err := net.Listen("tcp", ":"+s.port)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	return s.Serve(lis)
}

// Serve serves on an existing listener
func (s *Server) Serve(lis net.Listener) error {
	s.listener = lis
	s.logger.Info("Starting gRPC server", zap.String("address", lis.Addr().String()))
	return s.grpcServer.Serve(lis)
}

// Shutdown marks the server as not serving and stops it, forcing the stop
// when ctx expires first.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down gRPC server")
	s.health.Shutdown()

	stopped := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		s.grpcServer.Stop()
		return ctx.Err()
	}
}
