// Package health поднимает gRPC-сервер со стандартным сервисом grpc.health.v1.Health
// и рефлексией. Статус SERVING выставляется только после успешного пинга хранилища.
package health

import (
	"context"
	"net"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName имя сервиса, для которого публикуется отдельный статус.
const ServiceName = "shortlink"

// Pinger проверяет доступность хранилища.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	grpc   *grpc.Server
	health *grpchealth.Server
	pinger Pinger
	logger *zap.Logger
}

// NewServer создаёт сервер. До первого Check оба статуса NOT_SERVING.
func NewServer(pinger Pinger, logger *zap.Logger, opts ...grpc.ServerOption) *Server {
	s := &Server{
		grpc:   grpc.NewServer(opts...),
		health: grpchealth.NewServer(),
		pinger: pinger,
		logger: logger,
	}
	healthpb.RegisterHealthServer(s.grpc, s.health)
	reflection.Register(s.grpc)

	s.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
	return s
}

func (s *Server) setStatus(st healthpb.HealthCheckResponse_ServingStatus) {
	s.health.SetServingStatus("", st)
	s.health.SetServingStatus(ServiceName, st)
}

// Check пингует хранилище и обновляет статус.
func (s *Server) Check(ctx context.Context) error {
	if err := s.pinger.Ping(ctx); err != nil {
		s.logger.Warn("store ping failed", zap.Error(err))
		s.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
		return err
	}
	s.setStatus(healthpb.HealthCheckResponse_SERVING)
	return nil
}

// Watch периодически вызывает Check, пока не отменён ctx.
func (s *Server) Watch(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = s.Check(ctx)
		}
	}
}

// Serve блокируется до остановки сервера.
func (s *Server) Serve(lis net.Listener) error {
	s.logger.Info("gRPC health server started", zap.String("address", lis.Addr().String()))
	return s.grpc.Serve(lis)
}

// Stop переводит статус в NOT_SERVING и дожидается завершения активных вызовов.
func (s *Server) Stop() {
	s.health.Shutdown()
	s.grpc.GracefulStop()
}
