// Package grpc is the server transport: it exposes the user and booking
// services over gRPC and guards the authenticated methods.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/bookings/internal/logging"
	pb "github.com/dmitrijs2005/bookings/internal/proto"
	"github.com/dmitrijs2005/bookings/internal/server/auth"
	"github.com/dmitrijs2005/bookings/internal/server/models"
	"github.com/dmitrijs2005/bookings/internal/server/services"
	"google.golang.org/grpc"
)

type UserService interface {
	Register(ctx context.Context, in services.RegisterInput) (*services.AuthResult, error)
	Login(ctx context.Context, userName, password string) (*services.AuthResult, error)
}

type BookingService interface {
	ResolveHistories(ctx context.Context, users ...*models.User) (map[string][]*models.Booking, error)
	History(ctx context.Context, claims *auth.Claims) ([]*models.Booking, error)
	Create(ctx context.Context, claims *auth.Claims, service string, scheduledAt time.Time) (*models.Booking, error)
}

// ClaimsExtractor authenticates an inbound call.
type ClaimsExtractor interface {
	Extract(ctx context.Context) (*auth.Claims, error)
}

type GRPCServer struct {
	pb.UnimplementedBookingsServiceServer
	address         string
	users           UserService
	bookings        BookingService
	extractor       ClaimsExtractor
	logger          logging.Logger
	shutdownTimeout time.Duration
}

var _ pb.BookingsServiceServer = (*GRPCServer)(nil)

func NewGRPCServer(a string, l logging.Logger, us UserService, bs BookingService, ex ClaimsExtractor, shutdownTimeout time.Duration) *GRPCServer {
	return &GRPCServer{
		address:         a,
		logger:          l.With("module", "grpc_server"),
		users:           us,
		bookings:        bs,
		extractor:       ex,
		shutdownTimeout: shutdownTimeout,
	}
}

// newServer creates the gRPC server with interceptors and the service registered.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.authInterceptor))
	pb.RegisterBookingsServiceServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		s.stop(srv)
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}

// stop drains in-flight calls and forces the stop once shutdownTimeout elapses.
func (s *GRPCServer) stop(srv *grpc.Server) {
	done := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(done)
	}()

	if s.shutdownTimeout <= 0 {
		<-done
		return
	}

	timer := time.NewTimer(s.shutdownTimeout)
	defer timer.Stop()

	select {
	case <-done:
	case <-timer.C:
		s.logger.Warn(context.Background(), "graceful stop timed out, forcing")
		srv.Stop()
	}
}
