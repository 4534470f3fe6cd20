package client

import (
	"context"
	"time"

	pb "github.com/dmitrijs2005/bookings/internal/proto"
)

// Client is the transport-agnostic contract the CLI talks to.
type Client interface {
	Close() error
	Register(ctx context.Context, in *pb.RegisterRequest) (*pb.User, error)
	Login(ctx context.Context, username, password string) (*pb.User, error)
	History(ctx context.Context) ([]*pb.Booking, error)
	CreateBooking(ctx context.Context, service string, scheduledAt time.Time) (*pb.Booking, error)
	Ping(ctx context.Context) error
	Logout()
	LoggedIn() bool
}
