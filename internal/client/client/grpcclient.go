package client

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/bookings/internal/api"
	"github.com/dmitrijs2005/bookings/internal/common"
	pb "github.com/dmitrijs2005/bookings/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      pb.BookingsServiceClient

	mu    sync.RWMutex
	token string
}

var _ Client = (*GRPCClient)(nil)

func NewBookingsClientService(endpointURL string, timeout time.Duration) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewBookingsServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// withAccessToken replaces any authorization entry in the outgoing metadata.
func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) setToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func (s *GRPCClient) currentToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *GRPCClient) LoggedIn() bool {
	return s.currentToken() != ""
}

// Logout forgets the session token.
func (s *GRPCClient) Logout() {
	s.setToken("")
}

func (s *GRPCClient) Register(ctx context.Context, in *pb.RegisterRequest) (*pb.User, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Register(ctx, in)
	if err != nil {
		return nil, s.mapError(err)
	}

	s.setToken(resp.GetToken())
	return resp.GetUser(), nil
}

func (s *GRPCClient) Login(ctx context.Context, username, password string) (*pb.User, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Login(ctx, &pb.LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, s.mapError(err)
	}

	s.setToken(resp.GetToken())
	return resp.GetUser(), nil
}

func (s *GRPCClient) History(ctx context.Context) ([]*pb.Booking, error) {
	token := s.currentToken()
	if token == "" {
		return nil, ErrNotLoggedIn
	}

	ctx, cancel := s.withTimeout(withAccessToken(ctx, token))
	defer cancel()

	resp, err := s.client.GetUserBookingsHistory(ctx, &pb.GetUserBookingsHistoryRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	return resp.GetBookings(), nil
}

func (s *GRPCClient) CreateBooking(ctx context.Context, service string, scheduledAt time.Time) (*pb.Booking, error) {
	token := s.currentToken()
	if token == "" {
		return nil, ErrNotLoggedIn
	}

	ctx, cancel := s.withTimeout(withAccessToken(ctx, token))
	defer cancel()

	resp, err := s.client.CreateBooking(ctx, &pb.CreateBookingRequest{Service: service, ScheduledAt: timestamppb.New(scheduledAt)})
	if err != nil {
		return nil, s.mapError(err)
	}

	return resp.GetBooking(), nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.GetStatus() != "OK" {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	switch status.Code(err) {
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return api.FromStatus(err)
	}
}
