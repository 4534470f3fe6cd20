package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/bookings/internal/api"
	"github.com/dmitrijs2005/bookings/internal/common"
	pb "github.com/dmitrijs2005/bookings/internal/proto"
	"github.com/dmitrijs2005/bookings/internal/server/auth"
	"github.com/dmitrijs2005/bookings/internal/server/metrics"
	"github.com/dmitrijs2005/bookings/internal/server/models"
	"github.com/dmitrijs2005/bookings/internal/server/services"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.AuthResponse, error) {

	s.logger.Info(ctx, "Registration request", "username", req.GetUsername())

	res, err := s.users.Register(ctx, services.RegisterInput{
		UserName:        req.GetUsername(),
		Email:           req.GetEmail(),
		Password:        req.GetPassword(),
		ConfirmPassword: req.GetConfirmPassword(),
		PhoneNumber:     req.GetPhoneNumber(),
	})
	if err != nil {
		return nil, s.fail(ctx, metrics.OperationRegister, err)
	}

	metrics.RecordOutcome(metrics.OperationRegister, nil)
	return s.authResponse(ctx, res), nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.AuthResponse, error) {

	res, err := s.users.Login(ctx, req.GetUsername(), req.GetPassword())
	if err != nil {
		return nil, s.fail(ctx, metrics.OperationLogin, err)
	}

	metrics.RecordOutcome(metrics.OperationLogin, nil)
	return s.authResponse(ctx, res), nil
}

func (s *GRPCServer) GetUserBookingsHistory(ctx context.Context, _ *pb.GetUserBookingsHistoryRequest) (*pb.GetUserBookingsHistoryResponse, error) {

	claims, _ := auth.ClaimsFromContext(ctx)

	bookings, err := s.bookings.History(ctx, claims)
	if err != nil {
		return nil, s.fail(ctx, metrics.OperationHistory, err)
	}

	metrics.RecordOutcome(metrics.OperationHistory, nil)
	return &pb.GetUserBookingsHistoryResponse{Bookings: toPBBookings(bookings)}, nil
}

func (s *GRPCServer) CreateBooking(ctx context.Context, req *pb.CreateBookingRequest) (*pb.CreateBookingResponse, error) {

	claims, _ := auth.ClaimsFromContext(ctx)

	var scheduledAt time.Time
	if req.GetScheduledAt() != nil {
		scheduledAt = req.GetScheduledAt().AsTime()
	}

	b, err := s.bookings.Create(ctx, claims, req.GetService(), scheduledAt)
	if err != nil {
		return nil, s.fail(ctx, metrics.OperationBook, err)
	}

	metrics.RecordOutcome(metrics.OperationBook, nil)
	return &pb.CreateBookingResponse{Booking: toPBBooking(b)}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, _ *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

// authResponse attaches the resolved history to the principal. Resolution
// is best effort: on failure the history is left empty and the call still
// succeeds, since the principal and token are already valid.
func (s *GRPCServer) authResponse(ctx context.Context, res *services.AuthResult) *pb.AuthResponse {
	user := toPBUser(res.User)

	histories, err := s.bookings.ResolveHistories(ctx, res.User)
	if err != nil {
		s.logger.Warn(ctx, "bookings history not resolved", "user_id", res.User.ID, "error", err)
	} else {
		user.BookingsHistory = toPBBookings(histories[res.User.ID])
	}

	return &pb.AuthResponse{User: user, Token: res.Token}
}

// fail records the outcome, logs by severity and converts err for the wire.
func (s *GRPCServer) fail(ctx context.Context, op string, err error) error {
	metrics.RecordOutcome(op, err)

	if common.KindOf(err) == common.KindUpstreamFailure || common.KindOf(err) == 0 {
		s.logger.Error(ctx, "request failed", "operation", op, "error", err)
	} else {
		s.logger.Info(ctx, "request rejected", "operation", op, "kind", common.KindOf(err).String(), "reason", err.Error())
	}

	return api.ToStatus(err)
}

func toPBUser(u *models.User) *pb.User {
	return &pb.User{
		Id:                u.ID,
		Username:          u.UserName,
		Email:             u.Email,
		Admin:             u.IsAdmin,
		PhoneNumber:       u.PhoneNumber,
		CreatedAt:         timestamppb.New(u.CreatedAt),
		BookingReferences: u.BookingReferences,
	}
}

func toPBBooking(b *models.Booking) *pb.Booking {
	return &pb.Booking{
		Id:          b.ID,
		Service:     b.Service,
		ScheduledAt: timestamppb.New(b.ScheduledAt),
		CreatedAt:   timestamppb.New(b.CreatedAt),
	}
}

func toPBBookings(bs []*models.Booking) []*pb.Booking {
	out := make([]*pb.Booking, 0, len(bs))
	for _, b := range bs {
		out = append(out, toPBBooking(b))
	}
	return out
}
