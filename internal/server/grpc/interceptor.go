package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/bookings/internal/logging"
	pb "github.com/dmitrijs2005/bookings/internal/proto"
	"github.com/dmitrijs2005/bookings/internal/server/auth"
	"github.com/dmitrijs2005/bookings/internal/server/metrics"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// RequestIDHeader is the response header carrying the per-call request id.
const RequestIDHeader = "x-request-id"

// protectedMethods require a valid bearer token.
var protectedMethods = map[string]string{
	pb.BookingsService_GetUserBookingsHistory_FullMethodName: metrics.OperationHistory,
	pb.BookingsService_CreateBooking_FullMethodName:          metrics.OperationBook,
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	requestID := uuid.NewString()
	_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, requestID))
	ctx = logging.ContextWithRequestID(ctx, requestID)

	start := time.Now()
	resp, err := handler(ctx, req)

	s.logger.Info(ctx, "request",
		"method", info.FullMethod,
		"code", status.Code(err).String(),
		"duration", time.Since(start),
	)

	return resp, err
}

func (s *GRPCServer) authInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	op, ok := protectedMethods[info.FullMethod]
	if !ok {
		return handler(ctx, req)
	}

	claims, err := s.extractor.Extract(ctx)
	if err != nil {
		return nil, s.fail(ctx, op, err)
	}

	return handler(auth.ContextWithClaims(ctx, claims), req)
}
