// Package api maps service errors onto gRPC statuses and back, so the typed
// error kinds survive the trip between the bookings server and its clients.
package api

import (
	"errors"

	"github.com/dmitrijs2005/bookings/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const internalMessage = "internal error"

var kindCodes = map[common.Kind]codes.Code{
	common.KindInvalidInput:       codes.InvalidArgument,
	common.KindDuplicateUsername:  codes.AlreadyExists,
	common.KindNotFound:           codes.NotFound,
	common.KindInvalidCredentials: codes.Unauthenticated,
	common.KindUnauthenticated:    codes.Unauthenticated,
	common.KindUpstreamFailure:    codes.Internal,
}

// ToStatus converts a service error into a gRPC status error. The kind and
// the field messages travel as a structpb.Struct detail. Upstream causes
// and untyped errors are hidden behind a generic message.
func ToStatus(err error) error {
	if err == nil {
		return nil
	}

	var e *common.Error
	if !errors.As(err, &e) {
		return status.Error(codes.Internal, internalMessage)
	}

	code, ok := kindCodes[e.Kind]
	if !ok {
		code = codes.Internal
	}

	msg := e.Message
	if e.Kind == common.KindUpstreamFailure {
		msg = internalMessage
	}

	st := status.New(code, msg)

	detail := map[string]any{"kind": e.Kind.String()}
	if len(e.Fields) > 0 {
		fields := make(map[string]any, len(e.Fields))
		for k, v := range e.Fields {
			fields[k] = v
		}
		detail["fields"] = fields
	}

	if s, err := structpb.NewStruct(detail); err == nil {
		if withDetails, err := st.WithDetails(s); err == nil {
			st = withDetails
		}
	}

	return st.Err()
}

// FromStatus rebuilds a *common.Error from a status error produced by
// ToStatus. Statuses without a detail are classified by code; errors that
// are not statuses are returned unchanged.
func FromStatus(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	for _, d := range st.Details() {
		s, ok := d.(*structpb.Struct)
		if !ok {
			continue
		}
		m := s.AsMap()
		name, _ := m["kind"].(string)
		kind, ok := common.ParseKind(name)
		if !ok {
			continue
		}
		out := &common.Error{Kind: kind, Message: st.Message()}
		if raw, ok := m["fields"].(map[string]any); ok {
			out.Fields = make(map[string]string, len(raw))
			for k, v := range raw {
				if sv, ok := v.(string); ok {
					out.Fields[k] = sv
				}
			}
		}
		if kind == common.KindUpstreamFailure {
			out.Err = err
		}
		return out
	}

	switch st.Code() {
	case codes.InvalidArgument:
		return &common.Error{Kind: common.KindInvalidInput, Message: st.Message()}
	case codes.AlreadyExists:
		return &common.Error{Kind: common.KindDuplicateUsername, Message: st.Message()}
	case codes.NotFound:
		return &common.Error{Kind: common.KindNotFound, Message: st.Message()}
	case codes.Unauthenticated:
		return &common.Error{Kind: common.KindUnauthenticated, Message: st.Message()}
	default:
		return &common.Error{Kind: common.KindUpstreamFailure, Message: st.Message(), Err: err}
	}
}
