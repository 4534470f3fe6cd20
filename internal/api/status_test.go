package api

import (
	"errors"
	"testing"

	"github.com/dmitrijs2005/bookings/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestToStatus_Codes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code codes.Code
		msg  string
	}{
		{"invalid input", common.InvalidInput(map[string]string{"email": "Email must not be empty"}), codes.InvalidArgument, "Errors"},
		{"duplicate", common.DuplicateUsername(), codes.AlreadyExists, "Username is taken"},
		{"not found", common.UserNotFound(), codes.NotFound, "User not found"},
		{"wrong credentials", common.WrongCredentials(), codes.Unauthenticated, "Wrong credentials"},
		{"unauthenticated", common.Unauthenticated("invalid/expired token", nil), codes.Unauthenticated, "invalid/expired token"},
		{"upstream hides cause", common.Upstream("failed to look up user", errors.New("dial tcp: refused")), codes.Internal, "internal error"},
		{"untyped", errors.New("whatever"), codes.Internal, "internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := status.Convert(ToStatus(tt.err))
			assert.Equal(t, tt.code, st.Code())
			assert.Equal(t, tt.msg, st.Message())
		})
	}
}

func TestToStatus_Nil(t *testing.T) {
	assert.NoError(t, ToStatus(nil))
	assert.NoError(t, FromStatus(nil))
}

func TestRoundTrip_PreservesKindAndFields(t *testing.T) {
	orig := common.InvalidInput(map[string]string{
		"username":        "Username must not be empty",
		"confirmPassword": "Passwords must match",
	})

	back := FromStatus(ToStatus(orig))

	require.ErrorIs(t, back, common.ErrInvalidInput)
	var e *common.Error
	require.ErrorAs(t, back, &e)
	assert.Equal(t, "Errors", e.Message)
	assert.Equal(t, orig.Fields, e.Fields)
}

func TestRoundTrip_WrongCredentialsStaysDistinct(t *testing.T) {
	back := FromStatus(ToStatus(common.WrongCredentials()))
	assert.ErrorIs(t, back, common.ErrInvalidCredentials)
	assert.NotErrorIs(t, back, common.ErrUnauthenticated)
}

func TestFromStatus_WithoutDetail(t *testing.T) {
	assert.ErrorIs(t, FromStatus(status.Error(codes.AlreadyExists, "x")), common.ErrDuplicateUsername)
	assert.ErrorIs(t, FromStatus(status.Error(codes.Unavailable, "down")), common.ErrUpstreamFailure)

	plain := errors.New("not a status")
	assert.Same(t, plain, FromStatus(plain))
}
