package metrics

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/bookings/internal/common"
	"github.com/dmitrijs2005/bookings/internal/logging"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordOutcome_Labels(t *testing.T) {
	before := testutil.ToFloat64(AuthAttempts.WithLabelValues(OperationLogin, "invalid_credentials"))
	RecordOutcome(OperationLogin, common.WrongCredentials())
	after := testutil.ToFloat64(AuthAttempts.WithLabelValues(OperationLogin, "invalid_credentials"))
	assert.Equal(t, before+1, after)

	before = testutil.ToFloat64(AuthAttempts.WithLabelValues(OperationRegister, "success"))
	RecordOutcome(OperationRegister, nil)
	assert.Equal(t, before+1, testutil.ToFloat64(AuthAttempts.WithLabelValues(OperationRegister, "success")))

	before = testutil.ToFloat64(AuthAttempts.WithLabelValues(OperationHistory, "error"))
	RecordOutcome(OperationHistory, errors.New("plain"))
	assert.Equal(t, before+1, testutil.ToFloat64(AuthAttempts.WithLabelValues(OperationHistory, "error")))
}

func TestRecordResolve_CountsMisses(t *testing.T) {
	before := testutil.ToFloat64(UnresolvedReferences)
	RecordResolve(5, 3)
	RecordResolve(2, 2)
	assert.Equal(t, before+2, testutil.ToFloat64(UnresolvedReferences))
}

func TestServer_Handler(t *testing.T) {
	s := NewServer("127.0.0.1:0", logging.Nop{})
	RecordOutcome(OperationBook, nil)

	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", string(body))

	resp, err = http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "bookings_auth_attempts_total")
	assert.Contains(t, string(body), "go_goroutines")
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	s := NewServer("127.0.0.1:0", logging.Nop{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestServer_RunBadAddress(t *testing.T) {
	s := NewServer("127.0.0.1:99999", logging.Nop{})
	assert.Error(t, s.Run(context.Background()))
}
