package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"tours-admin/pkg/toggle"
	"tours-admin/pkg/upstream"
)

// fakeCaller records outbound calls and replays a canned result.
type fakeCaller struct {
	calls      int
	lastMethod string
	lastPath   string
	lastBody   any
	res        *upstream.Result
	err        error
}

func (f *fakeCaller) Do(ctx context.Context, method, path string, body any, headers map[string]string) (*upstream.Result, error) {
	f.calls++
	f.lastMethod = method
	f.lastPath = path
	f.lastBody = body
	if f.err != nil {
		return nil, f.err
	}
	return f.res, nil
}

func TestListTransfers_EchoesResourceField(t *testing.T) {
	up := &fakeCaller{res: &upstream.Result{
		Status: http.StatusOK,
		Body:   []byte(`{"transfers":[{"id":"t1"}]}`),
	}}
	svc := NewTransferService(up, zaptest.NewLogger(t))

	rep := svc.ListTransfers(context.Background(), "")

	require.Equal(t, 1, up.calls)
	assert.Equal(t, http.MethodGet, up.lastMethod)
	assert.Equal(t, "/api/transfers", up.lastPath)
	assert.Equal(t, http.StatusOK, rep.Status)
	assert.Equal(t, true, rep.Body["success"])
	assert.Equal(t, []any{map[string]any{"id": "t1"}}, rep.Body["transfers"])
}

func TestListTransfers_ForwardsQueryVerbatim(t *testing.T) {
	up := &fakeCaller{res: &upstream.Result{Status: http.StatusOK, Body: []byte(`{"transfers":[]}`)}}
	svc := NewTransferService(up, zaptest.NewLogger(t))

	svc.ListTransfers(context.Background(), "page=2&status=sold")

	assert.Equal(t, "/api/transfers?page=2&status=sold", up.lastPath)
}

func TestListTransfers_NetworkFailureIsGeneric500(t *testing.T) {
	up := &fakeCaller{err: errors.New("connection refused")}
	svc := NewTransferService(up, zaptest.NewLogger(t))

	rep := svc.ListTransfers(context.Background(), "")

	assert.Equal(t, http.StatusInternalServerError, rep.Status)
	assert.Equal(t, false, rep.Body["success"])
	assert.NotEmpty(t, rep.Body["error"])
}

func TestDeleteBooking_RelaysUpstreamError(t *testing.T) {
	up := &fakeCaller{res: &upstream.Result{
		Status: http.StatusNotFound,
		Body:   []byte(`{"error":"not found"}`),
	}}
	svc := NewBookingService(up, zaptest.NewLogger(t))

	rep := svc.DeleteBooking(context.Background(), "b1")

	require.Equal(t, 1, up.calls)
	assert.Equal(t, http.MethodDelete, up.lastMethod)
	assert.Equal(t, "/api/bookings/b1", up.lastPath)
	assert.Equal(t, http.StatusNotFound, rep.Status)
	assert.Equal(t, false, rep.Body["success"])
	assert.Equal(t, "not found", rep.Body["error"])
}

func TestDeleteBooking_SuccessCarriesMessage(t *testing.T) {
	up := &fakeCaller{res: &upstream.Result{Status: http.StatusOK, Body: []byte(`{}`)}}
	svc := NewBookingService(up, zaptest.NewLogger(t))

	rep := svc.DeleteBooking(context.Background(), "b2")

	assert.Equal(t, http.StatusOK, rep.Status)
	assert.Equal(t, true, rep.Body["success"])
	assert.Equal(t, "Booking deleted successfully", rep.Body["message"])
}

func TestCreateTransfer_ForwardsPayloadVerbatim(t *testing.T) {
	up := &fakeCaller{res: &upstream.Result{
		Status: http.StatusCreated,
		Body:   []byte(`{"transfer":{"id":"t9"}}`),
	}}
	svc := NewTransferService(up, zaptest.NewLogger(t))

	payload := json.RawMessage(`{"title":"Airport shuttle","extra":"kept"}`)
	rep := svc.CreateTransfer(context.Background(), payload)

	assert.Equal(t, http.MethodPost, up.lastMethod)
	assert.Equal(t, payload, up.lastBody)
	assert.Equal(t, http.StatusOK, rep.Status)
	assert.Equal(t, map[string]any{"id": "t9"}, rep.Body["transfer"])
}

func TestUpdateTransferStatus_SendsStatusBody(t *testing.T) {
	up := &fakeCaller{res: &upstream.Result{Status: http.StatusOK, Body: []byte(`{"transfer":{"id":"t1","status":"sold"}}`)}}
	svc := NewTransferService(up, zaptest.NewLogger(t))

	rep := svc.UpdateTransferStatus(context.Background(), "t1", "sold")

	assert.Equal(t, http.MethodPatch, up.lastMethod)
	assert.Equal(t, "/api/transfers/t1/status", up.lastPath)
	assert.Equal(t, map[string]string{"status": "sold"}, up.lastBody)
	assert.Equal(t, http.StatusOK, rep.Status)
}

func TestStatusToggle_PersistsThroughProxy(t *testing.T) {
	up := &fakeCaller{res: &upstream.Result{Status: http.StatusOK, Body: []byte(`{"transfer":{"id":"t1","status":"sold"}}`)}}
	svc := NewTransferService(up, zaptest.NewLogger(t))

	tg := svc.StatusToggle("t1", toggle.StatusActive)
	got := tg.Activate(context.Background())

	assert.Equal(t, toggle.StatusSold, got)
	assert.Equal(t, 1, up.calls)
	assert.Equal(t, "/api/transfers/t1/status", up.lastPath)
}

func TestStatusToggle_UpstreamErrorReverts(t *testing.T) {
	up := &fakeCaller{res: &upstream.Result{
		Status: http.StatusConflict,
		Body:   []byte(`{"error":"already sold"}`),
	}}
	svc := NewTransferService(up, zaptest.NewLogger(t))

	tg := svc.StatusToggle("t1", toggle.StatusActive)
	got := tg.Activate(context.Background())

	assert.Equal(t, toggle.StatusActive, got)
}

func TestVerifyToken(t *testing.T) {
	up := &fakeCaller{res: &upstream.Result{Status: http.StatusOK, Body: []byte(`{"user":{"id":"u1"}}`)}}
	svc := NewAuthService(up, zaptest.NewLogger(t))

	ok, err := svc.VerifyToken(context.Background(), "tok")
	require.NoError(t, err)
	assert.True(t, ok)

	up.res = &upstream.Result{Status: http.StatusUnauthorized, Body: []byte(`{"error":"expired"}`)}
	ok, err = svc.VerifyToken(context.Background(), "tok")
	require.NoError(t, err)
	assert.False(t, ok)

	up.err = errors.New("connection refused")
	_, err = svc.VerifyToken(context.Background(), "tok")
	assert.Error(t, err)
}
