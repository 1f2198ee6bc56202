package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "rumbo/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/ordenes/5", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) domainerrors.Response {
	t.Helper()

	var resp domainerrors.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return resp
}

func TestHandleHTTPError_AppError(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newTestContext(t)

	m.HandleHTTPError(domainerrors.ErrOrderNotFound, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	resp := decodeEnvelope(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "ORDER_NOT_FOUND", resp.Error.Code)
	assert.Equal(t, "Order not found", resp.Message)
}

func TestHandleHTTPError_WrappedAppError(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newTestContext(t)

	err := domainerrors.ErrTrackingStoreFailed.WrapMessage("failed to insert tracking event")
	m.HandleHTTPError(err, c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	resp := decodeEnvelope(t, rec)
	assert.Equal(t, "TRACKING_STORE_FAILED", resp.Error.Code)
}

func TestHandleHTTPError_EchoHTTPError(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newTestContext(t)

	m.HandleHTTPError(echo.NewHTTPError(http.StatusMethodNotAllowed), c)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	resp := decodeEnvelope(t, rec)
	assert.Equal(t, "HTTP_ERROR", resp.Error.Code)
}

func TestHandleHTTPError_UnknownErrorIsNotLeaked(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newTestContext(t)

	m.HandleHTTPError(errors.New("pq: connection refused on 10.0.0.3:5432"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	resp := decodeEnvelope(t, rec)
	assert.Equal(t, "INTERNAL_ERROR", resp.Error.Code)
	assert.NotContains(t, rec.Body.String(), "10.0.0.3")
}
