package errors

// Тесты маппинга ошибок сервисного слоя в HTTP-ответы (internal/errors).

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pribylovaa/go-site-showcase/internal/service"
	"github.com/stretchr/testify/require"
)

func TestToHTTP_Mapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"nil is a bug, not success", nil, http.StatusInternalServerError, "internal"},
		{"invalid argument", service.ErrInvalidArgument, http.StatusBadRequest, "invalid_argument"},
		{"invalid cursor", service.ErrInvalidCursor, http.StatusBadRequest, "invalid_cursor"},
		{"not found", service.ErrNotFound, http.StatusNotFound, "not_found"},
		{"internal", service.ErrInternal, http.StatusInternalServerError, "internal"},
		{"unknown error", fmt.Errorf("boom"), http.StatusInternalServerError, "internal"},
		{"wrapped sentinel", fmt.Errorf("service/websites/WebsiteByID: %w", service.ErrNotFound), http.StatusNotFound, "not_found"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			status, resp := ToHTTP(tc.err)
			require.Equal(t, tc.wantStatus, status)
			require.Equal(t, tc.wantCode, resp.Error.Code)
			require.NotEmpty(t, resp.Error.Message)
		})
	}
}

func TestWriteError_PropagatesRequestID(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/websites/none", nil)
	req.Header.Set("X-Request-Id", "rid-123")
	rec := httptest.NewRecorder()

	WriteError(rec, req, service.ErrNotFound)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "not_found", body.Error.Code)
	require.Equal(t, "rid-123", body.Error.RequestID)
}
