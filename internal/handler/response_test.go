package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"portal/backend/internal/service"
)

func TestWriteServiceError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"invalid", service.ErrInvalid, http.StatusBadRequest, `{"error":"invalid request"}`},
		{"wrapped invalid", fmt.Errorf("badge: %w", service.ErrInvalid), http.StatusBadRequest, `{"error":"invalid request"}`},
		{"not found", service.ErrNotFound, http.StatusNotFound, `{"error":"resource not found"}`},
		{"conflict", service.ErrConflict, http.StatusConflict, `{"error":"conflict"}`},
		{"summarization", service.ErrSummarization, http.StatusBadGateway, `{"error":"summarization failed"}`},
		{
			// MalformedResponseError matches ErrSummarization via Is; the
			// payload preview must never reach the client.
			"malformed reply",
			&service.MalformedResponseError{Preview: `{"foo":"bar"}`},
			http.StatusBadGateway,
			`{"error":"summarization failed"}`,
		},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, `{"error":"internal error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			require.NoError(t, writeServiceError(c, tt.err))
			require.Equal(t, tt.wantStatus, rec.Code)
			require.JSONEq(t, tt.wantBody, rec.Body.String())
			require.NotContains(t, rec.Body.String(), "foo")
		})
	}
}
