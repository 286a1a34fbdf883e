package controller_test

import (
	"net/http"
	"net/http/httptest"
	"scanrunner/pkg/controller"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithCORS(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		wantCalled bool
		wantStatus int
	}{
		{name: "preflight", method: http.MethodOptions, wantCalled: false, wantStatus: http.StatusNoContent},
		{name: "get", method: http.MethodGet, wantCalled: true, wantStatus: http.StatusTeapot},
		{name: "post", method: http.MethodPost, wantCalled: true, wantStatus: http.StatusTeapot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				called = true
				w.WriteHeader(http.StatusTeapot)
			})

			rec := httptest.NewRecorder()
			controller.WithCORS(next).ServeHTTP(rec, httptest.NewRequest(tt.method, "/v1/scans/1", nil))

			res := rec.Result()
			require.Equal(t, tt.wantCalled, called)
			require.Equal(t, tt.wantStatus, res.StatusCode)
			require.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
			require.Contains(t, res.Header.Get("Access-Control-Allow-Headers"), "Authorization")
			require.Equal(t, "GET, POST, OPTIONS", res.Header.Get("Access-Control-Allow-Methods"))
			require.Equal(t, controller.RequestIDHeader, res.Header.Get("Access-Control-Expose-Headers"))
		})
	}
}
