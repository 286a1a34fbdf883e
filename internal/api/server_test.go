package api_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"scanrunner/internal/api"
	"scanrunner/internal/api/handler/v1handler"
	"scanrunner/pkg/logger"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)

	m.Run()
}

func publicKeyPEM(t *testing.T) string {
	t.Helper()

	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)

	return string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}

func testOptions(publicKey string) api.Options {
	return api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{PublicKey: publicKey},
		Addr:              ":0",
		ReadTimeout:       time.Second,
		RequestTimeout:    time.Second,
		MetricsPath:       "/metrics",
	}
}

func TestNewServer(t *testing.T) {
	srv, err := api.NewServer(api.Deps{}, testOptions(publicKeyPEM(t)))
	require.NoError(t, err)
	require.Equal(t, ":0", srv.Addr)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "metrics", method: http.MethodGet, path: "/metrics", wantStatus: http.StatusOK},
		{name: "pprof", method: http.MethodGet, path: "/debug/pprof/cmdline", wantStatus: http.StatusOK},
		{name: "scan without token", method: http.MethodGet, path: "/v1/scans/1", wantStatus: http.StatusUnauthorized},
		{name: "cancel without token", method: http.MethodPost, path: "/v1/scans/1/cancel", wantStatus: http.StatusUnauthorized},
		{name: "specs", method: http.MethodGet, path: "/specs/v1.yaml", wantStatus: http.StatusOK},
		{name: "docs", method: http.MethodGet, path: "/v1/docs/", wantStatus: http.StatusOK},
		{name: "preflight", method: http.MethodOptions, path: "/v1/scans/1", wantStatus: http.StatusNoContent},
		{name: "unknown route", method: http.MethodGet, path: "/v2/scans", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			srv.Handler.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			require.Equal(t, tt.wantStatus, rec.Code)
			require.NotEmpty(t, rec.Header().Get("X-Request-Id"))
		})
	}
}

func TestNewServer_InvalidPublicKey(t *testing.T) {
	_, err := api.NewServer(api.Deps{}, testOptions("not a key"))
	require.Error(t, err)
}
