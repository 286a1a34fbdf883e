package postgres_test

import (
	"context"
	"scanrunner/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_Vulnerabilities(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	taskID := seedTask(t, pgSQL, seedUser(t, pgSQL, "owner@example.com", 0), "https://example.com")
	stored, err := pgSQL.StoreScans(ctx, domain.Scan{TaskID: taskID})
	require.NoError(t, err)
	scanID := stored[0].ID

	sqli := domain.Vulnerability{
		ScanID:      scanID,
		ReportID:    "12",
		Method:      "GET",
		Name:        "SQL injection",
		Plugin:      "sqli",
		Severity:    "High",
		Description: "id parameter is injectable",
		Request: domain.HTTPRequest{
			ID:      "42",
			Status:  "GET /?id=1 HTTP/1.1",
			Headers: []domain.Header{{Field: "Host", Content: "example.com"}},
		},
	}
	xss := domain.Vulnerability{ScanID: scanID, ReportID: "13", Name: "XSS"}

	n, err := pgSQL.StoreVulnerabilities(ctx, sqli, xss)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	// re-ingesting the same report ids is a no-op
	n, err = pgSQL.StoreVulnerabilities(ctx, sqli)
	require.NoError(t, err)
	require.Zero(t, n)

	n, err = pgSQL.StoreVulnerabilities(ctx)
	require.NoError(t, err)
	require.Zero(t, n)

	vulns, err := pgSQL.ScanVulnerabilities(ctx, scanID)
	require.NoError(t, err)
	require.Len(t, vulns, 2)
	require.Equal(t, "12", vulns[0].ReportID)
	require.Equal(t, sqli.Request, vulns[0].Request)
	require.Equal(t, "High", vulns[0].Severity)
	require.Equal(t, "XSS", vulns[1].Name)
	require.Empty(t, vulns[1].Request.Headers)

	none, err := pgSQL.ScanVulnerabilities(ctx, scanID+1)
	require.NoError(t, err)
	require.Empty(t, none)
}
