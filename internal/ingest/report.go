package ingest

import (
	"encoding/xml"
	"io"
	"scanrunner/pkg/domain"
	"scanrunner/pkg/serrors"
	"strconv"
	"strings"
	"time"
)

// Report is a parsed scanner report.
type Report struct {
	// Start is the scan start announced by the scanner, zero when absent.
	Start           time.Time
	Vulnerabilities []domain.Vulnerability
}

type xmlReport struct {
	XMLName         xml.Name           `xml:"w3afrun"`
	Start           string             `xml:"start,attr"`
	Vulnerabilities []xmlVulnerability `xml:"vulnerability"`
}

type xmlVulnerability struct {
	ID          string          `xml:"id,attr"`
	Method      string          `xml:"method,attr"`
	Name        string          `xml:"name,attr"`
	Plugin      string          `xml:"plugin,attr"`
	Severity    string          `xml:"severity,attr"`
	Description string          `xml:"description"`
	Request     *xmlHTTPRequest `xml:"httprequest"`
}

type xmlHTTPRequest struct {
	ID      string      `xml:"id,attr"`
	Status  string      `xml:"status"`
	Headers []xmlHeader `xml:"headers>header"`
}

type xmlHeader struct {
	Field   string `xml:"field,attr"`
	Content string `xml:"content,attr"`
}

// ParseReport decodes a w3af XML report. Optional elements default to empty
// values; input without a w3afrun root element is rejected with
// ErrReportParse.
func ParseReport(r io.Reader) (Report, error) {
	var raw xmlReport
	if err := xml.NewDecoder(r).Decode(&raw); err != nil {
		return Report{}, serrors.Wrap(serrors.ErrReportParse, err, "malformed report")
	}

	report := Report{
		Vulnerabilities: make([]domain.Vulnerability, 0, len(raw.Vulnerabilities)),
	}
	if sec, err := strconv.ParseInt(strings.TrimSpace(raw.Start), 10, 64); err == nil {
		report.Start = time.Unix(sec, 0).UTC()
	}

	for _, v := range raw.Vulnerabilities {
		vuln := domain.Vulnerability{
			ReportID:    v.ID,
			Method:      v.Method,
			Name:        v.Name,
			Plugin:      v.Plugin,
			Severity:    v.Severity,
			Description: strings.TrimSpace(v.Description),
		}
		if v.Request != nil {
			vuln.Request = domain.HTTPRequest{
				ID:     v.Request.ID,
				Status: strings.TrimSpace(v.Request.Status),
			}
			for _, h := range v.Request.Headers {
				vuln.Request.Headers = append(vuln.Request.Headers, domain.Header{
					Field:   h.Field,
					Content: h.Content,
				})
			}
		}

		report.Vulnerabilities = append(report.Vulnerabilities, vuln)
	}

	return report, nil
}
