// Package dto defines data transfer objects for API requests and responses.
// The same types are decoded by the client and encoded by the ledger service.
package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// The service speaks JSON numbers for money.
	decimal.MarshalJSONWithoutQuotes = true
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ValidationErrorResponse represents a request validation failure. Each
// issue names the offending field in Loc.
type ValidationErrorResponse struct {
	Detail []ValidationIssue `json:"detail"`
}

// ValidationIssue is a single request validation failure.
type ValidationIssue struct {
	Loc  []string `json:"loc,omitempty"`
	Msg  string   `json:"msg"`
	Type string   `json:"type,omitempty"`
}

// MessageResponse represents a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse represents the health check payload.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// timestampLayouts are tried in order. The service may emit timestamps
// without a zone, which are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Timestamp is a time.Time that accepts zone-less timestamps.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// MarshalJSON encodes the timestamp as RFC 3339, or null when zero.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Time.Format(time.RFC3339Nano) + `"`), nil
}

// UnmarshalJSON decodes any of the accepted layouts.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		t.Time = time.Time{}
		return nil
	}

	var err error
	for _, layout := range timestampLayouts {
		var parsed time.Time
		parsed, err = time.Parse(layout, raw)
		if err == nil {
			t.Time = parsed
			return nil
		}
	}
	return err
}
