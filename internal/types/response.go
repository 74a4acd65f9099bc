package types

import "time"

// QueryResponse represents a query response. Status is "ok" when the answer
// is grounded in retrieved sources and "no_sources" when retrieval degraded
// to an answer without grounding.
type QueryResponse struct {
	QueryID   string   `json:"query_id"`
	Answer    string   `json:"answer"`
	Sources   []string `json:"sources"`
	Status    string   `json:"status"`
	Model     string   `json:"model,omitempty"`
	LatencyMS int64    `json:"latency_ms,omitempty"`
}

// LastQueryResponse represents the most recently saved query/answer pair.
type LastQueryResponse struct {
	QueryID  string    `json:"query_id"`
	Query    string    `json:"query"`
	Answer   string    `json:"answer"`
	Sources  []string  `json:"sources"`
	AskedAt  time.Time `json:"asked_at"`
	Language string    `json:"language,omitempty"`
}

// DocumentResponse represents a rendered legal document.
type DocumentResponse struct {
	Kind      string    `json:"kind"`
	Document  string    `json:"document"`
	CreatedAt time.Time `json:"created_at"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
