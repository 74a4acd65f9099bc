package rag

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Query is an immutable record of one submitted legal question.
type Query struct {
	ID         string
	Raw        string
	Normalized string
	CreatedAt  time.Time
	Language   string
}

// NewQuery validates and normalizes raw query text. The normalized form
// collapses internal whitespace and trims the ends; a query that is empty
// after normalization is rejected with ErrInvalidQuery. An empty language
// tag defers to the configured default at generation time.
func NewQuery(raw, language string) (Query, error) {
	normalized := strings.Join(strings.Fields(raw), " ")
	if normalized == "" {
		return Query{}, ErrInvalidQuery
	}
	return Query{
		ID:         uuid.NewString(),
		Raw:        raw,
		Normalized: normalized,
		CreatedAt:  time.Now().UTC(),
		Language:   language,
	}, nil
}

// RetrievedPassage is one unit of precedent text returned by the vector
// index. Passages live only for the duration of a single retrieval call.
type RetrievedPassage struct {
	SourceID string
	Text     string
	Score    float32
	Rank     int
}

// AssembledContext is an ordered, deduplicated selection of passages whose
// combined text length fits the configured context budget.
type AssembledContext struct {
	Passages []RetrievedPassage
}

// Empty reports whether no passages made it into the context.
func (c AssembledContext) Empty() bool {
	return len(c.Passages) == 0
}

// Length returns the combined text length of all included passages.
func (c AssembledContext) Length() int {
	total := 0
	for _, p := range c.Passages {
		total += len(p.Text)
	}
	return total
}

// SourceIDs returns the source identifiers of the included passages in
// context order.
func (c AssembledContext) SourceIDs() []string {
	ids := make([]string, 0, len(c.Passages))
	for _, p := range c.Passages {
		ids = append(ids, p.SourceID)
	}
	return ids
}

// GenerationRequest pairs a query with its assembled context and the final
// prompt text. Exactly one request is built per query.
type GenerationRequest struct {
	Query        Query
	Context      AssembledContext
	SystemPrompt string
	Prompt       string
	PriorAnswer  string
}

// Answer is the synthesized response for one generation request. Sources
// lists the cited passage source IDs in context order; an empty list marks
// an answer produced without retrieved grounding.
type Answer struct {
	Text    string
	Sources []string
	Latency time.Duration
	Model   string
}
