package rag

import (
	"context"
	"log/slog"
)

//go:generate mockgen -source=gateway.go -destination=mock_gateway.go -package=rag

// Embedder defines the embedding capability used to turn query text into a
// vector for similarity search.
type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

// VectorIndex defines the external vector index capability. Search returns
// passages ranked by descending relevance score as reported by the index.
type VectorIndex interface {
	Search(ctx context.Context, queryEmbedding []float32, limit uint64) ([]RetrievedPassage, error)
}

// Gateway retrieves precedent passages for a query from the vector index.
// It holds no local state between calls.
type Gateway struct {
	embedder Embedder
	index    VectorIndex
	limit    int
}

// NewGateway creates a retrieval gateway with the given search limit.
func NewGateway(embedder Embedder, index VectorIndex, limit int) *Gateway {
	return &Gateway{
		embedder: embedder,
		index:    index,
		limit:    limit,
	}
}

// Retrieve returns the top passages for the query text, ordered by the
// index's descending relevance score. The gateway never re-sorts.
//
// Transport failures degrade to an empty result instead of failing the
// pipeline: generation proceeds without grounding and the answer is flagged
// as having no sources. Only empty query text is an error.
func (g *Gateway) Retrieve(ctx context.Context, queryText string) ([]RetrievedPassage, error) {
	if queryText == "" {
		return nil, ErrInvalidQuery
	}

	embedding, err := g.embedder.GenerateEmbedding(ctx, queryText)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		slog.Warn("Query embedding failed, continuing without context", "error", err)
		return []RetrievedPassage{}, nil
	}

	passages, err := g.index.Search(ctx, embedding, uint64(g.limit))
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		slog.Warn("Vector search failed, continuing without context", "error", err)
		return []RetrievedPassage{}, nil
	}

	return passages, nil
}
