package rag

import (
	"context"
	"fmt"

	"github.com/qdrant/go-client/qdrant"
)

// QdrantIndex wraps the Qdrant client and exposes the precedent collection
// as a VectorIndex.
type QdrantIndex struct {
	client     *qdrant.Client
	collection string
}

// NewQdrantIndex creates a client for the precedent collection.
func NewQdrantIndex(host string, port int, collection string) (*QdrantIndex, error) {
	client, err := qdrant.NewClient(&qdrant.Config{
		Host: host,
		Port: port,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Qdrant client: %w", err)
	}

	return &QdrantIndex{
		client:     client,
		collection: collection,
	}, nil
}

// Search queries the collection using the Qdrant Query API and maps hits to
// RetrievedPassage values. Qdrant returns hits ordered by descending score;
// ranks follow that order.
func (qi *QdrantIndex) Search(ctx context.Context, queryEmbedding []float32, limit uint64) ([]RetrievedPassage, error) {
	searchResult, err := qi.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: qi.collection,
		Query:          qdrant.NewQuery(queryEmbedding...),
		Limit:          &limit,
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	passages := make([]RetrievedPassage, 0, len(searchResult))
	for _, result := range searchResult {
		if result.Payload == nil {
			continue
		}

		text := stringPayload(result.Payload, "text")
		if text == "" {
			continue
		}
		sourceID := stringPayload(result.Payload, "source_id")
		if sourceID == "" {
			sourceID = pointID(result.Id)
		}

		passages = append(passages, RetrievedPassage{
			SourceID: sourceID,
			Text:     text,
			Score:    float32(result.Score),
			Rank:     len(passages),
		})
	}

	return passages, nil
}

// pointID falls back to the point's own identifier when the payload carries
// no source_id.
func pointID(id *qdrant.PointId) string {
	if id == nil {
		return ""
	}
	if uuid := id.GetUuid(); uuid != "" {
		return uuid
	}
	return fmt.Sprintf("%d", id.GetNum())
}

func stringPayload(payload map[string]*qdrant.Value, key string) string {
	if value, ok := payload[key]; ok && value != nil {
		return value.GetStringValue()
	}
	return ""
}
