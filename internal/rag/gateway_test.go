package rag

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
)

func TestGateway_Retrieve(t *testing.T) {
	embedding := []float32{0.1, 0.2, 0.3}
	rankedPassages := []RetrievedPassage{
		{SourceID: "s1", Text: "highest", Score: 0.95, Rank: 0},
		{SourceID: "s2", Text: "middle", Score: 0.80, Rank: 1},
		{SourceID: "s3", Text: "lowest", Score: 0.40, Rank: 2},
	}

	tests := []struct {
		name       string
		query      string
		setupMocks func(*MockEmbedder, *MockVectorIndex)
		wantCount  int
		wantErr    error
	}{
		{
			name:  "successful retrieval preserves index order",
			query: "grounds for anticipatory bail",
			setupMocks: func(embedder *MockEmbedder, index *MockVectorIndex) {
				embedder.EXPECT().
					GenerateEmbedding(gomock.Any(), "grounds for anticipatory bail").
					Return(embedding, nil)
				index.EXPECT().
					Search(gomock.Any(), embedding, uint64(5)).
					Return(rankedPassages, nil)
			},
			wantCount: 3,
		},
		{
			name:       "empty query rejected before any external call",
			query:      "",
			setupMocks: func(*MockEmbedder, *MockVectorIndex) {},
			wantErr:    ErrInvalidQuery,
		},
		{
			name:  "embedding failure degrades to empty result",
			query: "some query",
			setupMocks: func(embedder *MockEmbedder, index *MockVectorIndex) {
				embedder.EXPECT().
					GenerateEmbedding(gomock.Any(), "some query").
					Return(nil, errors.New("connection reset"))
			},
			wantCount: 0,
		},
		{
			name:  "search transport failure degrades to empty result",
			query: "some query",
			setupMocks: func(embedder *MockEmbedder, index *MockVectorIndex) {
				embedder.EXPECT().
					GenerateEmbedding(gomock.Any(), "some query").
					Return(embedding, nil)
				index.EXPECT().
					Search(gomock.Any(), embedding, uint64(5)).
					Return(nil, errors.New("index unavailable"))
			},
			wantCount: 0,
		},
		{
			name:  "empty index is not an error",
			query: "some query",
			setupMocks: func(embedder *MockEmbedder, index *MockVectorIndex) {
				embedder.EXPECT().
					GenerateEmbedding(gomock.Any(), "some query").
					Return(embedding, nil)
				index.EXPECT().
					Search(gomock.Any(), embedding, uint64(5)).
					Return([]RetrievedPassage{}, nil)
			},
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockEmbedder := NewMockEmbedder(ctrl)
			mockIndex := NewMockVectorIndex(ctrl)
			tt.setupMocks(mockEmbedder, mockIndex)

			gateway := NewGateway(mockEmbedder, mockIndex, 5)
			passages, err := gateway.Retrieve(context.Background(), tt.query)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Retrieve() error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("Retrieve() unexpected error: %v", err)
			}
			if len(passages) != tt.wantCount {
				t.Fatalf("Retrieve() returned %d passages, want %d", len(passages), tt.wantCount)
			}

			// Scores must be non-increasing in the order the index reported.
			for i := 1; i < len(passages); i++ {
				if passages[i].Score > passages[i-1].Score {
					t.Errorf("Retrieve() passage %d score %.2f exceeds predecessor %.2f", i, passages[i].Score, passages[i-1].Score)
				}
			}
		})
	}
}

func TestGateway_RetrieveCanceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mockEmbedder := NewMockEmbedder(ctrl)
	mockEmbedder.EXPECT().
		GenerateEmbedding(gomock.Any(), "some query").
		Return(nil, context.Canceled)

	gateway := NewGateway(mockEmbedder, NewMockVectorIndex(ctrl), 5)

	_, err := gateway.Retrieve(ctx, "some query")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Retrieve() with canceled context: error = %v, want context.Canceled (no degradation)", err)
	}
}
