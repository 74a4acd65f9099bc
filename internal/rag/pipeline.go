package rag

import (
	"context"
	"fmt"
	"log/slog"
)

//go:generate mockgen -source=pipeline.go -destination=mock_pipeline.go -package=rag

// Retriever defines the retrieval step of the pipeline.
type Retriever interface {
	Retrieve(ctx context.Context, queryText string) ([]RetrievedPassage, error)
}

// Generator defines the generation step of the pipeline.
type Generator interface {
	Generate(ctx context.Context, request GenerationRequest) (Answer, error)
}

// QueryStore persists the most recent successful query/answer pair.
type QueryStore interface {
	Save(query Query, answer Answer)
}

// Result is the outcome of one pipeline run.
type Result struct {
	Query  Query
	Answer Answer
}

// Pipeline runs one query through retrieval, context assembly, prompt
// construction, generation and persistence, in that order. Each request is
// independent; the only shared state is the injected query store.
type Pipeline struct {
	retriever    Retriever
	assembler    *Assembler
	orchestrator *Orchestrator
	generator    Generator
	store        QueryStore
}

// NewPipeline creates a query pipeline.
func NewPipeline(retriever Retriever, assembler *Assembler, orchestrator *Orchestrator, generator Generator, store QueryStore) *Pipeline {
	return &Pipeline{
		retriever:    retriever,
		assembler:    assembler,
		orchestrator: orchestrator,
		generator:    generator,
		store:        store,
	}
}

// Answer runs the full pipeline for raw query text. Retrieval failures
// degrade to an answer without sources; generation failures abort the run
// and leave the store untouched.
func (p *Pipeline) Answer(ctx context.Context, rawQuery, priorAnswer, language string) (Result, error) {
	query, err := NewQuery(rawQuery, language)
	if err != nil {
		return Result{}, err
	}

	passages, err := p.retriever.Retrieve(ctx, query.Normalized)
	if err != nil {
		return Result{}, fmt.Errorf("retrieve passages: %w", err)
	}

	assembled := p.assembler.Assemble(passages)
	if assembled.Empty() {
		slog.Info("Answering without retrieved context", "query_id", query.ID)
	}

	request, err := p.orchestrator.BuildPrompt(query, assembled, priorAnswer)
	if err != nil {
		return Result{}, err
	}

	answer, err := p.generator.Generate(ctx, request)
	if err != nil {
		return Result{}, err
	}

	// Save only after generation fully succeeds, and never for a canceled
	// request.
	if ctx.Err() != nil {
		return Result{}, ctx.Err()
	}
	p.store.Save(query, answer)

	return Result{Query: query, Answer: answer}, nil
}
