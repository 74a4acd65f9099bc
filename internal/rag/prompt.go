package rag

import (
	"fmt"
	"os"
	"strings"
)

const defaultSystemPrompt = `You are a legal research assistant for Indian law.
Answer the question using only the precedent passages provided in the context.
Cite the bracketed source identifiers of the passages you rely on.
If the context does not contain enough information, say so plainly instead of speculating.`

const defaultAnswerPromptTemplate = `Use the precedent passages below to answer the question.

Context:
{context}

Question: {question}

Give a precise legal answer grounded in the passages above.`

const defaultBarePromptTemplate = `No precedent passages were retrieved for this question.

Question: {question}

Give a careful general legal answer and state clearly that no sources were available.`

const continuationDirective = `This is a follow-up. The previous answer was:
{prior_answer}

Continue from it, staying consistent with what was already said.`

// Orchestrator builds the generation prompt for a query. Construction is
// deterministic: the same query, context and prior answer always produce the
// same prompt.
type Orchestrator struct {
	systemPrompt   string
	answerTemplate string
	bareTemplate   string
	maxPromptSize  int
}

// NewOrchestrator creates a prompt orchestrator. Prompt text is loaded from
// prompts/*.txt when present, falling back to built-in defaults.
func NewOrchestrator(maxPromptSize int) *Orchestrator {
	return &Orchestrator{
		systemPrompt:   loadPrompt("system_prompt.txt", defaultSystemPrompt),
		answerTemplate: loadPrompt("answer_prompt.txt", defaultAnswerPromptTemplate),
		bareTemplate:   loadPrompt("bare_prompt.txt", defaultBarePromptTemplate),
		maxPromptSize:  maxPromptSize,
	}
}

// SystemPrompt returns the system instruction for generation calls.
func (o *Orchestrator) SystemPrompt() string {
	return o.systemPrompt
}

// BuildPrompt constructs the generation request for a query. An empty
// context selects a template with no context section at all, so the prompt
// never carries a dangling "Context:" header. The query text is never
// truncated; if the combined prompt exceeds the configured ceiling the
// build fails with ErrPromptTooLarge.
func (o *Orchestrator) BuildPrompt(query Query, assembled AssembledContext, priorAnswer string) (GenerationRequest, error) {
	var prompt string
	if assembled.Empty() {
		prompt = strings.ReplaceAll(o.bareTemplate, "{question}", query.Normalized)
	} else {
		prompt = strings.ReplaceAll(o.answerTemplate, "{context}", formatContext(assembled))
		prompt = strings.ReplaceAll(prompt, "{question}", query.Normalized)
	}

	if priorAnswer != "" {
		directive := strings.ReplaceAll(continuationDirective, "{prior_answer}", priorAnswer)
		prompt = prompt + "\n\n" + directive
	}

	if len(prompt) > o.maxPromptSize {
		return GenerationRequest{}, fmt.Errorf("%w: %d bytes, ceiling %d", ErrPromptTooLarge, len(prompt), o.maxPromptSize)
	}

	return GenerationRequest{
		Query:        query,
		Context:      assembled,
		SystemPrompt: o.systemPrompt,
		Prompt:       prompt,
		PriorAnswer:  priorAnswer,
	}, nil
}

// formatContext renders the assembled passages as bracketed source blocks.
func formatContext(assembled AssembledContext) string {
	var b strings.Builder
	for i, p := range assembled.Passages {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(fmt.Sprintf("[Source %s, Score: %.4f]\n%s", p.SourceID, p.Score, p.Text))
	}
	return b.String()
}

// loadPrompt loads a prompt override from the prompts directory, trying the
// same relative locations the server and tests run from.
func loadPrompt(name, fallback string) string {
	paths := []string{
		"prompts/" + name,
		"./prompts/" + name,
		"../prompts/" + name,
	}
	for _, path := range paths {
		if data, err := os.ReadFile(path); err == nil {
			return strings.TrimSpace(string(data))
		}
	}
	return fallback
}
