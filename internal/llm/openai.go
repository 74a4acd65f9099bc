package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/shared"

	"github.com/nyayamitra/nyayamitra/internal/rag"
)

// languageNames maps supported language tags to the names used in the
// output-language directive. Unknown tags fall back to English output.
var languageNames = map[string]string{
	"hi": "Hindi",
	"kn": "Kannada",
}

// Complete runs one chat completion for the prompt. The system prompt and
// recognized params (temperature, output cap, target language) are applied
// verbatim; the call carries no retry logic of its own.
func (c *Client) Complete(ctx context.Context, systemPrompt, prompt string, params rag.GenerationParams) (string, error) {
	if name, ok := languageNames[params.Language]; ok {
		systemPrompt = fmt.Sprintf("%s\nWrite your answer in %s, keeping formal legal terminology.", systemPrompt, name)
	}

	messages := []openai.ChatCompletionMessageParamUnion{
		openai.UserMessage(prompt),
	}
	if systemPrompt != "" {
		messages = append([]openai.ChatCompletionMessageParamUnion{openai.SystemMessage(systemPrompt)}, messages...)
	}

	req := openai.ChatCompletionNewParams{
		Model:       shared.ChatModel(c.model),
		Messages:    messages,
		Temperature: param.Opt[float64]{Value: params.Temperature},
	}
	if params.MaxOutputTokens > 0 {
		req.MaxCompletionTokens = param.Opt[int64]{Value: params.MaxOutputTokens}
	}

	res, err := c.client.Chat.Completions.New(ctx, req)
	if err != nil {
		return "", fmt.Errorf("failed to generate completion: %w", err)
	}

	if len(res.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return res.Choices[0].Message.Content, nil
}

// GenerateEmbedding generates an embedding for the given text.
func (c *Client) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	input := openai.EmbeddingNewParamsInputUnion{
		OfString: param.Opt[string]{Value: text},
	}
	res, err := c.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Model: openai.EmbeddingModel(c.embedModel),
		Input: input,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	if len(res.Data) == 0 {
		return nil, fmt.Errorf("no embedding data in response")
	}

	// Convert []float64 to []float32 for Qdrant
	embedding := make([]float32, len(res.Data[0].Embedding))
	for i, v := range res.Data[0].Embedding {
		embedding[i] = float32(v)
	}

	return embedding, nil
}
