package llm

import (
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Client wraps the OpenAI client and exposes the completion and embedding
// capabilities the pipeline consumes.
type Client struct {
	client     *openai.Client
	model      string
	embedModel string
}

// NewClient creates a new LLM client with API key.
func NewClient(apiKey, model, embedModel string) *Client {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &Client{
		client:     &client,
		model:      model,
		embedModel: embedModel,
	}
}

// Model returns the chat model identifier used for completions.
func (c *Client) Model() string {
	return c.model
}
