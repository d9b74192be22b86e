// Package ai implements the LLM-assisted extraction strategy. The model is
// asked for a JSON array of {key, value, comments} objects in document order;
// the shared assembler policy is applied to its output before export.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// ServiceError reports that the AI collaborator was unreachable or returned
// output the pipeline could not parse. The caller may fall back to the rule
// strategy when configured to do so.
type ServiceError struct {
	Op  string
	Err error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("ai service %s: %v", e.Op, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// generator is the slice of the langchaingo model surface the client needs.
type generator interface {
	GenerateContent(ctx context.Context, messages []llms.MessageContent,
		options ...llms.CallOption) (*llms.ContentResponse, error)
}

// Item is one key-value fact as returned by the model.
type Item struct {
	Key      string `json:"key"`
	Value    string `json:"value"`
	Comments string `json:"comments"`
}

// Client calls the model and parses its structured response.
type Client struct {
	model generator
	name  string
}

// NewClient creates a Gemini-backed client. The API key is required; the
// model name falls back to DefaultModel.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("ai: missing API key")
	}
	if model == "" {
		model = DefaultModel
	}

	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("ai: failed to create client: %w", err)
	}

	return &Client{model: llm, name: model}, nil
}

// ExtractItems sends the document text to the model and returns the parsed
// key-value items in the order the model produced them.
func (c *Client) ExtractItems(ctx context.Context, text string) ([]Item, error) {
	prompt := buildPrompt(text)

	resp, err := c.model.GenerateContent(ctx,
		[]llms.MessageContent{llms.TextParts(llms.ChatMessageTypeHuman, prompt)},
		llms.WithTemperature(0),
		llms.WithJSONMode(),
	)
	if err != nil {
		return nil, &ServiceError{Op: "call", Err: err}
	}
	if len(resp.Choices) == 0 {
		return nil, &ServiceError{Op: "call", Err: fmt.Errorf("empty response")}
	}

	items, err := parseItems(resp.Choices[0].Content)
	if err != nil {
		return nil, &ServiceError{Op: "parse", Err: err}
	}
	return items, nil
}

// parseItems decodes the model output, tolerating markdown code fences the
// prompt asks it not to emit.
func parseItems(raw string) ([]Item, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	var items []Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("response is not a JSON array: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("response contained no items")
	}
	return items, nil
}

func buildPrompt(text string) string {
	var b strings.Builder
	b.WriteString("You are a data extraction expert. Extract ALL information from the following document into a structured key-value format.\n\n")
	b.WriteString("DOCUMENT TEXT:\n")
	b.WriteString(text)
	b.WriteString("\n\nINSTRUCTIONS:\n")
	b.WriteString("1. Extract EVERY piece of information - nothing should be omitted.\n")
	b.WriteString("2. Create logical key-value pairs (e.g., \"First Name\" : \"Vijay\").\n")
	b.WriteString("3. For each key-value pair, add relevant CONTEXT from the document in a \"comments\" field.\n")
	b.WriteString("4. Context must be the EXACT original sentences from the document that provide additional information. Do not modify or summarize these sentences.\n")
	b.WriteString("5. Preserve original wording - do not paraphrase values.\n")
	b.WriteString("6. Keep the pairs in the order the facts appear in the document.\n")
	b.WriteString("7. The output MUST be a JSON array of objects with exactly the fields \"key\", \"value\", and \"comments\". Do not add any extra text or markdown wrappers like ```json.\n")
	return b.String()
}
