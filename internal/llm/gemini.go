package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GeminiClient calls the native Gemini API instead of its OpenAI shim.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGemini creates a client. An empty baseURL keeps the SDK's endpoint.
func NewGemini(ctx context.Context, apiKey, baseURL, model string) (*GeminiClient, error) {
	cc := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cc.HTTPOptions.BaseURL = baseURL
	}
	gc, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to init gemini client: %w", err)
	}
	return &GeminiClient{client: gc, model: model}, nil
}

func (c *GeminiClient) Generate(ctx context.Context, messages []Message) (Response, error) {
	contents, config := convertForGemini(messages)

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return Response{}, fmt.Errorf("gemini generate content: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return Response{}, ErrEmptyCompletion
	}

	out := Response{Content: text, Model: c.model}
	if u := resp.UsageMetadata; u != nil {
		out.PromptTokens = int(u.PromptTokenCount)
		out.CompletionTokens = int(u.CandidatesTokenCount)
		out.TotalTokens = int(u.TotalTokenCount)
	}
	return out, nil
}

// convertForGemini moves system messages into the system instruction and
// maps the rest onto user/model contents.
func convertForGemini(messages []Message) ([]*genai.Content, *genai.GenerateContentConfig) {
	var (
		system   []string
		contents []*genai.Content
	)
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			system = append(system, m.Content)
		case RoleAssistant:
			contents = append(contents, &genai.Content{Role: "model", Parts: []*genai.Part{{Text: m.Content}}})
		default:
			contents = append(contents, &genai.Content{Role: "user", Parts: []*genai.Part{{Text: m.Content}}})
		}
	}

	config := &genai.GenerateContentConfig{}
	if len(system) > 0 {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: strings.Join(system, "\n\n")}},
		}
	}
	return contents, config
}
