package llm

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestConvertForGemini(t *testing.T) {
	contents, config := convertForGemini([]Message{
		{Role: RoleSystem, Content: "persona"},
		{Role: RoleUser, Content: "question"},
		{Role: RoleAssistant, Content: "answer"},
	})
	if config.SystemInstruction == nil || config.SystemInstruction.Parts[0].Text != "persona" {
		t.Fatalf("system instruction not set: %+v", config.SystemInstruction)
	}
	if len(contents) != 2 {
		t.Fatalf("want 2 contents, got %d", len(contents))
	}
	if contents[0].Role != "user" || contents[0].Parts[0].Text != "question" {
		t.Fatalf("unexpected first content: %+v", contents[0])
	}
	if contents[1].Role != "model" {
		t.Fatalf("assistant should map to model, got %s", contents[1].Role)
	}
}

func TestConvertForGeminiNoSystem(t *testing.T) {
	_, config := convertForGemini([]Message{{Role: RoleUser, Content: "q"}})
	if config.SystemInstruction != nil {
		t.Fatalf("unexpected system instruction")
	}
}

func newGeminiTestServer(t *testing.T, body string) *GeminiClient {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, ":generateContent") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	c, err := NewGemini(context.Background(), "secret", srv.URL, "gemini-1.5-flash")
	if err != nil {
		t.Fatalf("init gemini: %v", err)
	}
	return c
}

func TestGeminiClientGenerate(t *testing.T) {
	c := newGeminiTestServer(t, `{"candidates":[{"content":{"role":"model","parts":[{"text":"HP Laptop 14s"}]}}],
		"usageMetadata":{"promptTokenCount":2,"candidatesTokenCount":3,"totalTokenCount":5}}`)

	resp, err := c.Generate(context.Background(), []Message{
		{Role: RoleSystem, Content: "persona"},
		{Role: RoleUser, Content: "laptop"},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if resp.Content != "HP Laptop 14s" {
		t.Fatalf("unexpected content: %q", resp.Content)
	}
	if resp.TotalTokens != 5 || resp.PromptTokens != 2 {
		t.Fatalf("unexpected usage: %+v", resp)
	}
}

func TestGeminiClientEmptyAnswer(t *testing.T) {
	c := newGeminiTestServer(t, `{"candidates":[]}`)

	_, err := c.Generate(context.Background(), []Message{{Role: RoleUser, Content: "laptop"}})
	if !errors.Is(err, ErrEmptyCompletion) {
		t.Fatalf("want ErrEmptyCompletion, got %v", err)
	}
}
