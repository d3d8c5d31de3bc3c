// Package advisor turns a shopping query into a single completion call
// under a fixed persona.
package advisor

import (
	"context"
	"fmt"
	"log"
	"strings"

	"shopwise/internal/llm"
)

// ErrorMarker prefixes every answer produced from a failed call.
const ErrorMarker = "❌ Error: "

const promptPrefix = "Suggest or explain the best options for: "

// Agent pairs a persona with an LLM client.
type Agent struct {
	Name         string
	Instructions string

	llmClient llm.Client
}

// ShoppingAdvisor is the persona served by the page.
func ShoppingAdvisor(client llm.Client) *Agent {
	return NewAgent(
		"Shopping Advisor",
		"You're a helpful shopping assistant that suggests or explains products based on the user's query. Be concise, clear, and helpful.",
		client,
	)
}

func NewAgent(name, instructions string, client llm.Client) *Agent {
	return &Agent{Name: name, Instructions: instructions, llmClient: client}
}

// BuildPrompt wraps the raw query into the instruction sent as the user turn.
func BuildPrompt(query string) string {
	return promptPrefix + query
}

// Suggest always returns text. Failures are folded into a string that
// starts with ErrorMarker.
func (a *Agent) Suggest(ctx context.Context, query string) string {
	answer, _ := a.suggest(ctx, query)
	return answer
}

// suggest also reports whether the answer came from a failure, so callers
// need not guess from the text.
func (a *Agent) suggest(ctx context.Context, query string) (answer string, failed bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("❌ %s panicked: %v", a.Name, r)
			answer, failed = ErrorMarker+fmt.Sprint(r), true
		}
	}()

	msgs := []llm.Message{
		{Role: llm.RoleSystem, Content: a.Instructions},
		{Role: llm.RoleUser, Content: BuildPrompt(query)},
	}
	resp, err := a.llmClient.Generate(ctx, msgs)
	if err != nil {
		log.Printf("❌ %s: completion failed for %q: %v", a.Name, truncate(query, 40), err)
		return ErrorMarker + err.Error(), true
	}
	log.Printf("🤖 %s answered (%s, %d tokens)", a.Name, resp.Model, resp.TotalTokens)
	return resp.Content, false
}

// IsError reports whether text looks like a folded failure. Prefer
// Future.Failed when the answer came through a Pool.
func IsError(answer string) bool {
	return strings.HasPrefix(answer, ErrorMarker)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
