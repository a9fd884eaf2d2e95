// Package llm generates optional adjuster-facing narrative notes for
// a processed claim. Notes are produced strictly after routing and
// never feed back into extraction, scoring, or routing.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/openfnol/fnoltriage/internal/model"
)

// Provider defines the interface for LLM backends
type Provider interface {
	// Name returns the provider name
	Name() string

	// Summarize generates adjuster notes for a processed claim
	Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error)
}

// SummarizeRequest contains the input for note generation
type SummarizeRequest struct {
	// Result is the completed pipeline output to narrate
	Result model.Result

	// Model overrides the configured model when set
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// SummarizeResponse contains the generated notes
type SummarizeResponse struct {
	Notes      string
	Model      string
	TokensUsed int
}

// NewProvider constructs the configured provider. An empty provider
// name means notes are disabled.
func NewProvider(cfg model.LLMConfig) (Provider, error) {
	switch cfg.Provider {
	case "openai":
		return NewOpenAIProvider(cfg)
	case "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
}

// BuildPrompt constructs the note-generation prompt from the
// pipeline output. The decision is already made; the notes must
// describe it, not revisit it.
func BuildPrompt(result model.Result) string {
	var b strings.Builder

	b.WriteString("Write concise adjuster notes (Markdown) for this First Notice of Loss.\n")
	b.WriteString("RULES: Use ONLY the facts below. Do not invent details. ")
	b.WriteString("Do not question or change the routing decision; it is final.\n\n")

	b.WriteString("EXTRACTED FIELDS:\n")
	for name, value := range result.Record.Fields {
		if value.IsEmpty() {
			continue
		}
		fmt.Fprintf(&b, "- %s: %s\n", name, value.Raw)
	}

	fmt.Fprintf(&b, "\nVALIDATION: valid=%v missing=%v\n",
		result.Validation.IsValid, result.Validation.MissingRequired)
	fmt.Fprintf(&b, "FRAUD: score=%.0f tier=%s\n", result.Fraud.Score, result.Fraud.RiskTier)
	for _, ind := range result.Fraud.Triggered {
		fmt.Fprintf(&b, "- indicator %s (weight %.0f)\n", ind.Name, ind.Weight)
	}
	fmt.Fprintf(&b, "ROUTING: queue=%s priority=%s rule=%s\n",
		result.Routing.DestinationQueue, result.Routing.Priority, result.Routing.MatchedRuleID)

	return b.String()
}
