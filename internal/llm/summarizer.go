package llm

import (
	"context"
	"strings"

	"github.com/openfnol/fnoltriage/internal/model"
)

// knownQueues are the built-in destination queues. Used to catch
// notes that drift into naming a queue other than the decided one.
var knownQueues = []string{
	"fast_track",
	"standard",
	"investigation",
	"specialist",
	"manual_review",
}

// Summarizer produces adjuster notes for completed results. A nil
// Summarizer (or one with no provider) is valid and generates nothing.
type Summarizer struct {
	provider Provider
	config   model.LLMConfig
}

// NewSummarizer constructs a summarizer from config. Returns a
// disabled summarizer when no provider is configured.
func NewSummarizer(config model.LLMConfig) (*Summarizer, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}
	return &Summarizer{provider: provider, config: config}, nil
}

// Enabled reports whether notes will be generated.
func (s *Summarizer) Enabled() bool {
	return s != nil && s.provider != nil
}

// Generate produces adjuster notes for a result. The result itself is
// never modified: a failed generation leaves the claim decision intact.
func (s *Summarizer) Generate(ctx context.Context, result model.Result) (*model.AdjusterNotes, error) {
	if !s.Enabled() {
		return nil, nil
	}

	resp, err := s.provider.Summarize(ctx, SummarizeRequest{Result: result})
	if err != nil {
		return nil, err
	}

	notes := &model.AdjusterNotes{
		Provider: s.provider.Name(),
		Model:    resp.Model,
		NotesMD:  resp.Notes,
	}

	// Flag notes that name a queue other than the routed one. The
	// decision is made before notes exist; contradicting text is a
	// model hallucination worth surfacing.
	lower := strings.ToLower(resp.Notes)
	for _, queue := range knownQueues {
		if queue == result.Routing.DestinationQueue {
			continue
		}
		if strings.Contains(lower, queue) {
			notes.Warnings = append(notes.Warnings,
				"notes mention queue "+queue+" but claim was routed to "+result.Routing.DestinationQueue)
		}
	}

	return notes, nil
}
