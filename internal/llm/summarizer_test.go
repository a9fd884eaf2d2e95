package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/openfnol/fnoltriage/internal/model"
)

// fakeProvider implements Provider for tests
type fakeProvider struct {
	notes string
	err   error
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &SummarizeResponse{Notes: f.notes, Model: "fake-model"}, nil
}

func sampleResult() model.Result {
	return model.Result{
		DocumentID: "doc-1",
		Record: model.ClaimRecord{Fields: map[string]model.ExtractedValue{
			model.FieldPolicyNumber: {Raw: "POL-1", Normalized: "POL-1"},
		}},
		Fraud: model.FraudAssessment{Score: 30, RiskTier: model.RiskTierMedium},
		Routing: model.RoutingDecision{
			DestinationQueue: "standard",
			Priority:         model.PriorityHigh,
			MatchedRuleID:    "elevated-risk",
		},
	}
}

func TestSummarizer_DisabledGeneratesNothing(t *testing.T) {
	s, err := NewSummarizer(model.LLMConfig{})
	if err != nil {
		t.Fatalf("NewSummarizer: %v", err)
	}
	if s.Enabled() {
		t.Error("summarizer with no provider should be disabled")
	}

	notes, err := s.Generate(context.Background(), sampleResult())
	if err != nil || notes != nil {
		t.Errorf("Generate = %v, %v; want nil, nil", notes, err)
	}

	var nilSummarizer *Summarizer
	if nilSummarizer.Enabled() {
		t.Error("nil summarizer should be disabled")
	}
}

func TestSummarizer_Generate(t *testing.T) {
	s := &Summarizer{provider: &fakeProvider{notes: "Claim routed to standard for review."}}

	notes, err := s.Generate(context.Background(), sampleResult())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if notes.Provider != "fake" || notes.Model != "fake-model" {
		t.Errorf("provenance = %s/%s, want fake/fake-model", notes.Provider, notes.Model)
	}
	if len(notes.Warnings) != 0 {
		t.Errorf("warnings = %v, want none for consistent notes", notes.Warnings)
	}
}

// Notes naming a queue other than the routed one get flagged; the
// decision itself is already final.
func TestSummarizer_FlagsContradictingQueue(t *testing.T) {
	s := &Summarizer{provider: &fakeProvider{
		notes: "This claim should go to investigation immediately.",
	}}

	notes, err := s.Generate(context.Background(), sampleResult())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(notes.Warnings) != 1 {
		t.Fatalf("warnings = %v, want one queue contradiction", notes.Warnings)
	}
	if !strings.Contains(notes.Warnings[0], "investigation") {
		t.Errorf("warning = %q, want it to name the contradicting queue", notes.Warnings[0])
	}
}

func TestSummarizer_ProviderErrorPropagates(t *testing.T) {
	s := &Summarizer{provider: &fakeProvider{err: errors.New("backend down")}}

	if _, err := s.Generate(context.Background(), sampleResult()); err == nil {
		t.Error("expected the provider error to propagate")
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(sampleResult())

	for _, want := range []string{
		"policy_number: POL-1",
		"queue=standard",
		"rule=elevated-risk",
		"routing decision",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestNewProvider_Unknown(t *testing.T) {
	if _, err := NewProvider(model.LLMConfig{Provider: "carrier-pigeon"}); err == nil {
		t.Error("expected an error for an unknown provider")
	}
}
