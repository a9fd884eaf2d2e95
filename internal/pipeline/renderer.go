package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/openfnol/fnoltriage/internal/model"
)

// Renderer writes claim results as JSON or Markdown
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a new renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes one result as indented JSON. A path of "-" writes
// to stdout.
func (r *Renderer) RenderJSON(result *model.Result, path string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	return r.write(data, path)
}

// RenderBatchJSON writes a batch result as indented JSON
func (r *Renderer) RenderBatchJSON(batch *model.BatchResult, path string) error {
	data, err := json.MarshalIndent(batch, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal batch: %w", err)
	}
	return r.write(data, path)
}

// RenderMarkdown writes one result as a human-readable report
func (r *Renderer) RenderMarkdown(result *model.Result, path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# FNOL Triage Report: %s\n\n", result.DocumentID)
	fmt.Fprintf(&b, "**Document type:** %s\n\n", result.Record.DocumentType)

	b.WriteString("## Extracted Fields\n\n")
	b.WriteString("| Field | Value | Confidence | Pattern |\n")
	b.WriteString("|-------|-------|------------|----------|\n")
	for _, name := range sortedFieldNames(result.Record) {
		value := result.Record.Fields[name]
		if value.IsEmpty() {
			fmt.Fprintf(&b, "| %s | *(empty)* | | |\n", name)
			continue
		}
		fmt.Fprintf(&b, "| %s | %s | %.2f | %s |\n",
			name, mdEscape(value.Raw), value.Confidence, value.Pattern)
	}

	b.WriteString("\n## Validation\n\n")
	if result.Validation.IsValid {
		b.WriteString("Complete: all required fields present and well-formed.\n")
	} else {
		for _, field := range result.Validation.MissingRequired {
			fmt.Fprintf(&b, "- missing required field `%s`\n", field)
		}
		for _, issue := range result.Validation.Malformed {
			fmt.Fprintf(&b, "- malformed `%s`: %s\n", issue.Field, issue.Reason)
		}
	}

	fmt.Fprintf(&b, "\n## Fraud Assessment\n\nScore **%.0f**, risk tier **%s**.\n\n",
		result.Fraud.Score, result.Fraud.RiskTier)
	for _, ind := range result.Fraud.Triggered {
		fmt.Fprintf(&b, "- %s (weight %.0f): %s\n", ind.Name, ind.Weight, mdEscape(ind.Evidence))
	}

	fmt.Fprintf(&b, "\n## Routing\n\nQueue **%s**, priority **%s** (rule `%s`).\n",
		result.Routing.DestinationQueue, result.Routing.Priority, result.Routing.MatchedRuleID)
	if result.Routing.RequiredActions != nil && result.Routing.RequiredActions.Cardinality() > 0 {
		actions := result.Routing.RequiredActions.ToSlice()
		sort.Strings(actions)
		fmt.Fprintf(&b, "Required actions: %s\n", strings.Join(actions, ", "))
	}

	if result.Notes != nil {
		fmt.Fprintf(&b, "\n## Adjuster Notes (%s/%s)\n\n%s\n",
			result.Notes.Provider, result.Notes.Model, result.Notes.NotesMD)
		for _, warning := range result.Notes.Warnings {
			fmt.Fprintf(&b, "\n> Warning: %s\n", warning)
		}
	}

	if r.includeFooter {
		fmt.Fprintf(&b, "\n---\nGenerated by fnoltriage at %s\n",
			time.Now().UTC().Format(time.RFC3339))
	}

	return r.write([]byte(b.String()), path)
}

// RenderSummary prints a one-screen result summary to stdout
func (r *Renderer) RenderSummary(result *model.Result) {
	fmt.Printf("Document:  %s (%s)\n", result.DocumentID, result.Record.DocumentType)
	fmt.Printf("Valid:     %v", result.Validation.IsValid)
	if len(result.Validation.MissingRequired) > 0 {
		fmt.Printf("  (missing: %s)", strings.Join(result.Validation.MissingRequired, ", "))
	}
	fmt.Println()
	fmt.Printf("Fraud:     %.0f (%s)\n", result.Fraud.Score, result.Fraud.RiskTier)
	fmt.Printf("Routing:   %s / %s  [rule %s]\n",
		result.Routing.DestinationQueue, result.Routing.Priority, result.Routing.MatchedRuleID)
}

// RenderBatchSummary prints batch counts and the route histogram
func (r *Renderer) RenderBatchSummary(batch *model.BatchResult) {
	fmt.Printf("Processed %d documents in %s: %d succeeded, %d failed\n",
		batch.Counts.Total, batch.Elapsed.Round(time.Millisecond),
		batch.Counts.Succeeded, batch.Counts.Failed)

	var processed time.Duration
	for _, outcome := range batch.Documents {
		if outcome.Succeeded() {
			processed += outcome.Result.Elapsed
		}
	}
	if batch.Counts.Succeeded > 0 {
		average := processed / time.Duration(batch.Counts.Succeeded)
		fmt.Printf("  average per document: %s\n", average.Round(time.Millisecond))
	}

	queues := make([]string, 0, len(batch.Routes))
	for queue := range batch.Routes {
		queues = append(queues, queue)
	}
	sort.Strings(queues)
	for _, queue := range queues {
		fmt.Printf("  %-15s %d\n", queue, batch.Routes[queue])
	}

	for _, outcome := range batch.Documents {
		if !outcome.Succeeded() {
			fmt.Printf("  FAILED %s: %s (%s)\n",
				outcome.DocumentID, outcome.Failure.Message, outcome.Failure.Kind)
		}
	}
}

func (r *Renderer) write(data []byte, path string) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(append(data, '\n'))
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func sortedFieldNames(record model.ClaimRecord) []string {
	names := make([]string, 0, len(record.Fields))
	for name := range record.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func mdEscape(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", " ")
}
