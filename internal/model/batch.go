package model

import (
	"fmt"
	"time"
)

// ErrorKind classifies a per-document failure for reporting
type ErrorKind string

const (
	ErrorKindExtraction ErrorKind = "extraction_failure"
	ErrorKindTimeout    ErrorKind = "timeout"
	ErrorKindLoad       ErrorKind = "load_failure"
	ErrorKindInternal   ErrorKind = "internal"
)

// ProcessingError carries an error kind across the per-document
// boundary so the orchestrator can classify failures without string
// matching
type ProcessingError struct {
	Kind ErrorKind
	Err  error
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}

// NewProcessingError wraps err with a failure kind
func NewProcessingError(kind ErrorKind, err error) *ProcessingError {
	return &ProcessingError{Kind: kind, Err: err}
}

// Failure is the value form of a per-document error inside a batch
type Failure struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// Result is the complete per-document pipeline output. It is built
// once and never mutated; later stages attach new entities rather
// than rewriting earlier ones.
type Result struct {
	DocumentID string           `json:"document_id"`
	Record     ClaimRecord      `json:"record"`
	Validation ValidationReport `json:"validation"`
	Fraud      FraudAssessment  `json:"fraud"`
	Routing    RoutingDecision  `json:"routing"`
	Elapsed    time.Duration    `json:"elapsed_ns"`
	Notes      *AdjusterNotes   `json:"notes,omitempty"`
}

// AdjusterNotes is an optional LLM-written narrative attached after
// routing. It never influences extraction, scoring, or routing.
type AdjusterNotes struct {
	Provider string   `json:"provider"`
	Model    string   `json:"model"`
	NotesMD  string   `json:"notes_md"`
	Warnings []string `json:"warnings,omitempty"`
}

// DocumentOutcome is one slot of a batch result: success with a full
// Result, or a captured Failure. Exactly one of the two is set.
type DocumentOutcome struct {
	DocumentID string   `json:"document_id"`
	Result     *Result  `json:"result,omitempty"`
	Failure    *Failure `json:"failure,omitempty"`
}

// Succeeded reports whether the document was fully processed
func (o DocumentOutcome) Succeeded() bool {
	return o.Failure == nil
}

// BatchCounts aggregates outcomes after every document resolves
type BatchCounts struct {
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
	Total     int `json:"total"`
}

// BatchResult collects per-document outcomes in original input order,
// regardless of completion order
type BatchResult struct {
	Documents []DocumentOutcome `json:"per_document"`
	Counts    BatchCounts       `json:"counts"`
	Routes    map[string]int    `json:"routes"`
	Elapsed   time.Duration     `json:"elapsed_ns"`
}
