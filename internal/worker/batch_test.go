package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/openfnol/fnoltriage/internal/model"
)

// MockProcessor implements Processor with per-document behavior
type MockProcessor struct {
	FailID  string
	PanicID string
	Delay   time.Duration
	Queue   string
}

func (m *MockProcessor) Process(ctx context.Context, doc model.Document) (*model.Result, error) {
	if m.Delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(m.Delay):
		}
	}
	if doc.ID == m.FailID {
		return nil, model.NewProcessingError(model.ErrorKindExtraction, errors.New("unreadable document"))
	}
	if doc.ID == m.PanicID {
		panic("processor blew up")
	}

	queue := m.Queue
	if queue == "" {
		queue = "standard"
	}
	return &model.Result{
		DocumentID: doc.ID,
		Routing:    model.RoutingDecision{DestinationQueue: queue},
	}, nil
}

func docs(ids ...string) []model.Document {
	out := make([]model.Document, len(ids))
	for i, id := range ids {
		out[i] = model.Document{ID: id, Text: "text for " + id}
	}
	return out
}

func TestBatchProcessor_OrderPreserved(t *testing.T) {
	processor := NewBatchProcessor(&MockProcessor{Delay: 5 * time.Millisecond}, 4, 0, 0)

	input := docs("d1", "d2", "d3", "d4", "d5")
	batch := processor.ProcessDocuments(context.Background(), input)

	if len(batch.Documents) != 5 {
		t.Fatalf("documents = %d, want 5", len(batch.Documents))
	}
	for i, outcome := range batch.Documents {
		if outcome.DocumentID != input[i].ID {
			t.Errorf("documents[%d] = %s, want %s (input order)", i, outcome.DocumentID, input[i].ID)
		}
	}
	if batch.Counts.Succeeded != 5 || batch.Counts.Failed != 0 || batch.Counts.Total != 5 {
		t.Errorf("counts = %+v, want 5/0/5", batch.Counts)
	}
	if batch.Routes["standard"] != 5 {
		t.Errorf("routes = %v, want standard:5", batch.Routes)
	}
}

func TestBatchProcessor_OneFailureDoesNotAbort(t *testing.T) {
	processor := NewBatchProcessor(&MockProcessor{FailID: "d3"}, 2, 0, 0)

	batch := processor.ProcessDocuments(context.Background(), docs("d1", "d2", "d3", "d4", "d5"))

	if batch.Counts.Succeeded != 4 || batch.Counts.Failed != 1 {
		t.Fatalf("counts = %+v, want 4 succeeded 1 failed", batch.Counts)
	}

	outcome := batch.Documents[2]
	if outcome.Succeeded() {
		t.Fatal("documents[2] should be the failure")
	}
	if outcome.Failure.Kind != model.ErrorKindExtraction {
		t.Errorf("failure kind = %s, want extraction_failure", outcome.Failure.Kind)
	}
	for i, other := range batch.Documents {
		if i != 2 && !other.Succeeded() {
			t.Errorf("documents[%d] unexpectedly failed: %+v", i, other.Failure)
		}
	}
}

func TestBatchProcessor_PanicBecomesInternalFailure(t *testing.T) {
	processor := NewBatchProcessor(&MockProcessor{PanicID: "d2"}, 2, 0, 0)

	batch := processor.ProcessDocuments(context.Background(), docs("d1", "d2", "d3"))

	outcome := batch.Documents[1]
	if outcome.Succeeded() {
		t.Fatal("expected the panicking document to fail")
	}
	if outcome.Failure.Kind != model.ErrorKindInternal {
		t.Errorf("failure kind = %s, want internal", outcome.Failure.Kind)
	}
	if batch.Counts.Succeeded != 2 {
		t.Errorf("counts = %+v, want the other documents to succeed", batch.Counts)
	}
}

func TestBatchProcessor_DocumentTimeout(t *testing.T) {
	processor := NewBatchProcessor(&MockProcessor{Delay: 200 * time.Millisecond}, 1, 20*time.Millisecond, 0)

	batch := processor.ProcessDocuments(context.Background(), docs("slow"))

	outcome := batch.Documents[0]
	if outcome.Succeeded() {
		t.Fatal("expected a timeout failure")
	}
	if outcome.Failure.Kind != model.ErrorKindTimeout {
		t.Errorf("failure kind = %s, want timeout", outcome.Failure.Kind)
	}
}

// A batch far larger than the pool's channel buffers must still
// complete: submission and result draining have to overlap, or the
// workers fill the result buffer and block every further submit.
func TestBatchProcessor_LargerThanChannelBuffers(t *testing.T) {
	const total = 40
	processor := NewBatchProcessor(&MockProcessor{}, 2, 0, 0)

	input := make([]model.Document, total)
	for i := range input {
		input[i] = model.Document{ID: "d" + string(rune('A'+i%26)) + string(rune('0'+i/26)), Text: "t"}
	}

	done := make(chan *model.BatchResult, 1)
	go func() {
		done <- processor.ProcessDocuments(context.Background(), input)
	}()

	select {
	case batch := <-done:
		if batch.Counts.Succeeded != total || batch.Counts.Failed != 0 {
			t.Fatalf("counts = %+v, want %d/0", batch.Counts, total)
		}
		for i, outcome := range batch.Documents {
			if outcome.DocumentID != input[i].ID {
				t.Errorf("documents[%d] = %s, want %s (input order)", i, outcome.DocumentID, input[i].ID)
			}
		}
	case <-time.After(5 * time.Second):
		t.Fatal("ProcessDocuments did not finish; submission is blocking on full pool buffers")
	}
}

func TestBatchProcessor_Empty(t *testing.T) {
	processor := NewBatchProcessor(&MockProcessor{}, 2, 0, 0)

	batch := processor.ProcessDocuments(context.Background(), nil)

	if batch.Counts.Total != 0 || len(batch.Documents) != 0 {
		t.Errorf("batch = %+v, want empty", batch)
	}
}

func TestBatchProcessor_RouteHistogram(t *testing.T) {
	processor := NewBatchProcessor(&MockProcessor{Queue: "fast_track", FailID: "d2"}, 2, 0, 0)

	batch := processor.ProcessDocuments(context.Background(), docs("d1", "d2", "d3"))

	// Failures have no route; only successes land in the histogram.
	if batch.Routes["fast_track"] != 2 {
		t.Errorf("routes = %v, want fast_track:2", batch.Routes)
	}
	if len(batch.Routes) != 1 {
		t.Errorf("routes = %v, want a single queue", batch.Routes)
	}
}
