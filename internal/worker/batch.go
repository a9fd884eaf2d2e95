package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openfnol/fnoltriage/internal/model"
)

// Processor defines the interface for processing a single document
type Processor interface {
	Process(ctx context.Context, doc model.Document) (*model.Result, error)
}

// DocumentJob processes one document within a batch. Index records the
// document's position in the original input so the batch can be
// reassembled in submission order.
type DocumentJob struct {
	Index      int
	Document   model.Document
	Processor  Processor
	DocTimeout time.Duration
	Limiter    *Limiter
}

// Execute runs the document through the processor. A panic or error in
// one document becomes a classified failure; it never aborts the batch.
func (j *DocumentJob) Execute(ctx context.Context) Result {
	docResult := &DocumentResult{Index: j.Index}

	if err := j.Limiter.Wait(ctx); err != nil {
		docResult.Outcome = failureOutcome(j.Document.ID, model.ErrorKindInternal, err)
		docResult.Err = err
		return docResult
	}

	if j.DocTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.DocTimeout)
		defer cancel()
	}

	result, err := j.runProtected(ctx)
	if err != nil {
		docResult.Outcome = failureOutcome(j.Document.ID, classify(err), err)
		docResult.Err = err
		return docResult
	}

	docResult.Outcome = model.DocumentOutcome{
		DocumentID: result.DocumentID,
		Result:     result,
	}
	return docResult
}

// runProtected isolates a panicking document from the rest of the batch
func (j *DocumentJob) runProtected(ctx context.Context) (result *model.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = model.NewProcessingError(model.ErrorKindInternal, fmt.Errorf("panic: %v", r))
		}
	}()

	return j.Processor.Process(ctx, j.Document)
}

// classify maps an error to its reporting kind
func classify(err error) model.ErrorKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return model.ErrorKindTimeout
	}
	var procErr *model.ProcessingError
	if errors.As(err, &procErr) {
		return procErr.Kind
	}
	return model.ErrorKindInternal
}

func failureOutcome(docID string, kind model.ErrorKind, err error) model.DocumentOutcome {
	return model.DocumentOutcome{
		DocumentID: docID,
		Failure: &model.Failure{
			Kind:    kind,
			Message: err.Error(),
		},
	}
}

// DocumentResult is the pool-level result of a document job
type DocumentResult struct {
	Index   int
	Outcome model.DocumentOutcome
	Err     error
}

// GetError returns the processing error, if any
func (r *DocumentResult) GetError() error {
	return r.Err
}

// BatchProcessor processes multiple documents concurrently
type BatchProcessor struct {
	processor   Processor
	concurrency int
	docTimeout  time.Duration
	limiter     *Limiter
}

// NewBatchProcessor creates a new batch processor. docTimeout bounds
// each document; docsPerSecond of zero disables pacing.
func NewBatchProcessor(processor Processor, concurrency int, docTimeout time.Duration, docsPerSecond float64) *BatchProcessor {
	return &BatchProcessor{
		processor:   processor,
		concurrency: concurrency,
		docTimeout:  docTimeout,
		limiter:     NewLimiter(docsPerSecond, concurrency),
	}
}

// ProcessDocuments processes documents concurrently. The returned
// outcomes are in input order regardless of completion order, and
// counts are computed only after every document has resolved.
func (b *BatchProcessor) ProcessDocuments(ctx context.Context, docs []model.Document) *model.BatchResult {
	started := time.Now()
	batch := &model.BatchResult{
		Documents: make([]model.DocumentOutcome, len(docs)),
		Routes:    make(map[string]int),
	}
	if len(docs) == 0 {
		batch.Elapsed = time.Since(started)
		return batch
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	// Cancellation drains the pool so Wait returns promptly
	stop := context.AfterFunc(ctx, pool.Shutdown)
	defer stop()

	// Submission and draining must overlap: both pool channels are
	// bounded, and a batch larger than the buffers stalls a submitter
	// that waits for all results first.
	go func() {
		for i, doc := range docs {
			if ctx.Err() != nil {
				break
			}
			pool.Submit(&DocumentJob{
				Index:      i,
				Document:   doc,
				Processor:  b.processor,
				DocTimeout: b.docTimeout,
				Limiter:    b.limiter,
			})
		}
		pool.Finish()
	}()

	resolved := make([]bool, len(docs))
	for result := range pool.Results() {
		docResult := result.(*DocumentResult)
		batch.Documents[docResult.Index] = docResult.Outcome
		resolved[docResult.Index] = true
	}

	// Jobs dropped by cancellation still get an outcome slot
	for i, ok := range resolved {
		if !ok {
			err := ctx.Err()
			if err == nil {
				err = errors.New("document was not processed")
			}
			batch.Documents[i] = failureOutcome(docs[i].ID, model.ErrorKindInternal, err)
		}
	}

	for _, outcome := range batch.Documents {
		if outcome.Succeeded() {
			batch.Counts.Succeeded++
			batch.Routes[outcome.Result.Routing.DestinationQueue]++
		} else {
			batch.Counts.Failed++
		}
	}
	batch.Counts.Total = len(docs)
	batch.Elapsed = time.Since(started)

	return batch
}
