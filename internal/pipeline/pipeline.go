// Package pipeline orchestrates single-document claim processing:
// load, detect, extract, validate, score, route, and render.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/openfnol/fnoltriage/internal/cache"
	"github.com/openfnol/fnoltriage/internal/extract"
	"github.com/openfnol/fnoltriage/internal/fraud"
	"github.com/openfnol/fnoltriage/internal/llm"
	"github.com/openfnol/fnoltriage/internal/model"
	"github.com/openfnol/fnoltriage/internal/route"
	"github.com/openfnol/fnoltriage/internal/validate"
)

// Pipeline runs the complete per-document claim flow
type Pipeline struct {
	extractor  *extract.Extractor
	formParser *extract.FormParser
	scorer     *fraud.Scorer
	engine     *route.Engine
	cache      cache.Cache
	summarizer *llm.Summarizer
	config     *model.Config
	logger     *zap.Logger
}

// NewPipeline creates a pipeline from a normalized configuration
func NewPipeline(cfg *model.Config, logger *zap.Logger) (*Pipeline, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	extractor, err := extract.NewExtractor(cfg.Schema)
	if err != nil {
		return nil, fmt.Errorf("compile field schema: %w", err)
	}

	var resultCache cache.Cache
	if cfg.Cache.Enabled {
		resultCache = cache.NewMemoryCache(cfg.Cache.TTL, 2*cfg.Cache.TTL)
	}

	var summarizer *llm.Summarizer
	if cfg.LLM.Provider != "" {
		s, err := llm.NewSummarizer(cfg.LLM)
		if err != nil {
			logger.Warn("LLM summarizer disabled", zap.Error(err))
		} else {
			summarizer = s
		}
	}

	return &Pipeline{
		extractor:  extractor,
		formParser: extract.NewFormParser(cfg.Form, extractor),
		scorer:     fraud.NewScorer(cfg.Fraud),
		engine:     route.NewEngine(cfg.Rules),
		cache:      resultCache,
		summarizer: summarizer,
		config:     cfg,
		logger:     logger,
	}, nil
}

// Process runs a document through extraction, validation, fraud
// scoring, and routing. Identical text always yields the same decision;
// the cache is keyed by a content hash, never by document ID.
func (p *Pipeline) Process(ctx context.Context, doc model.Document) (*model.Result, error) {
	started := time.Now()
	log := p.logger.With(zap.String("document_id", doc.ID))

	cacheKey := cache.Key(doc.Text)
	if p.cache != nil {
		if cached, ok := p.cache.Get(cacheKey); ok {
			log.Debug("cache hit")
			hit := *cached
			hit.DocumentID = doc.ID
			return &hit, nil
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	docType := extract.DetectDocumentType(doc.Text, doc.TypeHint, p.config.Form, p.config.Detection.SniffLines)

	var record model.ClaimRecord
	var err error
	if docType == model.DocumentTypeACORD {
		record, err = p.formParser.Parse(doc.Text)
	} else {
		record, err = p.extractor.Extract(doc.Text)
	}
	if err != nil {
		return nil, model.NewProcessingError(model.ErrorKindExtraction, err)
	}
	log.Debug("extraction complete",
		zap.String("document_type", string(record.DocumentType)),
		zap.Int("warnings", len(record.Warnings)))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	validation := validate.Validate(record, p.config.Schema)
	assessment := p.scorer.Assess(record, doc.Text)
	decision := p.engine.Route(record, validation, assessment)

	log.Info("claim routed",
		zap.String("queue", decision.DestinationQueue),
		zap.String("priority", string(decision.Priority)),
		zap.String("rule", decision.MatchedRuleID),
		zap.Float64("fraud_score", assessment.Score),
		zap.String("risk_tier", string(assessment.RiskTier)))

	result := &model.Result{
		DocumentID: doc.ID,
		Record:     record,
		Validation: validation,
		Fraud:      assessment,
		Routing:    decision,
		Elapsed:    time.Since(started),
	}

	// Notes come last and never feed back into the decision above
	if p.summarizer.Enabled() {
		notes, err := p.summarizer.Generate(ctx, *result)
		if err != nil {
			log.Warn("adjuster notes generation failed", zap.Error(err))
		} else {
			result.Notes = notes
		}
	}

	if p.cache != nil {
		p.cache.Set(cacheKey, result)
	}

	return result, nil
}
