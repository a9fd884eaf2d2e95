package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/openfnol/fnoltriage/internal/model"
	"github.com/openfnol/fnoltriage/internal/pipeline"
	"github.com/openfnol/fnoltriage/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
	docTimeout   time.Duration
	docsPerSec   float64
	batchJSON    string
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <path>",
	Short: "Process a directory of FNOL documents in parallel",
	Long: `Batch processes many FNOL documents concurrently:
- Load every supported document (.txt, .html) from a directory
- Process documents in parallel with a configurable worker count
- Capture per-document failures without aborting the batch
- Report per-document outcomes in input order, plus a route histogram

A single file path processes that one document through the batch flow.

Example:
  fnoltriage batch ./inbox
  fnoltriage batch ./inbox --concurrency 8 --output-dir ./reports
  fnoltriage batch ./inbox --doc-timeout 30s --rate 10`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./fnol-reports", "output directory for per-claim reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().DurationVar(&docTimeout, "doc-timeout", time.Minute, "timeout for each document")
	batchCmd.Flags().Float64Var(&docsPerSec, "rate", 0, "max documents started per second (0 = unlimited)")
	batchCmd.Flags().StringVar(&batchJSON, "summary-json", "", "write the batch summary JSON to this path")

	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the result cache")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	batchCmd.Flags().BoolVar(&llmEnabled, "llm", false, "generate adjuster notes with an LLM")
	batchCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider")
	batchCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runBatch(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  FNOL Batch Processing\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input:        %s\n", path)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "  Timeout:      %v (per document: %v)\n", batchTimeout, docTimeout)
	fmt.Fprintf(os.Stderr, "\n")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.Cache.Enabled = cfg.Cache.Enabled && !noCache
	cfg.Concurrency.Workers = concurrency
	cfg.Concurrency.DocumentTimeout = docTimeout
	cfg.RateLimiting.DocumentsPerSecond = docsPerSec
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter
	if err := configureLLM(cfg, llmEnabled, llmProvider, llmModel); err != nil {
		return err
	}
	if llmEnabled {
		fmt.Fprintf(os.Stderr, "  LLM:          %s/%s\n\n", llmProvider, llmModel)
	}

	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	docs, loadFailures, err := loadBatchInput(path)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Loaded %d documents", len(docs))
	if len(loadFailures) > 0 {
		fmt.Fprintf(os.Stderr, " (%d failed to load)", len(loadFailures))
	}
	fmt.Fprintf(os.Stderr, "\n\n")

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	p, err := pipeline.NewPipeline(cfg, logger)
	if err != nil {
		return err
	}

	processor := worker.NewBatchProcessor(p, concurrency, docTimeout, docsPerSec)
	batch := processor.ProcessDocuments(ctx, docs)

	// Unreadable files count against the batch like any other failure
	for _, failure := range loadFailures {
		batch.Documents = append(batch.Documents, failure)
		batch.Counts.Failed++
		batch.Counts.Total++
	}

	renderer := pipeline.NewRenderer(cfg.Output.IncludeFooter)
	for _, outcome := range batch.Documents {
		if !outcome.Succeeded() {
			continue
		}
		slug := sanitizeFilename(outcome.DocumentID)
		if err := renderer.RenderJSON(outcome.Result, filepath.Join(outputDir, slug+".json")); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: write JSON: %v\n", outcome.DocumentID, err)
		}
		if err := renderer.RenderMarkdown(outcome.Result, filepath.Join(outputDir, slug+".md")); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: write Markdown: %v\n", outcome.DocumentID, err)
		}
	}

	if batchJSON != "" {
		if err := renderer.RenderBatchJSON(batch, batchJSON); err != nil {
			return err
		}
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Batch Complete\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	renderer.RenderBatchSummary(batch)

	return nil
}

// loadBatchInput accepts a directory of documents or a single file
func loadBatchInput(path string) ([]model.Document, []model.DocumentOutcome, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, fmt.Errorf("stat input: %w", err)
	}

	if info.IsDir() {
		return pipeline.LoadDirectory(path)
	}

	doc, err := pipeline.LoadDocument(path)
	if err != nil {
		return nil, nil, fmt.Errorf("load document: %w", err)
	}
	return []model.Document{doc}, nil, nil
}

// sanitizeFilename sanitizes a document ID for use as a filename
func sanitizeFilename(s string) string {
	replacer := strings.NewReplacer(
		"/", "_", "\\", "_", ":", "_", "*", "_", "?", "_",
		"\"", "_", "<", "_", ">", "_", "|", "_", " ", "-",
	)
	s = replacer.Replace(s)
	if len(s) > 100 {
		s = s[:100]
	}
	if s == "" {
		s = "claim"
	}
	return s
}
