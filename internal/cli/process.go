package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/openfnol/fnoltriage/internal/model"
	"github.com/openfnol/fnoltriage/internal/pipeline"
)

var (
	outJSON        string
	outMD          string
	typeHint       string
	processTimeout time.Duration
	noCache        bool
	noFooter       bool
	llmEnabled     bool
	llmProvider    string
	llmModel       string
)

// processCmd represents the process command
var processCmd = &cobra.Command{
	Use:   "process <file>",
	Short: "Process a single FNOL document",
	Long: `Process runs one First Notice of Loss document through the full
intake flow:
- Detect document layout (free-form notice or ACORD-style form)
- Extract claim fields with per-field confidence
- Validate required fields
- Score fraud indicators
- Route the claim to a processing queue

Example:
  fnoltriage process notice.txt
  fnoltriage process acord-form.txt --type-hint acord --json claim.json
  fnoltriage process notice.html --md report.md --llm`,
	Args: cobra.ExactArgs(1),
	RunE: runProcess,
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (\"-\" for stdout)")
	processCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path")
	processCmd.Flags().StringVar(&typeHint, "type-hint", "", "force document type: generic or acord")
	processCmd.Flags().DurationVar(&processTimeout, "timeout", time.Minute, "processing timeout")
	processCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the result cache")
	processCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	processCmd.Flags().BoolVar(&llmEnabled, "llm", false, "generate adjuster notes with an LLM")
	processCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider")
	processCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runProcess(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), processTimeout)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.Cache.Enabled = cfg.Cache.Enabled && !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter
	if err := configureLLM(cfg, llmEnabled, llmProvider, llmModel); err != nil {
		return err
	}

	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	doc, err := pipeline.LoadDocument(path)
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}
	doc.TypeHint, err = parseTypeHint(typeHint)
	if err != nil {
		return err
	}

	p, err := pipeline.NewPipeline(cfg, logger)
	if err != nil {
		return err
	}

	result, err := p.Process(ctx, doc)
	if err != nil {
		return fmt.Errorf("process %s: %w", path, err)
	}

	renderer := pipeline.NewRenderer(cfg.Output.IncludeFooter)
	if outJSON != "" {
		if err := renderer.RenderJSON(result, outJSON); err != nil {
			return err
		}
		if verbose && outJSON != "-" {
			fmt.Fprintf(os.Stderr, "Wrote JSON: %s\n", outJSON)
		}
	}
	if outMD != "" {
		if err := renderer.RenderMarkdown(result, outMD); err != nil {
			return err
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Wrote Markdown: %s\n", outMD)
		}
	}

	if outJSON != "-" {
		renderer.RenderSummary(result)
	}

	return nil
}

func parseTypeHint(hint string) (model.DocumentType, error) {
	switch hint {
	case "":
		return model.DocumentTypeUnknown, nil
	case "generic":
		return model.DocumentTypeGeneric, nil
	case "acord":
		return model.DocumentTypeACORD, nil
	default:
		return model.DocumentTypeUnknown, fmt.Errorf("unknown type hint %q (want generic or acord)", hint)
	}
}
