package cmd

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/parcelworks/labelextract/internal/common"
	"github.com/parcelworks/labelextract/internal/llm/ollama"
	"github.com/parcelworks/labelextract/internal/pipeline"
	"github.com/parcelworks/labelextract/internal/recipients"
	"github.com/parcelworks/labelextract/internal/resolve"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "labelextract",
		Short: "Recipient name and address extraction from shipping-label OCR text",
		Long: `Labelextract turns noisy OCR output from scanned shipping labels into
structured {recipient_name, recipient_address} records.

It normalizes the scan text, asks a local generation model for a structured
extraction, validates the claimed name against a closed recipient whitelist,
and falls back to fuzzy and pattern matching over the raw text when the
model's output is missing or untrustworthy.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	cmd.AddCommand(newExtractCmd())
	cmd.AddCommand(newBatchCmd())
	cmd.AddCommand(newExportCmd())
	cmd.AddCommand(newServeCmd())

	return cmd
}

func newLogger() *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)
	return logger
}

// buildOrchestrator wires config, whitelist, model client, and resolvers
// into a ready pipeline. Shared by every subcommand that extracts.
func buildOrchestrator(logger *slog.Logger) (*pipeline.Orchestrator, *common.Config, error) {
	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	whitelist, err := recipients.LoadFile(cfg.Pipeline.RecipientsFile)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("recipients.loaded", "file", cfg.Pipeline.RecipientsFile, "count", whitelist.Len())

	gen := ollama.NewClient(cfg.LLM, logger)
	names := resolve.NewNameResolver(whitelist, cfg.Match.Threshold)
	return pipeline.New(logger, gen, names), cfg, nil
}
