package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/parcelworks/labelextract/internal/repository"
)

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Extract records from a file of raw scans and store them",
		Long: `Reads one raw scan text per line from the given file, runs each through
the extraction pipeline sequentially, and stores every result in the local
record store. Records are independent units of work: a backend failure on
one record is logged and the batch continues.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			ctx := cmd.Context()

			orch, cfg, err := buildOrchestrator(logger)
			if err != nil {
				return err
			}

			db, err := repository.Open(ctx, cfg.Store.DBPath, logger)
			if err != nil {
				return err
			}
			defer repository.Close(db, logger)
			repo := repository.NewExtractionRepository(db, logger)

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open batch file: %w", err)
			}
			defer f.Close()

			var processed, failed int
			scanner := bufio.NewScanner(f)
			scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}

				res, err := orch.Run(ctx, line)
				if err != nil {
					failed++
					logger.Error("batch.record.failed", "record", processed+failed, "error", err)
					continue
				}
				if err := repo.Save(ctx, &repository.Extraction{
					SourceText:       line,
					RecipientName:    res.Record.RecipientName,
					RecipientAddress: res.Record.RecipientAddress,
					ModelRaw:         res.ModelResponse,
				}); err != nil {
					failed++
					logger.Error("batch.record.save_failed", "error", err)
					continue
				}
				processed++
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read batch file: %w", err)
			}

			logger.Info("batch.done", "processed", processed, "failed", failed)
			if failed > 0 {
				return fmt.Errorf("%d of %d records failed", failed, processed+failed)
			}
			return nil
		},
	}
	return cmd
}
