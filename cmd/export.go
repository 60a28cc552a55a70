package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/parcelworks/labelextract/internal/common"
	"github.com/parcelworks/labelextract/internal/export"
	"github.com/parcelworks/labelextract/internal/repository"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <out.xlsx>",
		Short: "Export stored extraction records to an XLSX workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			ctx := cmd.Context()

			cfg := common.LoadConfig()
			db, err := repository.Open(ctx, cfg.Store.DBPath, logger)
			if err != nil {
				return err
			}
			defer repository.Close(db, logger)

			svc := export.NewService(repository.NewExtractionRepository(db, logger), logger)
			b, err := svc.ExportXLSX(ctx)
			if err != nil {
				return err
			}
			if err := os.WriteFile(args[0], b, 0o644); err != nil {
				return fmt.Errorf("write workbook: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", args[0], len(b))
			return nil
		},
	}
	return cmd
}
