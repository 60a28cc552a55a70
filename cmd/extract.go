package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract [text]",
		Short: "Extract a recipient record from one raw OCR text",
		Long: `Runs a single raw scan text through the extraction pipeline and prints
the resulting record as JSON on stdout. Pass the text as an argument, or
"-" to read it from stdin.`,
		Example: `  # Extract from an argument
  labelextract extract "2821 carradale dr, 95661-4047 roseville, ca, zoey dong"

  # Extract from stdin
  cat scan.txt | labelextract extract -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			text := args[0]
			if text == "-" {
				b, err := io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				text = string(b)
			}
			if strings.TrimSpace(text) == "" {
				return fmt.Errorf("no scan text provided")
			}

			orch, _, err := buildOrchestrator(logger)
			if err != nil {
				return err
			}

			res, err := orch.Run(cmd.Context(), text)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(res.Record, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	return cmd
}
