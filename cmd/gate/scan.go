package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tracker-tv/push-policy-gate/internal/service"
)

func newScanCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "scan [file|-]",
		Short: "Evaluate a unified diff read from a file or stdin",
		Example: `  git diff origin/main... | gate scan
  gate scan changes.diff --output json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := "-"
			if len(args) == 1 {
				source = args[0]
			}

			var r io.Reader = a.stdin
			if source != "-" {
				f, err := os.Open(source)
				if err != nil {
					return fmt.Errorf("opening diff: %w", err)
				}
				defer f.Close()
				r = f
			} else {
				source = "stdin"
			}

			event, err := service.NewDiffService(nil).FromReader(r, source)
			if err != nil {
				return err
			}

			gate, err := a.gate()
			if err != nil {
				return err
			}

			return a.finish(gate.Evaluate(cmd.Context(), event))
		},
	}
}
