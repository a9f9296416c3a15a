package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/budgeteur/backend/internal/domain/valueobject"
)

func rangesCmd() *cobra.Command {
	var intervalFlag string

	cmd := &cobra.Command{
		Use:   "ranges",
		Short: "List range presets selectable for an interval",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if intervalFlag == "" {
				intervalFlag = cfg.Transactions.DefaultInterval
			}
			interval, err := valueobject.ParseIntervalPreset(intervalFlag)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			defer w.Flush()

			writeHeader(w, "Range", "Status")
			for _, option := range valueobject.RangeOptions(interval) {
				status := "available"
				if option.Disabled {
					status = mutedStyle.Render(fmt.Sprintf("too small for %s", interval.Label()))
				}
				fmt.Fprintf(w, "%s\t%s\n", option.Preset, status)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&intervalFlag, "interval", "", "interval preset")

	return cmd
}
