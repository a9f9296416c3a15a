package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/budgeteur/backend/internal/application/usecase/preference"
)

func excludeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exclude",
		Short: "Manage tags left out of totals",
	}

	cmd.AddCommand(listExcludedCmd())
	cmd.AddCommand(setExcludedCmd())

	return cmd
}

func listExcludedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tags and their exclusion status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			output, err := a.useCases.GetExcludedTags.Execute(cmd.Context())
			if err != nil {
				return err
			}

			printTags(cmd.OutOrStdout(), output)
			return nil
		},
	}
}

func setExcludedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set [tag-id...]",
		Short: "Replace the excluded tags",
		Long:  `Replace the excluded tag set with the given ids. Run without ids to clear it.`,
		Example: `  budgetctl exclude set 3 7
  budgetctl exclude set`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]int64, 0, len(args))
			for _, arg := range args {
				id, err := strconv.ParseInt(arg, 10, 64)
				if err != nil {
					return fmt.Errorf("invalid tag id %q", arg)
				}
				ids = append(ids, id)
			}

			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			output, err := a.useCases.UpdateExcludedTags.Execute(cmd.Context(), preference.UpdateExcludedTagsInput{TagIDs: ids})
			if err != nil {
				return err
			}

			printTags(cmd.OutOrStdout(), output)
			return nil
		},
	}
}

func printTags(out io.Writer, output *preference.ExcludedTagsOutput) {
	if len(output.Tags) == 0 {
		fmt.Fprintln(out, mutedStyle.Render("No tags found."))
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	defer w.Flush()

	writeHeader(w, "ID", "Name", "Excluded")
	for _, t := range output.Tags {
		excluded := ""
		if t.IsExcluded {
			excluded = "yes"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", t.Tag.ID, t.Tag.Name, excluded)
	}
}
