package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/budgeteur/backend/internal/application/analytics"
	"github.com/budgeteur/backend/internal/application/usecase/transaction"
	"github.com/budgeteur/backend/internal/domain/valueobject"
)

func viewCmd() *cobra.Command {
	var (
		rangeFlag    string
		intervalFlag string
		anchorFlag   string
		withSummary  bool
	)

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Show transactions grouped by interval",
		Long: `Show the transactions of one calendar range grouped into intervals.

A range too small for the interval is widened to the smallest range that fits.`,
		Example: `  budgetctl view --range quarter --interval month --anchor 2024-08-15
  budgetctl view --interval fortnight --summary`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input, err := parseViewInput(rangeFlag, intervalFlag, anchorFlag)
			if err != nil {
				return err
			}
			input.WithSummary = withSummary

			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			output, err := a.useCases.TransactionsView.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			printView(cmd.OutOrStdout(), output)
			return nil
		},
	}

	cmd.Flags().StringVar(&rangeFlag, "range", "", "range preset (week, fortnight, month, quarter, half-year, year)")
	cmd.Flags().StringVar(&intervalFlag, "interval", "", "interval preset (week, fortnight, month, quarter, half-year, year)")
	cmd.Flags().StringVar(&anchorFlag, "anchor", "", "any date inside the range, YYYY-MM-DD (default today)")
	cmd.Flags().BoolVar(&withSummary, "summary", false, "print a tag summary for every interval")

	return cmd
}

func parseViewInput(rangeFlag, intervalFlag, anchorFlag string) (transaction.GetTransactionsViewInput, error) {
	if rangeFlag == "" {
		rangeFlag = cfg.Transactions.DefaultRange
	}
	if intervalFlag == "" {
		intervalFlag = cfg.Transactions.DefaultInterval
	}

	rangePreset, err := valueobject.ParseRangePreset(rangeFlag)
	if err != nil {
		return transaction.GetTransactionsViewInput{}, err
	}
	intervalPreset, err := valueobject.ParseIntervalPreset(intervalFlag)
	if err != nil {
		return transaction.GetTransactionsViewInput{}, err
	}

	input := transaction.GetTransactionsViewInput{Range: rangePreset, Interval: intervalPreset}
	if anchorFlag != "" {
		anchor, err := valueobject.ParseDate(anchorFlag)
		if err != nil {
			return transaction.GetTransactionsViewInput{}, fmt.Errorf("invalid anchor %q, expected YYYY-MM-DD", anchorFlag)
		}
		input.Anchor = &anchor
	}
	return input, nil
}

func printView(out io.Writer, output *transaction.GetTransactionsViewOutput) {
	state := output.Navigation
	writeTitle(out, fmt.Sprintf("%s %s by %s", state.Range.Label(), state.DateRange.Label(), state.Interval.Label()))
	if state.Corrected {
		fmt.Fprintln(out, mutedStyle.Render(fmt.Sprintf("Range widened to %s to fit %s intervals.", state.Range.Label(), state.Interval.Label())))
	}
	printNavigation(out, output.RangeNavigation)
	fmt.Fprintln(out)

	if output.EmptyState == transaction.EmptyStateNoTransactions {
		fmt.Fprintln(out, mutedStyle.Render(output.EmptyState.Message()))
		return
	}

	excluded := valueobject.NewExclusionSet(output.ExcludedTagIDs...)
	for _, view := range output.Intervals {
		interval := view.Interval
		fmt.Fprintf(out, "%s  income %s  expenses %s  net %s\n",
			headerStyle.Render(interval.Bounds.Label()),
			formatMoney(interval.Income),
			formatMoney(interval.Expenses),
			formatMoney(interval.Net()),
		)

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		for _, day := range interval.Days {
			for _, tx := range day.Transactions {
				tag := tx.TagLabel()
				if excluded.Excludes(tx.TagID) {
					tag = mutedStyle.Render(tag + " (excluded)")
				}
				fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", tx.Date.Format(valueobject.DateLayout), tx.Description, tag, formatMoney(tx.Amount))
			}
		}
		_ = w.Flush()

		if view.Summary != nil {
			if view.SummaryEmpty != transaction.EmptyStateNone {
				fmt.Fprintln(out, mutedStyle.Render("  "+view.SummaryEmpty.Message()))
			} else {
				printSummary(out, *view.Summary, "  ")
			}
		}
		fmt.Fprintln(out)
	}

	writeTitle(out, "Summary")
	if output.EmptyState == transaction.EmptyStateNoRowsAfterExclusion {
		fmt.Fprintln(out, mutedStyle.Render(output.EmptyState.Message()))
		return
	}
	printSummary(out, output.Summary, "")
}

func printNavigation(out io.Writer, nav transaction.RangeNavigation) {
	links := []struct {
		name string
		link *transaction.RangeLink
	}{
		{"Previous", nav.Previous},
		{"Next", nav.Next},
		{"Latest", nav.Latest},
	}
	for _, l := range links {
		if l.link == nil {
			continue
		}
		fmt.Fprintf(out, "%s %s (--anchor %s)\n",
			mutedStyle.Render(l.name+":"),
			l.link.Label(),
			l.link.Anchor.Format(valueobject.DateLayout),
		)
	}
}

func printSummary(out io.Writer, summary analytics.CategorySummary, indent string) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	defer w.Flush()

	pools := []struct {
		name   string
		totals []analytics.CategoryTotal
		total  string
	}{
		{"Income", summary.Income, formatMoney(summary.IncomeTotal)},
		{"Expenses", summary.Expenses, formatMoney(summary.ExpenseTotal)},
	}
	for _, pool := range pools {
		if len(pool.totals) == 0 {
			continue
		}
		fmt.Fprintf(w, "%s%s\t\t%s\n", indent, headerStyle.Render(pool.name), pool.total)
		for _, t := range pool.totals {
			fmt.Fprintf(w, "%s  %s\t%d%%\t%s\n", indent, t.Label, t.Percent, formatMoney(t.Amount))
		}
	}
}
