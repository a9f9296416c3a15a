package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/budgeteur/backend/internal/application/analytics"
	"github.com/budgeteur/backend/internal/application/usecase/dashboard"
	"github.com/budgeteur/backend/internal/domain/valueobject"
)

func dashboardCmd() *cobra.Command {
	var monthFlag string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show tag trends for a complete month",
		Long: `Compare every tag's spending in the target month with its average over the
previous eleven months. The target month defaults to the last complete month.`,
		Example: `  budgetctl dashboard
  budgetctl dashboard --month 2024-09`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var input dashboard.GetDashboardInput
			if monthFlag != "" {
				month, err := dashboard.ParseMonth(monthFlag)
				if err != nil {
					return fmt.Errorf("invalid month %q, expected YYYY-MM", monthFlag)
				}
				input.TargetMonth = &month
			}

			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			output, err := a.useCases.Dashboard.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			printDashboard(cmd.OutOrStdout(), output)
			return nil
		},
	}

	cmd.Flags().StringVar(&monthFlag, "month", "", "target month, YYYY-MM")

	return cmd
}

func printDashboard(out io.Writer, output *dashboard.GetDashboardOutput) {
	writeTitle(out, fmt.Sprintf("Dashboard for %s", dashboard.GenerateMonthLabel(output.TargetMonth)))
	fmt.Fprintln(out, mutedStyle.Render(output.Window.Label()))
	fmt.Fprintln(out)

	if !output.HasData {
		fmt.Fprintln(out, mutedStyle.Render("No transactions in the last twelve months."))
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	writeHeader(w, "Tag", "Spent", "Share", "Average", "Change", "Yearly", "Trend")
	for _, stat := range output.TagStatistics {
		style := trendStyle(stat.State)
		fmt.Fprintf(w, "%s\t%s\t%s%%\t%s\t%s\t%s\t%s\n",
			stat.TagName,
			formatMoney(stat.TargetAmount),
			stat.PercentOfTotal.Round(0).String(),
			formatMoney(stat.MonthlyAverage),
			valueobject.FormatPercentage(stat.PercentageChange),
			formatMoney(stat.AnnualDelta),
			style.Render(stat.State.Label()),
		)
	}
	_ = w.Flush()
	fmt.Fprintln(out)

	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	writeHeader(w, "Month", "Income", "Expenses", "Net")
	for _, m := range output.MonthlyBreakdown {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			dashboard.GenerateMonthLabel(m.Month),
			formatMoney(m.Income),
			formatMoney(m.Expenses),
			formatMoney(m.NetIncome),
		)
	}
	_ = w.Flush()
	fmt.Fprintln(out)

	s := output.Summary
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	writeHeader(w, "", "Total", "Per month", "Per week")
	for _, row := range []struct {
		name string
		set  analytics.StatisticSet
	}{
		{"Income", s.Income},
		{"Expenses", s.Expenses},
		{"Net", s.NetIncome},
	} {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", row.name,
			formatMoney(row.set.Total),
			formatMoney(row.set.MonthlyAverage),
			formatMoney(row.set.WeeklyAverage),
		)
	}
	_ = w.Flush()
}
