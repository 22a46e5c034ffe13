package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/Sensei3747/Market-Intelligence/infrastructure/exporter"
	"github.com/Sensei3747/Market-Intelligence/internal/usecases/reporting"
)

func newTable(out io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}

func newSummaryCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Totals and KPI cards for the selected period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			summary, err := a.reports.Summary(a.query)
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "%s\nPeriod: %s (%d days)\n", a.cfg.App.DashboardTitle, summary.Summary.DateRange, summary.Summary.Days)

			table := newTable(a.out, "KPI", "Value")
			for _, card := range summary.Cards {
				table.Append([]string{card.Label, card.Value})
			}
			table.Render()
			return nil
		},
	}
}

func newPlatformsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "platforms",
		Short: "Spend, revenue and efficiency per platform",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			performances, err := a.reports.Platforms(a.query)
			if err != nil {
				return err
			}

			table := newTable(a.out, "Platform", "Spend", "Revenue", "Clicks", "Impressions", "ROAS", "CTR", "CPC")
			for _, p := range performances {
				table.Append([]string{
					p.Platform.String(),
					reporting.FormatCurrency(p.Spend),
					reporting.FormatCurrency(p.Revenue),
					fmt.Sprintf("%.0f", p.Clicks),
					fmt.Sprintf("%.0f", p.Impressions),
					fmt.Sprintf("%.2fx", p.ROAS),
					fmt.Sprintf("%.2f%%", p.CTR),
					fmt.Sprintf("$%.2f", p.CPC),
				})
			}
			table.Render()
			return nil
		},
	}
}

func newInsightsCommand(a *app) *cobra.Command {
	var ai bool

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Rule based insights and recommendations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if ai {
				insights, err := a.insights.AI(a.query)
				if err != nil {
					return err
				}
				fmt.Fprintln(a.out, insights.ExecutiveSummary)
				printList(a.out, "Recommendations", insights.Recommendations)
				return nil
			}

			insights, err := a.insights.Strategic(a.query)
			if err != nil {
				return err
			}
			printList(a.out, "Insights", insights.Insights)
			printList(a.out, "Recommendations", insights.Recommendations)
			return nil
		},
	}

	cmd.Flags().BoolVar(&ai, "ai", false, "print the AI insights executive summary instead")
	return cmd
}

func printList(out io.Writer, title string, items []string) {
	fmt.Fprintf(out, "\n%s\n", title)
	for _, item := range items {
		fmt.Fprintf(out, "  - %s\n", item)
	}
}

func newExportCommand(a *app) *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the filtered daily table as CSV or XLSX",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsed, err := exporter.ParseFormat(format)
			if err != nil {
				return err
			}

			slice, err := a.reports.Slice(a.query)
			if err != nil {
				return err
			}

			platforms := slice.Filters.Platforms
			report := exporter.Report{
				Platforms:    platforms,
				Rows:         slice.Rows,
				Summary:      reporting.Summarize(slice.Rows, platforms),
				Performances: reporting.PlatformPerformances(slice.Rows, platforms),
			}

			if output == "-" {
				return exporter.Write(a.out, parsed, report)
			}
			if output == "" {
				output = parsed.FileName()
			}

			file, err := os.Create(output)
			if err != nil {
				return err
			}
			defer file.Close()

			if err := exporter.Write(file, parsed, report); err != nil {
				return err
			}

			fmt.Fprintf(a.out, "exported %d rows to %s\n", len(slice.Rows), output)
			return file.Close()
		},
	}

	cmd.Flags().StringVar(&format, "format", "csv", "csv or xlsx")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, - for stdout (default marketing_report.<format>)")
	return cmd
}

func newAskCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask the marketing analyst a question about the selected period",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reply, err := a.insights.Ask(cmd.Context(), a.query, strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, reply)
			return nil
		},
	}
}
