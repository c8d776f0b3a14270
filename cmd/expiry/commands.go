package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/jwaldner/expiry/internal/config"
	"github.com/jwaldner/expiry/internal/models"
	"github.com/jwaldner/expiry/internal/services"
)

type app struct {
	out       io.Writer
	requests  *services.RequestService
	snapshots *services.SnapshotService
}

func newRootCmd(cfg *config.Config, out io.Writer) *cobra.Command {
	return newRootCmdWithClock(cfg, out, time.Now)
}

func newRootCmdWithClock(cfg *config.Config, out io.Writer, now func() time.Time) *cobra.Command {
	a := &app{
		out:       out,
		requests:  services.NewRequestService(cfg.Location(), cfg.Calendar.Locale).WithClock(now),
		snapshots: services.NewSnapshotService(),
	}

	root := &cobra.Command{
		Use:          "expiry",
		Short:        "Monthly option expiry dates, contract letters and business days left",
		SilenceUsage: true,
	}
	root.SetOut(out)
	root.SetErr(out)

	root.AddCommand(a.snapshotCmd(), a.tableCmd(), a.decodeCmd())
	return root
}

func (a *app) snapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Show this month's and next month's expiry as seen from a date (default today)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dateStr, _ := cmd.Flags().GetString("date")
			localeTag, _ := cmd.Flags().GetString("locale")
			asJSON, _ := cmd.Flags().GetBool("json")

			ref := a.requests.Today()
			if dateStr != "" {
				d, err := services.ParseDate(dateStr)
				if err != nil {
					return err
				}
				ref = d
			}

			l := a.requests.ResolveLocale(localeTag, "")
			snapshot, err := a.snapshots.Snapshot(ref, l)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(a.out, snapshot)
			}
			renderSnapshot(a.out, snapshot)
			return nil
		},
	}

	cmd.Flags().String("date", "", "reference date (YYYY-MM-DD), default today")
	cmd.Flags().String("locale", "", "display locale (pt-BR, en-US)")
	cmd.Flags().Bool("json", false, "print JSON instead of a table")
	return cmd
}

func (a *app) tableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "List the call and put letters of all twelve months",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			localeTag, _ := cmd.Flags().GetString("locale")
			asCSV, _ := cmd.Flags().GetBool("csv")

			rows := a.snapshots.Table(a.requests.ResolveLocale(localeTag, ""))
			if asCSV {
				return gocsv.Marshal(&rows, a.out)
			}

			renderTable(a.out, rows)
			return nil
		},
	}

	cmd.Flags().String("locale", "", "display locale (pt-BR, en-US)")
	cmd.Flags().Bool("csv", false, "print CSV")
	return cmd
}

func (a *app) decodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode LETTER",
		Short: "Show which month and side a contract letter stands for",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			localeTag, _ := cmd.Flags().GetString("locale")

			info, err := a.snapshots.Letter(args[0], a.requests.ResolveLocale(localeTag, ""))
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "%s: %s %s\n", info.Letter, info.MonthName, strings.ToUpper(info.OptionType))
			return nil
		},
	}

	cmd.Flags().String("locale", "", "display locale (pt-BR, en-US)")
	return cmd
}

func renderSnapshot(out io.Writer, s *models.FormattedSnapshot) {
	table := tablewriter.NewWriter(out)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"", "Date", "Remaining"})

	table.Append([]string{"Reference", s.ReferenceDate.Display, s.Month.Display + " (" + s.CallLetter + "/" + s.PutLetter + ")"})
	table.Append([]string{"Current expiry", s.Current.Date.Display, s.Current.BusinessDays.Display})
	table.Append([]string{"Next expiry", s.Next.Date.Display, s.Next.BusinessDays.Display})

	table.Render()
}

func renderTable(out io.Writer, rows []models.ContractRow) {
	table := tablewriter.NewWriter(out)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"#", "Month", "Call", "Put"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)

	for _, row := range rows {
		table.Append([]string{strconv.Itoa(row.Month), row.MonthName, row.Call, row.Put})
	}

	table.Render()
}

func writeJSON(out io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
