package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"reduce/internal/services/timereport/form"

	"github.com/spf13/cobra"
)

func newReportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Submit, show and remove time reports",
	}

	var day string
	cmd.PersistentFlags().StringVar(&day, "date", "", "day as YYYY-MM-DD, defaults to today")
	dayOf := func() string {
		if day != "" {
			return day
		}
		return a.now().Format(time.DateOnly)
	}

	var rows []string
	submit := &cobra.Command{
		Use:   "submit",
		Short: "Submit rows as project,start[,end[,comment]]",
		Example: `  reducectl report submit --date 2024-01-01 \
    --row "Work,0915,1030,standup" --row "Home,1300"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			values, err := rowValues(dayOf(), rows)
			if err != nil {
				return err
			}
			sub, err := form.DecodeSubmission(values, form.Strict)
			if err != nil {
				return err
			}
			svc, err := a.timeReports(cmd.Context())
			if err != nil {
				return err
			}
			res, err := svc.Submit(cmd.Context(), sub)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "inserted %d entries for %s\n", res.Inserted, form.FormatDay(res.Day))
			if len(res.Dropped) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "skipped unknown projects: %s\n", strings.Join(res.Dropped, ", "))
			}
			return nil
		},
	}
	submit.Flags().StringArrayVar(&rows, "row", nil, "row as project,start[,end[,comment]], repeatable")
	_ = submit.MarkFlagRequired("row")

	remove := &cobra.Command{
		Use:   "remove <HH:MM:SS>...",
		Short: "Remove the entries of a day starting at the given times",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := map[string]string{form.KeyDate: dayOf()}
			for i, s := range args {
				values[strconv.Itoa(i)+form.Sep+form.FieldSelect] = s
			}
			del, err := form.DecodeDeletion(values)
			if err != nil {
				return err
			}
			svc, err := a.timeReports(cmd.Context())
			if err != nil {
				return err
			}
			res, err := svc.Delete(cmd.Context(), del)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d entries\n", res.Deleted)
			return nil
		},
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the entries and comments of a day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := form.ParseDay(dayOf())
			if err != nil {
				return err
			}
			svc, err := a.timeReports(cmd.Context())
			if err != nil {
				return err
			}
			p, err := svc.Picker(cmd.Context(), d)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, proj := range p.Projects {
				fmt.Fprintln(out, proj.Name)
				for _, e := range proj.Entries {
					if e.End != nil {
						fmt.Fprintf(out, "  %s - %s\n", e.Start, e.End)
					} else {
						fmt.Fprintf(out, "  %s\n", e.Start)
					}
				}
				for _, line := range strings.Split(proj.Comment, "\n") {
					if line != "" {
						fmt.Fprintf(out, "  # %s\n", line)
					}
				}
			}
			return nil
		},
	}

	cmd.AddCommand(submit, remove, show)
	return cmd
}

// rowValues turns --row flags into the indexed form keys the decoder reads
func rowValues(day string, rows []string) (map[string]string, error) {
	values := map[string]string{form.KeyDate: day}
	fields := []string{form.FieldProject, form.FieldStart, form.FieldEnd, form.FieldComment}
	for i, raw := range rows {
		parts := strings.SplitN(raw, ",", len(fields))
		if len(parts) < 2 {
			return nil, fmt.Errorf("row %d: want project,start[,end[,comment]], got %q", i+1, raw)
		}
		for j, v := range parts {
			values[strconv.Itoa(i)+form.Sep+fields[j]] = strings.TrimSpace(v)
		}
	}
	return values, nil
}
