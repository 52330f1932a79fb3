package main

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"reduce/internal/services/upkeep/domain"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newUpkeepCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upkeep",
		Short: "Manage recurring upkeep items",
	}

	var (
		every int
		due   string
	)
	add := &cobra.Command{
		Use:   "add <description>",
		Short: "Add an upkeep item",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := domain.NewItem{Description: strings.Join(args, " "), CooldownDays: every}
			if due != "" {
				d, err := time.Parse(time.DateOnly, due)
				if err != nil {
					return fmt.Errorf("--due must be YYYY-MM-DD: %w", err)
				}
				in.Due = d
			}
			svc, err := a.upkeep(cmd.Context())
			if err != nil {
				return err
			}
			it, err := svc.Add(cmd.Context(), in, a.now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %s due %s\n", it.ID, it.Due.Format(time.DateOnly))
			return nil
		},
	}
	add.Flags().IntVar(&every, "every", 7, "cooldown in days")
	add.Flags().StringVar(&due, "due", "", "first due date, defaults to today")

	list := &cobra.Command{
		Use:   "list",
		Short: "Show due items and the backlog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := a.upkeep(cmd.Context())
			if err != nil {
				return err
			}
			l, err := svc.List(cmd.Context(), a.now())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, v := range append(l.Due, l.Backlog...) {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", v.ID, v.Description, v.Label, v.Rate)
			}
			return w.Flush()
		},
	}

	complete := &cobra.Command{
		Use:   "done <id>",
		Short: "Mark an item done today",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid id %q: %w", args[0], err)
			}
			svc, err := a.upkeep(cmd.Context())
			if err != nil {
				return err
			}
			it, err := svc.Complete(cmd.Context(), id, a.now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "next due %s\n", it.Due.Format(time.DateOnly))
			return nil
		},
	}

	cmd.AddCommand(add, list, complete)
	return cmd
}
