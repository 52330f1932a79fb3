package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newProjectCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage time-report projects",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <name>",
		Short: "Create a project",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.timeReports(cmd.Context())
			if err != nil {
				return err
			}
			p, err := svc.CreateProject(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created project %d %q\n", p.ID, p.Name)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List project names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := a.timeReports(cmd.Context())
			if err != nil {
				return err
			}
			names, err := svc.ProjectNames(cmd.Context())
			if err != nil {
				return err
			}
			for _, n := range names {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	})
	return cmd
}
