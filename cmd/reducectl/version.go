package main

import (
	"encoding/json"

	"reduce/internal/core/version"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bi := version.Info("reducectl")
			if asJSON {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(bi)
			}
			cmd.Println(bi.String())
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}
