package main

import (
	"github.com/phanxgames/turtle"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the program as a script listing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, root, err := a.build()
			if err != nil {
				return err
			}
			return turtle.WriteListing(cmd.OutOrStdout(), root)
		},
	}
}
