package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "heyfarmerctl",
		Short:         "Operational commands for the HeyFarmer marketplace",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newMigrateCmd(), newSessionsCmd(), newCountiesCmd())

	return root
}
