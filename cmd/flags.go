package cmd

import (
	"github.com/spf13/cobra"
)

// engineFlag adds the --engine flag that overrides
// load.relational_engine.
func engineFlag(cmd *cobra.Command, engine *string) {
	cmd.Flags().StringVarP(
		engine, "engine", "e", "",
		"relational engine: postgres or sqlite",
	)
}
