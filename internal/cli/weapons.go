package cli

import (
	"github.com/spf13/cobra"
)

func newWeaponsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "weapons",
		Short: "List weapon tags known to the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result WeaponList

			if err := client.Get(cmd.Context(), "/api/v1/weapons", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}
