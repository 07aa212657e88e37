package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/arenarounds/internal/services/auth"
)

func newHashTokenCmd() *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "hash-token [token]",
		Short: "Hash an admin token for the server config",
		Long: `Hash an admin token with bcrypt. Set the hash as admin.tokenHash
(env: ARENA_ADMIN_TOKENHASH) on the server.

Without an argument a new random token is generated and printed alongside its
hash. Use --save to write the token to the token file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result TokenResult

			if len(args) == 1 {
				result.Token = args[0]
			} else {
				token, err := auth.GenerateToken()
				if err != nil {
					return err
				}
				result.Token = token
			}

			hash, err := auth.HashToken(result.Token)
			if err != nil {
				return err
			}
			result.Hash = hash

			if save {
				if err := cfg.SaveToken(result.Token); err != nil {
					return err
				}
			}
			if len(args) == 1 {
				// Don't echo a token the caller already has
				result.Token = ""
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "Write the token to the token file")

	return cmd
}
