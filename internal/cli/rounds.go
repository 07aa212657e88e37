package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newRoundsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rounds",
		Aliases: []string{"round-types"},
		Short:   "Round type catalog commands",
	}

	cmd.AddCommand(newRoundsListCmd())
	cmd.AddCommand(newRoundsGetCmd())
	cmd.AddCommand(newRoundsAddCmd())
	cmd.AddCommand(newRoundsRemoveCmd())
	cmd.AddCommand(newRoundsResetCmd())
	cmd.AddCommand(newRoundsClearCmd())
	cmd.AddCommand(newRoundsReloadCmd())

	return cmd
}

func newRoundsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the round type catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result RoundTypeList

			if err := client.Get(cmd.Context(), "/api/v1/round-types", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newRoundsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a round type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var result RoundType

			if err := client.Get(cmd.Context(), fmt.Sprintf("/api/v1/round-types/%d", id), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newRoundsAddCmd() *cobra.Command {
	var (
		name               string
		teamSize           int
		primary            string
		secondary          string
		preferredPrimary   bool
		preference         string
		preferredSecondary bool
		armor              bool
		helmet             bool
		enabled            bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a round type",
		Long: `Register a round type on the server and persist its definition.

Unset flags take the server defaults: team size 1, armor, helmet and enabled.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"name": name,
			}
			flags := cmd.Flags()
			if flags.Changed("team-size") {
				req["team_size"] = teamSize
			}
			if primary != "" {
				req["primary_weapon"] = primary
			}
			if secondary != "" {
				req["secondary_weapon"] = secondary
			}
			if preferredPrimary {
				req["use_preferred_primary"] = true
			}
			if preference != "" {
				req["primary_preference"] = preference
			}
			if preferredSecondary {
				req["use_preferred_secondary"] = true
			}
			if flags.Changed("armor") {
				req["armor"] = armor
			}
			if flags.Changed("helmet") {
				req["helmet"] = helmet
			}
			if flags.Changed("enabled") {
				req["enabled_by_default"] = enabled
			}

			var result RoundType

			if err := client.Post(cmd.Context(), "/api/v1/round-types", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Localization key for the round name")
	cmd.Flags().IntVar(&teamSize, "team-size", 1, "Players per team")
	cmd.Flags().StringVar(&primary, "primary", "", "Fixed primary weapon tag")
	cmd.Flags().StringVar(&secondary, "secondary", "", "Fixed secondary weapon tag")
	cmd.Flags().BoolVar(&preferredPrimary, "preferred-primary", false, "Use the player's preferred primary")
	cmd.Flags().StringVar(&preference, "preference", "", "Primary weapon category: pistol, rifle, sniper, smg, shotgun, lmg, knife, unknown")
	cmd.Flags().BoolVar(&preferredSecondary, "preferred-secondary", false, "Use the player's preferred secondary")
	cmd.Flags().BoolVar(&armor, "armor", true, "Grant kevlar")
	cmd.Flags().BoolVar(&helmet, "helmet", true, "Grant a helmet")
	cmd.Flags().BoolVar(&enabled, "enabled", true, "Enabled by default")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newRoundsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a round type by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := client.Delete(cmd.Context(), fmt.Sprintf("/api/v1/round-types/%d", id)); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.PrintMessage(fmt.Sprintf("Removed round type %d", id))
			return nil
		},
	}
}

func newRoundsResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Replace the catalog with the built-in presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result RoundTypeList

			if err := client.Post(cmd.Context(), "/api/v1/round-types/reset", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newRoundsClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every round type",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Post(cmd.Context(), "/api/v1/round-types/clear", nil, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.PrintMessage("Cleared round types")
			return nil
		},
	}
}

func newRoundsReloadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reload",
		Short: "Rebuild the catalog from the presets and stored definitions",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result RoundTypeList

			if err := client.Post(cmd.Context(), "/api/v1/round-types/reload", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid round type id %q", s)
	}
	return id, nil
}
