package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameCreateCmd())
	cmd.AddCommand(newGameGetCmd())
	cmd.AddCommand(newGameAddPlayerCmd())
	cmd.AddCommand(newGameUpdatePlayerCmd())
	cmd.AddCommand(newGameRemovePlayerCmd())
	cmd.AddCommand(newGameStartCmd())
	cmd.AddCommand(newGameRollCmd())
	cmd.AddCommand(newGameAnswerCmd())
	cmd.AddCommand(newGameEventCmd())
	cmd.AddCommand(newGamePowerCmd())
	cmd.AddCommand(newGameDeclineCmd())
	cmd.AddCommand(newGameTimeoutCmd())
	cmd.AddCommand(newGameResetCmd())
	cmd.AddCommand(newGameDeleteCmd())

	return cmd
}

// printGameResult fetches nothing extra; every mutating endpoint already
// responds with the fresh snapshot
func printGameResult(result Game) {
	out := NewOutput(cfg.Output)
	out.Print(result)
}

func newGameCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create a new game",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Game

			if err := client.Post("/api/v1/games", nil, &result); err != nil {
				return err
			}

			printGameResult(result)
			return nil
		},
	}
}

func newGameGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get the current game snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Game

			if err := client.Get("/api/v1/games/"+args[0], &result); err != nil {
				return err
			}

			printGameResult(result)
			return nil
		},
	}
}

func newGameAddPlayerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-player <id>",
		Short: "Add a player during setup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Game

			if err := client.Post("/api/v1/games/"+args[0]+"/players", nil, &result); err != nil {
				return err
			}

			printGameResult(result)
			return nil
		},
	}
}

func newGameUpdatePlayerCmd() *cobra.Command {
	var archetype, name string

	cmd := &cobra.Command{
		Use:   "update-player <id> <player>",
		Short: "Change a player's archetype or name during setup",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{}
			if archetype != "" {
				req["archetype"] = archetype
			}
			if cmd.Flags().Changed("name") {
				req["custom_name"] = name
			}
			if len(req) == 0 {
				return fmt.Errorf("nothing to update: pass --archetype or --name")
			}

			var result Game
			path := fmt.Sprintf("/api/v1/games/%s/players/%s", args[0], args[1])
			if err := client.Patch(path, req, &result); err != nil {
				return err
			}

			printGameResult(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&archetype, "archetype", "", "Archetype name (e.g. Hoplita)")
	cmd.Flags().StringVar(&name, "name", "", "Custom display name")

	return cmd
}

func newGameRemovePlayerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove-player <id> <player>",
		Short: "Remove a player during setup",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/games/%s/players/%s", args[0], args[1])
			var result Game
			if err := client.Do("DELETE", path, nil, &result); err != nil {
				return err
			}

			printGameResult(result)
			return nil
		},
	}
}

func newGameStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start <id>",
		Short: "Start the journey",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Game

			if err := client.Post("/api/v1/games/"+args[0]+"/start", nil, &result); err != nil {
				return err
			}

			printGameResult(result)
			return nil
		},
	}
}

func newGameRollCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roll <id>",
		Short: "Roll the die for the current player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Game

			if err := client.Post("/api/v1/games/"+args[0]+"/roll", nil, &result); err != nil {
				return err
			}

			printGameResult(result)
			return nil
		},
	}
}

func newGameAnswerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "answer <id> <interaction> <option>",
		Short: "Answer the open question",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			option, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid option: %w", err)
			}

			req := map[string]any{
				"interaction_id": args[1],
				"option":         option,
			}
			var result Game
			if err := client.Post("/api/v1/games/"+args[0]+"/answer", req, &result); err != nil {
				return err
			}

			printGameResult(result)
			return nil
		},
	}
}

func newGameEventCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "event <id> <interaction>",
		Short: "Acknowledge the open special event",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"interaction_id": args[1]}
			var result Game

			if err := client.Post("/api/v1/games/"+args[0]+"/event/resolve", req, &result); err != nil {
				return err
			}

			printGameResult(result)
			return nil
		},
	}
}

func newGamePowerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "power <id> <player> <power>",
		Short: "Activate one of a player's powers",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			playerID, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid player: %w", err)
			}

			req := map[string]any{
				"player_id": playerID,
				"power":     args[2],
			}
			var result Game
			if err := client.Post("/api/v1/games/"+args[0]+"/powers/activate", req, &result); err != nil {
				return err
			}

			printGameResult(result)
			return nil
		},
	}
}

func newGameDeclineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decline <id> <interaction>",
		Short: "Decline the open power prompt",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"interaction_id": args[1]}
			var result Game

			if err := client.Post("/api/v1/games/"+args[0]+"/powers/decline", req, &result); err != nil {
				return err
			}

			printGameResult(result)
			return nil
		},
	}
}

func newGameTimeoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "timeout <id>",
		Short: "End the game by time, awarding the artifact leader",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Game

			if err := client.Post("/api/v1/games/"+args[0]+"/timeout", nil, &result); err != nil {
				return err
			}

			printGameResult(result)
			return nil
		},
	}
}

func newGameResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset <id>",
		Short: "Reset the game to setup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Game

			if err := client.Post("/api/v1/games/"+args[0]+"/reset", nil, &result); err != nil {
				return err
			}

			printGameResult(result)
			return nil
		},
	}
}

func newGameDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/games/" + args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Game deleted")
			return nil
		},
	}
}

func newBoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Show the board layout",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Board

			if err := client.Get("/api/v1/board", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
