package cli

import (
	"github.com/spf13/cobra"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Session commands",
	}

	cmd.AddCommand(newSessionGuestCmd())
	cmd.AddCommand(newSessionMeCmd())
	cmd.AddCommand(newSessionLanguageCmd())

	return cmd
}

func newSessionGuestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guest",
		Short: "Create a guest session and save the token",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Session

			if err := client.Post("/api/v1/sessions/guest", nil, &result); err != nil {
				return err
			}

			if err := cfg.SaveToken(result.Token); err != nil {
				return err
			}
			client.SetToken(result.Token)

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionMeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Session

			if err := client.Get("/api/v1/sessions/me", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionLanguageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "language <pt-br|en>",
		Short: "Set the session's interface language",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"language": args[0]}
			var result Session

			if err := client.Put("/api/v1/sessions/me/language", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
