package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"portfolio-admin/internal/screens"
)

func newMessagesCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "messages",
		Aliases: []string{"message"},
		Short:   "Read contact form messages",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List messages, unread ones marked with *",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.authed(cmd, func(context.Context) error {
				s := screens.NewMessagesScreen(a.dash)
				if err := printMessages(a.out, s.Messages()); err != nil {
					return err
				}
				_, err := fmt.Fprintf(a.out, "%d unread\n", s.UnreadCount())
				return err
			})
		},
	}

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Print one message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.authed(cmd, func(context.Context) error {
				s := screens.NewMessagesScreen(a.dash)
				m, err := s.Open(args[0])
				if err != nil {
					return fmt.Errorf("message %s: %w", args[0], err)
				}
				defer s.Close()
				return printMessage(a.out, m)
			})
		},
	}

	cmd.AddCommand(list, show)
	return cmd
}
