package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"portfolio-admin/internal/screens"
)

func newURLsCommand(a *app) *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:     "urls",
		Aliases: []string{"url"},
		Short:   "Manage short links",
	}
	cmd.PersistentFlags().IntVar(&page, "page", 1, "page of links to work on")

	// withScreen opens the requested page and hands over the screen
	withScreen := func(cmd *cobra.Command, fn func(ctx context.Context, s *screens.URLsScreen) error) error {
		return a.authed(cmd, func(ctx context.Context) error {
			s := screens.NewURLsScreen(a.dash, a.confirmer(), a.cfg.ShortLinkBaseURL)
			if page > 1 {
				if err := s.GotoPage(ctx, page); err != nil {
					return err
				}
			}
			return fn(ctx, s)
		})
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List one page of short links",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withScreen(cmd, func(_ context.Context, s *screens.URLsScreen) error {
				return printURLPage(a.out, s.Page(), s.ShortLink)
			})
		},
	}

	create := &cobra.Command{
		Use:   "create <url>",
		Short: "Shorten a URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withScreen(cmd, func(ctx context.Context, s *screens.URLsScreen) error {
				s.OpenCreate()
				defer s.Close()
				s.SetForm(screens.URLForm{FullURL: args[0]})
				if err := s.Submit(ctx); err != nil {
					return err
				}
				fmt.Fprintln(a.out, "Short link created.")
				return printURLPage(a.out, s.Page(), s.ShortLink)
			})
		},
	}

	var target, code string
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the target or short code of a link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withScreen(cmd, func(ctx context.Context, s *screens.URLsScreen) error {
				if err := s.OpenEdit(args[0]); err != nil {
					return fmt.Errorf("link %s: %w", args[0], err)
				}
				defer s.Close()

				form := s.Form()
				if cmd.Flags().Changed("target") {
					form.FullURL = target
				}
				if cmd.Flags().Changed("code") {
					form.ShortCode = code
				}
				s.SetForm(form)
				if err := s.Submit(ctx); err != nil {
					return err
				}
				fmt.Fprintln(a.out, "Short link updated.")
				return nil
			})
		},
	}
	update.Flags().StringVar(&target, "target", "", "new target URL")
	update.Flags().StringVar(&code, "code", "", "new short code")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a short link; it stays listed as deleted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withScreen(cmd, func(ctx context.Context, s *screens.URLsScreen) error {
				if err := s.Delete(ctx, args[0]); err != nil {
					return err
				}
				fmt.Fprintln(a.out, "Short link deleted.")
				return nil
			})
		},
	}

	var out string
	var size int
	qr := &cobra.Command{
		Use:   "qr <id>",
		Short: "Write a QR code PNG for a short link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withScreen(cmd, func(_ context.Context, s *screens.URLsScreen) error {
				png, err := s.QRCode(args[0], size)
				if err != nil {
					return fmt.Errorf("link %s: %w", args[0], err)
				}
				if out == "" {
					out = args[0] + ".png"
				}
				if err := os.WriteFile(out, png, 0o644); err != nil {
					return fmt.Errorf("failed to write QR code: %w", err)
				}
				fmt.Fprintf(a.out, "QR code written to %s\n", out)
				return nil
			})
		},
	}
	qr.Flags().StringVarP(&out, "out", "o", "", "output file (default <id>.png)")
	qr.Flags().IntVar(&size, "size", 256, "image size in pixels")

	cmd.AddCommand(list, create, update, del, qr)
	return cmd
}
