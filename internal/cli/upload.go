package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"portfolio-admin/internal/upload"
)

func newUploadCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload an image and print its URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, false, func(ctx context.Context) error {
				file, err := upload.Open(args[0])
				if err != nil {
					return err
				}
				imageURL, err := a.dash.UploadImage(ctx, file)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(a.out, imageURL)
				return err
			})
		},
	}
}
