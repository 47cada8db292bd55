package cli

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"portfolio-admin/internal/devapi"
)

func newDevServerCommand(a *app) *cobra.Command {
	var addr string
	var legacy bool

	cmd := &cobra.Command{
		Use:   "dev-server",
		Short: "Run an in-memory backend for local development",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.loadConfig(); err != nil {
				return err
			}
			defer a.close()

			if a.cfg.LogLevel != "debug" {
				gin.SetMode(gin.ReleaseMode)
			}

			cfg := a.cfg.DevServer
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("legacy-url-list") {
				cfg.LegacyURLList = legacy
			}

			srv, err := devapi.NewServer(devapi.OptionsFromConfig(cfg, a.logger))
			if err != nil {
				return err
			}
			defer srv.Close()

			return srv.ListenAndServe(cmd.Context(), cfg.Addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from DEV_ADDR)")
	cmd.Flags().BoolVar(&legacy, "legacy-url-list", false, "answer GET /api/url with a bare array")
	return cmd
}
