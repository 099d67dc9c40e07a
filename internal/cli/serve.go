package cli

import (
	"net/http"

	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the mdview HTTP server",
		Long: "Start the mdview HTTP server. Every request path is read as the URL of a\n" +
			"document to render, e.g. GET /https://example.com/README.md.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			logger, err := newLogger(settings, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			srv, err := newServer(settings, logger)
			if err != nil {
				return err
			}

			addr := srv.ListenAddr()
			logger.Info().
				Str("addr", addr).
				Str("renderer", settings.Renderer).
				Str("user_agent", userAgent()).
				Msg("listening")
			return http.ListenAndServe(addr, srv.Router)
		},
	}

	cmd.Flags().Int("port", 9999, "port to listen on")
	addRenderFlags(cmd)

	return cmd
}
