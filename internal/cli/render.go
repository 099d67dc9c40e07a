package cli

import (
	"github.com/spf13/cobra"

	"github.com/vector76/mdview/internal/httperr"
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [url]",
		Short: "Render one document to stdout",
		Long:  "Fetch and render one document the way the server does and write the HTML page to stdout.",
		Args:  cobra.MaximumNArgs(1),
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

			target := settings.DefaultURL
			if len(args) == 1 && args[0] != "" {
				target = args[0]
			}

			page, err := srv.Document(cmd.Context(), target)
			if err != nil {
				code, _ := httperr.Status(err)
				logger.Error().Err(err).Str("target", target).Int("status", code).Msg("render failed")
				return err
			}
			_, err = cmd.OutOrStdout().Write(page)
			return err
		},
	}

	addRenderFlags(cmd)

	return cmd
}
