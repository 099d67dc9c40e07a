package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vector76/mdview/internal/config"
	"github.com/vector76/mdview/internal/fetch"
	"github.com/vector76/mdview/internal/render"
	"github.com/vector76/mdview/internal/server"
)

// addRenderFlags registers the flags shared by serve and render. Flag
// names are config keys with dashes.
func addRenderFlags(cmd *cobra.Command) {
	cmd.Flags().String("default-url", config.DefaultDocumentURL, "document rendered when none is named")
	cmd.Flags().String("renderer", config.RendererGitHub, "markdown renderer: github or local")
	cmd.Flags().String("github-endpoint", render.DefaultEndpoint, "GitHub Markdown API endpoint")
	cmd.Flags().String("log-level", "info", "log level: trace, debug, info, warn, error")
	cmd.Flags().String("log-format", "console", "log format: console or json")
}

// loadSettings resolves settings for cmd: flags > env > env file > defaults.
func loadSettings(cmd *cobra.Command) (config.Settings, error) {
	v := viper.New()
	for _, o := range config.Options() {
		if f := cmd.Flags().Lookup(strings.ReplaceAll(o.Key, "_", "-")); f != nil {
			if err := v.BindPFlag(o.Key, f); err != nil {
				return config.Settings{}, err
			}
		}
	}

	envFile, _ := cmd.Flags().GetString("env-file")
	if err := config.Load(v, envFile); err != nil {
		return config.Settings{}, err
	}
	return config.Resolve(v)
}

func newLogger(s config.Settings, w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(s.LogLevel))
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("invalid log level %q: %w", s.LogLevel, err)
	}
	if s.LogFormat == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

// newServer wires the fetcher and the configured renderer into a Server.
func newServer(s config.Settings, logger zerolog.Logger) (*server.Server, error) {
	ua := userAgent()

	var renderer server.MarkdownRenderer
	switch s.Renderer {
	case config.RendererLocal:
		renderer = render.NewLocal()
	default:
		renderer = render.NewGitHub(s.GitHubEndpoint, ua)
	}

	return server.New(server.Config{
		Port:       s.Port,
		DefaultURL: s.DefaultURL,
		Logger:     logger,
	}, fetch.New(ua), renderer)
}
