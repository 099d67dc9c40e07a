// Package config resolves mdview settings from defaults, a dotenv file,
// the environment and command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable and dotenv key.
const EnvPrefix = "MDVIEW"

// DefaultDocumentURL is rendered when a request names no document.
const DefaultDocumentURL = "https://raw.githubusercontent.com/vector76/mdview/main/README.md"

// Renderer names accepted by the renderer option.
const (
	RendererGitHub = "github"
	RendererLocal  = "local"
)

type Option struct {
	Key     string
	Default any
	Comment string
}

// Options returns every setting with its default and meaning.
func Options() []Option {
	return []Option{
		{Key: "port", Default: 9999, Comment: "Port the HTTP server listens on"},
		{Key: "default_url", Default: DefaultDocumentURL, Comment: "Document rendered when the request path is empty"},
		{Key: "renderer", Default: RendererGitHub, Comment: "Markdown renderer: github (GitHub API) or local (goldmark)"},
		{Key: "github_endpoint", Default: "https://api.github.com/markdown", Comment: "GitHub Markdown API endpoint"},
		{Key: "log_level", Default: "info", Comment: "Log level: trace, debug, info, warn, error"},
		{Key: "log_format", Default: "console", Comment: "Log format: console or json"},
	}
}

// Settings is the resolved configuration.
type Settings struct {
	Port           int    `mapstructure:"port"`
	DefaultURL     string `mapstructure:"default_url"`
	Renderer       string `mapstructure:"renderer"`
	GitHubEndpoint string `mapstructure:"github_endpoint"`
	LogLevel       string `mapstructure:"log_level"`
	LogFormat      string `mapstructure:"log_format"`
}

// Load seeds v with precedence defaults < dotenv file < environment.
// Flags bound to v with BindPFlag take precedence over all of these.
// A missing dotenv file is not an error; an empty path skips it.
func Load(v *viper.Viper, dotenvPath string) error {
	for _, o := range Options() {
		v.SetDefault(o.Key, o.Default)
	}

	if dotenvPath != "" {
		dv := viper.New()
		dv.SetConfigFile(dotenvPath)
		dv.SetConfigType("env")
		if err := dv.ReadInConfig(); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("reading %s: %w", dotenvPath, err)
			}
		} else {
			// dotenv keys arrive lowercased, e.g. mdview_port.
			for _, o := range Options() {
				key := strings.ToLower(EnvPrefix) + "_" + o.Key
				if dv.IsSet(key) {
					v.SetDefault(o.Key, dv.Get(key))
				}
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return nil
}

// Resolve decodes v into Settings and validates it.
func Resolve(v *viper.Viper) (Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decoding config: %w", err)
	}

	s.Renderer = strings.ToLower(strings.TrimSpace(s.Renderer))
	switch s.Renderer {
	case RendererGitHub, RendererLocal:
	default:
		return Settings{}, fmt.Errorf("invalid renderer %q (want %s or %s)", s.Renderer, RendererGitHub, RendererLocal)
	}

	s.LogFormat = strings.ToLower(strings.TrimSpace(s.LogFormat))
	if s.LogFormat != "console" && s.LogFormat != "json" {
		return Settings{}, fmt.Errorf("invalid log format %q (want console or json)", s.LogFormat)
	}

	if s.Port < 0 || s.Port > 65535 {
		return Settings{}, fmt.Errorf("invalid port %d", s.Port)
	}
	if strings.TrimSpace(s.DefaultURL) == "" {
		s.DefaultURL = DefaultDocumentURL
	}
	return s, nil
}
