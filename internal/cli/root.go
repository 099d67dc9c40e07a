package cli

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
)

const serviceName = "mdview"

var version = "dev"

func init() {
	if version == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok &&
			info.Main.Version != "" &&
			info.Main.Version != "(devel)" {
			version = strings.TrimPrefix(info.Main.Version, "v")
		}
	}
}

// userAgent identifies mdview to the servers it calls.
func userAgent() string {
	return serviceName + "/" + version
}

// NewRootCmd creates the root cobra command for the mdview CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   serviceName,
		Short: "Markdown rendering server",
		Long: "mdview renders remote Markdown documents as GitHub-styled HTML pages.\n\n" +
			"Settings come from flags, MDVIEW_* environment variables and the --env-file (default .env).",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			showVersion, _ := cmd.Flags().GetBool("version")
			if !showVersion {
				return cmd.Help()
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", serviceName, version)
			return nil
		},
	}

	root.Flags().BoolP("version", "v", false, "show version information")
	root.PersistentFlags().String("env-file", ".env", "dotenv file with MDVIEW_* settings (ignored if missing)")
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(newServeCmd())
	root.AddCommand(newRenderCmd())

	return root
}
