// Package cli implements the fastblur command line interface.
package cli

import (
	"github.com/spf13/cobra"
)

// rootCmd is the root command for fastblur.
var rootCmd = &cobra.Command{
	Use:     "fastblur",
	Version: "dev",
	Short:   "Fast approximate Gaussian blur for raster images",
	Long: `fastblur blurs images in time independent of the blur radius.

The radius (sigma) is converted into three box-filter passes whose stacked
effect approximates a Gaussian; each pass is a sliding-window average, so a
huge radius costs the same as a tiny one.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// SetVersion overrides the version reported by --version.
func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}
