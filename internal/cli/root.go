// Package cli provides the command-line interface for huemap.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"huemap/internal/version"
)

var (
	rootVerbose bool
	rootQuiet   bool

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "huemap",
		Short: "Derive terminal colour themes from images",
		Long: `Huemap derives a terminal colour theme from an image.

It quantizes the image down to a small palette of dominant colours, classifies
the result as a light or dark theme, and maps the palette onto semantic roles
(error, warning, success, headings and so on) using perceptual hue analysis.
The same image always produces the same theme.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&rootQuiet, "quiet", "q", false, "suppress non-error output")

	rootCmd.SetGlobalNormalizationFunc(normalizeFlagName)
	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(generateCmd)
}

// normalizeFlagName accepts American spellings of the colour flags.
func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	switch name {
	case "colors":
		name = "colours"
	case "color":
		name = "colour"
	}
	return pflag.NormalizedName(name)
}

// newLogger builds the pipeline logger from the global verbosity flags.
func newLogger() hclog.Logger {
	if rootVerbose {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "huemap",
			Output: os.Stderr,
			Level:  hclog.Debug,
		})
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "huemap",
		Output: io.Discard,
		Level:  hclog.Off,
	})
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
