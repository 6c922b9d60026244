package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dnastore",
	Short: "A DNA data storage codec",
	Long: `dnastore encodes binary data into DNA positions (base + methylation flag)
protected by a repetition code, decodes them back, and provides channel
simulation tools for measuring how well the code holds up to noise.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
