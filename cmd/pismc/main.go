// pismc is a CLI tool that compiles pism circuit descriptions into Rust
// bellman source fragments.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/darkrenaissance/pism/logger"
)

var (
	fStrict  bool
	fOutput  string
	fVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "pismc",
	Short: "pismc compiles pism circuit descriptions to bellman gadget code",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if !fVerbose {
			log := logger.Logger().Level(zerolog.InfoLevel)
			logger.Set(log)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&fVerbose, "verbose", "v", false, "enable debug logging")
	compileCmd.Flags().BoolVar(&fStrict, "strict", false, "reject operands not bound by an earlier output or input directive")
	compileCmd.Flags().StringVarP(&fOutput, "output", "o", "", "directory for generated files (default: next to each input)")
	rootCmd.AddCommand(compileCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(-1)
	}
}
