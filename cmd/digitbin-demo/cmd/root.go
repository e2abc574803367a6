package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/digitbin/digitbin/internal/obs"
)

var (
	cfgFile string
	verbose bool
	logger  obs.Logger
)

var rootCmd = &cobra.Command{
	Use:   "digitbin-demo",
	Short: "Drive a Digit-Bin Index with a synthetic weighted population",
	Long: `digitbin-demo builds a Digit-Bin Index, populates it with a
synthetic weighted population, and exercises both sampling primitives:
sequential (Wallenius-style) single draws and simultaneous (Fisher-style)
batch draws, logging index stats as it runs.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cfgFile != "" {
			viper.SetConfigFile(cfgFile)
			if err := viper.ReadInConfig(); err != nil {
				return err
			}
		}

		level := obs.LevelInfo
		if verbose {
			level = obs.LevelDebug
		}
		logger = obs.New(level, os.Stdout)

		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (optional)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(runCmd)
}
