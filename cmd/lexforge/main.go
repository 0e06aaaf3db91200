package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"lexforge/internal/app/config"
)

var (
	configName string
	verbose    bool
)

// rootCmd утилиты для работы с договорами без HTTP-сервера
var rootCmd = &cobra.Command{
	Use:   "lexforge",
	Short: "LexForge contract tools",
	Long: `Offline tools for the LexForge contract generator.

Available subcommands:
  render - Build a contract from a questionnaire JSON file
  token  - Issue a JWT for a user id`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		} else {
			logrus.SetLevel(logrus.WarnLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configName, "config", "config", "Config file name (without .toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(tokenCmd)
}

func loadConfig() (*config.Config, error) {
	return config.Load(configName, "config", ".")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
