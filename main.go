package main

import (
	"os"

	"fin-calc/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	envFile string

	cfg    *config.Config
	logger *logrus.Logger
)

var rootCmd = &cobra.Command{
	Use:          "fincalc",
	Short:        "Mortgage, income tax and 401(k) calculators",
	Long:         `Serves the calculator API and frontend bundle, or runs a single calculation from the command line.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(envFile); err != nil {
			return err
		}
		logger = newLogger(cfg.LogLevel)
		return nil
	},
	RunE: runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional dotenv file with configuration")
	rootCmd.AddCommand(serveCmd, mortgageCmd, incomeTaxCmd, retirementCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)
	return logger
}
