package main

import (
	"fmt"

	"med-estudia/internal/config"
	"med-estudia/internal/logger"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "medai",
	Short:         "Medical study content generator",
	Long:          "medai generates multiple-choice questions, quizzes and topic explanations through the configured AI gateway.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := logger.Initialize(cfg.Logger); err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		appConfig = cfg
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

// appConfig is loaded once per invocation by the root pre-run hook.
var appConfig *config.Config

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
