// Package cli implements the shopbot commands.
package cli

import (
	"shopbot/configs"
	"shopbot/pkg/logger"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	envFlag    string
	configPath string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "shopbot",
	Short: "Toy e-commerce service with a rule-based sales assistant",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configs.InitViper(configPath, envFlag)
		cfg := configs.GetViper()
		logger.Setup(logger.Options{Debug: cfg.App.Debug, Env: cfg.App.Env})
		logrus.Infof("Environment: %s", cfg.App.Env)
	},
	SilenceUsage: true,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&envFlag, "env", "e", "", "the environment to use (overrides app.env)")
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "./configs", "directory holding config.yaml")
}
