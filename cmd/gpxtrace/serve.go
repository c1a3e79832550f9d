package main

import (
	"github.com/spf13/cobra"

	"github.com/rvente/gpxtrace"
	"github.com/rvente/gpxtrace/config"
)

var serveConfigPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve location queries over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(serveConfigPath)
		if err != nil {
			return err
		}
		gpxtrace.StartServer(cfg)
		gpxtrace.HandleGracefulShutdown()
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "config file (default config.yml)")
	rootCmd.AddCommand(serveCmd)
}
