package cmd

import (
	"log"

	"github.com/neurosym/logicpipe/utils/config"
	"github.com/neurosym/logicpipe/utils/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web UI and JSON API server",
	Long:  `Start an HTTP server hosting the logic solver web UI and a JSON/SSE API.`,
	Run: func(cmd *cobra.Command, args []string) {
		envConfig, err := config.LoadEnvConfig(config.GetEnvPath())
		if err != nil {
			log.Fatalf("Error loading environment configuration: %v", err)
		}

		if err := server.Run(envConfig); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
