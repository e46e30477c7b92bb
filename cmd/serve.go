package cmd

import (
	"fmt"

	"floormark/server"
	"floormark/utils"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var port string
var noTunnel bool

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve floormark",
	Long: `Serve the floor plan pages locally and through an ngrok tunnel:
  floormark serve
  floormark serve --port 8080 --no-tunnel
  `,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		log.Info("Starting floormark...")

		if err := utils.LoadDotEnv(); err != nil {
			log.Fatal(fmt.Sprintf("Error loading .env file: %s", err.Error()))
		}

		configPath, err := utils.ResolveConfigPath(cfgFile)
		if err != nil {
			log.Fatal(err)
		}
		config, err := utils.NewConfig(configPath)
		if err != nil {
			log.Fatal(err)
		}
		if port != "" {
			config.Server.Port = port
		}
		if noTunnel {
			config.Tunnel.Enabled = false
		}
		if err := utils.SetupLogging(config, debugMode); err != nil {
			log.Fatal(err)
		}
		if configPath != "" {
			log.Info(fmt.Sprintf("Using config file %s", configPath))
		}

		if err := server.Run(config, debugMode); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "port to listen on (default 5000)")
	serveCmd.Flags().BoolVarP(&noTunnel, "no-tunnel", "", false, "do not open the ngrok tunnel")
}
