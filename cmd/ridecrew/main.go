package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ridecrew/ridecrew/internal/interfaces/cli/migrate"
	"github.com/ridecrew/ridecrew/internal/interfaces/cli/server"
)

//go:generate swag init -g cmd/ridecrew/main.go -d ../../ -o ../../docs

// @title ridecrew API
// @version 1.0
// @description Cycling club social network backend.
// @BasePath /
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	rootCmd := &cobra.Command{
		Use:   "ridecrew",
		Short: "ridecrew - cycling club social network API",
		Long:  `ridecrew serves the club, feed, hike and billing API and ships its own migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
