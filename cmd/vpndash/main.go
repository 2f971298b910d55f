package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/vpndash/vpndash/internal/interfaces/cli/migrate"
	"github.com/vpndash/vpndash/internal/interfaces/cli/server"
	"github.com/vpndash/vpndash/internal/shared/version"
)

//	@title						vpndash API
//	@version					1.0
//	@description				Subscription dashboard API for a consumer VPN service.
//	@BasePath					/
//	@securityDefinitions.apikey	Bearer
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the access token.
func main() {
	rootCmd := &cobra.Command{
		Use:     "vpndash",
		Short:   "vpndash - VPN subscription dashboard backend",
		Long:    `vpndash serves the subscription dashboard API and manages its database schema.`,
		Version: version.String(),
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
