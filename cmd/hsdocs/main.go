// Package main is the entry point for the hsdocs MCP server.
//
// hsdocs exposes a read-only HelpScout Docs knowledge base over the Model
// Context Protocol. The startup sequence is:
//
// 1. Load a .env file if one is present
// 2. Initialize logging
// 3. Resolve configuration (defaults, config file, environment, keyring)
// 4. Start the MCP server on the configured transport
// 5. Shut down gracefully on SIGINT/SIGTERM
//
// Besides `serve`, the binary carries an `auth` command group that manages
// the API key in the OS credential store for setups that prefer not to keep
// the key in the environment.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"hsdocs/internal/config"
	"hsdocs/internal/logging"
	"hsdocs/internal/mcp"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	flagTransport string
	flagHost      string
	flagPort      int
)

var rootCmd = &cobra.Command{
	Use:   "hsdocs",
	Short: "hsdocs — MCP server for the HelpScout Docs knowledge base",
	Long: "hsdocs exposes a company HelpScout documentation site to MCP clients.\n" +
		"It provides read-only tools for searching and reading published help\n" +
		"articles over stdio or streamable HTTP.",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		// A .env file is a convenience for local development; absence is fine.
		_ = godotenv.Load()

		logger := logging.NewAppLogger()

		cfg, err := config.Load(logger)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		// Flags win over file and environment.
		if cmd.Flags().Changed("transport") {
			cfg.Transport = flagTransport
		}
		if cmd.Flags().Changed("host") {
			cfg.Host = flagHost
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = flagPort
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		srv := mcp.NewServer(cfg, logger)
		if err := srv.Start(ctx); err != nil {
			logger.Error("Server exited with error", "error", err)
			return err
		}
		logger.Info("Server stopped")
		return nil
	},
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the HelpScout API key in the OS credential store",
}

var authSetCmd = &cobra.Command{
	Use:   "set <api-key>",
	Short: "Store an API key in the OS credential store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.NewCredentialManager().StoreAPIKey(args[0]); err != nil {
			return err
		}
		fmt.Println("API key stored.")
		return nil
	},
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report whether an API key is available",
	RunE: func(cmd *cobra.Command, args []string) error {
		if os.Getenv("HELPSCOUT_API_KEY") != "" {
			fmt.Println("API key: set via HELPSCOUT_API_KEY (environment wins over the credential store)")
			return nil
		}
		if config.NewCredentialManager().HasAPIKey() {
			fmt.Println("API key: stored in the OS credential store")
			return nil
		}
		fmt.Println("API key: not configured")
		fmt.Println(config.APIKeyHelp)
		return nil
	},
}

var authClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the API key from the OS credential store",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.NewCredentialManager().DeleteAPIKey(); err != nil {
			return err
		}
		fmt.Println("API key removed.")
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagTransport, "transport", config.TransportHTTP,
		fmt.Sprintf("MCP transport: %q or %q", config.TransportStdio, config.TransportHTTP))
	serveCmd.Flags().StringVar(&flagHost, "host", "0.0.0.0", "bind address for the HTTP transport")
	serveCmd.Flags().IntVar(&flagPort, "port", 8000, "bind port for the HTTP transport")

	authCmd.AddCommand(authSetCmd, authStatusCmd, authClearCmd)
	rootCmd.AddCommand(serveCmd, authCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
