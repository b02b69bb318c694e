package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/tweetline/twitter-mcp-server/internal/app"
	"github.com/tweetline/twitter-mcp-server/internal/logging"
	"github.com/tweetline/twitter-mcp-server/internal/mcp"
	"github.com/tweetline/twitter-mcp-server/internal/protocol"
	"github.com/tweetline/twitter-mcp-server/internal/version"
)

var authMode string

var rootCmd = &cobra.Command{
	Use:   "twitter-mcp-server",
	Short: "MCP server exposing Twitter/X operations as tools",
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		_ = godotenv.Load()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve MCP JSON-RPC over HTTP",
	RunE: func(cmd *cobra.Command, _ []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		token, _ := cmd.Flags().GetString("token")
		if token == "" {
			token = os.Getenv("MCP_AUTH_TOKEN")
		}

		log, closeLog, err := logging.New("mcp-server")
		if err != nil {
			return err
		}
		defer closeLog()

		factory, err := app.NewFactory(resolveAuthMode())
		if err != nil {
			return err
		}
		server := app.NewMCPServer(factory, log)
		return mcp.RunHTTP(server, mcp.HTTPConfig{Addr: addr, Token: token}, log)
	},
}

var stdioCmd = &cobra.Command{
	Use:   "stdio",
	Short: "Serve MCP JSON-RPC over stdin/stdout",
	RunE: func(cmd *cobra.Command, _ []string) error {
		log, closeLog, err := logging.New("mcp-stdio")
		if err != nil {
			return err
		}
		defer closeLog()

		factory, err := app.NewFactory(resolveAuthMode())
		if err != nil {
			return err
		}
		server := app.NewMCPServer(factory, log)
		log.Info("stdio MCP server started")
		return mcp.RunStdio(cmd.Context(), server, os.Stdin, os.Stdout)
	},
}

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Print the tool catalogue as JSON",
	RunE: func(_ *cobra.Command, _ []string) error {
		factory, err := app.NewFactory(resolveAuthMode())
		if err != nil {
			return err
		}
		tb := app.NewToolbox(factory)
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(protocol.ListResult{Tools: tb.Describe()})
	},
}

func resolveAuthMode() string {
	if authMode != "" {
		return authMode
	}
	return os.Getenv("TWITTER_AUTH_MODE")
}

func init() {
	rootCmd.Version = version.Get().Version
	rootCmd.PersistentFlags().StringVar(&authMode, "auth-mode", "", "credential mode: static (env 4-tuple) or per-call (bearer token per request)")

	serveCmd.Flags().String("addr", ":3333", "HTTP listen address")
	serveCmd.Flags().String("token", "", "bearer token required on the JSON-RPC endpoint; defaults to MCP_AUTH_TOKEN env")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(stdioCmd)
	rootCmd.AddCommand(toolsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
