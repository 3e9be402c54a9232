// weatherctl is a small command-line client for the Weather Gateway.
// It invokes the gateway's tool surface over HTTP and prints the
// results, one subcommand per tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dileep-u-k/weather-gateway/internal/version"
)

var serverURL string

var rootCmd = &cobra.Command{
	Use:   "weatherctl",
	Short: "weatherctl — command-line client for the Weather Gateway",
	Long: `weatherctl invokes the Weather Gateway's tools over HTTP:
location search, current conditions, daily forecasts, and the combined
weather summary.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	defaultServer := os.Getenv("WEATHER_GATEWAY_URL")
	if defaultServer == "" {
		defaultServer = "http://127.0.0.1:8000"
	}
	rootCmd.PersistentFlags().StringVarP(&serverURL, "server", "s", defaultServer,
		"base URL of the gateway (env: WEATHER_GATEWAY_URL)")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(currentCmd)
	rootCmd.AddCommand(forecastCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print weatherctl build information",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Get()
		fmt.Printf("weatherctl %s (commit %s, built %s, %s, %s)\n",
			info.Version, info.GitCommit, info.BuildDate, info.GoVersion, info.Platform)
	},
}
