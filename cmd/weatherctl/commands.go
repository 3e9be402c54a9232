package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var forecastDays int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search for a location by city name or postal code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return invokeAndPrint(cmd.Context(), "search_location", map[string]any{
			"query": args[0],
		})
	},
}

var currentCmd = &cobra.Command{
	Use:   "current <location-key>",
	Short: "Get current weather conditions for a location key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return invokeAndPrint(cmd.Context(), "get_current_weather", map[string]any{
			"location_key": args[0],
		})
	},
}

var forecastCmd = &cobra.Command{
	Use:   "forecast <location-key>",
	Short: "Get a daily forecast for a location key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return invokeAndPrint(cmd.Context(), "get_forecast", map[string]any{
			"location_key": args[0],
			"days":         forecastDays,
		})
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary <location>",
	Short: "Get a full weather summary for a city name or postal code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("Getting weather for: %s\n", args[0])
		return invokeAndPrint(cmd.Context(), "get_weather_summary", map[string]any{
			"location": args[0],
		})
	},
}

func init() {
	forecastCmd.Flags().IntVarP(&forecastDays, "days", "d", 5, "number of forecast days (1-5)")
}
