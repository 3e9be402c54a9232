package weather

import (
	"fmt"
	"strings"
)

// renderSummary formats the combined report: location header, current
// conditions block, then one block per forecast day with date, min/max
// temperature and day/night condition phrases.
func renderSummary(location Location, current *CurrentConditions, forecast *Forecast) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Weather for %s:\n\n", displayName(location))

	b.WriteString("CURRENT CONDITIONS:\n")
	fmt.Fprintf(&b, "• Temperature: %g°%s\n", current.Temperature.Value, current.Temperature.Unit)
	fmt.Fprintf(&b, "• Conditions: %s\n", current.WeatherText)
	if current.RelativeHumidity != nil {
		fmt.Fprintf(&b, "• Humidity: %d%%\n", *current.RelativeHumidity)
	}
	fmt.Fprintf(&b, "• Wind: %g %s %s\n", current.Wind.Speed.Value, current.Wind.Speed.Unit, current.Wind.Direction)
	if current.UVIndex != nil {
		fmt.Fprintf(&b, "• UV Index: %d (%s)\n", *current.UVIndex, current.UVIndexText)
	}

	b.WriteString("\nFORECAST:\n")
	if forecast.Headline != "" {
		fmt.Fprintf(&b, "• %s\n", forecast.Headline)
	}
	b.WriteString("\n")

	for i, day := range forecast.Days {
		fmt.Fprintf(&b, "Day %d (%s):\n", i+1, shortDate(day.Date))
		fmt.Fprintf(&b, "• Temperature: %g°%s to %g°%s\n",
			day.MinTemperature.Value, day.MinTemperature.Unit,
			day.MaxTemperature.Value, day.MaxTemperature.Unit)
		fmt.Fprintf(&b, "• Day: %s\n", day.DayText)
		fmt.Fprintf(&b, "• Night: %s\n", day.NightText)
		if day.DayHasPrecipitation {
			fmt.Fprintf(&b, "• Precipitation: %s (%s)\n", day.DayPrecipitationType, day.DayPrecipitationIntensity)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// displayName joins the non-empty administrative parts of a location,
// e.g. "Istanbul, Istanbul, Turkey".
func displayName(location Location) string {
	parts := []string{location.Name}
	if location.AdministrativeArea != "" {
		parts = append(parts, location.AdministrativeArea)
	}
	if location.Country != "" {
		parts = append(parts, location.Country)
	}
	return strings.Join(parts, ", ")
}

// shortDate trims a provider timestamp like "2026-08-24T07:00:00+03:00"
// down to its date part.
func shortDate(date string) string {
	if i := strings.IndexByte(date, 'T'); i > 0 {
		return date[:i]
	}
	return date
}
