package view

import (
	"fmt"
	"strings"

	"github.com/wayfarer-cli/wayfarer/internal/format"
	"github.com/wayfarer-cli/wayfarer/internal/trip"
	"github.com/wayfarer-cli/wayfarer/internal/tui/styles"
)

// WeatherView renders current conditions, the daily forecast, and tips.
type WeatherView struct{}

// NewWeatherView creates a new WeatherView instance.
func NewWeatherView() *WeatherView {
	return &WeatherView{}
}

// Render renders the weather section. A nil weather block yields the
// fallback card. The current-conditions block, the forecast grid, and the
// tips list are each rendered only when their data is present.
func (v *WeatherView) Render(weather *trip.Weather, width int) string {
	if weather == nil {
		return fallbackSection("Weather", "Weather information not available.", width)
	}

	var parts []string
	if weather.Current != nil {
		parts = append(parts, v.renderCurrent(weather.Location, weather.Current))
	}
	if len(weather.Forecast) > 0 {
		parts = append(parts, v.renderForecast(weather.Forecast))
	}
	if len(weather.Recommendations) > 0 {
		parts = append(parts, v.renderTips(weather.Recommendations))
	}

	return section("Weather Forecast", strings.Join(parts, "\n\n"), width)
}

func (v *WeatherView) renderCurrent(location string, cur *trip.Conditions) string {
	var b strings.Builder

	b.WriteString(styles.ItemTitle.Render("Current Weather"))
	if location != "" {
		b.WriteString(styles.Muted.Render("  " + location))
	}
	b.WriteString("  ")
	b.WriteString(format.WeatherIcon(cur.Description))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%s°C", format.Number(cur.Temperature)))
	b.WriteString(styles.Muted.Render(fmt.Sprintf("  feels like %s°C", format.Number(cur.FeelsLike))))
	b.WriteString("\n")
	b.WriteString(labeled("Humidity", format.Number(cur.Humidity)+"%"))
	b.WriteString("   ")
	b.WriteString(labeled("Wind", format.Number(cur.WindSpeed)+" m/s"))
	if cur.Description != "" {
		b.WriteString("   ")
		b.WriteString(labeled("Condition", cur.Description))
	}

	return b.String()
}

func (v *WeatherView) renderForecast(days []trip.DayForecast) string {
	var b strings.Builder
	b.WriteString(styles.ItemTitle.Render("5-Day Forecast"))
	b.WriteString("\n")

	for i, day := range days {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(format.WeatherIcon(day.Description))
		b.WriteString("  ")
		b.WriteString(format.Date(day.Date))
		b.WriteString("  ")
		b.WriteString(fmt.Sprintf("high %s°C / low %s°C", format.Number(day.MaxTemp), format.Number(day.MinTemp)))
		b.WriteString(styles.Muted.Render(fmt.Sprintf("  humidity %s%%", format.Number(day.Humidity))))
		if day.Description != "" {
			b.WriteString(styles.Muted.Render("  " + day.Description))
		}
	}

	return b.String()
}

func (v *WeatherView) renderTips(tips []string) string {
	var b strings.Builder
	b.WriteString(styles.ItemTitle.Render("Weather Tips"))
	b.WriteString("\n")
	for i, tip := range tips {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(styles.Primary.Render("• "))
		b.WriteString(tip)
	}
	return b.String()
}
