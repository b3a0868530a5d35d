// Package format provides the pure display formatters used by the plan
// renderers. Every function here is total: bad input degrades to "N/A",
// an empty string, or the input itself — never a panic or an error.
package format

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// NotAvailable is the shared fallback string for values that cannot be
// formatted.
const NotAvailable = "N/A"

var ptDurationRe = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?`)

// Duration formats an ISO-8601-style duration token such as "PT2H30M" as
// "2h30m". Components that are absent in the input are omitted from the
// output ("PT45M" -> "45m", "PT3H" -> "3h"). Strings that do not start with
// "PT" are assumed to already be human-readable and are returned unchanged.
// An empty input, or a "PT" string with no parseable components, yields
// NotAvailable.
func Duration(raw string) string {
	if raw == "" {
		return NotAvailable
	}
	if !strings.HasPrefix(raw, "PT") {
		return raw
	}

	m := ptDurationRe.FindStringSubmatch(raw)
	if m == nil {
		return NotAvailable
	}

	var b strings.Builder
	if m[1] != "" {
		b.WriteString(m[1])
		b.WriteString("h")
	}
	if m[2] != "" {
		b.WriteString(m[2])
		b.WriteString("m")
	}
	if b.Len() == 0 {
		return NotAvailable
	}
	return b.String()
}

// clockLayouts are tried in order when parsing segment timestamps. The
// planning service emits RFC 3339 with and without zone offsets depending on
// the upstream flight provider.
var clockLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// Clock formats a timestamp string as a 12-hour wall-clock time such as
// "09:45 AM". Unparseable input is returned unchanged; empty input yields
// NotAvailable. Clock never fails.
func Clock(raw string) string {
	if raw == "" {
		return NotAvailable
	}
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("03:04 PM")
		}
	}
	return raw
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// Date formats a forecast date string as "Mon Jan 2". Empty input yields an
// empty string; unparseable input is returned unchanged.
func Date(raw string) string {
	if raw == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("Mon Jan 2")
		}
	}
	return raw
}

// Weather icons used by the weather and forecast renderers.
const (
	IconSun   = "☀"
	IconRain  = "🌧"
	IconCloud = "☁"
)

// WeatherIcon selects a glyph for a free-text weather description.
// Matching is case-insensitive substring search with fixed priority:
// sun/clear beats rain/storm beats the generic cloud. The first matching
// rule wins; descriptions mentioning both sun and rain get the sun icon.
func WeatherIcon(description string) string {
	desc := strings.ToLower(description)
	switch {
	case strings.Contains(desc, "sun") || strings.Contains(desc, "clear"):
		return IconSun
	case strings.Contains(desc, "rain") || strings.Contains(desc, "storm"):
		return IconRain
	default:
		return IconCloud
	}
}

// Number renders a JSON number without trailing zeros, so 21.0 displays as
// "21" and 3.5 as "3.5". Renderers use this to keep displayed leaf values
// equal to the response fields.
func Number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Rating renders a rating with one decimal place, matching how the planning
// service presents star ratings. The caller handles absence.
func Rating(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
