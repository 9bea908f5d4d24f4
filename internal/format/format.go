package format

import (
	"fmt"
	"strings"
)

// Phone formats a Swiss phone number into the "0xx xxx xx xx" display form.
// Anything that is not ten digits after stripping is returned unchanged.
func Phone(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if len(d) != 10 {
		return phone
	}
	return fmt.Sprintf("%s %s %s %s", d[:3], d[3:6], d[6:8], d[8:])
}

// Distance renders a kilometre distance for page copy, dropping a trailing
// ".0" for whole numbers.
func Distance(km float64) string {
	if km == float64(int64(km)) {
		return fmt.Sprintf("%d km", int64(km))
	}
	return fmt.Sprintf("%.1f km", km)
}

// cantonAbbreviations maps canton full names to their official two-letter codes
// for the cantons in the service area.
var cantonAbbreviations = map[string]string{
	"Zürich":       "ZH",
	"Aargau":       "AG",
	"Thurgau":      "TG",
	"Schaffhausen": "SH",
	"St. Gallen":   "SG",
	"Zug":          "ZG",
	"Schwyz":       "SZ",
	"Luzern":       "LU",
}

// CantonAbbreviation returns the two-letter canton code, or the input when unknown.
func CantonAbbreviation(canton string) string {
	if abbr, ok := cantonAbbreviations[canton]; ok {
		return abbr
	}
	return canton
}

// Truncate shortens text to maxLength runes, appending an ellipsis.
func Truncate(text string, maxLength int) string {
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	return strings.TrimSpace(string(runes[:maxLength])) + "..."
}
