package converter

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TemperatureFormat selects the unit a temperature is displayed in
type TemperatureFormat int

const (
	Celsius TemperatureFormat = iota
	Fahrenheit
	Kelvin
)

// String returns the name stored in the configuration file
func (f TemperatureFormat) String() string {
	switch f {
	case Fahrenheit:
		return "fahrenheit"
	case Kelvin:
		return "kelvin"
	default:
		return "celsius"
	}
}

const absoluteZeroCelsius float32 = 273.15

// ConvertTemperature converts a Kelvin reading into the requested format and
// returns the value together with its unit suffix. Celsius and Fahrenheit
// values are rounded half away from zero; Kelvin is returned unchanged.
func ConvertTemperature(kelvin float32, format TemperatureFormat) (float32, string) {
	switch format {
	case Fahrenheit:
		return round((kelvin-absoluteZeroCelsius)*9.0/5.0 + 32.0), "°F"
	case Kelvin:
		return kelvin, "K"
	default:
		return round(kelvin - absoluteZeroCelsius), "°C"
	}
}

func round(v float32) float32 {
	return float32(math.Round(float64(v)))
}

// FormatTemperature renders v using the fewest digits that identify it as a
// float32, so 22 prints as "22" and 295.15 as "295.15".
func FormatTemperature(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

// ToTitlecase upper-cases the first character of every whitespace separated
// word and leaves the rest of each word untouched. Words are re-joined with a
// single space.
func ToTitlecase(input string) string {
	words := strings.Fields(input)
	if len(words) == 0 {
		return ""
	}

	upper := cases.Upper(language.Und)
	for i, word := range words {
		r, size := utf8.DecodeRuneInString(word)
		words[i] = upper.String(string(r)) + word[size:]
	}
	return strings.Join(words, " ")
}
