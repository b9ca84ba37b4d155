package config

// DefaultIcons maps the 18 OpenWeatherMap icon codes to Nerd Font glyphs.
// Every glyph carries a trailing space so it can be printed flush against the temperature.
func DefaultIcons() map[string]string {
	return map[string]string{
		"01d": "󰖙 ", // clear sky
		"01n": "󰖔 ",
		"02d": "󰖕 ", // few clouds
		"02n": "󰼱 ",
		"03d": " ", // scattered clouds
		"03n": " ",
		"04d": " ", // broken clouds
		"04n": " ",
		"09d": "󰖗 ", // shower rain
		"09n": "󰖗 ",
		"10d": "󰖖 ", // rain
		"10n": "󰖖 ",
		"11d": "󰙾 ", // thunderstorm
		"11n": "󰙾 ",
		"13d": "󰖘 ", // snow
		"13n": "󰖘 ",
		"50d": "󰖑 ", // mist
		"50n": "󰖑 ",
	}
}
