package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"weather-cli/apperr"
	"weather-cli/converter"
)

func TestReadOrDefault_CreatesDefault(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", AppName)

	cfg, err := ReadOrDefault(dir)
	if err != nil {
		t.Fatalf("ReadOrDefault() error = %v, want nil", err)
	}

	if cfg.APIKey != "" || cfg.LocationName != "" {
		t.Errorf("got key=%q location=%q, want both empty", cfg.APIKey, cfg.LocationName)
	}
	if cfg.TemperatureFormat != "celsius" {
		t.Errorf("TemperatureFormat = %q, want celsius", cfg.TemperatureFormat)
	}
	if len(cfg.ConditionIcons) != 18 {
		t.Errorf("len(ConditionIcons) = %d, want 18", len(cfg.ConditionIcons))
	}
	if cfg.Path() != filepath.Join(dir, FileName) {
		t.Errorf("Path() = %q, want %q", cfg.Path(), filepath.Join(dir, FileName))
	}

	data, err := os.ReadFile(cfg.Path())
	if err != nil {
		t.Fatalf("default config was not persisted: %v", err)
	}
	if !strings.HasPrefix(string(data), "{\n  \"api_key\": \"\",\n") {
		t.Errorf("config is not pretty printed:\n%s", data)
	}
}

func TestReadOrDefault_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	cfg, err := ReadOrDefault(dir)
	if err != nil {
		t.Fatalf("ReadOrDefault() error = %v", err)
	}
	if err := cfg.SetAPIKey("abc123"); err != nil {
		t.Fatalf("SetAPIKey() error = %v", err)
	}
	if err := cfg.SetLocationName("Berlin,DE"); err != nil {
		t.Fatalf("SetLocationName() error = %v", err)
	}
	if err := cfg.SetTemperatureFormat("fahrenheit"); err != nil {
		t.Fatalf("SetTemperatureFormat() error = %v", err)
	}

	got, err := ReadOrDefault(dir)
	if err != nil {
		t.Fatalf("ReadOrDefault() second read error = %v", err)
	}
	if !reflect.DeepEqual(got, cfg) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, cfg)
	}
	if !reflect.DeepEqual(got.ConditionIcons, DefaultIcons()) {
		t.Errorf("icon table changed across round trip")
	}
}

func TestReadOrDefault_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(`{invalid`), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := ReadOrDefault(dir)
	if apperr.KindOf(err) != apperr.KindParse {
		t.Fatalf("ReadOrDefault() error = %v, want parse error", err)
	}
}

func TestReadOrDefault_BackfillsMissingKeys(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(`{"api_key":"x"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := ReadOrDefault(dir)
	if err != nil {
		t.Fatalf("ReadOrDefault() error = %v", err)
	}
	if cfg.APIKey != "x" {
		t.Errorf("APIKey = %q, want x", cfg.APIKey)
	}
	if !reflect.DeepEqual(cfg.ConditionIcons, DefaultIcons()) {
		t.Errorf("ConditionIcons = %v, want the default table", cfg.ConditionIcons)
	}
	if cfg.TemperatureFormat != "celsius" {
		t.Errorf("TemperatureFormat = %q, want celsius", cfg.TemperatureFormat)
	}

	if err := cfg.SetLocationName("L"); err != nil {
		t.Fatalf("SetLocationName() error = %v", err)
	}
	data, err := os.ReadFile(cfg.Path())
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "null") || !strings.Contains(string(data), `"temperature_format": "celsius"`) {
		t.Errorf("persisted config is incomplete:\n%s", data)
	}
}

func TestReadOrDefault_DirectoryNotCreatable(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := ReadOrDefault(filepath.Join(blocker, AppName))
	if apperr.KindOf(err) != apperr.KindIO {
		t.Fatalf("ReadOrDefault() error = %v, want io error", err)
	}
}

func TestSetTemperatureFormat_AcceptsAnything(t *testing.T) {
	cfg, err := ReadOrDefault(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if err := cfg.SetTemperatureFormat("bogus"); err != nil {
		t.Fatalf("SetTemperatureFormat(bogus) error = %v, want nil", err)
	}

	data, err := os.ReadFile(cfg.Path())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"temperature_format": "bogus"`) {
		t.Errorf("stored config does not contain the raw value:\n%s", data)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		stored string
		want   converter.TemperatureFormat
	}{
		{stored: "celsius", want: converter.Celsius},
		{stored: "fahrenheit", want: converter.Fahrenheit},
		{stored: "kelvin", want: converter.Kelvin},
		{stored: "bogus", want: converter.Celsius},
		{stored: "", want: converter.Celsius},
		{stored: "Kelvin", want: converter.Celsius},
	}

	for _, tt := range tests {
		t.Run(tt.stored, func(t *testing.T) {
			cfg := &Config{TemperatureFormat: tt.stored}
			if got := cfg.Format(); got != tt.want {
				t.Errorf("Format() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIcon(t *testing.T) {
	cfg := Default()

	if got := cfg.Icon("01d"); got != "\U000f0599 " {
		t.Errorf("Icon(01d) = %q, want clear sky glyph", got)
	}
	if got := cfg.Icon("99x"); got != "" {
		t.Errorf("Icon(99x) = %q, want empty", got)
	}

	empty := &Config{}
	if got := empty.Icon("01d"); got != "" {
		t.Errorf("Icon on config without icon table = %q, want empty", got)
	}
}

func TestDefaultIcons_CoverAllCodes(t *testing.T) {
	icons := DefaultIcons()
	for _, base := range []string{"01", "02", "03", "04", "09", "10", "11", "13", "50"} {
		for _, pod := range []string{"d", "n"} {
			glyph, ok := icons[base+pod]
			if !ok {
				t.Errorf("missing icon for %s%s", base, pod)
				continue
			}
			if !strings.HasSuffix(glyph, " ") || len(glyph) < 2 {
				t.Errorf("icon for %s%s = %q, want glyph plus trailing space", base, pod, glyph)
			}
		}
	}
}
