// Package config loads the voxtitle tool configuration, a small
// YAML file with the store application name, extra font directories
// and the default tile geometry.
package config

import "errors"
import "fmt"
import "io/fs"
import "os"

import "gopkg.in/yaml.v3"
import "github.com/tinne26/voxtitle/font"

// Name of the configuration file looked up by the commands when
// no explicit path is given.
const DefaultFileName = "voxtitle.yaml"

// Limits for the tile geometry and frame rate.
const (
	MaxDimension = 16384
	MaxFPS       = 240
)

type Config struct {
	AppName  string   `yaml:"appName"`  // gdata application name
	FontDirs []string `yaml:"fontDirs"` // directories scanned for .ttf and .otf fonts
	Width    int      `yaml:"width"`    // default tile width
	Height   int      `yaml:"height"`   // default tile height
	FPS      float64  `yaml:"fps"`      // frame rate for sequences and previews
}

// Returns the configuration used when no file is present.
func Default() Config {
	return Config{
		AppName: "voxtitle",
		FontDirs: []string{},
		Width: 1920,
		Height: 1080,
		FPS: 30,
	}
}

// Loads the configuration at the given path. Fields missing from
// the file keep their [Default]() values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil { return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err) }

	config := Default()
	err = yaml.Unmarshal(data, &config)
	if err != nil { return Config{}, fmt.Errorf("failed to parse config YAML from %s: %w", path, err) }
	if config.FontDirs == nil { config.FontDirs = []string{} }

	err = config.Validate()
	if err != nil { return Config{}, fmt.Errorf("invalid config in %s: %w", path, err) }
	return config, nil
}

// Like [Load](), but returning [Default]() when the file doesn't
// exist. Any other failure is still reported.
func LoadOrDefault(path string) (Config, error) {
	config, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) { return Default(), nil }
	return config, err
}

// Checks that every field has a usable value.
func (self Config) Validate() error {
	if self.AppName == "" { return errors.New("appName is required") }
	if self.Width <= 0 || self.Width > MaxDimension {
		return fmt.Errorf("width must be in [1, %d], got %d", MaxDimension, self.Width)
	}
	if self.Height <= 0 || self.Height > MaxDimension {
		return fmt.Errorf("height must be in [1, %d], got %d", MaxDimension, self.Height)
	}
	if !(self.FPS > 0 && self.FPS <= MaxFPS) {
		return fmt.Errorf("fps must be in (0, %d], got %v", MaxFPS, self.FPS)
	}
	for _, dir := range self.FontDirs {
		if dir == "" { return errors.New("fontDirs can't contain empty paths") }
	}
	return nil
}

// Creates a font library with the embedded Go fonts plus every font
// found in the configured directories. Fonts whose names are already
// present are skipped.
func (self Config) FontLibrary() (*font.Library, error) {
	lib, err := font.NewDefaultLibrary()
	if err != nil { return nil, err }
	for _, dir := range self.FontDirs {
		_, _, err := lib.AddDir(dir)
		if err != nil { return nil, fmt.Errorf("loading fonts from %s: %w", dir, err) }
	}
	return lib, nil
}
