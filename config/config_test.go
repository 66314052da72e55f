package config

import "os"
import "path/filepath"
import "strings"
import "testing"

import "golang.org/x/image/font/gofont/goregular"

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFileName)
	err := os.WriteFile(path, []byte(content), 0o644)
	if err != nil { t.Fatal(err) }
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil { t.Fatal(err) }
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "appName: titles\nwidth: 1280\nheight: 720\n")
	config, err := Load(path)
	if err != nil { t.Fatal(err) }
	if config.AppName != "titles" || config.Width != 1280 || config.Height != 720 {
		t.Fatalf("unexpected config %+v", config)
	}
	if config.FPS != 30 || config.FontDirs == nil { t.Fatalf("missing fields must keep defaults, got %+v", config) }
}

func TestLoadErrors(t *testing.T) {
	tests := []struct{ content, message string }{
		{ "width: -1\n", "width" },
		{ "height: 100000\n", "height" },
		{ "fps: 0\n", "fps" },
		{ "appName: ''\n", "appName" },
		{ "fontDirs: ['']\n", "fontDirs" },
		{ "width: [1]\n", "parse" },
	}
	for _, test := range tests {
		_, err := Load(writeConfig(t, test.content))
		if err == nil || !strings.Contains(err.Error(), test.message) {
			t.Fatalf("content %q: expected error mentioning %q, got %v", test.content, test.message, err)
		}
	}
}

func TestLoadOrDefault(t *testing.T) {
	config, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil { t.Fatal(err) }
	if config.AppName != Default().AppName { t.Fatalf("expected defaults, got %+v", config) }

	_, err = LoadOrDefault(writeConfig(t, "fps: -3\n"))
	if err == nil { t.Fatal("invalid files must still fail") }
}

func TestFontLibrary(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "copy.ttf"), goregular.TTF, 0o644)
	if err != nil { t.Fatal(err) }

	config := Default()
	base, err := config.FontLibrary()
	if err != nil { t.Fatal(err) }
	config.FontDirs = []string{ dir }
	extended, err := config.FontLibrary()
	if err != nil { t.Fatal(err) }
	if extended.Len() != base.Len() { t.Fatalf("duplicated fonts must be skipped") }

	config.FontDirs = []string{ filepath.Join(dir, "missing") }
	_, err = config.FontLibrary()
	if err == nil { t.Fatal("expected error for missing font dir") }
}
