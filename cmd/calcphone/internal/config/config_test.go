package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolveDefaultsWithoutFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "pocket")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want := Resolved{
		Root:        dir,
		AppName:     "pocket",
		AppID:       "com.example.pocket",
		Version:     DefaultVersion,
		ErrorMarker: "Error",
	}
	if *got != want {
		t.Errorf("Resolve = %+v, want %+v", *got, want)
	}
}

func TestResolveFromGoMod(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/Team/my-calc/v2\n\ngo 1.24\n")

	got, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.ModulePath != "example.com/Team/my-calc/v2" {
		t.Errorf("ModulePath = %q", got.ModulePath)
	}
	if got.AppName != "my-calc" {
		t.Errorf("AppName = %q, want %q", got.AppName, "my-calc")
	}
	if want := "com.example.team.mycalc.v2"; got.AppID != want {
		t.Errorf("AppID = %q, want %q", got.AppID, want)
	}
}

func TestResolveFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "custom.yaml", `app:
  name: calcphone
  id: com.example.calcphone
  version: "1.0"
engine:
  error_marker: Hiba
`)

	got, err := ResolveFile(path)
	if err != nil {
		t.Fatalf("ResolveFile: %v", err)
	}
	if got.AppName != "calcphone" || got.AppID != "com.example.calcphone" || got.Version != "1.0" {
		t.Errorf("app = %+v", got)
	}
	if got.ErrorMarker != "Hiba" {
		t.Errorf("ErrorMarker = %q, want %q", got.ErrorMarker, "Hiba")
	}
	if opts := got.EngineOptions(); opts.ErrorMarker != "Hiba" {
		t.Errorf("EngineOptions().ErrorMarker = %q", opts.ErrorMarker)
	}
	if got.Root != dir {
		t.Errorf("Root = %q, want %q", got.Root, dir)
	}
}

func TestResolveFileMissing(t *testing.T) {
	_, err := ResolveFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ResolveFile error = %v, want not-exist", err)
	}
}

func TestLoadOptionalEmptyFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, "")
	cfg, err := LoadOptional(dir)
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if *cfg != (Config{}) {
		t.Errorf("cfg = %+v, want zero", *cfg)
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad yaml", "app: [", "failed to parse"},
		{"unknown key", "engine:\n  precision: 3\n", "failed to parse"},
		{"numeric marker", "engine:\n  error_marker: \"0\"\n", "engine.error_marker"},
		{"bad version", "app:\n  version: one\n", "app.version"},
		{"id without dot", "app:\n  id: calc\n", "at least one '.'"},
		{"id empty segment", "app:\n  id: com..calc\n", "empty segment"},
		{"id leading digit", "app:\n  id: com.1calc\n", "cannot start with a digit"},
		{"id uppercase", "app:\n  id: com.Calc\n", "invalid character"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, FileName, tt.content)
			_, err := Resolve(dir)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Resolve error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestVersionAcceptsPrefix(t *testing.T) {
	for _, v := range []string{"1", "1.0", "v2.3.4", "1.0.0-rc1"} {
		if _, err := ResolveConfig(t.TempDir(), &Config{App: AppConfig{Version: v}}); err != nil {
			t.Errorf("version %q: %v", v, err)
		}
	}
}

func TestSanitizeSegment(t *testing.T) {
	tests := []struct {
		in         string
		allowDigit bool
		want       string
	}{
		{"Calc_Phone", true, "calcphone"},
		{"my-app", true, "myapp"},
		{"9lives", false, "a9lives"},
		{"9lives", true, "9lives"},
		{"---", true, "app"},
	}
	for _, tt := range tests {
		if got := sanitizeSegment(tt.in, tt.allowDigit); got != tt.want {
			t.Errorf("sanitizeSegment(%q, %v) = %q, want %q", tt.in, tt.allowDigit, got, tt.want)
		}
	}
}
