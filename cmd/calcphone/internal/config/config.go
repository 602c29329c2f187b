// Package config loads the optional calcphone.yaml and resolves defaults.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/calcphone/pkg/calc"
)

// FileName is the configuration file looked up in the project directory.
const FileName = "calcphone.yaml"

// DefaultVersion is used when app.version is not set.
const DefaultVersion = "1.0"

// Config represents the optional calcphone.yaml configuration.
type Config struct {
	App    AppConfig    `yaml:"app"`
	Engine EngineConfig `yaml:"engine"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name    string `yaml:"name,omitempty"`
	ID      string `yaml:"id,omitempty"`
	Version string `yaml:"version,omitempty"`
}

// EngineConfig contains calculator engine settings.
type EngineConfig struct {
	ErrorMarker string `yaml:"error_marker,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root        string
	ModulePath  string
	AppName     string
	AppID       string
	Version     string
	ErrorMarker string
}

// EngineOptions returns the engine options described by the configuration.
func (r *Resolved) EngineOptions() calc.Options {
	return calc.Options{ErrorMarker: r.ErrorMarker}
}

// LoadOptional reads calcphone.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}
	return cfg, err
}

// Load reads the configuration file at path. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	var cfg Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return &cfg, nil
}

// Resolve loads calcphone.yaml from dir (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	return ResolveConfig(dir, cfg)
}

// ResolveFile loads an explicit configuration file and resolves defaults
// relative to the directory that contains it.
func ResolveFile(path string) (*Resolved, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	return ResolveConfig(filepath.Dir(path), cfg)
}

// ResolveConfig fills in defaults for cfg and validates the result.
// A go.mod in dir, if any, supplies the default app name and id.
func ResolveConfig(dir string, cfg *Config) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modulePath, dir)
	}

	appID := strings.TrimSpace(cfg.App.ID)
	if appID == "" {
		appID = defaultAppID(modulePath, appName)
	}
	if err := validateAppID(appID); err != nil {
		return nil, err
	}

	version := strings.TrimSpace(cfg.App.Version)
	if version == "" {
		version = DefaultVersion
	}
	if !semver.IsValid("v" + strings.TrimPrefix(version, "v")) {
		return nil, fmt.Errorf("app.version must be a semantic version (got %q)", version)
	}

	marker := cfg.Engine.ErrorMarker
	if marker == "" {
		marker = calc.DefaultErrorMarker
	}
	if !calc.ValidErrorMarker(marker) {
		return nil, fmt.Errorf("engine.error_marker must be non-empty text that is not a number (got %q)", marker)
	}

	return &Resolved{
		Root:        dir,
		ModulePath:  modulePath,
		AppName:     appName,
		AppID:       appID,
		Version:     version,
		ErrorMarker: marker,
	}, nil
}

// modulePath returns the module path declared in dir/go.mod, or "" when
// dir holds no go.mod.
func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modulePath != "" {
		if prefix, _, ok := module.SplitPathVersion(modulePath); ok {
			base = prefix[strings.LastIndex(prefix, "/")+1:]
		}
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "calcphone"
	}
	return base
}

// defaultAppID reverses the module host into a bundle-style id:
// example.com/team/calc becomes com.example.team.calc.
func defaultAppID(modulePath, appName string) string {
	parts := strings.Split(modulePath, "/")
	if len(parts) < 2 || !strings.Contains(parts[0], ".") {
		return "com.example." + sanitizeSegment(appName, true)
	}

	host := strings.Split(parts[0], ".")
	segments := make([]string, 0, len(host)+len(parts)-1)
	for i := len(host) - 1; i >= 0; i-- {
		segments = append(segments, host[i])
	}
	for _, p := range parts[1:] {
		if p != "" {
			segments = append(segments, p)
		}
	}
	for i, segment := range segments {
		segments[i] = sanitizeSegment(segment, i > 0)
	}
	return strings.Join(segments, ".")
}

// sanitizeSegment lowercases segment and keeps only [a-z0-9].
func sanitizeSegment(segment string, allowLeadingDigit bool) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(segment)) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	out := b.String()
	if out == "" {
		out = "app"
	}
	if !allowLeadingDigit && out[0] >= '0' && out[0] <= '9' {
		out = "a" + out
	}
	return out
}

func validateAppID(appID string) error {
	if !strings.Contains(appID, ".") {
		return fmt.Errorf("app.id must contain at least one '.' (got %q)", appID)
	}
	for _, segment := range strings.Split(appID, ".") {
		if segment == "" {
			return fmt.Errorf("app.id contains an empty segment (%q)", appID)
		}
		if segment[0] >= '0' && segment[0] <= '9' {
			return fmt.Errorf("app.id segments cannot start with a digit (%q)", appID)
		}
		if segment[0] == '_' {
			return fmt.Errorf("app.id segments cannot start with '_' (%q)", appID)
		}
		for _, r := range segment {
			if !(r == '_' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9') {
				return fmt.Errorf("app.id contains invalid character %q in %q", r, appID)
			}
		}
	}
	return nil
}
