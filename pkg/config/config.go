// Package config loads the optional flux.yaml file that sits next to an
// application's go.mod and resolves it into window and debug settings.
package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/flux-ui/flux/pkg/app"
	"github.com/flux-ui/flux/pkg/core"
	"github.com/flux-ui/flux/pkg/errors"
	"github.com/flux-ui/flux/pkg/graphics"
	"github.com/flux-ui/flux/pkg/text"
)

// FileName is the name of the configuration file.
const FileName = "flux.yaml"

// FrameworkVersion is checked against the version a configuration requires.
const FrameworkVersion = "v0.4.0"

// Config represents the optional flux.yaml configuration.
type Config struct {
	// Version is the minimum framework version the application needs.
	Version string       `yaml:"version,omitempty"`
	Window  WindowConfig `yaml:"window"`
	Debug   DebugConfig  `yaml:"debug"`
	Text    TextConfig   `yaml:"text"`
}

// WindowConfig describes the initial window.
type WindowConfig struct {
	Title      string  `yaml:"title,omitempty"`
	Width      float64 `yaml:"width,omitempty"`
	Height     float64 `yaml:"height,omitempty"`
	Background string  `yaml:"background,omitempty"`
	// Color is the clear color as "#rrggbb" or "#rrggbbaa".
	Color        string `yaml:"color,omitempty"`
	ShowTitle    *bool  `yaml:"show_title,omitempty"`
	ShowButtons  *bool  `yaml:"show_buttons,omitempty"`
	ShowTitlebar *bool  `yaml:"show_titlebar,omitempty"`
}

// DebugConfig contains diagnostics settings.
type DebugConfig struct {
	Level    string `yaml:"level,omitempty"`
	DumpTree bool   `yaml:"dump_tree,omitempty"`
}

// TextConfig contains text defaults.
type TextConfig struct {
	FontSize float64 `yaml:"font_size,omitempty"`
}

// Resolved contains configuration values with defaults applied.
type Resolved struct {
	Root       string
	ModulePath string
	Window     app.WindowOptions
	ClearColor graphics.Color
	LogLevel   slog.Level
	DumpTree   bool
	FontSize   float64
}

func configError(op string, err error) error {
	return &errors.FluxError{Op: op, Kind: errors.KindConfig, Err: err}
}

// Parse decodes a flux.yaml document. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, configError("config.Parse", fmt.Errorf("failed to parse %s: %w", FileName, err))
	}
	return &cfg, nil
}

// LoadOptional reads flux.yaml from dir if present. A missing file yields
// an empty Config.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, configError("config.LoadOptional", fmt.Errorf("failed to read %s: %w", FileName, err))
	}
	return Parse(data)
}

// Resolve loads flux.yaml from dir (if present) and applies defaults. The
// window title defaults to the last element of the module path when dir
// holds a go.mod.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	modulePath := modulePath(dir)
	r, err := cfg.Resolve(defaultTitle(modulePath))
	if err != nil {
		return nil, err
	}
	r.Root = dir
	r.ModulePath = modulePath
	core.Logger().Info("config loaded",
		"root", dir,
		"title", r.Window.Title,
		"background", r.Window.Background.String(),
		"log_level", r.LogLevel.String())
	return r, nil
}

// Resolve applies defaults to c. title is used when the file sets none.
func (c *Config) Resolve(title string) (*Resolved, error) {
	if err := CheckVersion(c.Version); err != nil {
		return nil, err
	}

	opts := app.DefaultWindowOptions()
	if t := strings.TrimSpace(c.Window.Title); t != "" {
		opts.Title = t
	} else if title != "" {
		opts.Title = title
	}
	if c.Window.Width < 0 || c.Window.Height < 0 {
		return nil, configError("config.Resolve", fmt.Errorf("window size must not be negative (got %vx%v)", c.Window.Width, c.Window.Height))
	}
	if c.Window.Width > 0 {
		opts.Size.Width = c.Window.Width
	}
	if c.Window.Height > 0 {
		opts.Size.Height = c.Window.Height
	}
	background, err := app.ParseBackground(c.Window.Background)
	if err != nil {
		return nil, configError("config.Resolve", err)
	}
	opts.Background = background
	opts.ShowTitle = boolOr(c.Window.ShowTitle, opts.ShowTitle)
	opts.ShowButtons = boolOr(c.Window.ShowButtons, opts.ShowButtons)
	opts.ShowTitlebar = boolOr(c.Window.ShowTitlebar, opts.ShowTitlebar)

	clearColor := graphics.ColorWhite
	if background.Transparent() {
		clearColor = graphics.ColorTransparent
	}
	if s := strings.TrimSpace(c.Window.Color); s != "" {
		if clearColor, err = graphics.Hex(s); err != nil {
			return nil, configError("config.Resolve", fmt.Errorf("window.color: %w", err))
		}
	}

	level := slog.LevelWarn
	if s := strings.TrimSpace(c.Debug.Level); s != "" {
		if err := level.UnmarshalText([]byte(s)); err != nil {
			return nil, configError("config.Resolve", fmt.Errorf("debug.level: %w", err))
		}
	}

	fontSize := float64(text.DefaultFontSize)
	if c.Text.FontSize < 0 {
		return nil, configError("config.Resolve", fmt.Errorf("text.font_size must be positive (got %v)", c.Text.FontSize))
	}
	if c.Text.FontSize > 0 {
		fontSize = c.Text.FontSize
	}

	return &Resolved{
		Window:     opts,
		ClearColor: clearColor,
		LogLevel:   level,
		DumpTree:   c.Debug.DumpTree,
		FontSize:   fontSize,
	}, nil
}

// CheckVersion fails when minimum is newer than FrameworkVersion. An empty
// minimum always passes; the leading "v" is optional.
func CheckVersion(minimum string) error {
	minimum = strings.TrimSpace(minimum)
	if minimum == "" {
		return nil
	}
	if !strings.HasPrefix(minimum, "v") {
		minimum = "v" + minimum
	}
	if !semver.IsValid(minimum) {
		return configError("config.CheckVersion", fmt.Errorf("version %q is not a semantic version", minimum))
	}
	if semver.Compare(FrameworkVersion, minimum) < 0 {
		return configError("config.CheckVersion", fmt.Errorf("requires flux %s or newer (have %s)", semver.Canonical(minimum), FrameworkVersion))
	}
	return nil
}

// FindProjectRoot walks up from dir to the nearest directory holding go.mod.
func FindProjectRoot(dir string) (string, error) {
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", configError("config.FindProjectRoot", fmt.Errorf("not in a Go module (no go.mod found)"))
		}
		dir = parent
	}
}

func modulePath(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return ""
	}
	return modfile.ModulePath(data)
}

func defaultTitle(modulePath string) string {
	if modulePath == "" {
		return ""
	}
	name := modulePath
	if prefix, _, ok := module.SplitPathVersion(modulePath); ok {
		name = prefix
	}
	parts := strings.Split(name, "/")
	return parts[len(parts)-1]
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

// HandlerOptions returns slog handler options for the resolved level.
func (r *Resolved) HandlerOptions() *slog.HandlerOptions {
	return &slog.HandlerOptions{Level: r.LogLevel}
}
