package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// configRelPath is the config file location relative to the XDG config dirs.
const configRelPath = "tuichrome/config.toml"

// UserConfig represents the user's custom configuration
type UserConfig struct {
	Appearance  AppearanceConfig  `toml:"appearance"`
	Window      WindowConfig      `toml:"window"`
	Keybindings KeybindingsConfig `toml:"keybindings"`
}

// AppearanceConfig holds appearance-related settings
type AppearanceConfig struct {
	Theme          string `toml:"theme"`            // Color theme name (e.g., dracula, nord, my-custom-theme)
	ASCIIOnly      bool   `toml:"ascii_only"`       // Use ASCII icons instead of Nerd Font glyphs
	PointerShapes  *bool  `toml:"pointer_shapes"`   // Ask the terminal for resize cursors (default: true)
	TooltipDelayMS int    `toml:"tooltip_delay_ms"` // Hover delay before tooltips appear (default: 500, max: 10000)
}

// WindowConfig holds the demo window settings
type WindowConfig struct {
	Title          string `toml:"title"`           // Title shown in the title bar
	Width          int    `toml:"width"`           // Initial width in cells
	Height         int    `toml:"height"`          // Initial height in cells
	MaximizeButton *bool  `toml:"maximize_button"` // Offer the maximize/restore button (default: true)
	Resizable      *bool  `toml:"resizable"`       // Enable edge and corner resize zones (default: true)
}

// KeybindingsConfig maps host actions to keys
type KeybindingsConfig struct {
	Actions map[string][]string `toml:"actions"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *UserConfig {
	yes := true
	return &UserConfig{
		Appearance: AppearanceConfig{
			Theme:          "",
			PointerShapes:  &yes,
			TooltipDelayMS: int(DefaultTooltipDelay / time.Millisecond),
		},
		Window: WindowConfig{
			Title:          "tuichrome",
			Width:          DefaultWindowWidth,
			Height:         DefaultWindowHeight,
			MaximizeButton: &yes,
			Resizable:      &yes,
		},
		Keybindings: KeybindingsConfig{
			Actions: getDefaultActionKeybinds(),
		},
	}
}

// MaximizeEnabled reports whether the maximize button is offered.
func (c *UserConfig) MaximizeEnabled() bool {
	return c.Window.MaximizeButton == nil || *c.Window.MaximizeButton
}

// ResizeEnabled reports whether the resize zones are active.
func (c *UserConfig) ResizeEnabled() bool {
	return c.Window.Resizable == nil || *c.Window.Resizable
}

// ValidationIssue is one problem found in a config file
type ValidationIssue struct {
	Field   string
	Key     string
	Message string
}

// ValidationResult collects the problems found by ValidateConfig
type ValidationResult struct {
	Errors   []ValidationIssue
	Warnings []ValidationIssue
}

// HasErrors reports whether the config cannot be used
func (v ValidationResult) HasErrors() bool { return len(v.Errors) > 0 }

// HasWarnings reports whether some values were replaced by defaults
func (v ValidationResult) HasWarnings() bool { return len(v.Warnings) > 0 }

// LoadUserConfig loads the user configuration from XDG config directory
func LoadUserConfig() (*UserConfig, ValidationResult, error) {
	// Try to find existing config file
	configPath, err := xdg.SearchConfigFile(configRelPath)
	if err != nil {
		// Config doesn't exist, create default
		path, err := xdg.ConfigFile(configRelPath)
		if err != nil {
			return nil, ValidationResult{}, fmt.Errorf("failed to get config path: %w", err)
		}
		cfg, err := createDefaultConfig(path)
		return cfg, ValidationResult{}, err
	}
	return loadConfigFile(configPath)
}

// loadConfigFile reads, fills and validates the config at path
func loadConfigFile(path string) (*UserConfig, ValidationResult, error) {
	// #nosec G304 - path is from XDG search, reading user config is intentional
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ValidationResult{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg UserConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, ValidationResult{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	defaultCfg := DefaultConfig()
	validation := ValidateConfig(&cfg)
	fillMissingAppearance(&cfg, defaultCfg)
	fillMissingWindow(&cfg, defaultCfg)
	fillMissingKeybinds(&cfg, defaultCfg)

	if validation.HasErrors() {
		return nil, validation, fmt.Errorf("configuration has %d error(s), please fix and restart", len(validation.Errors))
	}
	return &cfg, validation, nil
}

// ValidateConfig checks values the defaults cannot repair.
// Out-of-range numbers are warnings; they are clamped or replaced afterwards.
func ValidateConfig(cfg *UserConfig) ValidationResult {
	var v ValidationResult

	if d := cfg.Appearance.TooltipDelayMS; d < 0 || d > 10000 {
		v.Warnings = append(v.Warnings, ValidationIssue{
			Field:   "appearance",
			Key:     "tooltip_delay_ms",
			Message: fmt.Sprintf("%d is outside 0..10000, using the default", d),
		})
	}
	if w := cfg.Window.Width; w != 0 && w < MinWindowWidth {
		v.Warnings = append(v.Warnings, ValidationIssue{
			Field:   "window",
			Key:     "width",
			Message: fmt.Sprintf("%d is below the minimum of %d", w, MinWindowWidth),
		})
	}
	if h := cfg.Window.Height; h != 0 && h < MinWindowHeight {
		v.Warnings = append(v.Warnings, ValidationIssue{
			Field:   "window",
			Key:     "height",
			Message: fmt.Sprintf("%d is below the minimum of %d", h, MinWindowHeight),
		})
	}
	for action, keys := range cfg.Keybindings.Actions {
		if !IsKnownAction(action) {
			v.Errors = append(v.Errors, ValidationIssue{
				Field:   "keybindings.actions",
				Key:     action,
				Message: "unknown action",
			})
			continue
		}
		for _, k := range keys {
			if strings.TrimSpace(k) == "" {
				v.Errors = append(v.Errors, ValidationIssue{
					Field:   "keybindings.actions",
					Key:     action,
					Message: "empty key",
				})
			}
		}
	}
	return v
}

// createDefaultConfig writes a default config file to path
func createDefaultConfig(path string) (*UserConfig, error) {
	cfg := DefaultConfig()

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# tuichrome Configuration File\n")
	sb.WriteString("#\n")
	sb.WriteString("# Configuration location: " + path + "\n\n")

	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# APPEARANCE SETTINGS\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# theme: Color theme name (e.g., dracula, nord, my-custom-theme)\n")
	sb.WriteString("#   CLI flag --theme overrides this. Custom themes: ~/.config/tuichrome/themes/*.json\n")
	sb.WriteString("#   Default: (empty - built-in dark palette)\n")
	sb.WriteString("#\n")
	sb.WriteString("# ascii_only: Use ASCII icons instead of Nerd Font glyphs\n")
	sb.WriteString("#   Default: false\n")
	sb.WriteString("#\n")
	sb.WriteString("# pointer_shapes: Ask the terminal to show resize cursors over the border\n")
	sb.WriteString("#   Default: true\n")
	sb.WriteString("#\n")
	sb.WriteString("# tooltip_delay_ms: Hover delay before button tooltips appear\n")
	sb.WriteString("#   Range: 0 to 10000\n")
	sb.WriteString("#   Default: 500\n")
	sb.WriteString("#\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# WINDOW SETTINGS\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# width/height: Initial window size in cells\n")
	sb.WriteString("# maximize_button: Offer the maximize/restore button\n")
	sb.WriteString("# resizable: Enable edge and corner resize zones\n")
	sb.WriteString("# ============================================================================\n\n")

	if _, err := sb.Write(data); err != nil {
		return nil, fmt.Errorf("failed to write config data: %w", err)
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0600); err != nil {
		return nil, fmt.Errorf("failed to write config file: %w", err)
	}

	return cfg, nil
}

// fillMissingAppearance fills in any missing appearance settings with defaults
func fillMissingAppearance(cfg, defaultCfg *UserConfig) {
	if cfg.Appearance.PointerShapes == nil {
		cfg.Appearance.PointerShapes = defaultCfg.Appearance.PointerShapes
	}
	if d := cfg.Appearance.TooltipDelayMS; d <= 0 || d > 10000 {
		cfg.Appearance.TooltipDelayMS = defaultCfg.Appearance.TooltipDelayMS
	}
}

// fillMissingWindow fills in any missing window settings with defaults
func fillMissingWindow(cfg, defaultCfg *UserConfig) {
	if cfg.Window.Title == "" {
		cfg.Window.Title = defaultCfg.Window.Title
	}
	if cfg.Window.Width == 0 {
		cfg.Window.Width = defaultCfg.Window.Width
	} else if cfg.Window.Width < MinWindowWidth {
		cfg.Window.Width = MinWindowWidth
	}
	if cfg.Window.Height == 0 {
		cfg.Window.Height = defaultCfg.Window.Height
	} else if cfg.Window.Height < MinWindowHeight {
		cfg.Window.Height = MinWindowHeight
	}
	if cfg.Window.MaximizeButton == nil {
		cfg.Window.MaximizeButton = defaultCfg.Window.MaximizeButton
	}
	if cfg.Window.Resizable == nil {
		cfg.Window.Resizable = defaultCfg.Window.Resizable
	}
}

// fillMissingKeybinds fills in any missing keybindings with defaults
func fillMissingKeybinds(cfg, defaultCfg *UserConfig) {
	if cfg.Keybindings.Actions == nil {
		cfg.Keybindings.Actions = make(map[string][]string)
	}
	fillMapDefaults(cfg.Keybindings.Actions, defaultCfg.Keybindings.Actions)
}

func fillMapDefaults(target, defaults map[string][]string) {
	for k, v := range defaults {
		if _, exists := target[k]; !exists {
			target[k] = v
		}
	}
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	path, err := xdg.SearchConfigFile(configRelPath)
	if err != nil {
		// Return where it would be created
		return xdg.ConfigFile(configRelPath)
	}
	return path, nil
}

// ResetConfig overwrites the config file with the defaults
func ResetConfig() (string, error) {
	path, err := GetConfigPath()
	if err != nil {
		return "", fmt.Errorf("failed to get config path: %w", err)
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("failed to remove config file: %w", err)
	}
	if _, err := createDefaultConfig(path); err != nil {
		return "", err
	}
	return path, nil
}
