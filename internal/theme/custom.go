package theme

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Gaurav-Gosain/tuichrome/internal/logging"
	"github.com/adrg/xdg"
	tint "github.com/lrstanley/bubbletint/v2"
)

// ChromeColors are optional per-theme colors for the window chrome. Unset
// fields fall back to colors derived from the theme palette.
type ChromeColors struct {
	Frame *tint.Color `json:"frame"`
	Title *tint.Color `json:"title"`
	Close *tint.Color `json:"close"`
}

// chromeSection is the optional "chrome" object next to the palette.
type chromeSection struct {
	Chrome *ChromeColors `json:"chrome"`
}

var (
	chromeMu        sync.RWMutex
	chromeOverrides = map[string]ChromeColors{}
)

// chromeFor returns the chrome colors registered for a theme ID.
func chromeFor(id string) (ChromeColors, bool) {
	chromeMu.RLock()
	defer chromeMu.RUnlock()
	c, ok := chromeOverrides[id]
	return c, ok
}

// GetThemesDir returns the path to the custom themes directory (~/.config/tuichrome/themes/).
// Creates the directory if it doesn't exist.
func GetThemesDir() (string, error) {
	keepFile, err := xdg.ConfigFile("tuichrome/themes/.keep")
	if err != nil {
		return "", fmt.Errorf("failed to get themes directory: %w", err)
	}
	return filepath.Dir(keepFile), nil
}

// LoadCustomThemes registers every *.json theme in themesDir with bubbletint
// and returns the loaded IDs. Bad files are logged and skipped.
func LoadCustomThemes(themesDir string) ([]string, error) {
	entries, err := os.ReadDir(themesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read themes directory: %w", err)
	}

	var loaded []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".json") {
			continue
		}

		t, chrome, err := LoadCustomThemeFile(filepath.Join(themesDir, entry.Name()))
		if err != nil {
			logging.Warn("skipping custom theme", "file", entry.Name(), "err", err)
			continue
		}

		tint.Register(t)
		chromeMu.Lock()
		if chrome != nil {
			chromeOverrides[t.ID] = *chrome
		} else {
			delete(chromeOverrides, t.ID)
		}
		chromeMu.Unlock()
		loaded = append(loaded, t.ID)
	}

	return loaded, nil
}

// LoadCustomThemeFile reads a theme JSON file. The ID defaults to the file
// name and missing palette colors are filled with xterm defaults.
func LoadCustomThemeFile(path string) (*tint.Tint, *ChromeColors, error) {
	// #nosec G304 - path is from user's config directory, reading custom themes is intentional
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	var t tint.Tint
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, nil, fmt.Errorf("failed to parse theme JSON: %w", err)
	}
	var extra chromeSection
	if err := json.Unmarshal(data, &extra); err != nil {
		return nil, nil, fmt.Errorf("failed to parse chrome colors: %w", err)
	}

	if t.ID == "" {
		base := filepath.Base(path)
		t.ID = strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
	}
	if t.ID == "" {
		return nil, nil, fmt.Errorf("theme has no ID")
	}
	if t.DisplayName == "" {
		t.DisplayName = t.ID
	}

	fillDefaults(&t)
	return &t, extra.Chrome, nil
}

// fillDefaults fills the palette colors the chrome reads.
func fillDefaults(t *tint.Tint) {
	if t.Fg == nil {
		t.Fg = tint.FromHex("#e5e5e5")
	}
	if t.Bg == nil {
		t.Bg = tint.FromHex("#000000")
	}
	if t.Black == nil {
		t.Black = tint.FromHex("#000000")
	}
	if t.Red == nil {
		t.Red = tint.FromHex("#cd0000")
	}
	if t.White == nil {
		t.White = tint.FromHex("#e5e5e5")
	}
	if t.BrightBlack == nil {
		t.BrightBlack = tint.FromHex("#7f7f7f")
	}
	if t.BrightWhite == nil {
		t.BrightWhite = copyColor(t.White)
	}
	if t.Cursor == nil {
		t.Cursor = copyColor(t.Fg)
	}
}

// copyColor creates a copy of a tint.Color.
func copyColor(c *tint.Color) *tint.Color {
	if c == nil {
		return nil
	}
	dup := *c
	return &dup
}
