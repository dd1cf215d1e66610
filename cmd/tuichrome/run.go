package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/Gaurav-Gosain/tuichrome/internal/app"
	"github.com/Gaurav-Gosain/tuichrome/internal/chrome"
	"github.com/Gaurav-Gosain/tuichrome/internal/config"
	"github.com/Gaurav-Gosain/tuichrome/internal/logging"
	"github.com/Gaurav-Gosain/tuichrome/internal/theme"
	"github.com/Gaurav-Gosain/tuichrome/internal/ui"
	"github.com/charmbracelet/colorprofile"
	uv "github.com/charmbracelet/ultraviolet"
	"golang.org/x/term"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func runLocal() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("tuichrome requires an interactive terminal (stdin/stdout must be TTYs)")
	}

	if debugMode {
		path, err := logging.Enable()
		if err != nil {
			return err
		}
		defer func() { _ = logging.Close() }()
		fmt.Println("Debug log:", path)
	}

	userConfig, result, err := config.LoadUserConfig()
	if err != nil {
		logging.Warn("failed to load config, using defaults", "err", err)
		userConfig = config.DefaultConfig()
	}
	for _, issue := range result.Warnings {
		logging.Warn("config value replaced by default", "field", issue.Field, "key", issue.Key, "msg", issue.Message)
	}

	// Terminals without color or a tty get the ASCII glyph set.
	profile := colorprofile.Detect(os.Stdout, os.Environ())
	ascii := asciiOnly || profile == colorprofile.Ascii || profile == colorprofile.NoTTY
	logging.Debug("color profile", "profile", profile.String(), "ascii", ascii)

	settings := config.ApplyOverrides(config.Overrides{
		ASCIIOnly:      ascii,
		NoPointerShape: noPointerShape,
		Title:          windowTitle,
		NoMaximize:     noMaximize,
		NoResize:       noResize,
		ThemeName:      themeName,
	}, userConfig)

	if path, err := config.GetConfigPath(); err == nil {
		logging.Debug("configuration", "path", path)
	}

	// Pointer shape requests bypass the renderer.
	var pointerOut io.Writer
	if tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0); err == nil {
		defer func() { _ = tty.Close() }()
		pointerOut = tty
	} else {
		logging.Warn("pointer shapes disabled", "err", err)
	}

	desktop := app.NewDesktop(app.Options{
		Title:           settings.Title,
		Width:           settings.Width,
		Height:          settings.Height,
		Maximize:        settings.Maximize,
		Resizable:       settings.Resizable,
		Content:         demoContent,
		KeybindRegistry: config.NewKeybindRegistry(userConfig),
		PointerOut:      pointerOut,
	})

	p := tea.NewProgram(desktop, tea.WithFPS(config.NormalFPS))
	finalModel, err := p.Run()

	if final, ok := finalModel.(*app.Desktop); ok {
		final.Cleanup()
	}

	if err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	return nil
}

// demoContent fills the window with a short usage note.
func demoContent(ctx *ui.Context) {
	lines := []string{
		"Drag the title bar to move this window.",
		"Drag an edge or a corner to resize it.",
		"The buttons close, maximize and minimize it.",
		"",
		"Press esc while dragging to put the window back.",
	}
	r := ctx.Rect()
	p := ctx.Painter()
	fg := ctx.Style().Visuals.Text
	for i, line := range lines {
		y := r.Min.Y + 1 + i
		if y >= r.Max.Y {
			break
		}
		if line != "" {
			p.Text(uv.Pos(r.Min.X+1, y), ui.AlignLeftTop, line, 1, fg)
		}
	}
}

func printThemes() error {
	if err := theme.Initialize("default"); err != nil {
		return fmt.Errorf("failed to initialize themes: %w", err)
	}
	for _, name := range theme.Names() {
		fmt.Println(name)
	}
	return nil
}

func printConfigPath() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	fmt.Println(path)
	return nil
}

func resetConfigToDefaults() error {
	path, err := config.ResetConfig()
	if err != nil {
		return err
	}
	fmt.Println("Configuration reset to defaults:", path)
	return nil
}

func checkConfig() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	_, result, err := config.LoadUserConfig()
	if err != nil {
		return err
	}
	fmt.Println("Configuration:", path)
	for _, issue := range result.Errors {
		fmt.Printf("  error: %s.%s: %s\n", issue.Field, issue.Key, issue.Message)
	}
	for _, issue := range result.Warnings {
		fmt.Printf("  warning: %s.%s: %s\n", issue.Field, issue.Key, issue.Message)
	}
	if result.HasErrors() {
		return errors.New("configuration has errors")
	}
	if !result.HasWarnings() {
		fmt.Println("  ok")
	}
	return nil
}

func listKeybindings() error {
	userConfig, _, err := config.LoadUserConfig()
	if err != nil {
		userConfig = config.DefaultConfig()
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Action", "Keys").
		StyleFunc(tableStyle)
	for _, kb := range config.GetKeybindings(config.NewKeybindRegistry(userConfig)) {
		t.Row(kb.Description, kb.Key)
	}
	fmt.Println(t)
	return nil
}

// printZones writes the resize zones of a width×height window at the
// origin as a table.
func printZones(w io.Writer, width, height, thickness int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", width, height)
	}
	if thickness < 0 {
		return fmt.Errorf("thickness must not be negative, got %d", thickness)
	}

	zones := chrome.ResizeZones(ui.Rect(0, 0, width, height), thickness)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Zone", "Min", "Max", "Size", "Cursor").
		StyleFunc(tableStyle)
	for _, z := range zones.All() {
		size := "empty"
		if !ui.Empty(z.Rect) {
			size = strconv.Itoa(ui.Width(z.Rect)) + "x" + strconv.Itoa(ui.Height(z.Rect))
		}
		t.Row(
			z.Dir.String(),
			fmt.Sprintf("%d,%d", z.Rect.Min.X, z.Rect.Min.Y),
			fmt.Sprintf("%d,%d", z.Rect.Max.X, z.Rect.Max.Y),
			size,
			z.Cursor.String(),
		)
	}
	if _, err := fmt.Fprintln(w, t); err != nil {
		return err
	}

	hot := chrome.TopHotZones(ui.Rect(0, 0, width, height), thickness)
	_, err := fmt.Fprintf(w, "Title bar drags are held back in %s %s %s\n",
		formatRect(hot[0]), formatRect(hot[1]), formatRect(hot[2]))
	return err
}

func formatRect(r uv.Rectangle) string {
	return fmt.Sprintf("[%d,%d %d,%d)", r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}

func tableStyle(row, _ int) lipgloss.Style {
	if row == table.HeaderRow {
		return headerStyle
	}
	return cellStyle
}
