// Package tuichrome provides terminal window decorations that can be
// embedded in other Bubble Tea applications or run as a standalone TUI.
//
// The chrome draws a title bar with close, maximize/restore and minimize
// buttons, a framed content area and an invisible resize border. It never
// moves a window itself: it sends commands to its host, and the Model in
// this package is a ready-made host for a single window.
//
// # Basic Usage
//
// Create a model with default options:
//
//	model := tuichrome.New()
//	p := tea.NewProgram(model, tuichrome.ProgramOptions()...)
//	if _, err := p.Run(); err != nil {
//		log.Fatal(err)
//	}
//
// # Custom Configuration
//
// Use options to customize the window:
//
//	model := tuichrome.New(
//		tuichrome.WithTheme("dracula"),
//		tuichrome.WithTitle("Notes"),
//		tuichrome.WithMaximize(false),
//		tuichrome.WithContent(func(ctx *tuichrome.Context) {
//			// draw into ctx.Rect() with ctx.Painter()
//		}),
//	)
//
// # Bringing Your Own Host
//
// Window, TitleBar and ResizeZones are usable without the Model. Build a
// Context per frame, call Window.Show and drain the Queue for the commands
// the chrome sent.
package tuichrome

import (
	"io"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/tuichrome/internal/app"
	"github.com/Gaurav-Gosain/tuichrome/internal/chrome"
	"github.com/Gaurav-Gosain/tuichrome/internal/config"
	"github.com/Gaurav-Gosain/tuichrome/internal/host"
	"github.com/Gaurav-Gosain/tuichrome/internal/ui"
)

// Model is the single-window host that implements tea.Model.
type Model = app.Desktop

// Chrome building blocks for custom hosts.
type (
	Window           = chrome.Window
	WindowResponse   = chrome.WindowResponse
	Layout           = chrome.Layout
	TitleBar         = chrome.TitleBar
	TitleBarResponse = chrome.TitleBarResponse
	Button           = chrome.Button
	Zone             = chrome.Zone
	Zones            = chrome.Zones

	Context  = ui.Context
	Painter  = ui.Painter
	Pointer  = ui.Pointer
	Viewport = ui.Viewport

	Command   = host.Command
	Queue     = host.Queue
	Direction = host.Direction
)

// ResizeZones splits a window border into its eight resize hit-rectangles.
var ResizeZones = chrome.ResizeZones

// Options configures a tuichrome model.
type Options struct {
	// Theme is the color theme name (e.g., "dracula", "nord", "tokyonight").
	// Leave empty to use the built-in dark palette.
	Theme string

	// Title is shown in the title bar and the dock.
	Title string

	// Maximize offers the maximize/restore button.
	Maximize bool

	// Resizable enables the resize border.
	Resizable bool

	// ASCIIOnly uses ASCII characters instead of Nerd Font icons.
	ASCIIOnly bool

	// PointerShapes lets the host ask the terminal for resize pointers.
	PointerShapes bool

	// PointerOut receives pointer shape requests, usually /dev/tty.
	PointerOut io.Writer

	// WindowWidth and WindowHeight are the restored window size in cells.
	// Zero uses the user config.
	WindowWidth  int
	WindowHeight int

	// Width is the initial terminal width (set automatically if 0).
	Width int

	// Height is the initial terminal height (set automatically if 0).
	Height int

	// Content draws inside the window frame.
	Content func(*Context)

	// UserConfig is a custom user configuration. If nil, the config file
	// is loaded.
	UserConfig *config.UserConfig
}

// Option is a functional option for configuring tuichrome.
type Option func(*Options)

// WithTheme sets the color theme.
func WithTheme(name string) Option {
	return func(o *Options) {
		o.Theme = name
	}
}

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(o *Options) {
		o.Title = title
	}
}

// WithMaximize shows or hides the maximize/restore button.
func WithMaximize(enabled bool) Option {
	return func(o *Options) {
		o.Maximize = enabled
	}
}

// WithResizable enables or disables the resize border.
func WithResizable(enabled bool) Option {
	return func(o *Options) {
		o.Resizable = enabled
	}
}

// WithASCIIOnly enables ASCII-only mode (no Nerd Font icons).
func WithASCIIOnly(enabled bool) Option {
	return func(o *Options) {
		o.ASCIIOnly = enabled
	}
}

// WithPointerShapes sends pointer shape requests to w. A nil w turns them
// off.
func WithPointerShapes(w io.Writer) Option {
	return func(o *Options) {
		o.PointerShapes = w != nil
		o.PointerOut = w
	}
}

// WithWindowSize sets the restored window size in cells.
func WithWindowSize(width, height int) Option {
	return func(o *Options) {
		o.WindowWidth = width
		o.WindowHeight = height
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(o *Options) {
		o.Width = width
		o.Height = height
	}
}

// WithContent sets the function that draws inside the window.
func WithContent(content func(*Context)) Option {
	return func(o *Options) {
		o.Content = content
	}
}

// WithUserConfig sets a custom user configuration.
func WithUserConfig(cfg *config.UserConfig) Option {
	return func(o *Options) {
		o.UserConfig = cfg
	}
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{
		Maximize:      true,
		Resizable:     true,
		PointerShapes: true,
	}
}

// New creates a new tuichrome model with the given options.
func New(opts ...Option) *Model {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return newModel(options)
}

func newModel(options Options) *Model {
	userConfig := options.UserConfig
	if userConfig == nil {
		var err error
		userConfig, _, err = config.LoadUserConfig()
		if err != nil {
			userConfig = config.DefaultConfig()
		}
	}

	settings := config.ApplyOverrides(config.Overrides{
		ASCIIOnly:      options.ASCIIOnly,
		NoPointerShape: !options.PointerShapes,
		Title:          options.Title,
		NoMaximize:     !options.Maximize,
		NoResize:       !options.Resizable,
		ThemeName:      options.Theme,
	}, userConfig)

	width, height := settings.Width, settings.Height
	if options.WindowWidth > 0 {
		width = options.WindowWidth
	}
	if options.WindowHeight > 0 {
		height = options.WindowHeight
	}

	return app.NewDesktop(app.Options{
		Title:           settings.Title,
		Width:           width,
		Height:          height,
		Maximize:        settings.Maximize,
		Resizable:       settings.Resizable,
		Content:         options.Content,
		KeybindRegistry: config.NewKeybindRegistry(userConfig),
		PointerOut:      options.PointerOut,
		ScreenWidth:     options.Width,
		ScreenHeight:    options.Height,
	})
}

// ProgramOptions returns recommended tea.ProgramOption values for running
// the model:
//
//	model := tuichrome.New()
//	p := tea.NewProgram(model, tuichrome.ProgramOptions()...)
func ProgramOptions() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithFPS(config.NormalFPS),
	}
}

// Config re-exports the config package for customization.
// This allows users to access configuration types without importing internal packages.
var Config = struct {
	// LoadUserConfig loads the user's configuration file.
	LoadUserConfig func() (*config.UserConfig, config.ValidationResult, error)
	// DefaultConfig returns the default configuration.
	DefaultConfig func() *config.UserConfig
	// GetConfigPath returns the path to the configuration file.
	GetConfigPath func() (string, error)
}{
	LoadUserConfig: config.LoadUserConfig,
	DefaultConfig:  config.DefaultConfig,
	GetConfigPath:  config.GetConfigPath,
}
