// Package main implements tuichrome, a terminal demo of client-side window
// decorations. It hosts one decorated window on a small desktop: drag it by
// its title bar, resize it from its border, and use the close, maximize and
// minimize buttons.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// Global flags
var (
	debugMode      bool
	asciiOnly      bool
	themeName      string
	listThemes     bool
	windowTitle    string
	noMaximize     bool
	noResize       bool
	noPointerShape bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tuichrome",
		Short: "Client-side window decorations in the terminal",
		Long: `tuichrome - client-side window decorations

Hosts a single decorated window on a terminal desktop. The window draws its
own title bar, buttons and resize border; the desktop moves and resizes it
when the chrome asks.`,
		Example: `  # Run the demo
  tuichrome

  # Run with debug logging
  tuichrome --debug

  # Run with ASCII-only mode (no Nerd Font icons)
  tuichrome --ascii-only

  # Run with a specific theme
  tuichrome --theme dracula

  # List all available themes
  tuichrome --list-themes

  # Print the resize zones of a 60x18 window
  tuichrome zones --width 60 --height 18

  # List all keybindings
  tuichrome keybinds list`,
		Version: version,
		RunE: func(_ *cobra.Command, _ []string) error {
			if listThemes {
				return printThemes()
			}
			return runLocal()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Write a debug log to the XDG state directory")
	rootCmd.PersistentFlags().BoolVar(&asciiOnly, "ascii-only", false, "Use ASCII characters instead of Nerd Font icons")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "Color theme to use (e.g., dracula, nord, tokyonight). Leave empty for the built-in dark palette")
	rootCmd.PersistentFlags().BoolVar(&listThemes, "list-themes", false, "List all available themes and exit")
	rootCmd.Flags().StringVar(&windowTitle, "title", "", "Window title (default: from config)")
	rootCmd.Flags().BoolVar(&noMaximize, "no-maximize", false, "Hide the maximize/restore button")
	rootCmd.Flags().BoolVar(&noResize, "no-resize", false, "Disable the resize border")
	rootCmd.Flags().BoolVar(&noPointerShape, "no-pointer-shape", false, "Do not ask the terminal to change the mouse pointer shape")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage tuichrome configuration",
		Long:  `Manage the tuichrome configuration file`,
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		Long:  `Print the path to the tuichrome configuration file`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return printConfigPath()
		},
	}

	configResetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset configuration to defaults",
		Long: `Reset the tuichrome configuration file to default settings

This overwrites your existing configuration.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return resetConfigToDefaults()
		},
	}

	configCheckCmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the configuration file",
		Long:  `Load the configuration file and report every value that was replaced by its default`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return checkConfig()
		},
	}

	configCmd.AddCommand(configPathCmd, configResetCmd, configCheckCmd)

	keybindsCmd := &cobra.Command{
		Use:     "keybinds",
		Aliases: []string{"keys", "kb"},
		Short:   "View keybinding configuration",
		Long:    `View and inspect tuichrome keybinding configuration`,
	}

	keybindsListCmd := &cobra.Command{
		Use:   "list",
		Short: "List all keybindings",
		Long:  `Display all configured keybindings in a formatted table`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return listKeybindings()
		},
	}

	keybindsCmd.AddCommand(keybindsListCmd)

	var zonesWidth, zonesHeight, zonesThickness int
	zonesCmd := &cobra.Command{
		Use:   "zones",
		Short: "Print the resize zones of a window",
		Long: `Print the eight resize hit-rectangles of a window border

Corners are listed first, then edges, in the order the chrome tests them.
Rectangles are half-open: min is inside, max is not.`,
		Example: `  tuichrome zones --width 60 --height 18
  tuichrome zones --width 3 --height 3 --thickness 2`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return printZones(os.Stdout, zonesWidth, zonesHeight, zonesThickness)
		},
	}
	zonesCmd.Flags().IntVar(&zonesWidth, "width", 60, "Window width in cells")
	zonesCmd.Flags().IntVar(&zonesHeight, "height", 18, "Window height in cells")
	zonesCmd.Flags().IntVar(&zonesThickness, "thickness", 1, "Resize border thickness in cells")

	rootCmd.AddCommand(configCmd, keybindsCmd, zonesCmd)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s\nBy: %s", version, commit, date, builtBy)),
	); err != nil {
		os.Exit(1)
	}
}
