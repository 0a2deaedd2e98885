package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexamibco/tudu/internal/app"
	"github.com/alexamibco/tudu/internal/model"
	"github.com/alexamibco/tudu/internal/ui"
	"github.com/alexamibco/tudu/internal/ui/theme"
)

var (
	version = "0.1.0"
)

func main() {
	// Subcommand handling
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("tudu v%s\n", version)
			return
		case "help", "-h", "--help":
			printHelp()
			return
		}
	}

	// Parse flags for TUI mode
	themeFlag := flag.String("theme", "", "Theme name (nord, dracula, gruvbox, catppuccin)")
	filterFlag := flag.String("filter", "", "Starting filter (all, active, completed)")
	flag.Parse()

	if err := runTUI(*themeFlag, *filterFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	help := `tudu - A minimal terminal to-do list

Usage:
  tudu                      Start the TUI
  tudu version              Show version
  tudu help                 Show this help

TUI Options:
  --theme <name>    Theme (nord, dracula, gruvbox, catppuccin)
  --filter <name>   Starting filter (all, active, completed)

Keybindings:
  Navigation:   ↑/↓ or j/k    Move cursor
                g/G           Go to top/bottom

  Actions:      a             Add new task
                enter         Edit task
                tab           Toggle done
                d             Delete (with confirm)
                T             Toggle all
                C             Clear completed

  Filters:      1/2/3         All / Active / Completed
                f             Cycle filter

  System:       ctrl+t        Cycle theme
                ?             Help
                q             Quit`

	fmt.Println(help)
}

func runTUI(themeName, filterName string) error {
	if themeName != "" {
		t, ok := theme.ByName(themeName)
		if !ok {
			return fmt.Errorf("unknown theme %q", themeName)
		}
		theme.SetTheme(t)
	}

	application, err := app.New(nil)
	if err != nil {
		return err
	}
	defer application.Close()

	if filterName != "" {
		f, err := model.ParseFilter(filterName)
		if err != nil {
			return err
		}
		if err := application.Tasks.SetFilter(f); err != nil {
			return err
		}
	}

	rootModel := ui.NewRootModel(application)

	p := tea.NewProgram(
		rootModel,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
