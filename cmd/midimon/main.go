package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"midiwire/config"
	"midiwire/logging"
	"midiwire/theme"
	"midiwire/transport"
	"midiwire/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so the logger writes to a file under
	// the config dir.
	logger := logging.New("midimon")
	if dir, err := config.Dir(); err == nil {
		if err := os.MkdirAll(dir, 0755); err == nil {
			if f, err := os.OpenFile(filepath.Join(dir, "midimon.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
				defer f.Close()
				logger = logging.NewWriter("midimon", f)
			}
		}
	}

	th := theme.New(theme.Plasma())
	manager := transport.NewManager(cfg.PortMatch, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.AutoConnect {
		go manager.Run(ctx)
	} else {
		fmt.Println("autoConnect is off - no ports will be watched")
	}

	m := tui.NewModel(manager, th, cfg.MaxLogLines)
	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
