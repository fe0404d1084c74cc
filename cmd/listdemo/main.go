package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/young1lin/slotlist/internal/config"
	"github.com/young1lin/slotlist/internal/logging"
	"github.com/young1lin/slotlist/internal/source"
	"github.com/young1lin/slotlist/internal/store"
)

// exitFunc is the function to call for exiting (can be mocked for testing)
var exitFunc = os.Exit

func main() {
	projectDir, err := os.Getwd()
	if err != nil {
		logAndExit(err)
		return
	}

	deps := &AppDependencies{
		ProjectDir:    projectDir,
		ConfigLoader:  config.Load,
		LogOpener:     logging.Open,
		LogPath:       config.LogPath,
		DBOpener:      store.Open,
		HistoryDBPath: config.HistoryDBPath,
		WatcherCreator: func(path string) (source.WatcherInterface, error) {
			return source.NewWatcher(path)
		},
		ProgramRunner: func(p *tea.Program) error {
			_, err := p.Run()
			return err
		},
	}
	if len(os.Args) > 1 {
		deps.ItemsFile = os.Args[1]
	}

	if err := run(deps); err != nil {
		logAndExit(err)
	}
}

func logAndExit(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitFunc(1)
	}
}
