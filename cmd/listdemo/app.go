package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/young1lin/slotlist/internal/config"
	"github.com/young1lin/slotlist/internal/source"
	"github.com/young1lin/slotlist/internal/store"
	"github.com/young1lin/slotlist/tui"
)

// errWatcherStopped is reported when the watcher closes its channels
var errWatcherStopped = errors.New("items watcher stopped")

// ProgramSender is an interface for sending messages to a Bubbletea program
type ProgramSender interface {
	Send(msg tea.Msg)
}

// AppDependencies contains the dependencies for the main application
type AppDependencies struct {
	ProjectDir     string
	ItemsFile      string // overrides data.file from the config
	ConfigLoader   func(string) (*config.Config, error)
	LogOpener      func(path, level string) (zerolog.Logger, io.Closer, error)
	LogPath        func() string
	DBOpener       func(string) (*store.DB, error)
	HistoryDBPath  func() string
	WatcherCreator func(string) (source.WatcherInterface, error)
	ProgramRunner  func(*tea.Program) error
}

func run(deps *AppDependencies) error {
	loadConfig := deps.ConfigLoader
	if loadConfig == nil {
		loadConfig = config.Load
	}
	cfg, err := loadConfig(deps.ProjectDir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if deps.ItemsFile != "" {
		cfg.Data.File = deps.ItemsFile
	}

	logger := zerolog.Nop()
	if deps.LogOpener != nil {
		logPath := deps.LogPath
		if logPath == nil {
			logPath = config.LogPath
		}
		l, closer, err := deps.LogOpener(logPath(), cfg.Log.Level)
		if err != nil {
			return err
		}
		defer closer.Close()
		logger = l
	}

	// Get database path
	dbPath := deps.HistoryDBPath
	if dbPath == nil {
		dbPath = config.HistoryDBPath
	}

	db, err := deps.DBOpener(dbPath())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	history := loadHistory(db, logger)

	var items []string
	var watcher source.WatcherInterface
	if cfg.HasFile() {
		path := cfg.Data.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(deps.ProjectDir, path)
		}
		// the watcher delivers the file's current rows as its first message
		watcher, err = deps.WatcherCreator(path)
		if err != nil {
			return fmt.Errorf("failed to watch items file: %w", err)
		}
		defer watcher.Close()
		logger.Info().Str("file", path).Msg("watching items file")
	} else {
		items = source.Sample(cfg.Data.Sample)
	}

	model := tui.NewModel(cfg, items, db, logger)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	go p.Send(history)
	if watcher != nil {
		go runWatchLoop(p, watcher, logger)
	}

	return deps.ProgramRunner(p)
}

// loadHistory reads the latest stored activation and the stored total.
// Failures are logged and leave the history empty.
func loadHistory(db *store.DB, logger zerolog.Logger) tui.HistoryLoadedMsg {
	var msg tui.HistoryLoadedMsg

	recent, err := db.Recent(1)
	if err != nil {
		// Warning, not fatal
		logger.Warn().Err(err).Msg("failed to load activation history")
		return msg
	}
	msg.Recent = recent

	if msg.Total, err = db.Count(); err != nil {
		logger.Warn().Err(err).Msg("failed to count activations")
	}
	logger.Info().Int("activations", msg.Total).Msg("activation history opened")
	return msg
}

// runWatchLoop forwards reloaded rows to the program. When the watcher's
// channels close it reports WatcherFailedMsg and returns.
func runWatchLoop(sender ProgramSender, watcher source.WatcherInterface, logger zerolog.Logger) {
	for {
		select {
		case items, ok := <-watcher.Items():
			if !ok {
				sender.Send(tui.WatcherFailedMsg{Err: errWatcherStopped})
				return
			}
			logger.Debug().Int("items", len(items)).Msg("items file changed")
			sender.Send(tui.ItemsLoadedMsg{Items: items})

		case err, ok := <-watcher.Errors():
			if !ok {
				sender.Send(tui.WatcherFailedMsg{Err: errWatcherStopped})
				return
			}
			logger.Warn().Err(err).Msg("items file reload failed")
			sender.Send(tui.ErrorMsg{Err: fmt.Errorf("failed to reload items: %w", err)})
		}
	}
}
