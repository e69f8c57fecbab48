package tui

import (
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/andrewmow/quizwalk/internal/config"
	"github.com/andrewmow/quizwalk/internal/core"
	"github.com/andrewmow/quizwalk/internal/registry"
	"github.com/andrewmow/quizwalk/internal/storage"
)

// watchDebounce coalesces the burst of events an editor save produces into
// one reload.
const watchDebounce = 250 * time.Millisecond

// watchLevels watches a directory of level files and calls send with a
// LevelsReloadedMsg whenever one changes. Blocks until done is closed.
func watchLevels(dir string, send func(tea.Msg), done <-chan struct{}) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return err
	}

	var timer *time.Timer
	for {
		select {
		case <-done:
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isLevelEvent(event) {
				continue
			}
			log.Debug("level file changed", "file", event.Name, "op", event.Op)
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchDebounce, func() {
				send(LevelsReloadedMsg{})
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("level watcher error", "err", err)
		}
	}
}

// isLevelEvent filters for writes, creates and removes of YAML files.
func isLevelEvent(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	ext := strings.ToLower(filepath.Ext(event.Name))
	return ext == ".yaml" || ext == ".yml"
}

// RunWatch runs the game like Run, additionally watching watchDir for level
// file changes and reloading them into the running game.
func RunWatch(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, appCfg config.CampusConfig, watchDir string) error {
	model := NewModel(game, store, cfg, appCfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	done := make(chan struct{})
	defer close(done)

	go func() {
		if err := watchLevels(watchDir, p.Send, done); err != nil {
			log.Warn("level watching disabled", "err", err)
		}
	}()

	_, err := p.Run()
	return err
}
