package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/gerunddev/wordcraft/internal/config"
	"github.com/gerunddev/wordcraft/internal/document"
	"github.com/gerunddev/wordcraft/internal/goals"
	"github.com/gerunddev/wordcraft/internal/logger"
	"github.com/gerunddev/wordcraft/internal/outline"
	"github.com/gerunddev/wordcraft/internal/plaintext"
	"github.com/gerunddev/wordcraft/internal/state"
	"github.com/gerunddev/wordcraft/internal/tui"
)

// watcher recounts one file whenever it changes
type watcher struct {
	path     string
	fallback goals.Goal
	state    *state.State
	log      *logger.Logger
	now      func() time.Time

	counted bool
	met     bool
}

// poll recounts the file if it changed since the last poll. ok is false when
// nothing needed counting.
func (w *watcher) poll() (msg tui.CountMsg, ok bool) {
	changed, err := w.state.HasChanged(w.path)
	if err != nil {
		w.log.FileError(w.path, err)
		return tui.CountMsg{Err: err, At: w.now()}, true
	}
	if !changed && w.counted {
		return tui.CountMsg{}, false
	}
	return w.count(), true
}

func (w *watcher) count() tui.CountMsg {
	started := time.Now()
	now := w.now()

	doc, err := document.Load(w.path)
	if err != nil {
		w.log.FileError(w.path, err)
		return tui.CountMsg{Err: err, At: now}
	}

	words := doc.Words()
	if err := w.state.Record(w.path, words, now); err != nil {
		w.log.StateError("record", err)
		return tui.CountMsg{Err: err, At: now}
	}
	w.counted = true
	w.log.DocumentCounted(w.path, words, time.Since(started))

	progress := goals.Evaluate(doc.Goal(w.fallback), words)
	if progress.Met && !w.met {
		w.log.GoalReached(w.path, words, progress.Goal.Target, string(progress.Goal.Type))
	}
	w.met = progress.Met

	return tui.CountMsg{
		Words:    words,
		Today:    w.state.WrittenOn(w.path, now),
		Sections: len(outline.Split(w.path, doc.Body)),
		Tasks:    len(plaintext.FilterAnnotations(doc.Annotations(), plaintext.TagTask)),
		Progress: progress,
		At:       now,
	}
}

// notifyChanges signals on changed whenever path is written, created or
// renamed over. The parent directory is watched because many editors save by
// writing a temporary file and renaming it.
func notifyChanges(path string, changed chan<- struct{}, log *logger.Logger) (func(), error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	dir := filepath.Dir(abs)
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case event, ok := <-fw.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				select {
				case changed <- struct{}{}:
				default:
					// A recount is already pending
				}

			case err, ok := <-fw.Errors:
				if !ok {
					return
				}
				log.Error("file watcher error", "error", err)
			}
		}
	}()

	return func() {
		fw.Close()
		<-done
	}, nil
}

// Watch shows a live dashboard for one file, recounting it as it is edited
func Watch(argv []string) {
	a, err := parseArgs(argv, "interval")
	if err != nil {
		fail(err)
	}
	path, err := oneFile(a, "wordcraft watch <file> [--interval 2s]")
	if err != nil {
		fail(err)
	}
	if _, err := os.Stat(path); err != nil {
		fail(err)
	}

	cfg, log, cleanup, err := loadConfig()
	if err != nil {
		fail(err)
	}
	defer cleanup()

	if v, ok := a.values["interval"]; ok {
		interval, err := time.ParseDuration(v)
		if err != nil || interval <= 0 {
			fail(fmt.Errorf("invalid interval: %s", v))
		}
		cfg.Interval = interval
	}

	statePath := config.StateFilePath()
	st, err := state.Load(statePath)
	if err != nil {
		fail(fmt.Errorf("failed to load state: %w", err))
	}

	log.Info("watch started", "file", path, "interval", cfg.Interval)
	if !cfg.HasExtension(path) {
		log.Warn("watched file has no configured extension", "file", path, "extensions", cfg.Extensions)
	}

	w := &watcher{path: path, fallback: cfg.Goal, state: st, log: log, now: time.Now}
	p := tea.NewProgram(tui.NewWatchModel(path, cfg.Interval), tea.WithInput(os.Stdin))

	stopChan := make(chan bool, 1)
	doneChan := make(chan bool, 1)

	go func() {
		defer func() {
			doneChan <- true
		}()

		ticker := time.NewTicker(cfg.Interval)
		defer ticker.Stop()

		changed := make(chan struct{}, 1)
		stopNotify, err := notifyChanges(path, changed, log)
		if err != nil {
			log.Warn("falling back to polling", "error", err)
		} else {
			defer stopNotify()
		}

		refresh := func(force bool) {
			var msg tui.CountMsg
			ok := true
			if force {
				// mtimes have one-second resolution in the state file, so a
				// notified write is always recounted
				msg = w.count()
			} else {
				msg, ok = w.poll()
			}
			if !ok {
				return
			}
			p.Send(tui.CountingMsg{})
			p.Send(msg)
			if err := st.Save(statePath); err != nil {
				log.StateError("save", err)
			}
		}

		refresh(false)
		for {
			select {
			case <-changed:
				refresh(true)
			case <-ticker.C:
				refresh(false)
			case <-stopChan:
				return
			}
		}
	}()

	if _, err := p.Run(); err != nil {
		stopChan <- true
		<-doneChan
		fail(err)
	}

	stopChan <- true
	<-doneChan
	log.Info("watch stopped", "file", path)
}
