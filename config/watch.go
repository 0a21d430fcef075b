package config

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// tuningDebounce is how long the file must stay quiet before it is re-read.
var tuningDebounce = 100 * time.Millisecond

// TuningWatcher reloads a tuning file whenever it changes on disk.
// Parsed results are delivered on Updates; the simulation goroutine drains it.
type TuningWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	Updates chan *Tuning
	closeCh chan struct{}
	once    sync.Once
}

// WatchTuning starts watching path. The parent directory is watched so that
// editors which replace the file on save are still picked up.
func WatchTuning(path string) (*TuningWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, err
	}

	tw := &TuningWatcher{
		watcher: w,
		path:    filepath.Clean(path),
		Updates: make(chan *Tuning, 1),
		closeCh: make(chan struct{}),
	}
	go tw.run()
	return tw, nil
}

func (tw *TuningWatcher) Close() error {
	var err error
	tw.once.Do(func() {
		close(tw.closeCh)
		err = tw.watcher.Close()
	})
	return err
}

func (tw *TuningWatcher) run() {
	// Editors often write a file in several bursts; only the last event in a
	// burst triggers a load.
	debounce := time.NewTimer(tuningDebounce)
	debounce.Stop()
	defer debounce.Stop()

	for {
		select {
		case event, ok := <-tw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != tw.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			debounce.Reset(tuningDebounce)
		case <-debounce.C:
			tw.reload()
		case err, ok := <-tw.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("[tuning] watcher error: %v", err)
		case <-tw.closeCh:
			return
		}
	}
}

func (tw *TuningWatcher) reload() {
	t, err := LoadTuning(tw.path)
	if err != nil {
		log.Printf("[tuning] keeping previous values: %v", err)
		return
	}
	// Only the newest reload matters.
	select {
	case <-tw.Updates:
	default:
	}
	tw.Updates <- t
	log.Printf("[tuning] reloaded %s", tw.path)
}
