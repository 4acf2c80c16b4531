// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package watcher

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/bidtree/fault"
)

// Watcher - file change notifier
type Watcher struct {
	sync.Mutex
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	limiter  *rate.Limiter
	change   chan struct{}
	remove   chan struct{}
	done     chan struct{}
	started  bool
	stopped  bool
}

// New - create a watcher for an existing file
//
// at most one change is reported per interval, zero disables the limit
func New(targetFile string, log *logger.L, interval time.Duration) (*Watcher, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}

	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		return nil, err
	}

	if _, err := os.Stat(filePath); nil != err {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}

	return &Watcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		limiter:  rate.NewLimiter(limit, 1),
		change:   make(chan struct{}, 1),
		remove:   make(chan struct{}, 1),
		done:     make(chan struct{}),
	}, nil
}

// FilePath - absolute name of the watched file
func (w *Watcher) FilePath() string {
	return w.filePath
}

// Changed - receives after the file is written or replaced
func (w *Watcher) Changed() <-chan struct{} {
	return w.change
}

// Removed - receives after the file is removed or renamed away
func (w *Watcher) Removed() <-chan struct{} {
	return w.remove
}

// Start - begin delivering events
func (w *Watcher) Start() error {
	w.Lock()
	defer w.Unlock()

	if w.stopped {
		return fault.ErrWatcherStopped
	}
	if w.started {
		return fault.ErrAlreadyInitialised
	}

	err := w.watcher.Add(filepath.Dir(w.filePath))
	if nil != err {
		w.log.Errorf("watcher add error: %s, abort", err)
		return err
	}
	w.started = true

	go w.run()
	return nil
}

// Stop - release the watch and wait for the event loop to finish
func (w *Watcher) Stop() {
	w.Lock()
	defer w.Unlock()

	if w.stopped {
		return
	}
	w.stopped = true

	_ = w.watcher.Close()
	if w.started {
		<-w.done
	}
}

func (w *Watcher) run() {
	defer close(w.done)

	name := filepath.Base(w.filePath)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			w.log.Debugf("file event: %v", event)

			if eventFileRemove(event) {
				w.log.Warnf("file %s removed", w.filePath)
				w.sendEvent(w.remove, "remove")
				continue
			}

			if eventFileChange(event) {
				if !w.limiter.Allow() {
					w.log.Debug("change within rate limit, discard event")
					continue
				}
				w.log.Info("sending file change event")
				w.sendEvent(w.change, "change")
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Errorf("watcher error: %s", err)
		}
	}
}

func (w *Watcher) sendEvent(ch chan<- struct{}, name string) {
	select {
	case ch <- struct{}{}:
	default:
		w.log.Debugf("event channel %s full, discard event", name)
	}
}

func eventFileRemove(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func eventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create ||
		event.Op&fsnotify.Chmod == fsnotify.Chmod
}
