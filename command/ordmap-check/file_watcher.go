// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/ordmap/configuration"
	"github.com/bitmark-inc/ordmap/fault"
)

const (
	fileWatcherLoggerPrefix = "file-watcher"
)

// report changes to a single file
//
// the containing directory is watched so that editors which replace
// the file are also seen
type fileWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	change   chan struct{}
	remove   chan struct{}
}

func newFileWatcher(targetFile string, log *logger.L) (*fileWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		return nil, err
	}

	if !configuration.EnsureFileExists(filePath) {
		return nil, fault.ErrNotFoundConfigFile
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	return &fileWatcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		change:   make(chan struct{}, 1),
		remove:   make(chan struct{}, 1),
	}, nil
}

// Start - begin delivering events
func (w *fileWatcher) Start() error {
	err := w.watcher.Add(filepath.Dir(w.filePath))
	if nil != err {
		w.log.Errorf("watcher add error: %s, abort", err)
		return err
	}

	go w.run()
	return nil
}

// Stop - release the watcher, this ends the event loop
func (w *fileWatcher) Stop() {
	w.watcher.Close()
}

func (w *fileWatcher) run() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filepath.Base(w.filePath) {
				continue
			}
			w.log.Debugf("file event: %v", event)

			if watcherEventFileRemove(event) {
				w.log.Warnf("file: %s removed, stop", w.filePath)
				w.sendEvent(w.remove, "remove")
				return
			}
			if watcherEventFileChange(event) {
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

// a pending event already covers any later one
func (w *fileWatcher) sendEvent(ch chan struct{}, name string) {
	select {
	case ch <- struct{}{}:
	default:
		w.log.Debugf("event channel: %s full, discard event", name)
	}
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return "" == event.Name ||
		event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create
}
