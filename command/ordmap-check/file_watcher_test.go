// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/ordmap/fault"
)

const eventTimeout = 5 * time.Second

func TestMain(m *testing.M) {
	directory, err := os.MkdirTemp("", "ordmap-check-test")
	if nil != err {
		panic(fmt.Sprintf("temporary directory failed: %s", err))
	}

	logConfig := logger.Configuration{
		Directory: directory,
		File:      "ordmap-check.log",
		Size:      1048576,
		Count:     20,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	if err := logger.Initialise(logConfig); err != nil {
		panic(fmt.Sprintf("logger initialization failed: %s", err))
	}

	rc := m.Run()

	logger.Finalise()
	os.RemoveAll(directory)
	os.Exit(rc)
}

func waitFor(t *testing.T, ch <-chan struct{}, name string) {
	select {
	case <-ch:
	case <-time.After(eventTimeout):
		t.Fatalf("timeout waiting for: %s event", name)
	}
}

func TestFileWatcher(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "watched.conf")
	require.NoError(t, os.WriteFile(fileName, []byte("return {}\n"), 0600))

	w, err := newFileWatcher(fileName, logger.New(fileWatcherLoggerPrefix))
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()

	// other files in the directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(fileName), "other"), []byte("x"), 0600))

	require.NoError(t, os.WriteFile(fileName, []byte("return { seed = 2 }\n"), 0600))
	waitFor(t, w.change, "change")

	require.NoError(t, os.Remove(fileName))
	waitFor(t, w.remove, "remove")
}

func TestFileWatcherMissingFile(t *testing.T) {
	_, err := newFileWatcher(filepath.Join(t.TempDir(), "absent.conf"), logger.New(fileWatcherLoggerPrefix))
	assert.Equal(t, fault.ErrNotFoundConfigFile, err)
}

func TestWatcherEvents(t *testing.T) {
	items := []struct {
		event  fsnotify.Event
		change bool
		remove bool
	}{
		{fsnotify.Event{Name: "a", Op: fsnotify.Write}, true, false},
		{fsnotify.Event{Name: "a", Op: fsnotify.Create}, true, false},
		{fsnotify.Event{Name: "a", Op: fsnotify.Remove}, false, true},
		{fsnotify.Event{Name: "a", Op: fsnotify.Rename}, false, true},
		{fsnotify.Event{Name: "a", Op: fsnotify.Chmod}, false, false},
		{fsnotify.Event{Name: "", Op: fsnotify.Write}, true, true},
	}
	for i, item := range items {
		assert.Equal(t, item.change, watcherEventFileChange(item.event), "%d: change", i)
		assert.Equal(t, item.remove, watcherEventFileRemove(item.event), "%d: remove", i)
	}
}
