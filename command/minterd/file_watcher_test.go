// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/logger"
)

const (
	eventTimeout = 5 * time.Second
)

func waitFor(t *testing.T, ch <-chan struct{}, name string) {
	select {
	case <-ch:
	case <-time.After(eventTimeout):
		t.Fatalf("no %s event", name)
	}
}

func TestFileWatcher(t *testing.T) {
	fileName := writeConfiguration(t, minimalConfiguration)
	defer os.RemoveAll(filepath.Dir(fileName))

	w, err := newFileWatcher(fileName, logger.New("test"))
	require.Nil(t, err, "new watcher")
	require.Nil(t, w.Start(), "start")
	defer w.Stop()

	// other files in the directory are ignored
	other := fileName + ".other"
	require.Nil(t, ioutil.WriteFile(other, []byte("x"), 0600), "write other")
	select {
	case <-w.ChangeChannel():
		t.Fatalf("change event for another file")
	case <-time.After(200 * time.Millisecond):
	}

	require.Nil(t, ioutil.WriteFile(fileName, []byte("return {}\n"), 0600), "rewrite")
	waitFor(t, w.ChangeChannel(), "change")

	require.Nil(t, os.Remove(fileName), "remove")
	waitFor(t, w.RemoveChannel(), "remove")
}

func TestNewFileWatcherMissingFile(t *testing.T) {
	_, err := newFileWatcher("/no/such/minterd.conf", logger.New("test"))
	assert.NotNil(t, err, "missing file accepted")
}

func TestSendEvent(t *testing.T) {
	w := &FileWatcherData{log: logger.New("test")}

	ch := make(chan struct{}, 1)
	w.sendEvent(ch, "test")
	w.sendEvent(ch, "test") // full, must not block

	assert.Equal(t, 1, len(ch), "wrong pending events")
}

func TestWatcherEventClassification(t *testing.T) {
	fixtures := []struct {
		op     fsnotify.Op
		remove bool
		change bool
	}{
		{fsnotify.Create, false, true},
		{fsnotify.Write, false, true},
		{fsnotify.Chmod, false, true},
		{fsnotify.Remove, true, false},
		{fsnotify.Rename, true, false},
	}

	for _, f := range fixtures {
		event := fsnotify.Event{Name: "x", Op: f.op}
		assert.Equal(t, f.remove, watcherEventFileRemove(event), "remove: %s", f.op)
		assert.Equal(t, f.change, watcherEventFileChange(event), "change: %s", f.op)
	}
}
