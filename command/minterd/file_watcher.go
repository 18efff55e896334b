// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
)

const (
	fileWatcherLoggerPrefix = "file-watcher"
)

// FileWatcher - report changes to the configuration file
type FileWatcher interface {
	Start() error
	Stop()
	ChangeChannel() <-chan struct{}
	RemoveChannel() <-chan struct{}
}

type WatcherChannel struct {
	change chan struct{}
	remove chan struct{}
}

type FileWatcherData struct {
	log      *logger.L
	channel  WatcherChannel
	watcher  *fsnotify.Watcher
	filePath string
}

func newFileWatcher(targetFile string, log *logger.L) (FileWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		return nil, err
	}

	if _, err := os.Stat(filePath); nil != err {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		return nil, err
	}

	return &FileWatcherData{
		log: log,
		channel: WatcherChannel{
			change: make(chan struct{}, 1),
			remove: make(chan struct{}, 1),
		},
		watcher:  watcher,
		filePath: filePath,
	}, nil
}

// Start - watch the directory so that editors replacing the file are seen
func (w *FileWatcherData) Start() error {
	err := w.watcher.Add(filepath.Dir(w.filePath))
	if nil != err {
		w.log.Errorf("watcher add error: %s, abort", err)
		return err
	}

	go func() {
		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != w.filePath {
					continue
				}
				w.log.Debugf("file event: %v", event)

				if watcherEventFileRemove(event) {
					w.log.Errorf("file %s removed", w.filePath)
					w.sendEvent(w.channel.remove, "remove")
					continue
				}

				if watcherEventFileChange(event) {
					w.log.Info("sending config change event…")
					w.sendEvent(w.channel.change, "change")
				}

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				w.log.Errorf("watcher error: %s", err)
			}
		}
	}()

	return nil
}

// Stop - release the watcher, ends the event goroutine
func (w *FileWatcherData) Stop() {
	_ = w.watcher.Close()
}

func (w *FileWatcherData) ChangeChannel() <-chan struct{} {
	return w.channel.change
}

func (w *FileWatcherData) RemoveChannel() <-chan struct{} {
	return w.channel.remove
}

// drop the event if one is already pending
func (w *FileWatcherData) sendEvent(ch chan<- struct{}, name string) {
	select {
	case ch <- struct{}{}:
	default:
		w.log.Debugf("event channel %s full, discard event", name)
	}
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create ||
		event.Op&fsnotify.Chmod == fsnotify.Chmod
}
