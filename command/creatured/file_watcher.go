// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/logger"
)

const (
	fileWatcherLoggerPrefix = "file-watcher"

	// editors write a file in several steps
	defaultSettleTime = time.Second
)

// fileWatcher - calls reload once the watched file has stopped changing
//
// the parent directory is watched so that a file replaced by rename
// is still followed
type fileWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	settle   time.Duration
	reload   func() error
}

func newFileWatcher(targetFile string, log *logger.L, settle time.Duration, reload func() error) (*fileWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		log.Errorf("parse file %s error: %s", targetFile, err)
		return nil, err
	}

	if _, err := os.Stat(filePath); nil != err {
		log.Errorf("file: %s  error: %s", filePath, err)
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	err = watcher.Add(filepath.Dir(filePath))
	if nil != err {
		log.Errorf("watcher add error: %s", err)
		_ = watcher.Close()
		return nil, err
	}

	return &fileWatcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		settle:   settle,
		reload:   reload,
	}, nil
}

// Run - background process
func (w *fileWatcher) Run(args interface{}, shutdown <-chan struct{}) {
	log := w.log
	log.Infof("watching: %s", w.filePath)

	defer w.watcher.Close()

	// stopped until the first change
	timer := time.NewTimer(w.settle)
	if !timer.Stop() {
		<-timer.C
	}

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event, ok := <-w.watcher.Events:
			if !ok {
				break loop
			}
			if event.Name != w.filePath {
				continue loop
			}
			log.Debugf("file event: %s", event)
			if isFileChange(event) {
				timer.Reset(w.settle)
			} else {
				log.Warnf("file: %s  removed or renamed", w.filePath)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				break loop
			}
			log.Errorf("watch error: %s", err)

		case <-timer.C:
			log.Info("file changed, reloading")
			if err := w.reload(); nil != err {
				log.Errorf("reload: %s  error: %s", w.filePath, err)
			}
		}
	}
	timer.Stop()
	log.Info("shutting down…")
}

func isFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create ||
		event.Op&fsnotify.Chmod == fsnotify.Chmod
}
