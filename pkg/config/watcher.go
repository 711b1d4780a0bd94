package config

import (
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
)

// Watch sets up a filesystem watcher on the config file so edits apply
// without restarting. Returns nil (and no error) when the file does not
// exist, since there is nothing to watch.
func Watch(path string) (*fsnotify.Watcher, error) {
	expandedPath, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(expandedPath); err != nil {
		return nil, nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	err = watcher.Add(expandedPath)
	if err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("unable to watch %s: %w", expandedPath, err)
	}

	return watcher, nil
}
