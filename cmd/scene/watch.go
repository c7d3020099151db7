// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"cogentcore.org/scene/base/errors"
	"cogentcore.org/scene/scene"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Print the tree of a scene document whenever it changes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		return watch(ctx, cmd.OutOrStdout(), args[0], termenv.ColorProfile())
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

// watch prints the tree of the given file, and prints it again each time
// the file is written or recreated, until the context is canceled.
// Errors loading the file are logged and do not stop the watch.
func watch(ctx context.Context, w io.Writer, path string, p termenv.Profile) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	// editors often replace files, so watch the directory
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}
	target := filepath.Clean(path)
	reload(w, path, p)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			switch {
			case event.Op&fsnotify.Write == fsnotify.Write ||
				event.Op&fsnotify.Create == fsnotify.Create:
				reload(w, path, p)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			errors.Log(fmt.Errorf("scene: watching %s: %w", path, err))
		}
	}
}

func reload(w io.Writer, path string, p termenv.Profile) {
	n, err := scene.Load(path)
	if errors.Log(err) != nil {
		return
	}
	defer n.Destroy()
	io.WriteString(w, "\n")
	printTree(w, n, p)
}
