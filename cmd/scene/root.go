// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"cogentcore.org/scene/base/logx"
)

var (
	configPath  string
	verbose     bool
	veryVerbose bool
	quiet       bool
	logLevel    string

	// cfg is the config loaded before any command runs.
	cfg *Config
)

var rootCmd = &cobra.Command{
	Use:   "scene",
	Short: "Scene loads, runs and converts scene tree documents",
	Long: `Scene builds trees of GUI nodes from YAML, TOML or JSON documents.
It can print them, run frames over them, watch them for changes, and
convert them between formats.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = LoadConfig(configPath)
		if err != nil {
			return err
		}
		return setupLogging(cmd)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "scene.toml", "TOML config file; defaults are used if it does not exist")
	pf.BoolVarP(&verbose, "verbose", "v", false, "log info messages")
	pf.BoolVar(&veryVerbose, "vv", false, "log debug messages")
	pf.BoolVarP(&quiet, "quiet", "q", false, "only log errors")
	pf.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error); overrides the config")
}

// setupLogging sets the default logger from the config and flags.
// The verbosity flags take precedence over a level name.
func setupLogging(cmd *cobra.Command) error {
	name := cfg.LogLevel
	if logLevel != "" {
		name = logLevel
	}
	level, err := logx.LevelFromString(name)
	if err != nil {
		return err
	}
	if veryVerbose || verbose || quiet {
		level = logx.LevelFromFlags(veryVerbose, verbose, quiet)
	}
	logx.UserLevel = level
	logx.SetDefaultLogger(cmd.ErrOrStderr())
	slog.Debug("scene: config loaded", "path", configPath, "viewport", cfg.ViewportSize(), "fps", cfg.FPS)
	return nil
}
