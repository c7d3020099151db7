// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"cogentcore.org/scene/base/fsx"
	"cogentcore.org/scene/math32"
)

// Config is the configuration of the scene command, loaded from a TOML file.
type Config struct {

	// Viewport is the size of the screen in pixels.
	Viewport Viewport `toml:"viewport"`

	// Frames is the number of frames that run runs.
	// It runs until interrupted if it is zero.
	Frames int `toml:"frames"`

	// FPS is the number of frames per second, used for the time step
	// and, if Realtime is set, for the time between frames.
	FPS float32 `toml:"fps"`

	// Realtime makes run wait between frames.
	Realtime bool `toml:"realtime"`

	// LogLevel is the level of logging (debug, info, warn, error).
	LogLevel string `toml:"log_level"`

	// Metrics makes run print the frame metrics when it finishes.
	Metrics bool `toml:"metrics"`

	// DumpOps makes run print the draw operations of the last frame.
	DumpOps bool `toml:"dump_ops"`
}

// Viewport is the size of the screen in pixels.
type Viewport struct {
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
}

// DefaultConfig returns the configuration used when there is no config file.
func DefaultConfig() *Config {
	return &Config{
		Viewport: Viewport{Width: 800, Height: 600},
		Frames:   60,
		FPS:      60,
		LogLevel: "warn",
	}
}

// LoadConfig loads the config from the given TOML file on top of
// [DefaultConfig]. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	ok, err := fsx.FileExists(path)
	if err != nil || !ok {
		return cfg, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate returns an error if the config can not be used.
func (c *Config) Validate() error {
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("config: viewport must be positive, got %vx%v", c.Viewport.Width, c.Viewport.Height)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("config: fps must be positive, got %v", c.FPS)
	}
	if c.Frames < 0 {
		return fmt.Errorf("config: frames can not be negative, got %d", c.Frames)
	}
	return nil
}

// ViewportSize returns the viewport as a vector.
func (c *Config) ViewportSize() math32.Vector2 {
	return math32.Vec2(c.Viewport.Width, c.Viewport.Height)
}

// DT returns the time step of one frame in seconds.
func (c *Config) DT() float32 {
	return 1 / c.FPS
}

// Interval returns the time between frames, which is zero unless Realtime is set.
func (c *Config) Interval() time.Duration {
	if !c.Realtime {
		return 0
	}
	return time.Duration(float64(time.Second) / float64(c.FPS))
}
