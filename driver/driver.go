// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package driver runs the per-frame loop of a scene tree: each frame it
// lays out the gui widgets, then calls the update hooks of every node,
// then the draw hooks of every node, each in pre-order.
package driver

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cogentcore.org/scene/gui"
	"cogentcore.org/scene/math32"
	"cogentcore.org/scene/tree"
)

// Updater is implemented by nodes that update their state every frame.
type Updater interface {

	// Update is called once per frame with the time since the
	// previous frame in seconds.
	Update(dt float32)
}

// Drawer is implemented by nodes that draw themselves every frame.
type Drawer interface {
	Draw(c gui.Canvas)
}

// Driver runs frames over the tree under a root node.
type Driver struct {

	// Root is the root of the tree that is driven.
	Root tree.Node

	// Viewport is the size of the screen in pixels.
	Viewport math32.Vector2

	// Canvas is what the nodes draw onto.
	Canvas gui.Canvas

	// Interval is the minimum time between frames in [Driver.Run].
	// There is no waiting between frames if it is zero.
	Interval time.Duration

	// Metrics, if non-nil, records statistics about each frame.
	Metrics *Metrics

	// frame is the number of frames run so far.
	frame int
}

// New returns a new [Driver] for the given root node, viewport and canvas.
func New(root tree.Node, viewport math32.Vector2, canvas gui.Canvas) *Driver {
	return &Driver{Root: root, Viewport: viewport, Canvas: canvas}
}

// FrameStats are the statistics of one frame.
type FrameStats struct {

	// Updated is the number of nodes whose Update was called.
	Updated int

	// Drawn is the number of nodes whose Draw was called.
	Drawn int

	// Duration is how long the frame took.
	Duration time.Duration
}

func (fs FrameStats) String() string {
	return fmt.Sprintf("updated=%d drawn=%d duration=%v", fs.Updated, fs.Drawn, fs.Duration)
}

// Frame runs one frame with the given time since the previous frame
// in seconds: it calls [gui.Layout] on the root, then [Updater.Update]
// on every node in pre-order, then [Drawer.Draw] on every node in
// pre-order. Hooks may change the tree; nodes destroyed during a pass
// are skipped.
func (d *Driver) Frame(dt float32) FrameStats {
	start := time.Now()
	var fs FrameStats
	if d.Root == nil || d.Root.AsTree().IsDestroyed() {
		return fs
	}
	gui.Layout(d.Root, d.Viewport)
	d.Root.AsTree().WalkDown(func(n tree.Node) bool {
		if u, ok := n.(Updater); ok {
			u.Update(dt)
			fs.Updated++
		}
		return tree.Continue
	})
	if d.Canvas != nil {
		d.Root.AsTree().WalkDown(func(n tree.Node) bool {
			if dr, ok := n.(Drawer); ok {
				dr.Draw(d.Canvas)
				fs.Drawn++
			}
			return tree.Continue
		})
	}
	fs.Duration = time.Since(start)
	d.frame++
	d.Metrics.observe(fs)
	slog.Debug("driver.Driver.Frame", "frame", d.frame, "updated", fs.Updated, "drawn", fs.Drawn, "duration", fs.Duration)
	return fs
}

// NumFrames returns the number of frames run so far.
func (d *Driver) NumFrames() int {
	return d.frame
}

// Run runs the given number of frames, each with the given time step in
// seconds, waiting [Driver.Interval] between frames. If frames is zero
// or less, it runs until the context is canceled. It returns the error of
// the context if it is canceled.
func (d *Driver) Run(ctx context.Context, frames int, dt float32) error {
	var tick <-chan time.Time
	if d.Interval > 0 {
		ticker := time.NewTicker(d.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}
	for i := 0; frames <= 0 || i < frames; i++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("driver.Driver.Run: stopped after %d frames: %w", i, err)
		}
		d.Frame(dt)
		if tick == nil {
			continue
		}
		select {
		case <-ctx.Done():
		case <-tick:
		}
	}
	return nil
}
