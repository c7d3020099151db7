// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"cogentcore.org/scene/base/errors"
	"cogentcore.org/scene/driver"
	"cogentcore.org/scene/gui"
	"cogentcore.org/scene/scene"
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run frames over a scene document",
	Long: `Builds the tree of the given document and runs frames over it:
each frame lays out the tree, updates it and draws it onto a recording canvas.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if f := cmd.Flags(); f.Changed("frames") {
			cfg.Frames, _ = f.GetInt("frames")
		}
		if f := cmd.Flags(); f.Changed("fps") {
			cfg.FPS, _ = f.GetFloat32("fps")
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		return runScene(ctx, cmd.OutOrStdout(), args[0], cfg)
	},
}

func init() {
	runCmd.Flags().Int("frames", 0, "number of frames to run; overrides the config")
	runCmd.Flags().Float32("fps", 0, "frames per second; overrides the config")
	rootCmd.AddCommand(runCmd)
}

// runScene loads the given document and runs the configured frames over it,
// writing the requested reports to w.
func runScene(ctx context.Context, w io.Writer, path string, cfg *Config) error {
	n, err := scene.Load(path)
	if err != nil {
		return err
	}
	defer n.Destroy()

	rec := &gui.Recorder{}
	reg := prometheus.NewRegistry()
	d := driver.New(n, cfg.ViewportSize(), rec)
	d.Interval = cfg.Interval()
	d.Metrics = driver.NewMetrics(reg)

	if cfg.Frames > 0 && cfg.DumpOps {
		err = d.Run(ctx, cfg.Frames-1, cfg.DT())
		if err == nil {
			rec.Reset()
			d.Frame(cfg.DT())
		}
	} else {
		err = d.Run(ctx, cfg.Frames, cfg.DT())
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	slog.Info("scene: run finished", "file", path, "frames", d.NumFrames())

	if cfg.DumpOps {
		for _, op := range rec.Ops {
			fmt.Fprintln(w, op)
		}
	}
	if cfg.Metrics {
		return printMetrics(w, reg)
	}
	return nil
}

// printMetrics writes the counters and histogram sums of the given registry.
func printMetrics(w io.Writer, reg prometheus.Gatherer) error {
	mfs, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				fmt.Fprintf(w, "%s %v\n", mf.GetName(), m.GetCounter().GetValue())
			case m.GetHistogram() != nil:
				h := m.GetHistogram()
				fmt.Fprintf(w, "%s_count %d\n", mf.GetName(), h.GetSampleCount())
				fmt.Fprintf(w, "%s_sum %v\n", mf.GetName(), h.GetSampleSum())
			}
		}
	}
	return nil
}
