// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/scene/gui"
	"cogentcore.org/scene/scene"
)

const testScene = `
class: RootWidget
name: screen
children:
  - class: Frame
    name: panel
    tags: [hud]
    properties:
      Size: [0, 100, 0, 50]
      ZIndex: 2
    children:
      - class: Frame
        name: scratch
        archivable: false
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o666))
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, time.Duration(0), cfg.Interval())

	path := writeFile(t, "scene.toml", `
frames = 10
fps = 20
realtime = true
log_level = "debug"
dump_ops = true

[viewport]
width = 320
height = 240
`)
	cfg, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Frames)
	assert.Equal(t, float32(0.05), cfg.DT())
	assert.Equal(t, 50*time.Millisecond, cfg.Interval())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.DumpOps)
	assert.False(t, cfg.Metrics)
	assert.Equal(t, float32(320), cfg.ViewportSize().X)
	assert.Equal(t, float32(240), cfg.ViewportSize().Y)

	_, err = LoadConfig(writeFile(t, "bad.toml", "fps = 0\n"))
	assert.Error(t, err)
	_, err = LoadConfig(writeFile(t, "broken.toml", "fps = \n"))
	assert.Error(t, err)
}

var ansi = regexp.MustCompile("\x1b\\[[0-9;]*m")

func TestPrintTree(t *testing.T) {
	n, err := scene.Load(writeFile(t, "scene.yaml", testScene))
	require.NoError(t, err)
	var buf bytes.Buffer
	printTree(&buf, n, termenv.Ascii)
	lines := strings.Split(strings.TrimSpace(ansi.ReplaceAllString(buf.String(), "")), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, `RootWidget "screen"`, lines[0])
	assert.True(t, strings.HasPrefix(lines[1], `  Frame "panel" #hud`))
	assert.Contains(t, lines[1], "ZIndex=2")
	assert.NotContains(t, lines[1], "Visible")
	assert.Equal(t, `    Frame "scratch" (not archivable)`, lines[2])
}

func TestRunScene(t *testing.T) {
	path := writeFile(t, "scene.yaml", testScene)
	cfg := DefaultConfig()
	cfg.Frames = 3
	cfg.DumpOps = true
	cfg.Metrics = true
	var buf bytes.Buffer
	require.NoError(t, runScene(context.Background(), &buf, path, cfg))
	out := buf.String()
	assert.Contains(t, out, "scene_frames_total 3")
	assert.Contains(t, out, "scene_frame_duration_seconds_count 3")
	// two frames, each filled and stroked, on the last frame only
	assert.Equal(t, 2, strings.Count(out, "fill "))
	assert.Equal(t, 2, strings.Count(out, "stroke "))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg.Frames = 0
	assert.NoError(t, runScene(ctx, &buf, path, cfg))
	assert.Error(t, runScene(context.Background(), &buf, filepath.Join(t.TempDir(), "missing.yaml"), cfg))
}

func TestConvert(t *testing.T) {
	in := writeFile(t, "scene.yaml", testScene)
	out := filepath.Join(t.TempDir(), "scene.json")
	require.NoError(t, convert(in, out))
	n, err := scene.Load(out)
	require.NoError(t, err)
	panel, ok := n.AsTree().FindFirstChild("panel").(*gui.Frame)
	require.True(t, ok)
	assert.Equal(t, 2, panel.ZIndex)
	assert.Equal(t, gui.FromPixel(100, 50), panel.Size)
	assert.Nil(t, panel.FindFirstChild("scratch"))

	assert.Error(t, convert(in, filepath.Join(t.TempDir(), "scene.txt")))
}

func TestWatch(t *testing.T) {
	path := writeFile(t, "scene.yaml", testScene)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	require.NoError(t, watch(ctx, &buf, path, termenv.Ascii))
	assert.Contains(t, ansi.ReplaceAllString(buf.String(), ""), `RootWidget "screen"`)
}
