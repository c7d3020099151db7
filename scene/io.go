// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"cogentcore.org/scene/tree"
)

// Format is a file format of scene documents.
type Format string

const (
	YAML Format = "yaml"
	TOML Format = "toml"
	JSON Format = "json"
)

// FormatFromPath returns the format of the given file path from its extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	case ".json":
		return JSON, nil
	}
	return "", fmt.Errorf("scene: unknown document format for %q", path)
}

// Decode reads a [Document] in the given format from the given reader.
func Decode(r io.Reader, format Format) (*Document, error) {
	d := &Document{}
	var err error
	switch format {
	case YAML:
		err = yaml.NewDecoder(r).Decode(d)
	case TOML:
		err = toml.NewDecoder(r).Decode(d)
	case JSON:
		err = json.NewDecoder(r).Decode(d)
	default:
		return nil, fmt.Errorf("scene.Decode: unknown format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("scene.Decode: %s: %w", format, err)
	}
	if d.Class == "" {
		return nil, fmt.Errorf("scene.Decode: %s: document has no class", format)
	}
	return d, nil
}

// Encode writes the given [Document] in the given format to the given writer.
func Encode(w io.Writer, d *Document, format Format) error {
	var err error
	switch format {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err = enc.Encode(d)
		if err == nil {
			err = enc.Close()
		}
	case TOML:
		err = toml.NewEncoder(w).Encode(d)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(d)
	default:
		return fmt.Errorf("scene.Encode: unknown format %q", format)
	}
	if err != nil {
		return fmt.Errorf("scene.Encode: %s: %w", format, err)
	}
	return nil
}

// Open reads a [Document] from the given file, in the
// format given by its extension.
func Open(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(bufio.NewReader(f), format)
}

// Save writes the given [Document] to the given file, in the
// format given by its extension.
func Save(path string, d *Document) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	err = Encode(bw, d, format)
	if err == nil {
		err = bw.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// Load reads the document in the given file and builds its tree.
func Load(path string) (tree.Node, error) {
	d, err := Open(path)
	if err != nil {
		return nil, err
	}
	return Build(d)
}

// SaveNode saves the tree under the given node to the given file.
func SaveNode(path string, n tree.Node) error {
	d := Snapshot(n)
	if d == nil {
		return fmt.Errorf("scene.SaveNode: %v is not archivable", n)
	}
	return Save(path, d)
}
