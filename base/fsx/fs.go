// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fsx provides file system helpers.
package fsx

import (
	"io/fs"
	"os"

	"cogentcore.org/scene/base/errors"
)

// FileExists returns whether the given path is an existing regular
// file (not a directory). A path that does not exist is not an error;
// any other error accessing it is returned.
func FileExists(path string) (bool, error) {
	return isFile(os.Stat(path))
}

// FileExistsFS is [FileExists] within the given file system.
func FileExistsFS(fsys fs.FS, path string) (bool, error) {
	return isFile(fs.Stat(fsys, path))
}

func isFile(info fs.FileInfo, err error) (bool, error) {
	switch {
	case err == nil:
		return !info.IsDir(), nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	}
	return false, err
}
