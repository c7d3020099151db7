// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"cogentcore.org/scene/scene"
)

var convertCmd = &cobra.Command{
	Use:   "convert <in> <out>",
	Short: "Convert a scene document to another format",
	Long:  `Builds the tree of the input document and saves it to the output file, in the format given by its extension (.yaml, .toml or .json).`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return convert(args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

// convert builds the tree in the given input file and saves it to the
// given output file, so that the output only holds valid properties.
func convert(in, out string) error {
	n, err := scene.Load(in)
	if err != nil {
		return err
	}
	defer n.Destroy()
	if err := scene.SaveNode(out, n); err != nil {
		return err
	}
	slog.Info("scene: converted", "from", in, "to", out)
	return nil
}
