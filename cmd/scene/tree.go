// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"cogentcore.org/scene/scene"
	"cogentcore.org/scene/tree"
)

var treeCmd = &cobra.Command{
	Use:   "tree <file>",
	Short: "Print the tree of a scene document",
	Long:  `Builds the tree of the given document and prints each node with its tags and the properties that differ from their defaults.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := scene.Load(args[0])
		if err != nil {
			return err
		}
		defer n.Destroy()
		printTree(cmd.OutOrStdout(), n, termenv.ColorProfile())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)
}

// printTree prints the given node and its descendants, one per line,
// indented by depth and colored for the given profile.
func printTree(w io.Writer, n tree.Node, p termenv.Profile) {
	printNode(w, n, p, 0)
}

func printNode(w io.Writer, n tree.Node, p termenv.Profile, depth int) {
	nb := n.AsTree()
	var b strings.Builder
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(termenv.String(nb.ClassName()).Foreground(p.Color("#818cf8")).Bold().String())
	if nb.Name() != nb.ClassName() {
		b.WriteString(" ")
		b.WriteString(termenv.String(fmt.Sprintf("%q", nb.Name())).Foreground(p.Color("#f472b6")).String())
	}
	for _, tag := range nb.GetTags() {
		b.WriteString(" ")
		b.WriteString(termenv.String("#" + tag).Foreground(p.Color("#34d399")).String())
	}
	for _, name := range tree.PropertyNames(n) {
		if name == "Name" || name == "Archivable" || !tree.IsPropertyModified(n, name) {
			continue
		}
		v, err := tree.PropertyValue(n, name)
		if err != nil {
			continue
		}
		b.WriteString(" ")
		b.WriteString(termenv.String(fmt.Sprintf("%s=%v", name, v)).Faint().String())
	}
	if !nb.Archivable() {
		b.WriteString(" ")
		b.WriteString(termenv.String("(not archivable)").Italic().String())
	}
	fmt.Fprintln(w, b.String())
	for _, kid := range nb.GetChildren() {
		printNode(w, kid, p, depth+1)
	}
}
