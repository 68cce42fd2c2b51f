package cmd

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// https://pmarsceill.github.io/just-the-docs/docs/navigation-structure/
const rootDoc = `---
layout: default
title: %s
nav_order: %d
has_children: true
permalink: /
---
`

// child command without children
const childDoc = `---
layout: default
title: %s
parent: %s
nav_order: %d
---
`

// docsCmd is for writing Markdown documentation for every command
var docsCmd = &cobra.Command{
	Use:    "docs [dir]",
	Short:  "Write Markdown documentation for every command",
	Args:   cobra.MaximumNArgs(1),
	Hidden: true,
	Run: func(cmd *cobra.Command, args []string) {
		dir := "docs"
		if len(args) > 0 {
			dir = args[0]
		}
		if err := makeDocs(dir); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	RootCmd.AddCommand(docsCmd)
}

// makeDocs parses the commands and outputs Markdown documentation files to dir
func makeDocs(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to make docs dir %s: %v", dir, err)
	}

	RootCmd.DisableAutoGenTag = true
	return doc.GenMarkdownTreeCustom(RootCmd, dir, filePrepender, linkHandler)
}

// filePrepender adds YAML headings that are required by the just-the-docs theme
// https://github.com/spf13/cobra/blob/master/doc/md_docs.md
func filePrepender(filename string) string {
	base := docName(filename)
	if base == RootCmd.Name() {
		return fmt.Sprintf(rootDoc, base, 0)
	}

	title := strings.TrimPrefix(base, RootCmd.Name()+"_")
	return fmt.Sprintf(childDoc, title, RootCmd.Name(), navOrder(title))
}

// linkHandler returns the URL to a documentation page
func linkHandler(filename string) string {
	base := docName(filename)
	if base == RootCmd.Name() {
		return "/"
	}
	return base
}

// navOrder is a command's position among the root's visible children
func navOrder(name string) int {
	order := 1
	for _, c := range RootCmd.Commands() {
		if !c.IsAvailableCommand() {
			continue
		}
		if c.Name() == name {
			return order
		}
		order++
	}
	return order
}

// docName is the base Markdown file name, ex: "dnaseq_stats"
func docName(filename string) string {
	name := filepath.Base(filename)
	return strings.TrimSuffix(name, path.Ext(name))
}
