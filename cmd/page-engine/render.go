// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/platx-ai/page-engine/internal/content"
	"github.com/platx-ai/page-engine/internal/render"
)

var renderCmd = &cobra.Command{
	Use:   "render [sections...]",
	Short: "Render sections to HTML on stdout",
	Long: `Render loads the named section documents from the content root,
classifies their headers, and writes the rendered HTML to stdout (or to
a file with --out). With --all every section under the content root is
rendered in order. Each section loads independently; a failed section
renders as its inline error state without affecting the others.`,
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	all, _ := cmd.Flags().GetBool("all")
	outPath, _ := cmd.Flags().GetString("out")

	log, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	site := siteConfig(cmd)
	src := content.NewDirSource(site.ContentDir)

	ids := args
	if all {
		if ids, err = src.Sections(); err != nil {
			return err
		}
	}
	if len(ids) == 0 {
		return fmt.Errorf("no sections: name sections or pass --all")
	}

	r := render.New(log)
	page, err := r.Page(context.Background(), src, ids)
	if err != nil {
		return err
	}

	if outPath != "" {
		if err := os.WriteFile(outPath, []byte(page), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}
		fmt.Fprintf(os.Stderr, "Rendered %d section(s) to %s\n", len(ids), outPath)
		return nil
	}

	fmt.Print(string(page))
	return nil
}

func init() {
	renderCmd.Flags().Bool("all", false, "render every section under the content root")
	renderCmd.Flags().String("out", "", "write output to a file instead of stdout")

	rootCmd.AddCommand(renderCmd)
}
