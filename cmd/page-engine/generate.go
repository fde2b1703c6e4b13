// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/platx-ai/page-engine/internal/content"
	"github.com/platx-ai/page-engine/internal/generate"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate render routines and the content guide for all sections",
	Long: `Generate runs the shape classifier over every document under the
content root and writes one render routine per section: a thin delegation
to the generic renderer for simple shapes, a specialized routine with the
detected keys inlined for complex ones. It also regenerates the content
editing guide. Running it twice on unchanged documents produces identical
output.`,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	site := siteConfig(cmd)
	if dir, _ := cmd.Flags().GetString("sections-dir"); dir != "" {
		site.SectionsDir = dir
	}
	if dir, _ := cmd.Flags().GetString("docs-dir"); dir != "" {
		site.DocsDir = dir
	}

	g := &generate.Generator{
		Source:      content.NewDirSource(site.ContentDir),
		SectionsDir: site.SectionsDir,
		DocsDir:     site.DocsDir,
	}

	summary, err := g.Run(context.Background(), os.Stdout)
	if err != nil {
		return err
	}

	fmt.Printf("%d section(s): %d delegating, %d specialized, %d failed\n",
		summary.Total(), summary.Delegated, summary.Specialized, summary.Failed)

	if summary.HasFailures() {
		return fmt.Errorf("%d section(s) failed analysis", summary.Failed)
	}
	return nil
}

func init() {
	generateCmd.Flags().String("sections-dir", "", "output directory for render routines (overrides config)")
	generateCmd.Flags().String("docs-dir", "", "output directory for the content guide (overrides config)")

	rootCmd.AddCommand(generateCmd)
}
