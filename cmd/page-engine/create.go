// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/platx-ai/page-engine/internal/scaffold"
)

var createCmd = &cobra.Command{
	Use:   "create-section <name>",
	Short: "Scaffold a new section document and render routine",
	Long: `Create-section writes a new document with the default feature-list
shape and a matching delegating render routine. The name must start with
a lowercase letter and contain only lowercase letters, numbers, and
hyphens. An existing section is never overwritten.`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

func runCreate(cmd *cobra.Command, args []string) error {
	site := siteConfig(cmd)

	result, err := scaffold.Create(args[0], site.ContentDir, site.SectionsDir)
	if err != nil {
		return err
	}

	fmt.Printf("Created %s\n", result.DocumentPath)
	fmt.Printf("Created %s\n", result.RoutinePath)
	fmt.Printf("\nNext steps:\n")
	fmt.Printf("  1. Edit the content in %s\n", result.DocumentPath)
	fmt.Printf("  2. Add %q to site.sections in page-engine.yaml\n", args[0])
	return nil
}

func init() {
	rootCmd.AddCommand(createCmd)
}
