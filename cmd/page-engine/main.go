// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the page-engine CLI: the rendering
// server, the offline section generator, and the scaffolding command for
// new sections.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/platx-ai/page-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the page-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "page-engine",
	Short: "Content-driven page renderer",
	Long: `page-engine renders page sections from Markdown documents with YAML
front-matter headers. A generic engine infers each header's shape (feature
lists, metric lists, nested objects, featured reports, long-form bodies)
and produces the matching layout without per-section code.

Subcommands cover the live surface (serve, render) and the offline tools
(generate, create-section).`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./page-engine.yaml or ~/.config/page-engine/config.yaml)")
	rootCmd.PersistentFlags().String("content-dir", "", "content root (overrides config)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("page-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "page-engine"))
		}
	}

	viper.SetDefault("site.content_dir", "content")
	viper.SetDefault("site.sections_dir", filepath.Join("src", "sections"))
	viper.SetDefault("site.docs_dir", "docs")
	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("prefs.path", "prefs.db")

	viper.SetEnvPrefix("PAGE_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// siteConfig resolves the content layout from config and flags.
func siteConfig(cmd *cobra.Command) types.SiteConfig {
	cfg := types.SiteConfig{
		ContentDir:  viper.GetString("site.content_dir"),
		SectionsDir: viper.GetString("site.sections_dir"),
		DocsDir:     viper.GetString("site.docs_dir"),
		Sections:    viper.GetStringSlice("site.sections"),
	}
	if dir, _ := cmd.Flags().GetString("content-dir"); dir != "" {
		cfg.ContentDir = dir
	}
	return cfg
}

// newLogger builds the process logger; --debug flips the level.
func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
