// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/platx-ai/page-engine/internal/content"
	"github.com/platx-ai/page-engine/internal/prefs"
	"github.com/platx-ai/page-engine/internal/server"
	"github.com/platx-ai/page-engine/pkg/types"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve rendered sections over HTTP",
	Long: `Serve starts the rendering server. Every request loads its section
document fresh from the content root and renders it on the spot; nothing
is cached. The server also exposes the UI preference store used for
theme persistence.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	log, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	cfg := types.ServerConfig{
		Addr:         viper.GetString("server.addr"),
		ReadTimeout:  viper.GetDuration("server.read_timeout"),
		WriteTimeout: viper.GetDuration("server.write_timeout"),
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Addr = addr
	}
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = 10 * time.Second
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = 30 * time.Second
	}

	site := siteConfig(cmd)
	src := content.NewDirSource(site.ContentDir)

	store, err := prefs.Open(viper.GetString("prefs.path"))
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return server.New(cfg, src, store, site.Sections, log).Run(ctx)
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (overrides config)")

	rootCmd.AddCommand(serveCmd)
}
