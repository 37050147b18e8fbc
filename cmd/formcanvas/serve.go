package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/formcanvas/formcanvas/internal/server"
)

type serveOptions struct {
	addr string
}

func newServeCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the form registry over HTTP",
		Long:  `Start the HTTP API that lists, creates, updates, and deletes saved forms.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(rootFlags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "Listen address (overrides FORMCANVAS_ADDR)")

	return cmd
}

func runServe(rootFlags *rootFlags, opts *serveOptions) error {
	cfg, err := loadConfig(rootFlags)
	if err != nil {
		return err
	}

	log, err := newAppLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	forms, err := openForms(cfg)
	if err != nil {
		return fmt.Errorf("failed to open form registry: %w", err)
	}

	serverOpts, err := server.OptionsFromEnv()
	if err != nil {
		return fmt.Errorf("failed to read server environment: %w", err)
	}
	if opts.addr != "" {
		serverOpts.Addr = opts.addr
	}

	srv := server.New(serverOpts, forms, log)
	srv.Start()
	log.WithFields(map[string]any{"addr": serverOpts.Addr}).Info("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	log.Info("server stopped")
	return nil
}
