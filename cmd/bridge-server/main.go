package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"bridgeserver/internal/config"
	"bridgeserver/internal/log"
	"bridgeserver/internal/server"
	"bridgeserver/internal/session"
	"bridgeserver/internal/transport"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var port int
	var configPath string

	cmd := &cobra.Command{
		Use:   "bridge-server",
		Short: "Networked contract bridge game server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(port, configPath)
		},
	}

	cmd.Flags().IntVar(&port, "port", 3000, "port to listen on")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a JSON config file (optional)")
	return cmd
}

func run(port int, configPath string) error {
	if err := config.Load(configPath); err != nil {
		return err
	}
	cfg := config.Get()
	if port != 3000 {
		cfg.Port = port
	}

	logger := log.For("main")

	srv := server.New()
	hub := transport.NewHub(cfg.PacingDelay(), nil, nil)
	dispatcher := session.NewDispatcher(srv, hub)
	hub.SetHandlers(dispatcher.OnMessage, dispatcher.OnClose)

	mux := http.NewServeMux()
	mux.Handle("/ws", hub)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: mux,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Int("port", cfg.Port).Msg("listening")
		errCh <- httpServer.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
	case <-sigCh:
		logger.Info().Msg("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			return err
		}
	}
	return nil
}
