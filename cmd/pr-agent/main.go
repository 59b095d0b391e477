package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/DarkGenius/pr-agent/internal/config"
	"github.com/DarkGenius/pr-agent/internal/mcp"
)

func main() {
	root := &cobra.Command{
		Use:   "pr-agent",
		Short: "MCP server for analyzing git changes and suggesting PR templates",
		RunE:  run,
	}

	root.PersistentFlags().String("templates-dir", "templates", "PR template directory")
	root.PersistentFlags().String("base-branch", "main", "Default base branch for comparisons")
	root.PersistentFlags().Int("max-diff-lines", 500, "Default diff line cap")
	root.PersistentFlags().String("git-timeout", "30s", "Timeout per git invocation")
	root.PersistentFlags().String("workspace-roots", "", "Comma-separated candidate working directories")
	root.PersistentFlags().String("log-level", "info", "Log level")
	root.PersistentFlags().String("transport", "stdio", "Transport: stdio or http")
	root.PersistentFlags().String("host", "0.0.0.0", "HTTP host")
	root.PersistentFlags().Int("port", 8000, "HTTP port")

	config.Init(root)

	if err := root.Execute(); err != nil {
		log.Fatalf("command failed: %v", err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	srv := mcp.New(mcp.DefaultConfig())

	if config.Transport() != "http" {
		return srv.ServeStdio()
	}

	addr := config.Host() + ":" + strconv.Itoa(config.Port())
	httpServer := &http.Server{
		Addr:    addr,
		Handler: srv.Handler,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("MCP server listening on %s", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(ctx)
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	}
}
