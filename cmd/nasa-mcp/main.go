package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nhGeri/NASA-MCP/internal/config"
	"github.com/nhGeri/NASA-MCP/internal/mcp"
)

func main() {
	root := &cobra.Command{
		Use:          "nasa-mcp",
		Short:        "MCP server for the NASA Images and Video Library",
		SilenceUsage: true,
		RunE:         run,
	}

	root.PersistentFlags().String("transport", "stdio", "Transport to serve: stdio or http")
	root.PersistentFlags().String("host", "0.0.0.0", "HTTP host")
	root.PersistentFlags().Int("port", 8000, "HTTP port")
	root.PersistentFlags().String("endpoint-path", "/mcp", "HTTP path of the MCP endpoint")
	root.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().String("nasa-api-url", config.DefaultAPIURL, "NASA Images API base URL")
	root.PersistentFlags().String("nasa-site-url", config.DefaultSiteURL, "Public NASA images site used for details links")
	root.PersistentFlags().String("http-timeout", config.DefaultHTTPTimeout.String(), "Timeout of each request to the NASA API")
	root.PersistentFlags().Float64("nasa-rate-limit", 0, "Maximum requests per second to the NASA API (0 disables)")
	root.PersistentFlags().Int("captions-preview-chars", 1000, "Length of the caption preview")

	config.Init(root)

	if err := root.Execute(); err != nil {
		log.Fatalf("nasa-mcp: %v", err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := mcp.DefaultConfig()
	if err != nil {
		return err
	}
	srv, err := mcp.New(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch transport := config.Transport(); transport {
	case "stdio":
		err := srv.ServeStdio(ctx, os.Stdin, os.Stdout)
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	case "http":
		return serveHTTP(ctx, srv, cfg)
	default:
		return fmt.Errorf("unknown transport %q (want stdio or http)", transport)
	}
}

func serveHTTP(ctx context.Context, srv *mcp.Server, cfg mcp.Config) error {
	addr := net.JoinHostPort(config.Host(), strconv.Itoa(config.Port()))
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           srv.Handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		cfg.Logger.Info("MCP server listening", "addr", addr, "endpoint", cfg.EndpointPath)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
