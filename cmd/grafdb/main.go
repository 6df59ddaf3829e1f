package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	grafmcp "github.com/sanonone/grafdb/internal/mcp"
	"github.com/sanonone/grafdb/internal/server"
	"github.com/sanonone/grafdb/pkg/engine"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	configPath := flag.String("config", "", "Path to the YAML configuration file")
	httpAddr := flag.String("http-addr", "", "Listen address for the REST API (overrides config, e.g. :9090)")
	datasetPath := flag.String("dataset", "", "Path to the edge-list dataset (overrides config)")
	authToken := flag.String("auth-token", "", "Bearer token protecting the API (overrides config)")
	mcpMode := flag.Bool("mcp", false, "Serve MCP over stdio instead of starting the HTTP server")

	flag.Parse()

	cfg, err := server.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Flags win over the config file.
	if *httpAddr != "" {
		cfg.HTTPAddr = *httpAddr
	}
	if *datasetPath != "" {
		cfg.DatasetPath = *datasetPath
	}
	if *authToken != "" {
		cfg.AuthToken = *authToken
	}

	if cfg.DatasetPath == "" {
		log.Fatal("No dataset given: set -dataset or dataset_path in the config file")
	}

	eng, err := engine.Open(engine.Options{
		DatasetPath: cfg.DatasetPath,
		OnMalformed: cfg.MalformedPolicy(),
	})
	if err != nil {
		log.Fatalf("Failed to open the graph engine: %v", err)
	}
	defer eng.Close()

	if *mcpMode {
		// MCP clients own the process lifecycle over stdio. Logging on
		// stdout would corrupt the protocol stream.
		log.SetOutput(os.Stderr)
		srv := grafmcp.NewMCPServer(eng)
		if err := srv.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
			log.Fatalf("MCP server stopped: %v", err)
		}
		return
	}

	srv := server.NewServer(eng, cfg)

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Run(); err != nil {
			log.Fatalf("Server stopped: %v", err)
		}
	}()

	<-shutdownChan

	srv.Shutdown()
}
