package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/collabview/boardbridge/internal/config"
	"github.com/collabview/boardbridge/internal/server"
)

func main() {
	// Parse flags; flags override environment configuration
	port := flag.String("port", "", "Server port")
	collabURL := flag.String("collab-server", "", "Default collaboration server URL")
	dev := flag.Bool("dev", false, "Enable development logging")
	flag.Parse()

	cfg := config.LoadOrDefault()
	if *port != "" {
		cfg.Server.Port = *port
	}
	if *collabURL != "" {
		cfg.Collab.DefaultServerURL = *collabURL
	}
	if *dev {
		cfg.Logging.Development = true
	}

	// Create server
	srv, err := server.NewServer(cfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Start server in goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := srv.Run(); err != nil {
			errChan <- err
		}
	}()

	// Wait for shutdown signal or error
	select {
	case <-sigChan:
		log.Println("Shutting down gracefully...")
		if err := srv.Close(); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
	case err := <-errChan:
		log.Fatalf("Server error: %v", err)
	}
}
