// Package main is the entry point for the boardbridge server.
//
// boardbridge brokers the channel between an embedded collaborative
// whiteboard surface (an external web runtime) and the conferencing host
// application: it resolves the canonical session URI, gates every navigation
// attempt inside the embed, validates credential messages posted by the
// surface, and fans accepted sessions out to other conference participants
// over the metadata channel.
//
// The server provides:
//   - REST API for screen lifecycle, metadata, host state, and dialogs
//   - WebSocket channels for embedded surfaces and metadata listeners
//   - Prometheus metrics and rate limiting
//
// Configuration:
//   - Environment variables (12-factor)
//   - CLI flags (override env vars)
//
// Usage:
//
//	# Production mode
//	./server -port 8000 -collab-server https://collab.example
//
//	# Development mode (colored logs, debug level)
//	./server -dev
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
