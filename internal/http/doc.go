// Package http provides HTTP handlers and routing for the boardbridge REST
// API.
//
// This package implements all HTTP endpoints using the Gin framework:
//
//   - Health: / and /health (includes collab-server reachability)
//   - Screens: /screens, /screens/:id
//   - Metadata: /metadata, /metadata/:topic
//   - State: /state/whiteboard
//   - Dialogs: /dialogs, /dialogs/:id
//
// The embedded-surface WebSocket endpoints live in the ws package; routes
// are registered together in the server package.
package http
