/*
Package monitoring provides performance monitoring and metrics collection.

# Overview

This package implements Prometheus-based metrics collection for the
boardbridge service, tracking HTTP requests, WebSocket traffic from embedded
surfaces, and the whiteboard protocol itself (navigations, credential
messages, broadcasts, dialogs).

# Usage

	// Create metrics collector
	metrics := monitoring.NewMetrics()

	// Add middleware to Gin router
	router.Use(monitoring.Middleware(metrics))

	// Record protocol metrics
	metrics.RecordNavigation(true)
	metrics.RecordMessageAccepted()

Metrics are exposed through promhttp on /metrics.
*/
package monitoring
