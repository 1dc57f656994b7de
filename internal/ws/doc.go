// Package ws hosts the event channel between the embedded whiteboard surface
// and the boardbridge service.
//
// Each mounted screen gets one WebSocket connection from its embedded
// surface. The surface raises two independent, unordered event streams over
// it: navigation intents (answered synchronously with an allow/deny
// decision) and postMessage-style serialized payloads (forwarded to the
// screen's message bridge). Load failures arrive on the same connection.
//
// Message Types (Surface → Host):
//   - navigate: navigation intent carrying the requested URL
//   - message: serialized payload from the surface's messaging channel
//   - load_error: the surface failed to load
//   - ping: keep-alive
//
// Message Types (Host → Surface):
//   - navigation_decision: allow/deny for a navigate event
//   - pong: keep-alive reply
//
// A second endpoint streams conference metadata updates to host-side
// participant listeners.
package ws
