// Package whiteboard implements the session-resolution and message-bridge
// protocol for the embedded collaborative whiteboard surface.
//
// Components:
//   - Resolve: canonical session URI construction (pure)
//   - ShouldAllow: navigation guard with a singleton allow-list (pure)
//   - Bridge: validates credential messages from the surface and forwards
//     them to host state and the conference metadata channel
//   - Reporter: surfaces load failures as a generic error dialog
//
// The embedded surface itself (rendering, script sandbox) lives outside this
// service and talks to it through the ws package.
package whiteboard
