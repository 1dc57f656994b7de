// Package types provides shared data structures for the boardbridge service.
//
// This package defines the core types exchanged between the embedded
// whiteboard surface and the host application:
//   - CollabDetails: credentials identifying a whiteboard session
//   - SessionParams: inputs to canonical session URI resolution
//   - BroadcastRecord: the record published to the conference metadata channel
//   - SurfaceEvent / NavigationDecision: WebSocket wire types for the
//     embedded-surface channel
//   - DialogDescriptor: descriptor handed to the dialog service
package types
