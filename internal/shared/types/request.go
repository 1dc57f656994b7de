package types

// MountRequest asks the service to mount a whiteboard screen for the given
// route parameters.
type MountRequest struct {
	Params SessionParams `json:"params" binding:"required"`
}

// SurfaceEvent is a WebSocket message raised by the embedded surface.
type SurfaceEvent struct {
	Type    string `json:"type"`
	URL     string `json:"url,omitempty"`     // navigate
	Payload string `json:"payload,omitempty"` // message
}

// Surface event types.
const (
	EventNavigate  = "navigate"
	EventMessage   = "message"
	EventLoadError = "load_error"
	EventPing      = "ping"
)

// NavigationDecision answers a navigate event.
type NavigationDecision struct {
	Type    string `json:"type"`
	URL     string `json:"url"`
	Allowed bool   `json:"allowed"`
}

// DialogDescriptor describes a dialog the host UI should present.
type DialogDescriptor struct {
	ID   string `json:"id,omitempty"`
	Kind string `json:"kind"`
}

// DialogWhiteboardError is the generic whiteboard load-failure dialog.
const DialogWhiteboardError = "whiteboard-load-error"
