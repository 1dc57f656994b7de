package types

// CollabDetails identifies and authenticates a specific whiteboard
// collaboration session. Both fields must be non-empty for the details to be
// usable; anything less is treated as absent.
type CollabDetails struct {
	RoomID  string `json:"roomId"`
	RoomKey string `json:"roomKey"`
}

// Valid reports whether the details carry both credentials.
func (d CollabDetails) Valid() bool {
	return d.RoomID != "" && d.RoomKey != ""
}

// SessionParams are the inputs to session URI resolution, read once from the
// host navigation route when a screen mounts. The optional fields may arrive
// percent-encoded and are decoded during resolution.
type SessionParams struct {
	LocationHref         string         `json:"location_href" binding:"required"`
	CollabServerURL      string         `json:"collab_server_url,omitempty"`
	CollabDetails        *CollabDetails `json:"collab_details,omitempty"`
	LocalParticipantName string         `json:"local_participant_name,omitempty"`
}

// BroadcastRecord is published to the conference metadata channel so other
// participants of the same call can join the whiteboard session.
type BroadcastRecord struct {
	CollabServerURL string        `json:"collabServerUrl,omitempty"`
	CollabDetails   CollabDetails `json:"collabDetails"`
}

// WhiteboardTopicKey is the fixed metadata topic reserved for whiteboard
// sessions.
const WhiteboardTopicKey = "whiteboard"
