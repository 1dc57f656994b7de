package whiteboard

import (
	"net/url"
	"strings"

	"github.com/collabview/boardbridge/internal/shared/types"
)

// boardsPath is the path on the collaboration server that hosts the
// whiteboard surface.
const boardsPath = "/boards"

// Resolve computes the single canonical session URI for the given route
// parameters, or the empty string when no session can be resolved.
//
// The URI carries everything the embedded surface needs to create a new
// collaboration session (no CollabDetails) or join an existing one
// (CollabDetails present), parameterized by the collaboration server and the
// local participant's display name. Resolve is pure and deterministic:
// identical params always produce byte-identical output, which is what lets
// the navigation guard recompute it for exact-match comparison.
func Resolve(p types.SessionParams) string {
	if p.LocationHref == "" {
		return ""
	}

	serverURL := decodeParam(p.CollabServerURL)
	if serverURL == "" {
		return ""
	}

	q := url.Values{}
	q.Set("meeting", p.LocationHref)

	if name := decodeParam(p.LocalParticipantName); name != "" {
		q.Set("username", name)
	}

	if p.CollabDetails != nil {
		details := types.CollabDetails{
			RoomID:  decodeParam(p.CollabDetails.RoomID),
			RoomKey: decodeParam(p.CollabDetails.RoomKey),
		}
		if details.Valid() {
			q.Set("roomId", details.RoomID)
			q.Set("roomKey", details.RoomKey)
		}
	}

	// url.Values.Encode sorts keys, keeping the output stable.
	return strings.TrimRight(serverURL, "/") + boardsPath + "?" + q.Encode()
}

// DecodedServerURL returns the percent-decoded collaboration server URL, or
// the empty string when the params carry none. It is what rides along in
// metadata broadcasts so remote participants reach the same server.
func DecodedServerURL(p types.SessionParams) string {
	return decodeParam(p.CollabServerURL)
}

// decodeParam percent-decodes a route parameter. Malformed percent-encoding
// falls back to the raw value so resolution stays total.
func decodeParam(s string) string {
	if s == "" {
		return ""
	}
	decoded, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}
