package whiteboard

import "github.com/collabview/boardbridge/internal/shared/types"

// ShouldAllow decides whether a navigation attempt raised inside the embedded
// surface may proceed. The allowed set is exactly the canonical session URI:
// it is recomputed from the live params on every call rather than cached, so
// the guard can never diverge from what Resolve produced for the initial
// load. Everything else is blocked, including same-origin variations, query
// differences, and trailing-slash variants.
//
// ShouldAllow is a pure decision function; the embedding host cancels the
// navigation when it returns false.
func ShouldAllow(requestedURL string, p types.SessionParams) bool {
	canonical := Resolve(p)
	if canonical == "" {
		// Unresolvable session: the surface has nothing to show and
		// nowhere to go.
		return false
	}
	return requestedURL == canonical
}
