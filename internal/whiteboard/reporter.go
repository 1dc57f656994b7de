package whiteboard

import "github.com/collabview/boardbridge/internal/shared/types"

// DialogOpener presents a dialog described by a descriptor to the user.
type DialogOpener interface {
	OpenDialog(d types.DialogDescriptor)
}

// Reporter turns embedded-surface load failures into a user-facing error
// dialog. All failure kinds (network, certificate, missing resource) collapse
// into the one generic dialog; no retry or reload is attempted.
type Reporter struct {
	dialogs DialogOpener
}

// NewReporter creates a reporter bound to the given dialog opener.
func NewReporter(dialogs DialogOpener) *Reporter {
	return &Reporter{dialogs: dialogs}
}

// OnLoadError handles one load-failure event. Each event opens its own
// dialog; nothing dedups repeats.
func (r *Reporter) OnLoadError() {
	r.dialogs.OpenDialog(types.DialogDescriptor{Kind: types.DialogWhiteboardError})
}
