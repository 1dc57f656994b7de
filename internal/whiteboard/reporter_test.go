package whiteboard

import (
	"testing"

	"github.com/collabview/boardbridge/internal/shared/types"
)

type dialogRecorder struct {
	opened []types.DialogDescriptor
}

func (d *dialogRecorder) OpenDialog(desc types.DialogDescriptor) {
	d.opened = append(d.opened, desc)
}

func TestReporterOpensDialog(t *testing.T) {
	dialogs := &dialogRecorder{}
	reporter := NewReporter(dialogs)

	reporter.OnLoadError()

	if len(dialogs.opened) != 1 {
		t.Fatalf("expected 1 dialog, got %d", len(dialogs.opened))
	}
	if dialogs.opened[0].Kind != types.DialogWhiteboardError {
		t.Errorf("unexpected dialog kind: %s", dialogs.opened[0].Kind)
	}
}

func TestReporterRepeatedFailures(t *testing.T) {
	dialogs := &dialogRecorder{}
	reporter := NewReporter(dialogs)

	// No internal state suppresses repeats; every event gets its dialog.
	for i := 0; i < 3; i++ {
		reporter.OnLoadError()
	}

	if len(dialogs.opened) != 3 {
		t.Errorf("expected 3 dialogs, got %d", len(dialogs.opened))
	}
}
