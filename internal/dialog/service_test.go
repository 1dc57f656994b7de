package dialog

import (
	"testing"

	"github.com/collabview/boardbridge/internal/shared/types"
)

func TestOpenDialogAssignsIDs(t *testing.T) {
	svc := NewService(nil)

	svc.OpenDialog(types.DialogDescriptor{Kind: types.DialogWhiteboardError})
	svc.OpenDialog(types.DialogDescriptor{Kind: types.DialogWhiteboardError})

	open := svc.Open()
	if len(open) != 2 {
		t.Fatalf("expected 2 dialogs, got %d", len(open))
	}
	if open[0].ID == open[1].ID {
		t.Error("expected distinct dialog IDs")
	}
}

func TestDismiss(t *testing.T) {
	svc := NewService(nil)
	svc.OpenDialog(types.DialogDescriptor{Kind: types.DialogWhiteboardError})

	open := svc.Open()
	if !svc.Dismiss(open[0].ID) {
		t.Fatal("expected dismiss to succeed")
	}
	if svc.Dismiss(open[0].ID) {
		t.Error("expected second dismiss to fail")
	}
	if len(svc.Open()) != 0 {
		t.Error("expected no open dialogs")
	}
}
