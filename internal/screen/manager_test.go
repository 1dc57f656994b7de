package screen

import (
	"strings"
	"testing"

	"github.com/collabview/boardbridge/internal/shared/types"
)

type nullSinks struct{}

func (nullSinks) CommitCollabDetails(types.CollabDetails)   {}
func (nullSinks) SetMetadata(string, types.BroadcastRecord) {}
func (nullSinks) OpenDialog(types.DialogDescriptor)         {}

func newTestManager() *Manager {
	return NewManager(nullSinks{}, nullSinks{}, nullSinks{}, nil)
}

func TestMountResolvesOnce(t *testing.T) {
	mgr := newTestManager()

	scr := mgr.Mount(types.SessionParams{
		LocationHref:    "https://app.example/",
		CollabServerURL: "https://collab.example",
	})

	if scr.URI == "" {
		t.Fatal("expected resolvable mount")
	}
	if !strings.HasPrefix(scr.ID, "scr_") {
		t.Errorf("unexpected screen ID: %s", scr.ID)
	}

	got, ok := mgr.Get(scr.ID)
	if !ok || got.URI != scr.URI {
		t.Error("expected mounted screen to be retrievable")
	}
}

func TestMountUnresolvableIsValid(t *testing.T) {
	mgr := newTestManager()

	scr := mgr.Mount(types.SessionParams{LocationHref: "https://app.example/"})

	if scr.URI != "" {
		t.Errorf("expected empty sentinel URI, got %q", scr.URI)
	}

	stats := mgr.Stats()
	if stats.Mounted != 1 || stats.Unresolvable != 1 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestMountAppliesDefaultServerURL(t *testing.T) {
	mgr := newTestManager().WithDefaultServerURL("https://collab.example")

	scr := mgr.Mount(types.SessionParams{LocationHref: "https://app.example/"})

	if scr.URI == "" {
		t.Fatal("expected default server URL to make the mount resolvable")
	}
	if !strings.HasPrefix(scr.URI, "https://collab.example/boards?") {
		t.Errorf("unexpected URI: %s", scr.URI)
	}
}

func TestScreenShouldAllow(t *testing.T) {
	mgr := newTestManager()

	scr := mgr.Mount(types.SessionParams{
		LocationHref:    "https://app.example/",
		CollabServerURL: "https://collab.example",
	})

	if !scr.ShouldAllow(scr.URI) {
		t.Error("expected canonical URI to be allowed")
	}
	if scr.ShouldAllow("https://elsewhere.example/") {
		t.Error("expected foreign URL to be blocked")
	}
}

func TestUnmount(t *testing.T) {
	mgr := newTestManager()
	scr := mgr.Mount(types.SessionParams{
		LocationHref:    "https://app.example/",
		CollabServerURL: "https://collab.example",
	})

	if !mgr.Unmount(scr.ID) {
		t.Fatal("expected unmount to succeed")
	}
	if mgr.Unmount(scr.ID) {
		t.Error("expected second unmount to fail")
	}
	if len(mgr.List()) != 0 {
		t.Error("expected no mounted screens")
	}
}
