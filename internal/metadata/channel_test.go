package metadata

import (
	"testing"

	"github.com/collabview/boardbridge/internal/shared/types"
)

func TestChannelReplaceOrCreate(t *testing.T) {
	ch := NewChannel(nil)

	if _, ok := ch.Get("whiteboard"); ok {
		t.Fatal("empty channel should have no record")
	}

	ch.SetMetadata("whiteboard", types.BroadcastRecord{
		CollabServerURL: "https://collab.example",
		CollabDetails:   types.CollabDetails{RoomID: "r1", RoomKey: "k1"},
	})

	record, ok := ch.Get("whiteboard")
	if !ok || record.CollabDetails.RoomID != "r1" {
		t.Fatalf("unexpected record: %+v", record)
	}

	// Second publish replaces the first.
	ch.SetMetadata("whiteboard", types.BroadcastRecord{
		CollabDetails: types.CollabDetails{RoomID: "r2", RoomKey: "k2"},
	})

	record, _ = ch.Get("whiteboard")
	if record.CollabDetails.RoomID != "r2" {
		t.Errorf("expected replacement, got %+v", record)
	}
}

func TestChannelFanout(t *testing.T) {
	ch := NewChannel(nil)
	sub := ch.Subscribe("participant-1")

	ch.SetMetadata("whiteboard", types.BroadcastRecord{
		CollabDetails: types.CollabDetails{RoomID: "r1", RoomKey: "k1"},
	})

	update := <-sub
	if update.TopicKey != "whiteboard" {
		t.Errorf("unexpected topic: %s", update.TopicKey)
	}
	if update.Record.CollabDetails.RoomKey != "k1" {
		t.Errorf("unexpected record: %+v", update.Record)
	}
}

func TestChannelSlowSubscriberDropsUpdates(t *testing.T) {
	ch := NewChannel(nil)
	ch.Subscribe("slow")

	// Overflow the subscriber buffer; publishers must not block.
	for i := 0; i < 100; i++ {
		ch.SetMetadata("whiteboard", types.BroadcastRecord{
			CollabDetails: types.CollabDetails{RoomID: "r", RoomKey: "k"},
		})
	}
}

func TestChannelUnsubscribeCloses(t *testing.T) {
	ch := NewChannel(nil)
	sub := ch.Subscribe("participant-1")
	ch.Unsubscribe("participant-1")

	if _, open := <-sub; open {
		t.Error("expected closed subscription channel")
	}

	// Unsubscribing twice is a no-op.
	ch.Unsubscribe("participant-1")
}
