package whiteboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collabview/boardbridge/internal/shared/types"
)

// recorder implements both sinks and records call ordering.
type recorder struct {
	calls      []string
	committed  []types.CollabDetails
	broadcasts map[string][]types.BroadcastRecord
}

func newRecorder() *recorder {
	return &recorder{broadcasts: make(map[string][]types.BroadcastRecord)}
}

func (r *recorder) CommitCollabDetails(details types.CollabDetails) {
	r.calls = append(r.calls, "commit")
	r.committed = append(r.committed, details)
}

func (r *recorder) SetMetadata(topic string, record types.BroadcastRecord) {
	r.calls = append(r.calls, "broadcast")
	r.broadcasts[topic] = append(r.broadcasts[topic], record)
}

func TestBridgeAcceptsValidCredentials(t *testing.T) {
	rec := newRecorder()
	bridge := NewBridge(rec, rec, "https://collab.example", nil)

	bridge.OnMessage([]byte(`{"roomId":"r1","roomKey":"k1"}`))

	require.Len(t, rec.committed, 1)
	assert.Equal(t, types.CollabDetails{RoomID: "r1", RoomKey: "k1"}, rec.committed[0])

	records := rec.broadcasts[types.WhiteboardTopicKey]
	require.Len(t, records, 1)
	assert.Equal(t, "https://collab.example", records[0].CollabServerURL)
	assert.Equal(t, rec.committed[0], records[0].CollabDetails)
}

func TestBridgeCommitHappensBeforeBroadcast(t *testing.T) {
	rec := newRecorder()
	bridge := NewBridge(rec, rec, "", nil)

	bridge.OnMessage([]byte(`{"roomId":"r1","roomKey":"k1"}`))

	assert.Equal(t, []string{"commit", "broadcast"}, rec.calls)
}

func TestBridgeDiscardsInvalidPayloads(t *testing.T) {
	cases := map[string]string{
		"not json":        `not json`,
		"empty":           ``,
		"missing roomKey": `{"roomId":"r1"}`,
		"missing roomId":  `{"roomKey":"k1"}`,
		"empty fields":    `{"roomId":"","roomKey":""}`,
		"wrong shape":     `[1,2,3]`,
	}

	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			rec := newRecorder()
			bridge := NewBridge(rec, rec, "https://collab.example", nil)

			bridge.OnMessage([]byte(payload))

			assert.Empty(t, rec.calls, "payload must produce zero commits and zero broadcasts")
		})
	}
}

func TestBridgeRepeatedAcceptanceRebroadcasts(t *testing.T) {
	rec := newRecorder()
	bridge := NewBridge(rec, rec, "https://collab.example", nil)

	bridge.OnMessage([]byte(`{"roomId":"r1","roomKey":"k1"}`))
	bridge.OnMessage([]byte(`{"roomId":"r1","roomKey":"k1"}`))

	assert.Len(t, rec.committed, 2)
	assert.Len(t, rec.broadcasts[types.WhiteboardTopicKey], 2)
}

func TestBridgeDiscardHook(t *testing.T) {
	rec := newRecorder()
	var reasons []string
	bridge := NewBridge(rec, rec, "", nil).WithDiscardHook(func(reason string, _ []byte) {
		reasons = append(reasons, reason)
	})

	bridge.OnMessage([]byte(`garbage`))
	bridge.OnMessage([]byte(`{"roomId":"r1"}`))
	bridge.OnMessage([]byte(`{"roomId":"r1","roomKey":"k1"}`))

	assert.Len(t, reasons, 2)
	assert.Len(t, rec.committed, 1)
}
