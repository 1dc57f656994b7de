package whiteboard

import (
	"github.com/bytedance/sonic"
	"go.uber.org/zap"

	"github.com/collabview/boardbridge/internal/shared/types"
)

// StateSink commits validated collaboration credentials into host application
// state. Implementations are expected to be idempotent: re-committing the
// same details yields the same state.
type StateSink interface {
	CommitCollabDetails(details types.CollabDetails)
}

// MetadataSink publishes a record under a topic key on the conference
// metadata channel, replacing any previous record for that topic.
type MetadataSink interface {
	SetMetadata(topicKey string, record types.BroadcastRecord)
}

// DiscardFunc is an optional diagnostic hook invoked when an inbound payload
// is dropped. The surface emits expected noise, so discards are silent by
// default; the hook exists for implementers who need visibility.
type DiscardFunc func(reason string, payload []byte)

// Bridge receives serialized payloads emitted by the embedded surface,
// validates them against the credential schema, and forwards accepted
// credentials to host state and the metadata channel.
type Bridge struct {
	state           StateSink
	metadata        MetadataSink
	collabServerURL string
	onDiscard       DiscardFunc
	logger          *zap.Logger
}

// NewBridge creates a bridge bound to the given sinks. collabServerURL is the
// decoded collaboration server URL known at mount time; it rides along in
// every broadcast so remote participants can reach the same server.
func NewBridge(state StateSink, metadata MetadataSink, collabServerURL string, logger *zap.Logger) *Bridge {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bridge{
		state:           state,
		metadata:        metadata,
		collabServerURL: collabServerURL,
		logger:          logger,
	}
}

// WithDiscardHook sets the diagnostic hook for dropped payloads.
func (b *Bridge) WithDiscardHook(fn DiscardFunc) *Bridge {
	b.onDiscard = fn
	return b
}

// OnMessage handles one serialized payload from the embedded surface.
//
// Malformed or incomplete payloads are discarded with no observable effect.
// An accepted payload is committed to host state first and broadcast to the
// metadata channel second; each acceptance re-broadcasts unconditionally,
// which makes late duplicates valid re-announcements rather than errors.
func (b *Bridge) OnMessage(raw []byte) {
	var details types.CollabDetails
	if err := sonic.Unmarshal(raw, &details); err != nil {
		b.discard("unparseable payload", raw)
		return
	}

	if !details.Valid() {
		b.discard("missing roomId or roomKey", raw)
		return
	}

	b.state.CommitCollabDetails(details)
	b.metadata.SetMetadata(types.WhiteboardTopicKey, types.BroadcastRecord{
		CollabServerURL: b.collabServerURL,
		CollabDetails:   details,
	})

	b.logger.Debug("whiteboard session credentials accepted",
		zap.String("room_id", details.RoomID),
	)
}

func (b *Bridge) discard(reason string, payload []byte) {
	if b.onDiscard != nil {
		b.onDiscard(reason, payload)
	}
	b.logger.Debug("discarded surface payload", zap.String("reason", reason))
}
