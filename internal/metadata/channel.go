// Package metadata implements the conference-wide metadata channel used to
// broadcast whiteboard session info to other participants of the same call.
package metadata

import (
	"sync"

	"go.uber.org/zap"

	"github.com/collabview/boardbridge/internal/shared/types"
)

// Update is delivered to subscribers when a topic's record changes.
type Update struct {
	TopicKey string                `json:"topic_key"`
	Record   types.BroadcastRecord `json:"record"`
}

// Channel is a keyed replace-or-create record store with subscriber fanout.
// Publishing is fire-and-forget: a subscriber that cannot keep up has its
// update dropped rather than blocking the publisher.
type Channel struct {
	mu          sync.RWMutex
	records     map[string]types.BroadcastRecord
	subscribers map[string]chan Update
	logger      *zap.Logger
}

// NewChannel creates an empty metadata channel.
func NewChannel(logger *zap.Logger) *Channel {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Channel{
		records:     make(map[string]types.BroadcastRecord),
		subscribers: make(map[string]chan Update),
		logger:      logger,
	}
}

// SetMetadata replaces or creates the record for the topic and fans the
// update out to all subscribers.
func (c *Channel) SetMetadata(topicKey string, record types.BroadcastRecord) {
	c.mu.Lock()
	c.records[topicKey] = record

	update := Update{TopicKey: topicKey, Record: record}
	for id, sub := range c.subscribers {
		select {
		case sub <- update:
		default:
			c.logger.Warn("metadata subscriber lagging, update dropped",
				zap.String("subscriber", id),
				zap.String("topic", topicKey),
			)
		}
	}
	c.mu.Unlock()
}

// Get returns the current record for the topic.
func (c *Channel) Get(topicKey string) (types.BroadcastRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	record, ok := c.records[topicKey]
	return record, ok
}

// Subscribe registers a listener for metadata updates. The returned channel
// is buffered; slow consumers lose updates instead of blocking publishers.
func (c *Channel) Subscribe(id string) <-chan Update {
	c.mu.Lock()
	defer c.mu.Unlock()

	sub := make(chan Update, 16)
	c.subscribers[id] = sub
	return sub
}

// Unsubscribe removes a listener and closes its channel.
func (c *Channel) Unsubscribe(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if sub, ok := c.subscribers[id]; ok {
		delete(c.subscribers, id)
		close(sub)
	}
}

// Topics returns all topic keys with a current record.
func (c *Channel) Topics() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := make([]string, 0, len(c.records))
	for key := range c.records {
		keys = append(keys, key)
	}
	return keys
}
