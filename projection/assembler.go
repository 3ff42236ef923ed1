package projection

import (
	"forum-feed/domain"
	"forum-feed/domain/feed"

	"github.com/samber/lo"
)

// Assemble turns the raw collections into unsorted feed candidates.
// The boundary candidate, when any, always comes first so that a stable sort
// keeps it ahead of a thread item sent at the same millisecond.
// Topics whose thread isn't loaded are dropped and reported to the observer.
func (t *Timeline) Assemble(threads []domain.Thread, topics []domain.Topic, readStatus *domain.ReadStatus) []feed.Item {
	threadsByID := indexThreads(threads)

	candidates := make([]feed.Item, 0, len(topics)+1)
	if readStatus != nil && !readStatus.Read {
		candidates = append(candidates, feed.NewBoundary(readStatus.LastReadAt))
	}

	resolved := lo.FilterMap(topics, func(topic domain.Topic, _ int) (feed.Item, bool) {
		thread, ok := threadsByID[topic.ThreadID]
		if !ok {
			t.observer.DanglingTopic(topic)
			t.log.Debug("Dropping topic without loaded thread",
				"topic", topic.ID, "thread", topic.ThreadID, "message", topic.MessageID)
			return feed.Item{}, false
		}

		message := thread.FindMessage(topic.MessageID)
		if message == nil {
			t.observer.DanglingMessage(topic)
			t.log.Debug("Topic message not found in thread",
				"topic", topic.ID, "thread", topic.ThreadID, "message", topic.MessageID)
		}

		return feed.Item{
			Kind:      feed.KindThread,
			Timestamp: topic.SentAt.UnixMilli(),
			Thread:    thread,
			Topic:     lo.ToPtr(topic),
			Message:   message,
		}, true
	})

	return append(candidates, resolved...)
}

// indexThreads keeps the first thread for a duplicated id.
func indexThreads(threads []domain.Thread) map[string]*domain.Thread {
	byID := make(map[string]*domain.Thread, len(threads))
	for i := range threads {
		if _, exists := byID[threads[i].ID]; !exists {
			byID[threads[i].ID] = &threads[i]
		}
	}
	return byID
}
