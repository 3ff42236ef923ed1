// Package projection builds channel feeds from threads, topics and read status.
// Handles ordering, the unread boundary and positional adjacency.
// Does not render, fetch data, or mutate its inputs.
package projection

import (
	"forum-feed/contract"
	"forum-feed/domain"
	"forum-feed/domain/feed"
	"log/slog"
)

// Timeline composes the feed of one channel.
// It holds no state between calls: every Build recomputes the feed from scratch.
type Timeline struct {
	log      *slog.Logger
	observer contract.FeedObserver
}

func NewTimeline(log *slog.Logger, observer contract.FeedObserver) *Timeline {
	if log == nil {
		log = slog.Default()
	}
	if observer == nil {
		observer = contract.NopObserver{}
	}
	return &Timeline{log: log, observer: observer}
}

// Build assembles, sorts, places the unread boundary and resolves adjacency.
// Deep-equal inputs always give deep-equal outputs.
func (t *Timeline) Build(threads []domain.Thread, topics []domain.Topic, readStatus *domain.ReadStatus) []feed.Item {
	candidates := t.Assemble(threads, topics, readStatus)
	sorted := SortByTimestamp(candidates)
	placed := t.PlaceBoundary(sorted)
	return ResolveAdjacency(placed)
}
