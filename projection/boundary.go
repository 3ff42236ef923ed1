package projection

import (
	"forum-feed/domain/feed"
	"slices"
)

// PlaceBoundary keeps the unread boundary unless it sorted to the last position,
// where there is nothing new left to separate.
func (t *Timeline) PlaceBoundary(items []feed.Item) []feed.Item {
	placed := slices.Clone(items)
	last := len(placed) - 1
	if last < 0 || !placed[last].IsBoundary() {
		return placed
	}
	t.observer.BoundaryDropped(placed[last].Timestamp)
	t.log.Debug("Dropping trailing unread boundary", "at", placed[last].Timestamp)
	return placed[:last]
}
