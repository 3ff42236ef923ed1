package projection

import (
	"cmp"
	"forum-feed/domain/feed"
	"slices"
)

// SortByTimestamp returns a new slice ordered by ascending epoch milliseconds.
// Equal timestamps keep their input order.
func SortByTimestamp(items []feed.Item) []feed.Item {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b feed.Item) int {
		return cmp.Compare(a.Timestamp, b.Timestamp)
	})
	return sorted
}
