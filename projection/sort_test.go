package projection

import (
	"forum-feed/domain"
	"forum-feed/domain/feed"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSortByTimestamp_Is_Stable(t *testing.T) {
	req := require.New(t)

	// Given equal timestamps in a known input order
	items := []feed.Item{
		feed.NewBoundary(10),
		{Kind: feed.KindThread, Timestamp: 10, Topic: &domain.Topic{ID: "first"}},
		{Kind: feed.KindThread, Timestamp: 5, Topic: &domain.Topic{ID: "early"}},
		{Kind: feed.KindThread, Timestamp: 10, Topic: &domain.Topic{ID: "second"}},
	}

	// When sorted
	sorted := SortByTimestamp(items)

	// Then ties keep their relative order
	req.Len(sorted, 4)
	req.Equal("early", sorted[0].Topic.ID)
	req.True(sorted[1].IsBoundary())
	req.Equal("first", sorted[2].Topic.ID)
	req.Equal("second", sorted[3].Topic.ID)

	// And the input slice is untouched
	req.True(items[0].IsBoundary())
	req.Equal("early", items[2].Topic.ID)
}

func TestSortByTimestamp_Empty(t *testing.T) {
	require.Empty(t, SortByTimestamp(nil))
}
