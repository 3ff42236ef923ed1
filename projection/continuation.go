package projection

import (
	"forum-feed/domain/feed"
	"time"
)

const DefaultContinuationWindow = 5 * time.Minute

// IsContinuation reports whether the row can collapse under the previous one:
// same author, posted within window after the previous feed message.
func IsContinuation(item feed.Item, window time.Duration) bool {
	if !item.IsThread() || item.Message == nil || item.Previous.Message == nil {
		return false
	}
	author := item.Message.AuthorID()
	if author == "" || author != item.Previous.Message.AuthorID() {
		return false
	}
	gap := item.Message.CreatedAt.Sub(item.Previous.Message.CreatedAt)
	return gap >= 0 && gap <= window
}
