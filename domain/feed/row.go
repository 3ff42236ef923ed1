package feed

import "forum-feed/domain"

// Viewer describes who looks at the feed.
type Viewer struct {
	CurrentUser     *domain.User
	CurrentThreadID string
	ActiveUsers     []string
}

// Summary is what a row needs beyond adjacency: authors, counters and display flags.
type Summary struct {
	Message        *domain.Message
	Authors        []domain.User
	Avatars        []domain.User
	ReplyCount     int
	UserMentions   int
	SignalMentions int
	ShowHeader     bool
	Closed         bool
	ShowVotes      bool
	AuthorActive   bool
	Active         bool
}

// Row is handed to a renderer: the item, its summary and the pass-through bundles.
type Row struct {
	Item         Item
	Summary      Summary
	Capabilities domain.Capabilities
	Actions      *domain.Actions
}
