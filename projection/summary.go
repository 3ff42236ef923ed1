package projection

import (
	"forum-feed/domain"
	"forum-feed/domain/feed"

	"github.com/samber/lo"
)

// RowSummarizer derives per-row display data for one viewer.
type RowSummarizer struct {
	viewer   feed.Viewer
	mentions *MentionScanner
}

func NewRowSummarizer(viewer feed.Viewer) (*RowSummarizer, error) {
	scanner, err := NewMentionScanner(viewer.CurrentUser)
	if err != nil {
		return nil, err
	}
	return &RowSummarizer{viewer: viewer, mentions: scanner}, nil
}

// Summarize reads the item's thread; boundaries give an empty summary.
func (s *RowSummarizer) Summarize(item feed.Item) feed.Summary {
	if !item.IsThread() || item.Thread == nil {
		return feed.Summary{}
	}
	thread := item.Thread

	authors := lo.UniqBy(lo.FilterMap(thread.Messages, func(m domain.Message, _ int) (domain.User, bool) {
		if m.Author == nil {
			return domain.User{}, false
		}
		return *m.Author, true
	}), func(u domain.User) string {
		return u.ID
	})

	var currentAuthorID string
	if item.Message != nil {
		currentAuthorID = item.Message.AuthorID()
	}
	avatars := lo.Reject(authors, func(u domain.User, _ int) bool {
		return currentAuthorID != "" && u.ID == currentAuthorID
	})

	summary := feed.Summary{
		Message:      item.Message,
		Authors:      authors,
		Avatars:      avatars,
		ReplyCount:   max(len(thread.Messages)-1, 0),
		ShowHeader:   thread.Title != "" || thread.ViewType == domain.ViewTypeTopic,
		Closed:       thread.IsClosed(),
		ShowVotes:    thread.ViewType == domain.ViewTypeForum,
		AuthorActive: s.isAuthorActive(item.Message),
		Active:       s.viewer.CurrentThreadID != "" && thread.ID == s.viewer.CurrentThreadID,
	}
	for _, m := range thread.Messages {
		switch s.mentions.Classify(m) {
		case MentionSignal:
			summary.SignalMentions++
		case MentionUser:
			summary.UserMentions++
		}
	}
	return summary
}

func (s *RowSummarizer) isAuthorActive(message *domain.Message) bool {
	if message == nil || message.Author == nil {
		return false
	}
	if s.viewer.CurrentUser != nil && s.viewer.CurrentUser.ID == message.Author.ID {
		return true
	}
	return lo.Contains(s.viewer.ActiveUsers, message.Author.ID)
}
