package test

import (
	"bytes"
	"context"
	"forum-feed/auth"
	"forum-feed/domain"
	"forum-feed/domain/feed"
	"forum-feed/observability"
	"forum-feed/projection"
	"forum-feed/repositories"
	"forum-feed/services"
	"forum-feed/ui"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

type FeedSuite struct {
	suite.Suite
	log      *slog.Logger
	snapshot repositories.Snapshot
}

func TestFeedSuite(t *testing.T) {
	suite.Run(t, new(FeedSuite))
}

// SetupSuite writes a channel snapshot to disk and loads it back,
// so every scenario starts from what the CLI would read.
func (s *FeedSuite) SetupSuite() {
	s.log = logs.GetLoggerFromLevel(slog.LevelDebug)
	base := time.Date(2024, 9, 14, 8, 0, 0, 0, time.UTC)
	alice := domain.User{ID: "u-alice", Username: "alice", DisplayName: "Alice"}
	bob := domain.User{ID: "u-bob", Username: "bob", DisplayName: "Bob"}

	snapshot := repositories.Snapshot{
		CommunityID: "acme",
		ChannelID:   "general",
		Users:       []domain.User{alice, bob},
		Threads: []domain.Thread{
			{ID: "t-release", Title: "Release 2.0", ViewType: domain.ViewTypeForum, State: domain.ThreadStateOpen, Messages: []domain.Message{
				{ID: "m1", Author: &alice, CreatedAt: base, Body: "Freeze starts today"},
				{ID: "m2", Author: &bob, CreatedAt: base.Add(2 * time.Minute), Body: "!alice the build is red"},
			}},
			{ID: "t-chat", ViewType: domain.ViewTypeChat, State: domain.ThreadStateOpen, Messages: []domain.Message{
				{ID: "m3", Author: &bob, CreatedAt: base.Add(3 * time.Minute), Body: "lunch?"},
				{ID: "m4", Author: &bob, CreatedAt: base.Add(4 * time.Minute), Body: "@alice lunch?"},
			}},
		},
		Topics: []domain.Topic{
			{ID: "p4", ThreadID: "t-chat", MessageID: "m4", SentAt: base.Add(4 * time.Minute)},
			{ID: "p1", ThreadID: "t-release", MessageID: "m1", SentAt: base},
			{ID: "p-gone", ThreadID: "t-archived", MessageID: "m0", SentAt: base.Add(time.Minute)},
			{ID: "p3", ThreadID: "t-chat", MessageID: "m3", SentAt: base.Add(3 * time.Minute)},
		},
		ReadStatus: &domain.ReadStatus{LastReadAt: base.Add(90 * time.Second).UnixMilli()},
	}

	repository := repositories.NewSnapshotRepository(s.log, filepath.Join(s.T().TempDir(), "snapshot.json"))
	s.Require().NoError(repository.Save(snapshot))
	loaded, err := repository.Load()
	s.Require().NoError(err)
	s.snapshot = loaded
}

func (s *FeedSuite) rows(managed []string, renderer string) ([]feed.Row, *services.FeedService, *observability.FeedStats) {
	alice := s.snapshot.FindUser("u-alice")
	s.Require().NotNil(alice)

	summarizer, err := projection.NewRowSummarizer(feed.Viewer{CurrentUser: alice, CurrentThreadID: "t-chat"})
	s.Require().NoError(err)
	rowRenderer, err := ui.NewRenderer(renderer, projection.DefaultContinuationWindow, false)
	s.Require().NoError(err)
	stats := observability.NewFeedStats(s.log)
	actions := &domain.Actions{Open: func(string) {}, Delete: func(string) {}}

	service, err := services.NewFeedService(s.log, auth.NewStaticCapabilityProvider(managed, nil), rowRenderer, summarizer, actions, stats, 100)
	s.Require().NoError(err)
	s.T().Cleanup(service.Close)

	rows, err := service.Rows(context.Background(), services.FeedRequest{
		CommunityID: s.snapshot.CommunityID,
		Threads:     s.snapshot.Threads,
		Topics:      s.snapshot.Topics,
		ReadStatus:  s.snapshot.ReadStatus,
	})
	s.Require().NoError(err)
	return rows, service, stats
}

func (s *FeedSuite) TestFeedOrderAndAdjacency() {
	rows, _, stats := s.rows(nil, ui.RendererTable)

	// The dangling topic is dropped, the boundary sits between m1 and m3
	s.Require().Len(rows, 4)
	s.Equal("m1", rows[0].Item.Message.ID)
	s.True(rows[1].Item.IsBoundary())
	s.Equal("m3", rows[2].Item.Message.ID)
	s.Equal("m4", rows[3].Item.Message.ID)

	// The boundary blocks adjacency on both sides
	s.True(rows[0].Item.Next.IsZero())
	s.True(rows[2].Item.Previous.IsZero())
	s.Equal("m4", rows[2].Item.Next.Message.ID)
	s.Equal("m3", rows[3].Item.Previous.Message.ID)
	s.True(rows[3].Item.Next.IsZero())

	snapshot := stats.GetLatest()
	s.Equal(uint64(1), snapshot.DanglingTopics)
	s.Equal(uint64(0), snapshot.DroppedBoundary)
}

func (s *FeedSuite) TestSummariesForViewer() {
	rows, _, _ := s.rows(nil, ui.RendererTable)

	s.Equal(1, rows[0].Summary.SignalMentions)
	s.True(rows[0].Summary.ShowVotes)
	s.Equal(1, rows[2].Summary.UserMentions)
	s.True(rows[2].Summary.Active)
	s.False(rows[0].Summary.Active)
}

func (s *FeedSuite) TestTableRendering() {
	rows, service, _ := s.rows([]string{"acme"}, ui.RendererTable)
	var buf bytes.Buffer

	s.Require().NoError(service.Render(&buf, rows))

	out := buf.String()
	s.Contains(out, "Release 2.0 (t-release)")
	s.Contains(out, "new messages")
	s.Contains(out, "open,delete")
}

func (s *FeedSuite) TestConsoleRendering() {
	rows, service, _ := s.rows(nil, ui.RendererConsole)
	var buf bytes.Buffer

	s.Require().NoError(service.Render(&buf, rows))

	out := buf.String()
	s.Contains(out, "# Release 2.0")
	s.Contains(out, "New")
	s.Contains(out, "@alice lunch?")
	s.NotContains(out, "delete")
}
