package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"forum-feed/contract"
	"forum-feed/domain"
	"forum-feed/domain/feed"
	"forum-feed/errors"
	"forum-feed/observability"
	"forum-feed/projection"
	"io"
	"log/slog"

	"github.com/cespare/xxhash/v2"
	"github.com/dgraph-io/ristretto/v2"
	"github.com/samber/lo"
)

type IFeedService interface {
	Rows(ctx context.Context, request FeedRequest) ([]feed.Row, error)
	Render(w io.Writer, rows []feed.Row) error
}

// FeedRequest is one channel page to turn into rows.
type FeedRequest struct {
	CommunityID string
	Threads     []domain.Thread
	Topics      []domain.Topic
	ReadStatus  *domain.ReadStatus
}

// FeedService turns channel pages into rows. Built feeds are memoized on the
// content of the request; whether cached or not, returned items always point at
// the threads and messages of the request being served.
type FeedService struct {
	log          *slog.Logger
	timeline     *projection.Timeline
	summarizer   *projection.RowSummarizer
	capabilities contract.CapabilityProvider
	renderer     contract.RowRenderer
	actions      *domain.Actions
	stats        *observability.FeedStats
	cache        *ristretto.Cache[uint64, cachedFeed]
	digest       func(content []byte) uint64
}

// cachedFeed keeps the encoded request next to its items so a digest
// collision is detected instead of serving another channel's feed.
type cachedFeed struct {
	content []byte
	items   []feed.Item
}

func NewFeedService(
	log *slog.Logger,
	capabilities contract.CapabilityProvider,
	renderer contract.RowRenderer,
	summarizer *projection.RowSummarizer,
	actions *domain.Actions,
	stats *observability.FeedStats,
	cacheMaxCost int64,
) (*FeedService, error) {
	if stats == nil {
		stats = observability.NewFeedStats(log)
	}
	cache, err := ristretto.NewCache(&ristretto.Config[uint64, cachedFeed]{
		NumCounters:        max(cacheMaxCost, 1) * 10,
		MaxCost:            max(cacheMaxCost, 1),
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create feed cache: %w", err)
	}
	return &FeedService{
		log:          log,
		timeline:     projection.NewTimeline(log, stats),
		summarizer:   summarizer,
		capabilities: capabilities,
		renderer:     renderer,
		actions:      actions,
		stats:        stats,
		cache:        cache,
		digest:       xxhash.Sum64,
	}, nil
}

// Rows builds the feed and pairs every item with its summary, the viewer's
// capability set and the action bundle. The capability set is fetched once.
func (s *FeedService) Rows(ctx context.Context, request FeedRequest) ([]feed.Row, error) {
	if request.CommunityID == "" {
		return nil, errors.ErrEmptyCommunityID
	}
	capabilities, err := s.capabilities.Capabilities(ctx, request.CommunityID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrCapabilityLookup, err)
	}

	items := s.build(request)
	return lo.Map(items, func(item feed.Item, _ int) feed.Row {
		return feed.Row{
			Item:         item,
			Summary:      s.summarizer.Summarize(item),
			Capabilities: capabilities,
			Actions:      s.actions,
		}
	}), nil
}

func (s *FeedService) Render(w io.Writer, rows []feed.Row) error {
	return s.renderer.Render(w, rows)
}

func (s *FeedService) Stats() *observability.FeedStats {
	return s.stats
}

func (s *FeedService) Close() {
	s.cache.Close()
}

// build memoizes the pipeline on the content of the request.
func (s *FeedService) build(request FeedRequest) []feed.Item {
	content, err := feedContent(request)
	if err != nil {
		s.log.Warn("Feed cache bypassed", "error", err)
		s.stats.IncrBuilds()
		return s.timeline.Build(request.Threads, request.Topics, request.ReadStatus)
	}
	key := s.digest(content)

	if cached, ok := s.cache.Get(key); ok {
		if bytes.Equal(cached.content, content) {
			s.stats.IncrCacheHits()
			return rebind(cached.items, request.Threads)
		}
		s.log.Debug("Feed cache digest collision", "key", key)
	}
	s.stats.IncrCacheMisses()
	s.stats.IncrBuilds()

	items := s.timeline.Build(request.Threads, request.Topics, request.ReadStatus)
	if s.cache.Set(key, cachedFeed{content: content, items: items}, int64(len(items)+1)) {
		s.cache.Wait()
	}
	return rebind(items, request.Threads)
}

func feedContent(request FeedRequest) ([]byte, error) {
	return json.Marshal(struct {
		Threads    []domain.Thread    `json:"threads"`
		Topics     []domain.Topic     `json:"topics"`
		ReadStatus *domain.ReadStatus `json:"readStatus"`
	}{request.Threads, request.Topics, request.ReadStatus})
}

// rebind copies items onto the given threads, resolving every thread and
// message by id. Threads keep the first occurrence of an id, like the pipeline.
// Topics are copied so callers never share them with the cache.
func rebind(items []feed.Item, threads []domain.Thread) []feed.Item {
	byID := make(map[string]*domain.Thread, len(threads))
	for i := range threads {
		if _, exists := byID[threads[i].ID]; !exists {
			byID[threads[i].ID] = &threads[i]
		}
	}

	rebound := make([]feed.Item, len(items))
	for i, item := range items {
		rebound[i] = item
		if item.Topic != nil {
			rebound[i].Topic = lo.ToPtr(*item.Topic)
		}
		rebound[i].Thread, rebound[i].Message = resolve(byID, item.Thread, item.Message)
		rebound[i].Previous.Thread, rebound[i].Previous.Message = resolve(byID, item.Previous.Thread, item.Previous.Message)
		rebound[i].Next.Thread, rebound[i].Next.Message = resolve(byID, item.Next.Thread, item.Next.Message)
	}
	return rebound
}

func resolve(byID map[string]*domain.Thread, thread *domain.Thread, message *domain.Message) (*domain.Thread, *domain.Message) {
	if thread == nil {
		return nil, nil
	}
	current, ok := byID[thread.ID]
	if !ok {
		return nil, nil
	}
	if message == nil {
		return current, nil
	}
	return current, current.FindMessage(message.ID)
}
