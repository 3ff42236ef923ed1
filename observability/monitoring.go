package observability

import (
	"forum-feed/domain"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

const maxRecentDrops = 20

// RecentDrop is one topic the feed had to leave out or render empty.
type RecentDrop struct {
	Reason    string `json:"reason"`
	TopicID   string `json:"topic_id"`
	ThreadID  string `json:"thread_id"`
	MessageID string `json:"message_id"`
	Timestamp string `json:"timestamp"`
}

// FeedStatsSnapshot aggregates the feed counters for logs and tools.
type FeedStatsSnapshot struct {
	Builds           uint64       `json:"builds"`
	CacheHits        uint64       `json:"cache_hits"`
	CacheMisses      uint64       `json:"cache_misses"`
	DanglingTopics   uint64       `json:"dangling_topics"`
	DanglingMessages uint64       `json:"dangling_messages"`
	DroppedBoundary  uint64       `json:"dropped_boundaries"`
	RecentDrops      []RecentDrop `json:"recent_drops"`
}

// FeedStats counts what the feed pipeline silently drops.
// It implements contract.FeedObserver and is safe for concurrent use.
type FeedStats struct {
	log *slog.Logger
	mu  sync.RWMutex

	builds           uint64
	cacheHits        uint64
	cacheMisses      uint64
	danglingTopics   uint64
	danglingMessages uint64
	droppedBoundary  uint64
	recentDrops      []RecentDrop
}

func NewFeedStats(log *slog.Logger) *FeedStats {
	return &FeedStats{
		log:         log,
		recentDrops: make([]RecentDrop, 0, maxRecentDrops),
	}
}

func (fs *FeedStats) IncrBuilds() {
	atomic.AddUint64(&fs.builds, 1)
}

func (fs *FeedStats) IncrCacheHits() {
	atomic.AddUint64(&fs.cacheHits, 1)
}

func (fs *FeedStats) IncrCacheMisses() {
	atomic.AddUint64(&fs.cacheMisses, 1)
}

func (fs *FeedStats) DanglingTopic(topic domain.Topic) {
	atomic.AddUint64(&fs.danglingTopics, 1)
	fs.addDrop("dangling_topic", topic)
}

func (fs *FeedStats) DanglingMessage(topic domain.Topic) {
	atomic.AddUint64(&fs.danglingMessages, 1)
	fs.addDrop("dangling_message", topic)
}

func (fs *FeedStats) BoundaryDropped(_ int64) {
	atomic.AddUint64(&fs.droppedBoundary, 1)
}

// addDrop keeps the most recent drops first, bounded to maxRecentDrops.
func (fs *FeedStats) addDrop(reason string, topic domain.Topic) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	drop := RecentDrop{
		Reason:    reason,
		TopicID:   topic.ID,
		ThreadID:  topic.ThreadID,
		MessageID: topic.MessageID,
		Timestamp: time.Now().Format("15:04:05"),
	}
	fs.recentDrops = append([]RecentDrop{drop}, fs.recentDrops...)
	if len(fs.recentDrops) > maxRecentDrops {
		fs.recentDrops = fs.recentDrops[:maxRecentDrops]
	}
}

func (fs *FeedStats) GetLatest() FeedStatsSnapshot {
	fs.mu.RLock()
	recent := make([]RecentDrop, len(fs.recentDrops))
	copy(recent, fs.recentDrops)
	fs.mu.RUnlock()

	return FeedStatsSnapshot{
		Builds:           atomic.LoadUint64(&fs.builds),
		CacheHits:        atomic.LoadUint64(&fs.cacheHits),
		CacheMisses:      atomic.LoadUint64(&fs.cacheMisses),
		DanglingTopics:   atomic.LoadUint64(&fs.danglingTopics),
		DanglingMessages: atomic.LoadUint64(&fs.danglingMessages),
		DroppedBoundary:  atomic.LoadUint64(&fs.droppedBoundary),
		RecentDrops:      recent,
	}
}

// LogSummary writes the counters at info level, and a warning when topics were lost.
func (fs *FeedStats) LogSummary() {
	stats := fs.GetLatest()
	fs.log.Info("Feed stats",
		"builds", stats.Builds,
		"cache_hits", stats.CacheHits,
		"cache_misses", stats.CacheMisses,
		"dangling_topics", stats.DanglingTopics,
		"dangling_messages", stats.DanglingMessages,
		"dropped_boundaries", stats.DroppedBoundary,
	)
	if stats.DanglingTopics > 0 {
		fs.log.Warn("Topics referenced threads that were not loaded", "count", stats.DanglingTopics)
	}
}
