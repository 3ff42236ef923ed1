//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"forum-feed/domain"
	"forum-feed/domain/feed"
	"io"
)

// FeedObserver receives the data-loss signals of the feed pipeline.
// The pipeline keeps dropping what it drops; the observer only makes it visible.
type FeedObserver interface {
	DanglingTopic(topic domain.Topic)
	DanglingMessage(topic domain.Topic)
	BoundaryDropped(at int64)
}

// CapabilityProvider is the external authorization collaborator.
// Its answer is forwarded unchanged to every row.
type CapabilityProvider interface {
	Capabilities(ctx context.Context, communityID string) (domain.Capabilities, error)
}

// RowRenderer is the pluggable rendering strategy for a whole feed.
type RowRenderer interface {
	Render(w io.Writer, rows []feed.Row) error
}

// NopObserver discards every signal.
type NopObserver struct{}

func (NopObserver) DanglingTopic(domain.Topic)   {}
func (NopObserver) DanglingMessage(domain.Topic) {}
func (NopObserver) BoundaryDropped(int64)        {}
