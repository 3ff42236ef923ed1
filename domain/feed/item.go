// Package feed holds the computed, ephemeral units of a channel feed.
// Items are rebuilt on every assembly and never mutated once a stage returned them.
package feed

import "forum-feed/domain"

type Kind int

const (
	KindThread Kind = iota
	KindBoundary
)

func (k Kind) String() string {
	switch k {
	case KindThread:
		return "thread"
	case KindBoundary:
		return "boundary"
	default:
		return "unknown"
	}
}

// Neighbor is the message and thread found at an adjacent feed position.
// Both fields are nil together when there is no usable neighbor.
type Neighbor struct {
	Message *domain.Message
	Thread  *domain.Thread
}

func (n Neighbor) IsZero() bool {
	return n.Message == nil && n.Thread == nil
}

// Item is either a boundary (Timestamp only) or a thread item.
// Timestamp is always epoch milliseconds, whatever the source representation was.
type Item struct {
	Kind      Kind
	Timestamp int64

	Thread *domain.Thread
	Topic  *domain.Topic
	// Message is the topic's message inside Thread, nil when the topic points nowhere.
	Message *domain.Message

	Previous Neighbor
	Next     Neighbor
}

func NewBoundary(at int64) Item {
	return Item{Kind: KindBoundary, Timestamp: at}
}

func (i Item) IsBoundary() bool {
	return i.Kind == KindBoundary
}

func (i Item) IsThread() bool {
	return i.Kind == KindThread
}
