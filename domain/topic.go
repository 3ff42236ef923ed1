package domain

import "time"

// Topic anchors one thread into the channel feed at the time of one of its messages.
// ThreadID and MessageID are expected to resolve, but nothing guarantees it:
// upstream pages may reference threads that are not loaded.
type Topic struct {
	ID        string    `json:"id,omitempty" yaml:"id,omitempty"`
	ThreadID  string    `json:"threadId" yaml:"threadId" validate:"required"`
	MessageID string    `json:"messageId" yaml:"messageId" validate:"required"`
	SentAt    time.Time `json:"sentAt" yaml:"sentAt"`
}
