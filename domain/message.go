// Package domain contains core concepts of the forum channel.
// This file defines Message records and related rules.
// Messages are immutable once created and owned by a Thread.
package domain

import (
	"time"
)

// Message represents one immutable post inside a thread.
type Message struct {
	ID        string    `json:"id" yaml:"id" validate:"required"`
	Author    *User     `json:"author,omitempty" yaml:"author,omitempty"` // nil for bots and deleted accounts
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	Body      string    `json:"body" yaml:"body"`
	Mentions  []User    `json:"mentions,omitempty" yaml:"mentions,omitempty"`
}

// AuthorID returns the author identifier, empty when the message has no author.
func (m Message) AuthorID() string {
	if m.Author == nil {
		return ""
	}
	return m.Author.ID
}
