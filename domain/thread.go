package domain

type ThreadState string

const (
	ThreadStateOpen  ThreadState = "OPEN"
	ThreadStateClose ThreadState = "CLOSE"
)

type ViewType string

const (
	ViewTypeChat  ViewType = "CHAT"
	ViewTypeForum ViewType = "FORUM"
	ViewTypeTopic ViewType = "TOPIC"
)

// Thread is a conversation owned by a channel.
// Messages keep insertion order, which is the conversation order.
type Thread struct {
	ID          string      `json:"id" yaml:"id" validate:"required"`
	IncrementID int         `json:"incrementId" yaml:"incrementId"`
	Slug        string      `json:"slug,omitempty" yaml:"slug,omitempty"`
	Title       string      `json:"title,omitempty" yaml:"title,omitempty"`
	State       ThreadState `json:"state" yaml:"state" validate:"omitempty,oneof=OPEN CLOSE"`
	ChannelID   string      `json:"channelId" yaml:"channelId"`
	ViewType    ViewType    `json:"viewType" yaml:"viewType" validate:"omitempty,oneof=CHAT FORUM TOPIC"`
	Messages    []Message   `json:"messages" yaml:"messages" validate:"dive"`
}

// FindMessage returns the message with the given id, nil when the thread doesn't hold it.
// The returned pointer aliases the thread's own slice and must be treated as read-only.
func (t *Thread) FindMessage(id string) *Message {
	for i := range t.Messages {
		if t.Messages[i].ID == id {
			return &t.Messages[i]
		}
	}
	return nil
}

func (t *Thread) IsClosed() bool {
	return t.State == ThreadStateClose
}
