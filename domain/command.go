package domain

type ReminderType string

const (
	ReminderSoon     ReminderType = "SOON"
	ReminderTomorrow ReminderType = "TOMORROW"
	ReminderNextWeek ReminderType = "NEXT_WEEK"
)

type Reaction struct {
	ThreadID  string
	MessageID string
	Type      string
	Active    bool
}

// Move describes a drag and drop of a thread or message onto another one.
type Move struct {
	Source string
	Target string
	From   string
	To     string
}

// Actions bundles every callback a row may trigger.
// The feed only carries it to the renderer, it never calls or inspects a handle.
type Actions struct {
	Open       func(threadID string)
	Delete     func(messageID string)
	Edit       func(threadID, messageID string)
	Mute       func(threadID string)
	Unmute     func(threadID string)
	Pin        func(threadID string)
	Star       func(threadID string)
	React      func(reaction Reaction)
	Read       func(threadID string)
	Unread     func(threadID string)
	Remind     func(threadID string, reminder ReminderType)
	Load       func()
	Drop       func(move Move)
	ImageClick func(src string)
}

// Available lists the names of the wired actions, in a fixed order.
func (a *Actions) Available() []string {
	if a == nil {
		return nil
	}
	wired := []struct {
		name string
		set  bool
	}{
		{"open", a.Open != nil},
		{"delete", a.Delete != nil},
		{"edit", a.Edit != nil},
		{"mute", a.Mute != nil},
		{"unmute", a.Unmute != nil},
		{"pin", a.Pin != nil},
		{"star", a.Star != nil},
		{"react", a.React != nil},
		{"read", a.Read != nil},
		{"unread", a.Unread != nil},
		{"remind", a.Remind != nil},
		{"load", a.Load != nil},
		{"drop", a.Drop != nil},
		{"image", a.ImageClick != nil},
	}
	var names []string
	for _, w := range wired {
		if w.set {
			names = append(names, w.name)
		}
	}
	return names
}
