package projection

import (
	"forum-feed/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMentionScanner_Classify(t *testing.T) {
	req := require.New(t)
	viewer := &domain.User{ID: "u-alice", Username: "Alice"}
	scanner, err := NewMentionScanner(viewer)
	req.NoError(err)

	tests := []struct {
		name     string
		message  domain.Message
		expected MentionKind
	}{
		{"User mention", domain.Message{Body: "hey @alice, can you look?"}, MentionUser},
		{"Case insensitive", domain.Message{Body: "ping @ALICE"}, MentionUser},
		{"Signal mention", domain.Message{Body: "!alice this is urgent"}, MentionSignal},
		{"Signal wins over user", domain.Message{Body: "@alice and also !alice"}, MentionSignal},
		{"Longer username is not a mention", domain.Message{Body: "thanks @alicebob"}, MentionNone},
		{"Mention at the end", domain.Message{Body: "cc @alice"}, MentionUser},
		{"Structured mention", domain.Message{Body: "see above", Mentions: []domain.User{{ID: "u-alice"}}}, MentionUser},
		{"Someone else", domain.Message{Body: "@bob", Mentions: []domain.User{{ID: "u-bob"}}}, MentionNone},
		{"Empty body", domain.Message{}, MentionNone},
		{"Mention ending a sentence", domain.Message{Body: "hey @alice."}, MentionUser},
		{"Signal before a question mark", domain.Message{Body: "!alice?"}, MentionSignal},
		{"Mention before a dash", domain.Message{Body: "@alice- see below"}, MentionUser},
		{"Possessive mention", domain.Message{Body: "@alice's draft"}, MentionUser},
		{"Dotted username continues", domain.Message{Body: "ping @alice.smith"}, MentionNone},
		{"Dashed username continues", domain.Message{Body: "ping @alice-bot"}, MentionNone},
		{"Underscore username continues", domain.Message{Body: "@alice_"}, MentionNone},
		{"Email-like text", domain.Message{Body: "mail bob@alice"}, MentionNone},
		{"Signal glued to a word", domain.Message{Body: "x!alice"}, MentionNone},
		{"Mention after punctuation", domain.Message{Body: "(@alice)"}, MentionUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, scanner.Classify(tt.message), "test=%s", tt.name)
		})
	}
}

func TestMentionScanner_Without_Viewer(t *testing.T) {
	req := require.New(t)
	scanner, err := NewMentionScanner(nil)
	req.NoError(err)
	req.Equal(MentionNone, scanner.Classify(domain.Message{Body: "@alice !alice"}))
}

func TestMentionScanner_Viewer_Without_Username(t *testing.T) {
	req := require.New(t)
	scanner, err := NewMentionScanner(&domain.User{ID: "u-alice"})
	req.NoError(err)

	req.Equal(MentionNone, scanner.Classify(domain.Message{Body: "@ !"}))
	req.Equal(MentionUser, scanner.Classify(domain.Message{Mentions: []domain.User{{ID: "u-alice"}}}))
}
