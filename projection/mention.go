package projection

import (
	"forum-feed/domain"
	"strings"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
	"github.com/samber/lo"
)

type MentionKind int

const (
	MentionNone MentionKind = iota
	MentionUser
	MentionSignal
)

const (
	userMentionPrefix   = '@'
	signalMentionPrefix = '!'
)

// MentionScanner finds the viewer's mentions in message bodies.
// "@username" is a user mention, "!username" a signal mention.
type MentionScanner struct {
	userID  string
	matcher *goahocorasick.Machine
}

// NewMentionScanner builds the automaton for the viewer. A nil user, or one
// without username, gives a scanner that only looks at structured mentions.
func NewMentionScanner(user *domain.User) (*MentionScanner, error) {
	if user == nil {
		return &MentionScanner{}, nil
	}
	scanner := &MentionScanner{userID: user.ID}

	username := []rune(strings.ToLower(strings.TrimSpace(user.Username)))
	if len(username) == 0 {
		return scanner, nil
	}
	// '!' sorts before '@', the automaton is built from ordered patterns
	patterns := [][]rune{
		append([]rune{signalMentionPrefix}, username...),
		append([]rune{userMentionPrefix}, username...),
	}
	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	scanner.matcher = m
	return scanner, nil
}

// Classify returns the strongest mention of the viewer in the message.
func (s *MentionScanner) Classify(message domain.Message) MentionKind {
	kind := MentionNone
	if s.userID != "" && lo.ContainsBy(message.Mentions, func(u domain.User) bool {
		return u.ID == s.userID
	}) {
		kind = MentionUser
	}
	if s.matcher == nil || message.Body == "" {
		return kind
	}

	body := []rune(strings.ToLower(message.Body))
	for _, term := range s.matcher.MultiPatternSearch(body, false) {
		if !isStandalone(body, term.Pos, term.Pos+len(term.Word)) {
			continue
		}
		if term.Word[0] == signalMentionPrefix {
			return MentionSignal
		}
		kind = MentionUser
	}
	return kind
}

// isStandalone reports whether body[start:end] is a whole mention: not glued to a
// word before it ("bob@alice") nor continued by a longer username after it.
func isStandalone(body []rune, start, end int) bool {
	if start > 0 && isUsernameRune(body[start-1]) {
		return false
	}
	if end >= len(body) {
		return true
	}
	next := body[end]
	if isUsernameRune(next) {
		return false
	}
	// "@alice.smith" continues the username, "@alice." ends a sentence
	if isUsernameSeparator(next) {
		return end+1 >= len(body) || !isUsernameRune(body[end+1])
	}
	return true
}

func isUsernameRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func isUsernameSeparator(r rune) bool {
	return r == '.' || r == '-'
}
