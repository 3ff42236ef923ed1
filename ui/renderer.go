// Package ui renders feed rows for a terminal.
// It reads rows and capabilities only; actions are listed, never triggered.
package ui

import (
	"fmt"
	"forum-feed/contract"
	"forum-feed/domain"
	"forum-feed/errors"
	"strings"
	"time"

	"github.com/samber/lo"
)

const (
	RendererTable   = "table"
	RendererConsole = "console"
)

const timeLayout = "2006-01-02 15:04"

// manageOnly are the actions a viewer sees only with the manage capability
// or an explicit named capability.
var manageOnly = []string{"delete", "edit", "pin", "mute", "unmute"}

func NewRenderer(name string, window time.Duration, colours bool) (contract.RowRenderer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case RendererTable:
		return NewTableRenderer(), nil
	case RendererConsole:
		return NewConsoleRenderer(window, colours), nil
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownRenderer, name)
	}
}

// visibleActions filters the wired actions by what the viewer may do.
func visibleActions(actions *domain.Actions, capabilities domain.Capabilities) []string {
	return lo.Filter(actions.Available(), func(name string, _ int) bool {
		return capabilities.Manage || capabilities.Has(name) || !lo.Contains(manageOnly, name)
	})
}

func formatMillis(ms int64) string {
	return time.UnixMilli(ms).UTC().Format(timeLayout)
}

func authorName(message *domain.Message) string {
	if message == nil || message.Author == nil {
		return "unknown"
	}
	if message.Author.DisplayName != "" {
		return message.Author.DisplayName
	}
	return message.Author.Username
}

func neighborLabel(message *domain.Message) string {
	if message == nil {
		return "-"
	}
	return message.ID
}
