package ui

import (
	"fmt"
	"forum-feed/domain/feed"
	"forum-feed/projection"
	"io"
	"strings"
	"time"

	"github.com/gookit/color"
)

var (
	boundaryStyle = color.New(color.FgRed, color.OpBold)
	titleStyle    = color.New(color.FgCyan, color.OpBold)
	authorStyle   = color.New(color.FgGreen)
	activeStyle   = color.New(color.BgBlack, color.FgGreen)
	mutedStyle    = color.New(color.FgDarkGray)
)

// ConsoleRenderer prints the feed as a conversation. Consecutive messages of
// one author within window are collapsed under a single author line.
type ConsoleRenderer struct {
	window  time.Duration
	colours bool
}

func NewConsoleRenderer(window time.Duration, colours bool) *ConsoleRenderer {
	if window <= 0 {
		window = projection.DefaultContinuationWindow
	}
	return &ConsoleRenderer{window: window, colours: colours}
}

func (r *ConsoleRenderer) Render(w io.Writer, rows []feed.Row) error {
	var b strings.Builder
	for _, row := range rows {
		r.writeRow(&b, row)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func (r *ConsoleRenderer) writeRow(b *strings.Builder, row feed.Row) {
	item := row.Item
	if item.IsBoundary() {
		b.WriteString(r.paint(boundaryStyle, "---------------- New ----------------"))
		b.WriteByte('\n')
		return
	}
	// A topic pointing to no message has nothing to show.
	if item.Message == nil || item.Thread == nil {
		return
	}
	summary := row.Summary

	if summary.ShowHeader {
		title := item.Thread.Title
		if title == "" {
			title = item.Thread.ID
		}
		if summary.Closed {
			title += " [closed]"
		}
		style := titleStyle
		if summary.Active {
			style = activeStyle
		}
		b.WriteString(r.paint(style, "# "+title))
		b.WriteByte('\n')
	}

	if summary.ShowHeader || !projection.IsContinuation(item, r.window) {
		author := authorName(item.Message)
		if summary.AuthorActive {
			author += " *"
		}
		fmt.Fprintf(b, "%s  %s\n", r.paint(authorStyle, author), r.paint(mutedStyle, item.Message.CreatedAt.UTC().Format(timeLayout)))
	}
	fmt.Fprintf(b, "    %s\n", item.Message.Body)

	var footer []string
	if summary.ReplyCount > 0 {
		footer = append(footer, fmt.Sprintf("%d replies", summary.ReplyCount))
	}
	if summary.UserMentions > 0 {
		footer = append(footer, fmt.Sprintf("@%d", summary.UserMentions))
	}
	if summary.SignalMentions > 0 {
		footer = append(footer, fmt.Sprintf("!%d", summary.SignalMentions))
	}
	if summary.ShowVotes {
		footer = append(footer, "votes")
	}
	if actions := visibleActions(row.Actions, row.Capabilities); len(actions) > 0 {
		footer = append(footer, "["+strings.Join(actions, " ")+"]")
	}
	if len(footer) > 0 {
		fmt.Fprintf(b, "    %s\n", r.paint(mutedStyle, strings.Join(footer, "  ")))
	}
}

func (r *ConsoleRenderer) paint(style color.Style, text string) string {
	if !r.colours {
		return text
	}
	return style.Render(text)
}
