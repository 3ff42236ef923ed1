package ui

import (
	"fmt"
	"forum-feed/domain/feed"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

// TableRenderer prints one line per row. The actions column only appears
// when at least one row grants an action.
type TableRenderer struct{}

func NewTableRenderer() *TableRenderer {
	return &TableRenderer{}
}

func (r *TableRenderer) Render(w io.Writer, rows []feed.Row) error {
	withActions := lo.ContainsBy(rows, func(row feed.Row) bool {
		return len(visibleActions(row.Actions, row.Capabilities)) > 0
	})

	table := tablewriter.NewWriter(w)
	header := []string{"#", "Kind", "Time", "Thread", "Message", "Author", "Replies", "Mentions", "Prev", "Next"}
	if withActions {
		header = append(header, "Actions")
	}
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for i, row := range rows {
		line := tableLine(i, row)
		if withActions {
			line = append(line, strings.Join(visibleActions(row.Actions, row.Capabilities), ","))
		}
		table.Append(line)
	}
	table.Render()
	return nil
}

func tableLine(index int, row feed.Row) []string {
	item := row.Item
	if item.IsBoundary() {
		return []string{strconv.Itoa(index + 1), item.Kind.String(), formatMillis(item.Timestamp), "", "new messages", "", "", "", "", ""}
	}

	thread := ""
	if item.Thread != nil {
		thread = item.Thread.ID
		if item.Thread.Title != "" {
			thread = fmt.Sprintf("%s (%s)", item.Thread.Title, item.Thread.ID)
		}
		if item.Thread.IsClosed() {
			thread += " [closed]"
		}
	}
	message := "-"
	if item.Message != nil {
		message = item.Message.ID
	}
	return []string{
		strconv.Itoa(index + 1),
		item.Kind.String(),
		formatMillis(item.Timestamp),
		thread,
		message,
		authorName(item.Message),
		strconv.Itoa(row.Summary.ReplyCount),
		fmt.Sprintf("@%d !%d", row.Summary.UserMentions, row.Summary.SignalMentions),
		neighborLabel(item.Previous.Message),
		neighborLabel(item.Next.Message),
	}
}
