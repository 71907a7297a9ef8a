package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/neighborbank/cli/pkg/content"
)

var (
	Bold    = color.New(color.Bold)
	Success = color.New(color.FgGreen)
	Error   = color.New(color.FgRed)
	Info    = color.New(color.FgCyan)
	Warning = color.New(color.FgYellow)
	Muted   = color.New(color.FgHiBlack)
)

// RelativeTime renders t relative to now the way the web client does,
// e.g. "3시간 전". Future and zero times fall back to a date.
func RelativeTime(t, now time.Time) string {
	if t.IsZero() {
		return "-"
	}
	d := now.Sub(t)
	switch {
	case d < 0:
		return t.Format("2006-01-02")
	case d < time.Minute:
		return "방금 전"
	case d < time.Hour:
		return fmt.Sprintf("%d분 전", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%d시간 전", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%d일 전", int(d.Hours()/24))
	case d < 365*24*time.Hour:
		return fmt.Sprintf("%d개월 전", int(d.Hours()/24/30))
	default:
		return fmt.Sprintf("%d년 전", int(d.Hours()/24/365))
	}
}

// Truncate shortens s to at most max runes, marking the cut with "…".
func Truncate(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}

// Stats renders the view/like/comment line of a feed row.
func Stats(item content.Item, now time.Time) string {
	parts := []string{
		"조회 " + strconv.Itoa(item.ViewCount),
		"도움돼요 " + strconv.Itoa(item.LikeCount),
	}
	if item.CommentCount != nil {
		parts = append(parts, "댓글 "+strconv.Itoa(*item.CommentCount))
	}
	parts = append(parts, RelativeTime(item.CreatedAt, now))
	return strings.Join(parts, " · ")
}

// Answerer renders who answered a question.
func Answerer(item content.Item) string {
	if item.Kind != content.KindQuestion {
		return ""
	}
	if item.AnsweredBy == nil {
		return content.PendingAnswer
	}
	return *item.AnsweredBy
}

// FeedHeaders are the columns of FeedRow.
var FeedHeaders = []string{"#", "ID", "CATEGORY", "TITLE", "STATS", "ANSWER"}

// FeedRow renders one feed item as table cells. index is 1-based.
func FeedRow(index int, item content.Item, now time.Time) []string {
	title := Truncate(item.Title, 40)
	if item.Thumbnail != "" {
		title += " 📎"
	}
	return []string{
		strconv.Itoa(index),
		strconv.FormatInt(item.ID, 10),
		item.CategoryName,
		title,
		Stats(item, now),
		Answerer(item),
	}
}
