// Package assist holds the task assistant used by the command palette. The
// Local implementation is deterministic and never leaves the process.
package assist

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/sandeepkv93/taskflow/internal/model"
)

var ErrEmptyInput = errors.New("assist: input is empty")

type TaskSuggestion struct {
	Title       string
	Description string
	DueDate     *time.Time
	Priority    model.Priority
	Tags        []string
}

type Assistant interface {
	ParseTask(ctx context.Context, text string) (TaskSuggestion, error)
	SuggestSubtasks(ctx context.Context, title string) ([]string, error)
	Summarize(ctx context.Context, topic string) (string, error)
}

type Local struct {
	clock clockwork.Clock
}

func NewLocal(clock clockwork.Clock) *Local {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Local{clock: clock}
}

var (
	tagPattern    = regexp.MustCompile(`(^|\s)#([\p{L}\p{N}_-]+)`)
	spacesPattern = regexp.MustCompile(`\s+`)
)

// ParseTask reads "#tag", "!high"/"!medium"/"!low" markers and the phrases
// "today", "tomorrow" and "next week" out of text. The rest becomes the
// title. Due dates land at 17:00 local time.
func (l *Local) ParseTask(ctx context.Context, text string) (TaskSuggestion, error) {
	if err := ctx.Err(); err != nil {
		return TaskSuggestion{}, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return TaskSuggestion{}, ErrEmptyInput
	}

	out := TaskSuggestion{Tags: []string{}}
	for _, m := range tagPattern.FindAllStringSubmatch(text, -1) {
		out.Tags = append(out.Tags, m[2])
	}
	out.Tags = model.NormalizeTags(out.Tags)
	rest := tagPattern.ReplaceAllString(text, " ")

	words := strings.Fields(rest)
	kept := make([]string, 0, len(words))
	for _, w := range words {
		switch strings.ToLower(w) {
		case "!high", "!urgent":
			out.Priority = model.PriorityHigh
		case "!medium", "!med":
			out.Priority = model.PriorityMedium
		case "!low":
			out.Priority = model.PriorityLow
		default:
			kept = append(kept, w)
		}
	}
	rest = strings.Join(kept, " ")

	now := l.clock.Now()
	lower := strings.ToLower(rest)
	for _, phrase := range []struct {
		text string
		days int
	}{
		{"next week", 7},
		{"tomorrow", 1},
		{"today", 0},
	} {
		idx := strings.Index(lower, phrase.text)
		if idx < 0 {
			continue
		}
		due := time.Date(now.Year(), now.Month(), now.Day(), 17, 0, 0, 0, now.Location()).AddDate(0, 0, phrase.days)
		out.DueDate = &due
		rest = rest[:idx] + rest[idx+len(phrase.text):]
		break
	}

	out.Title = strings.TrimSpace(spacesPattern.ReplaceAllString(rest, " "))
	if out.Title == "" {
		out.Title = text
	}
	return out, nil
}

var subtaskTable = []struct {
	keywords []string
	steps    []string
}{
	{[]string{"report", "doc", "write", "draft"}, []string{"Outline the main points", "Write the first draft", "Review and edit", "Share for feedback"}},
	{[]string{"meeting", "standup", "sync"}, []string{"Prepare the agenda", "Send the invite", "Write up notes", "Follow up on action items"}},
	{[]string{"review", "pr", "pull request"}, []string{"Read the change description", "Run the tests locally", "Leave comments", "Approve or request changes"}},
	{[]string{"trip", "travel", "vacation"}, []string{"Book transport", "Book accommodation", "Pack", "Plan the itinerary"}},
	{[]string{"groceries", "shopping", "buy"}, []string{"Check what is missing", "Write the shopping list", "Go to the store"}},
	{[]string{"bug", "fix", "issue"}, []string{"Reproduce the problem", "Find the root cause", "Write a failing test", "Fix and verify"}},
}

var genericSubtasks = []string{"Define what done looks like", "Break the work into steps", "Do the first step", "Review the result"}

// SuggestSubtasks returns the steps of the first keyword group that matches
// title, or a generic plan.
func (l *Local) SuggestSubtasks(ctx context.Context, title string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	lower := strings.ToLower(strings.TrimSpace(title))
	if lower == "" {
		return nil, ErrEmptyInput
	}
	words := strings.Fields(lower)
	for _, entry := range subtaskTable {
		for _, kw := range entry.keywords {
			if matchesKeyword(lower, words, kw) {
				return append([]string(nil), entry.steps...), nil
			}
		}
	}
	return append([]string(nil), genericSubtasks...), nil
}

func matchesKeyword(lower string, words []string, kw string) bool {
	if strings.Contains(kw, " ") {
		return strings.Contains(lower, kw)
	}
	for _, w := range words {
		if strings.Trim(w, ".,!?:;") == kw {
			return true
		}
	}
	return false
}

// Summarize returns a short markdown brief about topic.
func (l *Local) Summarize(ctx context.Context, topic string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", ErrEmptyInput
	}
	steps, err := l.SuggestSubtasks(ctx, topic)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", topic)
	fmt.Fprintf(&b, "A quick plan for **%s**, generated %s.\n\n", topic, l.clock.Now().Format("Jan 2"))
	for i, s := range steps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, s)
	}
	return b.String(), nil
}
