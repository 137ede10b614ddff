package model

import "strings"

type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

type Settings struct {
	Theme           string   `json:"theme"`
	Language        string   `json:"language"`
	Notifications   bool     `json:"notifications"`
	DefaultPriority Priority `json:"defaultPriority"`
	DefaultListID   string   `json:"defaultList"`
	BottomNav       []string `json:"bottomNav"`
}

func DefaultSettings() Settings {
	return Settings{
		Theme:           "dark",
		Language:        "en",
		Notifications:   true,
		DefaultPriority: PriorityNone,
		DefaultListID:   DefaultListID,
		BottomNav:       []string{string(ViewTasks), string(ViewPomodoro), string(ViewHabits), string(ViewCountdowns)},
	}
}

// NormalizeTag trims and lowercases a tag name.
func NormalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

// NormalizeTags normalizes and deduplicates tags, dropping empty names.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, t := range tags {
		n := NormalizeTag(t)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
