package model

import (
	"errors"
	"strings"
)

// DefaultListID is the list the active filter falls back to. It cannot be
// deleted.
const DefaultListID = "inbox"

type List struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Color   string   `json:"color"`
	Members []string `json:"members"`
}

func (l List) Validate() error {
	if strings.TrimSpace(l.ID) == "" {
		return errors.New("model: list id is required")
	}
	if strings.TrimSpace(l.Name) == "" {
		return errors.New("model: list name is required")
	}
	return nil
}

func (l List) HasMember(userID string) bool {
	for _, m := range l.Members {
		if m == userID {
			return true
		}
	}
	return false
}

// Column is a board lane owned by a list.
type Column struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	ListID string `json:"listId"`
}

func (c Column) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return errors.New("model: column id is required")
	}
	if strings.TrimSpace(c.ListID) == "" {
		return errors.New("model: column list_id is required")
	}
	return nil
}
