package reducer

import (
	"github.com/sandeepkv93/taskflow/internal/model"
)

// setActiveList filters by a list and clears any tag filter.
func setActiveList(s *model.AppState, id string) *model.AppState {
	if _, ok := s.ListByID(id); !ok {
		return s
	}
	if s.ActiveListID == id && s.ActiveTag == "" && s.View == model.ViewTasks {
		return s
	}
	next := s.Clone()
	next.ActiveListID = id
	next.ActiveTag = ""
	next.View = model.ViewTasks
	return next
}

func setActiveTag(s *model.AppState, tag string) *model.AppState {
	tag = model.NormalizeTag(tag)
	if tag == s.ActiveTag {
		return s
	}
	if tag != "" && !s.HasTag(tag) {
		return s
	}
	next := s.Clone()
	next.ActiveTag = tag
	return next
}

func selectTask(s *model.AppState, id string) *model.AppState {
	if s.SelectedTaskID == id {
		return s
	}
	if id != "" {
		if _, _, ok := s.TaskByID(id); !ok {
			return s
		}
	}
	next := s.Clone()
	next.SelectedTaskID = id
	return next
}

func setSortOrder(s *model.AppState, order model.SortOrder) *model.AppState {
	if !order.IsValid() || s.SortOrder == order {
		return s
	}
	next := s.Clone()
	next.SortOrder = order
	return next
}

func setView(s *model.AppState, v model.View) *model.AppState {
	if !v.IsValid() || s.View == v {
		return s
	}
	next := s.Clone()
	next.View = v
	return next
}

// unlockAchievement records an achievement id. Unlocks are never removed.
func unlockAchievement(s *model.AppState, id string) *model.AppState {
	if id == "" || s.IsUnlocked(id) {
		return s
	}
	next := s.Clone()
	next.UnlockedAchievements = appendCopy(s.UnlockedAchievements, id)
	return next
}
