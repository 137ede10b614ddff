package reducer

import (
	"slices"

	"github.com/sandeepkv93/taskflow/internal/model"
)

// unionTags adds normalized tags to the registry. The registry is returned
// unchanged when every tag is already present.
func unionTags(registry []string, tags []string) []string {
	out := registry
	for _, tag := range model.NormalizeTags(tags) {
		if slices.Contains(out, tag) {
			continue
		}
		out = appendCopy(out, tag)
	}
	return out
}

func addTag(s *model.AppState, name string) *model.AppState {
	tags := unionTags(s.Tags, []string{name})
	if len(tags) == len(s.Tags) {
		return s
	}
	next := s.Clone()
	next.Tags = tags
	return next
}

// deleteTag removes a tag from the registry and from every task carrying it.
func deleteTag(s *model.AppState, name string) *model.AppState {
	tag := model.NormalizeTag(name)
	if tag == "" {
		return s
	}
	registry := removeWhere(s.Tags, func(t string) bool { return t == tag })

	var tasks []model.Task
	for i, t := range s.Tasks {
		if !t.HasTag(tag) {
			continue
		}
		if tasks == nil {
			tasks = slices.Clone(s.Tasks)
		}
		t.Tags = removeWhere(t.Tags, func(x string) bool { return x == tag })
		tasks[i] = t
	}

	if len(registry) == len(s.Tags) && tasks == nil && s.ActiveTag != tag {
		return s
	}
	next := s.Clone()
	next.Tags = registry
	if tasks != nil {
		next.Tasks = tasks
	}
	if next.ActiveTag == tag {
		next.ActiveTag = ""
	}
	return next
}
