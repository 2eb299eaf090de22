package factory

import (
	"time"

	fab "github.com/Goldziher/fabricator"

	"pollsapp/internal/core/domain"
)

// New builds a T with random field values, overridden by customData.
// Later maps win over earlier ones.
func New[T any](customData ...map[string]any) T {
	instance := fab.New(*new(T))

	return instance.Build(merge(customData...))
}

// merge flattens overrides into one map, since Build only reads the first.
func merge(customData ...map[string]any) map[string]any {
	merged := map[string]any{}

	for _, data := range customData {
		for key, value := range data {
			merged[key] = value
		}
	}

	return merged
}

// NewQuestion builds an unsaved question published now.
func NewQuestion(customData ...map[string]any) domain.Question {
	data := []map[string]any{{
		"ID":      int64(0),
		"PubDate": time.Now().UTC().Truncate(time.Second),
	}}

	return New[domain.Question](append(data, customData...)...)
}

// NewChoice builds an unsaved choice for questionID with zero votes.
func NewChoice(questionID int64, customData ...map[string]any) domain.Choice {
	data := []map[string]any{{
		"ID":         int64(0),
		"QuestionID": questionID,
		"Votes":      0,
	}}

	return New[domain.Choice](append(data, customData...)...)
}

func NewTodo(customData ...map[string]any) domain.Todo {
	data := []map[string]any{{
		"ID":        int64(0),
		"Completed": false,
	}}

	return New[domain.Todo](append(data, customData...)...)
}
