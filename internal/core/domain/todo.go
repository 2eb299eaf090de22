package domain

type Todo struct {
	ID        int64
	Text      string
	Completed bool
}

func (t *Todo) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"text":      t.Text,
		"completed": t.Completed,
	}
}

// TodoPatch carries a partial update. A nil field is left untouched.
type TodoPatch struct {
	ID        int64
	Text      *string
	Completed *bool
}

func (p TodoPatch) IsEmpty() bool {
	return p.Text == nil && p.Completed == nil
}

// Apply writes the present fields onto todo and returns the names of the
// fields whose value changed.
func (p TodoPatch) Apply(todo *Todo) []string {
	var changed []string

	if p.Text != nil && *p.Text != todo.Text {
		todo.Text = *p.Text
		changed = append(changed, "text")
	}

	if p.Completed != nil && *p.Completed != todo.Completed {
		todo.Completed = *p.Completed
		changed = append(changed, "completed")
	}

	return changed
}
