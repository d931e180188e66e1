package domain

import "time"

// WorkflowDefinition is an advisory, content-type scoped checklist of
// editorial steps. Steps keep their order exactly as written.
type WorkflowDefinition struct {
	ID          int64
	Name        string
	ContentType ContentType
	Steps       []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// WorkflowPatch is a partial update of a workflow definition.
// Nil fields (and a nil Steps slice) keep the stored value.
type WorkflowPatch struct {
	Name        *string
	ContentType *ContentType
	Steps       []string
}

// StatusOrder maps the steps whose label names a content status to their
// position among such steps. Labels are matched case-insensitively after
// trimming; a status listed twice keeps its first position.
func (w WorkflowDefinition) StatusOrder() map[ContentStatus]int {
	order := make(map[ContentStatus]int)
	pos := 0
	for _, step := range w.Steps {
		s := ContentStatus(NormalizeLabel(step))
		if !s.IsValid() {
			continue
		}
		if _, seen := order[s]; seen {
			continue
		}
		order[s] = pos
		pos++
	}
	return order
}
