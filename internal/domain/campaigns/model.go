package campaigns

import "time"

// Kind distingue las campañas de vacunación de los chequeos de salud.
type Kind string

const (
	KindVaccination Kind = "vaccination"
	KindHealthCheck Kind = "health_check"
)

// Status de la campaña. Transiciones válidas:
// draft -> scheduled -> in_progress -> completed
// cancel: desde cualquier estado no terminal.
type Status string

const (
	StatusDraft      Status = "draft"
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Campaign es una campaña de vacunación o chequeo de salud programada
// para uno o más cursos.
type Campaign struct {
	ID string

	Kind        Kind
	Name        string
	Description string

	// ScheduledDate se fija recién al pasar a scheduled.
	ScheduledDate *time.Time
	TargetGrades  []string

	Status Status

	CreatedBy string

	CreatedAt time.Time
	UpdatedAt time.Time
}
