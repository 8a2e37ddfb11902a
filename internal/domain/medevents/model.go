package medevents

import "time"

// MedicalEvent es el registro único del sistema: un incidente o observación
// de salud asociado a un alumno. Los campos del alumno son texto libre
// (el portal no exige integridad referencial contra el registro de alumnos).
type MedicalEvent struct {
	ID int

	StudentName string
	StudentID   string
	Grade       string

	Type    EventType
	Subtype string

	// OccurredAt reemplaza al par date + time (texto) del portal.
	// Se parsea una sola vez en el borde HTTP.
	OccurredAt time.Time
	RecordedAt time.Time

	Location    string
	Description string

	Severity Severity

	Treatment string
	TreatedBy string

	FollowUpRequired bool
	FollowUpDate     *time.Time

	ParentNotified bool
	NotifiedAt     *time.Time
	NotifiedBy     string

	Notes  string
	Status Status
}
