package medevents

// EventType clasifica el incidente médico registrado.
type EventType string

const (
	EventTypeInjury            EventType = "Injury"
	EventTypeIllness           EventType = "Illness"
	EventTypeMedicalCondition  EventType = "Medical Condition"
	EventTypeInfectiousDisease EventType = "Infectious Disease"
	EventTypeAllergicReaction  EventType = "Allergic Reaction"
	EventTypeMentalHealth      EventType = "Mental Health"
	EventTypeOther             EventType = "Other"
)

// Severity es ordinal: Minor < Moderate < Serious < Severe.
type Severity string

const (
	SeverityMinor    Severity = "Minor"
	SeverityModerate Severity = "Moderate"
	SeveritySerious  Severity = "Serious"
	SeveritySevere   Severity = "Severe"
)

// Status es el estado de gestión del evento.
type Status string

const (
	StatusOpen       Status = "Open"
	StatusInProgress Status = "In Progress"
	StatusFollowUp   Status = "Requires Follow-up"
	StatusResolved   Status = "Resolved"
)
