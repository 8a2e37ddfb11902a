package medevents

import (
	"context"
	"time"
)

type Repository interface {
	// Create asigna ID = max(ids) + 1 y agrega al final de la secuencia.
	Create(ctx context.Context, e MedicalEvent) (MedicalEvent, error)
	GetByID(ctx context.Context, id int) (MedicalEvent, error)
	// GetAll devuelve una copia en orden de inserción.
	GetAll(ctx context.Context) ([]MedicalEvent, error)
	// List aplica Filter preservando el orden de inserción; no reordena.
	List(ctx context.Context, filter Filter) ([]MedicalEvent, error)
	// Update reemplaza el registro completo en su posición.
	Update(ctx context.Context, e MedicalEvent) error
	// Delete devuelve false si el id no existe (no es error).
	Delete(ctx context.Context, id int) (bool, error)
}

// Filter: todos los criterios son opcionales y se combinan con AND.
// Los campos categóricos se comparan por igualdad exacta (case-sensitive).
// DateFrom/DateTo acotan por fecha calendario inclusive, ignorando la hora.
type Filter struct {
	StudentID string
	Type      EventType
	Severity  Severity
	Status    Status

	DateFrom *time.Time
	DateTo   *time.Time

	FollowUpRequired *bool
}
