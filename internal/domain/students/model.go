package students

import "time"

// Gender del alumno (male | female | other).
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Student es el perfil básico de un alumno en el registro del portal.
// Los eventos médicos NO referencian este registro por FK: el portal
// siempre trabajó con los datos del alumno como texto libre en el evento.
type Student struct {
	ID string

	Code     string // código interno del colegio, ej. "ST-2025-014"
	FullName string
	Grade    string // ej. "5A"
	Gender   Gender

	BirthDate *time.Time

	ParentName  string
	ParentPhone string

	Active bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
