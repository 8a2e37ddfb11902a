package students

import "context"

type Repository interface {
	Create(ctx context.Context, st Student) error
	GetByID(ctx context.Context, id string) (Student, error)
	List(ctx context.Context, filter ListFilter) ([]Student, error)
	Update(ctx context.Context, st Student) error
}

// ListFilter: búsqueda libre sobre nombre/código, más filtros exactos.
type ListFilter struct {
	Search string
	Grade  string
	Active *bool
}
