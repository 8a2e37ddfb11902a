package campaigns

import "context"

type Repository interface {
	Create(ctx context.Context, c Campaign) error
	GetByID(ctx context.Context, id string) (Campaign, error)
	// List ordena por scheduled_date asc (las sin fecha al final).
	List(ctx context.Context, filter ListFilter) ([]Campaign, error)
	Update(ctx context.Context, c Campaign) error
}

type ListFilter struct {
	Kind   Kind
	Status Status
}
