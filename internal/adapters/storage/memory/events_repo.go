package memory

import (
	"context"
	"sync"
	"time"

	"school-health-records/internal/domain/medevents"
)

// ErrNotFound reusa el sentinel del dominio para que los handlers puedan
// hacer errors.Is sin conocer el adapter.
var ErrNotFound = medevents.ErrNotFound

// eventRepo guarda los eventos en un slice (el orden de inserción es parte
// del contrato de lectura) más un índice id -> posición para los lookups.
type eventRepo struct {
	mu    sync.RWMutex
	seq   []medevents.MedicalEvent
	index map[int]int
}

func NewEventRepo() medevents.Repository {
	return &eventRepo{
		index: make(map[int]int),
	}
}

func (r *eventRepo) Create(ctx context.Context, e medevents.MedicalEvent) (medevents.MedicalEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// id = max existente + 1. Como los ids se asignan crecientes y seq
	// preserva el orden de inserción, el máximo vive en la última posición.
	e.ID = 1
	if n := len(r.seq); n > 0 {
		e.ID = r.seq[n-1].ID + 1
	}

	r.index[e.ID] = len(r.seq)
	r.seq = append(r.seq, e)
	return e, nil
}

func (r *eventRepo) GetByID(ctx context.Context, id int) (medevents.MedicalEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pos, ok := r.index[id]
	if !ok {
		return medevents.MedicalEvent{}, ErrNotFound
	}
	return r.seq[pos], nil
}

func (r *eventRepo) GetAll(ctx context.Context) ([]medevents.MedicalEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]medevents.MedicalEvent, len(r.seq))
	copy(out, r.seq)
	return out, nil
}

func (r *eventRepo) List(ctx context.Context, filter medevents.Filter) ([]medevents.MedicalEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]medevents.MedicalEvent, 0)
	for _, e := range r.seq {
		if matches(e, filter) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *eventRepo) Update(ctx context.Context, e medevents.MedicalEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pos, ok := r.index[e.ID]
	if !ok {
		return ErrNotFound
	}
	r.seq[pos] = e
	return nil
}

func (r *eventRepo) Delete(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pos, ok := r.index[id]
	if !ok {
		return false, nil
	}

	// Splice preservando el orden del resto; se reindexa lo que quedó
	// a la derecha del hueco.
	r.seq = append(r.seq[:pos], r.seq[pos+1:]...)
	delete(r.index, id)
	for i := pos; i < len(r.seq); i++ {
		r.index[r.seq[i].ID] = i
	}
	return true, nil
}

func matches(e medevents.MedicalEvent, f medevents.Filter) bool {
	if f.StudentID != "" && e.StudentID != f.StudentID {
		return false
	}
	if f.Type != "" && e.Type != f.Type {
		return false
	}
	if f.Severity != "" && e.Severity != f.Severity {
		return false
	}
	if f.Status != "" && e.Status != f.Status {
		return false
	}
	if f.FollowUpRequired != nil && e.FollowUpRequired != *f.FollowUpRequired {
		return false
	}

	// Límites por fecha calendario, ambos inclusive; la hora se ignora.
	if f.DateFrom != nil && dateOnly(e.OccurredAt).Before(dateOnly(*f.DateFrom)) {
		return false
	}
	if f.DateTo != nil && dateOnly(e.OccurredAt).After(dateOnly(*f.DateTo)) {
		return false
	}

	return true
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
