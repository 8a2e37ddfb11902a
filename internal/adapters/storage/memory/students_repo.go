package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"school-health-records/internal/domain/students"
)

type studentRepo struct {
	mu   sync.RWMutex
	byID map[string]students.Student
}

func NewStudentRepo() students.Repository {
	return &studentRepo{
		byID: make(map[string]students.Student),
	}
}

func (r *studentRepo) Create(ctx context.Context, st students.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(st.ID) == "" {
		return errors.New("student id required")
	}
	if _, exists := r.byID[st.ID]; exists {
		return errors.New("student already exists")
	}
	r.byID[st.ID] = st
	return nil
}

func (r *studentRepo) GetByID(ctx context.Context, id string) (students.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	st, ok := r.byID[id]
	if !ok {
		return students.Student{}, students.ErrNotFound
	}
	return st, nil
}

func (r *studentRepo) List(ctx context.Context, filter students.ListFilter) ([]students.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]students.Student, 0)
	for _, st := range r.byID {
		if filter.Grade != "" && st.Grade != filter.Grade {
			continue
		}
		if filter.Active != nil && st.Active != *filter.Active {
			continue
		}
		if q := strings.TrimSpace(filter.Search); q != "" {
			hay := strings.ToLower(st.FullName + " " + st.Code)
			if !strings.Contains(hay, strings.ToLower(q)) {
				continue
			}
		}
		out = append(out, st)
	}

	// Orden estable por nombre (los pickers del portal listan alfabético).
	sort.Slice(out, func(i, j int) bool {
		return out[i].FullName < out[j].FullName
	})

	return out, nil
}

func (r *studentRepo) Update(ctx context.Context, st students.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[st.ID]; !exists {
		return students.ErrNotFound
	}
	r.byID[st.ID] = st
	return nil
}
