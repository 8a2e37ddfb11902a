package campaigns

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("not found")
	ErrBadTransition = errors.New("invalid state transition")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Kind         Kind
	Name         string
	Description  string
	TargetGrades []string
}

// Create deja la campaña en draft; se programa con Schedule.
func (s *Service) Create(ctx context.Context, createdBy string, in CreateInput) (Campaign, error) {
	if strings.TrimSpace(createdBy) == "" {
		return Campaign{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return Campaign{}, ErrInvalidInput
	}
	if in.Kind != KindVaccination && in.Kind != KindHealthCheck {
		return Campaign{}, fmt.Errorf("%w: unknown campaign kind %q", ErrInvalidInput, in.Kind)
	}

	grades := make([]string, 0, len(in.TargetGrades))
	for _, g := range in.TargetGrades {
		g = strings.TrimSpace(g)
		if g == "" {
			continue
		}
		grades = append(grades, g)
	}

	now := s.now()
	c := Campaign{
		ID:           uuid.NewString(),
		Kind:         in.Kind,
		Name:         strings.TrimSpace(in.Name),
		Description:  strings.TrimSpace(in.Description),
		TargetGrades: grades,
		Status:       StatusDraft,
		CreatedBy:    strings.TrimSpace(createdBy),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return Campaign{}, err
	}
	return c, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Campaign, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Campaign{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Campaign, error) {
	return s.repo.List(ctx, filter)
}

// Schedule: draft -> scheduled, fijando la fecha.
func (s *Service) Schedule(ctx context.Context, id string, date time.Time) (Campaign, error) {
	if date.IsZero() {
		return Campaign{}, fmt.Errorf("%w: scheduled date required", ErrInvalidInput)
	}
	return s.transition(ctx, id, StatusScheduled, func(c *Campaign) error {
		if c.Status != StatusDraft {
			return fmt.Errorf("%w: %s -> %s", ErrBadTransition, c.Status, StatusScheduled)
		}
		c.ScheduledDate = &date
		return nil
	})
}

// Start: scheduled -> in_progress.
func (s *Service) Start(ctx context.Context, id string) (Campaign, error) {
	return s.transition(ctx, id, StatusInProgress, func(c *Campaign) error {
		if c.Status != StatusScheduled {
			return fmt.Errorf("%w: %s -> %s", ErrBadTransition, c.Status, StatusInProgress)
		}
		return nil
	})
}

// Complete: in_progress -> completed.
func (s *Service) Complete(ctx context.Context, id string) (Campaign, error) {
	return s.transition(ctx, id, StatusCompleted, func(c *Campaign) error {
		if c.Status != StatusInProgress {
			return fmt.Errorf("%w: %s -> %s", ErrBadTransition, c.Status, StatusCompleted)
		}
		return nil
	})
}

// Cancel: desde cualquier estado no terminal.
func (s *Service) Cancel(ctx context.Context, id string) (Campaign, error) {
	return s.transition(ctx, id, StatusCancelled, func(c *Campaign) error {
		if c.Status.Terminal() {
			return fmt.Errorf("%w: %s -> %s", ErrBadTransition, c.Status, StatusCancelled)
		}
		return nil
	})
}

func (s *Service) transition(ctx context.Context, id string, to Status, check func(*Campaign) error) (Campaign, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Campaign{}, ErrInvalidInput
	}

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Campaign{}, err
	}

	if err := check(&c); err != nil {
		return Campaign{}, err
	}

	c.Status = to
	c.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, c); err != nil {
		return Campaign{}, err
	}
	return c, nil
}
