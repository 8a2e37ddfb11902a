package students

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
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
	Code     string
	FullName string
	Grade    string
	Gender   string

	BirthDate *time.Time

	ParentName  string
	ParentPhone string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Student, error) {
	if strings.TrimSpace(in.FullName) == "" {
		return Student{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Code) == "" {
		return Student{}, ErrInvalidInput
	}

	gender := Gender(strings.TrimSpace(in.Gender))
	switch gender {
	case "", GenderMale, GenderFemale, GenderOther:
	default:
		return Student{}, ErrInvalidInput
	}

	now := s.now()
	st := Student{
		ID:          uuid.NewString(),
		Code:        strings.TrimSpace(in.Code),
		FullName:    strings.TrimSpace(in.FullName),
		Grade:       strings.TrimSpace(in.Grade),
		Gender:      gender,
		BirthDate:   in.BirthDate,
		ParentName:  strings.TrimSpace(in.ParentName),
		ParentPhone: strings.TrimSpace(in.ParentPhone),
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, st); err != nil {
		return Student{}, err
	}
	return st, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Student, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Student{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Student, error) {
	return s.repo.List(ctx, filter)
}

type UpdateInput struct {
	// Punteros para PATCH real: nil = no tocar.
	Code        *string
	FullName    *string
	Grade       *string
	Gender      *string
	BirthDate   *time.Time
	ParentName  *string
	ParentPhone *string
	Active      *bool
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Student, error) {
	st, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Student{}, err
	}

	if in.Code != nil {
		if strings.TrimSpace(*in.Code) == "" {
			return Student{}, ErrInvalidInput
		}
		st.Code = strings.TrimSpace(*in.Code)
	}
	if in.FullName != nil {
		if strings.TrimSpace(*in.FullName) == "" {
			return Student{}, ErrInvalidInput
		}
		st.FullName = strings.TrimSpace(*in.FullName)
	}
	if in.Grade != nil {
		st.Grade = strings.TrimSpace(*in.Grade)
	}
	if in.Gender != nil {
		gender := Gender(strings.TrimSpace(*in.Gender))
		switch gender {
		case GenderMale, GenderFemale, GenderOther:
		default:
			return Student{}, ErrInvalidInput
		}
		st.Gender = gender
	}
	if in.BirthDate != nil {
		st.BirthDate = in.BirthDate
	}
	if in.ParentName != nil {
		st.ParentName = strings.TrimSpace(*in.ParentName)
	}
	if in.ParentPhone != nil {
		st.ParentPhone = strings.TrimSpace(*in.ParentPhone)
	}
	if in.Active != nil {
		st.Active = *in.Active
	}

	st.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, st); err != nil {
		return Student{}, err
	}
	return st, nil
}
