package medevents

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// ParentNotifier despacha el aviso al apoderado por un canal externo
// (webhook). Puede ser nil: en ese caso solo se marca el evento.
type ParentNotifier interface {
	NotifyParent(ctx context.Context, e MedicalEvent) error
}

type Service struct {
	repo     Repository
	notifier ParentNotifier
	now      func() time.Time
}

func NewService(repo Repository, notifier ParentNotifier) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		now:      time.Now,
	}
}

type CreateInput struct {
	StudentName string
	StudentID   string
	Grade       string

	Type    EventType
	Subtype string

	OccurredAt time.Time // zero => ahora

	Location    string
	Description string

	Severity Severity // vacío => Minor
	Status   Status   // vacío => Open

	Treatment string
	TreatedBy string

	FollowUpRequired bool
	FollowUpDate     *time.Time

	Notes string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (MedicalEvent, error) {
	if strings.TrimSpace(in.StudentName) == "" {
		return MedicalEvent{}, fmt.Errorf("%w: student_name required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Description) == "" {
		return MedicalEvent{}, fmt.Errorf("%w: description required", ErrInvalidInput)
	}
	if !ValidEventType(in.Type) {
		return MedicalEvent{}, fmt.Errorf("%w: unknown event type %q", ErrInvalidInput, in.Type)
	}
	if !ValidSubtype(in.Type, in.Subtype) {
		return MedicalEvent{}, fmt.Errorf("%w: subtype %q not in catalog for %q", ErrInvalidInput, in.Subtype, in.Type)
	}

	severity := in.Severity
	if severity == "" {
		severity = SeverityMinor
	}
	if !ValidSeverity(severity) {
		return MedicalEvent{}, fmt.Errorf("%w: unknown severity %q", ErrInvalidInput, severity)
	}

	status := in.Status
	if status == "" {
		status = StatusOpen
	}
	if !ValidStatus(status) {
		return MedicalEvent{}, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}

	now := s.now()

	occurred := in.OccurredAt
	if occurred.IsZero() {
		occurred = now
	}

	e := MedicalEvent{
		StudentName:      strings.TrimSpace(in.StudentName),
		StudentID:        strings.TrimSpace(in.StudentID),
		Grade:            strings.TrimSpace(in.Grade),
		Type:             in.Type,
		Subtype:          strings.TrimSpace(in.Subtype),
		OccurredAt:       occurred,
		RecordedAt:       now,
		Location:         strings.TrimSpace(in.Location),
		Description:      strings.TrimSpace(in.Description),
		Severity:         severity,
		Treatment:        strings.TrimSpace(in.Treatment),
		TreatedBy:        strings.TrimSpace(in.TreatedBy),
		FollowUpRequired: in.FollowUpRequired,
		FollowUpDate:     in.FollowUpDate,
		Notes:            strings.TrimSpace(in.Notes),
		Status:           status,
	}

	return s.repo.Create(ctx, e)
}

func (s *Service) GetByID(ctx context.Context, id int) (MedicalEvent, error) {
	if id <= 0 {
		return MedicalEvent{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetAll(ctx context.Context) ([]MedicalEvent, error) {
	return s.repo.GetAll(ctx)
}

func (s *Service) List(ctx context.Context, filter Filter) ([]MedicalEvent, error) {
	return s.repo.List(ctx, filter)
}

// ByDateRange equivale a List con ambos límites; inclusivo en los dos
// extremos. start > end devuelve vacío, no error.
func (s *Service) ByDateRange(ctx context.Context, start, end time.Time) ([]MedicalEvent, error) {
	return s.repo.List(ctx, Filter{DateFrom: &start, DateTo: &end})
}

// UpdateInput es un PATCH real: nil = no tocar ese campo.
type UpdateInput struct {
	StudentName *string
	StudentID   *string
	Grade       *string

	Type    *EventType
	Subtype *string

	OccurredAt *time.Time

	Location    *string
	Description *string

	Severity *Severity
	Status   *Status

	Treatment *string
	TreatedBy *string

	FollowUpRequired *bool
	FollowUpDate     *time.Time

	Notes *string
}

// Update hace merge superficial sobre el registro existente: los campos
// no enviados se preservan tal cual. Valida el resultado del merge contra
// el catálogo antes de persistir.
func (s *Service) Update(ctx context.Context, id int, in UpdateInput) (MedicalEvent, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return MedicalEvent{}, err
	}

	if in.StudentName != nil {
		if strings.TrimSpace(*in.StudentName) == "" {
			return MedicalEvent{}, fmt.Errorf("%w: student_name required", ErrInvalidInput)
		}
		e.StudentName = strings.TrimSpace(*in.StudentName)
	}
	if in.StudentID != nil {
		e.StudentID = strings.TrimSpace(*in.StudentID)
	}
	if in.Grade != nil {
		e.Grade = strings.TrimSpace(*in.Grade)
	}
	if in.Type != nil {
		e.Type = *in.Type
	}
	if in.Subtype != nil {
		e.Subtype = strings.TrimSpace(*in.Subtype)
	}
	if in.OccurredAt != nil {
		e.OccurredAt = *in.OccurredAt
	}
	if in.Location != nil {
		e.Location = strings.TrimSpace(*in.Location)
	}
	if in.Description != nil {
		if strings.TrimSpace(*in.Description) == "" {
			return MedicalEvent{}, fmt.Errorf("%w: description required", ErrInvalidInput)
		}
		e.Description = strings.TrimSpace(*in.Description)
	}
	if in.Severity != nil {
		e.Severity = *in.Severity
	}
	if in.Status != nil {
		e.Status = *in.Status
	}
	if in.Treatment != nil {
		e.Treatment = strings.TrimSpace(*in.Treatment)
	}
	if in.TreatedBy != nil {
		e.TreatedBy = strings.TrimSpace(*in.TreatedBy)
	}
	if in.FollowUpRequired != nil {
		e.FollowUpRequired = *in.FollowUpRequired
	}
	if in.FollowUpDate != nil {
		e.FollowUpDate = in.FollowUpDate
	}
	if in.Notes != nil {
		e.Notes = strings.TrimSpace(*in.Notes)
	}

	// El merge completo debe seguir siendo coherente con el catálogo.
	if !ValidEventType(e.Type) {
		return MedicalEvent{}, fmt.Errorf("%w: unknown event type %q", ErrInvalidInput, e.Type)
	}
	if !ValidSubtype(e.Type, e.Subtype) {
		return MedicalEvent{}, fmt.Errorf("%w: subtype %q not in catalog for %q", ErrInvalidInput, e.Subtype, e.Type)
	}
	if !ValidSeverity(e.Severity) {
		return MedicalEvent{}, fmt.Errorf("%w: unknown severity %q", ErrInvalidInput, e.Severity)
	}
	if !ValidStatus(e.Status) {
		return MedicalEvent{}, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, e.Status)
	}

	if err := s.repo.Update(ctx, e); err != nil {
		return MedicalEvent{}, err
	}
	return e, nil
}

func (s *Service) Delete(ctx context.Context, id int) (bool, error) {
	if id <= 0 {
		return false, nil
	}
	return s.repo.Delete(ctx, id)
}

// NotifyParent marca el evento como notificado y, si hay canal configurado,
// despacha el aviso. Un fallo del despacho no revierte la marca: se informa
// al caller para que decida reintentar. El bool indica si hubo despacho real.
func (s *Service) NotifyParent(ctx context.Context, id int, notifiedBy string) (MedicalEvent, bool, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return MedicalEvent{}, false, err
	}

	now := s.now()
	e.ParentNotified = true
	e.NotifiedAt = &now
	e.NotifiedBy = strings.TrimSpace(notifiedBy)

	if err := s.repo.Update(ctx, e); err != nil {
		return MedicalEvent{}, false, err
	}

	if s.notifier == nil {
		return e, false, nil
	}
	if err := s.notifier.NotifyParent(ctx, e); err != nil {
		return e, false, fmt.Errorf("notify dispatch failed: %w", err)
	}
	return e, true, nil
}
