package medevents

import (
	"context"
	"sort"
)

// DefaultNotificationLimit es el máximo por defecto del feed.
const DefaultNotificationLimit = 5

// SelectNotifications arma el feed de eventos que requieren atención:
// la unión de (a) eventos con seguimiento pendiente y (b) eventos abiertos
// de severidad Serious o Severe. Deduplica por id conservando la primera
// aparición, ordena por occurred_at descendente y trunca a max.
// Feed vacío es un estado válido, no un error.
func (s *Service) SelectNotifications(ctx context.Context, max int) ([]MedicalEvent, error) {
	if max <= 0 {
		max = DefaultNotificationLimit
	}

	needsFollowUp := true
	followUps, err := s.repo.List(ctx, Filter{FollowUpRequired: &needsFollowUp})
	if err != nil {
		return nil, err
	}

	open, err := s.repo.List(ctx, Filter{Status: StatusOpen})
	if err != nil {
		return nil, err
	}

	out := make([]MedicalEvent, 0, len(followUps)+len(open))
	seen := make(map[int]struct{}, len(followUps)+len(open))

	appendOnce := func(e MedicalEvent) {
		if _, dup := seen[e.ID]; dup {
			return
		}
		seen[e.ID] = struct{}{}
		out = append(out, e)
	}

	for _, e := range followUps {
		appendOnce(e)
	}
	for _, e := range open {
		if e.Severity == SeveritySerious || e.Severity == SeveritySevere {
			appendOnce(e)
		}
	}

	// Más reciente primero.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OccurredAt.After(out[j].OccurredAt)
	})

	if len(out) > max {
		out = out[:max]
	}

	return out, nil
}
