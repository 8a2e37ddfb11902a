package medevents

import (
	"context"
	"testing"
	"time"
)

func seedFeedRepo(t *testing.T, repo *testRepo) {
	t.Helper()

	day := func(d int) time.Time { return time.Date(2025, 5, d, 12, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	events := []MedicalEvent{
		// 1: resuelto, sin seguimiento: fuera del feed.
		{Type: EventTypeInjury, Severity: SeverityMinor, Status: StatusResolved, OccurredAt: day(14), Description: "a"},
		// 2: seguimiento pendiente.
		{Type: EventTypeIllness, Severity: SeverityModerate, Status: StatusFollowUp, FollowUpRequired: true, OccurredAt: day(15), Description: "b"},
		// 3: abierto pero Moderate: fuera del feed.
		{Type: EventTypeIllness, Severity: SeverityModerate, Status: StatusOpen, OccurredAt: day(16), Description: "c"},
		// 4: abierto y Serious, ADEMÁS con seguimiento: debe salir una sola vez.
		{Type: EventTypeMedicalCondition, Severity: SeveritySerious, Status: StatusOpen, FollowUpRequired: true, OccurredAt: day(17), Description: "d"},
		// 5: abierto y Severe.
		{Type: EventTypeInfectiousDisease, Severity: SeveritySevere, Status: StatusOpen, OccurredAt: day(20), Description: "e"},
	}
	for _, e := range events {
		if _, err := repo.Create(ctx, e); err != nil {
			t.Fatalf("seed create error: %v", err)
		}
	}
}

func TestSelectNotifications_UnionDedupOrder(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil)
	seedFeedRepo(t, repo)

	got, err := svc.SelectNotifications(context.Background(), 10)
	if err != nil {
		t.Fatalf("SelectNotifications error: %v", err)
	}

	// Unión: {2 follow-up} ∪ {4, 5 abiertos graves}; 4 califica dos veces
	// pero sale una. Orden: más reciente primero.
	wantIDs := []int{5, 4, 2}
	if len(got) != len(wantIDs) {
		t.Fatalf("expected %d events, got %d: %#v", len(wantIDs), len(got), got)
	}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Fatalf("position %d: expected id %d, got %d", i, id, got[i].ID)
		}
	}
}

func TestSelectNotifications_TruncatesToMax(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil)
	seedFeedRepo(t, repo)

	got, err := svc.SelectNotifications(context.Background(), 2)
	if err != nil {
		t.Fatalf("SelectNotifications error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected feed truncated to 2, got %d", len(got))
	}
	// Se truncan los más antiguos, no los más recientes.
	if got[0].ID != 5 || got[1].ID != 4 {
		t.Fatalf("expected [5 4], got %#v", got)
	}
}

func TestSelectNotifications_DefaultLimit(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil)

	ctx := context.Background()
	for i := 0; i < 8; i++ {
		if _, err := repo.Create(ctx, MedicalEvent{
			Type:             EventTypeOther,
			Severity:         SeverityMinor,
			Status:           StatusOpen,
			FollowUpRequired: true,
			OccurredAt:       time.Date(2025, 5, 1+i, 9, 0, 0, 0, time.UTC),
			Description:      "x",
		}); err != nil {
			t.Fatalf("seed create error: %v", err)
		}
	}

	// max <= 0 cae al límite por defecto.
	got, err := svc.SelectNotifications(ctx, 0)
	if err != nil {
		t.Fatalf("SelectNotifications error: %v", err)
	}
	if len(got) != DefaultNotificationLimit {
		t.Fatalf("expected default limit %d, got %d", DefaultNotificationLimit, len(got))
	}
}

func TestSelectNotifications_EmptyFeedIsValid(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil)

	got, err := svc.SelectNotifications(context.Background(), 5)
	if err != nil {
		t.Fatalf("expected no error on empty feed, got %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty feed, got %#v", got)
	}
}
