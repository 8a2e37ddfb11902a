package campaigns

import (
	"context"
	"errors"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]Campaign
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Campaign{}}
}

func (r *testRepo) Create(ctx context.Context, c Campaign) error {
	if c.ID == "" {
		return errors.New("repo: id required")
	}
	if _, ok := r.byID[c.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[c.ID] = c
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Campaign, error) {
	c, ok := r.byID[id]
	if !ok {
		return Campaign{}, ErrNotFound
	}
	return c, nil
}

func (r *testRepo) List(ctx context.Context, filter ListFilter) ([]Campaign, error) {
	out := make([]Campaign, 0)
	for _, c := range r.byID {
		if filter.Kind != "" && c.Kind != filter.Kind {
			continue
		}
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, c Campaign) error {
	if _, ok := r.byID[c.ID]; !ok {
		return ErrNotFound
	}
	r.byID[c.ID] = c
	return nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_StartsAsDraft(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	now := time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	c, err := svc.Create(context.Background(), "admin-1", CreateInput{
		Kind:         KindVaccination,
		Name:         " Influenza 2025 ",
		TargetGrades: []string{"1A", " ", "2C"},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if c.Status != StatusDraft {
		t.Fatalf("expected draft, got %s", c.Status)
	}
	if c.Name != "Influenza 2025" {
		t.Fatalf("expected trimmed name, got %q", c.Name)
	}
	if len(c.TargetGrades) != 2 {
		t.Fatalf("expected blank grades dropped, got %#v", c.TargetGrades)
	}
	if c.ScheduledDate != nil {
		t.Fatalf("draft must not carry a scheduled date")
	}
	if c.CreatedAt != now || c.UpdatedAt != now {
		t.Fatalf("expected CreatedAt/UpdatedAt = now")
	}
}

func TestService_Create_RejectsInvalidInput(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	if _, err := svc.Create(ctx, "", CreateInput{Kind: KindVaccination, Name: "x"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing creator, got %v", err)
	}
	if _, err := svc.Create(ctx, "admin-1", CreateInput{Kind: KindVaccination}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing name, got %v", err)
	}
	if _, err := svc.Create(ctx, "admin-1", CreateInput{Kind: Kind("screening"), Name: "x"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown kind, got %v", err)
	}
}

func TestService_Lifecycle_HappyPath(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	ctx := context.Background()

	c, err := svc.Create(ctx, "admin-1", CreateInput{Kind: KindHealthCheck, Name: "Annual check"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	c, err = svc.Schedule(ctx, c.ID, date)
	if err != nil {
		t.Fatalf("Schedule error: %v", err)
	}
	if c.Status != StatusScheduled || c.ScheduledDate == nil || !c.ScheduledDate.Equal(date) {
		t.Fatalf("schedule not applied: %#v", c)
	}

	c, err = svc.Start(ctx, c.ID)
	if err != nil {
		t.Fatalf("Start error: %v", err)
	}
	if c.Status != StatusInProgress {
		t.Fatalf("expected in_progress, got %s", c.Status)
	}

	c, err = svc.Complete(ctx, c.ID)
	if err != nil {
		t.Fatalf("Complete error: %v", err)
	}
	if c.Status != StatusCompleted {
		t.Fatalf("expected completed, got %s", c.Status)
	}
	if !c.Status.Terminal() {
		t.Fatalf("completed must be terminal")
	}
}

func TestService_Transitions_RejectInvalid(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	ctx := context.Background()

	c, err := svc.Create(ctx, "admin-1", CreateInput{Kind: KindVaccination, Name: "Influenza 2025"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	// draft no puede saltar a in_progress ni a completed.
	if _, err := svc.Start(ctx, c.ID); !errors.Is(err, ErrBadTransition) {
		t.Fatalf("expected ErrBadTransition for draft->in_progress, got %v", err)
	}
	if _, err := svc.Complete(ctx, c.ID); !errors.Is(err, ErrBadTransition) {
		t.Fatalf("expected ErrBadTransition for draft->completed, got %v", err)
	}

	// scheduled no puede re-programarse.
	if _, err := svc.Schedule(ctx, c.ID, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("Schedule error: %v", err)
	}
	if _, err := svc.Schedule(ctx, c.ID, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)); !errors.Is(err, ErrBadTransition) {
		t.Fatalf("expected ErrBadTransition re-scheduling, got %v", err)
	}

	// El estado no cambió por los intentos fallidos.
	got, _ := repo.GetByID(ctx, c.ID)
	if got.Status != StatusScheduled {
		t.Fatalf("failed transitions mutated status: %s", got.Status)
	}
}

func TestService_Cancel_OnlyNonTerminal(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	ctx := context.Background()

	c, err := svc.Create(ctx, "admin-1", CreateInput{Kind: KindVaccination, Name: "Influenza 2025"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	// draft -> cancelled directo está permitido.
	c, err = svc.Cancel(ctx, c.ID)
	if err != nil {
		t.Fatalf("Cancel error: %v", err)
	}
	if c.Status != StatusCancelled {
		t.Fatalf("expected cancelled, got %s", c.Status)
	}

	// Cancelar dos veces no: ya es terminal.
	if _, err := svc.Cancel(ctx, c.ID); !errors.Is(err, ErrBadTransition) {
		t.Fatalf("expected ErrBadTransition cancelling terminal campaign, got %v", err)
	}
}

func TestService_Schedule_RequiresDate(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	ctx := context.Background()

	c, err := svc.Create(ctx, "admin-1", CreateInput{Kind: KindVaccination, Name: "Influenza 2025"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if _, err := svc.Schedule(ctx, c.ID, time.Time{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero date, got %v", err)
	}
}
