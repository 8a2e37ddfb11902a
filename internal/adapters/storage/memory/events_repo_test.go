package memory

import (
	"context"
	"testing"
	"time"

	"school-health-records/internal/domain/medevents"
)

func mkEvent(student string, day int) medevents.MedicalEvent {
	return medevents.MedicalEvent{
		StudentName: student,
		StudentID:   "ST-" + student,
		Type:        medevents.EventTypeInjury,
		Subtype:     "Bruise",
		OccurredAt:  time.Date(2025, 5, day, 12, 0, 0, 0, time.UTC),
		RecordedAt:  time.Date(2025, 5, day, 12, 30, 0, 0, time.UTC),
		Description: "test event",
		Severity:    medevents.SeverityMinor,
		Status:      medevents.StatusOpen,
	}
}

func TestEventRepo_IDs_MaxPlusOne(t *testing.T) {
	repo := NewEventRepo()
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		e, err := repo.Create(ctx, mkEvent("a", i))
		if err != nil {
			t.Fatalf("Create #%d error: %v", i, err)
		}
		if e.ID != i {
			t.Fatalf("expected id %d, got %d", i, e.ID)
		}
	}

	// Borrar el id máximo hace que se reutilice: max restante + 1 = 3.
	if ok, err := repo.Delete(ctx, 3); err != nil || !ok {
		t.Fatalf("Delete(3) = (%v, %v)", ok, err)
	}
	e, err := repo.Create(ctx, mkEvent("b", 4))
	if err != nil {
		t.Fatalf("Create after delete error: %v", err)
	}
	if e.ID != 3 {
		t.Fatalf("expected reused id 3 after deleting max, got %d", e.ID)
	}

	// Borrar uno del medio NO perturba la asignación: sigue max+1.
	if ok, err := repo.Delete(ctx, 2); err != nil || !ok {
		t.Fatalf("Delete(2) = (%v, %v)", ok, err)
	}
	e, err = repo.Create(ctx, mkEvent("c", 5))
	if err != nil {
		t.Fatalf("Create after middle delete error: %v", err)
	}
	if e.ID != 4 {
		t.Fatalf("expected id 4, got %d", e.ID)
	}
}

func TestEventRepo_GetAll_PreservesInsertionOrder(t *testing.T) {
	repo := NewEventRepo()
	ctx := context.Background()

	names := []string{"liam", "emma", "noah", "olivia"}
	for i, n := range names {
		if _, err := repo.Create(ctx, mkEvent(n, i+1)); err != nil {
			t.Fatalf("Create %s error: %v", n, err)
		}
	}

	all, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll error: %v", err)
	}
	if len(all) != len(names) {
		t.Fatalf("expected %d events, got %d", len(names), len(all))
	}
	for i, n := range names {
		if all[i].StudentName != n {
			t.Fatalf("position %d: expected %s, got %s", i, n, all[i].StudentName)
		}
	}
}

func TestEventRepo_Delete_RemovesExactlyOne_KeepsOrder(t *testing.T) {
	repo := NewEventRepo()
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		if _, err := repo.Create(ctx, mkEvent("s", i)); err != nil {
			t.Fatalf("Create error: %v", err)
		}
	}

	ok, err := repo.Delete(ctx, 3)
	if err != nil || !ok {
		t.Fatalf("Delete(3) = (%v, %v)", ok, err)
	}

	all, _ := repo.GetAll(ctx)
	wantIDs := []int{1, 2, 4, 5}
	if len(all) != len(wantIDs) {
		t.Fatalf("expected %d events after delete, got %d", len(wantIDs), len(all))
	}
	for i, id := range wantIDs {
		if all[i].ID != id {
			t.Fatalf("position %d: expected id %d, got %d", i, id, all[i].ID)
		}
	}

	// Los sobrevivientes siguen accesibles por id tras reindexar.
	for _, id := range wantIDs {
		if _, err := repo.GetByID(ctx, id); err != nil {
			t.Fatalf("GetByID(%d) after delete: %v", id, err)
		}
	}

	// id inexistente: (false, nil), sin error.
	ok, err = repo.Delete(ctx, 99)
	if err != nil {
		t.Fatalf("Delete(99) error: %v", err)
	}
	if ok {
		t.Fatalf("expected Delete(99) = false")
	}
}

func TestEventRepo_Update_ReplacesRecord(t *testing.T) {
	repo := NewEventRepo()
	ctx := context.Background()

	e, err := repo.Create(ctx, mkEvent("liam", 1))
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	e.Status = medevents.StatusResolved
	e.Treatment = "Ice pack"
	if err := repo.Update(ctx, e); err != nil {
		t.Fatalf("Update error: %v", err)
	}

	got, err := repo.GetByID(ctx, e.ID)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.Status != medevents.StatusResolved || got.Treatment != "Ice pack" {
		t.Fatalf("update not persisted: %#v", got)
	}

	ghost := mkEvent("ghost", 2)
	ghost.ID = 42
	if err := repo.Update(ctx, ghost); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound updating missing id, got %v", err)
	}
}

func TestEventRepo_List_FiltersAreANDed(t *testing.T) {
	repo := NewEventRepo()
	ctx := context.Background()

	a := mkEvent("liam", 10)
	a.Severity = medevents.SeveritySerious
	a.Status = medevents.StatusOpen

	b := mkEvent("liam", 12)
	b.Severity = medevents.SeverityMinor
	b.Status = medevents.StatusResolved

	c := mkEvent("emma", 12)
	c.Severity = medevents.SeveritySerious
	c.Status = medevents.StatusOpen

	for _, e := range []medevents.MedicalEvent{a, b, c} {
		if _, err := repo.Create(ctx, e); err != nil {
			t.Fatalf("Create error: %v", err)
		}
	}

	got, err := repo.List(ctx, medevents.Filter{
		StudentID: "ST-liam",
		Severity:  medevents.SeveritySerious,
		Status:    medevents.StatusOpen,
	})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 1 || got[0].StudentName != "liam" || got[0].OccurredAt.Day() != 10 {
		t.Fatalf("expected only liam's serious open event, got %#v", got)
	}

	// Filtro vacío = todos, en orden de inserción.
	all, err := repo.List(ctx, medevents.Filter{})
	if err != nil {
		t.Fatalf("List (empty filter) error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 events with empty filter, got %d", len(all))
	}
}

func TestEventRepo_List_DateRangeInclusive_IgnoresTime(t *testing.T) {
	repo := NewEventRepo()
	ctx := context.Background()

	days := []int{14, 15, 17, 19, 20}
	for _, d := range days {
		e := mkEvent("s", d)
		// Hora tarde en el día: no debe excluirlo del límite superior.
		e.OccurredAt = time.Date(2025, 5, d, 23, 45, 0, 0, time.UTC)
		if _, err := repo.Create(ctx, e); err != nil {
			t.Fatalf("Create error: %v", err)
		}
	}

	from := time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 5, 19, 0, 0, 0, 0, time.UTC)

	got, err := repo.List(ctx, medevents.Filter{DateFrom: &from, DateTo: &to})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 events in [15,19], got %d", len(got))
	}
	if got[0].OccurredAt.Day() != 15 || got[2].OccurredAt.Day() != 19 {
		t.Fatalf("range bounds not inclusive: %#v", got)
	}

	// from > to: vacío, no error.
	inverted, err := repo.List(ctx, medevents.Filter{DateFrom: &to, DateTo: &from})
	if err != nil {
		t.Fatalf("List (inverted) error: %v", err)
	}
	if len(inverted) != 0 {
		t.Fatalf("expected empty result for inverted range, got %d", len(inverted))
	}
}
