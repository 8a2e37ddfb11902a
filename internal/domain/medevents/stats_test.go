package medevents

import (
	"testing"
	"time"
)

func TestSummarize_Empty(t *testing.T) {
	st := Summarize(nil)

	if st.TotalEvents != 0 || st.OpenEvents != 0 || st.FollowUpRequired != 0 {
		t.Fatalf("expected all zero counts, got %#v", st)
	}
	// Mapas inicializados (no nil), para serializar como {} y no null.
	if st.CountByType == nil || st.CountBySeverity == nil || st.CountByStatus == nil {
		t.Fatalf("expected initialized maps, got %#v", st)
	}
	if len(st.CountByType) != 0 {
		t.Fatalf("expected empty type counts, got %#v", st.CountByType)
	}
}

func TestSummarize_CountsReconcile(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2025, 5, d, 12, 0, 0, 0, time.UTC) }

	events := []MedicalEvent{
		{ID: 1, Type: EventTypeInjury, Severity: SeverityMinor, Status: StatusResolved, OccurredAt: day(14)},
		{ID: 2, Type: EventTypeIllness, Severity: SeverityModerate, Status: StatusFollowUp, FollowUpRequired: true, OccurredAt: day(15)},
		{ID: 3, Type: EventTypeMedicalCondition, Severity: SeveritySerious, Status: StatusResolved, OccurredAt: day(17)},
		{ID: 4, Type: EventTypeAllergicReaction, Severity: SeverityModerate, Status: StatusInProgress, FollowUpRequired: true, OccurredAt: day(19)},
		{ID: 5, Type: EventTypeInfectiousDisease, Severity: SeveritySevere, Status: StatusOpen, OccurredAt: day(20)},
	}

	st := Summarize(events)

	if st.TotalEvents != 5 {
		t.Fatalf("expected total 5, got %d", st.TotalEvents)
	}
	if st.OpenEvents != 1 {
		t.Fatalf("expected 1 open event, got %d", st.OpenEvents)
	}
	if st.FollowUpRequired != 2 {
		t.Fatalf("expected 2 follow-ups, got %d", st.FollowUpRequired)
	}

	if st.CountByType[EventTypeInjury] != 1 || st.CountByType[EventTypeIllness] != 1 {
		t.Fatalf("unexpected type counts: %#v", st.CountByType)
	}
	if st.CountBySeverity[SeverityModerate] != 2 {
		t.Fatalf("expected 2 moderate events, got %#v", st.CountBySeverity)
	}
	if st.CountByStatus[StatusResolved] != 2 {
		t.Fatalf("expected 2 resolved events, got %#v", st.CountByStatus)
	}

	// Cada desglose debe sumar el total.
	for name, m := range map[string]int{
		"type":     sumTypeCounts(st.CountByType),
		"severity": sumSeverityCounts(st.CountBySeverity),
		"status":   sumStatusCounts(st.CountByStatus),
	} {
		if m != st.TotalEvents {
			t.Fatalf("count_by_%s does not reconcile with total: %d != %d", name, m, st.TotalEvents)
		}
	}

	// Solo valores observados; no se rellenan ceros del catálogo.
	if _, ok := st.CountByType[EventTypeMentalHealth]; ok {
		t.Fatalf("expected absent types to be omitted, got %#v", st.CountByType)
	}
}

func sumTypeCounts(m map[EventType]int) int {
	n := 0
	for _, v := range m {
		n += v
	}
	return n
}

func sumSeverityCounts(m map[Severity]int) int {
	n := 0
	for _, v := range m {
		n += v
	}
	return n
}

func sumStatusCounts(m map[Status]int) int {
	n := 0
	for _, v := range m {
		n += v
	}
	return n
}
