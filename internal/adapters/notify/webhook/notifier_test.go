package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"school-health-records/internal/domain/medevents"
	"school-health-records/internal/platform/httpclient"
)

func sampleEvent() medevents.MedicalEvent {
	return medevents.MedicalEvent{
		ID:          5,
		StudentName: "Olivia Brown",
		StudentID:   "ST-2025-005",
		Grade:       "1A",
		Type:        medevents.EventTypeInfectiousDisease,
		Severity:    medevents.SeveritySevere,
		OccurredAt:  time.Date(2025, 5, 20, 8, 20, 0, 0, time.UTC),
		Description: "Visible rash, suspected chickenpox",
		NotifiedBy:  "nurse-1",
	}
}

func TestNotifier_PostsPayload(t *testing.T) {
	var got notifyPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected json content type, got %s", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewNotifier(Config{URL: srv.URL, Timeout: 2 * time.Second}, nil)

	if err := n.NotifyParent(context.Background(), sampleEvent()); err != nil {
		t.Fatalf("NotifyParent error: %v", err)
	}

	if got.EventID != 5 || got.StudentName != "Olivia Brown" || got.NotifiedBy != "nurse-1" {
		t.Fatalf("unexpected payload: %+v", got)
	}
	if got.EventType != "Infectious Disease" || got.Severity != "Severe" {
		t.Fatalf("unexpected payload enums: %+v", got)
	}
	if got.OccurredAt != "2025-05-20T08:20:00Z" {
		t.Fatalf("expected RFC3339 occurred_at, got %q", got.OccurredAt)
	}
}

func TestNotifier_Non2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway down", http.StatusBadGateway)
	}))
	defer srv.Close()

	n := NewNotifier(Config{URL: srv.URL, Timeout: 2 * time.Second}, nil)

	err := n.NotifyParent(context.Background(), sampleEvent())
	if err == nil {
		t.Fatalf("expected error for 502 response")
	}
	var httpErr *httpclient.HTTPError
	if !errors.As(err, &httpErr) || httpErr.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected HTTPError 502, got %v", err)
	}
}

func TestNotifier_NotConfigured(t *testing.T) {
	n := NewNotifier(Config{URL: "  "}, nil)

	if n.IsConfigured() {
		t.Fatalf("expected notifier without URL to be unconfigured")
	}
	if err := n.NotifyParent(context.Background(), sampleEvent()); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
