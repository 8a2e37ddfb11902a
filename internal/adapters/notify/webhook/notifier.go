package webhook

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"school-health-records/internal/domain/medevents"
	"school-health-records/internal/platform/httpclient"
	"school-health-records/internal/platform/logger"
	"school-health-records/internal/platform/metrics"
)

var (
	ErrNotConfigured = errors.New("webhook notifier not configured")
)

// Config del notificador. URL normalmente viene de NOTIFY_WEBHOOK_URL.
type Config struct {
	URL     string
	Timeout time.Duration
}

// Notifier implementa medevents.ParentNotifier contra un endpoint HTTP
// externo (gateway de SMS/email del colegio).
type Notifier struct {
	client *httpclient.Client
	url    string
	log    logger.Logger
}

func NewNotifier(cfg Config, log logger.Logger) *Notifier {
	return &Notifier{
		client: httpclient.New(cfg.Timeout),
		url:    strings.TrimSpace(cfg.URL),
		log:    log,
	}
}

func (n *Notifier) IsConfigured() bool {
	return n != nil && n.url != ""
}

type notifyPayload struct {
	EventID     int    `json:"event_id"`
	StudentName string `json:"student_name"`
	StudentID   string `json:"student_id"`
	Grade       string `json:"grade"`
	EventType   string `json:"event_type"`
	Severity    string `json:"severity"`
	OccurredAt  string `json:"occurred_at"` // RFC3339
	Description string `json:"description"`
	NotifiedBy  string `json:"notified_by"`
}

func (n *Notifier) NotifyParent(ctx context.Context, e medevents.MedicalEvent) error {
	if !n.IsConfigured() {
		return ErrNotConfigured
	}

	payload := notifyPayload{
		EventID:     e.ID,
		StudentName: e.StudentName,
		StudentID:   e.StudentID,
		Grade:       e.Grade,
		EventType:   string(e.Type),
		Severity:    string(e.Severity),
		OccurredAt:  e.OccurredAt.Format(time.RFC3339),
		Description: e.Description,
		NotifiedBy:  e.NotifiedBy,
	}

	err := n.client.DoJSON(ctx, http.MethodPost, n.url, nil, payload, nil)
	metrics.RecordParentNotification(err == nil)
	if err != nil {
		if n.log != nil {
			n.log.Error("parent notification dispatch failed", map[string]any{
				"event_id": e.ID,
				"error":    err.Error(),
			})
		}
		return err
	}

	if n.log != nil {
		n.log.Info("parent notification dispatched", map[string]any{
			"event_id":   e.ID,
			"student_id": e.StudentID,
		})
	}
	return nil
}
