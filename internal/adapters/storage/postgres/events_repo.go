package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"school-health-records/internal/domain/medevents"
)

type EventsRepo struct {
	db *sql.DB
}

func NewEventsRepo(db *sql.DB) *EventsRepo {
	return &EventsRepo{db: db}
}

const eventColumns = `
	id,
	student_name, student_id, grade,
	type, subtype,
	occurred_at, recorded_at,
	location, description,
	severity,
	treatment, treated_by,
	follow_up_required, follow_up_date,
	parent_notified, notified_at, notified_by,
	notes, status
`

// Create asigna id = max(id)+1 dentro del propio INSERT; el servicio es el
// único escritor, así que no hace falta secuencia.
func (r *EventsRepo) Create(ctx context.Context, e medevents.MedicalEvent) (medevents.MedicalEvent, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO medical_events (`+eventColumns+`)
		VALUES (
			(SELECT COALESCE(MAX(id), 0) + 1 FROM medical_events),
			$1, $2, $3,
			$4, $5,
			$6, $7,
			$8, $9,
			$10,
			$11, $12,
			$13, $14,
			$15, $16, $17,
			$18, $19
		)
		RETURNING id
	`,
		e.StudentName, e.StudentID, e.Grade,
		string(e.Type), e.Subtype,
		e.OccurredAt, e.RecordedAt,
		e.Location, e.Description,
		string(e.Severity),
		e.Treatment, e.TreatedBy,
		e.FollowUpRequired, e.FollowUpDate,
		e.ParentNotified, e.NotifiedAt, e.NotifiedBy,
		e.Notes, string(e.Status),
	)

	if err := row.Scan(&e.ID); err != nil {
		return medevents.MedicalEvent{}, err
	}
	return e, nil
}

func (r *EventsRepo) GetByID(ctx context.Context, id int) (medevents.MedicalEvent, error) {
	if id <= 0 {
		return medevents.MedicalEvent{}, medevents.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+eventColumns+`
		FROM medical_events
		WHERE id = $1
	`, id)

	e, err := scanEvent(row)
	if err == sql.ErrNoRows {
		return medevents.MedicalEvent{}, medevents.ErrNotFound
	}
	return e, err
}

func (r *EventsRepo) GetAll(ctx context.Context) ([]medevents.MedicalEvent, error) {
	return r.List(ctx, medevents.Filter{})
}

func (r *EventsRepo) List(ctx context.Context, filter medevents.Filter) ([]medevents.MedicalEvent, error) {
	sb := strings.Builder{}
	sb.WriteString(`SELECT ` + eventColumns + ` FROM medical_events WHERE 1=1`)

	args := []any{}
	argN := 1

	if filter.StudentID != "" {
		sb.WriteString(fmt.Sprintf(" AND student_id = $%d", argN))
		args = append(args, filter.StudentID)
		argN++
	}
	if filter.Type != "" {
		sb.WriteString(fmt.Sprintf(" AND type = $%d", argN))
		args = append(args, string(filter.Type))
		argN++
	}
	if filter.Severity != "" {
		sb.WriteString(fmt.Sprintf(" AND severity = $%d", argN))
		args = append(args, string(filter.Severity))
		argN++
	}
	if filter.Status != "" {
		sb.WriteString(fmt.Sprintf(" AND status = $%d", argN))
		args = append(args, string(filter.Status))
		argN++
	}
	if filter.FollowUpRequired != nil {
		sb.WriteString(fmt.Sprintf(" AND follow_up_required = $%d", argN))
		args = append(args, *filter.FollowUpRequired)
		argN++
	}

	// Límites por fecha calendario, inclusive; se compara el ::date.
	if filter.DateFrom != nil {
		sb.WriteString(fmt.Sprintf(" AND occurred_at::date >= $%d::date", argN))
		args = append(args, *filter.DateFrom)
		argN++
	}
	if filter.DateTo != nil {
		sb.WriteString(fmt.Sprintf(" AND occurred_at::date <= $%d::date", argN))
		args = append(args, *filter.DateTo)
		argN++
	}

	// Orden de inserción = orden de id.
	sb.WriteString(" ORDER BY id ASC")

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]medevents.MedicalEvent, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *EventsRepo) Update(ctx context.Context, e medevents.MedicalEvent) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE medical_events SET
			student_name = $2, student_id = $3, grade = $4,
			type = $5, subtype = $6,
			occurred_at = $7, recorded_at = $8,
			location = $9, description = $10,
			severity = $11,
			treatment = $12, treated_by = $13,
			follow_up_required = $14, follow_up_date = $15,
			parent_notified = $16, notified_at = $17, notified_by = $18,
			notes = $19, status = $20
		WHERE id = $1
	`,
		e.ID,
		e.StudentName, e.StudentID, e.Grade,
		string(e.Type), e.Subtype,
		e.OccurredAt, e.RecordedAt,
		e.Location, e.Description,
		string(e.Severity),
		e.Treatment, e.TreatedBy,
		e.FollowUpRequired, e.FollowUpDate,
		e.ParentNotified, e.NotifiedAt, e.NotifiedBy,
		e.Notes, string(e.Status),
	)
	if err != nil {
		return err
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return medevents.ErrNotFound
	}
	return nil
}

func (r *EventsRepo) Delete(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM medical_events WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (medevents.MedicalEvent, error) {
	var e medevents.MedicalEvent
	var typ, severity, status string

	err := row.Scan(
		&e.ID,
		&e.StudentName, &e.StudentID, &e.Grade,
		&typ, &e.Subtype,
		&e.OccurredAt, &e.RecordedAt,
		&e.Location, &e.Description,
		&severity,
		&e.Treatment, &e.TreatedBy,
		&e.FollowUpRequired, &e.FollowUpDate,
		&e.ParentNotified, &e.NotifiedAt, &e.NotifiedBy,
		&e.Notes, &status,
	)
	if err != nil {
		return medevents.MedicalEvent{}, err
	}

	e.Type = medevents.EventType(typ)
	e.Severity = medevents.Severity(severity)
	e.Status = medevents.Status(status)
	return e, nil
}
