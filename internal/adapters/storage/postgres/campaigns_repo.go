package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"school-health-records/internal/domain/campaigns"
)

type CampaignsRepo struct {
	db *sql.DB
}

func NewCampaignsRepo(db *sql.DB) *CampaignsRepo {
	return &CampaignsRepo{db: db}
}

const campaignColumns = `
	id, kind, name, description,
	scheduled_date, target_grades,
	status, created_by,
	created_at, updated_at
`

func (r *CampaignsRepo) Create(ctx context.Context, c campaigns.Campaign) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO campaigns (`+campaignColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		c.ID, string(c.Kind), c.Name, c.Description,
		c.ScheduledDate, joinGrades(c.TargetGrades),
		string(c.Status), c.CreatedBy,
		c.CreatedAt, c.UpdatedAt,
	)
	return err
}

func (r *CampaignsRepo) GetByID(ctx context.Context, id string) (campaigns.Campaign, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return campaigns.Campaign{}, campaigns.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+campaignColumns+`
		FROM campaigns
		WHERE id = $1
	`, id)

	c, err := scanCampaign(row)
	if err == sql.ErrNoRows {
		return campaigns.Campaign{}, campaigns.ErrNotFound
	}
	return c, err
}

func (r *CampaignsRepo) List(ctx context.Context, filter campaigns.ListFilter) ([]campaigns.Campaign, error) {
	sb := strings.Builder{}
	sb.WriteString(`SELECT ` + campaignColumns + ` FROM campaigns WHERE 1=1`)

	args := []any{}
	argN := 1

	if filter.Kind != "" {
		sb.WriteString(fmt.Sprintf(" AND kind = $%d", argN))
		args = append(args, string(filter.Kind))
		argN++
	}
	if filter.Status != "" {
		sb.WriteString(fmt.Sprintf(" AND status = $%d", argN))
		args = append(args, string(filter.Status))
		argN++
	}

	// Próximas primero; las sin fecha (draft) al final.
	sb.WriteString(" ORDER BY scheduled_date ASC NULLS LAST, created_at ASC")

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]campaigns.Campaign, 0)
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CampaignsRepo) Update(ctx context.Context, c campaigns.Campaign) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE campaigns SET
			kind = $2, name = $3, description = $4,
			scheduled_date = $5, target_grades = $6,
			status = $7,
			updated_at = $8
		WHERE id = $1
	`,
		c.ID,
		string(c.Kind), c.Name, c.Description,
		c.ScheduledDate, joinGrades(c.TargetGrades),
		string(c.Status),
		c.UpdatedAt,
	)
	if err != nil {
		return err
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return campaigns.ErrNotFound
	}
	return nil
}

// target_grades se guarda como CSV en una columna text: evita depender del
// soporte de arrays del driver database/sql y los cursos no llevan comas.
func joinGrades(grades []string) string {
	return strings.Join(grades, ",")
}

func splitGrades(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func scanCampaign(row rowScanner) (campaigns.Campaign, error) {
	var c campaigns.Campaign
	var kind, status, grades string

	err := row.Scan(
		&c.ID, &kind, &c.Name, &c.Description,
		&c.ScheduledDate, &grades,
		&status, &c.CreatedBy,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return campaigns.Campaign{}, err
	}

	c.Kind = campaigns.Kind(kind)
	c.Status = campaigns.Status(status)
	c.TargetGrades = splitGrades(grades)
	return c, nil
}
