package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"school-health-records/internal/domain/students"
)

type StudentsRepo struct {
	db *sql.DB
}

func NewStudentsRepo(db *sql.DB) *StudentsRepo {
	return &StudentsRepo{db: db}
}

const studentColumns = `
	id, code, full_name, grade, gender,
	birth_date,
	parent_name, parent_phone,
	active,
	created_at, updated_at
`

func (r *StudentsRepo) Create(ctx context.Context, st students.Student) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO students (`+studentColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		st.ID, st.Code, st.FullName, st.Grade, string(st.Gender),
		st.BirthDate,
		st.ParentName, st.ParentPhone,
		st.Active,
		st.CreatedAt, st.UpdatedAt,
	)
	return err
}

func (r *StudentsRepo) GetByID(ctx context.Context, id string) (students.Student, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return students.Student{}, students.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+studentColumns+`
		FROM students
		WHERE id = $1
	`, id)

	st, err := scanStudent(row)
	if err == sql.ErrNoRows {
		return students.Student{}, students.ErrNotFound
	}
	return st, err
}

func (r *StudentsRepo) List(ctx context.Context, filter students.ListFilter) ([]students.Student, error) {
	sb := strings.Builder{}
	sb.WriteString(`SELECT ` + studentColumns + ` FROM students WHERE 1=1`)

	args := []any{}
	argN := 1

	if filter.Grade != "" {
		sb.WriteString(fmt.Sprintf(" AND grade = $%d", argN))
		args = append(args, filter.Grade)
		argN++
	}
	if filter.Active != nil {
		sb.WriteString(fmt.Sprintf(" AND active = $%d", argN))
		args = append(args, *filter.Active)
		argN++
	}
	if q := strings.TrimSpace(filter.Search); q != "" {
		sb.WriteString(fmt.Sprintf(" AND (full_name ILIKE $%d OR code ILIKE $%d)", argN, argN))
		args = append(args, "%"+q+"%")
		argN++
	}

	sb.WriteString(" ORDER BY full_name ASC")

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]students.Student, 0)
	for rows.Next() {
		st, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

func (r *StudentsRepo) Update(ctx context.Context, st students.Student) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE students SET
			code = $2, full_name = $3, grade = $4, gender = $5,
			birth_date = $6,
			parent_name = $7, parent_phone = $8,
			active = $9,
			updated_at = $10
		WHERE id = $1
	`,
		st.ID,
		st.Code, st.FullName, st.Grade, string(st.Gender),
		st.BirthDate,
		st.ParentName, st.ParentPhone,
		st.Active,
		st.UpdatedAt,
	)
	if err != nil {
		return err
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return students.ErrNotFound
	}
	return nil
}

func scanStudent(row rowScanner) (students.Student, error) {
	var st students.Student
	var gender string

	err := row.Scan(
		&st.ID, &st.Code, &st.FullName, &st.Grade, &gender,
		&st.BirthDate,
		&st.ParentName, &st.ParentPhone,
		&st.Active,
		&st.CreatedAt, &st.UpdatedAt,
	)
	if err != nil {
		return students.Student{}, err
	}

	st.Gender = students.Gender(gender)
	return st, nil
}
