package keywords

import (
	"context"
	"database/sql"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new custom keyword.
func (r *PGRepo) Create(ctx context.Context, kw Keyword) error {
	const query = `
INSERT INTO keywords (id, phrase, created_at)
VALUES ($1, $2, $3)`
	_, err := r.DB.ExecContext(ctx, query, kw.ID, kw.Phrase, kw.CreatedAt)
	return err
}

// Delete removes a custom keyword by id.
func (r *PGRepo) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM keywords WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns custom keywords oldest-first.
func (r *PGRepo) List(ctx context.Context) ([]Keyword, error) {
	const query = `
SELECT id, phrase, created_at
FROM keywords
ORDER BY created_at ASC, id ASC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Keyword
	for rows.Next() {
		var kw Keyword
		if err := rows.Scan(&kw.ID, &kw.Phrase, &kw.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, kw)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
