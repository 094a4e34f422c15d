package analyses

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres. Ordered sub-records are stored as
// JSONB arrays, which preserve element order.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new report.
func (r *PGRepo) Create(ctx context.Context, report Report) error {
	const query = `
INSERT INTO reports (
    id,
    filename,
    risk_level,
    dangerous_phrases,
    missing_sections,
    ai_analysis,
    storage_key,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	phrases, err := json.Marshal(report.DangerousPhrases)
	if err != nil {
		return fmt.Errorf("marshal dangerous phrases: %w", err)
	}
	sections, err := json.Marshal(report.MissingSections)
	if err != nil {
		return fmt.Errorf("marshal missing sections: %w", err)
	}

	var aiAnalysis sql.NullString
	if report.AIAnalysis != nil {
		aiAnalysis = sql.NullString{String: *report.AIAnalysis, Valid: true}
	}
	var storageKey sql.NullString
	if report.StorageKey != "" {
		storageKey = sql.NullString{String: report.StorageKey, Valid: true}
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		report.ID,
		report.Filename,
		string(report.RiskLevel),
		phrases,
		sections,
		aiAnalysis,
		storageKey,
		report.CreatedAt,
	)
	return err
}

// GetByID fetches a report by id.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Report, error) {
	const query = `
SELECT id, filename, risk_level, dangerous_phrases, missing_sections, ai_analysis, storage_key, created_at
FROM reports
WHERE id = $1
LIMIT 1`

	row := r.DB.QueryRowContext(ctx, query, id)
	report, err := scanReport(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Report{}, ErrNotFound
		}
		return Report{}, err
	}
	return report, nil
}

// List returns reports newest-first, honoring limit.
func (r *PGRepo) List(ctx context.Context, limit int) ([]Report, error) {
	if limit <= 0 {
		limit = 50
	}
	const query = `
SELECT id, filename, risk_level, dangerous_phrases, missing_sections, ai_analysis, storage_key, created_at
FROM reports
ORDER BY created_at DESC
LIMIT $1`

	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Report
	for rows.Next() {
		report, err := scanReport(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, report)
	}
	return out, rows.Err()
}

func scanReport(scan func(dest ...any) error) (Report, error) {
	var (
		report     Report
		riskLevel  string
		phrases    []byte
		sections   []byte
		aiAnalysis sql.NullString
		storageKey sql.NullString
	)
	if err := scan(
		&report.ID,
		&report.Filename,
		&riskLevel,
		&phrases,
		&sections,
		&aiAnalysis,
		&storageKey,
		&report.CreatedAt,
	); err != nil {
		return Report{}, err
	}

	report.RiskLevel = RiskLevel(riskLevel)
	if err := json.Unmarshal(phrases, &report.DangerousPhrases); err != nil {
		return Report{}, fmt.Errorf("unmarshal dangerous phrases: %w", err)
	}
	if err := json.Unmarshal(sections, &report.MissingSections); err != nil {
		return Report{}, fmt.Errorf("unmarshal missing sections: %w", err)
	}
	if aiAnalysis.Valid {
		report.AIAnalysis = &aiAnalysis.String
	}
	if storageKey.Valid {
		report.StorageKey = storageKey.String
	}
	return report, nil
}

var _ Repo = (*PGRepo)(nil)
