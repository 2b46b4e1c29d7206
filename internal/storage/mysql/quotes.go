package mysql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"pool-quote/internal/storage"
)

func (s *Storage) CreateQuote(ctx context.Context, projectID string, snapshot storage.ProposalSnapshot) (*storage.Quote, error) {
	const op = "storage.mysql.CreateQuote"

	snapshotJSON, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка сериализации снимка: %w", op, err)
	}

	now := time.Now().UTC()
	q := &storage.Quote{
		ID:        uuid.NewString(),
		ProjectID: projectID,
		Status:    storage.QuoteStatusDraft,
		Snapshot:  snapshot,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO quotes (id, project_id, status, snapshot, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		q.ID, q.ProjectID, q.Status, snapshotJSON, q.CreatedAt, q.UpdatedAt)
	if err != nil {
		return nil, mapError(op, err)
	}

	return q, nil
}

func (s *Storage) GetQuote(ctx context.Context, id string) (*storage.Quote, error) {
	const op = "storage.mysql.GetQuote"

	q := &storage.Quote{}
	var snapshotJSON []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT id, project_id, status, snapshot, created_at, updated_at FROM quotes WHERE id = ?`, id).
		Scan(&q.ID, &q.ProjectID, &q.Status, &snapshotJSON, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return nil, mapError(op, err)
	}

	if err := json.Unmarshal(snapshotJSON, &q.Snapshot); err != nil {
		return nil, fmt.Errorf("%s: ошибка парсинга JSON снимка: %w", op, err)
	}

	return q, nil
}

func (s *Storage) ListProjectQuotes(ctx context.Context, projectID string) ([]storage.Quote, error) {
	const op = "storage.mysql.ListProjectQuotes"

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, project_id, status, created_at, updated_at FROM quotes WHERE project_id = ? ORDER BY created_at DESC`, projectID)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения предложений: %w", op, err)
	}
	defer rows.Close()

	quotes := []storage.Quote{}
	for rows.Next() {
		var q storage.Quote
		if err := rows.Scan(&q.ID, &q.ProjectID, &q.Status, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования строки: %w", op, err)
		}
		quotes = append(quotes, q)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: ошибка при итерации по строкам: %w", op, err)
	}

	return quotes, nil
}

func (s *Storage) UpdateQuoteStatus(ctx context.Context, id string, status string) error {
	const op = "storage.mysql.UpdateQuoteStatus"

	return s.execAffected(ctx, op, `UPDATE quotes SET status = ?, updated_at = ? WHERE id = ?`,
		status, time.Now().UTC(), id)
}
