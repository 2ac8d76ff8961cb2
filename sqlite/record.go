package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/wikidex/wikidex"
)

// Compile-time interface verification.
var _ wikidex.RecordService = (*RecordService)(nil)

// RecordService implements wikidex.RecordService using SQLite.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// execer abstracts DB and Tx so inserts can run inside or outside a
// transaction.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertRecord(ctx context.Context, e execer, rec *wikidex.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	rec.ID = uuid.New().String()
	if rec.FetchedAt.IsZero() {
		rec.FetchedAt = time.Now().UTC()
	}
	rec.ContentHash = hashContent(rec.Content)

	_, err := e.ExecContext(ctx, `
		INSERT INTO records (id, page_id, title, content, url, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.PageID, rec.Title, rec.Content, rec.URL, rec.ContentHash,
		rec.FetchedAt.Format(time.RFC3339))

	return err
}

// CreateRecord creates a new record.
func (s *RecordService) CreateRecord(ctx context.Context, rec *wikidex.Record) error {
	return insertRecord(ctx, s.db, rec)
}

// CreateRecords creates multiple records in one transaction.
func (s *RecordService) CreateRecords(ctx context.Context, recs []*wikidex.Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, rec := range recs {
		if err := insertRecord(ctx, tx, rec); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// FindRecordByID retrieves a record by ID.
func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*wikidex.Record, error) {
	var rec wikidex.Record
	var fetchedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, page_id, title, content, url, content_hash, fetched_at
		FROM records
		WHERE id = ?
	`, id).Scan(&rec.ID, &rec.PageID, &rec.Title, &rec.Content, &rec.URL,
		&rec.ContentHash, &fetchedAt)

	if err == sql.ErrNoRows {
		return nil, wikidex.Errorf(wikidex.ENOTFOUND, "record not found")
	}
	if err != nil {
		return nil, err
	}

	var parseErr error
	rec.FetchedAt, parseErr = time.Parse(time.RFC3339, fetchedAt)
	if parseErr != nil {
		return nil, fmt.Errorf("failed to parse fetched_at: %w", parseErr)
	}

	return &rec, nil
}

// FindRecords retrieves records matching the filter.
func (s *RecordService) FindRecords(ctx context.Context, filter wikidex.RecordFilter) ([]*wikidex.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, page_id, title, content, url, content_hash, fetched_at FROM records WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.PageID != nil {
		query.WriteString(" AND page_id = ?")
		args = append(args, *filter.PageID)
	}
	if filter.Title != nil {
		query.WriteString(" AND title = ?")
		args = append(args, *filter.Title)
	}

	switch filter.SortBy {
	case wikidex.SortByTitle:
		query.WriteString(" ORDER BY title ASC")
	default:
		query.WriteString(" ORDER BY fetched_at DESC, page_id ASC")
	}

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*wikidex.Record
	for rows.Next() {
		var rec wikidex.Record
		var fetchedAt string

		if err := rows.Scan(&rec.ID, &rec.PageID, &rec.Title, &rec.Content, &rec.URL,
			&rec.ContentHash, &fetchedAt); err != nil {
			return nil, err
		}

		var parseErr error
		rec.FetchedAt, parseErr = time.Parse(time.RFC3339, fetchedAt)
		if parseErr != nil {
			return nil, fmt.Errorf("failed to parse fetched_at: %w", parseErr)
		}

		recs = append(recs, &rec)
	}

	return recs, rows.Err()
}

// CountRecords returns the total number of stored records.
func (s *RecordService) CountRecords(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM records").Scan(&n)
	return n, err
}

// DeleteRecord permanently removes a record.
func (s *RecordService) DeleteRecord(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM records WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return wikidex.Errorf(wikidex.ENOTFOUND, "record not found")
	}

	return nil
}

// ReplaceRecords atomically replaces all stored records with the given
// set. The delete and all inserts run in one transaction, so concurrent
// readers see either the old set or the new set, never a mix.
func (s *RecordService) ReplaceRecords(ctx context.Context, recs []*wikidex.Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM records"); err != nil {
		return err
	}
	for _, rec := range recs {
		if err := insertRecord(ctx, tx, rec); err != nil {
			return err
		}
	}
	return tx.Commit()
}
