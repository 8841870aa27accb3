package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Bluscream/acedocs"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ acedocs.RecordService = (*RecordService)(nil)

// RecordService implements acedocs.RecordService using SQLite.
type RecordService struct {
	db  *DB
	now func() time.Time
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db, now: time.Now}
}

const recordColumns = "id, main, page, fragment, content, html, syntax, version, content_hash, position, built_at"

// ReplaceRecords atomically replaces the stored index with records.
// IDs, hashes and build times are assigned to the records in place.
func (s *RecordService) ReplaceRecords(ctx context.Context, records []*acedocs.Record) error {
	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM records"); err != nil {
		return fmt.Errorf("failed to clear records: %w", err)
	}

	builtAt := s.now().UTC().Truncate(time.Second)
	seen := make(map[string]string)
	for _, rec := range records {
		rec.ID = uuid.New().String()
		rec.ContentHash = hashContent(rec.Content)
		rec.BuiltAt = builtAt

		_, err := tx.ExecContext(ctx, `
			INSERT INTO records (`+recordColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, rec.ID, rec.Main, rec.Page, rec.Fragment, rec.Content, rec.HTML, rec.Syntax, rec.Version,
			rec.ContentHash, rec.Position, builtAt.Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("failed to insert record %q: %w", rec.Main, err)
		}

		for i, name := range rec.Names {
			key := strings.ToLower(name)
			if owner, ok := seen[key]; ok {
				return acedocs.Errorf(acedocs.ECONFLICT, "name %q held by both %q and %q", name, owner, rec.Main)
			}
			seen[key] = rec.Main

			if _, err := tx.ExecContext(ctx, `
				INSERT INTO record_names (record_id, name, name_lower, ordinal)
				VALUES (?, ?, ?, ?)
			`, rec.ID, name, key, i); err != nil {
				return fmt.Errorf("failed to insert name %q: %w", name, err)
			}
		}
	}

	return tx.Commit()
}

// FindRecordByName retrieves the record owning name, compared case-insensitively.
func (s *RecordService) FindRecordByName(ctx context.Context, name string) (*acedocs.Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT r.id, r.main, r.page, r.fragment, r.content, r.html, r.syntax, r.version, r.content_hash, r.position, r.built_at
		FROM records r
		JOIN record_names n ON n.record_id = r.id
		WHERE n.name_lower = ?
	`, strings.ToLower(name))

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, acedocs.Errorf(acedocs.ENOTFOUND, "no entry named %q", name)
	}
	if err != nil {
		return nil, err
	}

	if rec.Names, err = s.findNames(ctx, rec.ID); err != nil {
		return nil, err
	}
	return rec, nil
}

// FindRecords retrieves records matching the filter, ordered by position.
func (s *RecordService) FindRecords(ctx context.Context, filter acedocs.RecordFilter) ([]*acedocs.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + recordColumns + " FROM records WHERE 1=1")

	if filter.Page != nil {
		query.WriteString(" AND page = ?")
		args = append(args, *filter.Page)
	}
	if filter.Query != nil {
		query.WriteString(` AND id IN (SELECT record_id FROM record_names WHERE name_lower LIKE ? ESCAPE '\')`)
		args = append(args, "%"+escapeLike(strings.ToLower(*filter.Query))+"%")
	}

	query.WriteString(" ORDER BY position ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}

	var records []*acedocs.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	// The single connection must be free before names are loaded.
	rows.Close()

	for _, rec := range records {
		if rec.Names, err = s.findNames(ctx, rec.ID); err != nil {
			return nil, err
		}
	}
	return records, nil
}

func (s *RecordService) findNames(ctx context.Context, id string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT name FROM record_names WHERE record_id = ? ORDER BY ordinal ASC", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*acedocs.Record, error) {
	var rec acedocs.Record
	var builtAt string

	if err := row.Scan(&rec.ID, &rec.Main, &rec.Page, &rec.Fragment, &rec.Content, &rec.HTML,
		&rec.Syntax, &rec.Version, &rec.ContentHash, &rec.Position, &builtAt); err != nil {
		return nil, err
	}

	var err error
	if rec.BuiltAt, err = parseRFC3339(builtAt, "built_at"); err != nil {
		return nil, err
	}
	return &rec, nil
}
