// Package archive keeps collected system info reports in a local SQLite
// database so operators can look back at earlier collections.
package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/vojtech-kasny/IT-NETWORK/sysinfo"
)

// Record is one stored report row.
type Record struct {
	ID          int64
	Hostname    string
	FQDN        string
	Unit        sysinfo.Unit
	CollectedAt time.Time
	StoredAt    time.Time
	ReportJSON  string
}

// Report decodes the stored report payload.
func (r *Record) Report() (*sysinfo.Report, error) {
	var rep sysinfo.Report
	if err := json.Unmarshal([]byte(r.ReportJSON), &rep); err != nil {
		return nil, fmt.Errorf("decode report %d: %w", r.ID, err)
	}
	return &rep, nil
}

// ListFilter holds optional query parameters for listing reports.
type ListFilter struct {
	Hostname        string
	CollectedAfter  *time.Time
	CollectedBefore *time.Time
	Limit           int
}

// Store provides report persistence.
type Store struct {
	db *sql.DB
}

// New opens the SQLite database at path and runs migrations.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Insert stores a report and returns the new row ID.
func (s *Store) Insert(ctx context.Context, rep *sysinfo.Report, unit sysinfo.Unit) (int64, error) {
	payload, err := json.Marshal(rep)
	if err != nil {
		return 0, fmt.Errorf("encode report: %w", err)
	}

	now := time.Now().UTC()
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO reports (hostname, fqdn, unit, collected_at, stored_at, report_json)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rep.ComputerName,
		rep.FQDN,
		string(unit),
		now.Format(time.RFC3339),
		now.Format(time.RFC3339),
		string(payload),
	)
	if err != nil {
		return 0, fmt.Errorf("insert report: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id: %w", err)
	}
	return id, nil
}

// Get retrieves a report record by ID.
func (s *Store) Get(ctx context.Context, id int64) (*Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, hostname, fqdn, unit, collected_at, stored_at, report_json
		 FROM reports WHERE id = ?`, id)
	return scanRecord(row)
}

// GetLatestByHostname retrieves the most recent report for a hostname.
func (s *Store) GetLatestByHostname(ctx context.Context, hostname string) (*Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, hostname, fqdn, unit, collected_at, stored_at, report_json
		 FROM reports WHERE hostname = ? ORDER BY collected_at DESC LIMIT 1`, hostname)
	return scanRecord(row)
}

// List returns report records matching the filter, newest first.
func (s *Store) List(ctx context.Context, f ListFilter) ([]Record, error) {
	query := `SELECT id, hostname, fqdn, unit, collected_at, stored_at, report_json FROM reports`
	var conditions []string
	var args []any

	if f.Hostname != "" {
		conditions = append(conditions, "hostname = ?")
		args = append(args, f.Hostname)
	}
	if f.CollectedAfter != nil {
		conditions = append(conditions, "collected_at >= ?")
		args = append(args, f.CollectedAfter.UTC().Format(time.RFC3339))
	}
	if f.CollectedBefore != nil {
		conditions = append(conditions, "collected_at <= ?")
		args = append(args, f.CollectedBefore.UTC().Format(time.RFC3339))
	}

	for i, c := range conditions {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += " ORDER BY collected_at DESC"

	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}
	query += " LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

// Purge deletes report records older than the given duration and
// returns how many were removed.
func (s *Store) Purge(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-olderThan).Format(time.RFC3339)
	result, err := s.db.ExecContext(ctx, `DELETE FROM reports WHERE collected_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge reports: %w", err)
	}
	return result.RowsAffected()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*Record, error) {
	var rec Record
	var unit, collectedAt, storedAt string
	err := row.Scan(&rec.ID, &rec.Hostname, &rec.FQDN, &unit, &collectedAt, &storedAt, &rec.ReportJSON)
	if err != nil {
		return nil, err
	}

	rec.Unit = sysinfo.Unit(unit)
	rec.CollectedAt, _ = time.Parse(time.RFC3339, collectedAt)
	rec.StoredAt, _ = time.Parse(time.RFC3339, storedAt)
	return &rec, nil
}
