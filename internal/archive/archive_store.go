// Package archive stores flattened standings snapshots in a SQL database.
package archive

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql" // MySQL driver
	"github.com/huangsam/standings/internal/contract"
	"github.com/huangsam/standings/schema"
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "modernc.org/sqlite"             // SQLite driver
)

// archiveTable is the table holding archived rows.
const archiveTable = "standings_archive_rows"

// sqliteTimeFormat keeps a fixed width so stored timestamps sort as text.
const sqliteTimeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// rowColumns lists the stored columns in insert and select order.
var rowColumns = []string{
	"year", "league", "rank_pos", "team_id", "team_name", "team_logo", "points",
	"total_played", "total_win", "total_draw", "total_lose", "total_goals_for", "total_goals_against",
	"home_played", "home_win", "home_draw", "home_lose", "home_goals_for", "home_goals_against",
	"away_played", "away_win", "away_draw", "away_lose", "away_goals_for", "away_goals_against",
	"pushed_at",
}

// ArchiveStoreImpl implements the ArchiveStore interface.
type ArchiveStoreImpl struct {
	db      *sql.DB
	backend schema.DatabaseBackend
}

var _ contract.ArchiveStore = &ArchiveStoreImpl{} // Compile-time check

// NewArchiveStore creates a new ArchiveStore with the specified backend.
// The archive table is created when it does not exist yet.
func NewArchiveStore(backend schema.DatabaseBackend, connStr string) (contract.ArchiveStore, error) {
	if backend == schema.NoneBackend {
		// Return a no-op store for a disabled archive
		return &ArchiveStoreImpl{backend: backend}, nil
	}

	db, err := openDB(backend, connStr)
	if err != nil {
		return nil, err
	}

	// Ping to verify connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database: %w. Verify the database server is running and accessible", backend, err)
	}

	if err := createArchiveTable(db, backend); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create archive table: %w", err)
	}

	return &ArchiveStoreImpl{
		db:      db,
		backend: backend,
	}, nil
}

// openDB opens a connection for the backend without verifying it.
func openDB(backend schema.DatabaseBackend, connStr string) (*sql.DB, error) {
	switch backend {
	case schema.SQLiteBackend:
		dbPath := connStr
		if dbPath == "" {
			dbPath = contract.GetArchiveDBFilePath()
		}
		db, err := sql.Open("sqlite", dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite database at %q: %w. Check that the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)
		return db, nil

	case schema.MySQLBackend:
		cfg, err := mysql.ParseDSN(connStr)
		if err != nil {
			return nil, fmt.Errorf("invalid MySQL connection string: %w. Expected format: user:password@tcp(host:port)/dbname", err)
		}
		// DATETIME columns scan into time.Time only with parseTime
		cfg.ParseTime = true
		db, err := sql.Open("mysql", cfg.FormatDSN())
		if err != nil {
			return nil, fmt.Errorf("failed to open MySQL database: %w", err)
		}
		return db, nil

	case schema.PostgreSQLBackend:
		db, err := sql.Open("pgx", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to open PostgreSQL database: %w. Check connection string format: host=... dbname=...", err)
		}
		return db, nil

	default:
		return nil, fmt.Errorf("unsupported backend: %s", backend)
	}
}

// createArchiveTable applies the first migration of the backend directly.
func createArchiveTable(db *sql.DB, backend schema.DatabaseBackend) error {
	query, err := migrationsFS.ReadFile(fmt.Sprintf("migrations/%s/000001_create_standings_rows.up.sql", backend))
	if err != nil {
		return err
	}
	_, err = db.Exec(string(query))
	return err
}

// PushSnapshot replaces the archived rows of a (year, league) snapshot in one transaction.
func (as *ArchiveStoreImpl) PushSnapshot(year int, league schema.League, rows []schema.FlatRow, pushedAt time.Time) error {
	// Skip for NoneBackend
	if as.backend == schema.NoneBackend || as.db == nil {
		return nil
	}

	tx, err := as.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	table := quoteTableName(archiveTable, as.backend)
	deleteQuery := fmt.Sprintf("DELETE FROM %s WHERE year = %s AND league = %s",
		table, placeholder(as.backend, 1), placeholder(as.backend, 2))
	if _, err := tx.Exec(deleteQuery, year, string(league)); err != nil {
		return fmt.Errorf("failed to delete previous rows: %w", err)
	}

	stmt, err := tx.Prepare(as.insertQuery())
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	ts := formatTime(pushedAt, as.backend)
	for _, r := range rows {
		if _, err := stmt.Exec(
			year, string(league), r.Rank, r.TeamID, r.TeamName, r.TeamLogo, r.Points,
			r.TotalPlayed, r.TotalWin, r.TotalDraw, r.TotalLose, r.TotalGoalsFor, r.TotalGoalsAgainst,
			r.HomePlayed, r.HomeWin, r.HomeDraw, r.HomeLose, r.HomeGoalsFor, r.HomeGoalsAgainst,
			r.AwayPlayed, r.AwayWin, r.AwayDraw, r.AwayLose, r.AwayGoalsFor, r.AwayGoalsAgainst,
			ts,
		); err != nil {
			return fmt.Errorf("failed to insert rank %d: %w", r.Rank, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}

// GetRows returns the archived rows of a snapshot ordered by rank.
func (as *ArchiveStoreImpl) GetRows(year int, league schema.League) ([]schema.FlatRow, error) {
	// Skip for NoneBackend
	if as.backend == schema.NoneBackend || as.db == nil {
		return nil, nil
	}

	// pushed_at is not part of a FlatRow
	cols := strings.Join(rowColumns[2:len(rowColumns)-1], ", ")
	query := fmt.Sprintf("SELECT %s FROM %s WHERE year = %s AND league = %s ORDER BY rank_pos",
		cols, quoteTableName(archiveTable, as.backend), placeholder(as.backend, 1), placeholder(as.backend, 2))

	rows, err := as.db.Query(query, year, string(league))
	if err != nil {
		return nil, fmt.Errorf("failed to query archived rows: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.FlatRow
	for rows.Next() {
		var r schema.FlatRow
		if err := rows.Scan(
			&r.Rank, &r.TeamID, &r.TeamName, &r.TeamLogo, &r.Points,
			&r.TotalPlayed, &r.TotalWin, &r.TotalDraw, &r.TotalLose, &r.TotalGoalsFor, &r.TotalGoalsAgainst,
			&r.HomePlayed, &r.HomeWin, &r.HomeDraw, &r.HomeLose, &r.HomeGoalsFor, &r.HomeGoalsAgainst,
			&r.AwayPlayed, &r.AwayWin, &r.AwayDraw, &r.AwayLose, &r.AwayGoalsFor, &r.AwayGoalsAgainst,
		); err != nil {
			return nil, fmt.Errorf("failed to scan archived row: %w", err)
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating archived rows: %w", err)
	}
	return results, nil
}

// GetStatus returns status information about the archive.
func (as *ArchiveStoreImpl) GetStatus() (schema.ArchiveStatus, error) {
	status := schema.ArchiveStatus{
		Backend:   string(as.backend),
		Connected: as.db != nil,
	}

	if as.backend == schema.NoneBackend || as.db == nil {
		return status, nil
	}

	table := quoteTableName(archiveTable, as.backend)
	row := as.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", table))
	if err := row.Scan(&status.TotalRows); err != nil {
		return status, fmt.Errorf("failed to get total rows: %w", err)
	}
	if status.TotalRows == 0 {
		return status, nil
	}

	rows, err := as.db.Query(fmt.Sprintf("SELECT DISTINCT year, league FROM %s ORDER BY year DESC, league", table))
	if err != nil {
		return status, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var s schema.SnapshotSelection
		var league string
		if err := rows.Scan(&s.Year, &league); err != nil {
			return status, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		s.League = schema.League(league)
		status.Snapshots = append(status.Snapshots, s)
	}
	if err := rows.Err(); err != nil {
		return status, fmt.Errorf("error iterating snapshots: %w", err)
	}

	lastPush, err := as.lastPush(table)
	if err != nil {
		return status, err
	}
	status.LastPush = lastPush.Format(contract.DateTimeFormat)
	return status, nil
}

// lastPush returns the most recent pushed_at value.
func (as *ArchiveStoreImpl) lastPush(table string) (time.Time, error) {
	row := as.db.QueryRow(fmt.Sprintf("SELECT pushed_at FROM %s ORDER BY pushed_at DESC LIMIT 1", table))

	switch as.backend {
	case schema.SQLiteBackend:
		var raw string
		if err := row.Scan(&raw); err != nil {
			return time.Time{}, fmt.Errorf("failed to get last push: %w", err)
		}
		t, err := time.Parse(sqliteTimeFormat, raw)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to parse last push: %w", err)
		}
		return t, nil
	default: // MySQL and PostgreSQL store as native datetime
		var t time.Time
		if err := row.Scan(&t); err != nil {
			return time.Time{}, fmt.Errorf("failed to get last push: %w", err)
		}
		return t, nil
	}
}

// Clear removes every archived row.
func (as *ArchiveStoreImpl) Clear() error {
	if as.backend == schema.NoneBackend || as.db == nil {
		return nil
	}
	if _, err := as.db.Exec(fmt.Sprintf("DELETE FROM %s", quoteTableName(archiveTable, as.backend))); err != nil {
		return fmt.Errorf("failed to clear archive: %w", err)
	}
	return nil
}

// Close closes the underlying DB connection.
func (as *ArchiveStoreImpl) Close() error {
	if as.db != nil {
		return as.db.Close()
	}
	return nil
}

// insertQuery returns the INSERT statement with backend-specific placeholders.
func (as *ArchiveStoreImpl) insertQuery() string {
	marks := make([]string, len(rowColumns))
	for i := range rowColumns {
		marks[i] = placeholder(as.backend, i+1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quoteTableName(archiveTable, as.backend), strings.Join(rowColumns, ", "), strings.Join(marks, ", "))
}

// placeholder returns the n-th parameter placeholder for the backend.
func placeholder(backend schema.DatabaseBackend, n int) string {
	if backend == schema.PostgreSQLBackend {
		return fmt.Sprintf("$%d", n)
	}
	return "?" // SQLite and MySQL
}

// quoteTableName returns the properly quoted table name for the given backend.
func quoteTableName(name string, backend schema.DatabaseBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf("`%s`", name)
	default: // SQLite and PostgreSQL
		return fmt.Sprintf("\"%s\"", name)
	}
}

// formatTime converts a time.Time to the appropriate format for the backend.
func formatTime(t time.Time, backend schema.DatabaseBackend) any {
	switch backend {
	case schema.SQLiteBackend:
		return t.UTC().Format(sqliteTimeFormat)
	default:
		return t
	}
}
