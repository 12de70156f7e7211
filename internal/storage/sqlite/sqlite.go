// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using Go's standard database/sql package.
//
// SQLite keeps everything in a single file on disk — no server process,
// no network, nothing to install beyond the driver. More than enough
// for a registration-eligibility service.
//
// The blank import below registers the sqlite3 driver with database/sql;
// the driver's init() does this automatically when the package loads.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dwikurnia/eligibility-api/internal/config"
	"github.com/dwikurnia/eligibility-api/internal/types"

	// Side-effect import: registers the "sqlite3" driver. Without it
	// sql.Open("sqlite3", ...) fails with "unknown driver".
	_ "github.com/mattn/go-sqlite3"
)

// SQLite is the concrete implementation of storage.Storage. It holds a
// *sql.DB — a connection pool managed by database/sql, safe for
// concurrent use by multiple goroutines.
type SQLite struct {
	Db *sql.DB
}

// New opens the SQLite database at cfg.StoragePath, creates the
// students table if it does not already exist, and returns a
// ready-to-use *SQLite.
//
// Schema note: courses_passed is a JSON-encoded string array in a TEXT
// column. The list is only ever membership-tested in Go, never queried
// by course, so a join table would buy nothing here.
func New(cfg *config.Config) (*SQLite, error) {
	db, err := sql.Open("sqlite3", cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	// Idempotent — safe to run on every startup.
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS students (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			name           TEXT    NOT NULL,
			credits_taken  INTEGER NOT NULL DEFAULT 0,
			courses_passed TEXT    NOT NULL DEFAULT '[]',
			payment_status TEXT    NOT NULL
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: create table: %w", err)
	}

	return &SQLite{Db: db}, nil
}

// encodeCourses serialises the passed-courses list for the TEXT column.
// A nil slice still encodes as "[]" so every row round-trips to a
// non-nil slice.
func encodeCourses(courses []string) (string, error) {
	if courses == nil {
		courses = []string{}
	}
	raw, err := json.Marshal(courses)
	if err != nil {
		return "", fmt.Errorf("encode courses: %w", err)
	}
	return string(raw), nil
}

func decodeCourses(raw string) ([]string, error) {
	courses := make([]string, 0)
	if err := json.Unmarshal([]byte(raw), &courses); err != nil {
		return nil, fmt.Errorf("decode courses: %w", err)
	}
	return courses, nil
}

// CreateStudent inserts a new row and returns its auto-generated ID.
//
// Prepared statements with ? placeholders keep user input as pure data
// — the driver never lets a value be parsed as SQL syntax.
func (s *SQLite) CreateStudent(rec types.StudentRecord) (int64, error) {
	courses, err := encodeCourses(rec.CoursesPassed)
	if err != nil {
		return 0, fmt.Errorf("CreateStudent: %w", err)
	}

	stmt, err := s.Db.Prepare(`
		INSERT INTO students (name, credits_taken, courses_passed, payment_status)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("CreateStudent: prepare: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.Exec(rec.Name, rec.CreditsTaken, courses, rec.PaymentStatus)
	if err != nil {
		return 0, fmt.Errorf("CreateStudent: exec: %w", err)
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("CreateStudent: last insert id: %w", err)
	}

	return lastID, nil
}

// GetStudentByID fetches exactly one record matched by primary key.
func (s *SQLite) GetStudentByID(id int64) (types.StudentRecord, error) {
	stmt, err := s.Db.Prepare(`
		SELECT id, name, credits_taken, courses_passed, payment_status
		FROM students WHERE id = ? LIMIT 1
	`)
	if err != nil {
		return types.StudentRecord{}, fmt.Errorf("GetStudentByID: prepare: %w", err)
	}
	defer stmt.Close()

	var (
		rec     types.StudentRecord
		courses string
	)

	err = stmt.QueryRow(id).Scan(
		&rec.ID,
		&rec.Name,
		&rec.CreditsTaken,
		&courses,
		&rec.PaymentStatus,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			// Human-readable message so the handler can surface it
			// without leaking driver internals.
			return types.StudentRecord{}, fmt.Errorf("no student found with id: %d", id)
		}
		return types.StudentRecord{}, fmt.Errorf("GetStudentByID: scan: %w", err)
	}

	rec.CoursesPassed, err = decodeCourses(courses)
	if err != nil {
		return types.StudentRecord{}, fmt.Errorf("GetStudentByID: %w", err)
	}

	return rec, nil
}

// GetStudents returns all student records as a slice.
func (s *SQLite) GetStudents() ([]types.StudentRecord, error) {
	// Columns listed explicitly — SELECT * would silently break Scan
	// ordering the day a column is added.
	stmt, err := s.Db.Prepare(`
		SELECT id, name, credits_taken, courses_passed, payment_status
		FROM students
	`)
	if err != nil {
		return nil, fmt.Errorf("GetStudents: prepare: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.Query()
	if err != nil {
		return nil, fmt.Errorf("GetStudents: query: %w", err)
	}
	defer rows.Close()

	// Non-nil even when empty: [] is better API behaviour than null.
	records := make([]types.StudentRecord, 0)

	for rows.Next() {
		var (
			rec     types.StudentRecord
			courses string
		)

		if err := rows.Scan(
			&rec.ID,
			&rec.Name,
			&rec.CreditsTaken,
			&courses,
			&rec.PaymentStatus,
		); err != nil {
			return nil, fmt.Errorf("GetStudents: scan row: %w", err)
		}

		rec.CoursesPassed, err = decodeCourses(courses)
		if err != nil {
			return nil, fmt.Errorf("GetStudents: %w", err)
		}

		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetStudents: rows iteration: %w", err)
	}

	return records, nil
}

// UpdateStudentByID replaces a record's fields with the provided values
// and returns the stored result so the caller can echo it back.
func (s *SQLite) UpdateStudentByID(id int64, rec types.StudentRecord) (types.StudentRecord, error) {
	courses, err := encodeCourses(rec.CoursesPassed)
	if err != nil {
		return types.StudentRecord{}, fmt.Errorf("UpdateStudentByID: %w", err)
	}

	stmt, err := s.Db.Prepare(`
		UPDATE students
		SET name = ?, credits_taken = ?, courses_passed = ?, payment_status = ?
		WHERE id = ?
	`)
	if err != nil {
		return types.StudentRecord{}, fmt.Errorf("UpdateStudentByID: prepare: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.Exec(rec.Name, rec.CreditsTaken, courses, rec.PaymentStatus, id)
	if err != nil {
		return types.StudentRecord{}, fmt.Errorf("UpdateStudentByID: exec: %w", err)
	}

	// Re-fetch so the response reflects exactly what the DB stores.
	return s.GetStudentByID(id)
}

// DeleteStudentByID removes a record by primary key.
func (s *SQLite) DeleteStudentByID(id int64) error {
	stmt, err := s.Db.Prepare("DELETE FROM students WHERE id = ?")
	if err != nil {
		return fmt.Errorf("DeleteStudentByID: prepare: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.Exec(id)
	if err != nil {
		return fmt.Errorf("DeleteStudentByID: exec: %w", err)
	}

	return nil
}
