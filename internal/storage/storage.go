// Package storage defines the Storage interface — a contract that any
// database backend must satisfy to work with this application.
//
// Handlers (HTTP layer) depend only on this interface, never on the
// concrete sqlite type. Switching databases means implementing these
// methods for the new backend and changing one line in main; tests pass
// an in-memory fake instead of a real database.
//
// Note what is NOT here: validation outcomes. Checks are computed fresh
// on every request and only ever surface as log lines and the HTTP
// response — student records are the only persisted data.
package storage

import "github.com/dwikurnia/eligibility-api/internal/types"

// Storage is the database contract for student records.
type Storage interface {
	// CreateStudent inserts a new record and returns the auto-generated
	// primary-key ID.
	CreateStudent(rec types.StudentRecord) (int64, error)

	// GetStudentByID fetches a single record by primary key. Returns an
	// error with a descriptive message if no record matches.
	GetStudentByID(id int64) (types.StudentRecord, error)

	// GetStudents returns every student record.
	// Returns an empty slice (not nil) when the table is empty.
	GetStudents() ([]types.StudentRecord, error)

	// UpdateStudentByID replaces all fields of an existing record and
	// returns what is now stored.
	UpdateStudentByID(id int64, rec types.StudentRecord) (types.StudentRecord, error)

	// DeleteStudentByID removes a record permanently.
	DeleteStudentByID(id int64) error
}
