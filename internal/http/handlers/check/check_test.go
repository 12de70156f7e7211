package check

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dwikurnia/eligibility-api/internal/eligibility"
	"github.com/dwikurnia/eligibility-api/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStorage serves records from a map, no database involved.
type fakeStorage struct {
	records map[int64]types.StudentRecord
}

func (f *fakeStorage) CreateStudent(rec types.StudentRecord) (int64, error) {
	id := int64(len(f.records) + 1)
	rec.ID = id
	f.records[id] = rec
	return id, nil
}

func (f *fakeStorage) GetStudentByID(id int64) (types.StudentRecord, error) {
	rec, ok := f.records[id]
	if !ok {
		return types.StudentRecord{}, fmt.Errorf("no student found with id: %d", id)
	}
	return rec, nil
}

func (f *fakeStorage) GetStudents() ([]types.StudentRecord, error) {
	out := make([]types.StudentRecord, 0, len(f.records))
	for _, rec := range f.records {
		out = append(out, rec)
	}
	return out, nil
}

func (f *fakeStorage) UpdateStudentByID(id int64, rec types.StudentRecord) (types.StudentRecord, error) {
	if _, ok := f.records[id]; !ok {
		return types.StudentRecord{}, errors.New("not found")
	}
	rec.ID = id
	f.records[id] = rec
	return rec, nil
}

func (f *fakeStorage) DeleteStudentByID(id int64) error {
	delete(f.records, id)
	return nil
}

// noopResults satisfies ResultLogger without producing output.
type noopResults struct{}

func (noopResults) LogSuccess(string, string) {}
func (noopResults) LogFailure(string, string) {}

func seededStorage() *fakeStorage {
	return &fakeStorage{records: map[int64]types.StudentRecord{
		1: {ID: 1, Name: "Andi", CreditsTaken: 24,
			CoursesPassed: []string{"Algoritma"}, PaymentStatus: "lunas"},
		2: {ID: 2, Name: "Budi", CreditsTaken: 20,
			CoursesPassed: []string{"Algoritma"}, PaymentStatus: "belum_lunas"},
	}}
}

func doCheck(t *testing.T, id, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := Run(seededStorage(), eligibility.NewRegistry(), noopResults{}, 22)

	req := httptest.NewRequest(http.MethodPost, "/api/students/"+id+"/checks",
		strings.NewReader(body))
	req.SetPathValue("id", id)

	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func decodeCheck(t *testing.T, w *httptest.ResponseRecorder) types.CheckResponse {
	t.Helper()

	var resp types.CheckResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func TestRun_PrerequisitePasses(t *testing.T) {
	w := doCheck(t, "2", `{"rule":"prerequisite","course":"Algoritma"}`)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeCheck(t, w)
	assert.Equal(t, "Budi", resp.Student)
	assert.Equal(t, "prerequisite", resp.Rule)
	assert.True(t, resp.Eligible)
}

func TestRun_PaymentFailsWithStatusOK(t *testing.T) {
	// An ineligible record is a normal outcome — still 200.
	w := doCheck(t, "2", `{"rule":"payment","status":"lunas"}`)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeCheck(t, w)
	assert.Equal(t, "Budi", resp.Student)
	assert.False(t, resp.Eligible)
}

func TestRun_CreditLimitExplicit(t *testing.T) {
	w := doCheck(t, "1", `{"rule":"credit_limit","limit":24}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decodeCheck(t, w).Eligible)
}

func TestRun_CreditLimitDefaultsFromConfig(t *testing.T) {
	// No limit in the body → the configured default (22) applies, and
	// Andi's 24 credits exceed it.
	w := doCheck(t, "1", `{"rule":"credit_limit"}`)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeCheck(t, w)
	assert.Equal(t, "Andi", resp.Student)
	assert.False(t, resp.Eligible)
}

func TestRun_UnknownRule(t *testing.T) {
	w := doCheck(t, "1", `{"rule":"attendance"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown rule")
	assert.Contains(t, w.Body.String(), "known rules")
}

func TestRun_MissingRequirementField(t *testing.T) {
	w := doCheck(t, "2", `{"rule":"prerequisite"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "course is required")
}

func TestRun_EmptyBody(t *testing.T) {
	w := doCheck(t, "2", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "request body is empty")
}

func TestRun_InvalidID(t *testing.T) {
	w := doCheck(t, "abc", `{"rule":"payment","status":"lunas"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid id")
}

func TestRun_StudentNotFound(t *testing.T) {
	w := doCheck(t, "99", `{"rule":"payment","status":"lunas"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "no student found")
}
