package student

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dwikurnia/eligibility-api/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStorage struct {
	records map[int64]types.StudentRecord
	nextID  int64
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{records: make(map[int64]types.StudentRecord)}
}

func (f *fakeStorage) CreateStudent(rec types.StudentRecord) (int64, error) {
	f.nextID++
	rec.ID = f.nextID
	f.records[f.nextID] = rec
	return f.nextID, nil
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
	for id := int64(1); id <= f.nextID; id++ {
		if rec, ok := f.records[id]; ok {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeStorage) UpdateStudentByID(id int64, rec types.StudentRecord) (types.StudentRecord, error) {
	if _, ok := f.records[id]; !ok {
		return types.StudentRecord{}, fmt.Errorf("no student found with id: %d", id)
	}
	rec.ID = id
	f.records[id] = rec
	return rec, nil
}

func (f *fakeStorage) DeleteStudentByID(id int64) error {
	delete(f.records, id)
	return nil
}

func TestNew_CreatesRecord(t *testing.T) {
	store := newFakeStorage()

	body := `{"name":"Budi","credits_taken":20,"courses_passed":["Algoritma"],"payment_status":"belum_lunas"}`
	req := httptest.NewRequest(http.MethodPost, "/api/students", strings.NewReader(body))
	w := httptest.NewRecorder()

	New(store)(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]int64
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, int64(1), resp["id"])

	stored := store.records[1]
	assert.Equal(t, "Budi", stored.Name)
	assert.Equal(t, []string{"Algoritma"}, stored.CoursesPassed)
}

func TestNew_EmptyBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/students", strings.NewReader(""))
	w := httptest.NewRecorder()

	New(newFakeStorage())(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "request body is empty")
}

func TestNew_ValidationFailure(t *testing.T) {
	// Missing name and payment_status, negative credits.
	body := `{"credits_taken":-3}`
	req := httptest.NewRequest(http.MethodPost, "/api/students", strings.NewReader(body))
	w := httptest.NewRecorder()

	New(newFakeStorage())(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "field Name is required")
	assert.Contains(t, w.Body.String(), "field CreditsTaken must be 0 or greater")
	assert.Contains(t, w.Body.String(), "field PaymentStatus is required")
}

func TestGetByID(t *testing.T) {
	store := newFakeStorage()
	id, err := store.CreateStudent(types.StudentRecord{
		Name: "Andi", CreditsTaken: 24,
		CoursesPassed: []string{"Algoritma"}, PaymentStatus: "lunas",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/students/%d", id), nil)
	req.SetPathValue("id", fmt.Sprint(id))
	w := httptest.NewRecorder()

	GetByID(store)(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var rec types.StudentRecord
	require.NoError(t, json.NewDecoder(w.Body).Decode(&rec))
	assert.Equal(t, "Andi", rec.Name)
	assert.Equal(t, "lunas", rec.PaymentStatus)
}

func TestGetByID_InvalidID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/students/abc", nil)
	req.SetPathValue("id", "abc")
	w := httptest.NewRecorder()

	GetByID(newFakeStorage())(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid id")
}

func TestGetList_EmptyIsArray(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/students", nil)
	w := httptest.NewRecorder()

	GetList(newFakeStorage())(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestUpdate(t *testing.T) {
	store := newFakeStorage()
	id, err := store.CreateStudent(types.StudentRecord{
		Name: "Budi", CreditsTaken: 20, PaymentStatus: "belum_lunas",
	})
	require.NoError(t, err)

	body := `{"name":"Budi","credits_taken":20,"courses_passed":["Algoritma"],"payment_status":"lunas"}`
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/students/%d", id),
		strings.NewReader(body))
	req.SetPathValue("id", fmt.Sprint(id))
	w := httptest.NewRecorder()

	Update(store)(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var rec types.StudentRecord
	require.NoError(t, json.NewDecoder(w.Body).Decode(&rec))
	assert.Equal(t, "lunas", rec.PaymentStatus)
	assert.Equal(t, []string{"Algoritma"}, rec.CoursesPassed)
}

func TestDelete(t *testing.T) {
	store := newFakeStorage()
	id, err := store.CreateStudent(types.StudentRecord{Name: "Budi", PaymentStatus: "lunas"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/students/%d", id), nil)
	req.SetPathValue("id", fmt.Sprint(id))
	w := httptest.NewRecorder()

	Delete(store)(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"deleted"`)
	assert.NotContains(t, store.records, id)
}
