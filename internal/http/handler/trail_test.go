package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/roguepikachu/parky/internal/domain"
	"github.com/roguepikachu/parky/internal/service"
)

// mockTrailService serves canned data and records nothing.
type mockTrailService struct {
	list       []domain.Trail
	byID       map[int]domain.Trail
	byPark     map[int][]domain.Trail
	createErr  error
	updateErr  error
	deleteErr  error
	created    domain.Trail
	updateSeen []domain.Trail
}

func (m *mockTrailService) ListTrails(_ context.Context) ([]domain.Trail, error) {
	return m.list, nil
}

func (m *mockTrailService) GetTrailByID(_ context.Context, id int) (domain.Trail, error) {
	if t, ok := m.byID[id]; ok {
		return t, nil
	}
	return domain.Trail{}, service.ErrTrailNotFound
}

func (m *mockTrailService) ListTrailsInPark(_ context.Context, parkID int) ([]domain.Trail, error) {
	if items, ok := m.byPark[parkID]; ok {
		return items, nil
	}
	return nil, service.ErrParkNotFound
}

func (m *mockTrailService) CreateTrail(_ context.Context, t domain.Trail) (domain.Trail, error) {
	if m.createErr != nil {
		return domain.Trail{}, m.createErr
	}
	m.created = t
	m.created.ID = 7
	return m.created, nil
}

func (m *mockTrailService) UpdateTrail(_ context.Context, t domain.Trail) error {
	m.updateSeen = append(m.updateSeen, t)
	return m.updateErr
}

func (m *mockTrailService) DeleteTrail(_ context.Context, id int) error {
	return m.deleteErr
}

func trailRouter(svc TrailService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewTrailHandler(svc)
	r := gin.New()
	r.GET("/api/v1.0/trails", h.List)
	r.GET("/api/v1.0/trails/in-park/:nationalParkId", h.ListByPark)
	r.GET("/api/v1.0/trails/:trailId", h.Get)
	r.POST("/api/v1.0/trails", h.Create)
	r.PATCH("/api/v1.0/trails/:trailId", h.Update)
	r.DELETE("/api/v1.0/trails/:trailId", h.Delete)
	return r
}

func TestTrailList_OK(t *testing.T) {
	svc := &mockTrailService{list: []domain.Trail{{ID: 1, Name: "Ridge Loop", Difficulty: domain.DifficultyModerate}}}
	r := trailRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1.0/trails", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
	var got []domain.TrailDto
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Ridge Loop" {
		t.Fatalf("unexpected body: %+v", got)
	}
}

func TestTrailList_Empty(t *testing.T) {
	r := trailRouter(&mockTrailService{list: []domain.Trail{}})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1.0/trails", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
	if body := w.Body.String(); body != "[]" {
		t.Fatalf("want empty array, got %q", body)
	}
}

func TestTrailGet_OK(t *testing.T) {
	svc := &mockTrailService{byID: map[int]domain.Trail{7: {ID: 7, Name: "Ridge Loop", DistanceKm: 5.2, ElevationGainM: 300, Difficulty: domain.DifficultyModerate, NationalParkID: 1}}}
	r := trailRouter(svc)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1.0/trails/7", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
	var got domain.TrailDto
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.ID != 7 || got.DistanceKm != 5.2 {
		t.Fatalf("unexpected body: %+v", got)
	}
}

func TestTrailGet_NotFound(t *testing.T) {
	r := trailRouter(&mockTrailService{byID: map[int]domain.Trail{}})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1.0/trails/99", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d", w.Code)
	}
}

func TestTrailGet_BadID(t *testing.T) {
	r := trailRouter(&mockTrailService{})
	for _, path := range []string{"/api/v1.0/trails/zero", "/api/v1.0/trails/-3"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: want 400, got %d", path, w.Code)
		}
	}
}

func TestTrailListByPark_OKAndUnknownPark(t *testing.T) {
	svc := &mockTrailService{byPark: map[int][]domain.Trail{
		1: {{ID: 1, Name: "a", NationalParkID: 1}},
		2: {},
	}}
	r := trailRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1.0/trails/in-park/1", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}

	// known park, no trails: still 200 with empty array
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1.0/trails/in-park/2", nil))
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Fatalf("want 200 [], got %d %q", w.Code, w.Body.String())
	}

	// unknown park: 404
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1.0/trails/in-park/9", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d", w.Code)
	}
}

func TestTrailCreate_OK(t *testing.T) {
	svc := &mockTrailService{}
	r := trailRouter(svc)
	body := `{"name":"Ridge Loop","distanceKm":5.2,"elevationGainM":300,"difficulty":"Moderate","nationalParkId":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1.0/trails", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("want 201, got %d: %s", w.Code, w.Body.String())
	}
	if loc := w.Header().Get("Location"); loc != "/api/v1.0/trails/7" {
		t.Fatalf("want Location /api/v1.0/trails/7, got %q", loc)
	}
	var got domain.TrailDto
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.ID != 7 || got.Name != "Ridge Loop" || got.DistanceKm != 5.2 {
		t.Fatalf("unexpected body: %+v", got)
	}
}

func TestTrailCreate_InvalidBody(t *testing.T) {
	r := trailRouter(&mockTrailService{})
	cases := []string{
		``,
		`{}`,
		`{"name":"x","distanceKm":-1,"difficulty":"Moderate","nationalParkId":1}`,
		`{"name":"x","distanceKm":1,"difficulty":"Vertical","nationalParkId":1}`,
	}
	for _, body := range cases {
		req := httptest.NewRequest(http.MethodPost, "/api/v1.0/trails", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %q: want 400, got %d", body, w.Code)
		}
	}
}

func TestTrailCreate_DuplicateName(t *testing.T) {
	r := trailRouter(&mockTrailService{createErr: service.ErrTrailExists})
	body := `{"name":"Ridge Loop","distanceKm":5.2,"elevationGainM":300,"difficulty":"Moderate","nationalParkId":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1.0/trails", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// duplicate names come back as 404, matching the original API
	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d", w.Code)
	}
	var resp struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Error.Message != "Trail exists!" {
		t.Fatalf("want message %q, got %q", "Trail exists!", resp.Error.Message)
	}
}

func TestTrailCreate_PersistenceFailure(t *testing.T) {
	r := trailRouter(&mockTrailService{createErr: errors.New("commit failed")})
	body := `{"name":"Ridge Loop","distanceKm":5.2,"elevationGainM":300,"difficulty":"Moderate","nationalParkId":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1.0/trails", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("want 500, got %d", w.Code)
	}
}

func TestTrailUpdate_OK(t *testing.T) {
	svc := &mockTrailService{}
	r := trailRouter(svc)
	body := `{"id":7,"name":"Ridge Loop","distanceKm":5.5,"elevationGainM":300,"difficulty":"Moderate","nationalParkId":1}`
	req := httptest.NewRequest(http.MethodPatch, "/api/v1.0/trails/7", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("want 204, got %d: %s", w.Code, w.Body.String())
	}
	if len(svc.updateSeen) != 1 || svc.updateSeen[0].DistanceKm != 5.5 {
		t.Fatalf("update not forwarded: %+v", svc.updateSeen)
	}
}

func TestTrailUpdate_IDMismatch(t *testing.T) {
	svc := &mockTrailService{}
	r := trailRouter(svc)
	body := `{"id":8,"name":"Ridge Loop","distanceKm":5.5,"elevationGainM":300,"difficulty":"Moderate","nationalParkId":1}`
	req := httptest.NewRequest(http.MethodPatch, "/api/v1.0/trails/7", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", w.Code)
	}
	if len(svc.updateSeen) != 0 {
		t.Fatalf("no persistence call may happen on mismatch: %+v", svc.updateSeen)
	}
}

func TestTrailUpdate_PersistenceFailure(t *testing.T) {
	r := trailRouter(&mockTrailService{updateErr: errors.New("no rows affected")})
	body := `{"id":7,"name":"Ridge Loop","distanceKm":5.5,"elevationGainM":300,"difficulty":"Moderate","nationalParkId":1}`
	req := httptest.NewRequest(http.MethodPatch, "/api/v1.0/trails/7", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("want 500, got %d", w.Code)
	}
}

func TestTrailDelete_OK(t *testing.T) {
	r := trailRouter(&mockTrailService{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1.0/trails/7", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("want 204, got %d", w.Code)
	}
}

func TestTrailDelete_NotFound(t *testing.T) {
	r := trailRouter(&mockTrailService{deleteErr: service.ErrTrailNotFound})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1.0/trails/99", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d", w.Code)
	}
}

func TestTrailDelete_PersistenceFailure(t *testing.T) {
	r := trailRouter(&mockTrailService{deleteErr: errors.New("commit failed")})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1.0/trails/7", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("want 500, got %d", w.Code)
	}
}
