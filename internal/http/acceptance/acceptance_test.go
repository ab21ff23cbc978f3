// Package acceptance runs the API in-process against in-memory repositories
// and walks full resource lifecycles through the wired router.
package acceptance

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/roguepikachu/parky/internal/domain"
	"github.com/roguepikachu/parky/internal/http/handler"
	"github.com/roguepikachu/parky/internal/http/router"
	"github.com/roguepikachu/parky/internal/repository/fake"
	"github.com/roguepikachu/parky/internal/service"
)

const secret = "acceptance-secret"

func adminToken(t *testing.T) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "Admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func newAPI(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	trailRepo := fake.NewTrailRepository()
	parkRepo := fake.NewParkRepository()
	if err := parkRepo.Create(context.Background(), &domain.NationalPark{Name: "Yosemite", State: "CA"}); err != nil {
		t.Fatalf("seed park: %v", err)
	}
	return router.New(router.Options{
		Trails:    handler.NewTrailHandler(service.NewTrailService(trailRepo, parkRepo)),
		Parks:     handler.NewParkHandler(service.NewParkService(parkRepo)),
		JWTSecret: secret,
		AdminRole: "Admin",
	})
}

func do(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTrailLifecycle(t *testing.T) {
	r := newAPI(t)
	token := adminToken(t)

	// create
	createBody := `{"name":"Ridge Loop","distanceKm":5.2,"elevationGainM":300,"difficulty":"Moderate","nationalParkId":1}`
	w := do(r, http.MethodPost, "/api/v1.0/trails", createBody, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("create: want 201, got %d: %s", w.Code, w.Body.String())
	}
	var created domain.TrailDto
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal create: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("create did not assign an id: %+v", created)
	}
	trailPath := fmt.Sprintf("/api/v1.0/trails/%d", created.ID)
	if loc := w.Header().Get("Location"); loc != trailPath {
		t.Fatalf("want Location %q, got %q", trailPath, loc)
	}

	// read it back
	w = do(r, http.MethodGet, trailPath, "", token)
	if w.Code != http.StatusOK {
		t.Fatalf("get: want 200, got %d: %s", w.Code, w.Body.String())
	}
	var got domain.TrailDto
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal get: %v", err)
	}
	if got.DistanceKm != 5.2 || got.Difficulty != domain.DifficultyModerate {
		t.Fatalf("unexpected trail: %+v", got)
	}

	// duplicate create
	w = do(r, http.MethodPost, "/api/v1.0/trails", createBody, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("duplicate create: want 404, got %d", w.Code)
	}

	// full-replacement update, new distance
	updateBody := fmt.Sprintf(`{"id":%d,"name":"Ridge Loop","distanceKm":5.5,"elevationGainM":300,"difficulty":"Moderate","nationalParkId":1}`, created.ID)
	w = do(r, http.MethodPatch, trailPath, updateBody, "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("update: want 204, got %d: %s", w.Code, w.Body.String())
	}

	w = do(r, http.MethodGet, trailPath, "", token)
	if w.Code != http.StatusOK {
		t.Fatalf("get after update: want 200, got %d", w.Code)
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal get after update: %v", err)
	}
	if got.DistanceKm != 5.5 {
		t.Fatalf("want distance 5.5, got %v", got.DistanceKm)
	}

	// delete and verify gone
	w = do(r, http.MethodDelete, trailPath, "", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete: want 204, got %d", w.Code)
	}
	w = do(r, http.MethodGet, trailPath, "", token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("get after delete: want 404, got %d", w.Code)
	}
	w = do(r, http.MethodDelete, trailPath, "", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("second delete: want 404, got %d", w.Code)
	}
}

func TestParkLifecycle(t *testing.T) {
	r := newAPI(t)

	createBody := `{"name":"Zion","state":"UT","established":"1919-11-19T00:00:00Z"}`
	w := do(r, http.MethodPost, "/api/v1.0/nationalparks", createBody, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("create park: want 201, got %d: %s", w.Code, w.Body.String())
	}
	var created domain.NationalParkDto
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if created.Created.IsZero() {
		t.Fatalf("creation timestamp not set: %+v", created)
	}

	// trails can now live under the new park
	trailBody := fmt.Sprintf(`{"name":"Angels Landing","distanceKm":8.7,"elevationGainM":453,"difficulty":"Experienced","nationalParkId":%d}`, created.ID)
	w = do(r, http.MethodPost, "/api/v1.0/trails", trailBody, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("create trail in new park: want 201, got %d: %s", w.Code, w.Body.String())
	}

	w = do(r, http.MethodGet, fmt.Sprintf("/api/v1.0/trails/in-park/%d", created.ID), "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list in park: want 200, got %d", w.Code)
	}
	var trails []domain.TrailDto
	if err := json.Unmarshal(w.Body.Bytes(), &trails); err != nil {
		t.Fatalf("unmarshal trails: %v", err)
	}
	if len(trails) != 1 || trails[0].Name != "Angels Landing" {
		t.Fatalf("unexpected trails: %+v", trails)
	}
}
