package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"deskduty-service/internal/handlers"
	"deskduty-service/internal/service"
)

// Guest routes run without identity or persistence, so they can be
// exercised against a service with no stores wired.
func TestGuestGameRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := service.NewGameService(nil, nil, nil, nil, nil, 50, 0)
	setupGameRoutes(r, handlers.NewGameHandler(svc), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/public/deskduty/game/", nil))
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201 starting a guest session, got %d: %s", w.Code, w.Body.String())
	}

	var started struct {
		Session struct {
			ID      string `json:"id"`
			IsGuest bool   `json:"is_guest"`
		} `json:"session"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &started); err != nil {
		t.Fatalf("Unexpected error decoding response: %v", err)
	}
	if started.Session.ID == "" || !started.Session.IsGuest {
		t.Fatalf("Expected a guest session in the response, got %+v", started.Session)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/public/deskduty/game/"+started.Session.ID+"/status", nil))
	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 from guest status, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/public/deskduty/game/"+started.Session.ID+"/chai", nil))
	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 from guest chai, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/public/deskduty/game/"+started.Session.ID+"/resign", nil))
	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 from guest resign, got %d: %s", w.Code, w.Body.String())
	}

	// Resigned sessions are discarded
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/public/deskduty/game/"+started.Session.ID+"/status", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for a finished session, got %d", w.Code)
	}
}

func TestProtectedGameRoutesRequireUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := service.NewGameService(nil, nil, nil, nil, nil, 50, 0)
	setupGameRoutes(r, handlers.NewGameHandler(svc), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/protected/deskduty/game/some-id/resign", nil))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 without X-User-ID, got %d", w.Code)
	}
}
