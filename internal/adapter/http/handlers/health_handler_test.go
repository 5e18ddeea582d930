package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestHealthHandler_Health(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewHealthHandler("development", []string{"http://localhost:8100", "*"}, "default origins")
	r := gin.New()
	r.GET("/health", h.Health)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["status"] != "ok" || body["environment"] != "development" || body["corsOrigins"] != "default origins" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
	origins, _ := body["allowedOrigins"].([]any)
	if len(origins) != 2 {
		t.Fatalf("unexpected origins: %v", body["allowedOrigins"])
	}
}
