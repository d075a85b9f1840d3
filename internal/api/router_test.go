package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/bfpulse/internal/domain/dto"
	"github.com/guttosm/bfpulse/internal/domain/models"
	"github.com/guttosm/bfpulse/internal/service"
	"github.com/guttosm/bfpulse/internal/stats"
)

func TestNewRouter_WiringAndMiddlewares(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := service.NewAnalysisService(models.NewDataset("mem", []models.Payment{
		{UF: "SP", Amount: 100},
		{UF: "SP", Amount: 50},
		{UF: "BA", Amount: 30},
	}), 0)
	r := NewRouter(NewHandler(svc, stats.Weibull, 12))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ranking", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected X-Request-ID header to be set")
	}

	var out dto.RankingResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	want := []models.CategoryTotal{{Category: "SP", Total: 150, Count: 2}, {Category: "BA", Total: 30, Count: 1}}
	if len(out.Entries) != len(want) || out.Entries[0] != want[0] || out.Entries[1] != want[1] {
		t.Fatalf("unexpected body: %+v", out)
	}
}

func TestNewRouter_ErrorBodyThroughMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(NewHandler(service.NewAnalysisService(nil, 0), stats.Weibull, 12))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/summary", nil))
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 on empty dataset, got %d", w.Code)
	}
	var e dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &e); err != nil || e.Message != "no payments loaded" {
		t.Fatalf("unexpected error body: %s", w.Body.String())
	}
}
