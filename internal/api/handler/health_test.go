package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/rakeshkurk50/EndWebsite/internal/core/domain"
)

type stubPingRepo struct {
	pingErr error
}

func (r *stubPingRepo) FindConflict(context.Context, string, string) (*domain.User, error) {
	return nil, nil
}
func (r *stubPingRepo) Insert(_ context.Context, u *domain.User) (*domain.User, error) {
	return u, nil
}
func (r *stubPingRepo) ListAll(context.Context) ([]domain.User, error) { return nil, nil }
func (r *stubPingRepo) EnsureIndexes(context.Context) error            { return nil }
func (r *stubPingRepo) Ping(context.Context) error                     { return r.pingErr }

func healthRequest(t *testing.T, h *HealthHandler) map[string]any {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Health(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return resp
}

func TestHealthHandler_Connected(t *testing.T) {
	h := NewHealthHandler(&stubPingRepo{}, "production")

	resp := healthRequest(t, h)
	if resp["ok"] != true || resp["dbState"] != "connected" || resp["env"] != "production" {
		t.Fatalf("unexpected body: %+v", resp)
	}
}

func TestHealthHandler_Disconnected(t *testing.T) {
	h := NewHealthHandler(&stubPingRepo{pingErr: context.DeadlineExceeded}, "development")

	resp := healthRequest(t, h)
	if resp["ok"] != true || resp["dbState"] != "disconnected" {
		t.Fatalf("unexpected body: %+v", resp)
	}
}
