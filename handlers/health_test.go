package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

func TestHealth(t *testing.T) {
	tests := []struct {
		name   string
		db     Pinger
		status int
		body   string
	}{
		{"no database", nil, http.StatusOK, `{"status":"ok","database":"not_configured"}`},
		{"reachable", pingerFunc(func(context.Context) error { return nil }), http.StatusOK, `{"status":"ok","database":"ok"}`},
		{"unreachable", pingerFunc(func(context.Context) error { return errors.New("refused") }), http.StatusServiceUnavailable, `{"status":"degraded","database":"unreachable"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &HealthHandler{DB: tt.db, Logger: zap.NewNop()}
			rec := httptest.NewRecorder()
			h.Health(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}
