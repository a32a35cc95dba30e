package admin_login

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	h := NewHandler("hemmelig", nopLogger{})

	tests := []struct {
		body     string
		wantCode int
	}{
		{body: `{"password":"hemmelig"}`, wantCode: http.StatusNoContent},
		{body: `{"password":"gæt"}`, wantCode: http.StatusUnauthorized},
		{body: `not json`, wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/admin/login", strings.NewReader(tt.body)))
		assert.Equal(t, tt.wantCode, rec.Code, tt.body)
	}
}
