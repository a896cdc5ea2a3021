package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/helpgames/helpgames-api/services"
)

func TestBindActivateRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		body        io.Reader
		chunked     bool
		wantMinutes int
		wantErr     bool
	}{
		{
			name:        "no body defaults",
			wantMinutes: services.DefaultBlockageMinutes,
		},
		{
			name:        "empty object defaults",
			body:        strings.NewReader(`{}`),
			wantMinutes: services.DefaultBlockageMinutes,
		},
		{
			name:        "explicit duration",
			body:        strings.NewReader(`{"duration_minutes": 5}`),
			wantMinutes: 5,
		},
		{
			name:        "chunked body without content length",
			body:        strings.NewReader(`{"duration_minutes": 45}`),
			chunked:     true,
			wantMinutes: 45,
		},
		{
			name:    "malformed json",
			body:    strings.NewReader(`{"duration_minutes":`),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodPost, "/blockage/activate", tt.body)
			c.Request.Header.Set("Content-Type", "application/json")
			if tt.chunked {
				c.Request.ContentLength = -1
			}

			req, err := bindActivateRequest(c)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected a binding error")
				}
				return
			}
			if err != nil {
				t.Fatalf("bindActivateRequest: %v", err)
			}
			if req.DurationMinutes != tt.wantMinutes {
				t.Errorf("DurationMinutes = %d, want %d", req.DurationMinutes, tt.wantMinutes)
			}
		})
	}
}
