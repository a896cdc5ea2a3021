package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/helpgames/helpgames-api/middleware"
	"github.com/helpgames/helpgames-api/utils"
)

func newAlertRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	ws := NewWSHandler()
	router := gin.New()

	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware())
	protected.GET("/ws/alerts/:id", ws.HandleWS)

	return router
}

func TestHandleWSRequiresToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "alert-channel-test-secret")
	router := newAlertRouter()

	req := httptest.NewRequest(http.MethodGet, "/ws/alerts/user-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestHandleWSRejectsForeignChannel(t *testing.T) {
	t.Setenv("JWT_SECRET", "alert-channel-test-secret")
	router := newAlertRouter()

	token, err := utils.GenerateAccessToken("user-1", "user1@example.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/ws/alerts/user-2", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", w.Code, http.StatusForbidden)
	}
}
