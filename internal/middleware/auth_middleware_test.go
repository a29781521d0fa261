package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Naveenkumar3327/Campus-link/internal/app/models"
	"github.com/Naveenkumar3327/Campus-link/internal/app/repositories"
	"github.com/Naveenkumar3327/Campus-link/internal/pkg/auth"
	"github.com/Naveenkumar3327/Campus-link/internal/store"
)

func newTestRouter(t *testing.T) (*gin.Engine, *auth.JWTService, *models.User) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	user := &models.User{
		ID:    "u-1",
		Name:  "Asha Patel",
		Email: "asha@campus.edu",
		Role:  models.RoleStudent,
	}

	users := repositories.NewCollection(store.NewMemoryStore(), store.KeyUsers, func() []models.User {
		return []models.User{*user}
	}, zerolog.Nop())

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "middleware-test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "test",
	})

	mw := NewAuthMiddleware(jwtService, users)

	router := gin.New()
	protected := router.Group("/protected")
	protected.Use(mw.JWTAuth())
	protected.GET("", func(c *gin.Context) {
		current, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no user in context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": current.ID})
	})

	staffOnly := protected.Group("/staff")
	staffOnly.Use(mw.RoleRequired(models.RoleStaff, models.RoleAdmin))
	staffOnly.GET("", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return router, jwtService, user
}

func TestJWTAuth(t *testing.T) {
	router, jwtService, user := newTestRouter(t)

	accessToken, _, _, err := jwtService.GenerateTokenPair(user)
	if err != nil {
		t.Fatalf("GenerateTokenPair failed: %v", err)
	}

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{name: "valid token", authHeader: "Bearer " + accessToken, wantStatus: http.StatusOK},
		{name: "missing header", authHeader: "", wantStatus: http.StatusUnauthorized},
		{name: "malformed header", authHeader: accessToken, wantStatus: http.StatusUnauthorized},
		{name: "garbage token", authHeader: "Bearer not.a.token", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("Status = %d, want %d; body: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestJWTAuthRejectsDeletedAccount(t *testing.T) {
	router, jwtService, _ := newTestRouter(t)

	ghost := &models.User{ID: "u-gone", Email: "gone@campus.edu", Role: models.RoleStudent}
	accessToken, _, _, err := jwtService.GenerateTokenPair(ghost)
	if err != nil {
		t.Fatalf("GenerateTokenPair failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRoleRequired(t *testing.T) {
	router, jwtService, user := newTestRouter(t)

	accessToken, _, _, err := jwtService.GenerateTokenPair(user)
	if err != nil {
		t.Fatalf("GenerateTokenPair failed: %v", err)
	}

	// The seeded user is a student, so the staff-gated route must refuse
	req := httptest.NewRequest(http.MethodGet, "/protected/staff", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("Status = %d, want %d; body: %s", rec.Code, http.StatusForbidden, rec.Body.String())
	}
}
