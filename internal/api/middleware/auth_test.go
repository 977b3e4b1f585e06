package middleware

import (
	"SocialPulse/internal/api/config"
	"SocialPulse/internal/pkg/logger"
	"SocialPulse/internal/pkg/security"
	"io"
	log "log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const secret = "middleware-secret"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	log.SetDefault(log.New(log.NewTextHandler(io.Discard, nil)))
	os.Exit(m.Run())
}

func newEngine() *gin.Engine {
	r := gin.New()
	r.Use(TraceMiddleware())
	r.GET("/me", AuthMiddleware(security.NewVerifier(config.AuthConfig{JWTSecret: secret})), func(c *gin.Context) {
		id, _ := PrincipalID(c)
		c.String(http.StatusOK, id)
	})
	r.GET("/trace", func(c *gin.Context) {
		c.String(http.StatusOK, logger.TraceID(c.Request.Context()))
	})
	return r
}

func token(t *testing.T, sub string) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &security.UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(secret))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestAuthMiddlewareSetsPrincipal(t *testing.T) {
	sub := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, sub))
	w := httptest.NewRecorder()

	newEngine().ServeHTTP(w, req)

	if w.Code != http.StatusOK || w.Body.String() != sub {
		t.Fatalf("status = %d body = %q", w.Code, w.Body.String())
	}
}

func TestAuthMiddlewareRejects(t *testing.T) {
	for _, header := range []string{"", "Bearer nope", "Token " + token(t, uuid.NewString())} {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()

		newEngine().ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("header %q: status = %d, want 401", header, w.Code)
		}
	}
}

func TestTraceMiddleware(t *testing.T) {
	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/trace", nil)
	req.Header.Set(TraceHeader, incoming)
	w := httptest.NewRecorder()
	newEngine().ServeHTTP(w, req)

	if w.Body.String() != incoming || w.Header().Get(TraceHeader) != incoming {
		t.Fatalf("trace id not propagated: body=%q header=%q", w.Body.String(), w.Header().Get(TraceHeader))
	}

	req = httptest.NewRequest(http.MethodGet, "/trace", nil)
	req.Header.Set(TraceHeader, "not-a-uuid\nInjected: 1")
	w = httptest.NewRecorder()
	newEngine().ServeHTTP(w, req)

	if _, err := uuid.Parse(w.Body.String()); err != nil {
		t.Fatalf("expected generated uuid, got %q", w.Body.String())
	}
}
