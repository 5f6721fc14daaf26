package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newKeyCtx(t *testing.T) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/api/projects", nil)
	return c
}

func TestKeyByUserID_Authenticated(t *testing.T) {
	t.Parallel()

	c := newKeyCtx(t)
	c.Set(CtxUserIDKey, "user-42")

	if got := KeyByUserID()(c); got != "rl:user:user-42" {
		t.Fatalf("key = %q, want rl:user:user-42", got)
	}
}

func TestKeyByUserID_AnonymousFallsBackToIP(t *testing.T) {
	t.Parallel()

	c := newKeyCtx(t)
	c.Set("real_ip", "203.0.113.9")

	got := KeyByUserID()(c)
	if !strings.HasPrefix(got, "rl:user:anon:ip:") {
		t.Fatalf("key = %q, want anon ip-scoped key", got)
	}
	if !strings.HasSuffix(got, "203.0.113.9") {
		t.Fatalf("key = %q, want suffix 203.0.113.9", got)
	}
}

func TestKeyByUserID_DistinctUsersDistinctKeys(t *testing.T) {
	t.Parallel()

	a := newKeyCtx(t)
	a.Set(CtxUserIDKey, "user-a")
	b := newKeyCtx(t)
	b.Set(CtxUserIDKey, "user-b")

	fn := KeyByUserID()
	if fn(a) == fn(b) {
		t.Fatal("different users share a rate-limit bucket")
	}
}

func TestRateLimit_NilRedisPassthrough(t *testing.T) {
	t.Parallel()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/x", RateLimit(nil, 1, time.Minute, KeyByUserID(), nil), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200 (limiter must disable without redis)", i, w.Code)
		}
	}
}
