package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/morechaitanya606/ucia/internal/domain/entity"
	"github.com/morechaitanya606/ucia/pkg/helpers"
)

func newGuardedRouter(jwt *helpers.JWTManager, allowed ...entity.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	grp := r.Group("/")
	grp.Use(Auth(jwt))
	if len(allowed) > 0 {
		grp.Use(RequireRoles(allowed...))
	}
	grp.DELETE("/projects/:slug", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetString(CtxUserIDKey),
			"role":    c.GetString(CtxUserRoleKey),
		})
	})
	return r
}

func doDelete(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodDelete, "/projects/foo", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func testJWT() *helpers.JWTManager {
	return &helpers.JWTManager{Secret: []byte("guard-test-secret"), TokenTTL: time.Hour}
}

func TestAuth_MissingHeader(t *testing.T) {
	t.Parallel()

	r := newGuardedRouter(testJWT(), entity.RoleAdmin)
	if w := doDelete(r, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	t.Parallel()

	r := newGuardedRouter(testJWT(), entity.RoleAdmin)
	for _, h := range []string{"Basic abc", "Bearer", "Bearer a b", "token-without-scheme"} {
		if w := doDelete(r, h); w.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: status = %d, want 401", h, w.Code)
		}
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	t.Parallel()

	jwt := testJWT()
	r := newGuardedRouter(jwt, entity.RoleAdmin)

	if w := doDelete(r, "Bearer not.a.token"); w.Code != http.StatusUnauthorized {
		t.Fatalf("garbage token: status = %d, want 401", w.Code)
	}

	other := &helpers.JWTManager{Secret: []byte("other-secret"), TokenTTL: time.Hour}
	tok, _, err := other.GenerateToken("u1", "admin")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	if w := doDelete(r, "Bearer "+tok); w.Code != http.StatusUnauthorized {
		t.Fatalf("foreign-signed token: status = %d, want 401", w.Code)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	t.Parallel()

	jwt := testJWT()
	expired := &helpers.JWTManager{Secret: jwt.Secret, TokenTTL: -time.Minute}
	tok, _, err := expired.GenerateToken("u1", "admin")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	r := newGuardedRouter(jwt, entity.RoleAdmin)
	if w := doDelete(r, "Bearer "+tok); w.Code != http.StatusUnauthorized {
		t.Fatalf("expired token: status = %d, want 401", w.Code)
	}
}

func TestRequireRoles_EditorForbiddenAdminAllowed(t *testing.T) {
	t.Parallel()

	jwt := testJWT()
	r := newGuardedRouter(jwt, entity.RoleAdmin)

	editorTok, _, err := jwt.GenerateToken("editor-1", "editor")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	if w := doDelete(r, "Bearer "+editorTok); w.Code != http.StatusForbidden {
		t.Fatalf("editor on admin-only route: status = %d, want 403", w.Code)
	}

	adminTok, _, err := jwt.GenerateToken("admin-1", "admin")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	if w := doDelete(r, "Bearer "+adminTok); w.Code != http.StatusOK {
		t.Fatalf("admin on admin-only route: status = %d, want 200", w.Code)
	}
}

func TestRequireRoles_EditorAllowedOnAuthoredOps(t *testing.T) {
	t.Parallel()

	jwt := testJWT()
	r := newGuardedRouter(jwt, entity.RoleAdmin, entity.RoleEditor)

	tok, _, err := jwt.GenerateToken("editor-2", "editor")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	if w := doDelete(r, "Bearer "+tok); w.Code != http.StatusOK {
		t.Fatalf("editor on {admin,editor} route: status = %d, want 200", w.Code)
	}
}

func TestRequireRoles_UnknownClaimRoleDenied(t *testing.T) {
	t.Parallel()

	jwt := testJWT()
	r := newGuardedRouter(jwt, entity.RoleAdmin, entity.RoleEditor)

	// a claim carrying a role outside the enumeration resolves to viewer
	tok, _, err := jwt.GenerateToken("u9", "superuser")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	if w := doDelete(r, "Bearer "+tok); w.Code != http.StatusForbidden {
		t.Fatalf("unknown role: status = %d, want 403", w.Code)
	}
}
