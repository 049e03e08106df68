package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipebox/backend/internal/catalog"
	"github.com/pageza/recipebox/backend/internal/service"
	"github.com/pageza/recipebox/backend/internal/storage"
	"github.com/pageza/recipebox/backend/internal/testhelpers"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	router *gin.Engine
	auth   *service.AuthService
	kv     *storage.MemoryStore
}

func setupTestRouter(t *testing.T) *testEnv {
	t.Helper()
	db := testhelpers.SetupTestDatabase(t)

	auth := service.NewAuthService(db, "test-secret", nil)
	kv := storage.NewMemoryStore()
	workspace := service.NewWorkspace(kv, catalog.MustLoad(), nil)

	router := gin.New()
	RegisterRoutes(router, auth, workspace, RateLimits{}, nil)
	return &testEnv{router: router, auth: auth, kv: kv}
}

// signIn creates an account and returns a bearer token for it
func (e *testEnv) signIn(t *testing.T, email string) string {
	t.Helper()
	ctx := context.Background()
	_, err := e.auth.SignUp(ctx, email, "secret1")
	require.NoError(t, err)
	session, err := e.auth.SignIn(ctx, email, "secret1")
	require.NoError(t, err)
	return session.Token
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func recipeSlugs(t *testing.T, raw interface{}) []string {
	t.Helper()
	list, ok := raw.([]interface{})
	require.True(t, ok, "expected a list, got %T", raw)
	out := make([]string, len(list))
	for i, item := range list {
		out[i] = item.(map[string]interface{})["slug"].(string)
	}
	return out
}

