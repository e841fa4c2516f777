package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	testhelpers "github.com/polkiloo/loyaltyhub/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type facadeStub struct {
	testhelpers.SessionFacadeStub
	testhelpers.UserFacadeStub
	testhelpers.RewardFacadeStub
	testhelpers.CartFacadeStub
	testhelpers.StatsFacadeStub
}

func TestSetupRoutes(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	engine := Setup(facadeStub{}, logger)
	if engine == nil {
		t.Fatal("expected configured engine")
	}

	cases := []struct {
		method string
		path   string
		auth   bool
		status int
	}{
		{http.MethodGet, "/api/loyalty/users", false, http.StatusOK},
		{http.MethodGet, "/api/loyalty/rewards", false, http.StatusOK},
		{http.MethodGet, "/api/loyalty/rewards/featured", false, http.StatusOK},
		{http.MethodGet, "/api/loyalty/rewards/" + uuid.NewString(), false, http.StatusOK},
		{http.MethodGet, "/api/loyalty/stats", false, http.StatusOK},
		{http.MethodGet, "/api/loyalty/me", false, http.StatusUnauthorized},
		{http.MethodPost, "/api/loyalty/redeem", false, http.StatusUnauthorized},
		{http.MethodPost, "/api/cart/checkout", false, http.StatusUnauthorized},
		{http.MethodGet, "/api/loyalty/me", true, http.StatusOK},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		req.Header.Set("Accept-Encoding", "identity")
		if tc.auth {
			req.Header.Set("Authorization", "Bearer token")
		}
		resp := httptest.NewRecorder()
		engine.ServeHTTP(resp, req)
		if resp.Code != tc.status {
			t.Fatalf("%s %s: expected %d, got %d", tc.method, tc.path, tc.status, resp.Code)
		}
	}
}
