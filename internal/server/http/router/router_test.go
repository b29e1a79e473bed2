package router

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/storeratings/internal/domain/errors"
	"github.com/polkiloo/storeratings/internal/domain/model"
	"github.com/polkiloo/storeratings/internal/server/http/handlers"
	testhelpers "github.com/polkiloo/storeratings/internal/test"
)

func newTestEngine(t *testing.T, facade testhelpers.RatingsFacadeStub) *gin.Engine {
	t.Helper()
	engine := Setup(facade, slog.New(slog.NewJSONHandler(io.Discard, nil)))
	gin.SetMode(gin.TestMode)
	return engine
}

func serve(engine *gin.Engine, method, target string, body []byte, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	return resp
}

func TestSetupRoutes(t *testing.T) {
	facade := testhelpers.RatingsFacadeStub{
		AuthFacadeStub: testhelpers.AuthFacadeStub{
			ParseFn: func(token string) (model.Principal, error) {
				if token != "admin-token" {
					return model.Principal{}, domainErrors.ErrInvalidCredential
				}
				return model.Principal{UserID: 1, Role: model.RoleAdministrator}, nil
			},
		},
		StoreFacadeStub: testhelpers.StoreFacadeStub{
			StoresFn: func(context.Context, model.Principal, model.StoreFilter) ([]model.StoreWithRating, error) {
				return []model.StoreWithRating{{Store: model.Store{ID: 1, Name: "Shop"}, Rating: 3.5, TotalRatings: 2}}, nil
			},
		},
	}
	engine := newTestEngine(t, facade)

	body, _ := json.Marshal(map[string]string{"name": "Somebody With A Long Name", "email": "a@b.io", "password": "Secret#123", "address": "x"})
	resp := serve(engine, http.MethodPost, "/api/auth/register", body, "")
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201 for register, got %d", resp.Code)
	}
	if resp.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected request id header")
	}

	resp = serve(engine, http.MethodPost, "/api/auth/login", []byte(`{"email":"a@b.io","password":"Secret#123"}`), "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for login, got %d", resp.Code)
	}

	resp = serve(engine, http.MethodGet, "/api/stores", nil, "")
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without token, got %d", resp.Code)
	}

	resp = serve(engine, http.MethodGet, "/api/stores", nil, "forged")
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 for forged token, got %d", resp.Code)
	}

	resp = serve(engine, http.MethodGet, "/api/stores", nil, "admin-token")
	if resp.Code != http.StatusOK || !strings.Contains(resp.Body.String(), `"rating":3.5`) {
		t.Fatalf("expected store list, got %d %s", resp.Code, resp.Body.String())
	}

	resp = serve(engine, http.MethodPost, "/api/ratings", []byte(`{"storeId":1,"score":5}`), "admin-token")
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201 for rating, got %d", resp.Code)
	}

	securedGets := []string{"/api/auth/me", "/api/users", "/api/stores/1/stats", "/api/stores/1/rating", "/api/stats/admin", "/api/stats/store"}
	for _, target := range securedGets {
		if resp = serve(engine, http.MethodGet, target, nil, "admin-token"); resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", target, resp.Code)
		}
		if resp = serve(engine, http.MethodGet, target, nil, ""); resp.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401 without token, got %d", target, resp.Code)
		}
	}

	resp = serve(engine, http.MethodPut, "/api/auth/password", []byte(`{"currentPassword":"a","newPassword":"b"}`), "admin-token")
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204 for password change, got %d", resp.Code)
	}

	resp = serve(engine, http.MethodGet, "/api/health", nil, "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for health, got %d", resp.Code)
	}

	resp = serve(engine, http.MethodGet, "/metrics", nil, "")
	if resp.Code != http.StatusOK || !strings.Contains(resp.Body.String(), "http_requests_total") {
		t.Fatalf("expected metrics exposition, got %d", resp.Code)
	}
}

func TestSetupGzip(t *testing.T) {
	engine := newTestEngine(t, testhelpers.RatingsFacadeStub{})

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, _ = gz.Write([]byte(`{"email":"a@b.io","password":"Secret#123"}`))
	_ = gz.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Encoding", "gzip")
	req.Header.Set("Accept-Encoding", "gzip")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if resp.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("expected gzipped response")
	}
	reader, err := gzip.NewReader(resp.Body)
	if err != nil {
		t.Fatalf("gzip reader: %v", err)
	}
	var decoded map[string]any
	if err := json.NewDecoder(reader).Decode(&decoded); err != nil || decoded["token"] != "token" {
		t.Fatalf("unexpected body %v err=%v", decoded, err)
	}
}

func TestSetupUnhealthy(t *testing.T) {
	engine := newTestEngine(t, testhelpers.RatingsFacadeStub{
		HealthFacadeStub: testhelpers.HealthFacadeStub{Err: domainErrors.ErrStorageUnavailable},
	})
	if resp := serve(engine, http.MethodGet, "/api/health", nil, ""); resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", resp.Code)
	}
}

var _ handlers.RatingsFacade = (*testhelpers.RatingsFacadeStub)(nil)
