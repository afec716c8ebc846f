package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/adapter/http/handlers/mocks"
	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

// fakeSession records session calls without real identity plumbing.
type fakeSession struct {
	loggedIn  string
	loggedOut bool
}

func (f *fakeSession) Login(userID string) { f.loggedIn = userID }

func (f *fakeSession) Logout() { f.loggedOut = true }

func TestSyncHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		coordinator := mocks.NewMockISyncCoordinator(ctrl)
		h := NewSyncHandler(coordinator, &fakeSession{})

		r := gin.New()
		r.POST("/v1/sync/login", h.Login)

		req := httptest.NewRequest(http.MethodPost, "/v1/sync/login", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("starts session then syncs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		coordinator := mocks.NewMockISyncCoordinator(ctrl)
		session := &fakeSession{}
		h := NewSyncHandler(coordinator, session)

		r := gin.New()
		r.POST("/v1/sync/login", h.Login)

		coordinator.EXPECT().SyncOnLogin(gomock.Any()).Return(usecase.SyncDecisionPulledRemote, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/sync/login", bytes.NewBufferString(`{"user_id":"user-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if session.loggedIn != "user-1" {
			t.Fatalf("expected session login for user-1, got %q", session.loggedIn)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["decision"] != "pulled_remote" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("sync failure maps to bad gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		coordinator := mocks.NewMockISyncCoordinator(ctrl)
		h := NewSyncHandler(coordinator, &fakeSession{})

		r := gin.New()
		r.POST("/v1/sync/login", h.Login)

		coordinator.EXPECT().SyncOnLogin(gomock.Any()).Return(usecase.SyncDecisionNone, errors.New("remote down"))

		req := httptest.NewRequest(http.MethodPost, "/v1/sync/login", bytes.NewBufferString(`{"user_id":"user-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestSyncHandler_Logout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	coordinator := mocks.NewMockISyncCoordinator(ctrl)
	session := &fakeSession{}
	h := NewSyncHandler(coordinator, session)

	r := gin.New()
	r.POST("/v1/sync/logout", h.Logout)

	coordinator.EXPECT().Logout()

	req := httptest.NewRequest(http.MethodPost, "/v1/sync/logout", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if !session.loggedOut {
		t.Fatalf("expected session logout")
	}
}

func TestSyncHandler_Flush(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not authenticated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		coordinator := mocks.NewMockISyncCoordinator(ctrl)
		h := NewSyncHandler(coordinator, &fakeSession{})

		r := gin.New()
		r.POST("/v1/sync/flush", h.Flush)

		coordinator.EXPECT().Flush(gomock.Any()).Return(usecase.ErrNotAuthenticated)

		req := httptest.NewRequest(http.MethodPost, "/v1/sync/flush", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("returns status after flush", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		coordinator := mocks.NewMockISyncCoordinator(ctrl)
		h := NewSyncHandler(coordinator, &fakeSession{})

		r := gin.New()
		r.POST("/v1/sync/flush", h.Flush)

		coordinator.EXPECT().Flush(gomock.Any()).Return(nil)
		coordinator.EXPECT().Status(gomock.Any()).Return(usecase.SyncStatus{State: usecase.SyncStateIdle, Online: true})

		req := httptest.NewRequest(http.MethodPost, "/v1/sync/flush", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["state"] != "idle" || body["online"] != true {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestSyncHandler_DismissError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("non-numeric index", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		coordinator := mocks.NewMockISyncCoordinator(ctrl)
		h := NewSyncHandler(coordinator, &fakeSession{})

		r := gin.New()
		r.DELETE("/v1/sync/errors/:index", h.DismissError)

		req := httptest.NewRequest(http.MethodDelete, "/v1/sync/errors/abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		coordinator := mocks.NewMockISyncCoordinator(ctrl)
		h := NewSyncHandler(coordinator, &fakeSession{})

		r := gin.New()
		r.DELETE("/v1/sync/errors/:index", h.DismissError)

		coordinator.EXPECT().DismissError(9).Return(errors.New("out of range"))

		req := httptest.NewRequest(http.MethodDelete, "/v1/sync/errors/9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		coordinator := mocks.NewMockISyncCoordinator(ctrl)
		h := NewSyncHandler(coordinator, &fakeSession{})

		r := gin.New()
		r.DELETE("/v1/sync/errors/:index", h.DismissError)

		coordinator.EXPECT().DismissError(0).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/sync/errors/0", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
