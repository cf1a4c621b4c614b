package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"collecte_service/internal/adapter/http/handlers/mocks"
	"collecte_service/internal/domain/entities"
	"collecte_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func plannedCampaign(t *testing.T) entities.Campaign {
	t.Helper()
	start := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	c, err := entities.NewCampaign("Collecte Nationale 2026", 2026, start, end, 7, entities.NewUserID(), "", "")
	if err != nil {
		t.Fatalf("new campaign: %v", err)
	}
	return *c
}

func TestCampaignHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICampaignUseCase(ctrl)
		h := NewCampaignHandler(uc)

		r := gin.New()
		r.POST("/v1/campaigns", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/campaigns", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("year already taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICampaignUseCase(ctrl)
		h := NewCampaignHandler(uc)

		r := gin.New()
		r.POST("/v1/campaigns", authenticatedAs("u-1", "c-1"), h.Create)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Campaign{}, usecase.ErrCampaignYearExists)

		payload := `{"name":"Collecte 2026","year":2026,"start_date":"2026-03-01T00:00:00Z","end_date":"2026-03-10T00:00:00Z","grace_period_days":7}`
		req := httptest.NewRequest(http.MethodPost, "/v1/campaigns", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success carries authenticated creator", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICampaignUseCase(ctrl)
		h := NewCampaignHandler(uc)

		r := gin.New()
		r.POST("/v1/campaigns", authenticatedAs("admin-1", "c-1"), h.Create)

		campaign := plannedCampaign(t)
		var got usecase.CreateCampaignInput
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, input usecase.CreateCampaignInput) (entities.Campaign, error) {
				got = input
				return campaign, nil
			})

		payload := `{"name":"Collecte 2026","year":2026,"start_date":"2026-03-01T00:00:00Z","end_date":"2026-03-10T00:00:00Z","grace_period_days":7}`
		req := httptest.NewRequest(http.MethodPost, "/v1/campaigns", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if got.CreatedBy != "admin-1" {
			t.Fatalf("expected creator admin-1, got %q", got.CreatedBy)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if body["status"] != string(entities.CampaignStatusPlanned) {
			t.Fatalf("expected PLANNED, got %v", body["status"])
		}
	})
}

func TestCampaignHandler_Lifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("start not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICampaignUseCase(ctrl)
		h := NewCampaignHandler(uc)

		r := gin.New()
		r.POST("/v1/campaigns/:id/start", h.Start)

		uc.EXPECT().Start(gomock.Any(), "camp-1").Return(entities.Campaign{}, usecase.ErrCampaignNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/campaigns/camp-1/start", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("invalid transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICampaignUseCase(ctrl)
		h := NewCampaignHandler(uc)

		r := gin.New()
		r.POST("/v1/campaigns/:id/complete", h.Complete)

		uc.EXPECT().Complete(gomock.Any(), "camp-1").Return(entities.Campaign{}, entities.ErrInvalidStatusTransition)

		req := httptest.NewRequest(http.MethodPost, "/v1/campaigns/camp-1/complete", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("close carries authenticated closer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICampaignUseCase(ctrl)
		h := NewCampaignHandler(uc)

		r := gin.New()
		r.POST("/v1/campaigns/:id/close", authenticatedAs("admin-1", "c-1"), h.Close)

		campaign := plannedCampaign(t)
		uc.EXPECT().Close(gomock.Any(), "camp-1", "admin-1").Return(campaign, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/campaigns/camp-1/close", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestCampaignHandler_GetCurrent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no active campaign", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICampaignUseCase(ctrl)
		h := NewCampaignHandler(uc)

		r := gin.New()
		r.GET("/v1/campaigns/current", h.GetCurrent)

		uc.EXPECT().GetCurrent(gomock.Any()).Return(entities.Campaign{}, usecase.ErrCampaignNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/campaigns/current", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
