package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"collecte_service/internal/adapter/http/handlers/mocks"
	"collecte_service/internal/adapter/http/middleware"
	"collecte_service/internal/domain/entities"
	"collecte_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func authenticatedAs(userID, centerID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, userID)
		c.Set(middleware.ContextCenterID, centerID)
		c.Next()
	}
}

func TestCollecteHandler_CreateEntry(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICollecteUseCase(ctrl)
		h := NewCollecteHandler(uc)

		r := gin.New()
		r.POST("/v1/entries", authenticatedAs("u-1", "c-1"), h.CreateEntry)

		req := httptest.NewRequest(http.MethodPost, "/v1/entries", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("store outside volunteer center", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICollecteUseCase(ctrl)
		h := NewCollecteHandler(uc)

		r := gin.New()
		r.POST("/v1/entries", authenticatedAs("u-1", "c-1"), h.CreateEntry)

		uc.EXPECT().CreateEntry(gomock.Any(), usecase.CreateEntryInput{
			CampaignID:   "camp-1",
			StoreID:      "store-1",
			UserID:       "u-1",
			UserCenterID: "c-1",
		}).Return(entities.CollecteEntry{}, usecase.ErrUnauthorizedCenterAccess)

		req := httptest.NewRequest(http.MethodPost, "/v1/entries", bytes.NewBufferString(`{"campaign_id":"camp-1","store_id":"store-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("campaign closed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICollecteUseCase(ctrl)
		h := NewCollecteHandler(uc)

		r := gin.New()
		r.POST("/v1/entries", authenticatedAs("u-1", "c-1"), h.CreateEntry)

		uc.EXPECT().CreateEntry(gomock.Any(), gomock.Any()).Return(entities.CollecteEntry{}, usecase.ErrCampaignClosedForEntries)

		req := httptest.NewRequest(http.MethodPost, "/v1/entries", bytes.NewBufferString(`{"campaign_id":"camp-1","store_id":"store-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICollecteUseCase(ctrl)
		h := NewCollecteHandler(uc)

		r := gin.New()
		r.POST("/v1/entries", authenticatedAs("u-1", "c-1"), h.CreateEntry)

		entry := entities.NewCollecteEntry(entities.NewCampaignID(), entities.NewStoreID(), entities.NewCenterID(), entities.NewUserID())
		uc.EXPECT().CreateEntry(gomock.Any(), gomock.Any()).Return(*entry, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/entries", bytes.NewBufferString(`{"campaign_id":"camp-1","store_id":"store-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if body["status"] != string(entities.EntryStatusInProgress) {
			t.Fatalf("expected IN_PROGRESS, got %v", body["status"])
		}
	})
}

func TestCollecteHandler_AddItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("entry not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICollecteUseCase(ctrl)
		h := NewCollecteHandler(uc)

		r := gin.New()
		r.POST("/v1/entries/:id/items", h.AddItem)

		uc.EXPECT().AddItem(gomock.Any(), "e-1", usecase.AddItemInput{ProductRef: "REF-1", WeightKg: 2.5}).Return(entities.CollecteEntry{}, usecase.ErrEntryNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/entries/e-1/items", bytes.NewBufferString(`{"product_ref":"REF-1","weight_kg":2.5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("validated entry rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICollecteUseCase(ctrl)
		h := NewCollecteHandler(uc)

		r := gin.New()
		r.POST("/v1/entries/:id/items", h.AddItem)

		uc.EXPECT().AddItem(gomock.Any(), "e-1", gomock.Any()).Return(entities.CollecteEntry{}, entities.ErrEntryAlreadyValidated)

		req := httptest.NewRequest(http.MethodPost, "/v1/entries/e-1/items", bytes.NewBufferString(`{"product_ref":"REF-1","weight_kg":2.5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success returns running total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICollecteUseCase(ctrl)
		h := NewCollecteHandler(uc)

		r := gin.New()
		r.POST("/v1/entries/:id/items", h.AddItem)

		entry := entities.NewCollecteEntry(entities.NewCampaignID(), entities.NewStoreID(), entities.NewCenterID(), entities.NewUserID())
		if err := entry.AddItem("REF-1", "Conserves", "", 2.5); err != nil {
			t.Fatalf("add item: %v", err)
		}
		uc.EXPECT().AddItem(gomock.Any(), entry.ID.String(), gomock.Any()).Return(*entry, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/entries/"+entry.ID.String()+"/items", bytes.NewBufferString(`{"product_ref":"REF-1","weight_kg":2.5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if body["total_weight_kg"] != float64(3) {
			t.Fatalf("expected total 3, got %v", body["total_weight_kg"])
		}
	})
}

func TestCollecteHandler_RemoveItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("non numeric index", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICollecteUseCase(ctrl)
		h := NewCollecteHandler(uc)

		r := gin.New()
		r.DELETE("/v1/entries/:id/items/:index", h.RemoveItem)

		req := httptest.NewRequest(http.MethodDelete, "/v1/entries/e-1/items/abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("index out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICollecteUseCase(ctrl)
		h := NewCollecteHandler(uc)

		r := gin.New()
		r.DELETE("/v1/entries/:id/items/:index", h.RemoveItem)

		uc.EXPECT().RemoveItem(gomock.Any(), "e-1", 4).Return(entities.CollecteEntry{}, entities.ErrEntryItemIndex)

		req := httptest.NewRequest(http.MethodDelete, "/v1/entries/e-1/items/4", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestCollecteHandler_Validate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty entry rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICollecteUseCase(ctrl)
		h := NewCollecteHandler(uc)

		r := gin.New()
		r.POST("/v1/entries/:id/validate", h.Validate)

		uc.EXPECT().Validate(gomock.Any(), "e-1").Return(entities.CollecteEntry{}, entities.ErrEmptyEntry)

		req := httptest.NewRequest(http.MethodPost, "/v1/entries/e-1/validate", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("unexpected error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICollecteUseCase(ctrl)
		h := NewCollecteHandler(uc)

		r := gin.New()
		r.POST("/v1/entries/:id/validate", h.Validate)

		uc.EXPECT().Validate(gomock.Any(), "e-1").Return(entities.CollecteEntry{}, errors.New("dynamodb unavailable"))

		req := httptest.NewRequest(http.MethodPost, "/v1/entries/e-1/validate", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestCollecteHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid campaign filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICollecteUseCase(ctrl)
		h := NewCollecteHandler(uc)

		r := gin.New()
		r.GET("/v1/entries", h.List)

		req := httptest.NewRequest(http.MethodGet, "/v1/entries?campaign_id=not-a-uuid", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("filters forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICollecteUseCase(ctrl)
		h := NewCollecteHandler(uc)

		r := gin.New()
		r.GET("/v1/entries", h.List)

		campaignID := entities.NewCampaignID()
		uc.EXPECT().ListEntries(gomock.Any(), gomock.Any()).Return([]entities.CollecteEntry{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/entries?campaign_id="+campaignID.String(), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
