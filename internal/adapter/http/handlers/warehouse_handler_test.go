package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"burrow/internal/adapter/http/handlers/mocks"
	"burrow/internal/domain/entities"
	"burrow/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestWarehouseHandler_ListWarehouses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWarehouseUseCase(ctrl)
		h := NewWarehouseHandler(uc)

		uc.EXPECT().ListActive(gomock.Any()).Return([]entities.Warehouse{
			{ID: "1", Name: "Burrow Delhi Hub", IsActive: true},
			{ID: "2", Name: "Burrow Mumbai Central", IsActive: true},
		}, nil)

		r := gin.New()
		r.GET("/api/warehouses", h.ListWarehouses)

		req := httptest.NewRequest(http.MethodGet, "/api/warehouses", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if len(resp) != 2 || resp[0]["name"] != "Burrow Delhi Hub" {
			t.Fatalf("unexpected response: %v", resp)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWarehouseUseCase(ctrl)
		h := NewWarehouseHandler(uc)

		uc.EXPECT().ListActive(gomock.Any()).Return(nil, errors.New("db"))

		r := gin.New()
		r.GET("/api/warehouses", h.ListWarehouses)

		req := httptest.NewRequest(http.MethodGet, "/api/warehouses", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestWarehouseHandler_GetWarehouse(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWarehouseUseCase(ctrl)
		h := NewWarehouseHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "99").Return(entities.Warehouse{}, usecase.ErrWarehouseNotFound)

		r := gin.New()
		r.GET("/api/warehouses/:id", h.GetWarehouse)

		req := httptest.NewRequest(http.MethodGet, "/api/warehouses/99", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var resp map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["message"] != "Warehouse not found." {
			t.Fatalf("unexpected message: %q", resp["message"])
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWarehouseUseCase(ctrl)
		h := NewWarehouseHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "1").Return(entities.Warehouse{ID: "1", Name: "Burrow Delhi Hub"}, nil)

		r := gin.New()
		r.GET("/api/warehouses/:id", h.GetWarehouse)

		req := httptest.NewRequest(http.MethodGet, "/api/warehouses/1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
