package usecase

import (
	"context"
	"errors"
	"testing"

	"burrow/internal/domain/entities"
	"burrow/internal/usecase/interfaces"
	mock_interfaces "burrow/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestWarehouseUseCase_ListActive(t *testing.T) {
	t.Run("sorted by name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWarehouseRepository(ctrl)
		uc := NewWarehouseUseCase(repo)

		repo.EXPECT().ListActive(gomock.Any()).Return([]entities.Warehouse{
			{ID: "3", Name: "Mumbai West Hub"},
			{ID: "1", Name: "Delhi Central Hub"},
		}, nil)

		got, err := uc.ListActive(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0].Name != "Delhi Central Hub" {
			t.Fatalf("expected name order, got %+v", got)
		}
	})

	t.Run("empty is an empty slice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWarehouseRepository(ctrl)
		uc := NewWarehouseUseCase(repo)

		repo.EXPECT().ListActive(gomock.Any()).Return(nil, nil)

		got, err := uc.ListActive(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got == nil || len(got) != 0 {
			t.Fatalf("expected empty slice, got %v", got)
		}
	})
}

func TestWarehouseUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewWarehouseUseCase(nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidWarehouseID) {
			t.Fatalf("expected ErrInvalidWarehouseID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWarehouseRepository(ctrl)
		uc := NewWarehouseUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "99").Return(entities.Warehouse{}, nil)

		_, err := uc.GetByID(context.Background(), "99")
		if !errors.Is(err, ErrWarehouseNotFound) {
			t.Fatalf("expected ErrWarehouseNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWarehouseRepository(ctrl)
		uc := NewWarehouseUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "1").Return(entities.Warehouse{ID: "1", Name: "Delhi Central Hub"}, nil)

		got, err := uc.GetByID(context.Background(), " 1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "1" {
			t.Fatalf("unexpected warehouse: %+v", got)
		}
	})
}

func TestWarehouseUseCase_SeedDefaults(t *testing.T) {
	t.Run("seeds an empty table", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWarehouseRepository(ctrl)
		uc := NewWarehouseUseCase(repo)

		defaults := DefaultWarehouses()
		repo.EXPECT().Count(gomock.Any()).Return(0, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Warehouse{})).Return(entities.Warehouse{}, nil).Times(len(defaults))

		inserted, err := uc.SeedDefaults(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inserted != len(defaults) {
			t.Fatalf("expected %d inserted, got %d", len(defaults), inserted)
		}
	})

	t.Run("skips a populated table", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWarehouseRepository(ctrl)
		uc := NewWarehouseUseCase(repo)

		repo.EXPECT().Count(gomock.Any()).Return(6, nil)

		inserted, err := uc.SeedDefaults(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inserted != 0 {
			t.Fatalf("expected 0 inserted, got %d", inserted)
		}
	})

	t.Run("tolerates duplicate ids", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWarehouseRepository(ctrl)
		uc := NewWarehouseUseCase(repo)

		defaults := DefaultWarehouses()
		repo.EXPECT().Count(gomock.Any()).Return(0, nil)
		first := repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Warehouse{}, interfaces.ErrDuplicateID)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Warehouse{}, nil).Times(len(defaults) - 1).After(first)

		inserted, err := uc.SeedDefaults(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inserted != len(defaults)-1 {
			t.Fatalf("expected %d inserted, got %d", len(defaults)-1, inserted)
		}
	})
}

func TestDefaultWarehouses(t *testing.T) {
	defaults := DefaultWarehouses()
	if len(defaults) != 6 {
		t.Fatalf("expected 6 default hubs, got %d", len(defaults))
	}

	seen := map[string]bool{}
	for _, w := range defaults {
		if w.ID == "" || w.Name == "" || w.Address == "" {
			t.Fatalf("incomplete warehouse: %+v", w)
		}
		if seen[w.ID] {
			t.Fatalf("duplicate warehouse id %q", w.ID)
		}
		seen[w.ID] = true
		if !w.IsActive {
			t.Fatalf("expected %q active", w.Name)
		}
		if w.OperatingHours != "9:00 AM - 7:00 PM" {
			t.Fatalf("unexpected hours for %q: %q", w.Name, w.OperatingHours)
		}
	}
}
