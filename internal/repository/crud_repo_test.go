package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"bizops/internal/model"
	"bizops/pkg/database"
)

func setupRepoTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := database.Migrate(db, model.All()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func strPtr(s string) *string { return &s }

func TestCRUDRepository_CreateAndGet(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewCRUDRepository[model.UOM](db)
	ctx := context.Background()

	u := &model.UOM{UOMName: "Each", ShortName: "EA", Status: model.StatusActive}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if u.UUID == "" {
		t.Fatal("Create() did not assign uuid")
	}

	got, err := repo.GetByUUID(ctx, u.UUID)
	if err != nil {
		t.Fatalf("GetByUUID() error = %v", err)
	}
	if got.ShortName != "EA" {
		t.Errorf("ShortName = %v, want EA", got.ShortName)
	}

	_, err = repo.GetByUUID(ctx, "missing")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("GetByUUID(missing) error = %v, want ErrRecordNotFound", err)
	}
}

func TestCRUDRepository_DuplicateIsTranslated(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewCRUDRepository[model.Freight](db)
	ctx := context.Background()

	if err := repo.Create(ctx, &model.Freight{ShipVia: "UPS", Active: true}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	err := repo.Create(ctx, &model.Freight{ShipVia: "UPS"})
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Errorf("second Create() error = %v, want ErrDuplicatedKey", err)
	}
}

func TestCRUDRepository_FalseBoolIsStored(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewCRUDRepository[model.Location](db)
	ctx := context.Background()

	loc := &model.Location{LocationName: "Yard", Active: false}
	if err := repo.Create(ctx, loc); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	got, err := repo.GetByUUID(ctx, loc.UUID)
	if err != nil {
		t.Fatalf("GetByUUID() error = %v", err)
	}
	if got.Active {
		t.Error("Active = true, want false")
	}
}

func TestCRUDRepository_ListScopes(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewCRUDRepository[model.Charge](db)
	ctx := context.Background()

	seed := []*model.Charge{
		{ChargeName: "Global", ChargeType: model.ChargeTypeOther, Status: model.StatusActive},
		{CorporationUUID: strPtr("corp-a"), ChargeName: "A freight", ChargeType: model.ChargeTypeFreight, Status: model.StatusActive},
		{CorporationUUID: strPtr("corp-b"), ChargeName: "B packing", ChargeType: model.ChargeTypePacking, Status: model.StatusActive},
	}
	for _, c := range seed {
		if err := repo.Create(ctx, c); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		time.Sleep(time.Millisecond)
	}

	tests := []struct {
		name   string
		scopes []func(*gorm.DB) *gorm.DB
		want   int
	}{
		{"no filter", nil, 3},
		{"corp with global", []func(*gorm.DB) *gorm.DB{ByCorporation("corp-a", true)}, 2},
		{"corp only", []func(*gorm.DB) *gorm.DB{ByCorporation("corp-a", false)}, 1},
		{"by type", []func(*gorm.DB) *gorm.DB{ByEqual("charge_type", model.ChargeTypePacking)}, 1},
		{"empty value ignored", []func(*gorm.DB) *gorm.DB{ByEqual("charge_type", "")}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := repo.List(ctx, ListOptions{Scopes: tt.scopes})
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if len(list) != tt.want {
				t.Errorf("len(List()) = %v, want %v", len(list), tt.want)
			}
		})
	}

	list, _ := repo.List(ctx, ListOptions{})
	if list[0].ChargeName != "B packing" {
		t.Errorf("first = %v, want newest (B packing)", list[0].ChargeName)
	}
}

func TestCRUDRepository_ListEmptyIsNotNil(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewCRUDRepository[model.SalesTax](db)

	list, err := repo.List(context.Background(), ListOptions{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if list == nil {
		t.Error("List() = nil, want empty slice")
	}
}

func TestCRUDRepository_Delete(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewCRUDRepository[model.Freight](db)
	ctx := context.Background()

	f := &model.Freight{ShipVia: "FedEx", Active: true}
	_ = repo.Create(ctx, f)

	n, err := repo.Delete(ctx, f.UUID)
	if err != nil || n != 1 {
		t.Fatalf("Delete() = %v, %v; want 1, nil", n, err)
	}
	n, err = repo.Delete(ctx, f.UUID)
	if err != nil || n != 0 {
		t.Errorf("second Delete() = %v, %v; want 0, nil", n, err)
	}
	ok, _ := repo.Exists(ctx, f.UUID)
	if ok {
		t.Error("Exists() = true after delete")
	}
}

func TestCRUDRepository_DeleteUnreferenced(t *testing.T) {
	db := setupRepoTestDB(t)
	ctx := context.Background()

	projects := NewCRUDRepository[model.Project](db)
	items := NewItemTypeRepository(db)
	configs := NewCostCodeConfigRepository(db)
	divisions := NewCRUDRepository[model.CostCodeDivision](db)

	p := &model.Project{CorporationUUID: "corp-a", ProjectName: "Tower", ProjectID: "P-1", Status: model.StatusActive}
	_ = projects.Create(ctx, p)
	it := &model.ItemType{CorporationUUID: "corp-a", ProjectUUID: p.UUID, ItemTypeName: "Steel", ShortName: "ST", IsActive: true}
	if err := items.Create(ctx, it); err != nil {
		t.Fatalf("Create(item type) error = %v", err)
	}
	d := &model.CostCodeDivision{CorporationUUID: "corp-a", DivisionNumber: "01", DivisionName: "General"}
	_ = divisions.Create(ctx, d)
	cfg := &model.CostCodeConfiguration{
		CorporationUUID: "corp-a", DivisionUUID: d.UUID, CostCodeNumber: "01-100", CostCodeName: "Framing",
		PreferredItems: []model.PreferredItem{{ItemName: "Beam", ItemTypeUUID: &it.UUID}},
	}
	if err := configs.Create(ctx, cfg); err != nil {
		t.Fatalf("Create(config) error = %v", err)
	}

	n, err := items.DeleteUnreferenced(ctx, it.UUID, PreferredItemTypeRef)
	if err != nil {
		t.Fatalf("DeleteUnreferenced() error = %v", err)
	}
	if n != 0 {
		t.Errorf("referenced item type deleted: rows = %v, want 0", n)
	}
	if ok, _ := items.Exists(ctx, it.UUID); !ok {
		t.Error("referenced item type no longer exists")
	}

	// Dropping the configuration cascades to its preferred items.
	if _, err := configs.Delete(ctx, cfg.UUID); err != nil {
		t.Fatalf("Delete(config) error = %v", err)
	}
	n, err = items.DeleteUnreferenced(ctx, it.UUID, PreferredItemTypeRef)
	if err != nil || n != 1 {
		t.Errorf("DeleteUnreferenced() = %v, %v; want 1, nil", n, err)
	}
}
