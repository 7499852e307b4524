package repository

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"bizops/internal/model"
)

func TestItemTypeRepository_JoinsProjectName(t *testing.T) {
	db := setupRepoTestDB(t)
	ctx := context.Background()
	projects := NewCRUDRepository[model.Project](db)
	repo := NewItemTypeRepository(db)

	p1 := &model.Project{CorporationUUID: "corp-a", ProjectName: "Tower", ProjectID: "P-1"}
	p2 := &model.Project{CorporationUUID: "corp-a", ProjectName: "Bridge", ProjectID: "P-2"}
	_ = projects.Create(ctx, p1)
	_ = projects.Create(ctx, p2)

	_ = repo.Create(ctx, &model.ItemType{CorporationUUID: "corp-a", ProjectUUID: p1.UUID, ItemTypeName: "Steel", ShortName: "ST", IsActive: true})
	_ = repo.Create(ctx, &model.ItemType{CorporationUUID: "corp-a", ProjectUUID: p2.UUID, ItemTypeName: "Cable", ShortName: "CB"})
	_ = repo.Create(ctx, &model.ItemType{CorporationUUID: "corp-b", ProjectUUID: p2.UUID, ItemTypeName: "Paint", ShortName: "PT"})

	list, err := repo.ListByScope(ctx, ItemTypeFilter{CorporationUUID: "corp-a"})
	if err != nil {
		t.Fatalf("ListByScope() error = %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len = %v, want 2", len(list))
	}
	for _, it := range list {
		if it.ProjectName == "" {
			t.Errorf("item %s has empty project_name", it.ItemTypeName)
		}
	}

	list, _ = repo.ListByScope(ctx, ItemTypeFilter{CorporationUUID: "corp-a", ProjectUUID: p1.UUID})
	if len(list) != 1 || list[0].ProjectName != "Tower" {
		t.Errorf("project filter = %+v, want one item under Tower", list)
	}

	active := false
	list, _ = repo.ListByScope(ctx, ItemTypeFilter{CorporationUUID: "corp-a", IsActive: &active})
	if len(list) != 1 || list[0].ItemTypeName != "Cable" {
		t.Errorf("inactive filter = %+v, want Cable", list)
	}

	got, err := repo.GetWithProject(ctx, list[0].UUID)
	if err != nil {
		t.Fatalf("GetWithProject() error = %v", err)
	}
	if got.ProjectName != "Bridge" {
		t.Errorf("ProjectName = %v, want Bridge", got.ProjectName)
	}

	_, err = repo.GetWithProject(ctx, "missing")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("GetWithProject(missing) error = %v, want ErrRecordNotFound", err)
	}
}

func TestItemTypeRepository_MissingProjectIsForeignKeyError(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewItemTypeRepository(db)

	err := repo.Create(context.Background(), &model.ItemType{CorporationUUID: "corp-a", ProjectUUID: "nope", ItemTypeName: "X", ShortName: "X"})
	if !errors.Is(err, gorm.ErrForeignKeyViolated) {
		t.Errorf("Create() error = %v, want ErrForeignKeyViolated", err)
	}
}
