package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"bizops/internal/api/dto"
	"bizops/internal/auth"
	"bizops/internal/middleware"
	"bizops/internal/model"
	"bizops/internal/repository"
	"bizops/pkg/apperr"
	"bizops/pkg/database"
	"bizops/pkg/links"
	"bizops/pkg/validate"
)

var testCaller = auth.Caller{ID: "user-1", Email: "owner@example.com"}

func setupServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, model.All()...))
	return db
}

func newAudit(db *gorm.DB) *AuditService {
	return NewAuditService(repository.NewAuditLogRepository(db), zap.NewNop())
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var appErr *apperr.AppError
	require.True(t, errors.As(err, &appErr), "error %v is not an AppError", err)
	return appErr.StatusCode
}

func messageOf(err error) string {
	var appErr *apperr.AppError
	if errors.As(err, &appErr) {
		return appErr.StatusMessage
	}
	return ""
}

func TestChargeService_Lifecycle(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewChargeService(repository.NewCRUDRepository[model.Charge](db), newAudit(db))
	ctx := context.Background()
	corp := "corp-a"

	created, err := svc.Create(ctx, testCaller, dto.ChargeReq{CorporationUUID: &corp, ChargeName: "  Crating ", ChargeType: model.ChargeTypePacking})
	require.NoError(t, err)
	assert.Equal(t, "Crating", created.ChargeName)
	assert.Equal(t, model.StatusActive, created.Status)
	assert.Equal(t, "user-1", created.CreatedBy)

	_, err = svc.Create(ctx, testCaller, dto.ChargeReq{CorporationUUID: &corp, ChargeName: "Crating", ChargeType: model.ChargeTypeOther})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
	assert.Equal(t, "Charge already exists", messageOf(err))

	updated, err := svc.Update(ctx, testCaller, created.UUID, dto.ChargeReq{CorporationUUID: &corp, ChargeName: "Crating", ChargeType: model.ChargeTypeFreight, Status: model.StatusInactive})
	require.NoError(t, err)
	assert.Equal(t, model.ChargeTypeFreight, updated.ChargeType)
	assert.Equal(t, model.StatusInactive, updated.Status)

	_, err = svc.Update(ctx, testCaller, "missing", dto.ChargeReq{ChargeName: "X", ChargeType: model.ChargeTypeOther})
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	var count int64
	db.Model(&model.Charge{}).Count(&count)
	assert.Equal(t, int64(1), count, "update of a missing uuid must not insert")

	require.NoError(t, svc.Delete(ctx, testCaller, created.UUID))
	err = svc.Delete(ctx, testCaller, created.UUID)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	assert.Equal(t, "Charge not found", messageOf(err))
}

func TestChargeService_ListIncludesGlobal(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewChargeService(repository.NewCRUDRepository[model.Charge](db), nil)
	ctx := context.Background()
	a, b := "corp-a", "corp-b"

	_, _ = svc.Create(ctx, testCaller, dto.ChargeReq{ChargeName: "Global", ChargeType: model.ChargeTypeOther})
	_, _ = svc.Create(ctx, testCaller, dto.ChargeReq{CorporationUUID: &a, ChargeName: "Mine", ChargeType: model.ChargeTypeOther})
	_, _ = svc.Create(ctx, testCaller, dto.ChargeReq{CorporationUUID: &b, ChargeName: "Theirs", ChargeType: model.ChargeTypeOther})

	list, err := svc.List(ctx, dto.ScopeQuery{CorporationUUID: a})
	require.NoError(t, err)
	names := []string{}
	for _, c := range list {
		names = append(names, c.ChargeName)
	}
	assert.ElementsMatch(t, []string{"Global", "Mine"}, names)
}

func TestSalesTaxService_StoresPercentageAsGiven(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewSalesTaxService(repository.NewCRUDRepository[model.SalesTax](db), newAudit(db))
	ctx := context.Background()

	created, err := svc.Create(ctx, testCaller, dto.SalesTaxReq{TaxName: "State", TaxPercentage: validate.NewNumber(55.5)})
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.UUID)
	require.NoError(t, err)
	assert.Equal(t, 55.5, got.TaxPercentage)
}

func TestItemTypeService_ReferenceRules(t *testing.T) {
	db := setupServiceTestDB(t)
	ctx := context.Background()
	audit := newAudit(db)

	projectRepo := repository.NewCRUDRepository[model.Project](db)
	divisionRepo := repository.NewCRUDRepository[model.CostCodeDivision](db)
	projects := NewProjectService(projectRepo, audit)
	items := NewItemTypeService(repository.NewItemTypeRepository(db), projectRepo, audit)
	divisions := NewCostCodeDivisionService(divisionRepo, audit)
	configs := NewCostCodeConfigService(repository.NewCostCodeConfigRepository(db), divisionRepo, audit)

	_, err := items.Create(ctx, testCaller, dto.ItemTypeReq{CorporationUUID: "corp-a", ProjectUUID: "nope", ItemType: "Steel", ShortName: "ST"})
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
	assert.Equal(t, "project_uuid does not reference an existing project", messageOf(err))

	p, err := projects.Create(ctx, testCaller, dto.ProjectReq{CorporationUUID: "corp-a", ProjectName: "Tower", ProjectID: "P-1"})
	require.NoError(t, err)
	it, err := items.Create(ctx, testCaller, dto.ItemTypeReq{CorporationUUID: "corp-a", ProjectUUID: p.UUID, ItemType: "Steel", ShortName: "ST"})
	require.NoError(t, err)
	assert.Equal(t, "Tower", it.ProjectName)
	assert.True(t, it.IsActive)

	other, err := projects.Create(ctx, testCaller, dto.ProjectReq{CorporationUUID: "corp-b", ProjectName: "Depot", ProjectID: "P-9"})
	require.NoError(t, err)
	_, err = items.Create(ctx, testCaller, dto.ItemTypeReq{CorporationUUID: "corp-a", ProjectUUID: other.UUID, ItemType: "Glass", ShortName: "GL"})
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
	assert.Equal(t, "project_uuid belongs to a different corporation", messageOf(err))
	_, err = items.Update(ctx, testCaller, it.UUID, dto.ItemTypeReq{CorporationUUID: "corp-a", ProjectUUID: other.UUID, ItemType: "Steel", ShortName: "ST"})
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
	moved, err := items.Get(ctx, it.UUID)
	require.NoError(t, err)
	assert.Equal(t, p.UUID, moved.ProjectUUID, "rejected move must leave the row alone")

	// project still has an item type
	err = projects.Delete(ctx, testCaller, p.UUID)
	assert.Equal(t, http.StatusConflict, statusOf(t, err))

	d, err := divisions.Create(ctx, testCaller, dto.CostCodeDivisionReq{CorporationUUID: "corp-a", DivisionNumber: "05", DivisionName: "Metals"})
	require.NoError(t, err)
	cfg, err := configs.Create(ctx, testCaller, dto.CostCodeConfigurationReq{
		CorporationUUID: "corp-a", DivisionUUID: d.UUID, CostCodeNumber: "05-100", CostCodeName: "Structural",
		PreferredItems: []dto.PreferredItemReq{{ItemTypeUUID: &it.UUID, ItemName: "W-beam", UnitPrice: 12}},
	})
	require.NoError(t, err)

	err = items.Delete(ctx, testCaller, it.UUID)
	assert.Equal(t, http.StatusConflict, statusOf(t, err))
	assert.Equal(t, "Item type is in use and cannot be deleted", messageOf(err))
	_, err = items.Get(ctx, it.UUID)
	assert.NoError(t, err, "referenced item type must stay intact")

	// replacing the preferred items drops the reference
	_, err = configs.Update(ctx, testCaller, cfg.UUID, dto.CostCodeConfigurationReq{
		CorporationUUID: "corp-a", DivisionUUID: d.UUID, CostCodeNumber: "05-100", CostCodeName: "Structural",
		PreferredItems: []dto.PreferredItemReq{{ItemName: "Angle"}},
	})
	require.NoError(t, err)
	require.NoError(t, items.Delete(ctx, testCaller, it.UUID))
	require.NoError(t, projects.Delete(ctx, testCaller, p.UUID))

	err = items.Delete(ctx, testCaller, it.UUID)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}

func TestCostCodeConfigService_MissingDivision(t *testing.T) {
	db := setupServiceTestDB(t)
	divisionRepo := repository.NewCRUDRepository[model.CostCodeDivision](db)
	svc := NewCostCodeConfigService(repository.NewCostCodeConfigRepository(db), divisionRepo, nil)

	_, err := svc.Create(context.Background(), testCaller, dto.CostCodeConfigurationReq{
		CorporationUUID: "corp-a", DivisionUUID: "missing", CostCodeNumber: "1", CostCodeName: "x",
	})
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
}

func TestCostCodeDivisionService_ListOrder(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewCostCodeDivisionService(repository.NewCRUDRepository[model.CostCodeDivision](db), nil)
	ctx := context.Background()

	for i, n := range []string{"C", "A", "B"} {
		_, err := svc.Create(ctx, testCaller, dto.CostCodeDivisionReq{CorporationUUID: "corp-a", DivisionNumber: n, DivisionName: n, DivisionOrder: 3 - i})
		require.NoError(t, err)
	}
	list, err := svc.List(ctx, dto.CorporationQuery{CorporationUUID: "corp-a"})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{list[0].DivisionOrder, list[1].DivisionOrder, list[2].DivisionOrder})
}

func TestAuditService_RecordsWrites(t *testing.T) {
	db := setupServiceTestDB(t)
	audit := newAudit(db)
	svc := NewPOInstructionService(repository.NewCRUDRepository[model.POInstruction](db), audit)
	ctx := context.Background()

	po, err := svc.Create(ctx, testCaller, dto.POInstructionReq{CorporationUUID: "corp-a", POInstructionName: "Dock", Instruction: "Deliver to dock 4"})
	require.NoError(t, err)
	_, err = svc.Update(ctx, testCaller, po.UUID, dto.POInstructionReq{CorporationUUID: "corp-a", POInstructionName: "Dock", Instruction: "Deliver to dock 5"})
	require.NoError(t, err)

	logs, err := audit.List(ctx, "corp-a", po.UUID)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	actions := []string{logs[0].Action, logs[1].Action}
	assert.ElementsMatch(t, []string{model.AuditActionCreate, model.AuditActionUpdate}, actions)
	assert.Equal(t, "po_instruction", logs[0].EntityType)
	assert.Equal(t, "user-1", logs[0].UserID)
	assert.Contains(t, string(logs[0].Changes), "po_instruction_name")

	n, err := audit.Purge(ctx, 0)
	require.NoError(t, err)
	assert.Zero(t, n, "zero retention disables purging")
}

type fakeResetter struct {
	calls    int
	redirect string
	err      error
}

func (f *fakeResetter) SendPasswordReset(_ context.Context, _ string, redirectTo string) error {
	f.calls++
	f.redirect = redirectTo
	return f.err
}

func TestAuthService_ForgotPasswordCooldown(t *testing.T) {
	resetter := &fakeResetter{}
	svc := NewAuthService(resetter, middleware.NewKeyedLimiter(), links.NewResolver("https://app.example.com"), zap.NewNop())
	ctx := context.Background()

	require.NoError(t, svc.ForgotPassword(ctx, "a@example.com"))
	assert.Equal(t, "https://app.example.com/reset-password", resetter.redirect)

	err := svc.ForgotPassword(ctx, "A@example.com ")
	assert.Equal(t, http.StatusTooManyRequests, statusOf(t, err))
	assert.Equal(t, 1, resetter.calls)

	require.NoError(t, svc.ForgotPassword(ctx, "b@example.com"))
	assert.Equal(t, 2, resetter.calls)
}

func TestAuthService_ForgotPasswordFailureReleasesCooldown(t *testing.T) {
	resetter := &fakeResetter{err: errors.New("smtp down")}
	svc := NewAuthService(resetter, middleware.NewKeyedLimiter(), links.NewResolver(""), zap.NewNop())
	ctx := context.Background()

	err := svc.ForgotPassword(ctx, "a@example.com")
	assert.Equal(t, http.StatusInternalServerError, statusOf(t, err))
	assert.Equal(t, "/reset-password", resetter.redirect)

	resetter.err = nil
	assert.NoError(t, svc.ForgotPassword(ctx, "a@example.com"))
}
